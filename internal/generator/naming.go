package generator

import (
	"errors"
	"fmt"
	"maps"
	"path/filepath"
	"slices"
	"strings"

	"github.com/andrewkroh/go-typename/typename"
)

// DefaultSuffix is appended to enum type names when an EnumSpec does not
// set one, so "user_record" yields the type UserRecordField.
const DefaultSuffix = "Field"

// Enum is a Go enum type ready to be emitted.
type Enum struct {
	Name       typename.Name // Go type name.
	Source     string        // Name as written in the enums file.
	Doc        string
	OutputFile string // Empty means the emitter's default file.
	Values     []EnumValue
}

// EnumValue is a single enum constant.
type EnumValue struct {
	GoName typename.Name // Constant name, the type name followed by the variant.
	Value  string        // Field name the constant was derived from.
}

// Build converts every name in f into Go identifiers and checks the result
// for collisions. All problems found are returned together, each prefixed
// with the location of the offending name.
func Build(f *EnumsFile) ([]*Enum, error) {
	var (
		enums    []*Enum
		errs     []error
		declared = map[string]decl{} // package-level identifier → declaration
	)

	for i, spec := range f.Enums {
		if spec.Name.Value == "" {
			errs = append(errs, fmt.Errorf("enums[%d]: name is required", i))
			continue
		}

		enum, err := buildEnum(spec)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		// An enum with any clash declares nothing, so one bad entry does
		// not cascade into errors for later enums.
		var conflicts []error
		pending := map[string]decl{}
		for _, d := range enum.decls() {
			prev, ok := declared[d.name]
			if !ok {
				prev, ok = pending[d.name]
			}
			if ok {
				conflicts = append(conflicts, fmt.Errorf("%s: %s %s is already declared as a %s at %s",
					d.loc, d.kind, d.name, prev.kind, prev.loc))
				continue
			}
			pending[d.name] = d
		}
		if len(conflicts) > 0 {
			errs = append(errs, conflicts...)
			continue
		}
		maps.Copy(declared, pending)
		enums = append(enums, enum)
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return enums, nil
}

// decl is a package-level identifier emitted for an enum.
type decl struct {
	name string
	kind string // "type", "constant", or "function"
	loc  typename.Location
}

// ValuesFunc returns the name of the generated function listing all constants.
func (e *Enum) ValuesFunc() string { return e.Name.Text() + "Values" }

// ParseFunc returns the name of the generated function mapping field names
// to constants.
func (e *Enum) ParseFunc() string { return "Parse" + e.Name.Text() }

// decls lists every package-level identifier the emitter declares for e.
func (e *Enum) decls() []decl {
	loc := e.Name.Location()
	ds := []decl{
		{name: e.Name.Text(), kind: "type", loc: loc},
		{name: e.ValuesFunc(), kind: "function", loc: loc},
		{name: e.ParseFunc(), kind: "function", loc: loc},
	}
	for _, v := range e.Values {
		ds = append(ds, decl{name: v.GoName.Text(), kind: "constant", loc: v.GoName.Location()})
	}
	return ds
}

func buildEnum(spec EnumSpec) (*Enum, error) {
	base, err := typename.ToTypeIdent(spec.Name, spec.Name.Location())
	if err != nil {
		return nil, err
	}

	suffix := DefaultSuffix
	if spec.Suffix != nil {
		suffix = *spec.Suffix
	}
	name, err := typename.NewName(base.Text()+suffix, base.Location())
	if err != nil {
		return nil, err
	}

	if len(spec.Fields) == 0 {
		return nil, fmt.Errorf("%s: enum %s has no fields", spec.Name.Location(), name.Text())
	}

	enum := &Enum{
		Name:       name,
		Source:     spec.Name.Value,
		Doc:        spec.Doc,
		OutputFile: spec.File,
	}

	var errs []error
	if spec.File != "" && !validFileName(spec.File) {
		errs = append(errs, fmt.Errorf("%s: output file %q must be a .go file name without a directory",
			spec.Name.Location(), spec.File))
	}

	variants := map[string]typename.Location{} // variant → field location
	for _, field := range spec.Fields {
		variant, err := variantName(spec, field)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if prev, ok := variants[variant.Text()]; ok {
			errs = append(errs, fmt.Errorf("%s: field %q converts to %s, which is already used by the field at %s",
				field.Location(), field.Value, variant.Text(), prev))
			continue
		}
		variants[variant.Text()] = field.Location()

		goName, err := typename.NewName(name.Text()+variant.Text(), field.Location())
		if err != nil {
			errs = append(errs, err)
			continue
		}
		enum.Values = append(enum.Values, EnumValue{GoName: goName, Value: field.Value})
	}

	for _, field := range slices.Sorted(maps.Keys(spec.Rename)) {
		known := slices.ContainsFunc(spec.Fields, func(f SourceName) bool { return f.Value == field })
		if !known {
			errs = append(errs, fmt.Errorf("%s: rename of unknown field %q",
				spec.Rename[field].Location(), field))
		}
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return enum, nil
}

// variantName returns the Go variant name for field. An entry in the
// EnumSpec's rename map is used verbatim; otherwise the field name is
// converted to PascalCase.
func variantName(spec EnumSpec, field SourceName) (typename.Name, error) {
	if renamed, ok := spec.Rename[field.Value]; ok {
		return typename.NewName(renamed.Value, renamed.Location())
	}
	return typename.ToTypeIdent(field, field.Location())
}

// validFileName reports whether name can be written directly into the
// output directory as a non-test Go source file that the go tool will build.
func validFileName(name string) bool {
	return name == filepath.Base(name) &&
		!strings.ContainsAny(name, `/\`) &&
		!strings.HasPrefix(name, ".") &&
		!strings.HasPrefix(name, "_") &&
		strings.HasSuffix(name, ".go") &&
		!strings.HasSuffix(name, "_test.go")
}
