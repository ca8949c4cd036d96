package generator

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/dave/jennifer/jen"
)

// generatedHeader marks emitted files as generated code.
const generatedHeader = "Code generated by typename. DO NOT EDIT."

// Emitter writes enum types as Go source files.
type Emitter struct {
	pkgName     string
	outputDir   string
	defaultFile string
}

// NewEmitter returns an Emitter that writes files for package pkgName into
// outputDir. Enums without an output file are written to defaultFile.
func NewEmitter(pkgName, outputDir, defaultFile string) *Emitter {
	return &Emitter{pkgName: pkgName, outputDir: outputDir, defaultFile: defaultFile}
}

// Emit writes one Go file per distinct output file and returns the paths
// that were written, in sorted order. Every file is rendered before any is
// written, so invalid generated code leaves the output directory untouched.
// A failed write can still leave earlier files in place.
func (e *Emitter) Emit(enums []*Enum) ([]string, error) {
	byFile := e.groupByFile(enums)
	files := make([]string, 0, len(byFile))
	for name := range byFile {
		files = append(files, name)
	}
	slices.Sort(files)

	rendered := make([][]byte, len(files))
	for i, name := range files {
		var buf bytes.Buffer
		if err := e.Render(&buf, byFile[name]); err != nil {
			return nil, fmt.Errorf("rendering %s: %w", name, err)
		}
		rendered[i] = buf.Bytes()
	}

	if err := os.MkdirAll(e.outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	paths := make([]string, 0, len(files))
	for i, name := range files {
		path := filepath.Join(e.outputDir, name)
		if err := os.WriteFile(path, rendered[i], 0o644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// Render writes all enums to w as a single Go file.
func (e *Emitter) Render(w io.Writer, enums []*Enum) error {
	return e.File(enums).Render(w)
}

// File builds the Go file containing enums.
func (e *Emitter) File(enums []*Enum) *jen.File {
	f := jen.NewFile(e.pkgName)
	f.HeaderComment(generatedHeader)
	for _, enum := range enums {
		emitEnum(f, enum)
	}
	return f
}

func (e *Emitter) groupByFile(enums []*Enum) map[string][]*Enum {
	byFile := make(map[string][]*Enum)
	for _, enum := range enums {
		file := enum.OutputFile
		if file == "" {
			file = e.defaultFile
		}
		byFile[file] = append(byFile[file], enum)
	}
	return byFile
}

func emitEnum(f *jen.File, enum *Enum) {
	typeName := enum.Name.Text()

	doc := enum.Doc
	if doc == "" {
		doc = fmt.Sprintf("%s identifies a field of %s.", typeName, enum.Source)
	}
	f.Comment(doc)
	f.Type().Id(typeName).Int()
	f.Line()

	consts := make([]jen.Code, 0, len(enum.Values))
	for i, v := range enum.Values {
		c := jen.Id(v.GoName.Text())
		if i == 0 {
			c = c.Id(typeName).Op("=").Iota()
		}
		consts = append(consts, c)
	}
	f.Const().Defs(consts...)
	f.Line()

	emitValues(f, enum)
	emitString(f, enum)
	emitParse(f, enum)
}

// emitValues writes a function returning every constant in declaration order.
func emitValues(f *jen.File, enum *Enum) {
	typeName := enum.Name.Text()

	ids := make([]jen.Code, 0, len(enum.Values))
	for _, v := range enum.Values {
		ids = append(ids, jen.Id(v.GoName.Text()))
	}

	f.Commentf("%s returns all %s constants.", enum.ValuesFunc(), typeName)
	f.Func().Id(enum.ValuesFunc()).Params().Index().Id(typeName).Block(
		jen.Return(jen.Index().Id(typeName).Values(ids...)),
	)
	f.Line()
}

func emitString(f *jen.File, enum *Enum) {
	typeName := enum.Name.Text()

	cases := make([]jen.Code, 0, len(enum.Values))
	for _, v := range enum.Values {
		cases = append(cases, jen.Case(jen.Id(v.GoName.Text())).Block(jen.Return(jen.Lit(v.Value))))
	}

	f.Comment("String returns the field name the value was generated from.")
	f.Func().Params(jen.Id("v").Id(typeName)).Id("String").Params().String().Block(
		jen.Switch(jen.Id("v")).Block(cases...),
		jen.Return(
			jen.Lit(typeName+"(").
				Op("+").Qual("strconv", "Itoa").Call(jen.Int().Call(jen.Id("v"))).
				Op("+").Lit(")"),
		),
	)
	f.Line()
}

func emitParse(f *jen.File, enum *Enum) {
	typeName := enum.Name.Text()

	cases := make([]jen.Code, 0, len(enum.Values))
	for _, v := range enum.Values {
		cases = append(cases, jen.Case(jen.Lit(v.Value)).Block(jen.Return(jen.Id(v.GoName.Text()), jen.True())))
	}

	f.Commentf("%s returns the %s for a field name.", enum.ParseFunc(), typeName)
	f.Func().Id(enum.ParseFunc()).Params(jen.Id("s").String()).Params(jen.Id(typeName), jen.Bool()).Block(
		jen.Switch(jen.Id("s")).Block(cases...),
		jen.Return(jen.Lit(0), jen.False()),
	)
	f.Line()
}
