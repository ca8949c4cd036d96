package generator

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/andrewkroh/go-typename/typename"
)

// EnumsFile is the parsed contents of an enums.yml file.
type EnumsFile struct {
	Package string     `yaml:"package,omitempty"`
	Enums   []EnumSpec `yaml:"enums"`
}

// EnumSpec declares one generated enum type. Each entry in Fields becomes a
// constant of the type.
type EnumSpec struct {
	Name   SourceName            `yaml:"name"`
	Suffix *string               `yaml:"suffix,omitempty"` // Appended to the type name. Defaults to DefaultSuffix.
	Doc    string                `yaml:"doc,omitempty"`
	File   string                `yaml:"file,omitempty"` // Output file name. Defaults to Config.FileName.
	Fields []SourceName          `yaml:"fields"`
	Rename map[string]SourceName `yaml:"rename,omitempty"` // field name → Go variant name
}

// SourceName is an identifier read from an enums file. It records the
// position of the YAML scalar it was decoded from and implements
// [typename.Ident].
type SourceName struct {
	Value  string
	file   string
	line   int
	column int
}

var _ typename.Ident = SourceName{}

// UnmarshalYAML implements [yaml.Unmarshaler] for SourceName.
func (n *SourceName) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a name, got YAML kind %d", node.Line, node.Kind)
	}
	n.Value = node.Value
	n.line = node.Line
	n.column = node.Column
	return nil
}

// Text returns the name as written in the file.
func (n SourceName) Text() string { return n.Value }

// Location returns the position of the name within its file.
func (n SourceName) Location() typename.Location {
	return typename.NewLocation(n.file, n.line, n.column)
}

// LoadEnums reads and parses an enums.yml file. Every name in the result is
// annotated with path so diagnostics point back into the file.
func LoadEnums(path string) (*EnumsFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading enums file: %w", err)
	}

	f, err := parseEnums(data)
	if err != nil {
		return nil, fmt.Errorf("parsing enums file %s: %w", path, err)
	}
	annotateFile(path, f)
	return f, nil
}

func parseEnums(data []byte) (*EnumsFile, error) {
	var f EnumsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// annotateFile sets the source file path on all names in f.
func annotateFile(path string, f *EnumsFile) {
	for i := range f.Enums {
		spec := &f.Enums[i]
		spec.Name.file = path
		for j := range spec.Fields {
			spec.Fields[j].file = path
		}
		for k, v := range spec.Rename {
			v.file = path
			spec.Rename[k] = v
		}
	}
}
