// Command field_locations reads an enums.yml file and prints the Go type and
// constant name derived from each field, together with the file:line:column
// where the field was written. This demonstrates how location tags travel
// with converted names, which is what code generators need to report
// diagnostics against the original definition.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/andrewkroh/go-typename/internal/generator"
	"github.com/andrewkroh/go-typename/typename"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <enums.yml>\n", os.Args[0])
		os.Exit(1)
	}

	f, err := generator.LoadEnums(os.Args[1])
	if err != nil {
		log.Fatal(err)
	}

	for _, spec := range f.Enums {
		typeName, err := typename.ToTypeIdent(spec.Name, spec.Name.Location())
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%-40s %s\n", typeName.Text(), typeName.Location())
		for _, field := range spec.Fields {
			printField(field)
		}
		fmt.Println()
	}
}

func printField(field generator.SourceName) {
	name, err := typename.ToTypeIdent(field, field.Location())
	if err != nil {
		fmt.Printf("  %-38s %v\n", field.Text(), err)
		return
	}
	fmt.Printf("  %-38s %s\n", name.Text(), name.Location())
}
