// Command typename converts snake_case names to PascalCase Go type names.
//
// With name arguments it prints one converted name per line:
//
//	typename foo_bar _leading_underscore
//
// With -enums it reads an enums.yml file and generates Go enum types with
// one constant per listed field:
//
//	typename -enums enums.yml -output model
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/andrewkroh/go-typename/internal/generator"
	"github.com/andrewkroh/go-typename/typename"
)

func main() {
	cfg := generator.Config{}
	var verbose bool

	flag.StringVar(&cfg.EnumsFile, "enums", "", "Path to enums.yml; generates Go enum types instead of converting arguments")
	flag.StringVar(&cfg.OutputDir, "output", ".", "Output directory for generated Go files")
	flag.StringVar(&cfg.PackageName, "package", "", "Go package name for generated files (default: package from enums.yml)")
	flag.StringVar(&cfg.FileName, "file", generator.DefaultFileName, "Output file for enums that do not set one")
	flag.BoolVar(&verbose, "v", false, "Log progress to stderr")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] [name ...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	cfg.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if cfg.EnumsFile == "" {
		if flag.NArg() == 0 {
			fmt.Fprintln(os.Stderr, "error: -enums flag or at least one name is required")
			flag.Usage()
			os.Exit(1)
		}
		if err := convertNames(os.Stdout, flag.Args()); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := generator.Run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// arg is a name given on the command line.
type arg struct {
	text string
	loc  typename.Location
}

func (a arg) Text() string                { return a.text }
func (a arg) Location() typename.Location { return a.loc }

// convertNames writes the type name for each of names to w, one per line.
// It stops at the first name that does not convert to a valid identifier.
func convertNames(w io.Writer, names []string) error {
	for i, name := range names {
		src := arg{text: name, loc: typename.NewLocation(fmt.Sprintf("arg[%d]", i+1), 0, 0)}
		ident, err := typename.ToTypeIdent(src, src.Location())
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, ident.Text()); err != nil {
			return err
		}
	}
	return nil
}
