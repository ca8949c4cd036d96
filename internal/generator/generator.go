package generator

import (
	"fmt"
	"log/slog"

	"github.com/andrewkroh/go-typename/typename"
)

// DefaultFileName is the output file used for enums that do not name one.
const DefaultFileName = "enums_gen.go"

// Config holds all configuration for a generator run.
type Config struct {
	EnumsFile   string
	OutputDir   string
	PackageName string // Overrides the package declared in the enums file.
	FileName    string
	Logger      *slog.Logger // Nil discards log output.
}

// Run executes the full code generation pipeline.
func Run(cfg Config) error {
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	// 1. Load the enum declarations.
	file, err := LoadEnums(cfg.EnumsFile)
	if err != nil {
		return fmt.Errorf("loading enums: %w", err)
	}
	log.Debug("loaded enums file", "path", cfg.EnumsFile, "enums", len(file.Enums))

	// 2. Convert names and check for collisions.
	enums, err := Build(file)
	if err != nil {
		return err
	}

	// 3. Emit Go files.
	pkgName := cfg.PackageName
	if pkgName == "" {
		pkgName = file.Package
	}
	if pkgName == "" {
		pkgName = "enums"
	}
	if pkgName == "_" || !typename.IsIdentifier(pkgName) {
		return fmt.Errorf("invalid package name %q", pkgName)
	}
	fileName := cfg.FileName
	if fileName == "" {
		fileName = DefaultFileName
	}
	if !validFileName(fileName) {
		return fmt.Errorf("invalid output file name %q: must be a .go file name without a directory", fileName)
	}

	paths, err := NewEmitter(pkgName, cfg.OutputDir, fileName).Emit(enums)
	if err != nil {
		return err
	}
	for _, p := range paths {
		log.Info("wrote generated enums", "path", p, "package", pkgName)
	}
	return nil
}
