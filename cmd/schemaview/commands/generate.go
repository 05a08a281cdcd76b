package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/erraggy/schemaview/generator"
	"github.com/erraggy/schemaview/internal/cliutil"
)

// GenerateFlags contains flags for the generate command
type GenerateFlags struct {
	InputFlags
	PackageName string
	NoWarnings  bool
	Strict      bool
}

// SetupGenerateFlags creates and configures a FlagSet for the generate command.
// Returns the FlagSet and a GenerateFlags struct with bound flag variables.
func SetupGenerateFlags() (*flag.FlagSet, *GenerateFlags) {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	flags := &GenerateFlags{}

	flags.bind(fs)
	fs.StringVar(&flags.PackageName, "p", generator.DefaultPackageName, "Go package name for generated code")
	fs.StringVar(&flags.PackageName, "package", generator.DefaultPackageName, "Go package name for generated code")
	fs.BoolVar(&flags.NoWarnings, "no-warnings", false, "suppress warning and info messages")
	fs.BoolVar(&flags.Strict, "strict", false, "fail on any generation issues (even warnings)")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: schemaview generate [flags] <input|-> <output.go>\n\n")
		Writef(fs.Output(), "Generate Go type definitions from the data structures of a refract document.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  schemaview generate api.json ./models/types.go\n")
		Writef(fs.Output(), "  schemaview generate -p models api.yaml ./models/types.go\n")
	}

	return fs, flags
}

// HandleGenerate executes the generate command
func HandleGenerate(args []string) error {
	fs, flags := SetupGenerateFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 2 {
		fs.Usage()
		return &UsageError{Command: "generate", Message: "requires an input path and an output file"}
	}
	inputPath, outputPath := fs.Arg(0), fs.Arg(1)

	if err := ValidateOutputPath(outputPath, []string{inputPath}); err != nil {
		return err
	}

	res, err := flags.process(context.Background(), inputPath)
	if err != nil {
		return err
	}

	opts := []generator.Option{
		generator.WithPackageName(flags.PackageName),
		generator.WithFileName(filepath.Base(outputPath)),
	}
	if inputPath != StdinFilePath {
		opts = append(opts, generator.WithSourceName(filepath.Base(inputPath)))
	}
	result, err := generator.Generate(res.Schemas, opts...)
	if err != nil {
		return err
	}

	if !flags.NoWarnings {
		cliutil.WriteIssues(os.Stderr, result.Issues, flags.Verbose)
	}
	if result.HasCriticalIssues() {
		return fmt.Errorf("generation failed with %d critical issue(s)", result.CriticalCount)
	}
	if flags.Strict && result.HasWarnings() {
		return fmt.Errorf("generation failed in strict mode: %d warning(s)", result.WarningCount)
	}

	if err := result.Files[0].WriteFile(outputPath); err != nil {
		return err
	}

	if flags.Verbose {
		OutputSummary(inputPath, res)
	}
	Writef(os.Stderr, "Generated %d type(s) in %s\n", len(result.Types), outputPath)
	return nil
}
