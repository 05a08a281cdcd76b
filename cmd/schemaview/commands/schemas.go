package commands

import (
	"context"
	"errors"
	"flag"
	"os"

	"github.com/erraggy/schemaview/render"
)

// SchemasFlags contains flags for the schemas command
type SchemasFlags struct {
	InputFlags
	Format string
}

// SetupSchemasFlags creates and configures a FlagSet for the schemas command.
func SetupSchemasFlags() (*flag.FlagSet, *SchemasFlags) {
	fs := flag.NewFlagSet("schemas", flag.ContinueOnError)
	flags := &SchemasFlags{}

	flags.bind(fs)
	fs.StringVar(&flags.Format, "format", FormatJSON, "output format: json or yaml")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: schemaview schemas [flags] <input|->\n\n")
		Writef(fs.Output(), "Print the mapped schemas of a refract document.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  schemaview schemas api.json\n")
		Writef(fs.Output(), "  schemaview schemas --format yaml api.yaml\n")
		Writef(fs.Output(), "  cat api.json | schemaview schemas -\n")
	}

	return fs, flags
}

// HandleSchemas executes the schemas command
func HandleSchemas(args []string) error {
	fs, flags := SetupSchemasFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return &UsageError{Command: "schemas", Message: "requires exactly one input path or '-' for stdin"}
	}
	inputPath := fs.Arg(0)

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	res, err := flags.process(context.Background(), inputPath)
	if err != nil {
		return err
	}

	out, err := render.Structured(res.Schemas, flags.Format)
	if err != nil {
		return err
	}
	if flags.Verbose {
		OutputSummary(inputPath, res)
	}
	Writef(os.Stdout, "%s\n", out)
	return nil
}
