package commands

import (
	"context"
	"errors"
	"flag"
	"os"

	"github.com/erraggy/schemaview/render"
)

// RenderFlags contains flags for the render command
type RenderFlags struct {
	InputFlags
	Template string
	Text     bool
	Title    string
}

// SetupRenderFlags creates and configures a FlagSet for the render command.
func SetupRenderFlags() (*flag.FlagSet, *RenderFlags) {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	flags := &RenderFlags{}

	flags.bind(fs)
	fs.StringVar(&flags.Template, "template", "", "custom template file")
	fs.BoolVar(&flags.Text, "text", false, "render with text/template instead of html/template")
	fs.StringVar(&flags.Title, "title", render.DefaultTitle, "page title")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: schemaview render [flags] <input|-> <output>\n\n")
		Writef(fs.Output(), "Render the data structures of a refract document to an HTML page.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  schemaview render api.json schemas.html\n")
		Writef(fs.Output(), "  schemaview render --text --template schemas.md.tmpl api.json schemas.md\n")
		Writef(fs.Output(), "  schemaview render --drafter /usr/local/bin/drafter api.apib schemas.html\n")
		Writef(fs.Output(), "  cat api.json | schemaview render - schemas.html\n")
	}

	return fs, flags
}

// HandleRender executes the render command
func HandleRender(args []string) error {
	fs, flags := SetupRenderFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 2 {
		fs.Usage()
		return &UsageError{Command: "render", Message: "requires an input path and an output path"}
	}
	inputPath, outputPath := fs.Arg(0), fs.Arg(1)

	if err := ValidateOutputPath(outputPath, []string{inputPath}); err != nil {
		return err
	}

	format := render.FormatHTML
	if flags.Text {
		format = render.FormatText
	}
	opts := []render.Option{render.WithFormat(format), render.WithTitle(flags.Title)}
	if flags.Template != "" {
		opts = append(opts, render.WithTemplateFile(flags.Template))
	}
	renderer, err := render.New(opts...)
	if err != nil {
		return err
	}

	res, err := flags.process(context.Background(), inputPath)
	if err != nil {
		return err
	}

	out, err := renderer.RenderBytes(res.Schemas)
	if err != nil {
		return err
	}
	if err := writeOutput(outputPath, out); err != nil {
		return err
	}

	if flags.Verbose {
		OutputSummary(inputPath, res)
	}
	Writef(os.Stderr, "Rendered %d data structure(s) to %s\n", len(res.Schemas), outputPath)
	return nil
}
