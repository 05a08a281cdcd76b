// Package commands provides CLI command handlers for schemaview.
package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/erraggy/schemaview"
	"github.com/erraggy/schemaview/internal/cliutil"
	"github.com/erraggy/schemaview/internal/fileutil"
	"github.com/erraggy/schemaview/pipeline"
	"github.com/erraggy/schemaview/refract"
)

// Output format constants
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// UsageError reports a wrong number of arguments. The CLI exits with
// status 2 for it.
type UsageError struct {
	Command string
	Message string
}

func (e *UsageError) Error() string {
	return e.Command + ": " + e.Message
}

// IsUsageError reports whether err is, or wraps, a UsageError.
func IsUsageError(err error) bool {
	var ue *UsageError
	return errors.As(err, &ue)
}

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s", format, FormatJSON, FormatYAML)
	}
	return nil
}

// InputFlags are the flags shared by every command that reads a document.
type InputFlags struct {
	Drafter     string
	InputFormat string
	Concurrency int
	Verbose     bool
}

func (f *InputFlags) bind(fs *flag.FlagSet) {
	fs.StringVar(&f.Drafter, "drafter", refract.DefaultDrafterPath, "path to the drafter executable used for API Blueprint input")
	fs.StringVar(&f.InputFormat, "input-format", "", "input format (json, yaml, apib); detected when empty")
	fs.IntVar(&f.Concurrency, "concurrency", pipeline.DefaultConcurrency, "number of data structures mapped in parallel")
	fs.BoolVar(&f.Verbose, "v", false, "log progress to stderr")
	fs.BoolVar(&f.Verbose, "verbose", false, "log progress to stderr")
}

// logger returns a stderr logger at warn level, or debug level when verbose.
func (f *InputFlags) logger() refract.Logger {
	level := slog.LevelWarn
	if f.Verbose {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return refract.NewSlogAdapter(slog.New(h))
}

// process runs the full pipeline on inputPath, reading stdin for "-".
func (f *InputFlags) process(ctx context.Context, inputPath string) (*pipeline.Result, error) {
	source := refract.WithFilePath(inputPath)
	if inputPath == StdinFilePath {
		source = refract.WithReader(os.Stdin)
	}

	parseOpts := []refract.Option{refract.WithDrafterPath(f.Drafter)}
	if f.InputFormat != "" {
		format, err := refract.ParseSourceFormat(f.InputFormat)
		if err != nil {
			return nil, err
		}
		parseOpts = append(parseOpts, refract.WithFormat(format))
	}

	return pipeline.Process(ctx, source,
		pipeline.WithConcurrency(f.Concurrency),
		pipeline.WithLogger(f.logger()),
		pipeline.WithParseOptions(parseOpts...),
	)
}

// ValidateOutputPath checks if the output path is safe to write to
func ValidateOutputPath(outputPath string, inputPaths []string) error {
	absOutputPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("invalid output path: %w", err)
	}

	for _, inputPath := range inputPaths {
		if inputPath == StdinFilePath {
			continue
		}
		absInputPath, err := filepath.Abs(inputPath)
		if err != nil {
			return fmt.Errorf("invalid input path %s: %w", inputPath, err)
		}

		if absOutputPath == absInputPath {
			return fmt.Errorf("output file %s would overwrite input file %s", outputPath, inputPath)
		}
	}

	return RejectSymlinkOutput(filepath.Clean(outputPath))
}

// RejectSymlinkOutput checks if the output path is a symlink and returns an error if so.
func RejectSymlinkOutput(cleanedPath string) error {
	info, err := os.Lstat(cleanedPath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("commands: checking output path: %w", err)
	}
	if info.Mode()&os.ModeSymlink != 0 {
		return fmt.Errorf("commands: refusing to write to symlink: %s", cleanedPath)
	}
	return nil
}

// writeOutput writes data to path, creating parent directories.
func writeOutput(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), fileutil.DirMode); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(path, data, fileutil.ReadableByAll); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// FormatInputPath returns a display-friendly path for the input document.
func FormatInputPath(path string) string {
	if path == StdinFilePath {
		return "<stdin>"
	}
	return path
}

// Writef writes formatted output to the writer.
func Writef(w io.Writer, format string, args ...any) {
	cliutil.Writef(w, format, args...)
}

// OutputSummary prints a short run summary to stderr.
func OutputSummary(inputPath string, res *pipeline.Result) {
	Writef(os.Stderr, "schemaview version: %s\n", schemaview.Version())
	Writef(os.Stderr, "Input: %s\n", FormatInputPath(inputPath))
	if res.Source != nil {
		Writef(os.Stderr, "Source Size: %s\n", refract.FormatBytes(res.Source.SourceSize))
	}
	Writef(os.Stderr, "Definitions: %d\n", res.Registry.Len())
	Writef(os.Stderr, "Schemas: %d\n", len(res.Schemas))
}
