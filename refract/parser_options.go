package refract

import (
	"fmt"
	"io"
	"time"

	"github.com/erraggy/schemaview/internal/options"
)

// Option is a function that configures a parse operation
type Option func(*parseConfig) error

// parseConfig holds configuration for a parse operation
type parseConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	reader   io.Reader
	bytes    []byte

	format         SourceFormat
	drafterPath    string
	drafterTimeout time.Duration
	logger         Logger
	sourceName     *string
}

// ParseWithOptions decodes a refract document using functional options.
//
// Example:
//
//	result, err := refract.ParseWithOptions(
//	    refract.WithFilePath("api.json"),
//	    refract.WithLogger(logger),
//	)
func ParseWithOptions(opts ...Option) (*Result, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("refract: invalid options: %w", err)
	}

	p := &Parser{
		DrafterPath:    cfg.drafterPath,
		DrafterTimeout: cfg.drafterTimeout,
		Logger:         cfg.logger,
	}

	var result *Result
	var parseErr error
	switch {
	case cfg.filePath != nil:
		result, parseErr = p.Parse(*cfg.filePath)
	case cfg.reader != nil:
		if cfg.format != SourceFormatUnknown {
			var data []byte
			data, parseErr = io.ReadAll(cfg.reader)
			if parseErr == nil {
				result, parseErr = p.ParseFormat(data, cfg.format)
			}
		} else {
			result, parseErr = p.ParseReader(cfg.reader)
		}
	case cfg.bytes != nil:
		if cfg.format != SourceFormatUnknown {
			result, parseErr = p.ParseFormat(cfg.bytes, cfg.format)
		} else {
			result, parseErr = p.ParseBytes(cfg.bytes)
		}
	default:
		// Should never reach here due to validation in applyOptions
		return nil, fmt.Errorf("refract: no input source specified")
	}
	if parseErr != nil {
		return nil, parseErr
	}

	if cfg.sourceName != nil {
		result.SourcePath = *cfg.sourceName
	}
	return result, nil
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*parseConfig, error) {
	cfg := &parseConfig{
		format:         SourceFormatUnknown,
		drafterPath:    DefaultDrafterPath,
		drafterTimeout: DefaultDrafterTimeout,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.ValidateSingleInputSource(
		"refract: must specify an input source (use WithFilePath, WithReader, or WithBytes)",
		"refract: must specify exactly one input source",
		cfg.filePath != nil, cfg.reader != nil, cfg.bytes != nil,
	); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithFilePath specifies a file path as the input source
func WithFilePath(path string) Option {
	return func(cfg *parseConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithReader specifies an io.Reader as the input source
func WithReader(r io.Reader) Option {
	return func(cfg *parseConfig) error {
		if r == nil {
			return fmt.Errorf("reader cannot be nil")
		}
		cfg.reader = r
		return nil
	}
}

// WithBytes specifies a byte slice as the input source
func WithBytes(data []byte) Option {
	return func(cfg *parseConfig) error {
		if data == nil {
			return fmt.Errorf("bytes cannot be nil")
		}
		cfg.bytes = data
		return nil
	}
}

// WithFormat forces the input format for reader and byte sources instead of
// detecting it from content. File sources always detect from the extension first.
func WithFormat(format SourceFormat) Option {
	return func(cfg *parseConfig) error {
		cfg.format = format
		return nil
	}
}

// WithDrafterPath sets the drafter executable used for API Blueprint input
func WithDrafterPath(path string) Option {
	return func(cfg *parseConfig) error {
		if path != "" {
			cfg.drafterPath = path
		}
		return nil
	}
}

// WithDrafterTimeout bounds each drafter run. Non-positive values keep the default.
func WithDrafterTimeout(timeout time.Duration) Option {
	return func(cfg *parseConfig) error {
		if timeout > 0 {
			cfg.drafterTimeout = timeout
		}
		return nil
	}
}

// WithLogger sets the structured logger
func WithLogger(l Logger) Option {
	return func(cfg *parseConfig) error {
		cfg.logger = l
		return nil
	}
}

// WithSourceName overrides Result.SourcePath
func WithSourceName(name string) Option {
	return func(cfg *parseConfig) error {
		cfg.sourceName = &name
		return nil
	}
}
