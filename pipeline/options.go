package pipeline

import (
	"github.com/erraggy/schemaview/internal/options"
	"github.com/erraggy/schemaview/refract"
)

// DefaultConcurrency maps root inputs sequentially.
const DefaultConcurrency = 1

// Option configures a pipeline run.
type Option func(*config) error

type config struct {
	concurrency int
	logger      refract.Logger
	parseOpts   []refract.Option
}

func applyOptions(opts ...Option) (*config, error) {
	cfg := &config{concurrency: DefaultConcurrency}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// WithConcurrency sets how many root inputs are resolved and mapped at once.
// n must be at least 1.
func WithConcurrency(n int) Option {
	return func(cfg *config) error {
		if err := options.ValidatePositive("concurrency", n); err != nil {
			return err
		}
		cfg.concurrency = n
		return nil
	}
}

// WithLogger sets the logger for pipeline progress and registry diagnostics.
func WithLogger(l refract.Logger) Option {
	return func(cfg *config) error {
		cfg.logger = l
		return nil
	}
}

// WithParseOptions adds refract parse options, such as a drafter path, used
// by Process.
func WithParseOptions(opts ...refract.Option) Option {
	return func(cfg *config) error {
		cfg.parseOpts = append(cfg.parseOpts, opts...)
		return nil
	}
}
