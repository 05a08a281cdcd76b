package pipeline

import (
	"context"
	"fmt"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/erraggy/schemaview/mapper"
	"github.com/erraggy/schemaview/refract"
	"github.com/erraggy/schemaview/resolver"
	"github.com/erraggy/schemaview/walker"
)

// Result holds the output of a pipeline run and the intermediate state that
// produced it.
type Result struct {
	// Schemas holds one schema per root input, in root-input order.
	Schemas []*mapper.Schema
	// Registry holds the named definitions of the document.
	Registry *resolver.Registry
	// Inputs are the root inputs as collected, before dereferencing.
	Inputs []*refract.Element
	// Source is the decoded document. Nil when Analyze was given a tree.
	Source *refract.Result
}

// Run collects, resolves and maps the document rooted at root and returns the
// schemas.
func Run(ctx context.Context, root *refract.Element, opts ...Option) ([]*mapper.Schema, error) {
	res, err := Analyze(ctx, root, opts...)
	if err != nil {
		return nil, err
	}
	return res.Schemas, nil
}

// Analyze is Run returning the full Result.
func Analyze(ctx context.Context, root *refract.Element, opts ...Option) (*Result, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("pipeline: invalid options: %w", err)
	}
	return analyze(ctx, root, cfg)
}

// Process decodes a document from source (refract.WithFilePath, WithReader
// or WithBytes) and runs the pipeline on it.
func Process(ctx context.Context, source refract.Option, opts ...Option) (*Result, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("pipeline: invalid options: %w", err)
	}

	parseOpts := append([]refract.Option{source, refract.WithLogger(cfg.logger)}, cfg.parseOpts...)
	parsed, err := refract.ParseWithOptions(parseOpts...)
	if err != nil {
		return nil, err
	}

	res, err := analyze(ctx, parsed.Root, cfg)
	if err != nil {
		return nil, err
	}
	res.Source = parsed
	return res, nil
}

func analyze(ctx context.Context, root *refract.Element, cfg *config) (*Result, error) {
	if root == nil {
		return nil, fmt.Errorf("pipeline: nil document")
	}
	log := refract.OrNop(cfg.logger)

	collected := walker.CollectDataStructures(root)
	registry, inputs := resolver.Prepare(collected, resolver.WithLogger(cfg.logger))
	log.Debug("collected data structures",
		"total", len(collected),
		"inputs", len(inputs),
		"definitions", registry.Len())

	schemas, err := mapInputs(ctx, registry, inputs, cfg.concurrency)
	if err != nil {
		return nil, err
	}
	log.Debug("mapped schemas", "count", len(schemas))

	return &Result{
		Schemas:  schemas,
		Registry: registry,
		Inputs:   inputs,
	}, nil
}

// mapInputs dereferences and maps each input. Results are stored by index so
// the output order does not depend on scheduling.
func mapInputs(ctx context.Context, registry *resolver.Registry, inputs []*refract.Element, concurrency int) ([]*mapper.Schema, error) {
	schemas := make([]*mapper.Schema, len(inputs))

	if concurrency <= 1 || len(inputs) < 2 {
		for i, input := range inputs {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			s, err := mapInput(registry, input, i)
			if err != nil {
				return nil, err
			}
			schemas[i] = s
		}
		return schemas, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, input := range inputs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			s, err := mapInput(registry, input, i)
			if err != nil {
				return err
			}
			schemas[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return schemas, nil
}

func mapInput(registry *resolver.Registry, input *refract.Element, index int) (*mapper.Schema, error) {
	resolved, err := registry.Dereference(input)
	if err != nil {
		return nil, err
	}
	return mapper.MapAt(resolved, "$["+strconv.Itoa(index)+"]")
}
