// Package schemaview turns API description documents into normalized,
// display-ready schema trees.
//
// schemaview reads a parsed API description in the refract element format
// (as produced by drafter for API Blueprint, in either the refract 0.6 or
// the API Elements 1.0 dialect), extracts its data structures, resolves
// named-type references, and maps each root data structure to a uniform
// schema record that templates can render.
//
// # Overview
//
// The library consists of these packages:
//
//   - refract: element model and decoding of JSON, YAML or API Blueprint input
//   - walker: document traversal and the data-structure collector
//   - resolver: the definition registry and reference dereferencing
//   - mapper: conversion of resolved structures into schemas
//   - pipeline: the full collect, resolve and map run
//   - render: JSON and YAML output, HTML and text reports
//   - generator: Go type definitions from mapped schemas
//   - schemaerrors: the error taxonomy shared by all packages
//
// # Installation
//
//	go get github.com/erraggy/schemaview
//
// # Quick Start
//
// Render the data structures of a document as an HTML report:
//
//	import (
//		"github.com/erraggy/schemaview/pipeline"
//		"github.com/erraggy/schemaview/refract"
//		"github.com/erraggy/schemaview/render"
//	)
//
//	res, err := pipeline.Process(ctx, refract.WithFilePath("api.json"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	r, err := render.New(render.WithTitle("My API"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	html, err := r.RenderBytes(res.Schemas)
//
// Work with an already decoded tree:
//
//	schemas, err := pipeline.Run(ctx, root, pipeline.WithConcurrency(4))
//
// # Schemas
//
// Each root data structure becomes one schema. Objects list their members as
// properties and summarize them as "{id, name}"; arrays summarize their item
// type as "[string]", or "[]" when the items disagree; members carry a
// required flag and a description; primitives carry their literal value as an
// example.
//
// # Errors
//
// Failures never produce partial output. Use errors.Is with the sentinels in
// package schemaerrors to tell them apart:
//
//	if errors.Is(err, schemaerrors.ErrCyclicReference) {
//		// two named types refer to each other
//	}
//
// # Command Line
//
// The schemaview command wraps the library:
//
//	schemaview render api.apib report.html
//	schemaview schemas --format yaml api.json
//	schemaview generate --package models api.json models.go
//	schemaview mcp
package schemaview
