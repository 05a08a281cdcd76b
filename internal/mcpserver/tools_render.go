package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/schemaview/render"
)

type renderSchemasInput struct {
	Document documentInput `json:"document"           jsonschema:"The refract document to render"`
	Format   string        `json:"format,omitempty"   jsonschema:"Output format: html (default) or text"`
	Title    string        `json:"title,omitempty"    jsonschema:"Page title (default: Data Structures)"`
	Template string        `json:"template,omitempty" jsonschema:"Inline Go template replacing the built-in one"`
}

type renderSchemasOutput struct {
	Format      string `json:"format"`
	Title       string `json:"title"`
	SchemaCount int    `json:"schema_count"`
	Content     string `json:"content"`
}

func handleRenderSchemas(ctx context.Context, _ *mcp.CallToolRequest, input renderSchemasInput) (*mcp.CallToolResult, renderSchemasOutput, error) {
	format := render.FormatHTML
	switch input.Format {
	case "", string(render.FormatHTML):
	case string(render.FormatText):
		format = render.FormatText
	default:
		return errResult(fmt.Errorf("invalid format %q; valid formats: html, text", input.Format)), renderSchemasOutput{}, nil
	}

	title := input.Title
	if title == "" {
		title = render.DefaultTitle
	}

	opts := []render.Option{render.WithFormat(format), render.WithTitle(title)}
	if input.Template != "" {
		opts = append(opts, render.WithTemplateText(input.Template))
	}
	renderer, err := render.New(opts...)
	if err != nil {
		return errResult(err), renderSchemasOutput{}, nil
	}

	res, err := input.Document.resolve(ctx)
	if err != nil {
		return errResult(err), renderSchemasOutput{}, nil
	}

	out, err := renderer.RenderBytes(res.Schemas)
	if err != nil {
		return errResult(err), renderSchemasOutput{}, nil
	}

	return nil, renderSchemasOutput{
		Format:      string(format),
		Title:       title,
		SchemaCount: len(res.Schemas),
		Content:     string(out),
	}, nil
}
