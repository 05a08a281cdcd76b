package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/schemaview/mapper"
)

type mapSchemasInput struct {
	Document documentInput `json:"document"          jsonschema:"The refract document to map"`
	Offset   int           `json:"offset,omitempty"  jsonschema:"Number of schemas to skip"`
	Limit    int           `json:"limit,omitempty"   jsonschema:"Maximum number of schemas to return (default from SCHEMAVIEW_LIST_LIMIT)"`
}

type mapSchemasOutput struct {
	Total    int      `json:"total"`
	Returned int      `json:"returned"`
	Offset   int      `json:"offset"`
	Warnings []string `json:"warnings,omitempty"`
	// Schemas holds []*mapper.Schema. The schema type is recursive, which
	// output schema inference cannot express, so it is left untyped here.
	Schemas any `json:"schemas"`
}

func handleMapSchemas(ctx context.Context, _ *mcp.CallToolRequest, input mapSchemasInput) (*mcp.CallToolResult, mapSchemasOutput, error) {
	res, err := input.Document.resolve(ctx)
	if err != nil {
		return errResult(err), mapSchemasOutput{}, nil
	}

	page := paginate(res.Schemas, input.Offset, input.Limit)
	if page == nil {
		page = []*mapper.Schema{}
	}

	output := mapSchemasOutput{
		Total:    len(res.Schemas),
		Returned: len(page),
		Offset:   input.Offset,
		Schemas:  page,
	}
	if res.Source != nil {
		output.Warnings = res.Source.Warnings
	}
	return nil, output, nil
}
