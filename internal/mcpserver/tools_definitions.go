package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/schemaview/resolver"
	"github.com/erraggy/schemaview/walker"
)

type listDefinitionsInput struct {
	Document documentInput `json:"document"         jsonschema:"The refract document to inspect"`
	Offset   int           `json:"offset,omitempty" jsonschema:"Number of definitions to skip"`
	Limit    int           `json:"limit,omitempty"  jsonschema:"Maximum number of definitions to return"`
}

type definitionInfo struct {
	ID          string `json:"id"`
	Kind        string `json:"kind"`
	Description string `json:"description,omitempty"`
	References  int    `json:"references"`
}

type listDefinitionsOutput struct {
	Total        int              `json:"total"`
	Returned     int              `json:"returned"`
	Inputs       int              `json:"inputs"`
	Definitions  []definitionInfo `json:"definitions,omitempty"`
	Unreferenced []string         `json:"unreferenced,omitempty"`
	Undefined    []string         `json:"undefined,omitempty"`
}

// handleListDefinitions only parses the document, so references that would
// fail resolution are still reported.
func handleListDefinitions(ctx context.Context, _ *mcp.CallToolRequest, input listDefinitionsInput) (*mcp.CallToolResult, listDefinitionsOutput, error) {
	parsed, err := input.Document.parse(ctx)
	if err != nil {
		return errResult(err), listDefinitionsOutput{}, nil
	}

	inputs, definitions := resolver.Partition(walker.CollectDataStructures(parsed.Root))
	registry := resolver.NewRegistry(definitions, nil)

	refs, err := walker.CollectReferences(parsed.Root)
	if err != nil {
		return errResult(err), listDefinitionsOutput{}, nil
	}

	ids := registry.IDs()
	all := makeSlice[definitionInfo](len(ids))
	var unreferenced []string
	for _, id := range ids {
		def, _ := registry.Get(id)
		count := len(refs.ByName[id])
		if count == 0 {
			unreferenced = append(unreferenced, id)
		}
		all = append(all, definitionInfo{
			ID:          id,
			Kind:        def.Kind(),
			Description: def.Description(),
			References:  count,
		})
	}

	var undefined []string
	for _, name := range refs.Names() {
		if _, ok := registry.Get(name); !ok {
			undefined = append(undefined, name)
		}
	}

	page := paginate(all, input.Offset, input.Limit)
	return nil, listDefinitionsOutput{
		Total:        len(all),
		Returned:     len(page),
		Inputs:       len(inputs),
		Definitions:  page,
		Unreferenced: unreferenced,
		Undefined:    undefined,
	}, nil
}
