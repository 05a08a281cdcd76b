package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/schemaview/generator"
)

type generateTypesInput struct {
	Document    documentInput `json:"document"               jsonschema:"The refract document to generate types from"`
	PackageName string        `json:"package_name,omitempty" jsonschema:"Go package name for generated code (default: schemas)"`
	OutputDir   string        `json:"output_dir,omitempty"   jsonschema:"Directory to also write the generated file to"`
}

type generateTypesOutput struct {
	Success       bool     `json:"success"`
	PackageName   string   `json:"package_name"`
	FileName      string   `json:"file_name"`
	OutputDir     string   `json:"output_dir,omitempty"`
	Types         []string `json:"types,omitempty"`
	Issues        []string `json:"issues,omitempty"`
	WarningCount  int      `json:"warning_count"`
	CriticalCount int      `json:"critical_count"`
	Source        string   `json:"source"`
}

func handleGenerateTypes(ctx context.Context, _ *mcp.CallToolRequest, input generateTypesInput) (*mcp.CallToolResult, generateTypesOutput, error) {
	res, err := input.Document.resolve(ctx)
	if err != nil {
		return errResult(err), generateTypesOutput{}, nil
	}

	var opts []generator.Option
	if input.PackageName != "" {
		opts = append(opts, generator.WithPackageName(input.PackageName))
	}

	result, err := generator.Generate(res.Schemas, opts...)
	if err != nil {
		return errResult(err), generateTypesOutput{}, nil
	}

	if input.OutputDir != "" {
		if err := result.WriteFiles(input.OutputDir); err != nil {
			return errResult(fmt.Errorf("failed to write generated files: %w", err)), generateTypesOutput{}, nil
		}
	}

	file := result.Files[0]
	output := generateTypesOutput{
		Success:       result.Success,
		PackageName:   result.PackageName,
		FileName:      file.Name,
		OutputDir:     input.OutputDir,
		Types:         result.Types,
		WarningCount:  result.WarningCount,
		CriticalCount: result.CriticalCount,
		Source:        string(file.Content),
	}
	output.Issues = makeSlice[string](len(result.Issues))
	for _, issue := range result.Issues {
		output.Issues = append(output.Issues, issue.String())
	}

	return nil, output, nil
}
