// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes schemaview capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/schemaview"
)

const serverInstructions = `schemaview MCP server. Maps the data structures of refract documents (API Elements, as produced by drafter) to schemas, renders them, and generates Go types.

Documents are passed as file, url, or inline content. API Blueprint files need a drafter executable.

Configuration: All defaults are configurable via SCHEMAVIEW_* environment variables set in your MCP client config.

Key settings:
- SCHEMAVIEW_CACHE_FILE_TTL (default: 15m): cache TTL for local files
- SCHEMAVIEW_CACHE_URL_TTL (default: 5m): cache TTL for fetched URLs
- SCHEMAVIEW_CACHE_ENABLED (default: true): disable document caching entirely
- SCHEMAVIEW_LIST_LIMIT (default: 100): default page size for map_schemas and list_definitions
- SCHEMAVIEW_CONCURRENCY (default: 4): data structures mapped in parallel
- SCHEMAVIEW_DRAFTER: drafter executable for API Blueprint input

Caching: Processed documents are cached per session. File entries use path+mtime as key (auto-invalidated on change). A background sweeper removes expired entries.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	if cfg.CacheEnabled {
		documentCache.startSweeper(ctx, cfg.CacheSweepInterval)
	}

	server := newServer()
	return server.Run(ctx, &mcp.StdioTransport{})
}

func newServer() *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "schemaview", Version: schemaview.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "map_schemas",
		Description: "Map the data structures of a refract document to schemas. Each schema has name, type, typeDisplay, description, required, example, and nested properties. References are resolved and named-type inheritance is applied. Use offset/limit to paginate; total gives the full count.",
	}, handleMapSchemas)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "render_schemas",
		Description: "Render the data structures of a refract document as an HTML page (default) or plain text (format=text). Optionally pass a custom Go template via template.",
	}, handleRenderSchemas)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_definitions",
		Description: "List the named type definitions of a refract document in definition order, with how often each is referenced. Unreferenced definitions and references to undefined names are reported separately.",
	}, handleListDefinitions)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate_types",
		Description: "Generate Go type definitions from the data structures of a refract document. Returns the Go source and any generation issues. Set output_dir to also write the file to disk.",
	}, handleGenerateTypes)
}

// paginate applies offset/limit pagination to a slice, returning the
// requested page. A non-positive limit defaults to cfg.ListLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = cfg.ListLimit
	}
	if limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}
	if offset < 0 || offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end < offset || end > len(items) { // overflow or beyond slice
		end = len(items)
	}
	return items[offset:end]
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
