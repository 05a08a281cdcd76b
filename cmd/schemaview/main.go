package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/schemaview"
	"github.com/erraggy/schemaview/cmd/schemaview/commands"
	"github.com/erraggy/schemaview/internal/mcpserver"
)

// Exit codes
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

var commandNames = []string{"render", "schemas", "generate", "mcp", "version", "help"}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) < 1 {
		printUsage()
		return exitUsage
	}

	command := args[0]
	var err error

	switch command {
	case "version", "-v", "--version":
		commands.Writef(os.Stdout, "%s", schemaview.BuildInfo())
		return exitOK
	case "help", "-h", "--help":
		printUsage()
		return exitOK
	case "render":
		err = commands.HandleRender(args[1:])
	case "schemas":
		err = commands.HandleSchemas(args[1:])
	case "generate":
		err = commands.HandleGenerate(args[1:])
	case "mcp":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		err = mcpserver.Run(ctx)
	default:
		commands.Writef(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			commands.Writef(os.Stderr, "Did you mean: %s?\n", suggestion)
		}
		commands.Writef(os.Stderr, "\n")
		printUsage()
		return exitUsage
	}

	if err != nil {
		commands.Writef(os.Stderr, "Error: %v\n", err)
		if commands.IsUsageError(err) {
			return exitUsage
		}
		return exitError
	}
	return exitOK
}

// suggestCommand returns the closest known command within edit distance 2,
// or "" when nothing is close enough.
func suggestCommand(input string) string {
	best, bestDist := "", 3
	for _, name := range commandNames {
		if d := levenshtein(input, name); d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}

func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func printUsage() {
	commands.Writef(os.Stderr, `schemaview - Render the data structures of API description documents

Usage:
  schemaview <command> [flags] [args]

Commands:
  render     Render data structures to an HTML (or text) page
  schemas    Print the mapped schemas as JSON or YAML
  generate   Generate Go type definitions
  mcp        Start the MCP server over stdio
  version    Show version information
  help       Show this help message

Examples:
  schemaview render api.json schemas.html
  schemaview schemas --format yaml api.json
  schemaview generate -p models api.json models/types.go

Run 'schemaview <command> --help' for more information on a command.
`)
}
