package main

import (
	"fmt"
	"os"

	"github.com/agnivade/levenshtein"

	"github.com/erraggy/oasblocks"
	"github.com/erraggy/oasblocks/cmd/oasblocks/commands"
	"github.com/erraggy/oasblocks/internal/cliutil"
)

var commandNames = []string{"build", "api", "resources", "serve", "mcp", "version", "help"}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	var err error
	switch command {
	case "version", "-v", "--version":
		fmt.Printf("oasblocks v%s\n\n%s", oasblocks.Version(), oasblocks.BuildInfo())
		return
	case "help", "-h", "--help":
		printUsage()
		return
	case "build":
		err = commands.HandleBuild(os.Args[2:])
	case "api":
		err = commands.HandleAPI(os.Args[2:])
	case "resources":
		err = commands.HandleResources(os.Args[2:])
	case "serve":
		err = commands.HandleServe(os.Args[2:])
	case "mcp":
		err = commands.HandleMCP(os.Args[2:])
	default:
		cliutil.Writef(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			cliutil.Writef(os.Stderr, "Did you mean: %s?\n", suggestion)
		}
		cliutil.Writef(os.Stderr, "\n")
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		cliutil.Writef(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	cliutil.Writef(os.Stderr, `oasblocks - build API documentation from declaring units

Usage:
  oasblocks <command> [flags]

Commands:
  build       Build the root document (1.2 resource listing, 2.0 or 3.0 document)
  api         Build a Swagger 1.2 api declaration for one resource
  resources   List Swagger 1.2 api declaration resource names
  serve       Serve the documentation over HTTP
  mcp         Run an MCP server over stdio
  version     Print the version
  help        Show this help

Run 'oasblocks <command> -h' for command flags.
`)
}

// suggestCommand returns the known command closest to input, or "" when
// none is within an edit distance of 2.
func suggestCommand(input string) string {
	best, bestDist := "", 3
	for _, name := range commandNames {
		if d := levenshtein.ComputeDistance(input, name); d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}
