// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes the oasblocks document builder as MCP tools over stdio.
package mcpserver

import (
	"context"
	"os"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oasblocks"
	"github.com/erraggy/oasblocks/aggregator"
	"github.com/erraggy/oasblocks/builder"
	"github.com/erraggy/oasblocks/logging"
)

const serverInstructions = `oasblocks MCP server: builds API documentation from the declaring units compiled into this binary.

The root document is the Swagger 1.2 resource listing, the OpenAPI 2.0 document or the OpenAPI 3.0 document, depending on the declared root. Swagger 1.2 api declarations are built per resource; call list_resources first to learn the names.

Configuration: defaults come from OASBLOCKS_* environment variables set in your MCP client config.

Key settings:
- OASBLOCKS_FORMAT (default: json): output format when a tool call names none
- OASBLOCKS_COLLISION_STRATEGY (default: accept-right): how a key declared by more than one unit is resolved
- OASBLOCKS_LOG_LEVEL (default: warn): level of the aggregation log written to stderr`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled. units are the declaring units every tool
// call aggregates.
func Run(ctx context.Context, units []any) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "oasblocks", Version: oasblocks.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server, newToolSet(units, cfg, logging.NewText(os.Stderr, cfg.LogLevel)))
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server, ts *toolSet) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "build_root",
		Description: "Build the root documentation document from every declaring unit: the Swagger 1.2 resource listing, the OpenAPI 2.0 document (paths and definitions) or the OpenAPI 3.0 document (paths and components). Returns the document inline, or writes it to output. Keys declared by more than one unit are reported as collisions.",
	}, ts.handleBuildRoot)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "build_api_declaration",
		Description: "Build the Swagger 1.2 api declaration for one resource, including every model. Only available when the root is a Swagger 1.2 resource listing; use list_resources to find resource names.",
	}, ts.handleBuildAPIDeclaration)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_resources",
		Description: "List the resource names of the Swagger 1.2 api declarations, in declaration order. Empty for OpenAPI 2.0 and 3.0 roots.",
	}, ts.handleListResources)
}

// toolSet carries the units and defaults every tool handler works from.
type toolSet struct {
	units []any
	cfg   *serverConfig
	log   logging.Logger
}

func newToolSet(units []any, c *serverConfig, log logging.Logger) *toolSet {
	return &toolSet{units: units, cfg: c, log: logging.OrNop(log)}
}

func (ts *toolSet) builderOptions() []builder.Option {
	opts := []builder.Option{builder.WithLogger(ts.log)}
	if ts.cfg.CollisionStrategy != "" {
		opts = append(opts, builder.WithCollisionStrategy(aggregator.CollisionStrategy(ts.cfg.CollisionStrategy)))
	}
	return opts
}

func (ts *toolSet) format(requested string) string {
	if requested != "" {
		return requested
	}
	return ts.cfg.Format
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
