package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/oasblocks/internal/cliutil"
	"github.com/erraggy/oasblocks/internal/mcpserver"
	"github.com/erraggy/oasblocks/internal/petstore"
)

// MCPFlags contains flags for the mcp command
type MCPFlags struct {
	Dialect string
}

// SetupMCPFlags creates and configures a FlagSet for the mcp command.
func SetupMCPFlags() (*flag.FlagSet, *MCPFlags) {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	flags := &MCPFlags{}

	fs.StringVar(&flags.Dialect, "dialect", "2.0", "dialect of the bundled units (1.2, 2.0, 3.0)")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: oasblocks mcp [flags]\n\n")
		cliutil.Writef(fs.Output(), "Run an MCP server over stdio exposing build_root, build_api_declaration\n")
		cliutil.Writef(fs.Output(), "and list_resources. Defaults come from %s, %s and %s.\n\n", EnvFormat, EnvCollisionStrategy, EnvLogLevel)
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
	}

	return fs, flags
}

// HandleMCP executes the mcp command. It blocks until the client disconnects.
func HandleMCP(args []string) error {
	fs, flags := SetupMCPFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("mcp command takes no arguments")
	}

	d, err := ParseDialect(flags.Dialect)
	if err != nil {
		return err
	}
	units, err := petstore.Units(d)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return mcpserver.Run(ctx, units)
}
