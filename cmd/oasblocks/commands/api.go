package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/erraggy/oasblocks/builder"
	"github.com/erraggy/oasblocks/internal/cliutil"
)

// APIFlags contains flags for the api command
type APIFlags struct {
	commonFlags
	Format string
	Output string
	Quiet  bool
}

// SetupAPIFlags creates and configures a FlagSet for the api command.
func SetupAPIFlags() (*flag.FlagSet, *APIFlags) {
	fs := flag.NewFlagSet("api", flag.ContinueOnError)
	flags := &APIFlags{}

	fs.StringVar(&flags.Dialect, "dialect", "1.2", "dialect of the bundled units; api declarations only exist in 1.2")
	fs.StringVar(&flags.Format, "format", envDefault(EnvFormat, cliutil.FormatJSON), "output format (json, yaml)")
	fs.StringVar(&flags.Output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Strategy, "strategy", envDefault(EnvCollisionStrategy, ""), "collision strategy (accept-right, accept-left, fail)")
	fs.StringVar(&flags.LogLevel, "log-level", envDefault(EnvLogLevel, "warn"), "log level (debug, info, warn, error)")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: suppress diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: suppress diagnostic messages")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: oasblocks api [flags] <resource>\n\n")
		cliutil.Writef(fs.Output(), "Build the Swagger 1.2 api declaration for one resource, including every model.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  oasblocks api pet\n")
		cliutil.Writef(fs.Output(), "  oasblocks api -format yaml -o user.yaml user\n")
		cliutil.Writef(fs.Output(), "\nRun 'oasblocks resources' to list resource names.\n")
	}

	return fs, flags
}

// HandleAPI executes the api command
func HandleAPI(args []string) error {
	fs, flags := SetupAPIFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("api command requires exactly one resource name")
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	units, opts, err := flags.prepare()
	if err != nil {
		return err
	}
	doc, err := builder.BuildAPIDeclaration(fs.Arg(0), units, opts...)
	if err != nil {
		return fmt.Errorf("building api declaration: %w", err)
	}
	if !flags.Quiet {
		reportCollisions(doc.Collisions)
	}
	return outputDocument(doc, flags.Format, flags.Output, flags.Quiet)
}
