package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/erraggy/oasblocks/builder"
	"github.com/erraggy/oasblocks/internal/cliutil"
)

// BuildFlags contains flags for the build command
type BuildFlags struct {
	commonFlags
	Format string
	Output string
	Quiet  bool
}

// SetupBuildFlags creates and configures a FlagSet for the build command.
// Returns the FlagSet and a BuildFlags struct with bound flag variables.
func SetupBuildFlags() (*flag.FlagSet, *BuildFlags) {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	flags := &BuildFlags{}

	fs.StringVar(&flags.Dialect, "dialect", "2.0", "dialect of the bundled units (1.2, 2.0, 3.0)")
	fs.StringVar(&flags.Format, "format", envDefault(EnvFormat, cliutil.FormatJSON), "output format (json, yaml)")
	fs.StringVar(&flags.Output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Strategy, "strategy", envDefault(EnvCollisionStrategy, ""), "collision strategy for keys declared by more than one unit (accept-right, accept-left, fail)")
	fs.StringVar(&flags.LogLevel, "log-level", envDefault(EnvLogLevel, "warn"), "log level (debug, info, warn, error)")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: suppress diagnostic messages (for pipelining)")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: suppress diagnostic messages (for pipelining)")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: oasblocks build [flags]\n\n")
		cliutil.Writef(fs.Output(), "Build the root document from the bundled declaring units.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nDocuments:\n")
		cliutil.Writef(fs.Output(), "  1.2    Swagger 1.2 resource listing\n")
		cliutil.Writef(fs.Output(), "  2.0    OpenAPI 2.0 document with paths and definitions\n")
		cliutil.Writef(fs.Output(), "  3.0    OpenAPI 3.0 document with paths and components\n")
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  oasblocks build -dialect 2.0\n")
		cliutil.Writef(fs.Output(), "  oasblocks build -dialect 3.0 -format yaml -o openapi.yaml\n")
		cliutil.Writef(fs.Output(), "  oasblocks build -dialect 1.2 -strategy fail\n")
		cliutil.Writef(fs.Output(), "\nNotes:\n")
		cliutil.Writef(fs.Output(), "  - Defaults come from %s, %s and %s when set\n", EnvFormat, EnvCollisionStrategy, EnvLogLevel)
		cliutil.Writef(fs.Output(), "  - When -o is specified, file is written with restrictive permissions (0600)\n")
	}

	return fs, flags
}

// HandleBuild executes the build command
func HandleBuild(args []string) error {
	fs, flags := SetupBuildFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("build command takes no arguments")
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	units, opts, err := flags.prepare()
	if err != nil {
		return err
	}
	doc, err := builder.BuildRootDocument(units, opts...)
	if err != nil {
		return fmt.Errorf("building root document: %w", err)
	}
	if !flags.Quiet {
		reportCollisions(doc.Collisions)
	}
	return outputDocument(doc, flags.Format, flags.Output, flags.Quiet)
}
