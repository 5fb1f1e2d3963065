package commands

import (
	"errors"
	"flag"
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/erraggy/oasblocks/builder"
	"github.com/erraggy/oasblocks/internal/cliutil"
)

// ResourcesFlags contains flags for the resources command
type ResourcesFlags struct {
	commonFlags
	Titles bool
}

// SetupResourcesFlags creates and configures a FlagSet for the resources command.
func SetupResourcesFlags() (*flag.FlagSet, *ResourcesFlags) {
	fs := flag.NewFlagSet("resources", flag.ContinueOnError)
	flags := &ResourcesFlags{}

	fs.StringVar(&flags.Dialect, "dialect", "1.2", "dialect of the bundled units")
	fs.StringVar(&flags.Strategy, "strategy", envDefault(EnvCollisionStrategy, ""), "collision strategy (accept-right, accept-left, fail)")
	fs.StringVar(&flags.LogLevel, "log-level", envDefault(EnvLogLevel, "warn"), "log level (debug, info, warn, error)")
	fs.BoolVar(&flags.Titles, "titles", false, "print each resource with a title-cased display name")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: oasblocks resources [flags]\n\n")
		cliutil.Writef(fs.Output(), "List the Swagger 1.2 api declaration resource names, one per line.\n")
		cliutil.Writef(fs.Output(), "OpenAPI 2.0 and 3.0 roots have none.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
	}

	return fs, flags
}

// HandleResources executes the resources command
func HandleResources(args []string) error {
	fs, flags := SetupResourcesFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("resources command takes no arguments")
	}

	units, opts, err := flags.prepare()
	if err != nil {
		return err
	}
	resources, err := builder.ListResources(units, opts...)
	if err != nil {
		return fmt.Errorf("listing resources: %w", err)
	}

	title := cases.Title(language.English)
	for _, r := range resources {
		if flags.Titles {
			cliutil.Writef(stdout, "%s\t%s\n", r, title.String(r))
			continue
		}
		cliutil.Writef(stdout, "%s\n", r)
	}
	return nil
}
