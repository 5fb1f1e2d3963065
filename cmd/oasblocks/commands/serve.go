package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/erraggy/oasblocks/docserver"
	"github.com/erraggy/oasblocks/internal/cliutil"
	"github.com/erraggy/oasblocks/logging"
)

const (
	defaultAddr       = ":8080"
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// ServeFlags contains flags for the serve command
type ServeFlags struct {
	commonFlags
	Addr     string
	BasePath string
	Format   string
}

// SetupServeFlags creates and configures a FlagSet for the serve command.
func SetupServeFlags() (*flag.FlagSet, *ServeFlags) {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	flags := &ServeFlags{}

	fs.StringVar(&flags.Dialect, "dialect", "2.0", "dialect of the bundled units (1.2, 2.0, 3.0)")
	fs.StringVar(&flags.Addr, "addr", envDefault(EnvAddr, defaultAddr), "listen address")
	fs.StringVar(&flags.BasePath, "base", "", "path prefix the documents are served under, e.g. /docs")
	fs.StringVar(&flags.Format, "format", envDefault(EnvFormat, cliutil.FormatJSON), "default response format (json, yaml)")
	fs.StringVar(&flags.Strategy, "strategy", envDefault(EnvCollisionStrategy, ""), "collision strategy (accept-right, accept-left, fail)")
	fs.StringVar(&flags.LogLevel, "log-level", envDefault(EnvLogLevel, "info"), "log level (debug, info, warn, error)")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: oasblocks serve [flags]\n\n")
		cliutil.Writef(fs.Output(), "Serve the documentation over HTTP.\n\n")
		cliutil.Writef(fs.Output(), "Routes:\n")
		cliutil.Writef(fs.Output(), "  GET <base>/                  root document\n")
		cliutil.Writef(fs.Output(), "  GET <base>/apis/<resource>   Swagger 1.2 api declaration\n")
		cliutil.Writef(fs.Output(), "  Add ?format=yaml or send Accept: application/yaml for YAML.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  oasblocks serve -dialect 1.2 -base /docs\n")
		cliutil.Writef(fs.Output(), "  %s=127.0.0.1:9000 oasblocks serve -dialect 3.0\n", EnvAddr)
	}

	return fs, flags
}

// newDocServer validates the serve flags and returns the handler to serve.
func newDocServer(flags *ServeFlags) (*docserver.Server, error) {
	units, _, err := flags.prepare()
	if err != nil {
		return nil, err
	}
	return docserver.New(docserver.Config{
		BasePath:          flags.BasePath,
		DefaultFormat:     flags.Format,
		CollisionStrategy: flags.Strategy,
		Logger:            logging.NewText(stderr, flags.level()),
	}, units)
}

// HandleServe executes the serve command. It blocks until interrupted.
func HandleServe(args []string) error {
	fs, flags := SetupServeFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("serve command takes no arguments")
	}

	handler, err := newDocServer(flags)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              flags.Addr,
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	cliutil.Writef(stderr, "Serving %s documentation on %s%s/\n", flags.Dialect, flags.Addr, flags.BasePath)

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serving: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}
