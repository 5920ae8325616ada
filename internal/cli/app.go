package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hammamikhairi/tasteverse/internal/clock"
	"github.com/hammamikhairi/tasteverse/internal/config"
	"github.com/hammamikhairi/tasteverse/internal/display"
	"github.com/hammamikhairi/tasteverse/internal/domain"
	"github.com/hammamikhairi/tasteverse/internal/engine"
	"github.com/hammamikhairi/tasteverse/internal/gamification"
	"github.com/hammamikhairi/tasteverse/internal/ident"
	"github.com/hammamikhairi/tasteverse/internal/logger"
	"github.com/hammamikhairi/tasteverse/internal/progress"
	"github.com/hammamikhairi/tasteverse/internal/recipe"
	"github.com/hammamikhairi/tasteverse/internal/storage"
)

// app is the wired application a single command runs against.
type app struct {
	eng     *engine.Engine
	out     *OutputFormatter
	log     *logger.Logger
	closers []func() error
}

// withApp wires the application for cmd, runs fn and releases every
// resource afterwards.
func withApp(opts *RootOptions, cmd *cobra.Command, fn func(ctx context.Context, a *app) error) error {
	a, err := openApp(cmd.Context(), opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer a.close()
	return fn(cmd.Context(), a)
}

func openApp(ctx context.Context, opts *RootOptions, stdout, stderr io.Writer) (_ *app, err error) {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg := opts.Config
	a := &app{out: &OutputFormatter{Format: opts.Format, Writer: stdout, ErrWriter: stderr}}
	defer func() {
		if err != nil {
			a.close()
		}
	}()

	logOut := a.openLogOutput(cfg.LogFile, stderr)
	a.log = logger.New(logLevel(opts), logOut)
	a.closers = append(a.closers, func() error { a.log.Sync(); return nil })

	store, err := a.openStore(cfg)
	if err != nil {
		return nil, err
	}

	catalog, err := recipe.Builtin(cfg.Catalog, a.log)
	if err != nil {
		return nil, err
	}
	tracker, err := progress.Open(ctx, store, a.log)
	if err != nil {
		return nil, fmt.Errorf("loading progress: %w", err)
	}
	ids := ident.UUID{}
	clk := clock.System{}
	mgr, err := gamification.Open(ctx, store, a.log,
		gamification.WithClock(clk),
		gamification.WithIDs(ids),
	)
	if err != nil {
		return nil, fmt.Errorf("loading profile: %w", err)
	}

	// Notifications must not interleave with JSON output.
	notifyOut := stdout
	if opts.Format == "json" {
		notifyOut = stderr
	}
	notifier := display.NewCLINotifier(a.log, display.NewPrinter(notifyOut))

	a.eng = engine.New(catalog, tracker, mgr, a.log, engine.WithNotifier(notifier))
	a.log.Debug("wired %s catalog on %s store", cfg.Catalog, cfg.Store)
	return a, nil
}

func logLevel(opts *RootOptions) logger.Level {
	switch {
	case opts.Quiet:
		return logger.LevelOff
	case opts.Verbose:
		return logger.LevelVerbose
	default:
		return logger.ParseLevel(opts.Config.LogLevel)
	}
}

// openLogOutput directs logs to a file so command output stays clean.
func (a *app) openLogOutput(path string, stderr io.Writer) io.Writer {
	if path == "" || path == "stderr" {
		return stderr
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fmt.Fprintf(stderr, "warning: could not create log directory %s: %v (falling back to stderr)\n", dir, err)
			return stderr
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(stderr, "warning: could not open log file %s: %v (falling back to stderr)\n", path, err)
		return stderr
	}
	a.closers = append(a.closers, f.Close)
	return f
}

func (a *app) openStore(cfg config.Config) (domain.Store, error) {
	if cfg.Store == config.StoreMemory {
		return storage.NewMemoryStore(a.log), nil
	}
	s, err := storage.OpenSQLite(cfg.DBPath, a.log)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, s.Close)
	a.log.Debug("using sqlite store at %s", s.Path())
	return s, nil
}

// close releases resources in reverse order of acquisition.
func (a *app) close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
