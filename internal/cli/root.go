// Package cli implements the tasteverse command tree.
package cli

import (
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"

	"github.com/hammamikhairi/tasteverse/internal/config"
	"github.com/hammamikhairi/tasteverse/internal/display"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Config  config.Config // settings from the environment, overridden by flags
	Verbose bool
	Quiet   bool
	Format  string // "json" | "text"
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command. cfg supplies the defaults the
// persistent flags start from.
func NewRootCommand(cfg config.Config) *cobra.Command {
	cmd, _ := newRootCommand(cfg)
	return cmd
}

// Execute runs the command tree with args and reports a failure in the
// selected output format. It returns the process exit code.
func Execute(ctx context.Context, cfg config.Config, args []string, stdout, stderr io.Writer) int {
	cmd, opts := newRootCommand(cfg)
	cmd.SilenceErrors = true
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return ExitSuccess
	}
	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), ErrWriter: cmd.ErrOrStderr()}
	if !slices.Contains(ValidFormats, out.Format) {
		out.Format = "text"
	}
	out.Error(err)
	return GetExitCode(err)
}

func newRootCommand(cfg config.Config) (*cobra.Command, *RootOptions) {
	opts := &RootOptions{Config: cfg}

	cmd := &cobra.Command{
		Use:   "tasteverse",
		Short: "TasteVerse - recipes for beginner cooks",
		Long: `Browse beginner-friendly recipes, track your cooking progress,
earn badges and keep a pantry, all from the terminal.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), display.RenderBanner(display.TermWidth(), opts.Config.Catalog))
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			if err := opts.Config.Validate(); err != nil {
				return &ExitError{Code: ExitCommandError, Message: "invalid configuration", Err: err}
			}
			return nil
		},
	}

	// Global flags
	pf := cmd.PersistentFlags()
	pf.BoolVarP(&opts.Verbose, "verbose", "v", false, "enable debug logging")
	pf.BoolVarP(&opts.Quiet, "quiet", "q", false, "disable all logging")
	pf.StringVar(&opts.Format, "format", "text", "output format (json|text)")
	pf.StringVar(&opts.Config.DBPath, "db", cfg.DBPath, "SQLite database path")
	pf.StringVar(&opts.Config.Store, "store", cfg.Store, "storage backend (sqlite|memory)")
	pf.StringVar(&opts.Config.Catalog, "catalog", cfg.Catalog, "recipe catalog (beginner|featured)")
	pf.StringVar(&opts.Config.LogFile, "log-file", cfg.LogFile, `file to write logs to ("stderr" for the console)`)

	// Add subcommands
	cmd.AddCommand(NewRecipesCommand(opts))
	cmd.AddCommand(NewSearchCommand(opts))
	cmd.AddCommand(NewMatchCommand(opts))
	cmd.AddCommand(NewShowCommand(opts))
	cmd.AddCommand(NewCookCommand(opts))
	cmd.AddCommand(NewProgressCommand(opts))
	cmd.AddCommand(NewProfileCommand(opts))
	cmd.AddCommand(NewScanCommand(opts))
	cmd.AddCommand(NewPantryCommand(opts))
	cmd.AddCommand(NewAllergiesCommand(opts))
	cmd.AddCommand(NewSessionCommand(opts))
	cmd.AddCommand(NewDownloadCommand(opts))
	cmd.AddCommand(NewOfflineCommand(opts))
	cmd.AddCommand(NewOrderCommand(opts))
	cmd.AddCommand(NewTimerCommand(opts))

	return cmd, opts
}
