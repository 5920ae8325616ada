package cli

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hammamikhairi/tasteverse/internal/display"
)

// NewCookCommand marks a recipe as cooked.
func NewCookCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "cook <recipe-id>",
		Short: "Record that you finished cooking a recipe",
		Long: `Record a completed recipe. This advances your beginner progress,
updates your profile stats and unlocks any achievements you earned.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(opts, cmd, func(ctx context.Context, a *app) error {
				res, err := a.eng.CompleteRecipe(ctx, args[0])
				if err != nil {
					return err
				}
				return a.out.Success(res, display.Progress(res.Progress))
			})
		},
	}
}

// NewProgressCommand shows the beginner progress.
func NewProgressCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "progress",
		Short: "Show your beginner progress and confidence",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(opts, cmd, func(ctx context.Context, a *app) error {
				p := a.eng.Progress()
				return a.out.Success(p, display.Progress(p))
			})
		},
	}
}

// NewTimerCommand runs the timer of a recipe step in the foreground.
func NewTimerCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "timer <recipe-id> <step>",
		Short:   "Run the timer of a recipe step",
		Example: `  tasteverse timer grilled-cheese-sandwich 4`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			step, err := strconv.Atoi(args[1])
			if err != nil {
				return &ExitError{Code: ExitCommandError, Message: "step must be a number", Err: err}
			}
			return withApp(opts, cmd, func(ctx context.Context, a *app) error {
				return a.eng.StepTimer(ctx, args[0], step)
			})
		},
	}
}
