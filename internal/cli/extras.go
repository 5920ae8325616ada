package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/hammamikhairi/tasteverse/internal/display"
	"github.com/hammamikhairi/tasteverse/internal/domain"
)

// NewSessionCommand groups the collaborative session subcommands.
func NewSessionCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Start and list collaborative cooking sessions",
	}
	cmd.AddCommand(newSessionStartCommand(opts))
	cmd.AddCommand(newSessionListCommand(opts))
	return cmd
}

func newSessionStartCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "start [recipe-id]",
		Short: "Start a collaborative session, optionally for a recipe",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var recipeID string
			if len(args) == 1 {
				recipeID = args[0]
			}
			return withApp(opts, cmd, func(ctx context.Context, a *app) error {
				s, err := a.eng.StartSession(ctx, recipeID)
				if err != nil {
					return err
				}
				return a.out.Success(s, display.Sessions([]domain.CollabSession{s}))
			})
		},
	}
}

func newSessionListCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List collaborative sessions, oldest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(opts, cmd, func(ctx context.Context, a *app) error {
				sessions, err := a.eng.Sessions(ctx)
				if err != nil {
					return err
				}
				return a.out.Success(sessions, display.Sessions(sessions))
			})
		},
	}
}

// NewDownloadCommand saves a recipe for offline use.
func NewDownloadCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "download <recipe-id>",
		Short: "Save a recipe for offline use",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(opts, cmd, func(ctx context.Context, a *app) error {
				o, err := a.eng.Download(ctx, args[0])
				if err != nil {
					return err
				}
				return a.out.Success(o, display.OfflineRecipes([]domain.OfflineRecipe{o}))
			})
		},
	}
}

// NewOfflineCommand lists recipes saved for offline use.
func NewOfflineCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "offline",
		Short: "List recipes saved for offline use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(opts, cmd, func(ctx context.Context, a *app) error {
				recipes := a.eng.OfflineRecipes()
				return a.out.Success(recipes, display.OfflineRecipes(recipes))
			})
		},
	}
}

// NewOrderCommand orders the ingredients a recipe needs that the pantry
// lacks.
func NewOrderCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "order <recipe-id>",
		Short: "Order missing ingredients for a recipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(opts, cmd, func(ctx context.Context, a *app) error {
				receipt, ok, err := a.eng.OrderMissing(ctx, args[0])
				if err != nil {
					return err
				}
				if !ok {
					return a.out.Success(nil, "Nothing to order.")
				}
				return a.out.Success(receipt, display.Receipt(receipt))
			})
		},
	}
}
