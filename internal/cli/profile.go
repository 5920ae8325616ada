package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hammamikhairi/tasteverse/internal/display"
	"github.com/hammamikhairi/tasteverse/internal/domain"
)

// NewProfileCommand shows the gamified profile.
func NewProfileCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Show your level, points, badges and preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(opts, cmd, func(ctx context.Context, a *app) error {
				p := a.eng.Profile()
				unlocked := a.eng.Achievements()
				data := struct {
					Profile      domain.UserProfile           `json:"profile"`
					Achievements []domain.UnlockedAchievement `json:"achievements"`
				}{p, unlocked}
				return a.out.Success(data, display.Profile(p, unlocked))
			})
		},
	}
}

// NewScanCommand scans an ingredient barcode into the pantry.
func NewScanCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "scan",
		Short: "Scan an ingredient barcode into your pantry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(opts, cmd, func(ctx context.Context, a *app) error {
				res, err := a.eng.Scan(ctx)
				if err != nil {
					return err
				}
				return a.out.Success(res, display.Pantry([]domain.PantryItem{res.Item}))
			})
		},
	}
}

// NewPantryCommand groups the pantry subcommands.
func NewPantryCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pantry",
		Short: "Manage your pantry",
	}
	cmd.AddCommand(newPantryListCommand(opts))
	cmd.AddCommand(newPantryAddCommand(opts))
	return cmd
}

func newPantryListCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List pantry items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(opts, cmd, func(ctx context.Context, a *app) error {
				items := a.eng.Pantry()
				return a.out.Success(items, display.Pantry(items))
			})
		},
	}
}

func newPantryAddCommand(opts *RootOptions) *cobra.Command {
	var item domain.PantryItem

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add an ingredient to the pantry",
		Long: `Add an ingredient to the pantry. Adding an item with an id that is
already in the pantry adds the quantity to the existing entry.`,
		Example: `  tasteverse pantry add flour --qty 2 --unit kg --category baking`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			item.Name = args[0]
			return withApp(opts, cmd, func(ctx context.Context, a *app) error {
				added, err := a.eng.AddToPantry(ctx, item)
				if err != nil {
					return err
				}
				return a.out.Success(added, display.Pantry([]domain.PantryItem{added}))
			})
		},
	}

	f := cmd.Flags()
	f.StringVar(&item.ID, "id", "", "item id (generated when empty)")
	f.Float64Var(&item.Quantity, "qty", 1, "quantity")
	f.StringVar(&item.Unit, "unit", "", "unit of the quantity")
	f.StringVar(&item.Category, "category", "", "ingredient category")
	return cmd
}

// NewAllergiesCommand groups the allergy subcommands.
func NewAllergiesCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "allergies",
		Short: "Manage allergies and check recipes against them",
	}
	cmd.AddCommand(newAllergiesSetCommand(opts))
	cmd.AddCommand(newAllergiesCheckCommand(opts))
	return cmd
}

func newAllergiesSetCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "set [allergies...]",
		Short:   "Replace your allergy list (no arguments clears it)",
		Example: `  tasteverse allergies set peanut shellfish`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(opts, cmd, func(ctx context.Context, a *app) error {
				p, err := a.eng.SetAllergies(ctx, args)
				if err != nil {
					return err
				}
				text := "Allergies cleared."
				if n := len(p.Preferences.Allergies); n > 0 {
					text = fmt.Sprintf("Allergies: %s", strings.Join(p.Preferences.Allergies, ", "))
				}
				return a.out.Success(p.Preferences, text)
			})
		},
	}
}

func newAllergiesCheckCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check <recipe-id>",
		Short: "List recipe ingredients matching your allergies",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(opts, cmd, func(ctx context.Context, a *app) error {
				warnings, err := a.eng.CheckAllergies(ctx, args[0])
				if err != nil {
					return err
				}
				return a.out.Success(warnings, display.AllergyWarnings(warnings))
			})
		},
	}
}
