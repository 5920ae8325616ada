package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hammamikhairi/tasteverse/internal/display"
	"github.com/hammamikhairi/tasteverse/internal/domain"
)

// NewRecipesCommand lists the catalog, optionally filtered by category.
func NewRecipesCommand(opts *RootOptions) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "recipes",
		Short: "List recipes in the catalog",
		Example: `  tasteverse recipes
  tasteverse recipes --category breakfast
  tasteverse --catalog featured recipes --category italian`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(opts, cmd, func(ctx context.Context, a *app) error {
				recipes := a.eng.Recipes()
				if c := strings.TrimSpace(category); c != "" {
					recipes = a.eng.ByCategory(ctx, domain.Category(strings.ToLower(c)))
				}
				return a.out.Success(recipes, display.RecipeList(recipes))
			})
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "only list recipes in this category")
	return cmd
}

// NewSearchCommand searches titles, descriptions, tags and authors.
func NewSearchCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "search [query...]",
		Short:   "Search recipes by text",
		Example: `  tasteverse search pasta`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(opts, cmd, func(ctx context.Context, a *app) error {
				recipes := a.eng.Search(strings.Join(args, " "))
				return a.out.Success(recipes, display.RecipeList(recipes))
			})
		},
	}
}

// NewMatchCommand finds recipes using any of the given ingredients.
func NewMatchCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "match [ingredients...]",
		Short:   "Find recipes that use any of the given ingredients",
		Example: `  tasteverse match eggs butter`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(opts, cmd, func(ctx context.Context, a *app) error {
				recipes := a.eng.MatchIngredients(ctx, args)
				return a.out.Success(recipes, display.RecipeList(recipes))
			})
		},
	}
}

// NewShowCommand prints a full recipe card.
func NewShowCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <recipe-id>",
		Short: "Show a recipe with ingredients and steps",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(opts, cmd, func(ctx context.Context, a *app) error {
				r, err := a.eng.Recipe(args[0])
				if err != nil {
					return err
				}
				return a.out.Success(r, display.RecipeCard(r))
			})
		},
	}
}
