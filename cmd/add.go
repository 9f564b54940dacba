package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mgaillard/souschef/internal/adapters/recipefile"
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add <file.yaml>",
	Short: "Add a recipe from a YAML file",
	Long: `Add a recipe from a YAML file.

The file describes the recipe name, servings, steps (with optional
duration_minutes and technique per step) and ingredients.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		req, err := recipefile.Load(args[0])
		if err != nil {
			return err
		}

		recipe, err := recipeService.AddRecipe(ctx, req)
		if err != nil {
			return fmt.Errorf("failed to add recipe: %w", err)
		}

		fmt.Printf("✅ Added %q (%d steps, ID: %s)\n", recipe.Name, recipe.StepCount(), shortID(recipe.ID))
		return nil
	},
}
