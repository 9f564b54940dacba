package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mgaillard/souschef/internal/technique"
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show <recipe>",
	Short: "Show a recipe",
	Long:  `Show a recipe's full steps and ingredients, by ID or name.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		recipe, err := recipeService.Resolve(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to find recipe: %w", err)
		}

		if jsonOutput {
			var steps []map[string]interface{}
			for _, step := range recipe.Steps {
				stepData := map[string]interface{}{
					"index": step.Index,
					"text":  step.Text,
				}
				if step.DurationMinutes > 0 {
					stepData["duration_minutes"] = step.DurationMinutes
				}
				if step.Technique != "" {
					stepData["technique"] = step.Technique
				}
				steps = append(steps, stepData)
			}
			var ingredients []string
			for _, ing := range recipe.Ingredients {
				ingredients = append(ingredients, ing.Label())
			}
			jsonData, err := json.MarshalIndent(map[string]interface{}{
				"id":                 recipe.ID,
				"name":               recipe.Name,
				"servings":           recipe.Servings,
				"total_time_minutes": recipe.TotalTimeMinutes,
				"steps":              steps,
				"ingredients":        ingredients,
			}, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal recipe: %w", err)
			}
			fmt.Println(string(jsonData))
			return nil
		}

		fmt.Printf("🍳 %s (ID: %s)\n", recipe.Name, shortID(recipe.ID))
		if recipe.Servings > 0 {
			fmt.Printf("   Serves %d", recipe.Servings)
			if recipe.TotalTimeMinutes > 0 {
				fmt.Printf(" · ~%d min", recipe.TotalTimeMinutes)
			}
			fmt.Println()
		}

		if len(recipe.Ingredients) > 0 {
			fmt.Println("\nIngredients:")
			for _, ing := range recipe.Ingredients {
				fmt.Printf("  • %s\n", ing.Label())
			}
		}

		fmt.Println("\nSteps:")
		for _, step := range recipe.Steps {
			fmt.Printf("  %d. %s\n", step.Index+1, stepLabel(step))
			if step.Technique != "" {
				if desc := technique.ForName(step.Technique).Description(); desc != "" {
					fmt.Printf("     %s: %s\n", step.Technique, desc)
				}
			}
		}

		return nil
	},
}
