package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"github.com/mgaillard/souschef/internal/domain"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list [query]",
	Short: "List recipes",
	Long:  `List all recipes, or fuzzy-search them by name.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		query := ""
		if len(args) == 1 {
			query = args[0]
		}

		recipes, err := recipeService.ListRecipes(ctx, query)
		if err != nil {
			return fmt.Errorf("failed to list recipes: %w", err)
		}

		if jsonOutput {
			var recipeList []map[string]interface{}
			for _, recipe := range recipes {
				recipeList = append(recipeList, map[string]interface{}{
					"id":                 recipe.ID,
					"name":               recipe.Name,
					"servings":           recipe.Servings,
					"total_time_minutes": recipe.TotalTimeMinutes,
					"steps":              recipe.StepCount(),
					"timed_steps":        recipe.TimedStepCount(),
				})
			}
			data := map[string]interface{}{
				"recipes": recipeList,
				"count":   len(recipeList),
			}
			jsonData, err := json.MarshalIndent(data, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal recipes: %w", err)
			}
			fmt.Println(string(jsonData))
			return nil
		}

		if len(recipes) == 0 {
			if query != "" {
				fmt.Printf("No recipes matching %q.\n", query)
			} else {
				fmt.Println("No recipes yet. Add one with \"souschef add recipe.yaml\".")
			}
			return nil
		}

		width := terminalWidth()

		fmt.Printf("🍳 Recipes (%d):\n\n", len(recipes))
		for _, recipe := range recipes {
			line := fmt.Sprintf("%s (ID: %s)", recipe.Name, shortID(recipe.ID))
			fmt.Println(truncate(line, width))
			detail := fmt.Sprintf("   %d steps", recipe.StepCount())
			if n := recipe.TimedStepCount(); n > 0 {
				detail += fmt.Sprintf(", %d timed", n)
			}
			if recipe.TotalTimeMinutes > 0 {
				detail += fmt.Sprintf(", ~%d min", recipe.TotalTimeMinutes)
			}
			if recipe.Servings > 0 {
				detail += fmt.Sprintf(", serves %d", recipe.Servings)
			}
			fmt.Println(truncate(detail, width))
		}

		return nil
	},
}

// terminalWidth returns the stdout width, or a sane default when stdout
// is not a terminal.
func terminalWidth() int {
	if w, _, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 {
		return w
	}
	return 80
}

func truncate(s string, width int) string {
	if width <= 1 || len([]rune(s)) <= width {
		return s
	}
	runes := []rune(s)
	return string(runes[:width-1]) + "…"
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func stepLabel(step domain.Step) string {
	label := step.Text
	if step.HasTimer() {
		label += fmt.Sprintf(" (%d min)", step.DurationMinutes)
	}
	return label
}
