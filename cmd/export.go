package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mgaillard/souschef/internal/adapters/recipefile"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export <recipe> [file.yaml]",
	Short: "Export a recipe to YAML",
	Long: `Export a recipe to a YAML file, by ID or name.

Without a file argument the YAML is written to stdout. The output
round-trips through "souschef add".`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		recipe, err := recipeService.Resolve(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to find recipe: %w", err)
		}

		data, err := recipefile.Marshal(recipe)
		if err != nil {
			return fmt.Errorf("failed to export recipe: %w", err)
		}

		if len(args) == 2 {
			if err := os.WriteFile(args[1], data, 0o644); err != nil {
				return fmt.Errorf("failed to write recipe file: %w", err)
			}
			fmt.Printf("✅ Exported %q to %s\n", recipe.Name, args[1])
			return nil
		}

		fmt.Print(string(data))
		return nil
	},
}
