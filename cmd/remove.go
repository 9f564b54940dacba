package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var removeForce bool

// removeCmd represents the remove command
var removeCmd = &cobra.Command{
	Use:   "remove <recipe>",
	Short: "Remove a recipe",
	Long:  `Remove a recipe by ID or name.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		recipe, err := recipeService.Resolve(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to find recipe: %w", err)
		}

		if !removeForce {
			fmt.Printf("Remove %q? [y/N] ", recipe.Name)
			reader := bufio.NewReader(os.Stdin)
			answer, _ := reader.ReadString('\n')
			if strings.ToLower(strings.TrimSpace(answer)) != "y" {
				fmt.Println("Cancelled.")
				return nil
			}
		}

		if err := recipeService.DeleteRecipe(ctx, recipe.ID); err != nil {
			return fmt.Errorf("failed to remove recipe: %w", err)
		}

		fmt.Printf("🗑  Removed %q\n", recipe.Name)
		return nil
	},
}

func init() {
	removeCmd.Flags().BoolVarP(&removeForce, "force", "f", false, "Remove without confirmation")
}
