package cmd

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mgaillard/souschef/internal/adapters/clock"
	"github.com/mgaillard/souschef/internal/adapters/tui"
	"github.com/mgaillard/souschef/internal/adapters/wakelock"
	"github.com/mgaillard/souschef/internal/domain"
	"github.com/mgaillard/souschef/internal/ports"
	"github.com/mgaillard/souschef/internal/services"
)

var cookNoWakeLock bool

// cookCmd represents the cook command
var cookCmd = &cobra.Command{
	Use:   "cook [recipe]",
	Short: "Start a guided cooking session",
	Long: `Start a guided cooking session for a recipe, by ID or name.
With no argument, pick a recipe interactively.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		recipe, err := resolveCookRecipe(ctx, args)
		if err != nil {
			return err
		}
		if recipe == nil {
			// Picker aborted.
			return nil
		}

		return runCookSession(recipe)
	},
}

func init() {
	cookCmd.Flags().BoolVar(&cookNoWakeLock, "no-wake-lock", false, "Do not keep the display awake during the session")
}

// resolveCookRecipe turns the argument (or a picker selection) into a
// full recipe. Returns nil without error when the picker is aborted.
func resolveCookRecipe(ctx context.Context, args []string) (*domain.Recipe, error) {
	if len(args) == 1 {
		recipe, err := recipeService.Resolve(ctx, args[0])
		if errors.Is(err, domain.ErrRecipeNotFound) {
			return nil, fmt.Errorf("no recipe matching %q — try \"souschef list\"", args[0])
		}
		if err != nil {
			return nil, err
		}
		return recipe, nil
	}

	recipes, err := recipeService.ListRecipes(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	if len(recipes) == 0 {
		return nil, fmt.Errorf("no recipes yet — add one with \"souschef add recipe.yaml\"")
	}

	items := make([]tui.PickerItem, len(recipes))
	for i, r := range recipes {
		desc := fmt.Sprintf("%d steps", r.StepCount())
		if r.TotalTimeMinutes > 0 {
			desc = fmt.Sprintf("%d steps · %d min", r.StepCount(), r.TotalTimeMinutes)
		}
		items[i] = tui.PickerItem{Label: r.Name, Desc: desc}
	}

	result := tui.RunPicker("What are we cooking?", items, "", &appConfig.Theme)
	if result.Aborted {
		return nil, nil
	}
	return recipes[result.Index], nil
}

// runCookSession wires the session service to the TUI and runs it to
// completion. The session is torn down on every exit path so the wake
// lock can never outlive the program.
func runCookSession(recipe *domain.Recipe) error {
	inhibitor := wakelock.New(appConfig.WakeLock.Enabled && !cookNoWakeLock)
	session := services.NewSessionService(clock.New(), inhibitor, notifier)

	if err := session.Start(recipe); err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	defer session.Exit()

	model := tui.NewModel(session.Snapshot(), &appConfig.Theme)
	model.SetCallbacks(
		session.Snapshot,
		func(cmd ports.SessionCommand) error { return session.Apply(cmd) },
		session.JumpTo,
	)

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("session error: %w", err)
	}

	if m, ok := final.(tui.Model); ok && m.Finished() {
		notifier.SessionFinished(recipe.Name)
		fmt.Printf("🍽 Bon appétit! You cooked %s.\n", recipe.Name)
	}

	return nil
}
