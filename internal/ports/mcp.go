package ports

import (
	"context"

	"github.com/mgaillard/souschef/internal/domain"
)

// MCPHandler defines the interface for MCP server operations.
// This is a driving port (called by the application layer).
type MCPHandler interface {
	// Start begins serving MCP requests.
	Start(ctx context.Context) error

	// Stop gracefully shuts down the server.
	Stop() error

	// IsRunning returns true if the server is active.
	IsRunning() bool
}

// MCPRecipeProvider provides recipe operations to the MCP server.
// This is a driven port (implemented by the services layer).
type MCPRecipeProvider interface {
	// ListRecipes returns all recipes, or fuzzy matches when query is set.
	ListRecipes(ctx context.Context, query string) ([]*domain.Recipe, error)

	// Resolve finds a recipe by ID or name.
	Resolve(ctx context.Context, idOrName string) (*domain.Recipe, error)

	// CreateRecipe validates and persists a new recipe.
	CreateRecipe(ctx context.Context, name string, servings, totalTimeMinutes int, steps []domain.Step, ingredients []domain.Ingredient) (*domain.Recipe, error)

	// DeleteRecipe removes a recipe by ID or name.
	DeleteRecipe(ctx context.Context, idOrName string) error
}
