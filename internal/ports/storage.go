// Package ports defines the interfaces (driven and driving ports)
// for SousChef following hexagonal architecture principles. These
// interfaces define the contracts between the domain layer and
// external infrastructure.
package ports

import (
	"context"

	"github.com/mgaillard/souschef/internal/domain"
)

// RecipeRepository defines the interface for recipe persistence.
// This is a driven port (implemented by adapters).
type RecipeRepository interface {
	// Save persists a recipe with its steps and ingredients.
	Save(ctx context.Context, recipe *domain.Recipe) error

	// FindByID retrieves a recipe by its unique identifier.
	FindByID(ctx context.Context, id string) (*domain.Recipe, error)

	// FindByName retrieves a recipe by exact name (case-insensitive).
	FindByName(ctx context.Context, name string) (*domain.Recipe, error)

	// FindAll retrieves all recipes ordered by name.
	FindAll(ctx context.Context) ([]*domain.Recipe, error)

	// Search returns recipes whose names fuzzy-match the query,
	// best matches first.
	Search(ctx context.Context, query string) ([]*domain.Recipe, error)

	// Delete removes a recipe and its steps and ingredients.
	Delete(ctx context.Context, id string) error
}

// Storage is the combined repository interface.
// This is a driven port (implemented by adapters).
type Storage interface {
	// Recipes provides access to recipe operations.
	Recipes() RecipeRepository

	// Close closes the storage connection.
	Close() error

	// Migrate runs database migrations.
	Migrate() error
}
