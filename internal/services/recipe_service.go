package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/mgaillard/souschef/internal/domain"
	"github.com/mgaillard/souschef/internal/ports"
)

// RecipeService handles recipe use cases. The cooking session itself
// never talks to storage; this service is how recipes get in and out.
type RecipeService struct {
	storage ports.Storage
}

// NewRecipeService creates a new recipe service.
func NewRecipeService(storage ports.Storage) *RecipeService {
	return &RecipeService{storage: storage}
}

// AddRecipeRequest contains data to create a recipe.
type AddRecipeRequest struct {
	Name        string
	Servings    int
	Steps       []domain.Step
	Ingredients []domain.Ingredient
	TotalTime   int
}

// AddRecipe validates and persists a new recipe.
func (s *RecipeService) AddRecipe(ctx context.Context, req AddRecipeRequest) (*domain.Recipe, error) {
	recipe, err := domain.NewRecipe(req.Name, req.Servings, req.Steps, req.Ingredients)
	if err != nil {
		return nil, err
	}
	recipe.TotalTimeMinutes = req.TotalTime

	if err := s.storage.Recipes().Save(ctx, recipe); err != nil {
		return nil, fmt.Errorf("failed to save recipe: %w", err)
	}
	return recipe, nil
}

// CreateRecipe is the flat-argument variant of AddRecipe. It exists to
// satisfy ports.MCPRecipeProvider without leaking the request type into
// the ports package.
func (s *RecipeService) CreateRecipe(ctx context.Context, name string, servings, totalTimeMinutes int, steps []domain.Step, ingredients []domain.Ingredient) (*domain.Recipe, error) {
	return s.AddRecipe(ctx, AddRecipeRequest{
		Name:        name,
		Servings:    servings,
		TotalTime:   totalTimeMinutes,
		Steps:       steps,
		Ingredients: ingredients,
	})
}

// Resolve finds a recipe by ID first, then by name. This is what the CLI
// commands use so users can type either.
func (s *RecipeService) Resolve(ctx context.Context, idOrName string) (*domain.Recipe, error) {
	recipe, err := s.storage.Recipes().FindByID(ctx, idOrName)
	if err == nil {
		return recipe, nil
	}
	if !errors.Is(err, domain.ErrRecipeNotFound) {
		return nil, fmt.Errorf("failed to look up recipe: %w", err)
	}
	return s.storage.Recipes().FindByName(ctx, idOrName)
}

// ListRecipes returns all recipes, or fuzzy search results when query is
// non-empty.
func (s *RecipeService) ListRecipes(ctx context.Context, query string) ([]*domain.Recipe, error) {
	if query == "" {
		return s.storage.Recipes().FindAll(ctx)
	}
	return s.storage.Recipes().Search(ctx, query)
}

// DeleteRecipe removes a recipe by ID or name.
func (s *RecipeService) DeleteRecipe(ctx context.Context, idOrName string) error {
	recipe, err := s.Resolve(ctx, idOrName)
	if err != nil {
		return err
	}
	if err := s.storage.Recipes().Delete(ctx, recipe.ID); err != nil {
		return fmt.Errorf("failed to delete recipe: %w", err)
	}
	return nil
}
