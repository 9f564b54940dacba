package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sahilm/fuzzy"

	"github.com/mgaillard/souschef/internal/domain"
	"github.com/mgaillard/souschef/internal/ports"
)

// recipeRepository implements ports.RecipeRepository using SQLite.
type recipeRepository struct {
	db *sql.DB
}

// newRecipeRepository creates a new recipe repository.
func newRecipeRepository(db *sql.DB) ports.RecipeRepository {
	return &recipeRepository{db: db}
}

// Save persists a recipe with its steps and ingredients. Saving an
// existing ID replaces the whole recipe.
func (r *recipeRepository) Save(ctx context.Context, recipe *domain.Recipe) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	recipe.UpdatedAt = time.Now()
	if recipe.CreatedAt.IsZero() {
		recipe.CreatedAt = recipe.UpdatedAt
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO recipes (id, name, servings, total_time_minutes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			servings = excluded.servings,
			total_time_minutes = excluded.total_time_minutes,
			updated_at = excluded.updated_at
	`,
		recipe.ID,
		recipe.Name,
		recipe.Servings,
		recipe.TotalTimeMinutes,
		recipe.CreatedAt,
		recipe.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save recipe: %w", err)
	}

	// Steps and ingredients are replaced wholesale; they have no
	// identity outside their recipe.
	if _, err := tx.ExecContext(ctx, `DELETE FROM steps WHERE recipe_id = ?`, recipe.ID); err != nil {
		return fmt.Errorf("failed to clear steps: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM ingredients WHERE recipe_id = ?`, recipe.ID); err != nil {
		return fmt.Errorf("failed to clear ingredients: %w", err)
	}

	for _, step := range recipe.Steps {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO steps (recipe_id, step_index, text, duration_minutes, technique)
			VALUES (?, ?, ?, ?, ?)
		`,
			recipe.ID,
			step.Index,
			step.Text,
			step.DurationMinutes,
			step.Technique,
		)
		if err != nil {
			return fmt.Errorf("failed to save step %d: %w", step.Index, err)
		}
	}

	for _, ing := range recipe.Ingredients {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO ingredients (id, recipe_id, name, quantity, unit, preparation, optional)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`,
			ing.ID,
			recipe.ID,
			ing.Name,
			ing.Quantity,
			ing.Unit,
			ing.Preparation,
			ing.Optional,
		)
		if err != nil {
			return fmt.Errorf("failed to save ingredient %q: %w", ing.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit recipe: %w", err)
	}

	return nil
}

// FindByID retrieves a recipe by its unique identifier.
func (r *recipeRepository) FindByID(ctx context.Context, id string) (*domain.Recipe, error) {
	return r.findOne(ctx, `
		SELECT id, name, servings, total_time_minutes, created_at, updated_at
		FROM recipes
		WHERE id = ?
	`, id)
}

// FindByName retrieves a recipe by exact name, case-insensitively.
func (r *recipeRepository) FindByName(ctx context.Context, name string) (*domain.Recipe, error) {
	return r.findOne(ctx, `
		SELECT id, name, servings, total_time_minutes, created_at, updated_at
		FROM recipes
		WHERE name = ? COLLATE NOCASE
		ORDER BY updated_at DESC
		LIMIT 1
	`, name)
}

// FindAll retrieves all recipes ordered by name.
func (r *recipeRepository) FindAll(ctx context.Context) ([]*domain.Recipe, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, servings, total_time_minutes, created_at, updated_at
		FROM recipes
		ORDER BY name COLLATE NOCASE
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query recipes: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var recipes []*domain.Recipe
	for rows.Next() {
		var recipe domain.Recipe
		err := rows.Scan(
			&recipe.ID,
			&recipe.Name,
			&recipe.Servings,
			&recipe.TotalTimeMinutes,
			&recipe.CreatedAt,
			&recipe.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan recipe: %w", err)
		}
		recipes = append(recipes, &recipe)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate recipes: %w", err)
	}

	for _, recipe := range recipes {
		if err := r.loadChildren(ctx, recipe); err != nil {
			return nil, err
		}
	}

	return recipes, nil
}

// Search does a fuzzy search for recipes by name, best matches first.
func (r *recipeRepository) Search(ctx context.Context, query string) ([]*domain.Recipe, error) {
	recipes, err := r.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get recipes for fuzzy search: %w", err)
	}

	names := make([]string, len(recipes))
	for i, recipe := range recipes {
		names[i] = recipe.Name
	}

	matches := fuzzy.Find(query, names)

	var result []*domain.Recipe
	for _, match := range matches {
		if match.Score > 0 {
			result = append(result, recipes[match.Index])
		}
	}

	return result, nil
}

// Delete removes a recipe and its steps and ingredients.
func (r *recipeRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM recipes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete recipe: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return domain.ErrRecipeNotFound
	}

	return nil
}

// findOne runs a single-row recipe query and loads its children.
func (r *recipeRepository) findOne(ctx context.Context, query string, args ...interface{}) (*domain.Recipe, error) {
	var recipe domain.Recipe

	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&recipe.ID,
		&recipe.Name,
		&recipe.Servings,
		&recipe.TotalTimeMinutes,
		&recipe.CreatedAt,
		&recipe.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, domain.ErrRecipeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find recipe: %w", err)
	}

	if err := r.loadChildren(ctx, &recipe); err != nil {
		return nil, err
	}

	return &recipe, nil
}

// loadChildren populates a recipe's steps and ingredients.
func (r *recipeRepository) loadChildren(ctx context.Context, recipe *domain.Recipe) error {
	rows, err := r.db.QueryContext(ctx, `
		SELECT step_index, text, duration_minutes, technique
		FROM steps
		WHERE recipe_id = ?
		ORDER BY step_index
	`, recipe.ID)
	if err != nil {
		return fmt.Errorf("failed to query steps: %w", err)
	}
	defer func() { _ = rows.Close() }()

	recipe.Steps = nil
	for rows.Next() {
		var step domain.Step
		var technique sql.NullString
		if err := rows.Scan(&step.Index, &step.Text, &step.DurationMinutes, &technique); err != nil {
			return fmt.Errorf("failed to scan step: %w", err)
		}
		step.Technique = technique.String
		recipe.Steps = append(recipe.Steps, step)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate steps: %w", err)
	}

	ingRows, err := r.db.QueryContext(ctx, `
		SELECT id, name, quantity, unit, preparation, optional
		FROM ingredients
		WHERE recipe_id = ?
		ORDER BY rowid
	`, recipe.ID)
	if err != nil {
		return fmt.Errorf("failed to query ingredients: %w", err)
	}
	defer func() { _ = ingRows.Close() }()

	recipe.Ingredients = nil
	for ingRows.Next() {
		var ing domain.Ingredient
		var unit, preparation sql.NullString
		if err := ingRows.Scan(&ing.ID, &ing.Name, &ing.Quantity, &unit, &preparation, &ing.Optional); err != nil {
			return fmt.Errorf("failed to scan ingredient: %w", err)
		}
		ing.Unit = unit.String
		ing.Preparation = preparation.String
		recipe.Ingredients = append(recipe.Ingredients, ing)
	}
	if err := ingRows.Err(); err != nil {
		return fmt.Errorf("failed to iterate ingredients: %w", err)
	}

	// Normalize step indices in case rows were written out of order.
	if !stepsOrdered(recipe.Steps) {
		for i := range recipe.Steps {
			recipe.Steps[i].Index = i
		}
	}

	return nil
}

func stepsOrdered(steps []domain.Step) bool {
	for i, s := range steps {
		if s.Index != i {
			return false
		}
	}
	return true
}
