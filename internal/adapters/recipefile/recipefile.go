// Package recipefile loads recipe definitions from YAML files.
package recipefile

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mgaillard/souschef/internal/domain"
	"github.com/mgaillard/souschef/internal/services"
)

// recipeFile is the on-disk YAML layout.
type recipeFile struct {
	Name        string           `yaml:"name"`
	Servings    int              `yaml:"servings,omitempty"`
	TotalTime   int              `yaml:"total_time_minutes,omitempty"`
	Steps       []stepFile       `yaml:"steps"`
	Ingredients []ingredientFile `yaml:"ingredients,omitempty"`
}

type stepFile struct {
	Text      string `yaml:"text"`
	Duration  int    `yaml:"duration_minutes,omitempty"`
	Technique string `yaml:"technique,omitempty"`
}

type ingredientFile struct {
	Name        string  `yaml:"name"`
	Quantity    float64 `yaml:"quantity,omitempty"`
	Unit        string  `yaml:"unit,omitempty"`
	Preparation string  `yaml:"preparation,omitempty"`
	Optional    bool    `yaml:"optional,omitempty"`
}

// Marshal renders a recipe back into the on-disk YAML layout. Zero-value
// fields are omitted so exported files look like hand-written ones.
func Marshal(recipe *domain.Recipe) ([]byte, error) {
	file := recipeFile{
		Name:      recipe.Name,
		Servings:  recipe.Servings,
		TotalTime: recipe.TotalTimeMinutes,
	}
	for _, s := range recipe.Steps {
		file.Steps = append(file.Steps, stepFile{
			Text:      s.Text,
			Duration:  s.DurationMinutes,
			Technique: s.Technique,
		})
	}
	for _, ing := range recipe.Ingredients {
		file.Ingredients = append(file.Ingredients, ingredientFile{
			Name:        ing.Name,
			Quantity:    ing.Quantity,
			Unit:        ing.Unit,
			Preparation: ing.Preparation,
			Optional:    ing.Optional,
		})
	}

	data, err := yaml.Marshal(file)
	if err != nil {
		return nil, fmt.Errorf("failed to render recipe file: %w", err)
	}
	return data, nil
}

// Load reads a recipe YAML file and converts it into an add request.
func Load(path string) (services.AddRecipeRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return services.AddRecipeRequest{}, fmt.Errorf("failed to read recipe file: %w", err)
	}
	return Parse(data)
}

// Parse converts YAML recipe data into an add request.
func Parse(data []byte) (services.AddRecipeRequest, error) {
	var file recipeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return services.AddRecipeRequest{}, fmt.Errorf("failed to parse recipe file: %w", err)
	}

	if strings.TrimSpace(file.Name) == "" {
		return services.AddRecipeRequest{}, domain.ErrEmptyRecipeName
	}
	if len(file.Steps) == 0 {
		return services.AddRecipeRequest{}, domain.ErrNoSteps
	}

	req := services.AddRecipeRequest{
		Name:      file.Name,
		Servings:  file.Servings,
		TotalTime: file.TotalTime,
	}

	for i, s := range file.Steps {
		if strings.TrimSpace(s.Text) == "" {
			return services.AddRecipeRequest{}, fmt.Errorf("step %d has no text", i+1)
		}
		if s.Duration < 0 {
			return services.AddRecipeRequest{}, domain.ErrBadTimerDuration
		}
		req.Steps = append(req.Steps, domain.Step{
			Index:           i,
			Text:            strings.TrimSpace(s.Text),
			DurationMinutes: s.Duration,
			Technique:       strings.TrimSpace(s.Technique),
		})
	}

	for _, ing := range file.Ingredients {
		if strings.TrimSpace(ing.Name) == "" {
			continue
		}
		req.Ingredients = append(req.Ingredients, domain.Ingredient{
			Name:        strings.TrimSpace(ing.Name),
			Quantity:    ing.Quantity,
			Unit:        strings.TrimSpace(ing.Unit),
			Preparation: strings.TrimSpace(ing.Preparation),
			Optional:    ing.Optional,
		})
	}

	return req, nil
}
