package domain

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// Domain errors for recipes and cooking sessions.
var (
	ErrRecipeNotFound   = errors.New("recipe not found")
	ErrEmptyRecipeName  = errors.New("recipe name cannot be empty")
	ErrNoSteps          = errors.New("recipe has no steps")
	ErrStepOutOfRange   = errors.New("step index out of range")
	ErrStepHasNoTimer   = errors.New("current step has no timer")
	ErrBadTimerDuration = errors.New("timer duration must be positive")
	ErrNoActiveSession  = errors.New("no active cooking session")
)

// Step is one instruction in a recipe. Steps are ordered and immutable once
// the recipe is loaded; an optional DurationMinutes marks a timed step.
type Step struct {
	Index           int
	Text            string
	DurationMinutes int // 0 means no timer
	Technique       string
}

// HasTimer reports whether this step declares a countdown duration.
func (s Step) HasTimer() bool {
	return s.DurationMinutes > 0
}

// Duration returns the step's timer length.
func (s Step) Duration() time.Duration {
	return time.Duration(s.DurationMinutes) * time.Minute
}

// Ingredient is read-only reference data shown alongside the steps.
type Ingredient struct {
	ID          string
	Name        string
	Quantity    float64 // 0 means unspecified
	Unit        string
	Preparation string
	Optional    bool
}

// Label renders the ingredient as a single display line.
func (i Ingredient) Label() string {
	var b strings.Builder
	if i.Quantity > 0 {
		b.WriteString(trimFloat(i.Quantity))
		if i.Unit != "" {
			b.WriteString(" ")
			b.WriteString(i.Unit)
		}
		b.WriteString(" ")
	}
	b.WriteString(i.Name)
	if i.Preparation != "" {
		b.WriteString(", ")
		b.WriteString(i.Preparation)
	}
	if i.Optional {
		b.WriteString(" (optional)")
	}
	return b.String()
}

// Recipe is the immutable definition a cooking session walks through.
type Recipe struct {
	ID               string
	Name             string
	Servings         int
	TotalTimeMinutes int
	Steps            []Step
	Ingredients      []Ingredient
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewRecipe creates a recipe with a fresh ID and normalized step indices.
func NewRecipe(name string, servings int, steps []Step, ingredients []Ingredient) (*Recipe, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyRecipeName
	}
	if len(steps) == 0 {
		return nil, ErrNoSteps
	}

	now := time.Now()
	r := &Recipe{
		ID:          generateID(),
		Name:        name,
		Servings:    servings,
		Steps:       make([]Step, len(steps)),
		Ingredients: ingredients,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	copy(r.Steps, steps)
	for i := range r.Steps {
		r.Steps[i].Index = i
	}
	for i := range r.Ingredients {
		if r.Ingredients[i].ID == "" {
			r.Ingredients[i].ID = generateID()
		}
	}
	return r, nil
}

// Validate checks that a recipe can back a cooking session.
func (r *Recipe) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrEmptyRecipeName
	}
	if len(r.Steps) == 0 {
		return ErrNoSteps
	}
	for _, s := range r.Steps {
		if s.DurationMinutes < 0 {
			return ErrBadTimerDuration
		}
	}
	return nil
}

// StepCount returns the number of steps.
func (r *Recipe) StepCount() int {
	return len(r.Steps)
}

// TimedStepCount returns how many steps declare a countdown.
func (r *Recipe) TimedStepCount() int {
	n := 0
	for _, s := range r.Steps {
		if s.HasTimer() {
			n++
		}
	}
	return n
}

func trimFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', 2, 64)
	s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	if s == "" {
		return "0"
	}
	return s
}
