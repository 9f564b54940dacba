// Package technique encapsulates per-technique presentation for cooking
// steps. The session view and recipe display query the Profile interface
// for hints and attendance instead of scattering technique checks
// everywhere.
package technique

import "strings"

// Profile defines the display behavior for a cooking technique.
type Profile interface {
	// Name returns the canonical technique name.
	Name() string

	// Description returns a one-line explanation of the technique.
	Description() string

	// Hint returns the guidance shown while a step using this technique
	// is active. Empty when the technique needs no reminder.
	Hint() string

	// Attended reports whether the cook should stay at the stove for the
	// duration of the step.
	Attended() bool
}

// ForName returns the Profile for a technique name. Unknown or empty
// names get a generic profile so callers never branch on recognition.
func ForName(name string) Profile {
	key := strings.ToLower(strings.TrimSpace(name))
	if p, ok := profiles[key]; ok {
		return p
	}
	return &profile{name: strings.TrimSpace(name)}
}

type profile struct {
	name        string
	description string
	hint        string
	attended    bool
}

func (p *profile) Name() string        { return p.name }
func (p *profile) Description() string { return p.description }
func (p *profile) Hint() string        { return p.hint }
func (p *profile) Attended() bool      { return p.attended }

var profiles = map[string]*profile{
	"simmer": {
		name:        "simmer",
		description: "Cook gently in liquid just below a boil.",
		hint:        "Small bubbles only. Lower the heat if it starts to boil.",
	},
	"boil": {
		name:        "boil",
		description: "Cook in rapidly bubbling liquid.",
		hint:        "Keep a rolling boil. Salt the water generously.",
		attended:    true,
	},
	"braise": {
		name:        "braise",
		description: "Brown, then cook slowly in a covered pot with liquid.",
		hint:        "Keep the lid on. The liquid should barely move.",
	},
	"saute": {
		name:        "sauté",
		description: "Cook quickly in a little fat over high heat.",
		hint:        "Hot pan, keep things moving.",
		attended:    true,
	},
	"sauté": {
		name:        "sauté",
		description: "Cook quickly in a little fat over high heat.",
		hint:        "Hot pan, keep things moving.",
		attended:    true,
	},
	"sweat": {
		name:        "sweat",
		description: "Soften in fat over low heat without browning.",
		hint:        "Low heat, no color. Stir now and then.",
		attended:    true,
	},
	"roast": {
		name:        "roast",
		description: "Cook uncovered in the oven with dry heat.",
		hint:        "Resist opening the oven. Rotate halfway if it browns unevenly.",
	},
	"bake": {
		name:        "bake",
		description: "Cook in the oven at a steady temperature.",
		hint:        "Trust the timer before the color.",
	},
	"sear": {
		name:        "sear",
		description: "Brown the surface hard over very high heat.",
		hint:        "Dry the surface first and do not crowd the pan.",
		attended:    true,
	},
	"reduce": {
		name:        "reduce",
		description: "Boil a liquid down to concentrate it.",
		hint:        "Watch the volume, not the clock. It turns fast at the end.",
		attended:    true,
	},
	"rest": {
		name:        "rest",
		description: "Let the food sit off the heat before serving.",
		hint:        "Hands off. Resting is part of the cooking.",
	},
	"knead": {
		name:        "knead",
		description: "Work a dough until smooth and elastic.",
		hint:        "The dough should spring back when poked.",
		attended:    true,
	},
	"proof": {
		name:        "proof",
		description: "Let a dough rise in a warm spot.",
		hint:        "Look for size, not time. Roughly doubled is done.",
	},
	"steam": {
		name:        "steam",
		description: "Cook over boiling water, covered.",
		hint:        "Keep the water boiling and the lid closed.",
	},
	"blanch": {
		name:        "blanch",
		description: "Boil briefly, then shock in ice water.",
		hint:        "Have the ice bath ready before anything hits the water.",
		attended:    true,
	},
	"marinate": {
		name:        "marinate",
		description: "Soak in a seasoned liquid before cooking.",
		hint:        "Longer is not always better with acidic marinades.",
	},
}
