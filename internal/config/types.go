package config

import (
	"github.com/alexisbeaulieu97/prism/internal/aspect"
	"github.com/alexisbeaulieu97/prism/pkg/gradient"
)

// Theme is a skin description loaded from a YAML or TOML document.
type Theme struct {
	Version     string    `yaml:"version" toml:"version" validate:"required,semver"`
	Name        string    `yaml:"name" toml:"name" validate:"required,min=1,max=100"`
	Description string    `yaml:"description,omitempty" toml:"description,omitempty"`
	Controls    []Control `yaml:"controls,omitempty" toml:"controls,omitempty" validate:"omitempty,dive"`
	Hints       []Hint    `yaml:"hints" toml:"hints" validate:"required,min=1,dive"`
}

// Control declares a control and, optionally, the control it inherits
// hints from.
type Control struct {
	Name   string `yaml:"name" toml:"name" validate:"required,control_name"`
	Parent string `yaml:"parent,omitempty" toml:"parent,omitempty" validate:"omitempty,control_name,nefield=Name"`
}

// Hint assigns one or more values to an aspect.
type Hint struct {
	Control   string   `yaml:"control" toml:"control" validate:"required,control_name"`
	Section   string   `yaml:"section,omitempty" toml:"section,omitempty" validate:"omitempty,section"`
	Variation string   `yaml:"variation,omitempty" toml:"variation,omitempty" validate:"omitempty,variation"`
	States    []string `yaml:"states,omitempty" toml:"states,omitempty" validate:"omitempty,dive,state"`

	Gradient *gradient.Gradient `yaml:"gradient,omitempty" toml:"gradient,omitempty"`
	Color    string             `yaml:"color,omitempty" toml:"color,omitempty" validate:"omitempty,color"`
	Metric   *float64           `yaml:"metric,omitempty" toml:"metric,omitempty" validate:"omitempty,gte=0"`
	FontRole string             `yaml:"font_role,omitempty" toml:"font_role,omitempty" validate:"omitempty,max=64"`
	Symbol   string             `yaml:"symbol,omitempty" toml:"symbol,omitempty" validate:"omitempty,max=64"`
}

// Aspect converts the textual address of h.
func (h Hint) Aspect() (aspect.Aspect, error) {
	section, err := aspect.ParseSection(h.Section)
	if err != nil {
		return aspect.Aspect{}, err
	}
	variation, err := aspect.ParseVariation(h.Variation)
	if err != nil {
		return aspect.Aspect{}, err
	}
	states, err := aspect.ParseStates(h.States)
	if err != nil {
		return aspect.Aspect{}, err
	}

	return aspect.Aspect{Control: h.Control, Section: section, Variation: variation, States: states}, nil
}

// ValueCount reports how many values h sets.
func (h Hint) ValueCount() int {
	count := 0
	if h.Gradient != nil {
		count++
	}
	if h.Color != "" {
		count++
	}
	if h.Metric != nil {
		count++
	}
	if h.FontRole != "" {
		count++
	}
	if h.Symbol != "" {
		count++
	}
	return count
}
