package preset

import (
	"time"

	"github.com/alexisbeaulieu97/prism/pkg/gradient"
)

// Preset is a named gradient saved for reuse.
type Preset struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Gradient    gradient.Gradient `json:"gradient"`
	Description string            `json:"description,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
}

// File is the JSON file format for the preset registry.
type File struct {
	Version string   `json:"version"`
	Presets []Preset `json:"presets"`
}
