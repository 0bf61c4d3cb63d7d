// Package preset persists named gradients in a JSON registry file.
package preset

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/alexisbeaulieu97/prism/pkg/gradient"
)

const fileVersion = "1.0"

var (
	ErrNotFound = errors.New("preset not found")
	ErrExists   = errors.New("preset already exists")
)

// DefaultPath returns ~/.prism/presets.json.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".prism", "presets.json"), nil
}

// Registry manages preset persistence
type Registry struct {
	path    string
	mu      sync.RWMutex
	version string
	presets []Preset
}

// NewRegistry creates a new Registry instance and loads it from disk
func NewRegistry(path string) (*Registry, error) {
	r := &Registry{
		path:    path,
		version: fileVersion,
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create preset directory: %w", err)
	}

	if err := r.Load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		r.presets = []Preset{}
	}

	return r, nil
}

// Path returns the backing file.
func (r *Registry) Path() string { return r.path }

// Load reads the registry from disk
func (r *Registry) Load() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := os.ReadFile(r.path)
	if err != nil {
		return err
	}

	var file File
	if err := json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse presets: %w", err)
	}

	r.version = file.Version
	r.presets = file.Presets
	if r.presets == nil {
		r.presets = []Preset{}
	}

	return nil
}

// Save writes the registry to disk atomically
func (r *Registry) Save() error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	file := File{
		Version: r.version,
		Presets: r.presets,
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal presets: %w", err)
	}

	tmpPath := r.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := os.Rename(tmpPath, r.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return nil
}

// List returns all presets in insertion order
func (r *Registry) List() []Preset {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Preset, len(r.presets))
	copy(result, r.presets)
	return result
}

// Get retrieves a preset by ID
func (r *Registry) Get(id string) (Preset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.presets {
		if p.ID == id {
			return p, nil
		}
	}

	return Preset{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Add adds a new preset. The ID must be valid and unused and the gradient
// must be valid.
func (r *Registry) Add(p Preset) error {
	if err := validate(p); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.presets {
		if existing.ID == p.ID {
			return fmt.Errorf("%w: %s", ErrExists, p.ID)
		}
	}

	r.presets = append(r.presets, p)
	return nil
}

// Update replaces an existing preset
func (r *Registry) Update(p Preset) error {
	if err := validate(p); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.presets {
		if existing.ID == p.ID {
			r.presets[i] = p
			return nil
		}
	}

	return fmt.Errorf("%w: %s", ErrNotFound, p.ID)
}

// Remove removes a preset from the registry
func (r *Registry) Remove(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.presets {
		if p.ID == id {
			r.presets = append(r.presets[:i], r.presets[i+1:]...)
			return nil
		}
	}

	return fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Resolve turns a gradient reference into a gradient. "@id" names a saved
// preset, falling back to the vertical built-in gradient of that name;
// anything else is parsed as gradient text.
func (r *Registry) Resolve(ref string) (gradient.Gradient, error) {
	ref = strings.TrimSpace(ref)
	if id, ok := strings.CutPrefix(ref, "@"); ok {
		p, err := r.Get(id)
		if err == nil {
			return p.Gradient, nil
		}
		if g, ok := gradient.FromPreset(gradient.Vertical, id); ok {
			return g, nil
		}
		return gradient.Gradient{}, err
	}
	return gradient.Parse(ref)
}

func validate(p Preset) error {
	if err := ValidatePresetID(p.ID); err != nil {
		return err
	}
	if !p.Gradient.IsValid() {
		return fmt.Errorf("preset %q has an invalid gradient", p.ID)
	}
	return nil
}
