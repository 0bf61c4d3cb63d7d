// Package skin resolves styling hints for controls. A Skin is a hint table
// plus a control inheritance graph; lookups fall back through parent
// controls, placement variations, sections and interaction states.
package skin

import (
	"errors"
	"sync"

	"github.com/alexisbeaulieu97/prism/internal/aspect"
	"github.com/alexisbeaulieu97/prism/pkg/gradient"
	"github.com/alexisbeaulieu97/prism/pkg/rgb"
)

// Skin is a named hint table with control inheritance.
type Skin struct {
	name  string
	table *Table

	mu      sync.RWMutex
	parents map[string]string
}

// New returns an empty skin.
func New(name string) *Skin {
	return NewWithTable(name, NewTable())
}

// NewWithTable wraps an existing table.
func NewWithTable(name string, table *Table) *Skin {
	if table == nil {
		table = NewTable()
	}
	return &Skin{name: name, table: table, parents: make(map[string]string)}
}

func (s *Skin) Name() string { return s.name }

func (s *Skin) Table() *Table { return s.table }

// Editor returns a builder writing into the skin's table.
func (s *Skin) Editor() *Editor { return NewEditor(s.table) }

// SetParent makes control inherit from parent. An empty parent clears the
// link. Links that would close a cycle are rejected.
func (s *Skin) SetParent(control, parent string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if parent == "" {
		delete(s.parents, control)
		return nil
	}

	path := []string{control}
	for current := parent; current != ""; current = s.parents[current] {
		path = append(path, current)
		if current == control {
			return ErrCircularInheritance.WithContext(map[string]interface{}{"path": path})
		}
	}

	s.parents[control] = parent
	return nil
}

// Parent returns the direct parent of control.
func (s *Skin) Parent(control string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	parent, ok := s.parents[control]
	return parent, ok
}

// Chain lists control followed by its ancestors, nearest first.
func (s *Skin) Chain(control string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	chain := []string{control}
	seen := map[string]bool{control: true}
	for current := s.parents[control]; current != "" && !seen[current]; current = s.parents[current] {
		chain = append(chain, current)
		seen[current] = true
	}
	return chain
}

func (s *Skin) knows(control string) bool {
	s.mu.RLock()
	_, declared := s.parents[control]
	s.mu.RUnlock()
	return declared || s.table.HasControl(control)
}

// Resolve finds the hint of kind that applies to a. It returns the hint and
// the aspect it was stored under.
func (s *Skin) Resolve(a aspect.Aspect, kind Kind) (Hint, aspect.Aspect, error) {
	if !s.knows(a.Control) {
		return Hint{}, aspect.Aspect{}, ErrUnknownControl.WithContext(map[string]interface{}{"control": a.Control})
	}

	for _, control := range s.Chain(a.Control) {
		if h, at, ok := s.table.resolve(a.WithControl(control), kind); ok {
			return h, at, nil
		}
	}

	return Hint{}, aspect.Aspect{}, ErrHintNotFound.WithContext(map[string]interface{}{
		"aspect": a.String(),
		"kind":   kind.String(),
	})
}

// Gradient resolves a gradient hint.
func (s *Skin) Gradient(a aspect.Aspect) (gradient.Gradient, error) {
	h, _, err := s.Resolve(a, GradientHint)
	if err != nil {
		return gradient.Gradient{}, err
	}
	return h.Gradient()
}

// Color resolves a color hint.
func (s *Skin) Color(a aspect.Aspect) (rgb.Color, error) {
	h, _, err := s.Resolve(a, ColorHint)
	if err != nil {
		return rgb.Invalid, err
	}
	return h.Color()
}

// Metric resolves a metric hint.
func (s *Skin) Metric(a aspect.Aspect) (float64, error) {
	h, _, err := s.Resolve(a, MetricHint)
	if err != nil {
		return 0, err
	}
	return h.Metric()
}

// FontRole resolves a font role hint.
func (s *Skin) FontRole(a aspect.Aspect) (string, error) {
	h, _, err := s.Resolve(a, FontRoleHint)
	if err != nil {
		return "", err
	}
	return h.FontRole()
}

// Symbol resolves a symbol hint.
func (s *Skin) Symbol(a aspect.Aspect) (string, error) {
	h, _, err := s.Resolve(a, SymbolHint)
	if err != nil {
		return "", err
	}
	return h.Symbol()
}

// Endpoints returns the gradients of a in state sets from and to. A side
// without a gradient comes back empty; it is an error only when both are
// missing.
func (s *Skin) Endpoints(a aspect.Aspect, from, to aspect.State) (gradient.Gradient, gradient.Gradient, error) {
	start, errFrom := s.Gradient(a.WithStates(from))
	end, errTo := s.Gradient(a.WithStates(to))

	for _, err := range []error{errFrom, errTo} {
		if err != nil && !errors.Is(err, ErrHintNotFound) {
			return gradient.Gradient{}, gradient.Gradient{}, err
		}
	}
	if errFrom != nil && errTo != nil {
		return gradient.Gradient{}, gradient.Gradient{}, errFrom
	}
	return start, end, nil
}

// Transition returns the gradient a fraction t of the way from the
// gradient of a in state set from to the one in state set to. A side
// without a gradient is treated as empty, so the other side fades.
func (s *Skin) Transition(a aspect.Aspect, from, to aspect.State, t float64) (gradient.Gradient, error) {
	start, end, err := s.Endpoints(a, from, to)
	if err != nil {
		return gradient.Gradient{}, err
	}
	return gradient.Interpolate(start, end, t), nil
}
