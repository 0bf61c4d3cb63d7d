package skin

import (
	"sort"

	"github.com/alexisbeaulieu97/prism/internal/aspect"
	"github.com/alexisbeaulieu97/prism/pkg/gradient"
	"github.com/alexisbeaulieu97/prism/pkg/rgb"
)

// Editor fills a table. Calls chain; the first failure is kept and later
// calls are ignored, so check Err once at the end.
type Editor struct {
	table *Table
	err   error
}

// NewEditor returns an editor writing into table.
func NewEditor(table *Table) *Editor {
	return &Editor{table: table}
}

// Err returns the first error hit by the editor.
func (e *Editor) Err() error { return e.err }

func (e *Editor) set(a aspect.Aspect, h Hint) *Editor {
	if e.err == nil {
		e.err = e.table.Set(a, h)
	}
	return e
}

func (e *Editor) SetGradient(a aspect.Aspect, g gradient.Gradient) *Editor {
	return e.set(a, GradientValue(g))
}

// SetGradientColors stores a two color ramp.
func (e *Editor) SetGradientColors(a aspect.Aspect, o gradient.Orientation, start, end rgb.Color) *Editor {
	return e.set(a, GradientValue(gradient.FromColors(o, start, end)))
}

// SetDiscreteGradient stores one hard band per color.
func (e *Editor) SetDiscreteGradient(a aspect.Aspect, o gradient.Orientation, colors ...rgb.Color) *Editor {
	return e.set(a, GradientValue(gradient.FromColorArray(o, colors, true)))
}

// SetStateGradients stores a gradient for each state set of a, in
// ascending state order.
func (e *Editor) SetStateGradients(a aspect.Aspect, byState map[aspect.State]gradient.Gradient) *Editor {
	states := make([]aspect.State, 0, len(byState))
	for s := range byState {
		states = append(states, s)
	}
	sort.Slice(states, func(i, j int) bool { return states[i] < states[j] })

	for _, s := range states {
		e.set(a.WithStates(s), GradientValue(byState[s]))
	}
	return e
}

func (e *Editor) SetColor(a aspect.Aspect, c rgb.Color) *Editor {
	return e.set(a, ColorValue(c))
}

func (e *Editor) SetMetric(a aspect.Aspect, m float64) *Editor {
	return e.set(a, MetricValue(m))
}

func (e *Editor) SetFontRole(a aspect.Aspect, role string) *Editor {
	return e.set(a, FontRoleValue(role))
}

func (e *Editor) SetSymbol(a aspect.Aspect, name string) *Editor {
	return e.set(a, SymbolValue(name))
}
