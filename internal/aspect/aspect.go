// Package aspect names the addressable parts of a skinned control: the
// control itself, one of its sections, a placement variation and a set of
// interaction states.
package aspect

import (
	"fmt"
	"math/bits"
	"sort"
	"strings"
)

// Section selects a sub-area of a control.
type Section int

const (
	Body Section = iota
	Header
	Footer
	Card
	Floating
)

var sectionNames = []string{"body", "header", "footer", "card", "floating"}

func (s Section) String() string {
	if s < 0 || int(s) >= len(sectionNames) {
		return fmt.Sprintf("Section(%d)", int(s))
	}
	return sectionNames[s]
}

// ParseSection maps a section name. The empty string is Body.
func ParseSection(name string) (Section, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return Body, nil
	}
	for i, candidate := range sectionNames {
		if candidate == name {
			return Section(i), nil
		}
	}
	return Body, fmt.Errorf("unknown section %q", name)
}

// Variation distinguishes placements of the same control.
type Variation int

const (
	NoVariation Variation = iota
	Horizontal
	Vertical
	Top
	Left
	Right
	Bottom
)

var variationNames = []string{"", "horizontal", "vertical", "top", "left", "right", "bottom"}

func (v Variation) String() string {
	if v < 0 || int(v) >= len(variationNames) {
		return fmt.Sprintf("Variation(%d)", int(v))
	}
	if v == NoVariation {
		return "none"
	}
	return variationNames[v]
}

// ParseVariation maps a variation name. The empty string and "none" are
// NoVariation.
func ParseVariation(name string) (Variation, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "none" {
		return NoVariation, nil
	}
	for i, candidate := range variationNames {
		if candidate == name {
			return Variation(i), nil
		}
	}
	return NoVariation, fmt.Errorf("unknown variation %q", name)
}

// State is a bitmask of interaction states. Higher bits take precedence
// when a lookup falls back.
type State uint16

const (
	Hovered State = 1 << iota
	Pressed
	Focused
	Disabled
	Checked
	Selected
	Error
)

// NoState is the empty state set.
const NoState State = 0

var stateNames = map[State]string{
	Hovered:  "hovered",
	Pressed:  "pressed",
	Focused:  "focused",
	Disabled: "disabled",
	Checked:  "checked",
	Selected: "selected",
	Error:    "error",
}

// ParseState maps a single state name.
func ParseState(name string) (State, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for state, candidate := range stateNames {
		if candidate == name {
			return state, nil
		}
	}
	return NoState, fmt.Errorf("unknown state %q", name)
}

// ParseStates combines state names into one mask.
func ParseStates(names []string) (State, error) {
	var states State
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			continue
		}
		state, err := ParseState(name)
		if err != nil {
			return NoState, err
		}
		states |= state
	}
	return states, nil
}

// Top returns the highest set bit, or NoState.
func (s State) Top() State {
	if s == 0 {
		return NoState
	}
	return State(1) << (bits.Len16(uint16(s)) - 1)
}

// Names lists the set states from highest to lowest.
func (s State) Names() []string {
	var names []string
	for rest := s; rest != 0; rest &^= rest.Top() {
		name, ok := stateNames[rest.Top()]
		if !ok {
			name = fmt.Sprintf("state(%#x)", uint16(rest.Top()))
		}
		names = append(names, name)
	}
	return names
}

func (s State) String() string {
	if s == 0 {
		return "none"
	}
	names := s.Names()
	sort.Strings(names)
	return strings.Join(names, "|")
}

// Aspect addresses one hint slot.
type Aspect struct {
	Control   string
	Section   Section
	Variation Variation
	States    State
}

// New returns the aspect of a control's body with no variation or states.
func New(control string) Aspect {
	return Aspect{Control: control}
}

// TopState is the highest state bit set on a.
func (a Aspect) TopState() State {
	return a.States.Top()
}

func (a Aspect) WithControl(control string) Aspect {
	a.Control = control
	return a
}

func (a Aspect) WithSection(s Section) Aspect {
	a.Section = s
	return a
}

func (a Aspect) WithVariation(v Variation) Aspect {
	a.Variation = v
	return a
}

// WithStates replaces the state set.
func (a Aspect) WithStates(s State) Aspect {
	a.States = s
	return a
}

// WithState adds states to the set.
func (a Aspect) WithState(s State) Aspect {
	a.States |= s
	return a
}

// WithoutState removes states from the set.
func (a Aspect) WithoutState(s State) Aspect {
	a.States &^= s
	return a
}

// String renders "Control/section[/variation][:state|state]".
func (a Aspect) String() string {
	var b strings.Builder
	b.WriteString(a.Control)
	b.WriteString("/")
	b.WriteString(a.Section.String())
	if a.Variation != NoVariation {
		b.WriteString("/")
		b.WriteString(a.Variation.String())
	}
	if a.States != NoState {
		b.WriteString(":")
		b.WriteString(a.States.String())
	}
	return b.String()
}
