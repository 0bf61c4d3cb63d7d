package skin

import (
	"sort"
	"sync"

	"github.com/alexisbeaulieu97/prism/internal/aspect"
)

type key struct {
	aspect aspect.Aspect
	kind   Kind
}

// Entry is one stored hint, as returned by Table.Entries.
type Entry struct {
	Aspect aspect.Aspect
	Hint   Hint
}

// Table stores hints by exact aspect. It is safe for concurrent use.
type Table struct {
	mu    sync.RWMutex
	hints map[key]Hint
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{hints: make(map[key]Hint)}
}

// Set stores h at a, replacing any hint of the same kind.
func (t *Table) Set(a aspect.Aspect, h Hint) error {
	if err := h.validate(); err != nil {
		return ErrInvalidHint.withCause(err).WithContext(map[string]interface{}{"aspect": a.String()})
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.hints[key{aspect: a, kind: h.kind}] = h
	return nil
}

// Hint returns the hint stored at exactly a.
func (t *Table) Hint(a aspect.Aspect, kind Kind) (Hint, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	h, ok := t.hints[key{aspect: a, kind: kind}]
	return h, ok
}

// Remove deletes the hint stored at exactly a and reports whether one existed.
func (t *Table) Remove(a aspect.Aspect, kind Kind) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	k := key{aspect: a, kind: kind}
	if _, ok := t.hints[k]; !ok {
		return false
	}
	delete(t.hints, k)
	return true
}

func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.hints)
}

// HasControl reports whether any hint is stored for control.
func (t *Table) HasControl(control string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for k := range t.hints {
		if k.aspect.Control == control {
			return true
		}
	}
	return false
}

// Merge copies the hints of other into t. Existing hints are kept unless
// overwrite is set. It returns the number of hints copied.
func (t *Table) Merge(other *Table, overwrite bool) int {
	if other == nil || other == t {
		return 0
	}

	other.mu.RLock()
	snapshot := make(map[key]Hint, len(other.hints))
	for k, h := range other.hints {
		snapshot[k] = h
	}
	other.mu.RUnlock()

	t.mu.Lock()
	defer t.mu.Unlock()

	copied := 0
	for k, h := range snapshot {
		if _, exists := t.hints[k]; exists && !overwrite {
			continue
		}
		t.hints[k] = h
		copied++
	}
	return copied
}

// Clone returns an independent copy of t.
func (t *Table) Clone() *Table {
	clone := NewTable()
	clone.Merge(t, true)
	return clone
}

// Entries lists every hint ordered by control, section, variation, states
// and kind.
func (t *Table) Entries() []Entry {
	t.mu.RLock()
	keys := make([]key, 0, len(t.hints))
	for k := range t.hints {
		keys = append(keys, k)
	}
	t.mu.RUnlock()

	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i].aspect, keys[j].aspect
		switch {
		case a.Control != b.Control:
			return a.Control < b.Control
		case a.Section != b.Section:
			return a.Section < b.Section
		case a.Variation != b.Variation:
			return a.Variation < b.Variation
		case a.States != b.States:
			return a.States < b.States
		}
		return keys[i].kind < keys[j].kind
	})

	t.mu.RLock()
	defer t.mu.RUnlock()
	entries := make([]Entry, 0, len(keys))
	for _, k := range keys {
		if h, ok := t.hints[k]; ok {
			entries = append(entries, Entry{Aspect: k.aspect, Hint: h})
		}
	}
	return entries
}

// resolve looks a up for a single control: the requested variation before
// NoVariation, the requested section before Body, and within each slot the
// state set with its highest bits stripped one at a time.
func (t *Table) resolve(a aspect.Aspect, kind Kind) (Hint, aspect.Aspect, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, variation := range fallbackVariations(a.Variation) {
		for _, section := range fallbackSections(a.Section) {
			candidate := a.WithVariation(variation).WithSection(section)
			for states := a.States; ; states &^= states.Top() {
				candidate.States = states
				if h, ok := t.hints[key{aspect: candidate, kind: kind}]; ok {
					return h, candidate, true
				}
				if states == aspect.NoState {
					break
				}
			}
		}
	}
	return Hint{}, aspect.Aspect{}, false
}

func fallbackVariations(v aspect.Variation) []aspect.Variation {
	if v == aspect.NoVariation {
		return []aspect.Variation{v}
	}
	return []aspect.Variation{v, aspect.NoVariation}
}

func fallbackSections(s aspect.Section) []aspect.Section {
	if s == aspect.Body {
		return []aspect.Section{s}
	}
	return []aspect.Section{s, aspect.Body}
}
