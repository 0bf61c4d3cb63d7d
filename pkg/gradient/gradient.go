// Package gradient implements an immutable color ramp value and the
// operations used to animate and slice it: reversal, sub-range extraction,
// cross-fading between gradients of different layouts, and hashing.
//
// A Gradient is either empty or holds a valid stop list (see IsValidStops).
// Operations never fail: inputs that cannot form a gradient degrade to the
// empty gradient, and out-of-range queries return sentinels.
package gradient

import (
	"github.com/alexisbeaulieu97/prism/pkg/rgb"
)

// Gradient is a one dimensional color ramp with an orientation tag. The
// zero value is an empty horizontal gradient.
type Gradient struct {
	orientation Orientation
	stops       Stops

	// mirror holds the stops this gradient was reversed from. Both slices
	// are never written after construction.
	mirror Stops

	valid      bool
	multicolor bool
	visible    bool
}

// Empty returns a gradient without stops.
func Empty(o Orientation) Gradient {
	return Gradient{orientation: o}
}

// New builds a gradient from stops. A non-empty list that is not valid is
// logged and replaced by the empty gradient.
func New(o Orientation, stops Stops) Gradient {
	if len(stops) == 0 {
		return Empty(o)
	}

	if !IsValidStops(stops) {
		log := Logger()
		log.Warn().
			Str("orientation", o.String()).
			Str("stops", stops.String()).
			Msg("invalid gradient stops")
		return Empty(o)
	}

	return build(o, stops.clone())
}

// build classifies stops that are already known to be valid and owned.
func build(o Orientation, stops Stops) Gradient {
	return Gradient{
		orientation: o,
		stops:       stops,
		valid:       true,
		multicolor:  !IsMonochromeStops(stops),
		visible:     IsVisibleStops(stops),
	}
}

// FromColor returns a vertical gradient of a single color.
func FromColor(c rgb.Color) Gradient {
	return FromColors(Vertical, c, c)
}

// FromColors returns a two stop ramp from start to end. Unset colors give
// the empty gradient.
func FromColors(o Orientation, start, end rgb.Color) Gradient {
	if !start.IsValid() || !end.IsValid() {
		return Empty(o)
	}
	return build(o, Stops{{Position: 0, Color: start}, {Position: 1, Color: end}})
}

// FromColorArray lays colors out with ColorStops.
func FromColorArray(o Orientation, colors []rgb.Color, discrete bool) Gradient {
	return New(o, ColorStops(colors, discrete))
}

func (g Gradient) Orientation() Orientation { return g.orientation }

// Stops returns a copy of the stop list.
func (g Gradient) Stops() Stops { return g.stops.clone() }

func (g Gradient) StopCount() int { return len(g.stops) }

// IsValid reports whether g holds a stop list.
func (g Gradient) IsValid() bool { return g.valid }

// IsMonochrome reports whether all stops share one color. Empty gradients
// are monochrome.
func (g Gradient) IsMonochrome() bool { return !g.multicolor }

// IsVisible reports whether any stop has a non-zero alpha.
func (g Gradient) IsVisible() bool { return g.visible }

// StopAt returns the position of stop i, or -1 when i is out of range.
func (g Gradient) StopAt(i int) float64 {
	if i < 0 || i >= len(g.stops) {
		return -1
	}
	return g.stops[i].Position
}

// ColorAt returns the color of stop i, or rgb.Invalid when i is out of range.
func (g Gradient) ColorAt(i int) rgb.Color {
	if i < 0 || i >= len(g.stops) {
		return rgb.Invalid
	}
	return g.stops[i].Color
}

func (g Gradient) StartColor() rgb.Color { return g.ColorAt(0) }

func (g Gradient) EndColor() rgb.Color { return g.ColorAt(len(g.stops) - 1) }

// HasStopAt reports whether a stop sits exactly at pos.
func (g Gradient) HasStopAt(pos float64) bool {
	for _, stop := range g.stops {
		if stop.Position == pos {
			return true
		}
		if stop.Position > pos {
			break
		}
	}
	return false
}

// Sample returns the ramp color at pos, clamped to [0,1].
func (g Gradient) Sample(pos float64) rgb.Color {
	return g.stops.sample(pos)
}

func (g Gradient) WithOrientation(o Orientation) Gradient {
	g.orientation = o
	return g
}

func (g Gradient) WithStops(stops Stops) Gradient {
	return New(g.orientation, stops)
}

func (g Gradient) WithColor(c rgb.Color) Gradient {
	return FromColors(g.orientation, c, c)
}

func (g Gradient) WithColors(start, end rgb.Color) Gradient {
	return FromColors(g.orientation, start, end)
}

// WithAlpha sets the alpha of every stop that is not fully transparent.
func (g Gradient) WithAlpha(alpha uint8) Gradient {
	if len(g.stops) == 0 {
		return g
	}

	stops := g.stops.clone()
	for i := range stops {
		if stops[i].Color.A != 0 {
			stops[i].Color = stops[i].Color.WithAlpha(alpha)
		}
	}
	return build(g.orientation, stops)
}

// Cleared drops all stops and keeps the orientation.
func (g Gradient) Cleared() Gradient {
	return Empty(g.orientation)
}

// Equal reports structural equality. Empty gradients are equal whatever
// their orientation.
func (g Gradient) Equal(other Gradient) bool {
	if len(g.stops) == 0 && len(other.stops) == 0 {
		return true
	}
	if g.orientation != other.orientation || len(g.stops) != len(other.stops) {
		return false
	}
	for i := range g.stops {
		if g.stops[i] != other.stops[i] {
			return false
		}
	}
	return true
}

// Hash folds orientation and stops into seed. An empty gradient returns
// seed unchanged.
func (g Gradient) Hash(seed uint64) uint64 {
	if len(g.stops) == 0 {
		return seed
	}

	h := mix(seed, uint64(g.orientation))
	for _, stop := range g.stops {
		h = stop.Hash(h)
	}
	return h
}
