package gradient

import (
	"math"
	"sort"

	"github.com/alexisbeaulieu97/prism/pkg/rgb"
)

// expandStops returns source with an extra stop for every interior position
// of reference that source lacks. Expanding a against b and b against a
// yields lists with identical positions.
func expandStops(source, reference Stops) Stops {
	if samePositions(source, reference) {
		return source
	}

	out := make(Stops, 0, len(source)+len(reference))
	out = append(out, source[0])

	i, j := 1, 1
	for i < len(source) || j < len(reference)-1 {
		takeSource := j >= len(reference)-1 ||
			(i < len(source) && source[i].Position < reference[j].Position)

		if takeSource {
			out = append(out, source[i])
			i++
			continue
		}

		pos := reference[j].Position
		// i >= 1 here, and source[i-1].Position <= pos <= source[i].Position
		// because the last source stop sits at 1.
		out = append(out, Stop{Position: pos, Color: interpolatedColor(source[i-1], source[i], pos)})
		j++
	}

	return out
}

func samePositions(a, b Stops) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 1; i < len(a)-1; i++ {
		if a[i].Position != b[i].Position {
			return false
		}
	}
	return true
}

// extractStops maps the [from,to] slice of stops onto [0,1]. Callers
// guarantee 0 <= from <= to <= 1.
func extractStops(stops Stops, from, to float64) Stops {
	out := make(Stops, 0, len(stops)+2)

	var i int
	if from == 0 {
		out = append(out, Stop{Position: 0, Color: stops[0].Color})
		i = 1
	} else {
		i = sort.Search(len(stops), func(k int) bool { return stops[k].Position > from })
		if i >= len(stops) {
			i = len(stops) - 1
		}
		out = append(out, Stop{Position: 0, Color: interpolatedColor(stops[i-1], stops[i], from)})
	}

	for ; i < len(stops); i++ {
		stop := stops[i]
		if stop.Position >= to {
			break
		}
		out = append(out, Stop{Position: (stop.Position - from) / (to - from), Color: stop.Color})
	}

	if i >= len(stops) {
		i = len(stops) - 1
	}
	out = append(out, Stop{Position: 1, Color: interpolatedColor(stops[i-1], stops[i], to)})

	return out
}

// Extracted returns the part of g between from and to, stretched over
// [0,1]. A reversed range gives the empty gradient.
func (g Gradient) Extracted(from, to float64) Gradient {
	if math.IsNaN(from) || math.IsNaN(to) || from > to {
		return Empty(g.orientation)
	}
	if g.IsMonochrome() || (from <= 0 && to >= 1) {
		return g
	}

	from = math.Max(from, 0)
	to = math.Min(to, 1)

	return build(g.orientation, extractStops(g.stops, from, to))
}

// Reversed mirrors the ramp so that position p moves to 1-p. Reversing a
// reversed gradient restores the original positions exactly, even where
// 1-(1-p) would round.
func (g Gradient) Reversed() Gradient {
	if g.IsMonochrome() {
		return g
	}

	var stops Stops
	if g.mirror != nil {
		stops = g.mirror
	} else {
		n := len(g.stops)
		stops = make(Stops, n)
		for i, stop := range g.stops {
			stops[n-1-i] = Stop{Position: 1 - stop.Position, Color: stop.Color}
		}
	}

	reversed := build(g.orientation, stops)
	reversed.mirror = g.stops
	return reversed
}

// Interpolate cross-fades from toward to. See Gradient.Interpolated.
func Interpolate(from, to Gradient, t float64) Gradient {
	return from.Interpolated(to, t)
}

// Interpolated returns the gradient a fraction t of the way from g to to.
//
// An empty side is treated as fully transparent: the other side fades in
// or out through its alpha. Monochrome sides are broadcast against the
// other side's stops. Gradients with the same orientation are aligned stop
// by stop. Otherwise g first fades to its start color over the first half
// of t, and that color fades to to over the second half.
func (g Gradient) Interpolated(to Gradient, t float64) Gradient {
	if !g.valid || !to.valid {
		switch {
		case !g.valid && !to.valid:
			return to
		case g.valid:
			return g.faded(1 - t)
		default:
			return to.faded(t)
		}
	}

	if t <= 0 {
		return g
	}
	if t >= 1 {
		return to
	}
	if g.Equal(to) {
		return to
	}

	switch {
	case g.IsMonochrome() && to.IsMonochrome():
		c := rgb.Interpolated(g.stops[0].Color, to.stops[0].Color, t)
		return FromColors(to.orientation, c, c)

	case g.IsMonochrome():
		return to.blendedFrom(g.stops[0].Color, t)

	case to.IsMonochrome():
		return g.blendedTo(to.stops[0].Color, t)

	case g.orientation == to.orientation:
		fromStops := expandStops(g.stops, to.stops)
		stops := expandStops(to.stops, g.stops).clone()
		for i := range stops {
			stops[i].Color = rgb.Interpolated(fromStops[i].Color, stops[i].Color, t)
		}
		return build(g.orientation, stops)
	}

	c := g.stops[0].Color
	if t <= 0.5 {
		return g.blendedTo(c, 2*t)
	}
	return to.blendedFrom(c, 2*(t-0.5))
}

// faded scales every stop's alpha by progress.
func (g Gradient) faded(progress float64) Gradient {
	stops := g.stops.clone()
	for i := range stops {
		stops[i].Color = stops[i].Color.ScaleAlpha(progress)
	}
	return build(g.orientation, stops)
}

// blendedTo moves every stop of g toward c.
func (g Gradient) blendedTo(c rgb.Color, t float64) Gradient {
	stops := g.stops.clone()
	for i := range stops {
		stops[i].Color = rgb.Interpolated(stops[i].Color, c, t)
	}
	return build(g.orientation, stops)
}

// blendedFrom moves c toward every stop of g.
func (g Gradient) blendedFrom(c rgb.Color, t float64) Gradient {
	stops := g.stops.clone()
	for i := range stops {
		stops[i].Color = rgb.Interpolated(c, stops[i].Color, t)
	}
	return build(g.orientation, stops)
}
