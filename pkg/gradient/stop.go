package gradient

import (
	"encoding/binary"
	"hash/fnv"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/prism/pkg/rgb"
)

// Stop is a color at a normalized position along the ramp.
type Stop struct {
	Position float64   `json:"position" yaml:"position"`
	Color    rgb.Color `json:"color" yaml:"color"`
}

// Stops is an ordered stop list. Two stops sharing a position encode a
// hard step between their colors.
type Stops []Stop

// Hash folds the stop into seed.
func (s Stop) Hash(seed uint64) uint64 {
	return mix(s.Color.Hash(seed), math.Float64bits(s.Position))
}

func (s Stop) String() string {
	return s.Color.String() + " " + formatPosition(s.Position)
}

func formatPosition(p float64) string {
	return strconv.FormatFloat(p, 'g', -1, 64)
}

func mix(seed, value uint64) uint64 {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], seed)
	binary.LittleEndian.PutUint64(buf[8:], value)

	h := fnv.New64a()
	_, _ = h.Write(buf[:])
	return h.Sum64()
}

func (s Stops) String() string {
	parts := make([]string, len(s))
	for i, stop := range s {
		parts[i] = stop.String()
	}
	return strings.Join(parts, ", ")
}

// clone copies s and folds negative zero positions into zero so equal
// lists also hash equally.
func (s Stops) clone() Stops {
	if len(s) == 0 {
		return nil
	}
	out := make(Stops, len(s))
	copy(out, s)
	for i := range out {
		if out[i].Position == 0 {
			out[i].Position = 0
		}
	}
	return out
}

// IsValidStops reports whether stops can describe a gradient: at least two
// stops, spanning exactly [0,1], with set colors and non-decreasing positions.
func IsValidStops(stops Stops) bool {
	if len(stops) < 2 {
		return false
	}
	if stops[0].Position != 0 || stops[len(stops)-1].Position != 1 {
		return false
	}

	for i, stop := range stops {
		if !stop.Color.IsValid() {
			return false
		}
		if i > 0 && !(stop.Position >= stops[i-1].Position) {
			return false
		}
	}
	return true
}

// IsMonochromeStops reports whether every stop has the first stop's color.
func IsMonochromeStops(stops Stops) bool {
	for i := 1; i < len(stops); i++ {
		if stops[i].Color != stops[0].Color {
			return false
		}
	}
	return true
}

// IsVisibleStops reports whether any stop carries a set, non-transparent color.
func IsVisibleStops(stops Stops) bool {
	for _, stop := range stops {
		if stop.Color.IsValid() && stop.Color.A > 0 {
			return true
		}
	}
	return false
}

// ColorStops lays out colors over [0,1]. Continuous stops are evenly
// spaced. Discrete stops give every color its own band [i/N, (i+1)/N) with
// a pair of stops at each inner boundary.
func ColorStops(colors []rgb.Color, discrete bool) Stops {
	count := len(colors)
	switch count {
	case 0:
		return nil
	case 1:
		return Stops{{Position: 0, Color: colors[0]}, {Position: 1, Color: colors[0]}}
	}

	var stops Stops
	if discrete {
		stops = make(Stops, 0, 2*count)
	} else {
		stops = make(Stops, 0, count)
	}

	stops = append(stops, Stop{Position: 0, Color: colors[0]})

	if discrete {
		step := 1.0 / float64(count)
		for i := 1; i < count; i++ {
			pos := float64(i) * step
			stops = append(stops, Stop{Position: pos, Color: colors[i-1]}, Stop{Position: pos, Color: colors[i]})
		}
	} else {
		step := 1.0 / float64(count-1)
		for i := 1; i < count-1; i++ {
			stops = append(stops, Stop{Position: float64(i) * step, Color: colors[i]})
		}
	}

	return append(stops, Stop{Position: 1, Color: colors[count-1]})
}

// interpolatedColor is the color at pos on the segment between s1 and s2.
func interpolatedColor(s1, s2 Stop, pos float64) rgb.Color {
	if s1.Color == s2.Color {
		return s1.Color
	}

	span := s2.Position - s1.Position
	if !(span > 0) {
		return s2.Color
	}
	return rgb.Interpolated(s1.Color, s2.Color, (pos-s1.Position)/span)
}

// sample returns the ramp color at pos. At a hard step the color after the
// step wins.
func (s Stops) sample(pos float64) rgb.Color {
	if len(s) == 0 {
		return rgb.Invalid
	}

	last := len(s) - 1
	if pos >= s[last].Position {
		return s[last].Color
	}

	i := sort.Search(len(s), func(k int) bool { return s[k].Position > pos })
	switch i {
	case 0:
		return s[0].Color
	case len(s):
		return s[last].Color
	}
	return interpolatedColor(s[i-1], s[i], pos)
}
