package gradient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/prism/pkg/rgb"
)

func positions(stops Stops) []float64 {
	out := make([]float64, len(stops))
	for i, s := range stops {
		out[i] = s.Position
	}
	return out
}

func TestExpandStopsAlignsBothSides(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		a    Stops
		b    Stops
		want []float64
	}{
		{
			name: "disjoint interiors",
			a:    Stops{{0, red}, {0.25, green}, {1, blue}},
			b:    Stops{{0, black}, {0.5, white}, {0.75, black}, {1, white}},
			want: []float64{0, 0.25, 0.5, 0.75, 1},
		},
		{
			name: "shared position against hard step",
			a:    Stops{{0, red}, {0.5, green}, {0.5, blue}, {1, blue}},
			b:    Stops{{0, black}, {0.5, white}, {1, black}},
			want: []float64{0, 0.5, 0.5, 0.5, 1},
		},
		{
			name: "plain ramp against interior stops",
			a:    Stops{{0, red}, {1, blue}},
			b:    Stops{{0, black}, {0.125, white}, {0.875, white}, {1, black}},
			want: []float64{0, 0.125, 0.875, 1},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ab := expandStops(tc.a, tc.b)
			ba := expandStops(tc.b, tc.a)

			require.Equal(t, tc.want, positions(ab))
			require.Equal(t, tc.want, positions(ba))
			require.True(t, IsValidStops(ab))
			require.True(t, IsValidStops(ba))

			for _, s := range tc.a {
				assert.Contains(t, ab, s)
			}
		})
	}
}

func TestExpandStopsSynthesizesBetweenBrackets(t *testing.T) {
	t.Parallel()

	a := Stops{{0, black}, {1, white}}
	b := Stops{{0, red}, {0.5, green}, {1, blue}}

	got := expandStops(a, b)
	require.Equal(t, Stops{{0, black}, {0.5, rgb.Opaque(128, 128, 128)}, {1, white}}, got)
}

func TestExpandStopsFastPathReturnsSource(t *testing.T) {
	t.Parallel()

	a := Stops{{0, red}, {0.5, green}, {1, blue}}
	b := Stops{{0, black}, {0.5, white}, {1, black}}

	require.Equal(t, a, expandStops(a, b))
}

func TestExpandStopsCoincidentBrackets(t *testing.T) {
	t.Parallel()

	source := Stops{{0, red}, {0, green}, {1, blue}}
	reference := Stops{{0, black}, {0, white}, {0.5, white}, {1, black}}

	got := expandStops(source, reference)
	require.Equal(t, []float64{0, 0, 0, 0.5, 1}, positions(got))
	for _, s := range got {
		require.True(t, s.Color.IsValid())
	}
	require.Equal(t, rgb.Interpolated(green, blue, 0.5), got[3].Color)
}

func TestExtracted(t *testing.T) {
	t.Parallel()

	redBlue := FromColors(Vertical, red, blue)
	purple := rgb.MustParse("#800080")

	t.Run("first half of red to blue ends in purple", func(t *testing.T) {
		t.Parallel()
		got := redBlue.Extracted(0, 0.5)
		require.Equal(t, Vertical, got.Orientation())
		require.Equal(t, Stops{{0, red}, {1, purple}}, got.Stops())
	})

	t.Run("second half starts in purple", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, Stops{{0, purple}, {1, blue}}, redBlue.Extracted(0.5, 1).Stops())
	})

	t.Run("interior stops are remapped", func(t *testing.T) {
		t.Parallel()
		g := New(Horizontal, Stops{{0, red}, {0.5, green}, {1, blue}})
		got := g.Extracted(0.25, 0.75)
		require.Equal(t, Stops{
			{0, rgb.Opaque(128, 128, 0)},
			{0.5, green},
			{1, rgb.Opaque(0, 128, 128)},
		}, got.Stops())
	})

	t.Run("full range returns the source", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, redBlue, redBlue.Extracted(0, 1))
		require.Equal(t, redBlue, redBlue.Extracted(-3, 4))
	})

	t.Run("reversed range is empty", func(t *testing.T) {
		t.Parallel()
		got := redBlue.Extracted(0.6, 0.4)
		require.False(t, got.IsValid())
		require.Equal(t, Vertical, got.Orientation())
	})

	t.Run("monochrome returns the source", func(t *testing.T) {
		t.Parallel()
		mono := FromColor(green)
		require.Equal(t, mono, mono.Extracted(0.2, 0.3))
	})

	t.Run("degenerate range at the end", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, Stops{{0, blue}, {1, blue}}, redBlue.Extracted(1, 1).Stops())
	})

	t.Run("bands of a discrete gradient", func(t *testing.T) {
		t.Parallel()
		bands := FromColorArray(Horizontal, []rgb.Color{red, blue}, true)
		require.Equal(t, Stops{{0, red}, {1, red}}, bands.Extracted(0, 0.5).Stops())
		require.Equal(t, Stops{{0, blue}, {1, blue}}, bands.Extracted(0.5, 1).Stops())
	})

	t.Run("extraction composes", func(t *testing.T) {
		t.Parallel()
		g := New(Horizontal, Stops{{0, red}, {0.5, green}, {1, blue}})
		once := g.Extracted(0.25, 0.75)
		require.True(t, once.Extracted(0, 1).Equal(once))
		require.True(t, g.Extracted(0, 1).Equal(g))
	})
}

func TestReversed(t *testing.T) {
	t.Parallel()

	g := New(Horizontal, Stops{{0, red}, {0.25, green}, {1, blue}})

	reversed := g.Reversed()
	require.Equal(t, Stops{{0, blue}, {0.75, green}, {1, red}}, reversed.Stops())
	require.True(t, reversed.Reversed().Equal(g))

	mono := FromColor(red)
	require.Equal(t, mono, mono.Reversed())
	require.Equal(t, Empty(Diagonal), Empty(Diagonal).Reversed())

	thirds := New(Vertical, Stops{{0, red}, {1.0 / 3, green}, {2.0 / 3, blue}, {1, white}})
	back := thirds.Reversed().Reversed()
	require.True(t, back.Equal(thirds))
	require.Equal(t, thirds.Stops(), back.Stops())
	require.Equal(t, thirds.Hash(5), back.Hash(5))

	shifted := thirds.Reversed().WithOrientation(Diagonal).Reversed()
	require.Equal(t, thirds.Stops(), shifted.Stops())
	require.Equal(t, Diagonal, shifted.Orientation())
}

func TestInterpolatedBoundariesAndIdentity(t *testing.T) {
	t.Parallel()

	a := New(Horizontal, Stops{{0, red}, {1, blue}})
	b := New(Horizontal, Stops{{0, black}, {0.5, white}, {1, black}})
	c := New(Diagonal, Stops{{0, green}, {0.75, red}, {1, white}})

	for _, pair := range [][2]Gradient{{a, b}, {a, c}, {FromColor(red), b}, {a, FromColor(white)}} {
		from, to := pair[0], pair[1]
		require.True(t, Interpolate(from, to, 0).Equal(from))
		require.True(t, Interpolate(from, to, 1).Equal(to))
		require.True(t, Interpolate(from, to, -0.5).Equal(from))
		require.True(t, Interpolate(from, to, 1.5).Equal(to))
	}

	flat := New(Vertical, Stops{{0, red}, {0.5, red}, {1, red}})
	for _, g := range []Gradient{a, b, c, FromColor(red), flat} {
		for _, t01 := range []float64{0, 0.3, 0.5, 1} {
			require.True(t, Interpolate(g, g, t01).Equal(g), "%s at %v", g, t01)
		}
	}
}

func TestInterpolatedCases(t *testing.T) {
	t.Parallel()

	t.Run("both monochrome", func(t *testing.T) {
		t.Parallel()
		got := Interpolate(FromColor(white), FromColor(black), 0.5)
		require.True(t, got.IsMonochrome())
		require.Equal(t, Stops{{0, rgb.MustParse("#808080")}, {1, rgb.MustParse("#808080")}}, got.Stops())
		require.Equal(t, Vertical, got.Orientation())

		got = Interpolate(FromColor(white), FromColors(Diagonal, red, red), 0.5)
		require.Equal(t, Diagonal, got.Orientation())
	})

	t.Run("monochrome source broadcasts", func(t *testing.T) {
		t.Parallel()
		to := New(Horizontal, Stops{{0, black}, {0.5, white}, {1, black}})
		got := Interpolate(FromColor(red), to, 0.5)
		require.Equal(t, Horizontal, got.Orientation())
		require.Equal(t, Stops{
			{0, rgb.Opaque(128, 0, 0)},
			{0.5, rgb.Opaque(255, 128, 128)},
			{1, rgb.Opaque(128, 0, 0)},
		}, got.Stops())
	})

	t.Run("monochrome target broadcasts", func(t *testing.T) {
		t.Parallel()
		from := FromColors(Horizontal, black, white)
		got := Interpolate(from, FromColor(red), 0.5)
		require.Equal(t, Horizontal, got.Orientation())
		require.Equal(t, Stops{{0, rgb.Opaque(128, 0, 0)}, {1, rgb.Opaque(255, 128, 128)}}, got.Stops())
	})

	t.Run("same orientation aligns stops", func(t *testing.T) {
		t.Parallel()
		from := FromColors(Horizontal, black, white)
		to := New(Horizontal, Stops{{0, white}, {0.5, black}, {1, white}})
		got := Interpolate(from, to, 0.5)
		require.Equal(t, Stops{
			{0, rgb.MustParse("#808080")},
			{0.5, rgb.MustParse("#404040")},
			{1, white},
		}, got.Stops())
	})

	t.Run("different orientation fades through the start color", func(t *testing.T) {
		t.Parallel()
		from := FromColors(Horizontal, red, blue)
		to := FromColors(Vertical, black, white)

		first := Interpolate(from, to, 0.25)
		require.Equal(t, Horizontal, first.Orientation())
		require.Equal(t, Stops{{0, red}, {1, rgb.Opaque(128, 0, 128)}}, first.Stops())

		middle := Interpolate(from, to, 0.5)
		require.Equal(t, Stops{{0, red}, {1, red}}, middle.Stops())

		second := Interpolate(from, to, 0.75)
		require.Equal(t, Vertical, second.Orientation())
		require.Equal(t, Stops{{0, rgb.Opaque(128, 0, 0)}, {1, rgb.Opaque(255, 128, 128)}}, second.Stops())
	})

	t.Run("empty side fades", func(t *testing.T) {
		t.Parallel()
		g := FromColors(Horizontal, red, blue)

		out := Interpolate(g, Empty(Vertical), 0.25)
		require.Equal(t, Horizontal, out.Orientation())
		require.Equal(t, Stops{{0, rgb.New(255, 0, 0, 191)}, {1, rgb.New(0, 0, 255, 191)}}, out.Stops())

		in := Interpolate(Empty(Vertical), g, 0.25)
		require.Equal(t, Stops{{0, rgb.New(255, 0, 0, 64)}, {1, rgb.New(0, 0, 255, 64)}}, in.Stops())

		require.False(t, Interpolate(Empty(Vertical), g, 0).IsVisible())
		require.Equal(t, g, Interpolate(Empty(Vertical), g, 1))
	})

	t.Run("both empty returns target", func(t *testing.T) {
		t.Parallel()
		got := Interpolate(Empty(Horizontal), Empty(Diagonal), 0.5)
		require.Equal(t, Empty(Diagonal), got)
	})
}

func TestColorStops(t *testing.T) {
	t.Parallel()

	require.Empty(t, ColorStops(nil, false))
	require.Equal(t, Stops{{0, red}, {1, red}}, ColorStops([]rgb.Color{red}, false))
	require.Equal(t, Stops{{0, red}, {1, red}}, ColorStops([]rgb.Color{red}, true))

	continuous := ColorStops([]rgb.Color{red, green, blue}, false)
	require.Equal(t, Stops{{0, red}, {0.5, green}, {1, blue}}, continuous)

	discrete := ColorStops([]rgb.Color{red, green, blue}, true)
	require.True(t, IsValidStops(discrete))

	steps := discrete[1 : len(discrete)-1]
	require.Len(t, steps, 4)
	require.InDelta(t, 1.0/3, steps[0].Position, 1e-12)
	require.InDelta(t, 1.0/3, steps[1].Position, 1e-12)
	require.InDelta(t, 2.0/3, steps[2].Position, 1e-12)
	require.InDelta(t, 2.0/3, steps[3].Position, 1e-12)
	require.Equal(t, []rgb.Color{red, green, green, blue}, []rgb.Color{steps[0].Color, steps[1].Color, steps[2].Color, steps[3].Color})
	require.Equal(t, Stop{0, red}, discrete[0])
	require.Equal(t, Stop{1, blue}, discrete[len(discrete)-1])

	g := FromColorArray(Horizontal, []rgb.Color{red, green, blue}, true)
	require.Equal(t, green, g.Sample(0.5))
}
