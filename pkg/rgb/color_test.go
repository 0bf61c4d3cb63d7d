package rgb

import (
	"encoding/json"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	prismerrors "github.com/alexisbeaulieu97/prism/pkg/errors"
)

func TestNewPanicsOutOfRange(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { New(256, 0, 0, 0) })
	require.Panics(t, func() { New(0, -1, 0, 0) })
	require.NotPanics(t, func() { New(255, 255, 255, 255) })
}

func TestZeroValueIsValid(t *testing.T) {
	t.Parallel()

	var c Color
	require.True(t, c.IsValid())
	require.Equal(t, Transparent, c)
	require.False(t, Invalid.IsValid())
	require.Equal(t, Invalid, Invalid.WithAlpha(10))
}

func TestInterpolated(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		from  Color
		to    Color
		ratio float64
		want  Color
	}{
		{name: "midpoint rounds half up", from: Red, to: Blue, ratio: 0.5, want: Opaque(128, 0, 128)},
		{name: "start", from: White, to: Black, ratio: 0, want: White},
		{name: "end", from: White, to: Black, ratio: 1, want: Black},
		{name: "gray", from: White, to: Black, ratio: 0.5, want: Opaque(128, 128, 128)},
		{name: "identical colors", from: Red, to: Red, ratio: 0.3, want: Red},
		{name: "overshoot clamps", from: Black, to: White, ratio: 2, want: White},
		{name: "fade in from unset", from: Invalid, to: Red, ratio: 0.5, want: New(255, 0, 0, 128)},
		{name: "fade out to unset", from: Blue, to: Invalid, ratio: 0.25, want: New(0, 0, 255, 191)},
		{name: "both unset", from: Invalid, to: Invalid, ratio: 0.5, want: Invalid},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, Interpolated(tc.from, tc.to, tc.ratio))
		})
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input string
		want  Color
	}{
		{input: "#f00", want: Red},
		{input: "#F00A", want: New(255, 0, 0, 170)},
		{input: "#00ff00", want: Opaque(0, 255, 0)},
		{input: "#0000ff80", want: New(0, 0, 255, 128)},
		{input: "rgb(1, 2, 3)", want: Opaque(1, 2, 3)},
		{input: "rgba(1,2,3,0.5)", want: New(1, 2, 3, 128)},
		{input: "rgba(1,2,3,64)", want: New(1, 2, 3, 64)},
		{input: "  CornflowerBlue ", want: Opaque(100, 149, 237)},
		{input: "green", want: Opaque(0, 128, 0)},
		{input: "transparent", want: Transparent},
	}

	for _, tc := range cases {
		got, err := Parse(tc.input)
		require.NoError(t, err, tc.input)
		assert.Equal(t, tc.want, got, tc.input)
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "#12", "#12345", "#gg0000", "rgb(1,2)", "rgb(1,2,300)", "rgba(1,2,3,1.5)", "rgb(1,2,3", "notacolor", "invalid"} {
		_, err := Parse(input)
		require.Error(t, err, input)

		var parseErr *prismerrors.ParseError
		require.ErrorAs(t, err, &parseErr, input)
	}
}

func TestStringRoundTrip(t *testing.T) {
	t.Parallel()

	for _, c := range []Color{Red, Transparent, New(1, 2, 3, 4), Opaque(18, 52, 86)} {
		parsed, err := Parse(c.String())
		require.NoError(t, err)
		require.Equal(t, c, parsed)
	}

	require.Equal(t, "#ff0000", Red.String())
	require.Equal(t, "#00000000", Transparent.String())
	require.Equal(t, "invalid", Invalid.String())
}

func TestJSONUsesTextForm(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(map[string]Color{"c": New(255, 0, 0, 128)})
	require.NoError(t, err)
	require.JSONEq(t, `{"c":"#ff000080"}`, string(data))

	var decoded map[string]Color
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, New(255, 0, 0, 128), decoded["c"])

	_, err = json.Marshal(Invalid)
	require.Error(t, err)
}

func TestImageColorInterop(t *testing.T) {
	t.Parallel()

	c := FromColor(color.NRGBA{R: 10, G: 20, B: 30, A: 40})
	require.Equal(t, New(10, 20, 30, 40), c)
	require.Equal(t, Invalid, FromColor(nil))

	r, _, _, a := Red.RGBA()
	require.Equal(t, uint32(0xffff), r)
	require.Equal(t, uint32(0xffff), a)

	require.Equal(t, uint32(0x80ff0000), New(255, 0, 0, 128).ARGB())
	require.Equal(t, New(255, 0, 0, 128), FromARGB(0x80ff0000))
}

func TestHash(t *testing.T) {
	t.Parallel()

	require.Equal(t, Red.Hash(7), Opaque(255, 0, 0).Hash(7))
	require.NotEqual(t, Red.Hash(7), Blue.Hash(7))
	require.NotEqual(t, Red.Hash(7), Red.Hash(8))
	require.NotEqual(t, Transparent.Hash(0), Invalid.Hash(0))
}
