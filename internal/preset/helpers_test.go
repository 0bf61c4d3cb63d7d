package preset

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/prism/pkg/gradient"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "spaces", input: "Ocean Breeze", want: "ocean-breeze"},
		{name: "camelCase", input: "WarmFlame", want: "warm-flame"},
		{name: "acronym", input: "HSVWheel", want: "hsvwheel"},
		{name: "digits", input: "Sunset2Dusk", want: "sunset2-dusk"},
		{name: "mixedSeparators", input: "Warm_Fade v1.0", want: "warm-fade-v1-0"},
		{name: "leadingTrailing", input: "--Dusk--", want: "dusk"},
		{name: "consecutiveSeparators", input: "A    b!!c", want: "a-b-c"},
		{name: "nonASCII", input: "Café Noir", want: "caf-noir"},
		{name: "symbolsOnly", input: "!!!", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.input))
		})
	}

	long := Sanitize(strings.Repeat("abc ", 30))
	assert.LessOrEqual(t, len(long), presetIDMaxLength)
	assert.False(t, strings.HasSuffix(long, "-"))
	require.NoError(t, ValidatePresetID(long))
}

func TestGeneratePresetID(t *testing.T) {
	g := gradient.MustParse("H(red, blue)")
	assert.Equal(t, "ocean-breeze", GeneratePresetID("Ocean Breeze", g))

	derived := GeneratePresetID("***", g)
	require.True(t, strings.HasPrefix(derived, "gradient-"))
	assert.Len(t, derived, len("gradient-")+8)
	require.NoError(t, ValidatePresetID(derived))

	assert.Equal(t, derived, GeneratePresetID("", gradient.MustParse("H(#ff0000 0, #0000ff 1)")))
	assert.NotEqual(t, derived, GeneratePresetID("", g.Reversed()))
}

func TestValidatePresetID(t *testing.T) {
	for _, id := range []string{"a", "dev", "warm-fade", "abc123", strings.Repeat("a", presetIDMaxLength)} {
		require.NoError(t, ValidatePresetID(id), id)
	}

	for _, id := range []string{"", "-lead", "trail-", "Upper", "has space", strings.Repeat("a", presetIDMaxLength+1)} {
		require.Error(t, ValidatePresetID(id), id)
	}
}
