package rgb

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"

	prismerrors "github.com/alexisbeaulieu97/prism/pkg/errors"
)

// Parse decodes a color from one of:
//   - hex: "#RGB", "#RGBA", "#RRGGBB", "#RRGGBBAA"
//   - functions: "rgb(255, 0, 0)", "rgba(255, 0, 0, 0.5)" or "rgba(255, 0, 0, 128)"
//   - SVG 1.1 color names ("cornflowerblue") and "transparent"
func Parse(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Invalid, prismerrors.NewParseError("", 0, fmt.Errorf("empty color"))
	}

	lower := strings.ToLower(s)
	switch {
	case strings.HasPrefix(lower, "#"):
		return parseHex(lower)
	case strings.HasPrefix(lower, "rgba(") || strings.HasPrefix(lower, "rgb("):
		return parseFunc(lower)
	case lower == "transparent":
		return Transparent, nil
	}

	if named, ok := colornames.Map[lower]; ok {
		return Color{R: named.R, G: named.G, B: named.B, A: named.A}, nil
	}

	return Invalid, prismerrors.NewParseError("", 0, fmt.Errorf("unrecognized color %q", s))
}

// MustParse is Parse for literals known to be well formed.
func MustParse(s string) Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

func parseHex(s string) (Color, error) {
	digits := s[1:]
	for _, r := range digits {
		if !isHexDigit(r) {
			return Invalid, prismerrors.NewParseError("", 0, fmt.Errorf("invalid hex digit %q in %q", r, s))
		}
	}

	var rgbPart, alphaPart string
	switch len(digits) {
	case 3, 6:
		rgbPart = digits
	case 4:
		rgbPart, alphaPart = digits[:3], digits[3:]+digits[3:]
	case 8:
		rgbPart, alphaPart = digits[:6], digits[6:]
	default:
		return Invalid, prismerrors.NewParseError("", 0, fmt.Errorf("hex color %q must have 3, 4, 6 or 8 digits", s))
	}

	decoded, err := colorful.Hex("#" + rgbPart)
	if err != nil {
		return Invalid, prismerrors.NewParseError("", 0, err)
	}
	r, g, b := decoded.RGB255()

	alpha := uint64(255)
	if alphaPart != "" {
		alpha, err = strconv.ParseUint(alphaPart, 16, 8)
		if err != nil {
			return Invalid, prismerrors.NewParseError("", 0, fmt.Errorf("invalid alpha in %q: %w", s, err))
		}
	}

	return Color{R: r, G: g, B: b, A: uint8(alpha)}, nil
}

func parseFunc(s string) (Color, error) {
	open := strings.IndexByte(s, '(')
	if !strings.HasSuffix(s, ")") {
		return Invalid, prismerrors.NewParseError("", 0, fmt.Errorf("unterminated color function %q", s))
	}

	name := strings.TrimSpace(s[:open])
	parts := strings.Split(s[open+1:len(s)-1], ",")

	want := 3
	if name == "rgba" {
		want = 4
	}
	if len(parts) != want {
		return Invalid, prismerrors.NewParseError("", 0, fmt.Errorf("%s() takes %d components, got %d", name, want, len(parts)))
	}

	var channels [3]uint8
	for i := 0; i < 3; i++ {
		v, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || v < 0 || v > 255 {
			return Invalid, prismerrors.NewParseError("", 0, fmt.Errorf("component %d of %q must be an integer in [0,255]", i+1, s))
		}
		channels[i] = uint8(v)
	}

	alpha := uint8(255)
	if want == 4 {
		a, err := parseAlpha(strings.TrimSpace(parts[3]))
		if err != nil {
			return Invalid, prismerrors.NewParseError("", 0, fmt.Errorf("alpha of %q: %w", s, err))
		}
		alpha = a
	}

	return Color{R: channels[0], G: channels[1], B: channels[2], A: alpha}, nil
}

// parseAlpha accepts a fraction in [0,1] when the value has a decimal point
// and an integer in [0,255] otherwise.
func parseAlpha(s string) (uint8, error) {
	if strings.Contains(s, ".") {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || f < 0 || f > 1 {
			return 0, fmt.Errorf("fraction %q must lie in [0,1]", s)
		}
		return channel(f * 255), nil
	}

	v, err := strconv.Atoi(s)
	if err != nil || v < 0 || v > 255 {
		return 0, fmt.Errorf("value %q must be an integer in [0,255]", s)
	}
	return uint8(v), nil
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f')
}
