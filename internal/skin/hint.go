package skin

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/prism/pkg/gradient"
	"github.com/alexisbeaulieu97/prism/pkg/rgb"
)

// Kind is the type of value a hint holds.
type Kind int

const (
	GradientHint Kind = iota
	MetricHint
	ColorHint
	FontRoleHint
	SymbolHint
)

var kindNames = []string{"gradient", "metric", "color", "font_role", "symbol"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind maps a kind name; "font-role" is accepted for font_role.
func ParseKind(name string) (Kind, error) {
	name = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	for i, candidate := range kindNames {
		if candidate == name {
			return Kind(i), nil
		}
	}
	return GradientHint, fmt.Errorf("unknown hint kind %q", name)
}

// Hint is a tagged skin value.
type Hint struct {
	kind     Kind
	gradient gradient.Gradient
	color    rgb.Color
	metric   float64
	text     string
}

func GradientValue(g gradient.Gradient) Hint { return Hint{kind: GradientHint, gradient: g} }

func ColorValue(c rgb.Color) Hint { return Hint{kind: ColorHint, color: c} }

func MetricValue(m float64) Hint { return Hint{kind: MetricHint, metric: m} }

func FontRoleValue(role string) Hint { return Hint{kind: FontRoleHint, text: role} }

func SymbolValue(name string) Hint { return Hint{kind: SymbolHint, text: name} }

func (h Hint) Kind() Kind { return h.kind }

// validate reports values that cannot be stored in a table.
func (h Hint) validate() error {
	switch h.kind {
	case ColorHint:
		if !h.color.IsValid() {
			return fmt.Errorf("color is unset")
		}
	case MetricHint:
		if math.IsNaN(h.metric) || math.IsInf(h.metric, 0) {
			return fmt.Errorf("metric %v is not finite", h.metric)
		}
	case FontRoleHint, SymbolHint:
		if strings.TrimSpace(h.text) == "" {
			return fmt.Errorf("%s is empty", h.kind)
		}
	case GradientHint:
	default:
		return fmt.Errorf("unknown hint kind %d", int(h.kind))
	}
	return nil
}

func (h Hint) mismatch(want Kind) error {
	return ErrTypeMismatch.WithContext(map[string]interface{}{"want": want.String(), "have": h.kind.String()})
}

func (h Hint) Gradient() (gradient.Gradient, error) {
	if h.kind != GradientHint {
		return gradient.Gradient{}, h.mismatch(GradientHint)
	}
	return h.gradient, nil
}

func (h Hint) Color() (rgb.Color, error) {
	if h.kind != ColorHint {
		return rgb.Invalid, h.mismatch(ColorHint)
	}
	return h.color, nil
}

func (h Hint) Metric() (float64, error) {
	if h.kind != MetricHint {
		return 0, h.mismatch(MetricHint)
	}
	return h.metric, nil
}

func (h Hint) FontRole() (string, error) {
	if h.kind != FontRoleHint {
		return "", h.mismatch(FontRoleHint)
	}
	return h.text, nil
}

func (h Hint) Symbol() (string, error) {
	if h.kind != SymbolHint {
		return "", h.mismatch(SymbolHint)
	}
	return h.text, nil
}

// Equal compares kind and value.
func (h Hint) Equal(other Hint) bool {
	if h.kind != other.kind {
		return false
	}
	switch h.kind {
	case GradientHint:
		return h.gradient.Equal(other.gradient)
	case ColorHint:
		return h.color == other.color
	case MetricHint:
		return h.metric == other.metric
	}
	return h.text == other.text
}

// String renders the value the way theme files write it.
func (h Hint) String() string {
	switch h.kind {
	case GradientHint:
		return h.gradient.String()
	case ColorHint:
		return h.color.String()
	case MetricHint:
		return strconv.FormatFloat(h.metric, 'g', -1, 64)
	}
	return h.text
}
