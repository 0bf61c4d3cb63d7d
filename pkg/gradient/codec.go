package gradient

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	prismerrors "github.com/alexisbeaulieu97/prism/pkg/errors"
	"github.com/alexisbeaulieu97/prism/pkg/rgb"
)

// String renders the text form, for example "V(#ff0000 0, #0000ff 1)".
func (g Gradient) String() string {
	return g.orientation.Letter() + "(" + g.stops.String() + ")"
}

// Parse reads the text form produced by String. Positions may be left out,
// in which case the colors are spread evenly; a "|" after the orientation
// ("H|(red, green)") asks for discrete bands instead. Unlike New, Parse
// rejects stop lists that are not valid.
func Parse(s string) (Gradient, error) {
	text := strings.TrimSpace(s)

	open := strings.IndexByte(text, '(')
	if open < 0 || !strings.HasSuffix(text, ")") {
		return Gradient{}, syntaxError("expected <orientation>(<stops>), got %q", s)
	}

	head := strings.TrimSpace(text[:open])
	discrete := strings.HasSuffix(head, "|")
	head = strings.TrimSpace(strings.TrimSuffix(head, "|"))

	o, err := ParseOrientation(head)
	if err != nil {
		return Gradient{}, prismerrors.NewParseError("", 0, err)
	}

	body := strings.TrimSpace(text[open+1 : len(text)-1])
	if body == "" {
		return Empty(o), nil
	}

	entries, err := splitTopLevel(body)
	if err != nil {
		return Gradient{}, prismerrors.NewParseError("", 0, err)
	}

	var (
		colors     []rgb.Color
		stops      Stops
		positioned int
	)
	for _, entry := range entries {
		c, pos, hasPos, err := parseEntry(entry)
		if err != nil {
			return Gradient{}, err
		}
		colors = append(colors, c)
		stops = append(stops, Stop{Position: pos, Color: c})
		if hasPos {
			positioned++
		}
	}

	switch positioned {
	case 0:
		return New(o, ColorStops(colors, discrete)), nil
	case len(entries):
		if discrete {
			return Gradient{}, syntaxError("discrete gradients take colors without positions")
		}
		if !IsValidStops(stops) {
			return Gradient{}, syntaxError("invalid gradient stops %q", body)
		}
		return New(o, stops), nil
	}
	return Gradient{}, syntaxError("either every stop or no stop must carry a position")
}

// MustParse is Parse for literals known to be well formed.
func MustParse(s string) Gradient {
	g, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return g
}

func syntaxError(format string, args ...any) error {
	return prismerrors.NewParseError("", 0, fmt.Errorf(format, args...))
}

// splitTopLevel splits on commas outside parentheses so that entries such
// as "rgb(1, 2, 3) 0.5" stay whole.
func splitTopLevel(s string) ([]string, error) {
	var (
		parts []string
		depth int
		start int
	)
	for i, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return nil, fmt.Errorf("unbalanced ')' at offset %d", i)
			}
		case ',':
			if depth == 0 {
				parts = append(parts, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, fmt.Errorf("unbalanced '(' in %q", s)
	}
	return append(parts, strings.TrimSpace(s[start:])), nil
}

func parseEntry(entry string) (rgb.Color, float64, bool, error) {
	if entry == "" {
		return rgb.Invalid, 0, false, syntaxError("empty stop")
	}

	if idx := strings.LastIndexAny(entry, " \t"); idx > 0 {
		if pos, err := strconv.ParseFloat(entry[idx+1:], 64); err == nil {
			c, err := rgb.Parse(entry[:idx])
			if err != nil {
				return rgb.Invalid, 0, false, err
			}
			return c, pos, true, nil
		}
	}

	c, err := rgb.Parse(entry)
	if err != nil {
		return rgb.Invalid, 0, false, err
	}
	return c, 0, false, nil
}

// MarshalText implements encoding.TextMarshaler.
func (g Gradient) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (g *Gradient) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

// MarshalYAML emits the text form.
func (g Gradient) MarshalYAML() (any, error) {
	return g.String(), nil
}

type yamlStop struct {
	Position float64 `yaml:"position"`
	Color    string  `yaml:"color"`
}

type yamlGradient struct {
	Orientation string     `yaml:"orientation"`
	Stops       []yamlStop `yaml:"stops"`
	Colors      []string   `yaml:"colors"`
	Discrete    bool       `yaml:"discrete"`
}

// UnmarshalYAML accepts the text form or a mapping with an orientation and
// either explicit stops or a flat color list.
func (g *Gradient) UnmarshalYAML(value *yaml.Node) error {
	var (
		parsed Gradient
		err    error
	)

	switch value.Kind {
	case yaml.ScalarNode:
		parsed, err = Parse(value.Value)
	case yaml.MappingNode:
		var doc yamlGradient
		if err := value.Decode(&doc); err != nil {
			return err
		}
		parsed, err = doc.gradient()
	default:
		err = syntaxError("gradient must be a string or a mapping")
	}

	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*g = parsed
	return nil
}

func (doc yamlGradient) gradient() (Gradient, error) {
	o := Vertical
	if doc.Orientation != "" {
		parsed, err := ParseOrientation(doc.Orientation)
		if err != nil {
			return Gradient{}, prismerrors.NewParseError("", 0, err)
		}
		o = parsed
	}

	if len(doc.Stops) > 0 && len(doc.Colors) > 0 {
		return Gradient{}, syntaxError("gradient takes either stops or colors, not both")
	}

	if len(doc.Stops) > 0 {
		if doc.Discrete {
			return Gradient{}, syntaxError("discrete gradients take colors without positions")
		}
		stops := make(Stops, len(doc.Stops))
		for i, s := range doc.Stops {
			c, err := rgb.Parse(s.Color)
			if err != nil {
				return Gradient{}, err
			}
			stops[i] = Stop{Position: s.Position, Color: c}
		}
		if !IsValidStops(stops) {
			return Gradient{}, syntaxError("invalid gradient stops %s", stops)
		}
		return New(o, stops), nil
	}

	colors := make([]rgb.Color, len(doc.Colors))
	for i, s := range doc.Colors {
		c, err := rgb.Parse(s)
		if err != nil {
			return Gradient{}, err
		}
		colors[i] = c
	}
	return New(o, ColorStops(colors, doc.Discrete)), nil
}
