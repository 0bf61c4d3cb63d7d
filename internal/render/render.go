// Package render draws gradients for terminal output.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/alexisbeaulieu97/prism/internal/cache"
	"github.com/alexisbeaulieu97/prism/pkg/gradient"
	"github.com/alexisbeaulieu97/prism/pkg/rgb"
)

// DefaultWidth is used when the output width is unknown.
const DefaultWidth = 48

var ramps = cache.NewRampCache()

// Ramp samples g at the centers of width equal cells. Results are cached.
func Ramp(g gradient.Gradient, width int) []rgb.Color {
	return RampWith(ramps, g, width)
}

// RampWith is Ramp with an explicit cache. A nil cache disables caching.
func RampWith(c *cache.RampCache, g gradient.Gradient, width int) []rgb.Color {
	if width <= 0 {
		return nil
	}
	if c != nil {
		if colors, ok := c.Get(g, width); ok {
			return colors
		}
	}

	colors := make([]rgb.Color, width)
	for i := range colors {
		colors[i] = g.Sample((float64(i) + 0.5) / float64(width))
	}

	if c != nil {
		c.Put(g, width, colors)
	}
	return colors
}

// Composite flattens c onto an opaque background. Unset colors show the
// background.
func Composite(c, background rgb.Color) rgb.Color {
	if !c.IsValid() {
		return background
	}
	if c.IsOpaque() {
		return c
	}

	bg := toColorful(background)
	blended := bg.BlendRgb(toColorful(c), float64(c.A)/255)
	r, g, b := blended.Clamped().RGB255()
	return rgb.Opaque(int(r), int(g), int(b))
}

func toColorful(c rgb.Color) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// Options controls Swatch output.
type Options struct {
	// Background is what translucent stops are drawn over. Defaults to black.
	Background rgb.Color
	// Plain prints the stop list instead of colored cells.
	Plain bool
	// Cell is the text drawn in each cell. Defaults to a space.
	Cell string
}

// Swatch renders g as a row of width colored cells.
func Swatch(g gradient.Gradient, width int, opts Options) string {
	if opts.Plain {
		if !g.IsValid() {
			return "(empty)"
		}
		return g.Stops().String()
	}

	background := opts.Background
	if !background.IsValid() || background == (rgb.Color{}) {
		background = rgb.Black
	}
	cell := opts.Cell
	if cell == "" {
		cell = " "
	}

	var b strings.Builder
	for _, c := range Ramp(g, width) {
		flat := Composite(c, background)
		b.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(flat.String())).Render(cell))
	}
	return b.String()
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

// Describe lists the properties and stops of g, one per line.
func Describe(g gradient.Gradient) string {
	var b strings.Builder

	field(&b, "orientation", g.Orientation())
	field(&b, "valid", g.IsValid())
	field(&b, "monochrome", g.IsMonochrome())
	field(&b, "visible", g.IsVisible())

	b.WriteString(headerStyle.Render(fmt.Sprintf("%-10s %s", "position", "color")))
	b.WriteString("\n")
	for _, stop := range g.Stops() {
		fmt.Fprintf(&b, "%-10s %s\n", strconv.FormatFloat(stop.Position, 'g', -1, 64), stop.Color)
	}
	return b.String()
}

func field(b *strings.Builder, label string, value any) {
	pad := ""
	if n := len("orientation") - len(label); n > 0 {
		pad = strings.Repeat(" ", n)
	}
	fmt.Fprintf(b, "%s%s %v\n", labelStyle.Render(label+":"), pad, value)
}
