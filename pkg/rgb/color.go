// Package rgb provides the 8-bit RGBA color value used by gradient stops.
package rgb

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"image/color"
	"math"
)

// Color is a non-premultiplied 8-bit RGBA color. The zero value is a valid
// transparent black; Invalid marks the absence of a color.
type Color struct {
	R, G, B, A uint8

	unset bool
}

var (
	// Invalid is returned by queries that have no color to report.
	Invalid = Color{unset: true}

	Transparent = Color{}
	Black       = Color{A: 255}
	White       = Color{R: 255, G: 255, B: 255, A: 255}
	Red         = Color{R: 255, A: 255}
	Blue        = Color{B: 255, A: 255}
)

// New builds a color from channel values in [0,255]. It panics on
// out-of-range input.
func New(r, g, b, a int) Color {
	for _, v := range [...]int{r, g, b, a} {
		if v < 0 || v > 255 {
			panic(fmt.Sprintf("rgb: channel value %d out of range [0,255]", v))
		}
	}
	return Color{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a)}
}

// Opaque builds a fully opaque color.
func Opaque(r, g, b int) Color {
	return New(r, g, b, 255)
}

// FromARGB decodes a packed 0xAARRGGBB value.
func FromARGB(v uint32) Color {
	return Color{
		A: uint8(v >> 24),
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}
}

// FromColor converts any image/color value. A nil color yields Invalid.
func FromColor(c color.Color) Color {
	if c == nil {
		return Invalid
	}
	if own, ok := c.(Color); ok {
		return own
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

// ARGB packs the color as 0xAARRGGBB.
func (c Color) ARGB() uint32 {
	return uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// RGBA implements image/color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// IsValid reports whether c holds a color.
func (c Color) IsValid() bool {
	return !c.unset
}

// IsOpaque reports whether c is a set color with full alpha.
func (c Color) IsOpaque() bool {
	return !c.unset && c.A == 255
}

// WithAlpha returns c with its alpha channel replaced. Invalid stays invalid.
func (c Color) WithAlpha(a uint8) Color {
	if c.unset {
		return c
	}
	c.A = a
	return c
}

// ScaleAlpha multiplies the alpha channel by factor, rounding and clamping
// the result.
func (c Color) ScaleAlpha(factor float64) Color {
	return c.WithAlpha(channel(factor * float64(c.A)))
}

// Interpolated blends c1 toward c2 by ratio. When exactly one side is unset
// the other side fades in (or out) through its alpha channel.
func Interpolated(c1, c2 Color, ratio float64) Color {
	if c1 == c2 {
		return c2
	}

	switch {
	case c1.unset && c2.unset:
		return c2
	case c1.unset:
		return c2.ScaleAlpha(ratio)
	case c2.unset:
		return c1.ScaleAlpha(1 - ratio)
	}

	return Color{
		R: lerp(c1.R, c2.R, ratio),
		G: lerp(c1.G, c2.G, ratio),
		B: lerp(c1.B, c2.B, ratio),
		A: lerp(c1.A, c2.A, ratio),
	}
}

func lerp(a, b uint8, ratio float64) uint8 {
	return channel(float64(a) + ratio*(float64(b)-float64(a)))
}

func channel(v float64) uint8 {
	v = math.Round(v)
	switch {
	case math.IsNaN(v), v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v)
}

// Hash folds the color into seed with FNV-1a.
func (c Color) Hash(seed uint64) uint64 {
	var buf [13]byte
	binary.LittleEndian.PutUint64(buf[:8], seed)
	buf[8], buf[9], buf[10], buf[11] = c.R, c.G, c.B, c.A
	if c.unset {
		buf[12] = 1
	}

	h := fnv.New64a()
	_, _ = h.Write(buf[:])
	return h.Sum64()
}

// String renders #rrggbb for opaque colors and #rrggbbaa otherwise.
func (c Color) String() string {
	if c.unset {
		return "invalid"
	}
	if c.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	if c.unset {
		return nil, fmt.Errorf("rgb: cannot marshal an invalid color")
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
