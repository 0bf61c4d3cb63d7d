package gradient

import (
	"fmt"
	"strings"
)

// Orientation tags the axis a gradient is painted along.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
	Diagonal
)

// String returns the lower-case orientation name.
func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case Diagonal:
		return "diagonal"
	}
	return fmt.Sprintf("Orientation(%d)", int(o))
}

// Letter returns the single-letter prefix used by the text form.
func (o Orientation) Letter() string {
	switch o {
	case Horizontal:
		return "H"
	case Vertical:
		return "V"
	case Diagonal:
		return "D"
	}
	return "?"
}

// ParseOrientation accepts a full name or a letter, case-insensitively.
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "h", "horizontal":
		return Horizontal, nil
	case "v", "vertical":
		return Vertical, nil
	case "d", "diagonal":
		return Diagonal, nil
	}
	return Vertical, fmt.Errorf("unknown orientation %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (o Orientation) MarshalText() ([]byte, error) {
	if o < Horizontal || o > Diagonal {
		return nil, fmt.Errorf("unknown orientation %d", int(o))
	}
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Orientation) UnmarshalText(text []byte) error {
	parsed, err := ParseOrientation(string(text))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}
