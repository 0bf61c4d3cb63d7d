package preset

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/alexisbeaulieu97/prism/pkg/gradient"
)

const (
	presetIDMaxLength = 64
	idHashSeed        = 0x70726973
)

var presetIDPattern = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]*[a-z0-9])?$`)

// GeneratePresetID derives an ID from the display name. Names with nothing
// usable fall back to an ID derived from the gradient itself, so saving the
// same gradient twice yields the same ID.
func GeneratePresetID(name string, g gradient.Gradient) string {
	if id := Sanitize(name); id != "" {
		return id
	}
	return fmt.Sprintf("gradient-%08x", uint32(g.Hash(idHashSeed)))
}

// ValidatePresetID checks that id is usable after an "@" on the command line.
func ValidatePresetID(id string) error {
	switch {
	case id == "":
		return fmt.Errorf("preset ID cannot be empty")
	case len(id) > presetIDMaxLength:
		return fmt.Errorf("preset ID %q is too long: maximum length is %d characters", id, presetIDMaxLength)
	case !presetIDPattern.MatchString(id):
		return fmt.Errorf("invalid preset ID %q: use lowercase letters, digits and inner hyphens", id)
	}
	return nil
}

// Sanitize turns a display name into kebab case. Word breaks come from
// non-alphanumeric runs and from camel case, so "WarmFlame" and
// "warm flame" both give "warm-flame".
func Sanitize(name string) string {
	var b strings.Builder
	pendingBreak := false
	var prev rune

	for _, r := range name {
		if r > unicode.MaxASCII || !(unicode.IsLetter(r) || unicode.IsDigit(r)) {
			pendingBreak = b.Len() > 0
			prev = 0
			continue
		}
		if unicode.IsUpper(r) && (unicode.IsLower(prev) || unicode.IsDigit(prev)) {
			pendingBreak = true
		}
		if pendingBreak {
			b.WriteByte('-')
			pendingBreak = false
		}
		b.WriteRune(unicode.ToLower(r))
		prev = r
	}

	id := b.String()
	if len(id) > presetIDMaxLength {
		id = strings.TrimRight(id[:presetIDMaxLength], "-")
	}
	return id
}
