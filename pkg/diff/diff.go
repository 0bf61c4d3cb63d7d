// Package diff renders line diffs between gradients.
package diff

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/alexisbeaulieu97/prism/pkg/gradient"
)

const (
	maxDiffLines    = 10000
	truncateMessage = "... (diff truncated, exceeds 10,000 lines) ..."
)

// GenerateUnifiedDiff compares expected and actual line by line.
// Returns empty string if content is identical.
// Truncates diffs exceeding 10,000 lines with a truncation marker.
func GenerateUnifiedDiff(expected, actual []byte, expectedLabel, actualLabel string) string {
	if bytes.Equal(expected, actual) {
		return ""
	}

	dmp := diffmatchpatch.New()

	expectedStr := string(expected)
	actualStr := string(actual)

	expChars, actChars, lineArray := dmp.DiffLinesToChars(expectedStr, actualStr)
	diffs := dmp.DiffMain(expChars, actChars, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "--- %s\n", expectedLabel)
	fmt.Fprintf(&buf, "+++ %s\n", actualLabel)
	fmt.Fprintf(&buf, "@@ -1,%d +1,%d @@\n", countLines(expectedStr), countLines(actualStr))

	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}
		for _, line := range splitLines(d.Text) {
			buf.WriteString(prefix)
			buf.WriteString(line)
			buf.WriteString("\n")
		}
	}

	result := buf.String()
	lines := strings.Split(result, "\n")
	if len(lines) > maxDiffLines {
		truncated := strings.Join(lines[:maxDiffLines], "\n")
		return truncated + "\n" + truncateMessage + "\n"
	}

	return result
}

// Gradients diffs the one-stop-per-line descriptions of a and b.
func Gradients(a, b gradient.Gradient, aLabel, bLabel string) string {
	if a.Equal(b) {
		return ""
	}
	return GenerateUnifiedDiff([]byte(Describe(a)), []byte(Describe(b)), aLabel, bLabel)
}

// Describe writes the orientation followed by one "position color" line per
// stop.
func Describe(g gradient.Gradient) string {
	var b strings.Builder
	fmt.Fprintf(&b, "orientation %s\n", g.Orientation())
	for _, stop := range g.Stops() {
		fmt.Fprintf(&b, "%s %s\n", strconv.FormatFloat(stop.Position, 'g', -1, 64), stop.Color)
	}
	return b.String()
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

func countLines(text string) int {
	return len(splitLines(text))
}
