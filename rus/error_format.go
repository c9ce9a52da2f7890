package rus

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatCodeFrame renders the source line at loc with a caret under the
// offending column, for use in CLI diagnostics. The first line is a
// "  --> " location header; callers that style output can split it off.
// It returns "" when the location falls outside the given source.
func FormatCodeFrame(source string, loc Location) string {
	line, ok := sourceLine(source, loc.Line)
	if !ok {
		return ""
	}

	column := loc.Column
	if column < 1 {
		column = 1
	}
	if width := len([]rune(line)) + 1; column > width {
		column = width
	}

	var b strings.Builder
	b.WriteString("  --> ")
	b.WriteString(frameHeader(loc, column))
	b.WriteByte('\n')

	gutter := strconv.Itoa(loc.Line)
	fmt.Fprintf(&b, " %s | %s\n", gutter, line)
	fmt.Fprintf(&b, " %s | %s^", strings.Repeat(" ", len(gutter)), strings.Repeat(" ", column-1))
	return b.String()
}

func frameHeader(loc Location, column int) string {
	if loc.File != "" {
		return fmt.Sprintf("%s:%d:%d", loc.File, loc.Line, column)
	}
	return fmt.Sprintf("line %d, column %d", loc.Line, column)
}

// sourceLine returns the 1-based line n of source, with any trailing CR
// trimmed so CRLF files render cleanly.
func sourceLine(source string, n int) (string, bool) {
	if source == "" || n <= 0 {
		return "", false
	}
	lines := strings.Split(source, "\n")
	if n > len(lines) {
		return "", false
	}
	return strings.TrimSuffix(lines[n-1], "\r"), true
}
