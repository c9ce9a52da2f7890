package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rus-lang/rus/rus"
)

var (
	accentColor  = lipgloss.Color("#3B82F6")
	successColor = lipgloss.Color("#10B981")
	errorColor   = lipgloss.Color("#EF4444")
	mutedColor   = lipgloss.Color("#6B7280")

	errorStyle  = lipgloss.NewStyle().Foreground(errorColor).Bold(true)
	okStyle     = lipgloss.NewStyle().Foreground(successColor)
	mutedStyle  = lipgloss.NewStyle().Foreground(mutedColor)
	accentStyle = lipgloss.NewStyle().Foreground(accentColor).Bold(true)
)

// styled applies s only when color output is enabled.
func styled(s lipgloss.Style, text string, color bool) string {
	if !color {
		return text
	}
	return s.Render(text)
}

// writeFrame prints a code frame with its location header accented and
// the source excerpt muted.
func writeFrame(w io.Writer, source string, loc rus.Location, color bool) {
	frame := rus.FormatCodeFrame(source, loc)
	if frame == "" {
		return
	}
	header, excerpt, _ := strings.Cut(frame, "\n")
	fmt.Fprintln(w, styled(accentStyle, header, color))
	fmt.Fprintln(w, styled(mutedStyle, excerpt, color))
}

func reportLexicalErrors(w io.Writer, source string, errs []*rus.LexicalError, color bool) {
	for _, e := range errs {
		fmt.Fprintln(w, styled(errorStyle, "error:", color), e)
		writeFrame(w, source, e.Loc, color)
	}
}

func reportParseError(w io.Writer, source string, err *rus.ParseError, color bool) {
	fmt.Fprintln(w, styled(errorStyle, "error:", color), err)
	writeFrame(w, source, err.Loc, color)
}

// printTokens writes one token per line, prefixed with its position.
func printTokens(w io.Writer, tokens []rus.Token, color bool) {
	for _, tok := range tokens {
		loc := fmt.Sprintf("%d:%d", tok.Loc.Line, tok.Loc.Column)
		fmt.Fprintf(w, "%-8s %s\n", styled(mutedStyle, loc, color), tok)
	}
}
