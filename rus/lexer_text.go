package rus

import "strings"

// scanString scans a double-quoted string literal. The opening quote has
// already been consumed. Escape sequences are decoded into the token's
// Literal; a backslash before a newline (LF or CRLF) continues the
// string on the next line without inserting anything.
func (l *Lexer) scanString(start Location) (Token, error) {
	var sb strings.Builder
	for {
		c, ok := l.next()
		if !ok {
			return Token{}, &LexicalError{Kind: UnexpectedEOFInLiteral, Loc: start}
		}
		switch c {
		case '"':
			return Token{Type: TokenString, Literal: sb.String(), Loc: start}, nil
		case '\n':
			return Token{}, &LexicalError{Kind: UnterminatedString, Loc: start}
		case '\\':
			e, ok := l.next()
			if !ok {
				return Token{}, &LexicalError{Kind: UnexpectedEOFInLiteral, Loc: start}
			}
			if e == '\n' {
				continue
			}
			if e == '\r' && l.accept('\n') {
				continue
			}
			r, ok := decodeEscape(e)
			if !ok {
				return Token{}, &LexicalError{Kind: UnknownEscapeSequence, Ch: e, Loc: start}
			}
			sb.WriteRune(r)
		default:
			sb.WriteRune(c)
		}
	}
}

// scanChar scans a single-quoted char literal. The opening quote has
// already been consumed. Exactly one character (or one escape sequence)
// must sit between the quotes; each way that can fail has its own error
// kind so diagnostics stay specific.
func (l *Lexer) scanChar(start Location) (Token, error) {
	c, ok := l.next()
	if !ok {
		return Token{}, &LexicalError{Kind: UnexpectedEOFInLiteral, Loc: start}
	}
	switch c {
	case '\'':
		return Token{}, &LexicalError{Kind: EmptyCharLiteral, Loc: start}
	case '\n':
		return Token{}, &LexicalError{Kind: UnterminatedChar, Loc: start}
	}

	value := c
	if c == '\\' {
		e, ok := l.next()
		if !ok {
			return Token{}, &LexicalError{Kind: UnexpectedEOFInLiteral, Loc: start}
		}
		r, decoded := decodeEscape(e)
		if !decoded {
			return Token{}, &LexicalError{Kind: UnknownEscapeSequence, Ch: e, Loc: start}
		}
		value = r
	}

	t, ok := l.next()
	if !ok {
		return Token{}, &LexicalError{Kind: UnexpectedEOFInLiteral, Loc: start}
	}
	switch t {
	case '\'':
		return Token{Type: TokenChar, Literal: string(value), Ch: value, Loc: start}, nil
	case '\n':
		return Token{}, &LexicalError{Kind: UnterminatedChar, Loc: start}
	}

	// More than one character between the quotes. Skip to the closing
	// quote on this line so the contents don't lex as stray tokens.
	for {
		n, ok := l.next()
		if !ok || n == '\'' || n == '\n' {
			break
		}
	}
	return Token{}, &LexicalError{Kind: MultipleCharactersInCharLiteral, Loc: start}
}

func decodeEscape(c rune) (rune, bool) {
	switch c {
	case 'n':
		return '\n', true
	case 'r':
		return '\r', true
	case 't':
		return '\t', true
	case '0':
		return 0, true
	case 'b':
		return '\b', true
	case 'f':
		return '\f', true
	case '\'':
		return '\'', true
	case '"':
		return '"', true
	case '\\':
		return '\\', true
	}
	return 0, false
}
