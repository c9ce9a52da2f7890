package rus

import "strings"

// scanNumber scans an integer or float literal starting with digit c.
// The token's Literal keeps the exact source text, radix prefix and all,
// so no precision is lost before a consumer picks a width. A literal is a
// float only when a fractional part or an exponent was seen.
func (l *Lexer) scanNumber(c rune, start Location) (Token, error) {
	var sb strings.Builder
	sb.WriteRune(c)

	if c == '0' {
		if r, ok := l.peek(); ok && isRadixPrefix(r) {
			return l.scanRadixNumber(&sb, r, start)
		}
	}

	l.scanDigits(&sb)
	isFloat := false

	if l.accept('.') {
		if d, ok := l.peek(); ok && isDigit(d) {
			isFloat = true
			sb.WriteRune('.')
			l.scanDigits(&sb)
		} else {
			// `1.` is an integer followed by a dot, not a float.
			l.unread(1)
		}
	}

	if r, ok := l.peek(); ok && (r == 'e' || r == 'E') {
		l.next()
		sb.WriteRune(r)
		isFloat = true
		if s, ok := l.peek(); ok && (s == '+' || s == '-') {
			l.next()
			sb.WriteRune(s)
		}
		if l.scanDigits(&sb) == 0 {
			return Token{}, &LexicalError{Kind: InvalidNumberFormat, Loc: start}
		}
	}

	tt := TokenInt
	if isFloat {
		tt = TokenFloat
	}
	return Token{Type: tt, Literal: sb.String(), Suffix: l.scanSuffix(), Loc: start}, nil
}

// scanRadixNumber handles 0x/0o/0b literals. At least one digit of the
// base must follow the prefix.
func (l *Lexer) scanRadixNumber(sb *strings.Builder, prefix rune, start Location) (Token, error) {
	l.next()
	sb.WriteRune(prefix)

	valid := radixDigit(prefix)
	n := 0
	for {
		d, ok := l.peek()
		if !ok || !valid(d) {
			break
		}
		l.next()
		sb.WriteRune(d)
		n++
	}
	if n == 0 {
		return Token{}, &LexicalError{Kind: InvalidNumberFormat, Loc: start}
	}
	return Token{Type: TokenInt, Literal: sb.String(), Suffix: l.scanSuffix(), Loc: start}, nil
}

func (l *Lexer) scanDigits(sb *strings.Builder) int {
	n := 0
	for {
		d, ok := l.peek()
		if !ok || !isDigit(d) {
			break
		}
		l.next()
		sb.WriteRune(d)
		n++
	}
	return n
}

// scanSuffix consumes a trailing type suffix such as `u32` or `f64`. The
// run of letters and digits is taken as written; it is not validated
// against a fixed set of widths here.
func (l *Lexer) scanSuffix() string {
	var sb strings.Builder
	for {
		r, ok := l.peek()
		if !ok || !isAlphanumeric(r) && r != '_' {
			break
		}
		l.next()
		sb.WriteRune(r)
	}
	return sb.String()
}

func isRadixPrefix(r rune) bool {
	switch r {
	case 'x', 'X', 'o', 'O', 'b', 'B':
		return true
	}
	return false
}

func radixDigit(prefix rune) func(rune) bool {
	switch prefix {
	case 'x', 'X':
		return func(r rune) bool {
			return isDigit(r) || r >= 'a' && r <= 'f' || r >= 'A' && r <= 'F'
		}
	case 'o', 'O':
		return func(r rune) bool { return r >= '0' && r <= '7' }
	default:
		return func(r rune) bool { return r == '0' || r == '1' }
	}
}
