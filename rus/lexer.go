package rus

import (
	"bufio"
	"io"
	"strings"
)

// Lexer converts a character stream into located tokens. The underlying
// source is read one line at a time; each call to Next scans exactly one
// lexeme (skipping any whitespace before it) and never re-emits a
// character it has already returned.
//
// Next reports a malformed lexeme as a *LexicalError and resumes at the
// following character on the next call, so lexing the rest of the input
// is unaffected by earlier errors.
type Lexer struct {
	loc  Location // location of the most recently consumed character
	r    *bufio.Reader
	line []rune
	pos  int
	done bool
}

// NewLexer returns a lexer for r. The filename is used only for location
// stamping; it is shared by every token produced.
func NewLexer(filename string, r io.Reader) *Lexer {
	return &Lexer{
		loc: Location{Line: 1, Column: 0, File: filename},
		r:   bufio.NewReader(r),
	}
}

// Scan lexes an entire source, returning every token (EOF terminator
// included) and every lexical error. Callers must resolve the errors
// before handing the tokens to a Parser.
func Scan(filename string, r io.Reader) ([]Token, []*LexicalError) {
	l := NewLexer(filename, r)
	var tokens []Token
	var errs []*LexicalError
	for {
		tok, err := l.Next()
		if err != nil {
			errs = append(errs, err.(*LexicalError))
			continue
		}
		tokens = append(tokens, tok)
		if tok.Type == TokenEOF {
			return tokens, errs
		}
	}
}

// Next scans one lexeme. Once the input is exhausted it returns an EOF
// token on every call. Errors are always of type *LexicalError and carry
// the start location of the offending lexeme.
func (l *Lexer) Next() (Token, error) {
	c, ok := l.skipWhitespace()
	if !ok {
		return Token{Type: TokenEOF, Loc: l.eofLocation()}, nil
	}
	start := l.loc

	switch {
	case isIdentStart(c):
		return l.scanIdentifier(c, start), nil
	case isDigit(c):
		return l.scanNumber(c, start)
	case c == '"':
		return l.scanString(start)
	case c == '\'':
		return l.scanChar(start)
	default:
		return l.scanOperator(c, start)
	}
}

// refill loads the next source line into the character buffer. A read
// error is indistinguishable from end of input, matching the pull-based
// contract: the supply is simply exhausted.
func (l *Lexer) refill() bool {
	if l.done {
		return false
	}
	s, err := l.r.ReadString('\n')
	if err != nil {
		l.done = true
	}
	if s == "" {
		return false
	}
	l.line = []rune(s)
	l.pos = 0
	return true
}

func (l *Lexer) next() (rune, bool) {
	if l.pos >= len(l.line) && !l.refill() {
		return 0, false
	}
	c := l.line[l.pos]
	l.pos++
	if c == '\n' {
		l.loc.Line++
		l.loc.Column = 0
	} else {
		l.loc.Column++
	}
	return c, true
}

func (l *Lexer) peek() (rune, bool) {
	if l.pos >= len(l.line) && !l.refill() {
		return 0, false
	}
	return l.line[l.pos], true
}

// unread pushes the last n consumed characters back into the buffer.
// Unwinding never crosses a line boundary (only a failed longer operator
// or literal match is unwound, and those stay on one line), so restoring
// the column counter is enough.
func (l *Lexer) unread(n int) {
	l.pos -= n
	l.loc.Column -= n
}

// accept consumes the next character if it equals want.
func (l *Lexer) accept(want rune) bool {
	if c, ok := l.peek(); ok && c == want {
		l.next()
		return true
	}
	return false
}

func (l *Lexer) skipWhitespace() (rune, bool) {
	for {
		c, ok := l.next()
		if !ok {
			return 0, false
		}
		if c != ' ' && c != '\t' && c != '\r' && c != '\n' {
			return c, true
		}
	}
}

func (l *Lexer) eofLocation() Location {
	return Location{Line: l.loc.Line, Column: l.loc.Column + 1, File: l.loc.File}
}

func (l *Lexer) scanIdentifier(c rune, start Location) Token {
	var sb strings.Builder
	sb.WriteRune(c)
	for {
		r, ok := l.peek()
		if !ok || !isIdentPart(r) {
			break
		}
		l.next()
		sb.WriteRune(r)
	}
	text := sb.String()
	return Token{Type: lookupIdent(text), Literal: text, Loc: start}
}

// scanOperator greedily matches the longest operator beginning with c.
func (l *Lexer) scanOperator(c rune, start Location) (Token, error) {
	switch c {
	case '+':
		if l.accept('=') {
			return l.fixed(TokenPlusEqual, start), nil
		}
		return l.fixed(TokenPlus, start), nil
	case '-':
		if l.accept('=') {
			return l.fixed(TokenMinusEqual, start), nil
		}
		if l.accept('>') {
			return l.fixed(TokenArrow, start), nil
		}
		return l.fixed(TokenMinus, start), nil
	case '*':
		if l.accept('=') {
			return l.fixed(TokenStarEqual, start), nil
		}
		return l.fixed(TokenStar, start), nil
	case '/':
		if l.accept('=') {
			return l.fixed(TokenSlashEqual, start), nil
		}
		return l.fixed(TokenSlash, start), nil
	case '%':
		if l.accept('=') {
			return l.fixed(TokenPercentEqual, start), nil
		}
		return l.fixed(TokenPercent, start), nil
	case '^':
		if l.accept('=') {
			return l.fixed(TokenCaretEqual, start), nil
		}
		return l.fixed(TokenCaret, start), nil
	case '=':
		if l.accept('=') {
			return l.fixed(TokenEqualEqual, start), nil
		}
		if l.accept('>') {
			return l.fixed(TokenFatArrow, start), nil
		}
		return l.fixed(TokenEqual, start), nil
	case '!':
		if l.accept('=') {
			return l.fixed(TokenBangEqual, start), nil
		}
		return l.fixed(TokenBang, start), nil
	case '<':
		if l.accept('=') {
			return l.fixed(TokenLessEqual, start), nil
		}
		if l.accept('<') {
			if l.accept('=') {
				return l.fixed(TokenShlEqual, start), nil
			}
			return l.fixed(TokenShl, start), nil
		}
		return l.fixed(TokenLess, start), nil
	case '>':
		if l.accept('=') {
			return l.fixed(TokenGreaterEqual, start), nil
		}
		if l.accept('>') {
			if l.accept('=') {
				return l.fixed(TokenShrEqual, start), nil
			}
			return l.fixed(TokenShr, start), nil
		}
		return l.fixed(TokenGreater, start), nil
	case '&':
		if l.accept('&') {
			return l.fixed(TokenAnd, start), nil
		}
		if l.accept('=') {
			return l.fixed(TokenAmpersandEqual, start), nil
		}
		return l.scanAmpersand(start), nil
	case '|':
		if l.accept('|') {
			return l.fixed(TokenOr, start), nil
		}
		if l.accept('=') {
			return l.fixed(TokenPipeEqual, start), nil
		}
		return l.fixed(TokenPipe, start), nil
	case '.':
		if l.accept('.') {
			if l.accept('.') {
				return l.fixed(TokenEllipsis, start), nil
			}
			if l.accept('=') {
				return l.fixed(TokenRangeInclusive, start), nil
			}
			return l.fixed(TokenRange, start), nil
		}
		return l.fixed(TokenDot, start), nil
	case ':':
		if l.accept(':') {
			return l.fixed(TokenPathSep, start), nil
		}
		return l.fixed(TokenColon, start), nil
	case ',':
		return l.fixed(TokenComma, start), nil
	case ';':
		return l.fixed(TokenSemicolon, start), nil
	case '@':
		return l.fixed(TokenAt, start), nil
	case '#':
		return l.fixed(TokenHash, start), nil
	case '$':
		return l.fixed(TokenDollar, start), nil
	case '?':
		return l.fixed(TokenQuestion, start), nil
	case '(':
		return l.fixed(TokenLParen, start), nil
	case ')':
		return l.fixed(TokenRParen, start), nil
	case '{':
		return l.fixed(TokenLBrace, start), nil
	case '}':
		return l.fixed(TokenRBrace, start), nil
	case '[':
		return l.fixed(TokenLBracket, start), nil
	case ']':
		return l.fixed(TokenRBracket, start), nil
	default:
		return Token{}, &LexicalError{Kind: UnknownCharacter, Ch: c, Loc: start}
	}
}

// scanAmpersand decides between `&mut` and a plain `&`. The whole word
// `mut` must follow, with no identifier character after it; any shorter
// or longer match unwinds to the next-longest candidate.
func (l *Lexer) scanAmpersand(start Location) Token {
	consumed := 0
	matched := true
	for _, want := range "mut" {
		c, ok := l.peek()
		if !ok || c != want {
			matched = false
			break
		}
		l.next()
		consumed++
	}
	if matched {
		if c, ok := l.peek(); ok && isIdentPart(c) {
			matched = false
		}
	}
	if matched {
		return Token{Type: TokenMutRef, Literal: "&mut", Loc: start}
	}
	l.unread(consumed)
	return l.fixed(TokenAmpersand, start)
}

func (l *Lexer) fixed(tt TokenType, start Location) Token {
	return Token{Type: tt, Literal: string(tt), Loc: start}
}

func isIdentStart(c rune) bool {
	return c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isIdentPart(c rune) bool {
	return isIdentStart(c) || isDigit(c)
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isAlphanumeric(c rune) bool {
	return isDigit(c) || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
