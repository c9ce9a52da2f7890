package rus

import "fmt"

// LexicalErrorKind classifies a malformed lexeme.
type LexicalErrorKind int

const (
	UnknownCharacter LexicalErrorKind = iota
	UnterminatedString
	UnterminatedChar
	EmptyCharLiteral
	MultipleCharactersInCharLiteral
	UnknownEscapeSequence
	UnexpectedEOFInLiteral
	InvalidNumberFormat
)

func (k LexicalErrorKind) String() string {
	switch k {
	case UnknownCharacter:
		return "unknown character"
	case UnterminatedString:
		return "unterminated string literal"
	case UnterminatedChar:
		return "unterminated char literal"
	case EmptyCharLiteral:
		return "empty char literal"
	case MultipleCharactersInCharLiteral:
		return "more than one character in char literal"
	case UnknownEscapeSequence:
		return "unknown escape sequence"
	case UnexpectedEOFInLiteral:
		return "unexpected end of input in literal"
	case InvalidNumberFormat:
		return "invalid number format"
	default:
		return fmt.Sprintf("lexical error %d", int(k))
	}
}

// LexicalError reports one malformed lexeme. The lexer keeps scanning
// after returning one, so a single pass can collect every error.
type LexicalError struct {
	Kind LexicalErrorKind
	Ch   rune // offending character, when one is to blame
	Loc  Location
}

func (e *LexicalError) Error() string {
	switch e.Kind {
	case UnknownCharacter, UnknownEscapeSequence:
		return fmt.Sprintf("%s: %s %q", e.Loc, e.Kind, e.Ch)
	default:
		return fmt.Sprintf("%s: %s", e.Loc, e.Kind)
	}
}

// ParseErrorKind classifies a structural parse failure.
type ParseErrorKind int

const (
	UnexpectedToken ParseErrorKind = iota
	MissingToken
	InvalidExpression
)

func (k ParseErrorKind) String() string {
	switch k {
	case UnexpectedToken:
		return "unexpected token"
	case MissingToken:
		return "missing token"
	case InvalidExpression:
		return "invalid expression"
	default:
		return fmt.Sprintf("parse error %d", int(k))
	}
}

// ParseError is the single, terminal error of a parse. Loc points at the
// token that broke the construct.
type ParseError struct {
	Kind ParseErrorKind
	Desc string
	Loc  Location
}

func (e *ParseError) Error() string {
	if e.Desc == "" {
		return fmt.Sprintf("%s: %s", e.Loc, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %s", e.Loc, e.Kind, e.Desc)
}
