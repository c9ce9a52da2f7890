package rus

import "fmt"

// TokenType identifies the lexical category of a token.
type TokenType string

const (
	TokenEOF TokenType = "EOF"

	TokenIdent  TokenType = "IDENT"
	TokenInt    TokenType = "INT"
	TokenFloat  TokenType = "FLOAT"
	TokenString TokenType = "STRING"
	TokenChar   TokenType = "CHAR"

	// arithmetic
	TokenPlus    TokenType = "+"
	TokenMinus   TokenType = "-"
	TokenStar    TokenType = "*"
	TokenSlash   TokenType = "/"
	TokenPercent TokenType = "%"

	// bitwise
	TokenAmpersand TokenType = "&"
	TokenPipe      TokenType = "|"
	TokenCaret     TokenType = "^"
	TokenShl       TokenType = "<<"
	TokenShr       TokenType = ">>"

	// comparison
	TokenEqualEqual   TokenType = "=="
	TokenBangEqual    TokenType = "!="
	TokenLess         TokenType = "<"
	TokenLessEqual    TokenType = "<="
	TokenGreater      TokenType = ">"
	TokenGreaterEqual TokenType = ">="

	// assignment
	TokenEqual          TokenType = "="
	TokenPlusEqual      TokenType = "+="
	TokenMinusEqual     TokenType = "-="
	TokenStarEqual      TokenType = "*="
	TokenSlashEqual     TokenType = "/="
	TokenPercentEqual   TokenType = "%="
	TokenAmpersandEqual TokenType = "&="
	TokenPipeEqual      TokenType = "|="
	TokenCaretEqual     TokenType = "^="
	TokenShlEqual       TokenType = "<<="
	TokenShrEqual       TokenType = ">>="

	// logical
	TokenAnd TokenType = "&&"
	TokenOr  TokenType = "||"

	// other operators
	TokenBang           TokenType = "!"
	TokenMutRef         TokenType = "&mut"
	TokenDot            TokenType = "."
	TokenRange          TokenType = ".."
	TokenRangeInclusive TokenType = "..="
	TokenEllipsis       TokenType = "..."
	TokenComma          TokenType = ","
	TokenSemicolon      TokenType = ";"
	TokenColon          TokenType = ":"
	TokenPathSep        TokenType = "::"
	TokenArrow          TokenType = "->"
	TokenFatArrow       TokenType = "=>"
	TokenAt             TokenType = "@"
	TokenHash           TokenType = "#"
	TokenDollar         TokenType = "$"
	TokenQuestion       TokenType = "?"
	TokenUnderscore     TokenType = "_"

	// brackets
	TokenLParen   TokenType = "("
	TokenRParen   TokenType = ")"
	TokenLBrace   TokenType = "{"
	TokenRBrace   TokenType = "}"
	TokenLBracket TokenType = "["
	TokenRBracket TokenType = "]"

	// keywords
	TokenFn       TokenType = "FN"
	TokenLet      TokenType = "LET"
	TokenVar      TokenType = "VAR"
	TokenWith     TokenType = "WITH"
	TokenContract TokenType = "CONTRACT"
	TokenImpl     TokenType = "IMPL"
	TokenMut      TokenType = "MUT"
	TokenIf       TokenType = "IF"
	TokenElse     TokenType = "ELSE"
	TokenFor      TokenType = "FOR"
	TokenIn       TokenType = "IN"
	TokenLoop     TokenType = "LOOP"
	TokenWhile    TokenType = "WHILE"
	TokenMatch    TokenType = "MATCH"
	TokenBreak    TokenType = "BREAK"
	TokenContinue TokenType = "CONTINUE"
	TokenReturn   TokenType = "RETURN"
	TokenAs       TokenType = "AS"
	TokenUse      TokenType = "USE"
	TokenPub      TokenType = "PUB"
	TokenEnum     TokenType = "ENUM"
	TokenStruct   TokenType = "STRUCT"
	TokenTrait    TokenType = "TRAIT"
	TokenTrue     TokenType = "TRUE"
	TokenFalse    TokenType = "FALSE"
	TokenAsync    TokenType = "ASYNC"
	TokenAwait    TokenType = "AWAIT"
	TokenTry      TokenType = "TRY"
	TokenEffect   TokenType = "EFFECT"
	TokenHandle   TokenType = "HANDLE"
)

// Location identifies a single character position in a source file.
// File is shared by every location of a lexing session; copying a
// Location copies the string header, never the filename bytes.
type Location struct {
	Line   int
	Column int
	File   string
}

func (loc Location) String() string {
	return fmt.Sprintf("%s:%d:%d", loc.File, loc.Line, loc.Column)
}

// Token is one lexeme with the location of its first character.
//
// Literal holds the exact source text for numbers (radix prefix included)
// and the decoded value for strings and identifiers. Suffix carries a
// numeric literal's type suffix (`u32`, `f64`, ...) without committing to
// a width; resolving it is the consumer's job. Ch holds the decoded rune
// of a char literal.
type Token struct {
	Type    TokenType
	Literal string
	Suffix  string
	Ch      rune
	Loc     Location
}

func (t Token) String() string {
	switch t.Type {
	case TokenIdent, TokenString:
		return fmt.Sprintf("%s(%q)", t.Type, t.Literal)
	case TokenInt, TokenFloat:
		if t.Suffix != "" {
			return fmt.Sprintf("%s(%q %s)", t.Type, t.Literal, t.Suffix)
		}
		return fmt.Sprintf("%s(%q)", t.Type, t.Literal)
	case TokenChar:
		return fmt.Sprintf("%s(%q)", t.Type, t.Ch)
	default:
		return string(t.Type)
	}
}

// keywords is built once and never mutated afterwards; concurrent lexers
// may read it freely.
var keywords = map[string]TokenType{
	"fn":       TokenFn,
	"let":      TokenLet,
	"var":      TokenVar,
	"with":     TokenWith,
	"contract": TokenContract,
	"impl":     TokenImpl,
	"mut":      TokenMut,
	"if":       TokenIf,
	"else":     TokenElse,
	"for":      TokenFor,
	"in":       TokenIn,
	"loop":     TokenLoop,
	"while":    TokenWhile,
	"match":    TokenMatch,
	"break":    TokenBreak,
	"continue": TokenContinue,
	"return":   TokenReturn,
	"as":       TokenAs,
	"use":      TokenUse,
	"pub":      TokenPub,
	"enum":     TokenEnum,
	"struct":   TokenStruct,
	"trait":    TokenTrait,
	"true":     TokenTrue,
	"false":    TokenFalse,
	"async":    TokenAsync,
	"await":    TokenAwait,
	"try":      TokenTry,
	"effect":   TokenEffect,
	"handle":   TokenHandle,
	"_":        TokenUnderscore,
}

func lookupIdent(ident string) TokenType {
	if tt, ok := keywords[ident]; ok {
		return tt
	}
	return TokenIdent
}

// tokenLabel names a token type the way diagnostics spell it.
func tokenLabel(tt TokenType) string {
	switch tt {
	case TokenEOF:
		return "end of input"
	case TokenIdent:
		return "identifier"
	case TokenInt:
		return "integer literal"
	case TokenFloat:
		return "float literal"
	case TokenString:
		return "string literal"
	case TokenChar:
		return "char literal"
	default:
		if len(tt) > 0 && tt[0] >= 'A' && tt[0] <= 'Z' {
			return fmt.Sprintf("'%s'", toLowerASCII(string(tt)))
		}
		return fmt.Sprintf("'%s'", string(tt))
	}
}

func toLowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
