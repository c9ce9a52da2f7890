package rus

import "fmt"

// Parser assembles a token stream into statements. It is fail-fast: the
// first structural error aborts the parse and is returned as a
// *ParseError. The token slice is read-only; a Parser is good for one
// Parse call.
type Parser struct {
	tokens  []Token
	current int
}

// NewParser returns a parser over tokens. The slice need not end with an
// EOF token; the parser synthesizes one past the end either way.
func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse consumes the whole stream and returns the top-level statements.
func (p *Parser) Parse() ([]Stmt, error) {
	var stmts []Stmt
	for !p.atEnd() {
		s, err := p.parseDeclaration()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
	}
	return stmts, nil
}

func (p *Parser) peek() Token {
	if p.current < len(p.tokens) {
		return p.tokens[p.current]
	}
	if n := len(p.tokens); n > 0 {
		return Token{Type: TokenEOF, Loc: p.tokens[n-1].Loc}
	}
	return Token{Type: TokenEOF, Loc: Location{Line: 1, Column: 1}}
}

func (p *Parser) advance() Token {
	tok := p.peek()
	if p.current < len(p.tokens) {
		p.current++
	}
	return tok
}

// unconsume steps back over the last consumed token. The declaration
// dispatcher uses it after deciding a leading token belongs to an
// expression after all.
func (p *Parser) unconsume() {
	p.current--
}

func (p *Parser) atEnd() bool {
	return p.peek().Type == TokenEOF
}

func (p *Parser) check(tt TokenType) bool {
	return p.peek().Type == tt
}

func (p *Parser) match(tt TokenType) bool {
	if p.check(tt) {
		p.advance()
		return true
	}
	return false
}

// consume requires the next token to be tt. The context string completes
// the "expected X ..." diagnostic, e.g. "after let declaration".
func (p *Parser) consume(tt TokenType, context string) (Token, error) {
	if p.check(tt) {
		return p.advance(), nil
	}
	tok := p.peek()
	return Token{}, &ParseError{
		Kind: MissingToken,
		Desc: fmt.Sprintf("expected %s %s, found %s", tokenLabel(tt), context, tokenLabel(tok.Type)),
		Loc:  tok.Loc,
	}
}

// expectName requires an identifier where a name must stand (a binding,
// a parameter, a type, an effect). Anything else is an unexpected token
// rather than a missing one, since almost any word is legal here.
func (p *Parser) expectName(what string) (Token, error) {
	if p.check(TokenIdent) {
		return p.advance(), nil
	}
	tok := p.peek()
	return Token{}, &ParseError{
		Kind: UnexpectedToken,
		Desc: fmt.Sprintf("expected %s, found %s", what, tokenLabel(tok.Type)),
		Loc:  tok.Loc,
	}
}

func (p *Parser) errUnexpected(tok Token, context string) *ParseError {
	return &ParseError{
		Kind: UnexpectedToken,
		Desc: fmt.Sprintf("%s %s", tokenLabel(tok.Type), context),
		Loc:  tok.Loc,
	}
}

// parseDeclaration dispatches on the leading token. `effect_group` and
// `handler_group` arrive as plain identifiers and are recognized here by
// their text; an identifier that is neither falls through to an
// expression statement.
func (p *Parser) parseDeclaration() (Stmt, error) {
	tok := p.advance()
	switch tok.Type {
	case TokenLet:
		return p.parseLet(tok)
	case TokenVar:
		return p.parseVar(tok)
	case TokenFn:
		return p.parseFunction(tok)
	case TokenEffect:
		return p.parseEffect(tok)
	case TokenHandle:
		return p.parseHandler(tok)
	case TokenIdent:
		switch tok.Literal {
		case "effect_group":
			return p.parseEffectGroup(tok)
		case "handler_group":
			return p.parseHandlerGroup(tok)
		}
	}
	p.unconsume()
	return p.parseStatement()
}

func (p *Parser) parseStatement() (Stmt, error) {
	if p.check(TokenLBrace) {
		lbrace := p.advance()
		return p.parseBlock(lbrace)
	}
	return p.parseExpressionStatement()
}

func (p *Parser) parseExpressionStatement() (Stmt, error) {
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(TokenSemicolon, "after expression"); err != nil {
		return nil, err
	}
	return &ExprStmt{Expr: expr}, nil
}

// parseBlock parses the statements between lbrace and its matching '}'.
func (p *Parser) parseBlock(lbrace Token) (*BlockStmt, error) {
	block := &BlockStmt{loc: lbrace.Loc}
	for !p.check(TokenRBrace) {
		if p.atEnd() {
			return nil, &ParseError{
				Kind: MissingToken,
				Desc: "expected '}' to close block",
				Loc:  p.peek().Loc,
			}
		}
		s, err := p.parseDeclaration()
		if err != nil {
			return nil, err
		}
		block.Stmts = append(block.Stmts, s)
	}
	p.advance()
	return block, nil
}
