package rus

// Binding strengths for the binary operators, weakest first. parseBinary
// recurses at prec+1 after consuming an operator, which makes every
// level left-associative.
const (
	precNone = iota
	precOr
	precAnd
	precEquality
	precComparison
	precTerm
	precFactor
)

func binaryPrecedence(tt TokenType) int {
	switch tt {
	case TokenOr:
		return precOr
	case TokenAnd:
		return precAnd
	case TokenEqualEqual, TokenBangEqual:
		return precEquality
	case TokenLess, TokenLessEqual, TokenGreater, TokenGreaterEqual:
		return precComparison
	case TokenPlus, TokenMinus:
		return precTerm
	case TokenStar, TokenSlash, TokenPercent:
		return precFactor
	default:
		return precNone
	}
}

func tokenBinaryOp(tt TokenType) BinaryOp {
	switch tt {
	case TokenPlus:
		return OpAdd
	case TokenMinus:
		return OpSub
	case TokenStar:
		return OpMul
	case TokenSlash:
		return OpDiv
	case TokenPercent:
		return OpMod
	case TokenEqualEqual:
		return OpEq
	case TokenBangEqual:
		return OpNotEq
	case TokenLess:
		return OpLess
	case TokenLessEqual:
		return OpLessEq
	case TokenGreater:
		return OpGreater
	case TokenGreaterEqual:
		return OpGreaterEq
	case TokenAnd:
		return OpAnd
	default:
		return OpOr
	}
}

func (p *Parser) parseExpression() (Expr, error) {
	return p.parseBinary(precOr)
}

func (p *Parser) parseBinary(minPrec int) (Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		prec := binaryPrecedence(p.peek().Type)
		if prec < minPrec {
			return left, nil
		}
		op := p.advance()
		right, err := p.parseBinary(prec + 1)
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{Left: left, Op: tokenBinaryOp(op.Type), Right: right}
	}
}

// parseUnary handles the prefix operators `-`, `!`, and the contextual
// word `not`, which lexes as an identifier but negates like `!` when it
// appears where an operand is expected.
func (p *Parser) parseUnary() (Expr, error) {
	tok := p.peek()
	var op UnaryOp
	switch {
	case tok.Type == TokenMinus:
		op = OpNeg
	case tok.Type == TokenBang:
		op = OpNot
	case tok.Type == TokenIdent && tok.Literal == "not":
		op = OpNot
	default:
		return p.parsePrimary()
	}
	p.advance()
	operand, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return &UnaryExpr{Op: op, Operand: operand, loc: tok.Loc}, nil
}

func (p *Parser) parsePrimary() (Expr, error) {
	tok := p.advance()
	switch tok.Type {
	case TokenInt:
		return &IntegerLit{Text: tok.Literal, Suffix: tok.Suffix, loc: tok.Loc}, nil
	case TokenFloat:
		return &FloatLit{Text: tok.Literal, Suffix: tok.Suffix, loc: tok.Loc}, nil
	case TokenString:
		return &StringLit{Value: tok.Literal, loc: tok.Loc}, nil
	case TokenChar:
		return &CharLit{Value: tok.Ch, loc: tok.Loc}, nil
	case TokenTrue:
		return &BoolLit{Value: true, loc: tok.Loc}, nil
	case TokenFalse:
		return &BoolLit{Value: false, loc: tok.Loc}, nil
	case TokenIdent:
		return p.parseIdentExpr(tok)
	case TokenLParen:
		inner, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(TokenRParen, "after expression"); err != nil {
			return nil, err
		}
		return &GroupingExpr{Inner: inner, loc: tok.Loc}, nil
	case TokenEOF:
		return nil, &ParseError{
			Kind: InvalidExpression,
			Desc: "unexpected end of input in expression",
			Loc:  tok.Loc,
		}
	default:
		return nil, p.errUnexpected(tok, "cannot start an expression")
	}
}

// parseIdentExpr decides what an identifier begins: `Name.op(args)` is
// an effect operation call, `name(args)` is a plain call, anything else
// is a reference. `Name.op` without the argument list is an error; the
// front end has no field access to fall back to.
func (p *Parser) parseIdentExpr(tok Token) (Expr, error) {
	if p.match(TokenDot) {
		op, err := p.expectName("operation name after '.'")
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(TokenLParen, "after effect operation name"); err != nil {
			return nil, err
		}
		args, err := p.parseArguments()
		if err != nil {
			return nil, err
		}
		return &EffectOpExpr{
			Effect:    tok.Literal,
			Operation: op.Literal,
			Args:      args,
			loc:       tok.Loc,
		}, nil
	}
	if p.match(TokenLParen) {
		args, err := p.parseArguments()
		if err != nil {
			return nil, err
		}
		return &CallExpr{Function: tok.Literal, Args: args, loc: tok.Loc}, nil
	}
	return &Identifier{Name: tok.Literal, loc: tok.Loc}, nil
}

// parseArguments parses a comma-separated argument list up to and
// including the closing ')'. The opening '(' has already been consumed.
func (p *Parser) parseArguments() ([]Expr, error) {
	var args []Expr
	if !p.check(TokenRParen) {
		for {
			arg, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.match(TokenComma) {
				break
			}
		}
	}
	if _, err := p.consume(TokenRParen, "after arguments"); err != nil {
		return nil, err
	}
	return args, nil
}
