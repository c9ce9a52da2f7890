package rus

func (p *Parser) parseLet(kw Token) (*LetStmt, error) {
	name, err := p.expectName("name after 'let'")
	if err != nil {
		return nil, err
	}
	var init Expr
	if p.match(TokenEqual) {
		init, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(TokenSemicolon, "after let declaration"); err != nil {
		return nil, err
	}
	return &LetStmt{Name: name.Literal, Init: init, loc: kw.Loc}, nil
}

func (p *Parser) parseVar(kw Token) (*VarStmt, error) {
	name, err := p.expectName("name after 'var'")
	if err != nil {
		return nil, err
	}
	var init Expr
	if p.match(TokenEqual) {
		init, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(TokenSemicolon, "after var declaration"); err != nil {
		return nil, err
	}
	return &VarStmt{Name: name.Literal, Init: init, loc: kw.Loc}, nil
}

// parseFunction parses
//
//	fn name(a, b) -> Type effects A, B { ... }
//
// with the return type and effects clauses both optional. `effects` is a
// contextual keyword, recognized by text only in this position.
func (p *Parser) parseFunction(kw Token) (*FunctionStmt, error) {
	name, err := p.expectName("function name after 'fn'")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(TokenLParen, "after function name"); err != nil {
		return nil, err
	}
	fn := &FunctionStmt{Name: name.Literal, loc: kw.Loc}
	if !p.check(TokenRParen) {
		for {
			param, err := p.expectName("parameter name")
			if err != nil {
				return nil, err
			}
			fn.Params = append(fn.Params, param.Literal)
			if !p.match(TokenComma) {
				break
			}
		}
	}
	if _, err := p.consume(TokenRParen, "after parameters"); err != nil {
		return nil, err
	}

	if p.match(TokenArrow) {
		ret, err := p.expectName("return type after '->'")
		if err != nil {
			return nil, err
		}
		fn.ReturnType = ret.Literal
	}

	if p.check(TokenIdent) && p.peek().Literal == "effects" {
		p.advance()
		for {
			eff, err := p.expectName("effect name")
			if err != nil {
				return nil, err
			}
			fn.Effects = append(fn.Effects, eff.Literal)
			if !p.match(TokenComma) {
				break
			}
		}
	}

	lbrace, err := p.consume(TokenLBrace, "before function body")
	if err != nil {
		return nil, err
	}
	fn.Body, err = p.parseBlock(lbrace)
	if err != nil {
		return nil, err
	}
	return fn, nil
}

// parseEffect parses an effect interface declaration:
//
//	effect Name {
//	    fn op(p: T) -> R;
//	}
func (p *Parser) parseEffect(kw Token) (*EffectStmt, error) {
	name, err := p.expectName("effect name after 'effect'")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(TokenLBrace, "after effect name"); err != nil {
		return nil, err
	}
	eff := &EffectStmt{Name: name.Literal, loc: kw.Loc}
	for !p.match(TokenRBrace) {
		if p.atEnd() {
			return nil, &ParseError{
				Kind: MissingToken,
				Desc: "expected '}' to close effect declaration",
				Loc:  p.peek().Loc,
			}
		}
		op, err := p.parseEffectOperation()
		if err != nil {
			return nil, err
		}
		eff.Operations = append(eff.Operations, op)
	}
	return eff, nil
}

func (p *Parser) parseEffectOperation() (EffectOperation, error) {
	var op EffectOperation
	if _, err := p.consume(TokenFn, "to begin effect operation"); err != nil {
		return op, err
	}
	name, err := p.expectName("operation name after 'fn'")
	if err != nil {
		return op, err
	}
	op.Name = name.Literal
	if _, err := p.consume(TokenLParen, "after operation name"); err != nil {
		return op, err
	}
	if !p.check(TokenRParen) {
		for {
			pname, err := p.expectName("parameter name")
			if err != nil {
				return op, err
			}
			if _, err := p.consume(TokenColon, "after parameter name"); err != nil {
				return op, err
			}
			ptype, err := p.expectName("parameter type after ':'")
			if err != nil {
				return op, err
			}
			op.Params = append(op.Params, EffectParam{Name: pname.Literal, Type: ptype.Literal})
			if !p.match(TokenComma) {
				break
			}
		}
	}
	if _, err := p.consume(TokenRParen, "after operation parameters"); err != nil {
		return op, err
	}
	if p.match(TokenArrow) {
		ret, err := p.expectName("return type after '->'")
		if err != nil {
			return op, err
		}
		op.ReturnType = ret.Literal
	}
	if _, err := p.consume(TokenSemicolon, "after effect operation"); err != nil {
		return op, err
	}
	return op, nil
}

// parseHandler parses a handler implementation:
//
//	handle Name {
//	    op(p) { ... }
//	}
func (p *Parser) parseHandler(kw Token) (*HandlerStmt, error) {
	name, err := p.expectName("effect name after 'handle'")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(TokenLBrace, "after handler name"); err != nil {
		return nil, err
	}
	h := &HandlerStmt{Effect: name.Literal, loc: kw.Loc}
	for !p.match(TokenRBrace) {
		if p.atEnd() {
			return nil, &ParseError{
				Kind: MissingToken,
				Desc: "expected '}' to close handler declaration",
				Loc:  p.peek().Loc,
			}
		}
		clause, err := p.parseHandlerClause()
		if err != nil {
			return nil, err
		}
		h.Clauses = append(h.Clauses, clause)
	}
	return h, nil
}

func (p *Parser) parseHandlerClause() (HandlerClause, error) {
	var clause HandlerClause
	name, err := p.expectName("operation name to begin handler clause")
	if err != nil {
		return clause, err
	}
	clause.Operation = name.Literal
	if _, err := p.consume(TokenLParen, "after operation name"); err != nil {
		return clause, err
	}
	if !p.check(TokenRParen) {
		for {
			param, err := p.expectName("parameter name")
			if err != nil {
				return clause, err
			}
			clause.Params = append(clause.Params, param.Literal)
			if !p.match(TokenComma) {
				break
			}
		}
	}
	if _, err := p.consume(TokenRParen, "after handler parameters"); err != nil {
		return clause, err
	}
	lbrace, err := p.consume(TokenLBrace, "before handler body")
	if err != nil {
		return clause, err
	}
	clause.Body, err = p.parseBlock(lbrace)
	if err != nil {
		return clause, err
	}
	return clause, nil
}

// parseEffectGroup parses
//
//	effect_group Name = A, B;
//
// The `effect_group` identifier has already been consumed. The listed
// effects are plain names; their declarations live elsewhere.
func (p *Parser) parseEffectGroup(kw Token) (*EffectGroupStmt, error) {
	name, err := p.expectName("effect group name")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(TokenEqual, "after effect group name"); err != nil {
		return nil, err
	}
	group := &EffectGroupStmt{Name: name.Literal, loc: kw.Loc}
	for {
		eff, err := p.expectName("effect name")
		if err != nil {
			return nil, err
		}
		group.Effects = append(group.Effects, eff.Literal)
		if !p.match(TokenComma) {
			break
		}
	}
	if _, err := p.consume(TokenSemicolon, "after effect group declaration"); err != nil {
		return nil, err
	}
	return group, nil
}

// parseHandlerGroup parses
//
//	handler_group Name = A, B;
func (p *Parser) parseHandlerGroup(kw Token) (*HandlerGroupStmt, error) {
	name, err := p.expectName("handler group name")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(TokenEqual, "after handler group name"); err != nil {
		return nil, err
	}
	group := &HandlerGroupStmt{Name: name.Literal, loc: kw.Loc}
	for {
		h, err := p.expectName("handler name")
		if err != nil {
			return nil, err
		}
		group.Handlers = append(group.Handlers, h.Literal)
		if !p.match(TokenComma) {
			break
		}
	}
	if _, err := p.consume(TokenSemicolon, "after handler group declaration"); err != nil {
		return nil, err
	}
	return group, nil
}
