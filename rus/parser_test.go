package rus

import (
	"strings"
	"testing"
)

func parseSource(t *testing.T, source string) []Stmt {
	t.Helper()
	tokens, errs := Scan("test.rus", strings.NewReader(source))
	if len(errs) > 0 {
		t.Fatalf("expected no lexical errors, got %v", errs)
	}
	stmts, err := NewParser(tokens).Parse()
	if err != nil {
		t.Fatalf("expected no parse error, got %v", err)
	}
	return stmts
}

func parseFail(t *testing.T, source string) *ParseError {
	t.Helper()
	tokens, errs := Scan("test.rus", strings.NewReader(source))
	if len(errs) > 0 {
		t.Fatalf("expected no lexical errors, got %v", errs)
	}
	_, err := NewParser(tokens).Parse()
	if err == nil {
		t.Fatalf("expected a parse error")
	}
	perr, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	return perr
}

func parseExprStmt(t *testing.T, source string) Expr {
	t.Helper()
	stmts := parseSource(t, source)
	if len(stmts) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(stmts))
	}
	es, ok := stmts[0].(*ExprStmt)
	if !ok {
		t.Fatalf("expected expression statement, got %T", stmts[0])
	}
	return es.Expr
}

func TestParserPrecedenceMulOverAdd(t *testing.T) {
	expr := parseExprStmt(t, "1 + 2 * 3;")
	add, ok := expr.(*BinaryExpr)
	if !ok || add.Op != OpAdd {
		t.Fatalf("expected + at root, got %#v", expr)
	}
	if _, ok := add.Left.(*IntegerLit); !ok {
		t.Fatalf("expected integer on the left, got %T", add.Left)
	}
	mul, ok := add.Right.(*BinaryExpr)
	if !ok || mul.Op != OpMul {
		t.Fatalf("expected * on the right, got %#v", add.Right)
	}
}

func TestParserLeftAssociativity(t *testing.T) {
	expr := parseExprStmt(t, "10 - 4 - 3;")
	outer, ok := expr.(*BinaryExpr)
	if !ok || outer.Op != OpSub {
		t.Fatalf("expected - at root, got %#v", expr)
	}
	inner, ok := outer.Left.(*BinaryExpr)
	if !ok || inner.Op != OpSub {
		t.Fatalf("expected (10 - 4) on the left, got %#v", outer.Left)
	}
	if lit, ok := outer.Right.(*IntegerLit); !ok || lit.Text != "3" {
		t.Fatalf("expected 3 on the right, got %#v", outer.Right)
	}
}

func TestParserLogicalPrecedence(t *testing.T) {
	expr := parseExprStmt(t, "a || b && c;")
	or, ok := expr.(*BinaryExpr)
	if !ok || or.Op != OpOr {
		t.Fatalf("expected || at root, got %#v", expr)
	}
	and, ok := or.Right.(*BinaryExpr)
	if !ok || and.Op != OpAnd {
		t.Fatalf("expected && on the right, got %#v", or.Right)
	}
}

func TestParserComparisonBelowEquality(t *testing.T) {
	expr := parseExprStmt(t, "a < b == c < d;")
	eq, ok := expr.(*BinaryExpr)
	if !ok || eq.Op != OpEq {
		t.Fatalf("expected == at root, got %#v", expr)
	}
	left, ok := eq.Left.(*BinaryExpr)
	if !ok || left.Op != OpLess {
		t.Fatalf("expected < on the left, got %#v", eq.Left)
	}
	right, ok := eq.Right.(*BinaryExpr)
	if !ok || right.Op != OpLess {
		t.Fatalf("expected < on the right, got %#v", eq.Right)
	}
}

func TestParserGroupingOverridesPrecedence(t *testing.T) {
	expr := parseExprStmt(t, "(1 + 2) * 3;")
	mul, ok := expr.(*BinaryExpr)
	if !ok || mul.Op != OpMul {
		t.Fatalf("expected * at root, got %#v", expr)
	}
	group, ok := mul.Left.(*GroupingExpr)
	if !ok {
		t.Fatalf("expected grouping on the left, got %T", mul.Left)
	}
	add, ok := group.Inner.(*BinaryExpr)
	if !ok || add.Op != OpAdd {
		t.Fatalf("expected + inside the group, got %#v", group.Inner)
	}
}

func TestParserUnaryOperators(t *testing.T) {
	expr := parseExprStmt(t, "-x;")
	neg, ok := expr.(*UnaryExpr)
	if !ok || neg.Op != OpNeg {
		t.Fatalf("expected unary -, got %#v", expr)
	}
	if id, ok := neg.Operand.(*Identifier); !ok || id.Name != "x" {
		t.Fatalf("expected identifier operand, got %#v", neg.Operand)
	}

	expr = parseExprStmt(t, "!done;")
	not, ok := expr.(*UnaryExpr)
	if !ok || not.Op != OpNot {
		t.Fatalf("expected unary !, got %#v", expr)
	}

	expr = parseExprStmt(t, "--x;")
	outer, ok := expr.(*UnaryExpr)
	if !ok || outer.Op != OpNeg {
		t.Fatalf("expected nested unary -, got %#v", expr)
	}
	if _, ok := outer.Operand.(*UnaryExpr); !ok {
		t.Fatalf("expected unary operand, got %T", outer.Operand)
	}
}

func TestParserContextualNot(t *testing.T) {
	expr := parseExprStmt(t, "not ready;")
	not, ok := expr.(*UnaryExpr)
	if !ok || not.Op != OpNot {
		t.Fatalf("expected unary not, got %#v", expr)
	}
	if id, ok := not.Operand.(*Identifier); !ok || id.Name != "ready" {
		t.Fatalf("expected identifier operand, got %#v", not.Operand)
	}

	// Outside operand position, `not` stays an ordinary identifier.
	stmts := parseSource(t, "let not = 1;")
	let, ok := stmts[0].(*LetStmt)
	if !ok || let.Name != "not" {
		t.Fatalf("expected let binding named not, got %#v", stmts[0])
	}
}

func TestParserUnaryBindsTighterThanBinary(t *testing.T) {
	expr := parseExprStmt(t, "-a + b;")
	add, ok := expr.(*BinaryExpr)
	if !ok || add.Op != OpAdd {
		t.Fatalf("expected + at root, got %#v", expr)
	}
	if _, ok := add.Left.(*UnaryExpr); !ok {
		t.Fatalf("expected unary on the left, got %T", add.Left)
	}
}

func TestParserLetAndVar(t *testing.T) {
	stmts := parseSource(t, "let x = 42; var y = x; var z;")
	if len(stmts) != 3 {
		t.Fatalf("expected 3 statements, got %d", len(stmts))
	}

	let, ok := stmts[0].(*LetStmt)
	if !ok || let.Name != "x" {
		t.Fatalf("expected let x, got %#v", stmts[0])
	}
	if lit, ok := let.Init.(*IntegerLit); !ok || lit.Text != "42" {
		t.Fatalf("expected integer initializer, got %#v", let.Init)
	}

	v, ok := stmts[1].(*VarStmt)
	if !ok || v.Name != "y" {
		t.Fatalf("expected var y, got %#v", stmts[1])
	}

	bare, ok := stmts[2].(*VarStmt)
	if !ok || bare.Name != "z" || bare.Init != nil {
		t.Fatalf("expected bare var z, got %#v", stmts[2])
	}
}

func TestParserFunctionDeclaration(t *testing.T) {
	stmts := parseSource(t, "fn add(a, b) -> i32 effects IO, State { a + b; }")
	fn, ok := stmts[0].(*FunctionStmt)
	if !ok {
		t.Fatalf("expected function statement, got %T", stmts[0])
	}
	if fn.Name != "add" {
		t.Fatalf("expected function name add, got %q", fn.Name)
	}
	if len(fn.Params) != 2 || fn.Params[0] != "a" || fn.Params[1] != "b" {
		t.Fatalf("expected params a, b, got %v", fn.Params)
	}
	if fn.ReturnType != "i32" {
		t.Fatalf("expected return type i32, got %q", fn.ReturnType)
	}
	if len(fn.Effects) != 2 || fn.Effects[0] != "IO" || fn.Effects[1] != "State" {
		t.Fatalf("expected effects IO, State, got %v", fn.Effects)
	}
	if len(fn.Body.Stmts) != 1 {
		t.Fatalf("expected 1 body statement, got %d", len(fn.Body.Stmts))
	}
}

func TestParserFunctionMinimal(t *testing.T) {
	stmts := parseSource(t, "fn main() { }")
	fn, ok := stmts[0].(*FunctionStmt)
	if !ok {
		t.Fatalf("expected function statement, got %T", stmts[0])
	}
	if len(fn.Params) != 0 || fn.ReturnType != "" || fn.Effects != nil {
		t.Fatalf("expected bare signature, got %#v", fn)
	}
	if len(fn.Body.Stmts) != 0 {
		t.Fatalf("expected empty body, got %d statements", len(fn.Body.Stmts))
	}
}

func TestParserEffectsWordIsContextual(t *testing.T) {
	// As a body expression, `effects` is just an identifier.
	stmts := parseSource(t, "fn f() { effects; }")
	fn := stmts[0].(*FunctionStmt)
	es, ok := fn.Body.Stmts[0].(*ExprStmt)
	if !ok {
		t.Fatalf("expected expression statement, got %T", fn.Body.Stmts[0])
	}
	if id, ok := es.Expr.(*Identifier); !ok || id.Name != "effects" {
		t.Fatalf("expected identifier effects, got %#v", es.Expr)
	}
}

func TestParserCallExpression(t *testing.T) {
	expr := parseExprStmt(t, "print(1, x + 2);")
	call, ok := expr.(*CallExpr)
	if !ok {
		t.Fatalf("expected call expression, got %T", expr)
	}
	if call.Function != "print" {
		t.Fatalf("expected call to print, got %q", call.Function)
	}
	if len(call.Args) != 2 {
		t.Fatalf("expected 2 args, got %d", len(call.Args))
	}
	if _, ok := call.Args[1].(*BinaryExpr); !ok {
		t.Fatalf("expected binary second arg, got %T", call.Args[1])
	}

	expr = parseExprStmt(t, "tick();")
	call, ok = expr.(*CallExpr)
	if !ok || len(call.Args) != 0 {
		t.Fatalf("expected zero-arg call, got %#v", expr)
	}
}

func TestParserStandaloneBlock(t *testing.T) {
	stmts := parseSource(t, "{ let x = 1; x; }")
	block, ok := stmts[0].(*BlockStmt)
	if !ok {
		t.Fatalf("expected block statement, got %T", stmts[0])
	}
	if len(block.Stmts) != 2 {
		t.Fatalf("expected 2 statements in block, got %d", len(block.Stmts))
	}
}

func TestParserMissingSemicolon(t *testing.T) {
	perr := parseFail(t, "let x = 1")
	if perr.Kind != MissingToken {
		t.Fatalf("expected missing token, got %s", perr.Kind)
	}
	if !strings.Contains(perr.Desc, "';'") {
		t.Fatalf("expected diagnostic to name ';', got %q", perr.Desc)
	}

	perr = parseFail(t, "1 + 2")
	if perr.Kind != MissingToken {
		t.Fatalf("expected missing token, got %s", perr.Kind)
	}
}

func TestParserFailFast(t *testing.T) {
	// The bad first statement aborts the parse; the valid second one is
	// never reached.
	perr := parseFail(t, "let = 1; let y = 2;")
	if perr.Kind != UnexpectedToken {
		t.Fatalf("expected unexpected token, got %s", perr.Kind)
	}
	if perr.Loc.Line != 1 || perr.Loc.Column != 5 {
		t.Fatalf("expected error at 1:5, got %s", perr.Loc)
	}
}

func TestParserNamePositionsReportUnexpectedToken(t *testing.T) {
	// A non-identifier where a name must stand is an unexpected token;
	// MissingToken is reserved for fixed punctuation and keywords.
	tests := []string{
		"let = 1;",
		"var = 1;",
		"fn (a) { }",
		"fn f(1) { }",
		"fn f() -> 1 { }",
		"effect { }",
		"handle { }",
		"State.(x);",
	}
	for _, source := range tests {
		perr := parseFail(t, source)
		if perr.Kind != UnexpectedToken {
			t.Fatalf("%q: expected unexpected token, got %s: %s", source, perr.Kind, perr.Desc)
		}
	}
}

func TestParserInvalidExpressionAtEOF(t *testing.T) {
	perr := parseFail(t, "let x = ")
	if perr.Kind != InvalidExpression {
		t.Fatalf("expected invalid expression, got %s", perr.Kind)
	}

	perr = parseFail(t, "1 + ")
	if perr.Kind != InvalidExpression {
		t.Fatalf("expected invalid expression, got %s", perr.Kind)
	}
}

func TestParserUnexpectedToken(t *testing.T) {
	perr := parseFail(t, "let x = );")
	if perr.Kind != UnexpectedToken {
		t.Fatalf("expected unexpected token, got %s", perr.Kind)
	}
}

func TestParserUnclosedBlock(t *testing.T) {
	perr := parseFail(t, "fn f() { let x = 1;")
	if perr.Kind != MissingToken {
		t.Fatalf("expected missing token, got %s", perr.Kind)
	}
	if !strings.Contains(perr.Desc, "'}'") {
		t.Fatalf("expected diagnostic to name '}', got %q", perr.Desc)
	}
}

func TestParserStatementLocations(t *testing.T) {
	stmts := parseSource(t, "let x = 1;\nfn f() { }")
	if loc := stmts[0].Loc(); loc.Line != 1 || loc.Column != 1 {
		t.Fatalf("expected let at 1:1, got %s", loc)
	}
	if loc := stmts[1].Loc(); loc.Line != 2 || loc.Column != 1 {
		t.Fatalf("expected fn at 2:1, got %s", loc)
	}

	fn := stmts[1].(*FunctionStmt)
	if loc := fn.Body.Loc(); loc.Line != 2 || loc.Column != 8 {
		t.Fatalf("expected block at 2:8, got %s", loc)
	}
}

func TestParserBinaryLocationIsLeftOperand(t *testing.T) {
	expr := parseExprStmt(t, "  a + b;")
	if loc := expr.Loc(); loc.Line != 1 || loc.Column != 3 {
		t.Fatalf("expected expression at 1:3, got %s", loc)
	}
}

func TestParserLiteralExpressions(t *testing.T) {
	expr := parseExprStmt(t, `"hi";`)
	if s, ok := expr.(*StringLit); !ok || s.Value != "hi" {
		t.Fatalf("expected string literal, got %#v", expr)
	}

	expr = parseExprStmt(t, "'x';")
	if c, ok := expr.(*CharLit); !ok || c.Value != 'x' {
		t.Fatalf("expected char literal, got %#v", expr)
	}

	expr = parseExprStmt(t, "true;")
	if b, ok := expr.(*BoolLit); !ok || !b.Value {
		t.Fatalf("expected true literal, got %#v", expr)
	}

	expr = parseExprStmt(t, "3.14;")
	if f, ok := expr.(*FloatLit); !ok || f.Text != "3.14" {
		t.Fatalf("expected float literal, got %#v", expr)
	}

	expr = parseExprStmt(t, "0xFFu8;")
	lit, ok := expr.(*IntegerLit)
	if !ok || lit.Text != "0xFF" || lit.Suffix != "u8" {
		t.Fatalf("expected suffixed hex literal, got %#v", expr)
	}
}
