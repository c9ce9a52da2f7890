package rus

// Node is anything in the syntax tree that remembers where it came from.
type Node interface {
	Loc() Location
}

type Stmt interface {
	Node
	stmtNode()
}

type Expr interface {
	Node
	exprNode()
}

// BinaryOp identifies a binary operator in the AST, independent of its
// surface spelling.
type BinaryOp int

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpEq
	OpNotEq
	OpLess
	OpLessEq
	OpGreater
	OpGreaterEq
	OpAnd
	OpOr
)

func (op BinaryOp) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpMod:
		return "%"
	case OpEq:
		return "=="
	case OpNotEq:
		return "!="
	case OpLess:
		return "<"
	case OpLessEq:
		return "<="
	case OpGreater:
		return ">"
	case OpGreaterEq:
		return ">="
	case OpAnd:
		return "&&"
	case OpOr:
		return "||"
	default:
		return "?"
	}
}

// UnaryOp identifies a prefix operator.
type UnaryOp int

const (
	OpNeg UnaryOp = iota
	OpNot
)

func (op UnaryOp) String() string {
	switch op {
	case OpNeg:
		return "-"
	case OpNot:
		return "!"
	default:
		return "?"
	}
}

type Identifier struct {
	Name string
	loc  Location
}

func (e *Identifier) exprNode()     {}
func (e *Identifier) Loc() Location { return e.loc }

// IntegerLit keeps the literal's exact source text (radix prefix
// included) and its type suffix; no numeric conversion happens in the
// front end.
type IntegerLit struct {
	Text   string
	Suffix string
	loc    Location
}

func (e *IntegerLit) exprNode()     {}
func (e *IntegerLit) Loc() Location { return e.loc }

type FloatLit struct {
	Text   string
	Suffix string
	loc    Location
}

func (e *FloatLit) exprNode()     {}
func (e *FloatLit) Loc() Location { return e.loc }

type StringLit struct {
	Value string
	loc   Location
}

func (e *StringLit) exprNode()     {}
func (e *StringLit) Loc() Location { return e.loc }

type CharLit struct {
	Value rune
	loc   Location
}

func (e *CharLit) exprNode()     {}
func (e *CharLit) Loc() Location { return e.loc }

type BoolLit struct {
	Value bool
	loc   Location
}

func (e *BoolLit) exprNode()     {}
func (e *BoolLit) Loc() Location { return e.loc }

// BinaryExpr's location is that of its left operand, so nested chains
// all point at where the whole expression started.
type BinaryExpr struct {
	Left  Expr
	Op    BinaryOp
	Right Expr
}

func (e *BinaryExpr) exprNode()     {}
func (e *BinaryExpr) Loc() Location { return e.Left.Loc() }

// UnaryExpr's location is the operator token.
type UnaryExpr struct {
	Op      UnaryOp
	Operand Expr
	loc     Location
}

func (e *UnaryExpr) exprNode()     {}
func (e *UnaryExpr) Loc() Location { return e.loc }

// GroupingExpr records an explicit parenthesization. Keeping the node
// lets later passes distinguish `(a + b) * c` from re-associated trees.
type GroupingExpr struct {
	Inner Expr
	loc   Location // the '('
}

func (e *GroupingExpr) exprNode()     {}
func (e *GroupingExpr) Loc() Location { return e.loc }

type CallExpr struct {
	Function string
	Args     []Expr
	loc      Location
}

func (e *CallExpr) exprNode()     {}
func (e *CallExpr) Loc() Location { return e.loc }

// EffectOpExpr is an effect operation invocation, `Effect.op(args)`.
type EffectOpExpr struct {
	Effect    string
	Operation string
	Args      []Expr
	loc       Location
}

func (e *EffectOpExpr) exprNode()     {}
func (e *EffectOpExpr) Loc() Location { return e.loc }
