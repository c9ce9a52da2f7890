package rus

type ExprStmt struct {
	Expr Expr
}

func (s *ExprStmt) stmtNode()     {}
func (s *ExprStmt) Loc() Location { return s.Expr.Loc() }

// LetStmt is an immutable binding. Init may be nil for a bare
// declaration.
type LetStmt struct {
	Name string
	Init Expr
	loc  Location // the `let` keyword
}

func (s *LetStmt) stmtNode()     {}
func (s *LetStmt) Loc() Location { return s.loc }

// VarStmt is a mutable binding, otherwise identical to LetStmt.
type VarStmt struct {
	Name string
	Init Expr
	loc  Location
}

func (s *VarStmt) stmtNode()     {}
func (s *VarStmt) Loc() Location { return s.loc }

// FunctionStmt is a function declaration. ReturnType is "" when no
// `-> Type` clause was written; Effects is nil when no `effects` clause
// was written.
type FunctionStmt struct {
	Name       string
	Params     []string
	ReturnType string
	Effects    []string
	Body       *BlockStmt
	loc        Location // the `fn` keyword
}

func (s *FunctionStmt) stmtNode()     {}
func (s *FunctionStmt) Loc() Location { return s.loc }

type BlockStmt struct {
	Stmts []Stmt
	loc   Location // the '{'
}

func (s *BlockStmt) stmtNode()     {}
func (s *BlockStmt) Loc() Location { return s.loc }

// EffectParam is one `name: Type` parameter of an effect operation.
type EffectParam struct {
	Name string
	Type string
}

// EffectOperation is one `fn op(params) -> Ret;` signature inside an
// effect declaration. ReturnType is "" when the arrow clause is absent.
type EffectOperation struct {
	Name       string
	Params     []EffectParam
	ReturnType string
}

// EffectStmt declares an effect interface:
//
//	effect Name {
//	    fn op(p: T) -> R;
//	}
type EffectStmt struct {
	Name       string
	Operations []EffectOperation
	loc        Location // the `effect` keyword
}

func (s *EffectStmt) stmtNode()     {}
func (s *EffectStmt) Loc() Location { return s.loc }

// HandlerClause is one `op(params) { body }` implementation inside a
// handler.
type HandlerClause struct {
	Operation string
	Params    []string
	Body      *BlockStmt
}

// HandlerStmt implements an effect:
//
//	handle Name {
//	    op(p) { ... }
//	}
type HandlerStmt struct {
	Effect  string
	Clauses []HandlerClause
	loc     Location // the `handle` keyword
}

func (s *HandlerStmt) stmtNode()     {}
func (s *HandlerStmt) Loc() Location { return s.loc }

// EffectGroupStmt names a bundle of effects:
//
//	effect_group Name = A, B;
//
// `effect_group` is a contextual keyword: the word lexes as an ordinary
// identifier and the parser gives it meaning at declaration position.
// The listed effects are referenced by name, not declared inline.
type EffectGroupStmt struct {
	Name    string
	Effects []string
	loc     Location // the `effect_group` identifier
}

func (s *EffectGroupStmt) stmtNode()     {}
func (s *EffectGroupStmt) Loc() Location { return s.loc }

// HandlerGroupStmt names a bundle of handlers:
//
//	handler_group Name = A, B;
//
// `handler_group` is contextual in the same way as `effect_group`.
type HandlerGroupStmt struct {
	Name     string
	Handlers []string
	loc      Location // the `handler_group` identifier
}

func (s *HandlerGroupStmt) stmtNode()     {}
func (s *HandlerGroupStmt) Loc() Location { return s.loc }
