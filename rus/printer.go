package rus

import (
	"fmt"
	"strings"
)

// Dump renders statements as an indented tree, one node per line. The
// output is deterministic for a given AST, so it doubles as a cheap
// structural fingerprint in tests and in the CLI.
func Dump(stmts []Stmt) string {
	var sb strings.Builder
	for _, s := range stmts {
		dumpStmt(&sb, s, 0)
	}
	return sb.String()
}

func indent(sb *strings.Builder, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
}

func dumpStmt(sb *strings.Builder, s Stmt, depth int) {
	indent(sb, depth)
	switch s := s.(type) {
	case *ExprStmt:
		sb.WriteString("expr\n")
		dumpExpr(sb, s.Expr, depth+1)
	case *LetStmt:
		fmt.Fprintf(sb, "let %s\n", s.Name)
		if s.Init != nil {
			dumpExpr(sb, s.Init, depth+1)
		}
	case *VarStmt:
		fmt.Fprintf(sb, "var %s\n", s.Name)
		if s.Init != nil {
			dumpExpr(sb, s.Init, depth+1)
		}
	case *FunctionStmt:
		fmt.Fprintf(sb, "fn %s(%s)", s.Name, strings.Join(s.Params, ", "))
		if s.ReturnType != "" {
			fmt.Fprintf(sb, " -> %s", s.ReturnType)
		}
		if len(s.Effects) > 0 {
			fmt.Fprintf(sb, " effects %s", strings.Join(s.Effects, ", "))
		}
		sb.WriteString("\n")
		dumpStmt(sb, s.Body, depth+1)
	case *BlockStmt:
		sb.WriteString("block\n")
		for _, inner := range s.Stmts {
			dumpStmt(sb, inner, depth+1)
		}
	case *EffectStmt:
		fmt.Fprintf(sb, "effect %s\n", s.Name)
		for _, op := range s.Operations {
			indent(sb, depth+1)
			sb.WriteString(formatOperation(op))
			sb.WriteString("\n")
		}
	case *HandlerStmt:
		fmt.Fprintf(sb, "handle %s\n", s.Effect)
		for _, clause := range s.Clauses {
			indent(sb, depth+1)
			fmt.Fprintf(sb, "%s(%s)\n", clause.Operation, strings.Join(clause.Params, ", "))
			dumpStmt(sb, clause.Body, depth+2)
		}
	case *EffectGroupStmt:
		fmt.Fprintf(sb, "effect_group %s = %s\n", s.Name, strings.Join(s.Effects, ", "))
	case *HandlerGroupStmt:
		fmt.Fprintf(sb, "handler_group %s = %s\n", s.Name, strings.Join(s.Handlers, ", "))
	default:
		fmt.Fprintf(sb, "%T\n", s)
	}
}

func formatOperation(op EffectOperation) string {
	params := make([]string, len(op.Params))
	for i, p := range op.Params {
		params[i] = fmt.Sprintf("%s: %s", p.Name, p.Type)
	}
	sig := fmt.Sprintf("fn %s(%s)", op.Name, strings.Join(params, ", "))
	if op.ReturnType != "" {
		sig += " -> " + op.ReturnType
	}
	return sig
}

func dumpExpr(sb *strings.Builder, e Expr, depth int) {
	indent(sb, depth)
	switch e := e.(type) {
	case *Identifier:
		fmt.Fprintf(sb, "ident %s\n", e.Name)
	case *IntegerLit:
		fmt.Fprintf(sb, "int %s", e.Text)
		if e.Suffix != "" {
			fmt.Fprintf(sb, " %s", e.Suffix)
		}
		sb.WriteString("\n")
	case *FloatLit:
		fmt.Fprintf(sb, "float %s", e.Text)
		if e.Suffix != "" {
			fmt.Fprintf(sb, " %s", e.Suffix)
		}
		sb.WriteString("\n")
	case *StringLit:
		fmt.Fprintf(sb, "string %q\n", e.Value)
	case *CharLit:
		fmt.Fprintf(sb, "char %q\n", e.Value)
	case *BoolLit:
		fmt.Fprintf(sb, "bool %t\n", e.Value)
	case *BinaryExpr:
		fmt.Fprintf(sb, "binary %s\n", e.Op)
		dumpExpr(sb, e.Left, depth+1)
		dumpExpr(sb, e.Right, depth+1)
	case *UnaryExpr:
		fmt.Fprintf(sb, "unary %s\n", e.Op)
		dumpExpr(sb, e.Operand, depth+1)
	case *GroupingExpr:
		sb.WriteString("group\n")
		dumpExpr(sb, e.Inner, depth+1)
	case *CallExpr:
		fmt.Fprintf(sb, "call %s\n", e.Function)
		for _, arg := range e.Args {
			dumpExpr(sb, arg, depth+1)
		}
	case *EffectOpExpr:
		fmt.Fprintf(sb, "effect-op %s.%s\n", e.Effect, e.Operation)
		for _, arg := range e.Args {
			dumpExpr(sb, arg, depth+1)
		}
	default:
		fmt.Fprintf(sb, "%T\n", e)
	}
}
