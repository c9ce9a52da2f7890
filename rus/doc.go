// Package rus implements the front end of the Rus programming language:
// a lexer that turns source text into located tokens and a parser that
// assembles those tokens into an abstract syntax tree.
//
// The surface syntax is a conventional expression/statement grammar with
// algebraic-effect declarations layered on top:
//   - `let`/`var` bindings with optional initializers.
//   - `fn name(params) -> Ret effects A, B { ... }` function declarations.
//   - `effect Name { fn op(p: T) -> R; }` effect interfaces.
//   - `handle Name { op(p) { ... } }` handler implementations.
//   - `effect_group G = A, B;` and `handler_group H = X;` grouping
//     declarations (contextual keywords, not reserved words).
//   - Integer literals in decimal, hex, octal, and binary with optional
//     type suffixes; float literals with exponents; string and char
//     literals with escape sequences.
//
// Lexing never stops at a malformed lexeme: each bad lexeme yields one
// typed *LexicalError and scanning resumes at the next character, so a
// caller can collect every lexical diagnostic in a single pass. Parsing
// is fail-fast: the first structural error aborts the parse.
//
// The package performs no name resolution, type checking, or effect
// dispatch; it stops at the AST.
package rus
