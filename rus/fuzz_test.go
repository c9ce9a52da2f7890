package rus

import (
	"strings"
	"testing"
)

func FuzzLexerDoesNotPanic(f *testing.F) {
	f.Add("")
	f.Add("let x = 42;")
	f.Add("fn add(a, b) -> i32 effects IO { a + b; }")
	f.Add("\"unterminated")
	f.Add("'ab' 0x 1e ` ~")
	f.Add("&mut &mutable <<= ..= ... :: 1.23E-5u32")

	f.Fuzz(func(t *testing.T, source string) {
		tokens, _ := Scan("fuzz.rus", strings.NewReader(source))
		if len(tokens) == 0 || tokens[len(tokens)-1].Type != TokenEOF {
			t.Fatalf("token stream must end with EOF")
		}
	})
}

func FuzzParserDoesNotPanic(f *testing.F) {
	f.Add("let x = 1 + 2 * 3;")
	f.Add("effect State { fn get() -> Int; }")
	f.Add("handle State { get() { 0; } }")
	f.Add("effect_group G = A, B;")
	f.Add("fn broken(")
	f.Add("((((1)")
	f.Add("State.get;")

	f.Fuzz(func(t *testing.T, source string) {
		if len(source) > 4096 {
			source = source[:4096]
		}
		tokens, _ := Scan("fuzz.rus", strings.NewReader(source))
		_, _ = NewParser(tokens).Parse()
	})
}
