package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// runCLI executes the root command with args, capturing both streams.
// Color is forced off and the config path points at a missing file so a
// stray rus.toml in the working directory cannot leak in.
func runCLI(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	full := append([]string{
		"--color=false",
		"--config", filepath.Join(t.TempDir(), "rus.toml"),
	}, args...)

	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(full)
	err = root.Execute()
	return out.String(), errOut.String(), err
}

func writeSourceFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.rus")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}
	return path
}

func TestLexCommandFailsOnLexicalErrors(t *testing.T) {
	path := writeSourceFile(t, "let x = @;\n")

	stdout, stderr, err := runCLI(t, "lex", path)
	if err == nil {
		t.Fatalf("expected lex to fail")
	}
	if !strings.Contains(err.Error(), "1 lexical error(s)") {
		t.Fatalf("expected error summary, got %v", err)
	}
	if !strings.Contains(stderr, "unknown character") {
		t.Fatalf("expected diagnostic on stderr, got %q", stderr)
	}
	if !strings.Contains(stderr, "-->") {
		t.Fatalf("expected a code frame on stderr, got %q", stderr)
	}
	// The valid tokens still print before the failure.
	if !strings.Contains(stdout, `IDENT("x")`) {
		t.Fatalf("expected token listing on stdout, got %q", stdout)
	}
}

func TestParseCommandFailsOnParseError(t *testing.T) {
	path := writeSourceFile(t, "let = 1;\n")

	stdout, stderr, err := runCLI(t, "parse", "--check", path)
	if err == nil {
		t.Fatalf("expected parse to fail")
	}
	if !strings.Contains(err.Error(), "parse failed") {
		t.Fatalf("expected parse failure summary, got %v", err)
	}
	if !strings.Contains(stderr, "unexpected token") || !strings.Contains(stderr, "-->") {
		t.Fatalf("expected diagnostic with code frame on stderr, got %q", stderr)
	}
	if stdout != "" {
		t.Fatalf("expected no stdout in check mode, got %q", stdout)
	}
}

func TestParseCommandFailsOnLexicalErrors(t *testing.T) {
	path := writeSourceFile(t, "let x = 0x;\n")

	_, stderr, err := runCLI(t, "parse", path)
	if err == nil {
		t.Fatalf("expected parse to fail")
	}
	if !strings.Contains(stderr, "invalid number format") {
		t.Fatalf("expected lexical diagnostic on stderr, got %q", stderr)
	}
}

func TestParseCommandMissingFile(t *testing.T) {
	_, _, err := runCLI(t, "parse", filepath.Join(t.TempDir(), "absent.rus"))
	if err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}

func TestParseCommandFormats(t *testing.T) {
	path := writeSourceFile(t, "let x = 1;\n")

	stdout, _, err := runCLI(t, "parse", path)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !strings.Contains(stdout, "let x") {
		t.Fatalf("expected syntax tree output, got %q", stdout)
	}

	stdout, _, err = runCLI(t, "parse", "--format", "tokens", path)
	if err != nil {
		t.Fatalf("parse --format tokens: %v", err)
	}
	if !strings.Contains(stdout, `IDENT("x")`) {
		t.Fatalf("expected token output, got %q", stdout)
	}
	if strings.Contains(stdout, "let x\n") {
		t.Fatalf("expected no syntax tree in token mode, got %q", stdout)
	}
}

func TestRootCommandRejectsUnknownFormat(t *testing.T) {
	path := writeSourceFile(t, "let x = 1;\n")

	_, _, err := runCLI(t, "parse", "--format", "xml", path)
	if err == nil {
		t.Fatalf("expected an error for unknown format")
	}
	if !strings.Contains(err.Error(), "output format") {
		t.Fatalf("expected format error, got %v", err)
	}
}
