package rus

import "testing"

func TestFormatCodeFrame(t *testing.T) {
	source := "let x = 1;\nlet y = @;\n"
	got := FormatCodeFrame(source, Location{Line: 2, Column: 9, File: "test.rus"})
	want := "  --> test.rus:2:9\n" +
		" 2 | let y = @;\n" +
		"   |         ^"
	if got != want {
		t.Fatalf("unexpected code frame:\n%s", got)
	}
}

func TestFormatCodeFrameWithoutFile(t *testing.T) {
	got := FormatCodeFrame("let y = @;", Location{Line: 1, Column: 9})
	want := "  --> line 1, column 9\n" +
		" 1 | let y = @;\n" +
		"   |         ^"
	if got != want {
		t.Fatalf("unexpected code frame:\n%s", got)
	}
}

func TestFormatCodeFrameOutOfRange(t *testing.T) {
	if got := FormatCodeFrame("one line", Location{Line: 5, Column: 1}); got != "" {
		t.Fatalf("expected empty frame, got %q", got)
	}
	if got := FormatCodeFrame("", Location{Line: 1, Column: 1}); got != "" {
		t.Fatalf("expected empty frame, got %q", got)
	}
}

func TestFormatCodeFrameClampsColumn(t *testing.T) {
	got := FormatCodeFrame("ab", Location{Line: 1, Column: 99})
	want := "  --> line 1, column 3\n" +
		" 1 | ab\n" +
		"   |   ^"
	if got != want {
		t.Fatalf("unexpected code frame:\n%s", got)
	}
}

func TestFormatCodeFrameTrimsCarriageReturn(t *testing.T) {
	got := FormatCodeFrame("let y = @;\r\n", Location{Line: 1, Column: 9})
	want := "  --> line 1, column 9\n" +
		" 1 | let y = @;\n" +
		"   |         ^"
	if got != want {
		t.Fatalf("unexpected code frame:\n%s", got)
	}
}
