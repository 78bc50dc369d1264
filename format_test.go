package bustache

import (
	"strings"
	"testing"
)

func TestCompileAndText(t *testing.T) {
	f, err := Compile("hi {{name}}", WithCopyText(true))
	if err != nil {
		t.Fatal(err)
	}
	if string(f.Text()) != "hi {{name}}" {
		t.Errorf("Text() = %q, want the original source", f.Text())
	}
}

func TestCompileWithoutCopyTextHasNilText(t *testing.T) {
	f, err := Compile("hi {{name}}")
	if err != nil {
		t.Fatal(err)
	}
	if f.Text() != nil {
		t.Errorf("Text() = %q, want nil without WithCopyText", f.Text())
	}
}

func TestCompileSyntaxErrorIsFormatError(t *testing.T) {
	_, err := Compile("{{#a}}unclosed")
	ferr, ok := err.(*FormatError)
	if !ok {
		t.Fatalf("err is %T, want *FormatError", err)
	}
	if ferr.Code != ErrSection {
		t.Errorf("Code = %v, want ErrSection", ferr.Code)
	}
}

func TestCompileReaderFromString(t *testing.T) {
	f, err := CompileReader(strings.NewReader("{{x}}"))
	if err != nil {
		t.Fatal(err)
	}
	got, err := ToString(f, map[string]any{"x": "y"})
	if err != nil {
		t.Fatal(err)
	}
	if got != "y" {
		t.Errorf("got %q, want %q", got, "y")
	}
}

func TestFormatEmpty(t *testing.T) {
	f, err := Compile("")
	if err != nil {
		t.Fatal(err)
	}
	if !f.Empty() {
		t.Error("Empty() on a blank template should be true")
	}
	f2, err := Compile("x")
	if err != nil {
		t.Fatal(err)
	}
	if f2.Empty() {
		t.Error("Empty() on a non-blank template should be false")
	}
}
