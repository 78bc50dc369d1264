package bustache

import (
	"strings"
	"testing"
)

func TestLazyValueAsBareVariable(t *testing.T) {
	f := mustCompile(t, "{{greeting}}")
	data := map[string]any{
		"greeting": LazyValue(func(view *View) (any, error) {
			if view != nil {
				t.Fatal("bare-variable invocation should receive a nil view")
			}
			return "hi", nil
		}),
	}
	got, err := ToString(f, data)
	if err != nil {
		t.Fatal(err)
	}
	if got != "hi" {
		t.Errorf("got %q, want %q", got, "hi")
	}
}

func TestLazyValueAsSectionSeesBodyText(t *testing.T) {
	var seen string
	data := map[string]any{
		"wrap": LazyValue(func(view *View) (any, error) {
			seen = view.Text()
			return true, nil
		}),
	}
	f := mustCompile(t, "{{#wrap}}inner{{/wrap}}")
	got, err := ToString(f, data)
	if err != nil {
		t.Fatal(err)
	}
	if got != "inner" {
		t.Errorf("got %q, want %q", got, "inner")
	}
	if seen != "inner" {
		t.Errorf("view.Text() = %q, want %q", seen, "inner")
	}
}

func TestLazyFormatRendersCompiledResult(t *testing.T) {
	data := map[string]any{
		"shout": LazyFormat(func(view *View) (*Format, error) {
			return Compile(strings.ToUpper(view.Text()))
		}),
	}
	f := mustCompile(t, "{{#shout}}ada{{/shout}}")
	got, err := ToString(f, data)
	if err != nil {
		t.Fatal(err)
	}
	if got != "ADA" {
		t.Errorf("got %q, want %q", got, "ADA")
	}
}

func TestLazyFormatNilResultRendersNothing(t *testing.T) {
	data := map[string]any{
		"empty": LazyFormat(func(view *View) (*Format, error) { return nil, nil }),
	}
	f := mustCompile(t, "[{{#empty}}x{{/empty}}]")
	got, err := ToString(f, data)
	if err != nil {
		t.Fatal(err)
	}
	if got != "[]" {
		t.Errorf("got %q, want %q", got, "[]")
	}
}
