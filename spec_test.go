package bustache

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// specFixture mirrors the mustache-spec JSON fixture shape (the public
// spec suite, not vendored here). Check it out at spec/ so that its
// fixtures sit in spec/specs (or point BUSTACHE_SPEC_DIR at a directory
// holding its *.json files) to exercise it; otherwise the test is skipped
// rather than failed.
type specFixture struct {
	Name     string            `json:"name"`
	Data     any               `json:"data"`
	Expected string            `json:"expected"`
	Template string            `json:"template"`
	Partials map[string]string `json:"partials"`
}

type specSuite struct {
	Tests []specFixture `json:"tests"`
}

func TestMustacheSpecSuite(t *testing.T) {
	dir := os.Getenv("BUSTACHE_SPEC_DIR")
	if dir == "" {
		dir = filepath.Join("spec", "specs")
	}
	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil || len(paths) == 0 {
		t.Skipf("no mustache-spec fixtures found under %s; skipping", dir)
	}

	for _, path := range paths {
		b, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		var suite specSuite
		if err := json.Unmarshal(b, &suite); err != nil {
			t.Fatalf("%s: %v", path, err)
		}
		file := filepath.Base(path)
		for _, test := range suite.Tests {
			test := test
			t.Run(file+"/"+test.Name, func(t *testing.T) {
				var opts []RenderOption
				if len(test.Partials) > 0 {
					ctx := MapContext{}
					for name, src := range test.Partials {
						f, err := Compile(src)
						if err != nil {
							t.Fatalf("compiling partial %q: %v", name, err)
						}
						ctx[name] = f
					}
					opts = append(opts, WithContext(ctx))
				}
				f, err := Compile(test.Template)
				if err != nil {
					t.Fatalf("compiling template: %v", err)
				}
				got, err := ToString(f, test.Data, opts...)
				if err != nil {
					t.Fatalf("rendering: %v", err)
				}
				if got != test.Expected {
					t.Errorf("got %q, want %q", got, test.Expected)
				}
			})
		}
	}
}
