package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/RumbleDiscovery/bustache"
)

type specFixture struct {
	Name     string            `json:"name"`
	Data     any               `json:"data"`
	Expected string            `json:"expected"`
	Template string            `json:"template"`
	Desc     string            `json:"desc"`
	Partials map[string]string `json:"partials"`
}

type specSuite struct {
	Tests []specFixture `json:"tests"`
}

var specCmd = &cobra.Command{
	Use:   "spec directory",
	Short: "run *.json spec-suite fixtures (mustache-spec shape) against the engine",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := filepath.Glob(filepath.Join(args[0], "*.json"))
		if err != nil {
			return err
		}
		sort.Strings(paths)
		if len(paths) == 0 {
			return fmt.Errorf("no *.json fixtures found in %s", args[0])
		}

		passed, failed := 0, 0
		for _, path := range paths {
			b, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			var suite specSuite
			if err := json.Unmarshal(b, &suite); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			file := filepath.Base(path)
			for _, test := range suite.Tests {
				ok, msg := runFixture(&test)
				if ok {
					passed++
				} else {
					failed++
					fmt.Printf("FAIL [%s] %s: %s\n", file, test.Name, msg)
				}
			}
		}

		fmt.Printf("%d passed, %d failed\n", passed, failed)
		if failed > 0 {
			return fmt.Errorf("%d fixture(s) failed", failed)
		}
		return nil
	},
}

func runFixture(test *specFixture) (bool, string) {
	var opts []bustache.RenderOption
	if len(test.Partials) > 0 {
		ctx := bustache.MapContext{}
		for name, src := range test.Partials {
			f, err := bustache.Compile(src)
			if err != nil {
				return false, fmt.Sprintf("compiling partial %q: %s", name, err)
			}
			ctx[name] = f
		}
		opts = append(opts, bustache.WithContext(ctx))
	}

	format, err := bustache.Compile(test.Template)
	if err != nil {
		return false, err.Error()
	}
	out, err := bustache.ToString(format, test.Data, opts...)
	if err != nil {
		return false, err.Error()
	}
	if out != test.Expected {
		return false, fmt.Sprintf("expected %q, got %q", test.Expected, out)
	}
	return true, ""
}
