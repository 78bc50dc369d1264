package main

import (
	"io"
	"os"

	"gopkg.in/yaml.v2"
)

func loadYAML(path string) (any, error) {
	var r io.Reader
	if path == "" || path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var data any
	if err := yaml.Unmarshal(b, &data); err != nil {
		return nil, err
	}
	return data, nil
}

// mergeOverride shallow-merges override onto base, for the top-level
// `--override` flag (both must unmarshal to maps).
func mergeOverride(base, override any) any {
	baseMap, ok := base.(map[interface{}]interface{})
	if !ok {
		return override
	}
	overrideMap, ok := override.(map[interface{}]interface{})
	if !ok {
		return override
	}
	for k, v := range overrideMap {
		baseMap[k] = v
	}
	return baseMap
}
