package bustache

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tailscale/hujson"
)

// extspecCase describes one fixture exercising a language extension beyond
// the classic mustache-spec suite (filter/loop sections, inheritance,
// dynamic partials, format specs, section aliases): none of these are
// covered by the public spec, so they get a small hand-written suite here,
// grounded in the same table-driven shape as the rest of this package's
// tests.
type extspecCase struct {
	name     string
	template string
	partials map[string]string
	data     string // HuJSON (JSON-with-comments), decoded into a generic any
	want     string
}

var extspecCases = []extspecCase{
	{
		name:     "filter section does not push a scope frame",
		template: "{{?count}}{{count}} item(s){{/count}}",
		data:     `{"count": 2}`,
		want:     "2 item(s)",
	},
	{
		name:     "filter section is skipped when falsy",
		template: "[{{?count}}shown{{/count}}]",
		data:     `{"count": 0}`,
		want:     "[]",
	},
	{
		name:     "loop section coerces a scalar into a single iteration",
		template: "{{*tag}}<{{.}}>{{/tag}}",
		data:     `{"tag": "go"}`,
		want:     "<go>",
	},
	{
		name:     "loop section iterates a real list like a section would",
		template: "{{*tags}}<{{.}}>{{/tags}}",
		data:     `{"tags": ["a", "b"]}`,
		want:     "<a><b>",
	},
	{
		name:     "section alias resolves a different key than its closing name",
		template: "{{#person:author}}{{name}}{{/person}}",
		data:     `{"author": {"name": "Ada"}}`,
		want:     "Ada",
	},
	{
		name:     "format spec applies to a resolved number",
		template: "${{price:.2f}}",
		data:     `{"price": 4.5}`,
		want:     "$4.50",
	},
	{
		name:     "dynamic partial name is resolved from the data model",
		template: "{{>*which}}",
		partials: map[string]string{"plain": "plain text"},
		data:     `{"which": "plain"}`,
		want:     "plain text",
	},
	{
		name:     "inheritance block keeps the default when no override is given",
		template: "{{<layout}}{{/layout}}",
		partials: map[string]string{"layout": "[{{$slot}}fallback{{/slot}}]"},
		data:     `{}`,
		want:     "[fallback]",
	},
	{
		name:     "inheritance block uses the page's override",
		template: "{{<layout}}{{$slot}}overridden{{/slot}}{{/layout}}",
		partials: map[string]string{"layout": "[{{$slot}}fallback{{/slot}}]"},
		data:     `{}`,
		want:     "[overridden]",
	},
}

func TestExtensionFixtures(t *testing.T) {
	for _, c := range extspecCases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			raw, err := hujson.Standardize([]byte(c.data))
			if !assert.NoError(t, err) {
				return
			}
			data, err := decodeJSONAny(raw)
			if !assert.NoError(t, err) {
				return
			}

			var opts []RenderOption
			if len(c.partials) > 0 {
				ctx := MapContext{}
				for name, src := range c.partials {
					f, err := Compile(src)
					if !assert.NoError(t, err) {
						return
					}
					ctx[name] = f
				}
				opts = append(opts, WithContext(ctx))
			}

			f, err := Compile(c.template)
			if !assert.NoError(t, err) {
				return
			}
			got, err := ToString(f, data, opts...)
			if !assert.NoError(t, err) {
				return
			}
			assert.Equal(t, c.want, got)
		})
	}
}

func decodeJSONAny(b []byte) (any, error) {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, err
	}
	return v, nil
}
