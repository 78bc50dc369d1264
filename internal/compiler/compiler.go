// Package compiler implements the hand-written, single-pass
// recursive-descent template compiler: it reads source bytes and emits
// content refs into an ast.Arena, with no backtracking across tags.
package compiler

import (
	"strings"

	"github.com/RumbleDiscovery/bustache/internal/ast"
)

// standaloneEligible lists the tag sigils a standalone line may consist of.
// Variable tags (the default case, '&', and '{') are deliberately absent:
// a line with only a variable on it still emits that variable's output.
const standaloneEligible = "#^?*$/<>=!"

// Options controls optional compiler behavior.
type Options struct {
	// CopyText consolidates all text spans into one contiguous buffer
	// owned by the resulting Document, instead of letting them alias the
	// source string the compiler was given.
	CopyText bool
}

// Compile parses source into a Document using the default `{{` / `}}`
// delimiters. It returns a *FormatError on any syntax problem.
func Compile(source string, opts Options) (*ast.Document, error) {
	p := &parser{data: source, open: "{{", close: "}}", arena: ast.NewArena()}
	root, err := p.parseList("", true)
	if err != nil {
		return nil, err
	}
	doc := &ast.Document{Arena: p.arena, Root: root}
	if opts.CopyText {
		doc.Arena.CopyText()
	}
	return doc, nil
}

// parser carries the compiler's mutable state: the byte cursor and the
// current (possibly changed by `{{=...=}}`) delimiter pair.
type parser struct {
	data  string
	open  string
	close string
	pos   int
	arena *ast.Arena
}

// textChunk is the result of scanning for the next tag: the text run that
// precedes it, plus (when the run since the last newline was pure
// whitespace) the trailing whitespace padding split out separately so a
// standalone tag can drop it.
type textChunk struct {
	text          string
	padding       string
	mayStandalone bool
}

// readText scans from p.pos to the next occurrence of the open delimiter
// (or EOF), returning the intervening text split into text+padding per
// spec.md's standalone-line rule.
func (p *parser) readText() (textChunk, bool) {
	start := p.pos
	rel := strings.Index(p.data[start:], p.open)
	if rel < 0 {
		p.pos = len(p.data)
		return textChunk{text: p.data[start:]}, true
	}
	idx := start + rel

	i := idx
	for i > start && (p.data[i-1] == ' ' || p.data[i-1] == '\t') {
		i--
	}
	mayStandalone := i == 0 || p.data[i-1] == '\n'

	p.pos = idx + len(p.open)
	if mayStandalone {
		return textChunk{text: p.data[start:i], padding: p.data[i:idx], mayStandalone: true}, false
	}
	return textChunk{text: p.data[start:idx]}, false
}

// readTag reads from p.pos (just past the open delimiter) through the
// matching close delimiter, returning the trimmed tag content. tagPos is
// the byte offset the tag content starts at, used for error reporting.
func (p *parser) readTag() (tag string, tagPos int, err error) {
	start := p.pos
	if start < len(p.data) && p.data[start] == '{' {
		if rel := strings.Index(p.data[start:], "}"+p.close); rel >= 0 {
			idx := start + rel
			content := p.data[start : idx+1]
			p.pos = idx + 1 + len(p.close)
			return strings.TrimSpace(content), start, nil
		}
		if rel := strings.Index(p.data[start:], p.close); rel >= 0 {
			return "", start, newError(ErrBadDelim, start, "unbalanced braces in unescaped variable tag")
		}
		return "", start, newError(ErrDelim, start, "unmatched open tag")
	}

	rel := strings.Index(p.data[start:], p.close)
	if rel < 0 {
		return "", start, newError(ErrDelim, start, "unmatched open tag")
	}
	idx := start + rel
	p.pos = idx + len(p.close)
	return strings.TrimSpace(p.data[start:idx]), start, nil
}

// resolveStandalone determines whether the just-read tag, together with
// the text that preceded it, forms a standalone line, and if so consumes
// the trailing whitespace and newline from the input.
func (p *parser) resolveStandalone(tag string, mayStandalone bool) bool {
	if !mayStandalone || tag == "" || !strings.ContainsRune(standaloneEligible, rune(tag[0])) {
		return false
	}
	i := p.pos
	for i < len(p.data) && (p.data[i] == ' ' || p.data[i] == '\t') {
		i++
	}
	switch {
	case i == len(p.data):
		p.pos = i
		return true
	case p.data[i] == '\n':
		p.pos = i + 1
		return true
	case i+1 < len(p.data) && p.data[i] == '\r' && p.data[i+1] == '\n':
		p.pos = i + 2
		return true
	default:
		return false
	}
}

// parseList parses tags until a `/closingName` tag is seen (or, when
// isRoot, until EOF) and returns the accumulated content list.
func (p *parser) parseList(closingName string, isRoot bool) (ast.List, error) {
	var list ast.List
	for {
		chunk, eof := p.readText()
		if eof {
			if !isRoot {
				return nil, newError(ErrSection, p.pos, "section %q has no closing tag", closingName)
			}
			if chunk.text != "" {
				list = append(list, p.arena.AddText(chunk.text))
			}
			return list, nil
		}

		tagPos := p.pos
		tag, _, err := p.readTag()
		if err != nil {
			return nil, err
		}
		if tag == "" {
			return nil, newError(ErrBadKey, tagPos, "empty tag")
		}

		standalone := p.resolveStandalone(tag, chunk.mayStandalone)
		text := chunk.text
		if !standalone {
			text += chunk.padding
		}
		if text != "" {
			list = append(list, p.arena.AddText(text))
		}

		switch sigil := tag[0]; sigil {
		case '!':
			// comment: nothing emitted

		case '=':
			if err := p.applySetDelim(tag, tagPos); err != nil {
				return nil, err
			}

		case '#', '^', '?', '*', '$':
			key := strings.TrimSpace(tag[1:])
			if key == "" {
				return nil, newError(ErrBadKey, tagPos, "empty section name")
			}
			name, lookup := splitBlockAlias(key)
			body, err := p.parseList(name, false)
			if err != nil {
				return nil, err
			}
			list = append(list, p.arena.AddBlock(blockKindFor(sigil), ast.Block{
				Name: name, LookupKey: lookup, Contents: body,
			}))

		case '/':
			name := strings.TrimSpace(tag[1:])
			if isRoot || name != closingName {
				return nil, newError(ErrSection, tagPos, "interleaved closing tag %q", name)
			}
			return list, nil

		case '>':
			key := strings.TrimSpace(tag[1:])
			if key == "" {
				return nil, newError(ErrBadKey, tagPos, "empty partial name")
			}
			dyn, name := splitDynamic(key)
			indent := ""
			if standalone {
				indent = chunk.padding
			}
			list = append(list, p.arena.AddPartial(ast.Partial{Key: name, Dynamic: dyn, Indent: indent}))

		case '<':
			key := strings.TrimSpace(tag[1:])
			if key == "" {
				return nil, newError(ErrBadKey, tagPos, "empty partial name")
			}
			dyn, name := splitDynamic(key)
			overriders, err := p.parseInheritanceBody(key)
			if err != nil {
				return nil, err
			}
			list = append(list, p.arena.AddPartial(ast.Partial{
				Key: name, Dynamic: dyn, Overriders: overriders,
			}))

		case '&':
			key := strings.TrimSpace(tag[1:])
			if key == "" {
				return nil, newError(ErrBadKey, tagPos, "empty variable name")
			}
			name, spec := splitVarSpec(key)
			list = append(list, p.arena.AddVariable(ast.KindVarRaw, ast.Variable{Name: name, Spec: spec}))

		case '{':
			if len(tag) < 2 || tag[len(tag)-1] != '}' {
				return nil, newError(ErrBadDelim, tagPos, "unbalanced braces in unescaped variable tag")
			}
			key := strings.TrimSpace(tag[1 : len(tag)-1])
			if key == "" {
				return nil, newError(ErrBadKey, tagPos, "empty variable name")
			}
			name, spec := splitVarSpec(key)
			list = append(list, p.arena.AddVariable(ast.KindVarRaw, ast.Variable{Name: name, Spec: spec}))

		default:
			name, spec := splitVarSpec(tag)
			list = append(list, p.arena.AddVariable(ast.KindVarEscaped, ast.Variable{Name: name, Spec: spec}))
		}
	}
}

// parseInheritanceBody parses the body of a `{{<name}}...{{/name}}`
// inheritance parent. Only `{{$block}}...{{/block}}` tags contribute: they
// become override entries. Every other top-level tag (and all text) is
// parsed only enough to stay correctly positioned, then discarded, per
// spec.md §4.1.4.
func (p *parser) parseInheritanceBody(closingName string) (map[string]ast.List, error) {
	overriders := map[string]ast.List{}
	for {
		chunk, eof := p.readText()
		if eof {
			return nil, newError(ErrSection, p.pos, "inheritance parent %q has no closing tag", closingName)
		}
		tagPos := p.pos
		tag, _, err := p.readTag()
		if err != nil {
			return nil, err
		}
		if tag == "" {
			return nil, newError(ErrBadKey, tagPos, "empty tag")
		}
		p.resolveStandalone(tag, chunk.mayStandalone)

		switch sigil := tag[0]; sigil {
		case '$':
			key := strings.TrimSpace(tag[1:])
			if key == "" {
				return nil, newError(ErrBadKey, tagPos, "empty block name")
			}
			name, _ := splitBlockAlias(key)
			body, err := p.parseList(name, false)
			if err != nil {
				return nil, err
			}
			overriders[name] = body

		case '/':
			name := strings.TrimSpace(tag[1:])
			if name != closingName {
				return nil, newError(ErrSection, tagPos, "interleaved closing tag %q", name)
			}
			return overriders, nil

		case '!':
			// comment: ignore

		case '=':
			if err := p.applySetDelim(tag, tagPos); err != nil {
				return nil, err
			}

		case '#', '^', '?', '*':
			key := strings.TrimSpace(tag[1:])
			if key == "" {
				return nil, newError(ErrBadKey, tagPos, "empty section name")
			}
			name, _ := splitBlockAlias(key)
			if _, err := p.parseList(name, false); err != nil {
				return nil, err
			}

		case '<':
			key := strings.TrimSpace(tag[1:])
			if key == "" {
				return nil, newError(ErrBadKey, tagPos, "empty partial name")
			}
			if _, err := p.parseInheritanceBody(key); err != nil {
				return nil, err
			}

		default:
			// bare variable / partial / raw-variable tag: a leaf, nothing
			// further to consume.
		}
	}
}

func (p *parser) applySetDelim(tag string, pos int) error {
	if len(tag) < 2 || tag[len(tag)-1] != '=' {
		return newError(ErrSetDelim, pos, "malformed set-delimiter tag")
	}
	inner := strings.TrimSpace(tag[1 : len(tag)-1])
	parts := strings.Fields(inner)
	if len(parts) != 2 {
		return newError(ErrSetDelim, pos, "set-delimiter tag must name exactly two delimiters")
	}
	p.open, p.close = parts[0], parts[1]
	return nil
}

func blockKindFor(sigil byte) ast.RefKind {
	switch sigil {
	case '#':
		return ast.KindSection
	case '^':
		return ast.KindInversion
	case '?':
		return ast.KindFilter
	case '*':
		return ast.KindLoop
	case '$':
		return ast.KindInheritance
	default:
		panic("compiler: unreachable sigil " + string(sigil))
	}
}

// splitVarSpec splits a variable key at the first ':' into name and format
// spec; with no ':' the spec is empty.
func splitVarSpec(s string) (name, spec string) {
	if i := strings.IndexByte(s, ':'); i >= 0 {
		return s[:i], s[i+1:]
	}
	return s, ""
}

// splitBlockAlias splits a block key at the first ':' into the section
// name (used to match the closing tag) and the lookup key (used to
// resolve the value); with no ':' both are the same.
func splitBlockAlias(s string) (name, lookup string) {
	if i := strings.IndexByte(s, ':'); i >= 0 {
		return s[:i], s[i+1:]
	}
	return s, s
}

// splitDynamic recognizes the `*expr` dynamic-partial-name extension.
func splitDynamic(key string) (dynamic bool, name string) {
	if len(key) > 1 && key[0] == '*' {
		return true, key[1:]
	}
	return false, key
}
