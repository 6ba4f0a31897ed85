package manifest

import (
	"fmt"

	"github.com/ohler55/ojg/jp"

	"github.com/pbxplan/pbxplan/api"
)

// Match is one JSONPath result over the plan tree.
type Match struct {
	value any
}

// Value returns the raw matched value.
func (m Match) Value() any {
	return m.value
}

// Entry converts a descriptor-shaped match (a map with path, kind, and
// group fields) back into an api.FileEntry. ok is false for projections
// and other partial values.
func (m Match) Entry() (api.FileEntry, bool) {
	obj, ok := m.value.(map[string]any)
	if !ok {
		return api.FileEntry{}, false
	}
	path, ok := obj["path"].(string)
	if !ok {
		return api.FileEntry{}, false
	}
	kind, ok := obj["kind"].(string)
	if !ok {
		return api.FileEntry{}, false
	}
	rawGroup, ok := obj["group"].([]any)
	if !ok {
		return api.FileEntry{}, false
	}
	group := make([]string, 0, len(rawGroup))
	for _, g := range rawGroup {
		s, ok := g.(string)
		if !ok {
			return api.FileEntry{}, false
		}
		group = append(group, s)
	}
	return api.FileEntry{Path: path, Kind: kind, Group: group}, true
}

// Select applies a JSONPath expression to the descriptor list. The list
// is exposed as a JSON array of {path, kind, group} objects, so
// "$[?(@.kind == 'sourcecode.swift')]" filters descriptors and
// "$[*].path" projects paths. Match order follows list order.
func Select(entries []api.FileEntry, selector string) ([]Match, error) {
	x, err := jp.ParseString(selector)
	if err != nil {
		return nil, fmt.Errorf("invalid jsonpath '%s': %w", selector, err)
	}

	results := x.Get(planTree(entries))

	matches := make([]Match, len(results))
	for i, r := range results {
		matches[i] = Match{value: r}
	}
	return matches, nil
}

// planTree converts the descriptor list into the generic JSON form the
// jp package evaluates against.
func planTree(entries []api.FileEntry) []any {
	tree := make([]any, len(entries))
	for i, e := range entries {
		group := make([]any, len(e.Group))
		for j, g := range e.Group {
			group[j] = g
		}
		tree[i] = map[string]any{
			"path":  e.Path,
			"kind":  e.Kind,
			"group": group,
		}
	}
	return tree
}
