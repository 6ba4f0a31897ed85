// Package grouptree renders the logical group hierarchy of a
// descriptor list as a text tree, with files as leaves.
package grouptree

import (
	"path"
	"sort"
	"strings"

	"github.com/pbxplan/pbxplan/api"
)

type node struct {
	groups map[string]*node
	files  []string
}

func newNode() *node {
	return &node{groups: make(map[string]*node)}
}

func (n *node) child(name string) *node {
	c, ok := n.groups[name]
	if !ok {
		c = newNode()
		n.groups[name] = c
	}
	return c
}

func (n *node) sortedGroups() []string {
	names := make([]string, 0, len(n.groups))
	for name := range n.groups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render returns the group tree for entries. Sub-groups sort
// alphabetically; files keep list order beneath their group.
// Top-level groups print flush left, ungrouped files after them.
// An empty list renders as "".
func Render(entries []api.FileEntry) string {
	if len(entries) == 0 {
		return ""
	}

	root := newNode()
	for _, e := range entries {
		n := root
		for _, g := range e.Group {
			if g == "" {
				continue
			}
			n = n.child(g)
		}
		n.files = append(n.files, path.Base(e.Path))
	}

	var b strings.Builder
	for _, name := range root.sortedGroups() {
		b.WriteString(name)
		b.WriteByte('\n')
		root.groups[name].render(&b, "")
	}
	for _, f := range root.files {
		b.WriteString(f)
		b.WriteByte('\n')
	}
	return b.String()
}

// render walks children groups-first, files after, with box-drawing
// connectors. prefix carries the continuation columns of the
// ancestors.
func (n *node) render(b *strings.Builder, prefix string) {
	groups := n.sortedGroups()
	total := len(groups) + len(n.files)

	for i, name := range groups {
		last := i == total-1
		b.WriteString(prefix)
		b.WriteString(connector(last))
		b.WriteString(name)
		b.WriteByte('\n')
		n.groups[name].render(b, childPrefix(prefix, last))
	}
	for j, f := range n.files {
		last := len(groups)+j == total-1
		b.WriteString(prefix)
		b.WriteString(connector(last))
		b.WriteString(f)
		b.WriteByte('\n')
	}
}

func connector(last bool) string {
	if last {
		return "└── "
	}
	return "├── "
}

func childPrefix(prefix string, last bool) string {
	if last {
		return prefix + "    "
	}
	return prefix + "│   "
}
