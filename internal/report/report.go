// Package report renders the registration checklist.
//
// A report lists every descriptor that still needs to be registered
// with the Xcode project, then explains how to register them. Nothing
// here touches the project file; registration stays with Xcode and the
// tools named in the help text.
package report

import (
	"io"
	"strings"

	"github.com/pbxplan/pbxplan/api"
	"github.com/pbxplan/pbxplan/internal/manifest"
)

// Header is the first line of every report.
const Header = "Files that need to be added to Xcode project:"

// ruleWidth is the width of the two separator rules.
const ruleWidth = 60

// helpText closes every report. It is deliberately constant: the
// registration options do not depend on which descriptors are pending.
const helpText = `IMPORTANT: Xcode project files should be modified by Xcode,
not manually edited. Options:

1. EASIEST: Open Xcode and drag files into the project
   - Open TaskSnap.xcodeproj in Xcode
   - Drag new files into appropriate groups

2. Use xcodeproj gem (if installed):
   gem install xcodeproj
   ruby -rxcodeproj -e '...'

3. Regenerate project with tuist/xcodegen

Recommended: Use Option 1 (drag in Xcode)
`

// HelpText returns the registration help that closes every report.
func HelpText() string { return helpText }

// Blocks renders only the per-descriptor blocks, one three-line block
// plus a separating blank line each, without header or help text.
func Blocks(entries []api.FileEntry) string {
	var b strings.Builder
	for _, e := range entries {
		writeBlock(&b, e)
	}
	return b.String()
}

// Render writes the checklist for entries to w: the header, one
// three-line block per descriptor in list order, and the help text.
// The output is a pure function of entries, so rendering the same
// list twice produces identical bytes.
func Render(w io.Writer, entries []api.FileEntry) error {
	var b strings.Builder
	rule := strings.Repeat("=", ruleWidth)

	b.WriteString(Header)
	b.WriteByte('\n')
	b.WriteString(rule)
	b.WriteByte('\n')

	for _, e := range entries {
		writeBlock(&b, e)
	}

	b.WriteByte('\n')
	b.WriteString(rule)
	b.WriteByte('\n')
	b.WriteByte('\n')
	b.WriteString(helpText)

	_, err := io.WriteString(w, b.String())
	return err
}

// writeBlock appends the three-line block for one descriptor plus the
// blank line that separates blocks.
func writeBlock(b *strings.Builder, e api.FileEntry) {
	b.WriteString("Would add: ")
	b.WriteString(e.Path)
	b.WriteByte('\n')
	b.WriteString("  Type: ")
	b.WriteString(e.Kind)
	b.WriteByte('\n')
	b.WriteString("  Group: ")
	b.WriteString(manifest.GroupPath(e.Group))
	b.WriteByte('\n')
	b.WriteByte('\n')
}
