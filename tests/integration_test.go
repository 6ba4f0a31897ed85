package tests

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbxplan/pbxplan/api"
	"github.com/pbxplan/pbxplan/internal/grouptree"
	"github.com/pbxplan/pbxplan/internal/manifest"
	"github.com/pbxplan/pbxplan/internal/query"
	"github.com/pbxplan/pbxplan/internal/report"
	"github.com/pbxplan/pbxplan/internal/verify"
)

// testFixture bundles the shared state for integration tests: a
// manifest on disk, the descriptor list loaded from it, and an
// in-memory project tree holding some of the listed files.
type testFixture struct {
	manifestPath string
	entries      []api.FileEntry
	projectFS    billy.Filesystem
}

const testManifestYAML = `files:
  - path: Sample/Views/RootView.swift
    kind: sourcecode.swift
    group: [Sample, Views]
  - path: Sample/Views/DetailView.swift
    kind: sourcecode.swift
    group: [Sample, Views]
  - path: Sample/Models/Item.swift
  - path: Sample/Resources/Assets.xcassets
    kind: folder.assetcatalog
    group: [Sample, Resources]
  - path: Sample/Info.plist
    kind: text.plist.xml
    group: [Sample]
  - path: Sample/Models/Broken.swift
    kind: sourcecode.swift
    group: [Sample, Models]
`

const cleanSwift = `import SwiftUI

struct RootView: View {
    var body: some View {
        Text("root")
    }
}
`

const brokenSwift = `struct Broken {
    let id: Int
`

// setup writes the manifest to a temp dir, loads it, and builds an
// in-memory project tree where DetailView.swift and Assets.xcassets
// are deliberately absent and Broken.swift has a syntax error.
func setup(t *testing.T) *testFixture {
	t.Helper()

	dir := t.TempDir()
	manifestPath := filepath.Join(dir, "files.yaml")
	require.NoError(t, os.WriteFile(manifestPath, []byte(testManifestYAML), 0o644))

	entries, err := manifest.Load(manifestPath)
	require.NoError(t, err, "manifest should load")
	require.Len(t, entries, 6)

	fs := memfs.New()
	for name, content := range map[string]string{
		"Sample/Views/RootView.swift": cleanSwift,
		"Sample/Models/Item.swift":    "struct Item {}\n",
		"Sample/Models/Broken.swift":  brokenSwift,
		"Sample/Info.plist":           "<plist/>",
	} {
		require.NoError(t, util.WriteFile(fs, name, []byte(content), 0o644))
	}

	return &testFixture{
		manifestPath: manifestPath,
		entries:      entries,
		projectFS:    fs,
	}
}

func TestIntegration_ManifestConveniences(t *testing.T) {
	fix := setup(t)

	// Item.swift carried no kind or group in the manifest.
	item := fix.entries[2]
	assert.Equal(t, "Sample/Models/Item.swift", item.Path)
	assert.Equal(t, "sourcecode.swift", item.Kind, "kind inferred from extension")
	assert.Equal(t, []string{"Sample", "Models"}, item.Group, "group derived from directories")
}

func TestIntegration_ManifestToReport(t *testing.T) {
	fix := setup(t)

	var buf bytes.Buffer
	require.NoError(t, report.Render(&buf, fix.entries))
	out := buf.String()

	assert.Equal(t, 6, strings.Count(out, "Would add: "))
	assert.Contains(t, out, "Would add: Sample/Views/RootView.swift\n  Type: sourcecode.swift\n  Group: Sample/Views\n")
	assert.Contains(t, out, "Would add: Sample/Models/Item.swift\n  Type: sourcecode.swift\n  Group: Sample/Models\n")
	assert.Less(t,
		strings.Index(out, "Would add: Sample/Views/RootView.swift"),
		strings.Index(out, "Would add: Sample/Models/Broken.swift"),
		"blocks keep manifest order")
	assert.True(t, strings.HasSuffix(out, "Recommended: Use Option 1 (drag in Xcode)\n"),
		"help text closes the report even for custom manifests")
}

func TestIntegration_FormatsAgree(t *testing.T) {
	fix := setup(t)
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "files.json")
	jsonDoc := `{"files": [
  {"path": "Sample/Views/RootView.swift", "kind": "sourcecode.swift", "group": ["Sample", "Views"]},
  {"path": "Sample/Views/DetailView.swift", "kind": "sourcecode.swift", "group": ["Sample", "Views"]},
  {"path": "Sample/Models/Item.swift"},
  {"path": "Sample/Resources/Assets.xcassets", "kind": "folder.assetcatalog", "group": ["Sample", "Resources"]},
  {"path": "Sample/Info.plist", "kind": "text.plist.xml", "group": ["Sample"]},
  {"path": "Sample/Models/Broken.swift", "kind": "sourcecode.swift", "group": ["Sample", "Models"]}
]}`
	require.NoError(t, os.WriteFile(jsonPath, []byte(jsonDoc), 0o644))

	hclPath := filepath.Join(dir, "files.hcl")
	hclDoc := `file "Sample/Views/RootView.swift" {
  kind  = "sourcecode.swift"
  group = ["Sample", "Views"]
}
file "Sample/Views/DetailView.swift" {
  kind  = "sourcecode.swift"
  group = ["Sample", "Views"]
}
file "Sample/Models/Item.swift" {}
file "Sample/Resources/Assets.xcassets" {
  kind  = "folder.assetcatalog"
  group = ["Sample", "Resources"]
}
file "Sample/Info.plist" {
  kind  = "text.plist.xml"
  group = ["Sample"]
}
file "Sample/Models/Broken.swift" {
  kind  = "sourcecode.swift"
  group = ["Sample", "Models"]
}
`
	require.NoError(t, os.WriteFile(hclPath, []byte(hclDoc), 0o644))

	fromJSON, err := manifest.Load(jsonPath)
	require.NoError(t, err, "json manifest should load")
	fromHCL, err := manifest.Load(hclPath)
	require.NoError(t, err, "hcl manifest should load")

	assert.Equal(t, fix.entries, fromJSON, "yaml and json manifests load identically")
	assert.Equal(t, fix.entries, fromHCL, "yaml and hcl manifests load identically")

	var yamlOut, hclOut bytes.Buffer
	require.NoError(t, report.Render(&yamlOut, fix.entries))
	require.NoError(t, report.Render(&hclOut, fromHCL))
	assert.Equal(t, yamlOut.String(), hclOut.String(), "reports are byte-identical across formats")
}

func TestIntegration_CheckAgainstProjectTree(t *testing.T) {
	fix := setup(t)

	checker := verify.New(fix.projectFS)
	results, err := checker.Run(context.Background(), fix.entries)
	require.NoError(t, err)
	require.Len(t, results, 6)

	byPath := map[string]verify.State{}
	for _, r := range results {
		byPath[r.Entry.Path] = r.State
	}
	assert.Equal(t, verify.StateOK, byPath["Sample/Views/RootView.swift"])
	assert.Equal(t, verify.StateMissing, byPath["Sample/Views/DetailView.swift"])
	assert.Equal(t, verify.StateMissing, byPath["Sample/Resources/Assets.xcassets"])

	sum := verify.Summarize(results)
	assert.Equal(t, 4, sum.Present)
	assert.Equal(t, 2, sum.Missing)
}

func TestIntegration_ParseFindsBrokenSource(t *testing.T) {
	fix := setup(t)

	checker := verify.New(fix.projectFS)
	checker.Parse = true
	results, err := checker.Run(context.Background(), fix.entries)
	require.NoError(t, err)

	var broken, clean *verify.FileResult
	for i := range results {
		switch results[i].Entry.Path {
		case "Sample/Models/Broken.swift":
			broken = &results[i]
		case "Sample/Views/RootView.swift":
			clean = &results[i]
		}
	}
	require.NotNil(t, broken)
	require.NotNil(t, clean)

	assert.NotEmpty(t, broken.Syntax, "broken source should report syntax errors")
	assert.Empty(t, clean.Syntax, "clean source should parse without errors")
	assert.Equal(t, 1, verify.Summarize(results).Syntax)
}

func TestIntegration_IndexTreeAndSelectorAgree(t *testing.T) {
	fix := setup(t)
	idx := manifest.NewIndex(fix.entries)

	// The index, the JSONPath selector, and SQL all count the same
	// Swift sources.
	swift := idx.WithKind("sourcecode.swift")
	assert.Len(t, swift, 4)

	matches, err := manifest.Select(fix.entries, "$[?(@.kind == 'sourcecode.swift')]")
	require.NoError(t, err)
	assert.Len(t, matches, len(swift))

	res, err := query.Run(fix.entries, "SELECT COUNT(*) FROM files WHERE kind = 'sourcecode.swift'")
	require.NoError(t, err)
	assert.Equal(t, "4", res.Rows[0][0])

	// The rendered tree shows each group the index knows about.
	rendered := grouptree.Render(fix.entries)
	for _, g := range idx.Groups() {
		segs := strings.Split(g, "/")
		assert.Contains(t, rendered, segs[len(segs)-1], "tree should show group %s", g)
	}
	assert.Contains(t, rendered, "RootView.swift")
}

func TestIntegration_GroupSubsetsPreserveOrder(t *testing.T) {
	fix := setup(t)
	idx := manifest.NewIndex(fix.entries)

	views := idx.UnderGroup("Sample/Views")
	require.Len(t, views, 2)
	assert.Equal(t, "Sample/Views/RootView.swift", views[0].Path)
	assert.Equal(t, "Sample/Views/DetailView.swift", views[1].Path)

	all := idx.UnderGroup("Sample")
	assert.Len(t, all, 6, "prefix matching covers nested groups")
}
