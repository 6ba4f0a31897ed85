// Package manifest owns the registration plan: the built-in descriptor
// list, manifest-file loading, and the index/selection helpers the
// subcommands share. The plan is immutable once loaded; everything here
// reads it, nothing rewrites it.
package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/hclsimple"
	"gopkg.in/yaml.v3"

	"github.com/pbxplan/pbxplan/api"
	"github.com/pbxplan/pbxplan/internal/pbx"
)

// Load reads a manifest file and returns its descriptor list in file
// order. The format is chosen by extension: .yaml/.yml, .json, or .hcl.
// Entries with an empty kind get one inferred from the path extension
// (left empty when unknown); entries with an empty group derive it from
// the path's directory segments. Provided values pass through verbatim.
func Load(path string) ([]api.FileEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	var m api.Manifest
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
		}
	case ".hcl":
		entries, err := parseHCL(path, data)
		if err != nil {
			return nil, err
		}
		m.Files = entries
	default:
		return nil, fmt.Errorf("manifest %s: unsupported extension (want .yaml, .yml, .json, or .hcl)", path)
	}

	for i := range m.Files {
		fillDefaults(&m.Files[i])
	}
	return m.Files, nil
}

// hclManifest mirrors api.Manifest in HCL block form:
//
//	file "TaskSnap/Views/LoadingView.swift" {
//	  kind  = "sourcecode.swift"
//	  group = ["TaskSnap", "Views"]
//	}
type hclManifest struct {
	Files []hclFile `hcl:"file,block"`
}

type hclFile struct {
	Path  string   `hcl:"path,label"`
	Kind  string   `hcl:"kind,optional"`
	Group []string `hcl:"group,optional"`
}

func parseHCL(path string, data []byte) ([]api.FileEntry, error) {
	var m hclManifest
	if err := hclsimple.Decode(filepath.Base(path), data, nil, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	entries := make([]api.FileEntry, 0, len(m.Files))
	for _, f := range m.Files {
		entries = append(entries, api.FileEntry{Path: f.Path, Kind: f.Kind, Group: f.Group})
	}
	return entries, nil
}

// fillDefaults applies the manifest conveniences in place. The built-in
// list never goes through here; its fields are always explicit.
func fillDefaults(e *api.FileEntry) {
	if e.Kind == "" {
		if kind, ok := pbx.KindForPath(e.Path); ok {
			e.Kind = kind
		}
	}
	if len(e.Group) == 0 {
		e.Group = groupFromPath(e.Path)
	}
}

// groupFromPath derives a group from the directory portion of a path:
// "TaskSnap/Views/X.swift" becomes ["TaskSnap", "Views"]. A bare file
// name yields nil (top-level placement).
func groupFromPath(path string) []string {
	dir := filepath.ToSlash(filepath.Dir(path))
	if dir == "." || dir == "/" || dir == "" {
		return nil
	}
	var segs []string
	for _, s := range strings.Split(dir, "/") {
		if s != "" && s != "." {
			segs = append(segs, s)
		}
	}
	return segs
}

// GroupPath joins group segments the way the report and the index key
// them: with "/". An empty group joins to "".
func GroupPath(group []string) string {
	return strings.Join(group, "/")
}
