// manifest-gen scans a source tree and emits a pbxplan manifest for
// the files it finds. The manifest goes to stdout; redirect it to a
// file and hand that to pbxplan --manifest.
//
// Run it from the project root so the emitted paths match what Xcode
// expects, e.g.:
//
//	manifest-gen -root TaskSnap > files.yaml
//	pbxplan --manifest files.yaml
package main

import (
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pbxplan/pbxplan/api"
	"github.com/pbxplan/pbxplan/internal/pbx"
)

func main() {
	root := flag.String("root", ".", "Source tree to scan")
	flag.Parse()

	m, err := scan(*root)
	if err != nil {
		fatal(err)
	}
	if len(m.Files) == 0 {
		fmt.Fprintf(os.Stderr, "No recognized files under %s\n", *root)
	}

	data, err := yaml.Marshal(m)
	if err != nil {
		fatal(err)
	}
	if _, err := os.Stdout.Write(data); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

// scan walks root and builds an entry for every file whose extension
// maps to a PBX kind. Paths keep the root prefix the caller passed so
// the manifest matches the project layout; groups derive from the
// directory segments. Asset catalogs are directories in Xcode terms,
// so a recognized directory becomes one entry and is not descended
// into.
func scan(root string) (*api.Manifest, error) {
	var m api.Manifest
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel := filepath.ToSlash(filepath.Clean(p))

		if d.IsDir() {
			if d.Name() == ".git" || strings.HasSuffix(d.Name(), ".xcodeproj") {
				return filepath.SkipDir
			}
			if kind, ok := pbx.KindForPath(rel); ok {
				m.Files = append(m.Files, entry(rel, kind))
				return filepath.SkipDir
			}
			return nil
		}

		kind, ok := pbx.KindForPath(rel)
		if !ok {
			return nil
		}
		m.Files = append(m.Files, entry(rel, kind))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", root, err)
	}
	return &m, nil
}

func entry(rel, kind string) api.FileEntry {
	return api.FileEntry{Path: rel, Kind: kind, Group: groupFor(rel)}
}

// groupFor turns the directory portion of a path into group segments:
// "TaskSnap/Views/X.swift" becomes ["TaskSnap", "Views"].
func groupFor(rel string) []string {
	dir := path.Dir(rel)
	if dir == "." || dir == "/" {
		return nil
	}
	return strings.Split(dir, "/")
}
