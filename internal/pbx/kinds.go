// Package pbx holds the few pieces of Xcode project-format vocabulary the
// planner needs: lastKnownFileType tags and PBX object identifiers. It
// deliberately knows nothing about the pbxproj plist structure itself.
package pbx

import (
	"path/filepath"
	"strings"
)

// KindForPath returns the PBX lastKnownFileType tag for a file path based
// on its extension. Returns ok=false for extensions with no known tag;
// callers decide what to do with those (the manifest loader leaves the
// kind empty rather than guessing).
func KindForPath(path string) (kind string, ok bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".swift":
		return "sourcecode.swift", true
	case ".m":
		return "sourcecode.c.objc", true
	case ".mm":
		return "sourcecode.cpp.objcpp", true
	case ".h":
		return "sourcecode.c.h", true
	case ".c":
		return "sourcecode.c.c", true
	case ".cpp", ".cc":
		return "sourcecode.cpp.cpp", true
	case ".metal":
		return "sourcecode.metal", true
	case ".storyboard":
		return "file.storyboard", true
	case ".xib":
		return "file.xib", true
	case ".plist":
		return "text.plist.xml", true
	case ".entitlements":
		return "text.plist.entitlements", true
	case ".strings":
		return "text.plist.strings", true
	case ".json":
		return "text.json", true
	case ".md":
		return "net.daringfireball.markdown", true
	case ".png":
		return "image.png", true
	case ".xcassets":
		return "folder.assetcatalog", true
	default:
		return "", false
	}
}

// IsSwiftSource reports whether the kind tag (or, failing that, the path
// extension) identifies a Swift source file. Used by check --parse to pick
// which present files are worth running through the parser.
func IsSwiftSource(kind, path string) bool {
	if kind == "sourcecode.swift" {
		return true
	}
	return kind == "" && strings.EqualFold(filepath.Ext(path), ".swift")
}
