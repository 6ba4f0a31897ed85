package api

// FileEntry describes one source file's intended placement in an Xcode
// project: where the file lives on disk, what the project should treat it
// as, and which logical group it belongs under.
//
// Kind is an open-ended PBX file-type tag (e.g. "sourcecode.swift").
// It is carried verbatim and never validated against a known vocabulary.
type FileEntry struct {
	// Path is the slash-separated file path relative to the project root.
	Path string `json:"path" yaml:"path"`
	// Kind is the PBX lastKnownFileType tag for the file.
	Kind string `json:"kind" yaml:"kind"`
	// Group is the ordered segment list of the logical (non-filesystem)
	// group the file should appear under in the project navigator.
	Group []string `json:"group" yaml:"group"`
}

// Manifest is the on-disk registration plan: the ordered list of files
// that still need to be added to the project.
type Manifest struct {
	// Files are reported in the order they appear here.
	Files []FileEntry `json:"files" yaml:"files"`
}
