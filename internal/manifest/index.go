package manifest

import (
	"sort"

	"github.com/RoaringBitmap/roaring"

	"github.com/pbxplan/pbxplan/api"
)

// Index answers subset queries over a descriptor list without rescanning
// it: ordinal bitmaps keyed by group path and by kind. Ordinals are the
// positions in the original list, so iterating a bitmap in ascending
// order reproduces input order exactly.
type Index struct {
	entries []api.FileEntry
	byGroup map[string]*roaring.Bitmap // group path ("A/B") -> ordinals
	byKind  map[string]*roaring.Bitmap // kind tag -> ordinals
	byPath  map[string]*roaring.Bitmap // path -> ordinals (duplicates possible)
}

// NewIndex builds an Index over entries. The slice is retained, not
// copied; callers must not mutate it afterwards.
func NewIndex(entries []api.FileEntry) *Index {
	ix := &Index{
		entries: entries,
		byGroup: make(map[string]*roaring.Bitmap),
		byKind:  make(map[string]*roaring.Bitmap),
		byPath:  make(map[string]*roaring.Bitmap),
	}
	for i, e := range entries {
		ord := uint32(i)
		addBit(ix.byGroup, GroupPath(e.Group), ord)
		addBit(ix.byKind, e.Kind, ord)
		addBit(ix.byPath, e.Path, ord)
	}
	return ix
}

func addBit(m map[string]*roaring.Bitmap, key string, ord uint32) {
	bm, ok := m[key]
	if !ok {
		bm = roaring.New()
		m[key] = bm
	}
	bm.Add(ord)
}

// Entries returns the full list in input order.
func (ix *Index) Entries() []api.FileEntry {
	return ix.entries
}

// UnderGroup returns the entries whose group equals prefix or nests
// beneath it ("TaskSnap" matches "TaskSnap/Views"), in input order.
// An empty prefix returns everything.
func (ix *Index) UnderGroup(prefix string) []api.FileEntry {
	if prefix == "" {
		return ix.entries
	}
	agg := roaring.New()
	for gp, bm := range ix.byGroup {
		if gp == prefix || (len(gp) > len(prefix) && gp[:len(prefix)] == prefix && gp[len(prefix)] == '/') {
			agg.Or(bm)
		}
	}
	return ix.collect(agg)
}

// WithKind returns the entries carrying exactly the given kind tag, in
// input order.
func (ix *Index) WithKind(kind string) []api.FileEntry {
	bm, ok := ix.byKind[kind]
	if !ok {
		return nil
	}
	return ix.collect(bm)
}

// Groups returns the distinct group paths, sorted.
func (ix *Index) Groups() []string {
	return sortedKeys(ix.byGroup)
}

// Kinds returns the distinct kind tags, sorted.
func (ix *Index) Kinds() []string {
	return sortedKeys(ix.byKind)
}

// Duplicates returns the paths that appear more than once, sorted.
// Duplicates are legal everywhere; this exists so check can mention them.
func (ix *Index) Duplicates() []string {
	var dups []string
	for p, bm := range ix.byPath {
		if bm.GetCardinality() > 1 {
			dups = append(dups, p)
		}
	}
	sort.Strings(dups)
	return dups
}

func (ix *Index) collect(bm *roaring.Bitmap) []api.FileEntry {
	out := make([]api.FileEntry, 0, bm.GetCardinality())
	it := bm.Iterator()
	for it.HasNext() {
		out = append(out, ix.entries[it.Next()])
	}
	return out
}

func sortedKeys(m map[string]*roaring.Bitmap) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
