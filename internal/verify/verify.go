// Package verify checks a descriptor list against the files that
// actually exist under a project root. The filesystem is abstracted
// behind billy.Filesystem so the CLI can run on the real tree while
// tests run in memory.
package verify

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	"github.com/pbxplan/pbxplan/api"
)

// State classifies the outcome of checking one descriptor.
type State int

const (
	StateOK State = iota
	StateMissing
	StateError
)

func (s State) String() string {
	switch s {
	case StateOK:
		return "ok"
	case StateMissing:
		return "missing"
	default:
		return "error"
	}
}

// FileResult is the outcome of checking one descriptor. Syntax is
// only populated when the Checker parses sources and the file parsed
// with errors. Err records stat or read failures other than absence.
type FileResult struct {
	Entry  api.FileEntry
	State  State
	Size   int64
	Syntax []SyntaxError
	Err    error
}

// Summary tallies one Checker run.
type Summary struct {
	Present int
	Missing int
	Errors  int
	Syntax  int // files that parsed with syntax errors
}

// Summarize counts the states in results.
func Summarize(results []FileResult) Summary {
	var s Summary
	for _, r := range results {
		switch r.State {
		case StateOK:
			s.Present++
		case StateMissing:
			s.Missing++
		default:
			s.Errors++
		}
		if len(r.Syntax) > 0 {
			s.Syntax++
		}
	}
	return s
}

// Checker stats descriptors against fs. With Parse set, present Swift
// sources are additionally parsed and their syntax errors reported.
type Checker struct {
	fs    billy.Filesystem
	Parse bool
}

// New returns a Checker over fs.
func New(fs billy.Filesystem) *Checker {
	return &Checker{fs: fs}
}

// Run checks every entry in list order. The returned error is only
// non-nil when ctx is cancelled; per-file failures are recorded in
// the corresponding FileResult.
func (c *Checker) Run(ctx context.Context, entries []api.FileEntry) ([]FileResult, error) {
	results := make([]FileResult, 0, len(entries))
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		results = append(results, c.checkOne(ctx, e))
	}
	return results, nil
}

func (c *Checker) checkOne(ctx context.Context, e api.FileEntry) FileResult {
	res := FileResult{Entry: e}

	info, err := c.fs.Stat(e.Path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		res.State = StateMissing
		return res
	case err != nil:
		res.State = StateError
		res.Err = fmt.Errorf("stat %s: %w", e.Path, err)
		return res
	}
	res.State = StateOK
	res.Size = info.Size()

	if !c.Parse || languageForEntry(e) == nil {
		return res
	}

	content, err := util.ReadFile(c.fs, e.Path)
	if err != nil {
		res.State = StateError
		res.Err = fmt.Errorf("read %s: %w", e.Path, err)
		return res
	}
	syntax, err := parseErrors(ctx, languageForEntry(e), content, e.Path)
	if err != nil {
		res.State = StateError
		res.Err = err
		return res
	}
	res.Syntax = syntax
	return res
}
