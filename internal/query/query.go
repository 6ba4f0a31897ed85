// Package query runs ad-hoc SQL over the descriptor list. The list is
// loaded into an in-memory SQLite table per invocation; nothing ever
// touches disk and nothing survives the process.
package query

import (
	"database/sql"
	"fmt"
	"path"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/pbxplan/pbxplan/api"
	"github.com/pbxplan/pbxplan/internal/manifest"
)

// Result holds the column names and display-formatted rows of one
// query.
type Result struct {
	Columns []string
	Rows    [][]string
}

const schema = `CREATE TABLE files (
	ordinal    INTEGER PRIMARY KEY,
	path       TEXT NOT NULL,
	filename   TEXT NOT NULL,
	ext        TEXT NOT NULL,
	kind       TEXT NOT NULL,
	group_path TEXT NOT NULL,
	depth      INTEGER NOT NULL
)`

// Run loads entries into the files table of a fresh in-memory
// database and executes querySQL against it. ordinal preserves list
// order; ext is the path extension without the dot; depth is the
// number of group segments.
func Run(entries []api.FileEntry, querySQL string) (*Result, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("open in-memory sqlite: %w", err)
	}
	defer func() { _ = db.Close() }() // safe to ignore

	// Single connection: with :memory:, each pool connection gets its
	// own isolated database, so everything must run on one.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("create files table: %w", err)
	}

	stmt, err := db.Prepare("INSERT INTO files (ordinal, path, filename, ext, kind, group_path, depth) VALUES (?, ?, ?, ?, ?, ?, ?)")
	if err != nil {
		return nil, fmt.Errorf("prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }() // safe to ignore

	for i, e := range entries {
		name := path.Base(e.Path)
		ext := strings.TrimPrefix(path.Ext(e.Path), ".")
		if _, err := stmt.Exec(i, e.Path, name, ext, e.Kind, manifest.GroupPath(e.Group), len(e.Group)); err != nil {
			return nil, fmt.Errorf("insert %s: %w", e.Path, err)
		}
	}

	rows, err := db.Query(querySQL)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer func() { _ = rows.Close() }() // safe to ignore

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("read columns: %w", err)
	}

	res := &Result{Columns: cols}
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		row := make([]string, len(cols))
		for i, v := range vals {
			row[i] = formatValue(v)
		}
		res.Rows = append(res.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return res, nil
}

// formatValue renders one scanned SQL value for display.
func formatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "NULL"
	case []byte:
		return string(x)
	case string:
		return x
	default:
		return fmt.Sprint(x)
	}
}
