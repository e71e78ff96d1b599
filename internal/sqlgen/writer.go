package sqlgen

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/eleven-am/commentseed/internal/logger"
	"github.com/eleven-am/commentseed/internal/seed"
)

// DefaultOutput is where the statement is written, relative to the working
// directory
const DefaultOutput = "sql/comments.sql"

// Options configures Emit
type Options struct {
	Path       string
	Table      string
	CreateDirs bool
}

// DefaultOptions returns the fixed output path and table
func DefaultOptions() Options {
	return Options{
		Path:  DefaultOutput,
		Table: DefaultTable,
	}
}

// Result reports what Emit wrote
type Result struct {
	Rows  int
	Path  string
	Bytes int
}

// Emit renders rows as one INSERT statement and writes it to opts.Path,
// replacing any existing file.
func Emit(opts Options, rows []seed.Row) (*Result, error) {
	if opts.Path == "" {
		opts.Path = DefaultOutput
	}

	payload := BuildInsert(opts.Table, rows)
	logger.SQL().Debug("built insert statement", "rows", len(rows), "bytes", len(payload))

	if opts.CreateDirs {
		if err := os.MkdirAll(filepath.Dir(opts.Path), 0755); err != nil {
			return nil, &Error{Op: "mkdir", Path: opts.Path, Err: err}
		}
	}

	if err := WriteFile(opts.Path, payload); err != nil {
		return nil, err
	}

	logger.SQL().Info("wrote insert statement", "path", opts.Path, "rows", len(rows))

	return &Result{
		Rows:  len(rows),
		Path:  opts.Path,
		Bytes: len(payload),
	}, nil
}

// WriteFile truncates or creates path and writes payload. The parent
// directory must already exist.
func WriteFile(path, payload string) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return &Error{Op: "open", Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &Error{Op: "close", Path: path, Err: cerr}
		}
	}()

	if _, err := f.WriteString(payload); err != nil {
		return &Error{Op: "write", Path: path, Err: fmt.Errorf("failed to write statement: %w", err)}
	}

	return nil
}
