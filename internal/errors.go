package internal

import (
	"fmt"
	"io/fs"
)

// NotFoundError indicates the snapshot file does not exist. It is the
// only fatal error the parse pipeline itself produces; decoding
// irregularities are absorbed with best-effort fallbacks.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("snapshot file not found: %s", e.Path)
}

func (e *NotFoundError) Unwrap() error {
	return fs.ErrNotExist
}

// ExportError represents errors during export
type ExportError struct {
	Format string
	Path   string
	Err    error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export error [%s] %s: %v", e.Format, e.Path, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

// CatalogError represents errors accessing the session catalog
type CatalogError struct {
	Op  string // "open", "save", "list"
	Err error
}

func (e *CatalogError) Error() string {
	return fmt.Sprintf("catalog error: %s: %v", e.Op, e.Err)
}

func (e *CatalogError) Unwrap() error {
	return e.Err
}
