// Package persistence implements the document store backing every ledger:
// one JSON file per resource, loaded with a caller-supplied default and
// written best-effort. A missing, unreadable, or hand-edited file must
// never take the app down.
package persistence

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Resource is a JSON document bound to a file path.
type Resource[T any] struct {
	path string
	log  *zap.Logger
}

// NewResource binds a document type to a file path.
func NewResource[T any](path string, log *zap.Logger) *Resource[T] {
	if log == nil {
		log = zap.NewNop()
	}
	return &Resource[T]{path: path, log: log}
}

// Path returns the bound file path.
func (r *Resource[T]) Path() string {
	return r.path
}

// Load reads the document, returning def unchanged on any failure: missing
// file, unreadable file, or malformed content. Corruption is logged but
// never surfaced as an error.
func (r *Resource[T]) Load(def T) T {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			r.log.Debug("document unreadable, using default",
				zap.String("path", r.path), zap.Error(err))
		}
		return def
	}

	var doc T
	if err := json.Unmarshal(data, &doc); err != nil {
		r.log.Debug("document malformed, using default",
			zap.String("path", r.path), zap.Error(err))
		return def
	}
	return doc
}

// IsCanonical reports whether the stored bytes match what Save would write
// for doc. Used to self-heal documents whose stored form has drifted
// (partial keys, hand edits, missing file).
func (r *Resource[T]) IsCanonical(doc T) bool {
	stored, err := os.ReadFile(r.path)
	if err != nil {
		return false
	}
	expected, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return false
	}
	return bytes.Equal(stored, expected)
}

// Save writes the document as indented JSON. The write is best-effort:
// failures are logged at Warn and returned so the shell can surface a
// warning, but callers keep treating in-memory state as authoritative.
func (r *Resource[T]) Save(doc T) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		r.log.Warn("document marshal failed", zap.String("path", r.path), zap.Error(err))
		return err
	}

	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			r.log.Warn("document dir create failed", zap.String("path", r.path), zap.Error(err))
			return err
		}
	}

	if err := os.WriteFile(r.path, data, 0644); err != nil {
		r.log.Warn("document write failed", zap.String("path", r.path), zap.Error(err))
		return err
	}
	return nil
}

// ReadText reads a plain-text resource such as a license file. Unlike Load,
// absence is meaningful to the caller and is returned as an error wrapping
// os.ErrNotExist.
func ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
