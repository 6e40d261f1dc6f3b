package store

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/inovacc/gpm/internal/application"
	"github.com/inovacc/gpm/internal/model"
	"github.com/pelletier/go-toml/v2"
)

// Content is the decoded configuration document.
// Top-level keys are the category namespaces; unknown top-level keys are kept as is.
type Content map[string]any

// NewContent returns a document with the three empty namespaces.
func NewContent() Content {
	c := make(Content, len(model.Categories()))
	for _, cat := range model.Categories() {
		c[cat.Namespace()] = map[string]any{}
	}

	return c
}

// Parse decodes a TOML document. It reports false when the data is empty,
// is not valid TOML, or holds a namespace that is not a table.
func Parse(data []byte) (Content, bool) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, false
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, false
	}

	c := Content(raw)

	for _, cat := range model.Categories() {
		v, ok := c[cat.Namespace()]
		if !ok {
			c[cat.Namespace()] = map[string]any{}

			continue
		}

		if _, ok := v.(map[string]any); !ok {
			return nil, false
		}
	}

	return c, true
}

// Encode serializes the document as TOML.
func Encode(c Content) ([]byte, error) {
	data, err := toml.Marshal(map[string]any(c))
	if err != nil {
		return nil, newError(EncodingError, "configuration: %v", err)
	}

	return data, nil
}

// Load reads the configuration at path. A missing or unreadable file, or one
// that does not parse, yields a fresh store and a warning; it is never fatal.
func Load(path string, logger *slog.Logger, opts ...Option) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Warn("configuration file not found, initializing a new one", "path", path)
		} else {
			logger.Warn("cannot read configuration file, initializing a new one", "path", path, "error", err)
		}

		return newFresh(opts)
	}

	content, ok := Parse(data)
	if !ok {
		logger.Warn("cannot parse configuration file, initializing a new one", "path", path)

		return newFresh(opts)
	}

	return New(content, opts...)
}

func newFresh(opts []Option) *Store {
	s := New(NewContent(), opts...)
	s.fresh = true

	return s
}

// Save writes the document to a sibling file first and renames it over path.
func (s *Store) Save(path string) error {
	data, err := Encode(s.content)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create configuration directory: %w", err)
	}

	tmp := application.BackupPath(path)

	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write configuration: %w", err)
	}

	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)

		return fmt.Errorf("failed to replace configuration: %w", err)
	}

	return nil
}

// encodeEntry converts an Entry into its document representation.
func encodeEntry(e *model.Entry, path string) (map[string]any, error) {
	data, err := toml.Marshal(e)
	if err != nil {
		return nil, newError(EncodingError, "%s: %v", path, err)
	}

	var v map[string]any
	if err := toml.Unmarshal(data, &v); err != nil {
		return nil, newError(EncodingError, "%s: %v", path, err)
	}

	return v, nil
}

// decodeEntry converts a stored value back into an Entry.
func decodeEntry(v any, path string) (*model.Entry, error) {
	table, ok := v.(map[string]any)
	if !ok {
		return nil, newError(DecodingError, "%s: expected a table, got %T", path, v)
	}

	data, err := toml.Marshal(table)
	if err != nil {
		return nil, newError(DecodingError, "%s: %v", path, err)
	}

	var e model.Entry
	if err := toml.Unmarshal(data, &e); err != nil {
		return nil, newError(DecodingError, "%s: %v", path, err)
	}

	if e.Name == "" || e.Path == "" {
		return nil, newError(DecodingError, "%s: name and path are required", path)
	}

	return &e, nil
}
