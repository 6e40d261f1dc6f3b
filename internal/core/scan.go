package core

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// GitDirName is the metadata directory that marks a repository root
const GitDirName = ".git"

// Scanner finds repositories below a root directory
type Scanner struct {
	logger   *slog.Logger
	maxDepth int             // Maximum directory depth to descend (0 = unlimited)
	exclude  map[string]bool // Directory names not descended into
}

// ScanOption configures a Scanner
type ScanOption func(*Scanner)

// WithLogger sets the logger used for skipped entries.
func WithLogger(logger *slog.Logger) ScanOption {
	return func(s *Scanner) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMaxDepth limits how deep the walk descends below the root.
func WithMaxDepth(depth int) ScanOption {
	return func(s *Scanner) {
		s.maxDepth = depth
	}
}

// WithExclude skips directories with the given names (e.g. node_modules).
func WithExclude(names ...string) ScanOption {
	return func(s *Scanner) {
		for _, n := range names {
			if n != "" {
				s.exclude[n] = true
			}
		}
	}
}

// NewScanner returns a Scanner. Without options it walks everything below the root.
func NewScanner(opts ...ScanOption) *Scanner {
	s := &Scanner{
		logger:  slog.New(slog.DiscardHandler),
		exclude: make(map[string]bool),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Scan walks root, following symbolic links, and returns the parent of every
// .git directory it meets, in traversal order. Entries that cannot be read
// are skipped; only an unreadable root is an error.
func (s *Scanner) Scan(root string) ([]string, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, &ScanRootError{Path: root, Err: err}
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, &ScanRootError{Path: abs, Err: err}
	}

	if !info.IsDir() {
		return nil, &ScanRootError{Path: abs, Err: errNotDirectory}
	}

	entries, err := os.ReadDir(abs)
	if err != nil {
		return nil, &ScanRootError{Path: abs, Err: err}
	}

	found := make([]string, 0)
	s.walk(abs, entries, []os.FileInfo{info}, 0, &found)

	return found, nil
}

func (s *Scanner) walk(dir string, entries []os.DirEntry, ancestors []os.FileInfo, depth int, found *[]string) {
	for _, de := range entries {
		path := filepath.Join(dir, de.Name())

		info, err := os.Stat(path)
		if err != nil {
			s.logger.Debug("skipping entry", "path", path, "error", err)

			continue
		}

		if !info.IsDir() {
			continue
		}

		// Repository root found; the metadata directory itself holds nothing to discover.
		if de.Name() == GitDirName {
			*found = append(*found, dir)

			continue
		}

		if s.exclude[de.Name()] {
			s.logger.Debug("skipping excluded directory", "path", path)

			continue
		}

		if s.maxDepth > 0 && depth+1 > s.maxDepth {
			continue
		}

		if isAncestor(info, ancestors) {
			s.logger.Debug("skipping symlink loop", "path", path)

			continue
		}

		children, err := os.ReadDir(path)
		if err != nil {
			s.logger.Debug("skipping unreadable directory", "path", path, "error", err)

			continue
		}

		s.walk(path, children, append(ancestors, info), depth+1, found)
	}
}

func isAncestor(info os.FileInfo, ancestors []os.FileInfo) bool {
	for _, a := range ancestors {
		if os.SameFile(a, info) {
			return true
		}
	}

	return false
}

// IsInHiddenDir reports whether any component of path starts with a dot.
// "." and ".." are navigation, not names. A path without a parent, such as
// "/" or "project", is only hidden when that single name is.
func IsInHiddenDir(path string) bool {
	if path == "" {
		return false
	}

	clean := filepath.Clean(path)
	if filepath.Dir(clean) == clean {
		return false
	}

	for _, part := range strings.Split(filepath.ToSlash(clean), "/") {
		if part == "" || part == "." || part == ".." {
			continue
		}

		if strings.HasPrefix(part, ".") {
			return true
		}
	}

	return false
}

// FilterHidden drops the paths that lie under a hidden directory, keeping order.
func FilterHidden(paths []string) []string {
	visible := make([]string, 0, len(paths))

	for _, p := range paths {
		if !IsInHiddenDir(p) {
			visible = append(visible, p)
		}
	}

	return visible
}
