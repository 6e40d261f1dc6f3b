package store

import (
	"errors"
	"sort"
	"time"

	"github.com/inovacc/gpm/internal/model"
)

// Store owns the configuration document of a single run.
// It is not safe for concurrent use.
type Store struct {
	content Content
	now     func() time.Time
	fresh   bool
}

// Option configures a Store
type Option func(*Store)

// WithClock sets the time source used for entry timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// New wraps content; missing namespaces are created.
func New(content Content, opts ...Option) *Store {
	if content == nil {
		content = NewContent()
	}

	for _, cat := range model.Categories() {
		if _, ok := content[cat.Namespace()].(map[string]any); !ok {
			content[cat.Namespace()] = map[string]any{}
		}
	}

	s := &Store{
		content: content,
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Content returns the underlying document.
func (s *Store) Content() Content {
	return s.content
}

// Fresh reports whether the store was initialized instead of loaded.
func (s *Store) Fresh() bool {
	return s.fresh
}

// Reset discards every entry and group.
func (s *Store) Reset() {
	s.content = NewContent()
	s.fresh = true
}

// EntryPath composes the fully-qualified key of an entry.
func (s *Store) EntryPath(key string, c model.Category) string {
	return EntryPath(key, c)
}

// EntryPath composes "<namespace>.<key>".
func EntryPath(key string, c model.Category) string {
	return c.Namespace() + "." + key
}

func (s *Store) table(c model.Category) map[string]any {
	t, ok := s.content[c.Namespace()].(map[string]any)
	if !ok {
		t = map[string]any{}
		s.content[c.Namespace()] = t
	}

	return t
}

// Has reports whether key is present under c.
func (s *Store) Has(key string, c model.Category) bool {
	_, ok := s.table(c)[key]

	return ok
}

// AddEntry refreshes e.Updated and stores it under c.
func (s *Store) AddEntry(key string, e *model.Entry, c model.Category) error {
	path := EntryPath(key, c)

	if !c.HoldsEntries() {
		return newError(BadPosition, "%s: %s does not hold entries", path, c)
	}

	t := s.table(c)
	if _, ok := t[key]; ok {
		return newError(KeyAlreadyExists, "%s", path)
	}

	e.Touch(s.now())

	v, err := encodeEntry(e, path)
	if err != nil {
		return err
	}

	t[key] = v

	return nil
}

// RemoveEntry deletes key from c and returns the stored value.
func (s *Store) RemoveEntry(key string, c model.Category) (any, error) {
	path := EntryPath(key, c)
	t := s.table(c)

	v, ok := t[key]
	if !ok {
		return nil, newError(UnknownKey, "%s", path)
	}

	delete(t, key)

	if _, still := t[key]; still {
		return nil, newError(InternalError, "%s: removal had no effect", path)
	}

	return v, nil
}

// TransferEntry moves key from one entry category to another.
// The destination add happens before the source removal, so a failure leaves
// the source untouched.
func (s *Store) TransferEntry(key string, from, to model.Category) error {
	if from == to {
		return newError(BadPosition, "%s: source and destination are both %s", key, from)
	}

	if !from.HoldsEntries() || !to.HoldsEntries() {
		return newError(BadPosition, "%s: cannot move between %s and %s", key, from, to)
	}

	src := EntryPath(key, from)

	v, ok := s.table(from)[key]
	if !ok {
		return newError(UnknownKey, "%s", src)
	}

	e, err := decodeEntry(v, src)
	if err != nil {
		return err
	}

	if err := s.AddEntry(key, e, to); err != nil {
		return err
	}

	if _, err := s.RemoveEntry(key, from); err != nil {
		delete(s.table(to), key)

		return err
	}

	return nil
}

// Lookup decodes the entry stored under key.
func (s *Store) Lookup(key string, c model.Category) (*model.Entry, error) {
	path := EntryPath(key, c)

	v, ok := s.table(c)[key]
	if !ok {
		return nil, newError(UnknownKey, "%s", path)
	}

	return decodeEntry(v, path)
}

// Entries decodes every entry of c, sorted by name. Malformed values are
// skipped and reported in the joined error.
func (s *Store) Entries(c model.Category) ([]model.Entry, error) {
	if !c.HoldsEntries() {
		return nil, newError(BadPosition, "%s does not hold entries", c)
	}

	var (
		entries []model.Entry
		errs    []error
	)

	for key, v := range s.table(c) {
		e, err := decodeEntry(v, EntryPath(key, c))
		if err != nil {
			errs = append(errs, err)

			continue
		}

		entries = append(entries, *e)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})

	return entries, errors.Join(errs...)
}

// Tracked reports whether key is present under an entry category.
func (s *Store) Tracked(key string) bool {
	for _, c := range model.EntryCategories() {
		if s.Has(key, c) {
			return true
		}
	}

	return false
}
