package model

import "time"

// Entry is one tracked repository.
type Entry struct {
	// Name identifies the entry inside its category (the repository directory name)
	Name string `toml:"name" json:"name"`

	// Path is the absolute path of the repository root
	Path string `toml:"path" json:"path"`

	// Created is set once when the entry is constructed
	Created time.Time `toml:"created" json:"created"`

	// Updated is refreshed every time the entry is (re)added
	Updated time.Time `toml:"updated" json:"updated"`
}

// NewEntry returns an Entry with both timestamps set to now.
func NewEntry(name, path string, now time.Time) *Entry {
	now = now.UTC().Truncate(time.Second)

	return &Entry{
		Name:    name,
		Path:    path,
		Created: now,
		Updated: now,
	}
}

// Touch refreshes the Updated timestamp.
func (e *Entry) Touch(now time.Time) {
	e.Updated = now.UTC().Truncate(time.Second)
}
