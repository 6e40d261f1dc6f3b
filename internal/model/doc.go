// Package model defines the data structures used throughout gpm.
//
// # Entry
//
// The [Entry] struct represents a tracked repository:
//
//	type Entry struct {
//	    Name    string    // Repository directory name, unique within a category
//	    Path    string    // Absolute path of the repository root
//	    Created time.Time // Set once at construction
//	    Updated time.Time // Refreshed whenever the entry is added again
//	}
//
// # Category
//
// [Category] is the closed set of namespaces of the configuration file:
// [Watched], [Ignored] and [Groups]. Watched and ignored hold entries keyed by
// name; groups hold named lists of repository names.
package model
