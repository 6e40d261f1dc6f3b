package store

import (
	"slices"
	"sort"

	"github.com/inovacc/gpm/internal/model"
)

// Groups returns every group with its member names.
func (s *Store) Groups() map[string][]string {
	groups := make(map[string][]string)

	for name, v := range s.table(model.Groups) {
		if members, ok := toNames(v); ok {
			groups[name] = members
		}
	}

	return groups
}

// GroupNames returns the group names, sorted.
func (s *Store) GroupNames() []string {
	names := make([]string, 0, len(s.table(model.Groups)))
	for name := range s.Groups() {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// AddToGroup appends tracked repository names to group, creating it if needed.
// Names already in the group are ignored.
func (s *Store) AddToGroup(group string, names ...string) error {
	path := EntryPath(group, model.Groups)

	if group == "" {
		return newError(BadPosition, "group name is empty")
	}

	t := s.table(model.Groups)

	var members []string

	if v, exists := t[group]; exists {
		var ok bool

		members, ok = toNames(v)
		if !ok {
			return newError(DecodingError, "%s: expected a list of names", path)
		}
	}

	for _, name := range names {
		if !s.Tracked(name) {
			return newError(UnknownKey, "%s", name)
		}
	}

	for _, name := range names {
		if !slices.Contains(members, name) {
			members = append(members, name)
		}
	}

	t[group] = members

	return nil
}

// RemoveFromGroup removes name from group. An emptied group is dropped.
func (s *Store) RemoveFromGroup(group, name string) error {
	path := EntryPath(group, model.Groups)
	t := s.table(model.Groups)

	v, ok := t[group]
	if !ok {
		return newError(UnknownKey, "%s", path)
	}

	members, ok := toNames(v)
	if !ok {
		return newError(DecodingError, "%s: expected a list of names", path)
	}

	i := slices.Index(members, name)
	if i < 0 {
		return newError(UnknownKey, "%s: %s", path, name)
	}

	members = slices.Delete(members, i, i+1)
	if len(members) == 0 {
		delete(t, group)

		return nil
	}

	t[group] = members

	return nil
}

func toNames(v any) ([]string, bool) {
	switch list := v.(type) {
	case []string:
		return slices.Clone(list), true
	case []any:
		names := make([]string, 0, len(list))

		for _, item := range list {
			name, ok := item.(string)
			if !ok {
				return nil, false
			}

			names = append(names, name)
		}

		return names, true
	}

	return nil, false
}
