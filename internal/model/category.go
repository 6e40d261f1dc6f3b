package model

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// Category is the partition a tracked repository belongs to.
type Category int

const (
	Watched Category = iota
	Ignored
	Groups
)

// Categories returns every category in declaration order.
func Categories() []Category {
	return []Category{Watched, Ignored, Groups}
}

// EntryCategories returns the categories that hold Entry records.
func EntryCategories() []Category {
	return []Category{Watched, Ignored}
}

// Namespace returns the top-level key of the category in the configuration file.
func (c Category) Namespace() string {
	switch c {
	case Watched:
		return "watched"
	case Ignored:
		return "ignored"
	case Groups:
		return "groups"
	}

	return ""
}

func (c Category) String() string {
	if ns := c.Namespace(); ns != "" {
		return ns
	}

	return fmt.Sprintf("Category(%d)", int(c))
}

// HoldsEntries reports whether the category stores Entry records.
// Groups store lists of repository names instead.
func (c Category) HoldsEntries() bool {
	return c == Watched || c == Ignored
}

// ParseCategory converts a namespace name to a Category.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories() {
		if strings.EqualFold(s, c.Namespace()) {
			return c, nil
		}
	}

	return 0, fmt.Errorf("unknown category %q", s)
}

// CategoryFlag is a pflag.Value restricted to the entry categories.
type CategoryFlag struct {
	Value Category
}

var _ pflag.Value = (*CategoryFlag)(nil)

// NewCategoryFlag returns a flag value holding def.
func NewCategoryFlag(def Category) *CategoryFlag {
	return &CategoryFlag{Value: def}
}

func (f *CategoryFlag) String() string {
	return f.Value.Namespace()
}

func (f *CategoryFlag) Set(s string) error {
	c, err := ParseCategory(s)
	if err != nil {
		return err
	}

	if !c.HoldsEntries() {
		return fmt.Errorf("category must be one of %s", strings.Join(EntryCategoryNames(), ", "))
	}

	f.Value = c

	return nil
}

func (f *CategoryFlag) Type() string {
	return "category"
}

// EntryCategoryNames returns the namespaces accepted by CategoryFlag.
func EntryCategoryNames() []string {
	names := make([]string, 0, 2)
	for _, c := range EntryCategories() {
		names = append(names, c.Namespace())
	}

	return names
}
