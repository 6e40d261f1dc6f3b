package store

import (
	"testing"

	"github.com/inovacc/gpm/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddToGroup(t *testing.T) {
	s := newTestStore(t)
	addTestEntry(t, s, "a", model.Watched)
	addTestEntry(t, s, "b", model.Ignored)

	require.NoError(t, s.AddToGroup("work", "a"))
	require.NoError(t, s.AddToGroup("work", "b", "a"))

	assert.Equal(t, map[string][]string{"work": {"a", "b"}}, s.Groups())
	assert.Equal(t, []string{"work"}, s.GroupNames())
}

func TestAddToGroup_Errors(t *testing.T) {
	s := newTestStore(t)
	addTestEntry(t, s, "a", model.Watched)

	err := s.AddToGroup("", "a")
	require.ErrorIs(t, err, ErrBadPosition)

	err = s.AddToGroup("work", "a", "missing")
	require.ErrorIs(t, err, ErrUnknownKey)
	assert.Empty(t, s.Groups(), "nothing is added when one name is unknown")

	s.table(model.Groups)["broken"] = "x"
	err = s.AddToGroup("broken", "a")
	require.ErrorIs(t, err, ErrDecoding)
}

func TestRemoveFromGroup(t *testing.T) {
	s := newTestStore(t)
	addTestEntry(t, s, "a", model.Watched)
	addTestEntry(t, s, "b", model.Watched)
	require.NoError(t, s.AddToGroup("work", "a", "b"))

	require.NoError(t, s.RemoveFromGroup("work", "a"))
	assert.Equal(t, map[string][]string{"work": {"b"}}, s.Groups())

	err := s.RemoveFromGroup("work", "a")
	require.ErrorIs(t, err, ErrUnknownKey)

	require.NoError(t, s.RemoveFromGroup("work", "b"))
	assert.False(t, s.Has("work", model.Groups), "empty groups are dropped")

	err = s.RemoveFromGroup("work", "b")
	require.ErrorIs(t, err, ErrUnknownKey)
}

func TestGroups_DecodedList(t *testing.T) {
	s := newTestStore(t)
	s.table(model.Groups)["decoded"] = []any{"a", "b"}
	s.table(model.Groups)["mixed"] = []any{"a", 3}

	assert.Equal(t, map[string][]string{"decoded": {"a", "b"}}, s.Groups())
}
