package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"click2run/internal/button"
)

func fixtureStore(t *testing.T, records []button.Record) *button.Store {
	t.Helper()
	s := button.NewStore(t.TempDir())
	require.NoError(t, s.Save(records))
	return s
}

func TestRebuildOrdersByPriority(t *testing.T) {
	store := fixtureStore(t, []button.Record{
		{ID: "low", Text: "Low", Command: "a", Priority: 0},
		{ID: "hi", Text: "Hi", Command: "b", Priority: 10},
		{ID: "mid1", Text: "Mid1", Command: "c", Priority: 5},
		{ID: "mid2", Text: "Mid2", Command: "d", Priority: 5},
	})
	g := New(store, func(button.Record) error { return nil })
	require.NoError(t, g.Rebuild())

	items := g.Items()
	require.Len(t, items, 4)
	assert.Equal(t, "Hi", items[0].Text)
	assert.Equal(t, "Mid1", items[1].Text)
	assert.Equal(t, "Mid2", items[2].Text)
	assert.Equal(t, "Low", items[3].Text)
}

func TestInvokeDispatchesRecord(t *testing.T) {
	store := fixtureStore(t, []button.Record{
		{ID: "b1", Text: "Build", Command: "make"},
	})
	var ran []string
	g := New(store, func(r button.Record) error {
		ran = append(ran, r.Command)
		return nil
	})
	require.NoError(t, g.Rebuild())

	require.NoError(t, g.Invoke(CommandID("b1")))
	assert.Equal(t, []string{"make"}, ran)
}

func TestInvokeUnknownKey(t *testing.T) {
	g := New(fixtureStore(t, nil), func(button.Record) error { return nil })
	require.NoError(t, g.Rebuild())
	assert.Error(t, g.Invoke(CommandID("ghost")))
}

func TestRebuildAfterDeleteLeavesNoStaleAction(t *testing.T) {
	store := fixtureStore(t, []button.Record{
		{ID: "keep", Text: "Keep", Command: "a"},
		{ID: "drop", Text: "Drop", Command: "b"},
	})
	g := New(store, func(button.Record) error { return nil })
	require.NoError(t, g.Rebuild())
	require.True(t, g.Has(CommandID("drop")))

	records, err := store.Load()
	require.NoError(t, err)
	require.NoError(t, store.Save(button.RemoveByID(records, "drop")))
	require.NoError(t, g.Rebuild())

	assert.False(t, g.Has(CommandID("drop")), "deleted record's action key must be unreachable")
	assert.True(t, g.Has(CommandID("keep")))
	assert.Error(t, g.Invoke(CommandID("drop")))
	assert.Equal(t, 1, g.Len())
}

func TestDisposeIdempotent(t *testing.T) {
	g := New(fixtureStore(t, []button.Record{{ID: "x", Text: "X", Command: "x"}}), func(button.Record) error { return nil })
	require.NoError(t, g.Rebuild())

	g.Dispose()
	g.Dispose() // second dispose on an empty set is safe
	assert.Zero(t, g.Len())
	assert.Empty(t, g.Items())
}

func TestRebuildEmptyStore(t *testing.T) {
	g := New(button.NewStore(t.TempDir()), func(button.Record) error { return nil })
	require.NoError(t, g.Rebuild())
	assert.Zero(t, g.Len())
}
