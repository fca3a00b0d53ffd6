package store_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/moottier/ccrev/batch"
	"github.com/moottier/ccrev/ruleengine"
	"github.com/moottier/ccrev/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "ccrev.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	return s
}

func TestStore_SaveLoad(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	b := batch.Batch{
		Name:        "batch-1",
		Series:      []float64{0, 0, 0, 0, 10, 0, 0, 0},
		Index:       []string{"1", "2", "3", "4", "5", "6", "7", "8"},
		Mean:        0,
		Stdev:       1,
		Labels:      []int{0, 0, 0, 0, 1, 0, 0, 0},
		Signals:     []ruleengine.Signal{{RuleId: 1, Start: 4, End: 5, Positive: true}},
		CatalogName: "default",
	}

	id, err := s.Save(ctx, b)
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	got, err := s.Load(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, b.Name, got.Name)
	assert.Equal(t, b.Series, got.Series)
	assert.Equal(t, b.Labels, got.Labels)
	assert.Equal(t, b.Signals, got.Signals)
	assert.False(t, got.SavedAt.IsZero())
}

func TestStore_LoadMissing(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Load(context.Background(), 999)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestStore_ListOrdersMostRecentFirst(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	first, err := s.Save(ctx, batch.Batch{Name: "a", Series: []float64{1, 2}, Labels: []int{0, 0}})
	require.NoError(t, err)
	second, err := s.Save(ctx, batch.Batch{Name: "b", Series: []float64{1, 2}, Labels: []int{0, 0}})
	require.NoError(t, err)

	all, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, second, all[0].Id)
	assert.Equal(t, first, all[1].Id)
}
