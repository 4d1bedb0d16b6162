package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ngram/internal/adapter/memstore"
	"ngram/internal/domain"
)

type countingStore struct {
	*memstore.MemoryStore
	gets int
}

func (s *countingStore) GetModel(name string) (domain.Model, error) {
	s.gets++
	return s.MemoryStore.GetModel(name)
}

func newCountingStore(t *testing.T, names ...string) *countingStore {
	t.Helper()
	st := &countingStore{MemoryStore: memstore.NewMemoryStore()}
	for _, name := range names {
		require.NoError(t, st.MemoryStore.PutModel(domain.Model{
			ModelInfo: domain.ModelInfo{Name: name},
			Table:     domain.ProbabilityTable{name: -1},
		}))
	}
	return st
}

func TestModelCache_Hit(t *testing.T) {
	st := newCountingStore(t, "a")
	c := NewModelCache(st, 4, time.Minute)

	for i := 0; i < 3; i++ {
		m, err := c.GetModel("a")
		require.NoError(t, err)
		assert.Equal(t, -1.0, m.Table["a"])
	}
	assert.Equal(t, 1, st.gets)
	assert.Equal(t, 1, c.Size())
}

func TestModelCache_MissingNotCached(t *testing.T) {
	st := newCountingStore(t)
	c := NewModelCache(st, 4, time.Minute)

	_, err := c.GetModel("nope")
	assert.ErrorIs(t, err, domain.ErrModelNotFound)
	_, err = c.GetModel("nope")
	assert.ErrorIs(t, err, domain.ErrModelNotFound)
	assert.Equal(t, 2, st.gets)
	assert.Equal(t, 0, c.Size())
}

func TestModelCache_EvictsLeastRecent(t *testing.T) {
	st := newCountingStore(t, "a", "b", "c")
	c := NewModelCache(st, 2, time.Minute)

	_, _ = c.GetModel("a")
	_, _ = c.GetModel("b")
	_, _ = c.GetModel("a") // a is now most recent
	_, _ = c.GetModel("c") // evicts b
	assert.Equal(t, 3, st.gets)

	_, _ = c.GetModel("a")
	assert.Equal(t, 3, st.gets)
	_, _ = c.GetModel("b")
	assert.Equal(t, 4, st.gets)
}

func TestModelCache_TTL(t *testing.T) {
	st := newCountingStore(t, "a")
	c := NewModelCache(st, 2, time.Nanosecond)

	_, _ = c.GetModel("a")
	time.Sleep(time.Millisecond)
	_, _ = c.GetModel("a")
	assert.Equal(t, 2, st.gets)
}

func TestModelCache_WritesInvalidate(t *testing.T) {
	st := newCountingStore(t, "a")
	c := NewModelCache(st, 2, time.Minute)

	_, _ = c.GetModel("a")
	require.NoError(t, c.PutModel(domain.Model{
		ModelInfo: domain.ModelInfo{Name: "a"},
		Table:     domain.ProbabilityTable{"a": -2},
	}))
	assert.Equal(t, 0, c.Size())

	m, err := c.GetModel("a")
	require.NoError(t, err)
	assert.Equal(t, -2.0, m.Table["a"])

	require.NoError(t, c.DeleteModel("a"))
	_, err = c.GetModel("a")
	assert.ErrorIs(t, err, domain.ErrModelNotFound)

	infos, err := c.ListModels()
	require.NoError(t, err)
	assert.Empty(t, infos)
	assert.NoError(t, c.Close())
}
