package memstore

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ngram/internal/domain"
)

func TestMemoryStore_RoundTrip(t *testing.T) {
	s := NewMemoryStore()

	table := domain.ProbabilityTable{"a": -0.5, "b": -1.5}
	require.NoError(t, s.PutModel(domain.Model{
		ModelInfo: domain.ModelInfo{Name: "m", Order: domain.Unigram},
		Table:     table,
	}))

	// The store holds its own copy.
	table["a"] = 0

	got, err := s.GetModel("m")
	require.NoError(t, err)
	assert.Equal(t, -0.5, got.Table["a"])
	assert.Equal(t, 2, got.Entries)

	got.Table["b"] = 0
	again, err := s.GetModel("m")
	require.NoError(t, err)
	assert.Equal(t, -1.5, again.Table["b"])
}

func TestMemoryStore_ListDelete(t *testing.T) {
	s := NewMemoryStore()
	for _, name := range []string{"z", "a", "m"} {
		require.NoError(t, s.PutModel(domain.Model{ModelInfo: domain.ModelInfo{Name: name}}))
	}

	infos, err := s.ListModels()
	require.NoError(t, err)
	require.Len(t, infos, 3)
	assert.Equal(t, []string{"a", "m", "z"}, []string{infos[0].Name, infos[1].Name, infos[2].Name})

	require.NoError(t, s.DeleteModel("m"))
	assert.ErrorIs(t, s.DeleteModel("m"), domain.ErrModelNotFound)
	_, err = s.GetModel("m")
	assert.ErrorIs(t, err, domain.ErrModelNotFound)
	assert.Error(t, s.PutModel(domain.Model{}))
	assert.NoError(t, s.Close())
}

func TestMemoryStore_Concurrent(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, s.PutModel(domain.Model{
		ModelInfo: domain.ModelInfo{Name: "shared"},
		Table:     domain.ProbabilityTable{"x": -1},
	}))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				m, err := s.GetModel("shared")
				if err != nil {
					t.Error(err)
					return
				}
				m.Table["y"] = float64(j)
				_ = s.PutModel(m)
			}
		}()
	}
	wg.Wait()

	got, err := s.GetModel("shared")
	require.NoError(t, err)
	assert.Equal(t, -1.0, got.Table["x"])
}
