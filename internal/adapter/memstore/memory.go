package memstore

import (
	"fmt"
	"maps"
	"sort"
	"sync"

	"ngram/internal/domain"
	"ngram/internal/port"
)

// MemoryStore keeps models in process memory. Tables are copied on the way
// in and out so callers never share a map with the store.
type MemoryStore struct {
	mu     sync.RWMutex
	models map[string]domain.Model
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		models: make(map[string]domain.Model),
	}
}

func (s *MemoryStore) PutModel(model domain.Model) error {
	if model.Name == "" {
		return fmt.Errorf("model name is required")
	}
	model.Entries = len(model.Table)
	model.Table = maps.Clone(model.Table)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.models[model.Name] = model
	return nil
}

func (s *MemoryStore) GetModel(name string) (domain.Model, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	model, ok := s.models[name]
	if !ok {
		return domain.Model{}, fmt.Errorf("%w: %s", domain.ErrModelNotFound, name)
	}
	model.Table = maps.Clone(model.Table)
	return model, nil
}

func (s *MemoryStore) ListModels() ([]domain.ModelInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	infos := make([]domain.ModelInfo, 0, len(s.models))
	for _, model := range s.models {
		infos = append(infos, model.ModelInfo)
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos, nil
}

func (s *MemoryStore) DeleteModel(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.models[name]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrModelNotFound, name)
	}
	delete(s.models, name)
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}

var _ port.ModelStore = (*MemoryStore)(nil)
