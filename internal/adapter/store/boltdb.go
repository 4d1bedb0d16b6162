package store

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"
	"sort"

	"go.etcd.io/bbolt"

	"ngram/internal/domain"
)

var (
	bucketModels = []byte("models")
	bucketTables = []byte("tables")
	bucketStats  = []byte("stats")
)

// BoltStore persists trained models in a bbolt database. Each model has a
// JSON metadata record and a nested bucket of unit -> float64 entries.
type BoltStore struct {
	db *bbolt.DB
}

func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, b := range [][]byte{bucketModels, bucketTables, bucketStats} {
			if _, err := tx.CreateBucketIfNotExists(b); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", b, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltStore{db: db}, nil
}

func (s *BoltStore) DB() *bbolt.DB {
	return s.db
}

// PutModel stores model under its name, replacing any previous table.
func (s *BoltStore) PutModel(model domain.Model) error {
	if model.Name == "" {
		return fmt.Errorf("model name is required")
	}
	info := model.ModelInfo
	info.Entries = len(model.Table)

	meta, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to encode model %s: %w", model.Name, err)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		key := []byte(model.Name)
		tables := tx.Bucket(bucketTables)
		if tables.Bucket(key) != nil {
			if err := tables.DeleteBucket(key); err != nil {
				return err
			}
		}
		tb, err := tables.CreateBucket(key)
		if err != nil {
			return fmt.Errorf("failed to create table bucket: %w", err)
		}

		// bbolt favours sequential inserts.
		units := make([]string, 0, len(model.Table))
		for unit := range model.Table {
			units = append(units, unit)
		}
		sort.Strings(units)
		for _, unit := range units {
			if err := tb.Put([]byte(unit), encodeFloat(model.Table[unit])); err != nil {
				return err
			}
		}

		return tx.Bucket(bucketModels).Put(key, meta)
	})
}

// GetModel loads the model stored under name.
func (s *BoltStore) GetModel(name string) (domain.Model, error) {
	var model domain.Model
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketModels).Get([]byte(name))
		if data == nil {
			return fmt.Errorf("%w: %s", domain.ErrModelNotFound, name)
		}
		if err := json.Unmarshal(data, &model.ModelInfo); err != nil {
			return fmt.Errorf("failed to decode model %s: %w", name, err)
		}

		model.Table = make(domain.ProbabilityTable, model.Entries)
		tb := tx.Bucket(bucketTables).Bucket([]byte(name))
		if tb == nil {
			return nil
		}
		return tb.ForEach(func(k, v []byte) error {
			p, err := decodeFloat(v)
			if err != nil {
				return fmt.Errorf("entry %q: %w", k, err)
			}
			model.Table[string(k)] = p
			return nil
		})
	})
	return model, err
}

// ListModels returns the metadata of every stored model ordered by name.
func (s *BoltStore) ListModels() ([]domain.ModelInfo, error) {
	var infos []domain.ModelInfo
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketModels).ForEach(func(k, v []byte) error {
			var info domain.ModelInfo
			if err := json.Unmarshal(v, &info); err != nil {
				return fmt.Errorf("failed to decode model %s: %w", k, err)
			}
			infos = append(infos, info)
			return nil
		})
	})
	return infos, err
}

// DeleteModel removes the model stored under name.
func (s *BoltStore) DeleteModel(name string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		key := []byte(name)
		models := tx.Bucket(bucketModels)
		if models.Get(key) == nil {
			return fmt.Errorf("%w: %s", domain.ErrModelNotFound, name)
		}
		if err := models.Delete(key); err != nil {
			return err
		}
		tables := tx.Bucket(bucketTables)
		if tables.Bucket(key) != nil {
			return tables.DeleteBucket(key)
		}
		return nil
	})
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}

func encodeFloat(f float64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, math.Float64bits(f))
	return buf
}

func decodeFloat(b []byte) (float64, error) {
	if len(b) != 8 {
		return 0, fmt.Errorf("invalid float encoding of %d bytes", len(b))
	}
	return math.Float64frombits(binary.BigEndian.Uint64(b)), nil
}
