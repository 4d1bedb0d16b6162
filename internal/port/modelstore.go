package port

import "ngram/internal/domain"

type ModelStore interface {
	PutModel(model domain.Model) error

	GetModel(name string) (domain.Model, error)

	ListModels() ([]domain.ModelInfo, error)

	DeleteModel(name string) error

	Close() error
}
