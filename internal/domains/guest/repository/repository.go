package repository

import (
	"context"

	"hotel/infras/otel"
	"hotel/internal/domains/guest/model"
	gRepo "hotel/shared/repository"
)

type Guest interface {
	Name() string
	Load(ctx context.Context) ([]model.Guest, error)
	Save(ctx context.Context, items []model.Guest) error
}

type repositoryImpl struct {
	gRepo.Collection[model.Guest]
}

func New(backend gRepo.Backend, codec gRepo.Codec, otel otel.Otel) Guest {
	return &repositoryImpl{
		Collection: gRepo.NewCollection[model.Guest](model.CollectionName, backend, codec, otel),
	}
}
