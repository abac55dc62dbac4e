package repository

import (
	"context"

	"hotel/infras/otel"
	"hotel/internal/domains/bill/model"
	gRepo "hotel/shared/repository"
)

type Bill interface {
	Name() string
	Load(ctx context.Context) ([]model.Bill, error)
	Save(ctx context.Context, items []model.Bill) error
}

type repositoryImpl struct {
	gRepo.Collection[model.Bill]
}

func New(backend gRepo.Backend, codec gRepo.Codec, otel otel.Otel) Bill {
	return &repositoryImpl{
		Collection: gRepo.NewCollection[model.Bill](model.CollectionName, backend, codec, otel),
	}
}
