package repository

import (
	"context"

	"hotel/infras/otel"
	"hotel/internal/domains/booking/model"
	gRepo "hotel/shared/repository"
)

type Booking interface {
	Name() string
	Load(ctx context.Context) ([]model.Booking, error)
	Save(ctx context.Context, items []model.Booking) error
}

type repositoryImpl struct {
	gRepo.Collection[model.Booking]
}

func New(backend gRepo.Backend, codec gRepo.Codec, otel otel.Otel) Booking {
	return &repositoryImpl{
		Collection: gRepo.NewCollection[model.Booking](model.CollectionName, backend, codec, otel),
	}
}
