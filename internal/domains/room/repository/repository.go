package repository

import (
	"context"

	"hotel/infras/otel"
	"hotel/internal/domains/room/model"
	gRepo "hotel/shared/repository"
)

type Room interface {
	Name() string
	Load(ctx context.Context) ([]model.Room, error)
	Save(ctx context.Context, items []model.Room) error
}

type repositoryImpl struct {
	gRepo.Collection[model.Room]
}

func New(backend gRepo.Backend, codec gRepo.Codec, otel otel.Otel) Room {
	return &repositoryImpl{
		Collection: gRepo.NewCollection[model.Room](model.CollectionName, backend, codec, otel),
	}
}
