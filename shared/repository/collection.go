package repository

import (
	"context"
	"errors"
	"fmt"

	"hotel/infras/otel"
	"hotel/shared/constant"

	"github.com/rs/zerolog/log"
)

// Collection persists an ordered list of records as one document in a Backend.
// Per-entity repositories embed it.
type Collection[T any] struct {
	name    string
	backend Backend
	codec   Codec
	otel    otel.Otel
}

func NewCollection[T any](name string, backend Backend, codec Codec, otl otel.Otel) Collection[T] {
	return Collection[T]{
		name:    name,
		backend: backend,
		codec:   codec,
		otel:    otl,
	}
}

func (c *Collection[T]) Name() string {
	return c.name
}

// Load returns the stored records in their stored order. A collection that was never written is
// empty, not an error.
func (c *Collection[T]) Load(ctx context.Context) (items []T, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Load", constant.OtelRepositoryScopeName, c.name))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelCollectionAttributeKey, c.name)

	data, err := c.backend.Read(ctx, c.name)
	if errors.Is(err, ErrNotExist) {
		log.Debug().Str("collection", c.name).Msg("collection not found, starting empty")

		return []T{}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read collection (%s): %w", c.name, err)
	}

	items = []T{}
	if len(data) == 0 {
		return items, nil
	}

	if err = c.codec.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to decode collection (%s): %w", c.name, err)
	}

	if items == nil {
		items = []T{}
	}

	return items, nil
}

func (c *Collection[T]) Save(ctx context.Context, items []T) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Save", constant.OtelRepositoryScopeName, c.name))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelCollectionAttributeKey, c.name)
	scope.SetAttribute("count", len(items))

	if items == nil {
		items = []T{}
	}

	data, err := c.codec.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode collection (%s): %w", c.name, err)
	}

	if err = c.backend.Write(ctx, c.name, data); err != nil {
		return fmt.Errorf("failed to write collection (%s): %w", c.name, err)
	}

	return nil
}
