package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"hotel/infras/otel"
	"hotel/shared/constant"
	"hotel/shared/repository"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	otelScopeName = "storage.postgres"

	queryRead  = `SELECT payload FROM hotel_collections WHERE name = $1`
	queryWrite = `INSERT INTO hotel_collections (name, payload, modified_at) VALUES ($1, $2, NOW())
ON CONFLICT (name) DO UPDATE SET payload = EXCLUDED.payload, modified_at = NOW()`
)

// Backend keeps one row per collection in hotel_collections, see migrations/postgres.
type Backend struct {
	db   *sqlx.DB
	otel otel.Otel
}

func NewBackend(db *sqlx.DB, otl otel.Otel) *Backend {
	return &Backend{db: db, otel: otl}
}

// Read implements repository.Backend.
func (b *Backend) Read(ctx context.Context, name string) (data []byte, err error) {
	ctx, scope := b.otel.NewScope(ctx, otelScopeName, otelScopeName+".Read")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryRead)
	scope.SetAttribute(constant.OtelCollectionAttributeKey, name)

	var payload string

	err = b.db.GetContext(ctx, &payload, queryRead, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotExist
	}

	if err != nil {
		log.Error().Err(err).Str("collection", name).Msg("failed to select collection")

		return nil, fmt.Errorf("failed to select collection: %w", err)
	}

	return []byte(payload), nil
}

// Write implements repository.Backend.
func (b *Backend) Write(ctx context.Context, name string, data []byte) (err error) {
	ctx, scope := b.otel.NewScope(ctx, otelScopeName, otelScopeName+".Write")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryWrite)
	scope.SetAttribute(constant.OtelCollectionAttributeKey, name)

	if _, err = b.db.ExecContext(ctx, queryWrite, name, string(data)); err != nil {
		log.Error().Err(err).Str("collection", name).Msg("failed to upsert collection")

		return fmt.Errorf("failed to upsert collection: %w", err)
	}

	return nil
}
