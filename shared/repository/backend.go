package repository

//go:generate go run go.uber.org/mock/mockgen -source=./backend.go -destination=./mocks/backend_mock.go -package=mocks

import (
	"context"
	"errors"
)

// ErrNotExist is returned by a Backend when the named collection has never been written.
var ErrNotExist = errors.New("collection does not exist")

// Backend stores one encoded document per named collection.
type Backend interface {
	Read(ctx context.Context, name string) ([]byte, error)
	Write(ctx context.Context, name string, data []byte) error
}
