// Package storetest builds stores backed by process memory for package tests.
package storetest

import (
	"context"
	"testing"

	"hotel/infras/metrics"
	"hotel/infras/otel/mocks"
	billRepo "hotel/internal/domains/bill/repository"
	bookingRepo "hotel/internal/domains/booking/repository"
	guestRepo "hotel/internal/domains/guest/repository"
	roomRepo "hotel/internal/domains/room/repository"
	"hotel/internal/store"
	"hotel/shared/repository"

	"github.com/stretchr/testify/require"
)

// New returns a loaded store seeded with seed, plus the backend it persists to.
func New(t *testing.T, seed store.Snapshot) (*store.Store, *repository.MemoryBackend) {
	t.Helper()

	backend := repository.NewMemoryBackend()
	ctx := context.Background()

	codec, err := repository.NewCodec("json")
	require.NoError(t, err)

	rooms := roomRepo.New(backend, codec, mocks.NewOtel())
	guests := guestRepo.New(backend, codec, mocks.NewOtel())
	bookings := bookingRepo.New(backend, codec, mocks.NewOtel())
	bills := billRepo.New(backend, codec, mocks.NewOtel())

	require.NoError(t, rooms.Save(ctx, seed.Rooms))
	require.NoError(t, guests.Save(ctx, seed.Guests))
	require.NoError(t, bookings.Save(ctx, seed.Bookings))
	require.NoError(t, bills.Save(ctx, seed.Bills))

	st := store.New(rooms, guests, bookings, bills, mocks.NewOtel(), metrics.New())
	st.Load(ctx)

	return st, backend
}

// NewWithBackend returns a loaded store over backend, e.g. a gomock backend that fails writes.
func NewWithBackend(t *testing.T, backend repository.Backend) *store.Store {
	t.Helper()

	codec, err := repository.NewCodec("json")
	require.NoError(t, err)

	st := store.New(
		roomRepo.New(backend, codec, mocks.NewOtel()),
		guestRepo.New(backend, codec, mocks.NewOtel()),
		bookingRepo.New(backend, codec, mocks.NewOtel()),
		billRepo.New(backend, codec, mocks.NewOtel()),
		mocks.NewOtel(),
		metrics.New(),
	)
	st.Load(context.Background())

	return st
}

// Snapshot copies the current state out of st.
func Snapshot(t *testing.T, st *store.Store) store.Snapshot {
	t.Helper()

	var out store.Snapshot

	require.NoError(t, st.View(func(state *store.Snapshot) error {
		out = store.Snapshot{
			Rooms:    append(out.Rooms, state.Rooms...),
			Guests:   append(out.Guests, state.Guests...),
			Bookings: append(out.Bookings, state.Bookings...),
			Bills:    append(out.Bills, state.Bills...),
		}

		return nil
	}))

	return out
}
