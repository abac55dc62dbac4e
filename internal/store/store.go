package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"hotel/infras/metrics"
	"hotel/infras/otel"
	billRepo "hotel/internal/domains/bill/repository"
	bookingRepo "hotel/internal/domains/booking/repository"
	guestRepo "hotel/internal/domains/guest/repository"
	roomRepo "hotel/internal/domains/room/repository"
	"hotel/shared/constant"
	"hotel/shared/failure"

	"github.com/rs/zerolog/log"
)

type Collection string

const (
	Rooms    Collection = "rooms"
	Guests   Collection = "guests"
	Bookings Collection = "bookings"
	Bills    Collection = "bills"
)

// ErrUnchanged lets an Update callback report that it found nothing to change. Update then
// returns nil without saving anything.
var ErrUnchanged = errors.New("state unchanged")

// Store owns the single in-memory copy of the hotel state. Readers share it; one writer at a time
// validates, persists and only then publishes its changes.
type Store struct {
	mu       sync.RWMutex
	state    *Snapshot
	rooms    roomRepo.Room
	guests   guestRepo.Guest
	bookings bookingRepo.Booking
	bills    billRepo.Bill
	otel     otel.Otel
	metrics  *metrics.Metrics
}

func New(rooms roomRepo.Room, guests guestRepo.Guest, bookings bookingRepo.Booking, bills billRepo.Bill, otl otel.Otel, mtr *metrics.Metrics) *Store {
	return &Store{
		state:    &Snapshot{},
		rooms:    rooms,
		guests:   guests,
		bookings: bookings,
		bills:    bills,
		otel:     otl,
		metrics:  mtr,
	}
}

// Load replaces the state with what the repositories hold. A collection that cannot be read starts
// empty without affecting the others.
func (s *Store) Load(ctx context.Context) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".Load")
	defer scope.End()

	state := &Snapshot{}

	state.Rooms = loadOrEmpty(ctx, Rooms, s.rooms.Load)
	state.Guests = loadOrEmpty(ctx, Guests, s.guests.Load)
	state.Bookings = loadOrEmpty(ctx, Bookings, s.bookings.Load)
	state.Bills = loadOrEmpty(ctx, Bills, s.bills.Load)

	s.mu.Lock()
	s.state = state
	s.mu.Unlock()

	log.Info().
		Int("rooms", len(state.Rooms)).
		Int("guests", len(state.Guests)).
		Int("bookings", len(state.Bookings)).
		Int("bills", len(state.Bills)).
		Msg("store loaded")
}

func loadOrEmpty[T any](ctx context.Context, name Collection, load func(context.Context) ([]T, error)) []T {
	items, err := load(ctx)
	if err != nil {
		log.Warn().Err(err).Str("collection", string(name)).Msg("failed to load collection, starting empty")

		return []T{}
	}

	return items
}

// View runs fn against the current state under a read lock. fn must not keep or modify it.
func (s *Store) View(fn func(state *Snapshot) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return fn(s.state)
}

// Update runs fn against a private copy of the state under the writer lock. When fn succeeds the
// named collections are saved from the copy, and the copy replaces the live state only if every
// save succeeded. Any error leaves the live state untouched.
func (s *Store) Update(ctx context.Context, fn func(state *Snapshot) error, collections ...Collection) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state.clone()

	if err = fn(next); err != nil {
		if errors.Is(err, ErrUnchanged) {
			return nil
		}

		return err
	}

	for _, collection := range collections {
		err = s.save(ctx, collection, next)
		s.metrics.ObserveStorageWrite(string(collection), err)

		if err != nil {
			log.Error().Err(err).Str("collection", string(collection)).Msg("failed to persist collection, change discarded")

			return failure.InternalError(fmt.Errorf("failed to save %s: %w", collection, err)) //nolint:wrapcheck
		}
	}

	s.state = next

	return nil
}

func (s *Store) save(ctx context.Context, collection Collection, state *Snapshot) error {
	switch collection {
	case Rooms:
		return s.rooms.Save(ctx, state.Rooms) //nolint:wrapcheck
	case Guests:
		return s.guests.Save(ctx, state.Guests) //nolint:wrapcheck
	case Bookings:
		return s.bookings.Save(ctx, state.Bookings) //nolint:wrapcheck
	case Bills:
		return s.bills.Save(ctx, state.Bills) //nolint:wrapcheck
	default:
		return fmt.Errorf("unknown collection %q", collection)
	}
}
