package di

import (
	"context"

	"hotel/infras/metrics"
	"hotel/infras/otel"
	billRepository "hotel/internal/domains/bill/repository"
	bookingRepository "hotel/internal/domains/booking/repository"
	guestRepository "hotel/internal/domains/guest/repository"
	roomRepository "hotel/internal/domains/room/repository"
	"hotel/internal/store"
)

// ProvideStore builds the store and loads every collection before anything can serve from it.
func ProvideStore(
	rooms roomRepository.Room,
	guests guestRepository.Guest,
	bookings bookingRepository.Booking,
	bills billRepository.Bill,
	otl otel.Otel,
	mtr *metrics.Metrics,
) *store.Store {
	st := store.New(rooms, guests, bookings, bills, otl, mtr)
	st.Load(context.Background())

	return st
}
