package service

import (
	"context"
	"fmt"
	"slices"

	"hotel/infras/otel"
	bookingModel "hotel/internal/domains/booking/model"
	bookingDto "hotel/internal/domains/booking/model/dto"
	"hotel/internal/domains/report/model/dto"
	"hotel/internal/store"
	"hotel/shared/clock"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/validator"
)

// Report aggregates read-only views over the store. Nothing here writes.
type Report interface {
	Occupancy(ctx context.Context) (dto.OccupancyReport, error)
	Revenue(ctx context.Context, req dto.RevenueRequest) (dto.RevenueReport, error)
	GuestStatistics(ctx context.Context) (dto.GuestStatistics, error)
}

type serviceImpl struct {
	store *store.Store
	clock clock.Clock
	otel  otel.Otel
}

func New(st *store.Store, clk clock.Clock, otel otel.Otel) Report {
	return &serviceImpl{
		store: st,
		clock: clk,
		otel:  otel,
	}
}

func rate(part, total int) float64 {
	if total == 0 {
		return 0
	}

	return float64(part) / float64(total) * constant.Percent
}

// Occupancy reports which rooms are held tonight, overall and per room type. A stay holds its room
// from the check-in day up to but excluding the checkout day, so a room whose guest leaves today
// counts as available.
func (s *serviceImpl) Occupancy(ctx context.Context) (res dto.OccupancyReport, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Report.Occupancy")
	defer scope.End()

	today := s.clock.Today()

	res = dto.OccupancyReport{
		Date:   today.String(),
		Rooms:  []dto.RoomOccupancy{},
		ByType: []dto.TypeOccupancy{},
	}

	_ = s.store.View(func(state *store.Snapshot) error {
		byType := map[string]int{}

		for _, room := range state.Rooms {
			occupied := bookingModel.Occupied(state.Bookings, room.Number, today)

			idx, ok := byType[room.Type]
			if !ok {
				idx = len(res.ByType)
				byType[room.Type] = idx
				res.ByType = append(res.ByType, dto.TypeOccupancy{Type: room.Type})
			}

			res.ByType[idx].Total++

			if occupied {
				res.Occupied++
				res.ByType[idx].Occupied++
			}

			res.Rooms = append(res.Rooms, dto.RoomOccupancy{Number: room.Number, Type: room.Type, Occupied: occupied})
		}

		return nil
	})

	res.Total = len(res.Rooms)
	res.Available = res.Total - res.Occupied
	res.Rate = rate(res.Occupied, res.Total)

	for i := range res.ByType {
		res.ByType[i].Rate = rate(res.ByType[i].Occupied, res.ByType[i].Total)
	}

	return res, nil
}

// Revenue sums bills paid within [start, end] and counts unpaid bills whose stay touches the range.
// A paid bill whose booking or room is gone still counts toward the total but not toward any type.
func (s *serviceImpl) Revenue(ctx context.Context, req dto.RevenueRequest) (res dto.RevenueReport, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Report.Revenue")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	start, err := bookingDto.ParseField("start", req.Start)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	end, err := bookingDto.ParseField("end", req.End)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	if end.Before(start) {
		return res, failure.BadRequestFromString(fmt.Sprintf("end (%s) must not be before start (%s)", end, start)) // nolint:wrapcheck
	}

	res = dto.RevenueReport{
		Start:  start.String(),
		End:    end.String(),
		ByType: []dto.TypeRevenue{},
	}

	_ = s.store.View(func(state *store.Snapshot) error {
		byType := map[string]int{}

		for _, bill := range state.Bills {
			booking, hasBooking := state.Booking(bill.BookingID)

			if !bill.IsPaid() {
				if hasBooking && booking.Intersects(start, end) {
					res.UnpaidBills++
				}

				continue
			}

			if !bill.PaidBetween(start, end) {
				continue
			}

			res.Total += bill.Amount
			res.PaidBills++

			if !hasBooking {
				continue
			}

			room, ok := state.Room(booking.RoomNumber)
			if !ok {
				continue
			}

			idx, ok := byType[room.Type]
			if !ok {
				idx = len(res.ByType)
				byType[room.Type] = idx
				res.ByType = append(res.ByType, dto.TypeRevenue{Type: room.Type})
			}

			res.ByType[idx].Revenue += bill.Amount
		}

		return nil
	})

	for i := range res.ByType {
		if res.Total > 0 {
			res.ByType[i].Percentage = res.ByType[i].Revenue / res.Total * constant.Percent
		}
	}

	return res, nil
}

func (s *serviceImpl) GuestStatistics(ctx context.Context) (res dto.GuestStatistics, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Report.GuestStatistics")
	defer scope.End()

	res.TopGuests = []dto.TopGuest{}

	_ = s.store.View(func(state *store.Snapshot) error {
		var ranking []dto.TopGuest

		counts := map[string]int{}

		for _, booking := range state.Bookings {
			idx, ok := counts[booking.GuestID]
			if !ok {
				idx = len(ranking)
				counts[booking.GuestID] = idx

				name := constant.Unknown
				if guest, found := state.Guest(booking.GuestID); found {
					name = guest.Name
				}

				ranking = append(ranking, dto.TopGuest{GuestID: booking.GuestID, Name: name})
			}

			ranking[idx].Bookings++
		}

		res.Total = len(state.Guests)

		for _, guest := range state.Guests {
			if _, ok := counts[guest.GuestID]; ok {
				res.WithBookings++
			}
		}

		res.WithoutBookings = res.Total - res.WithBookings

		slices.SortStableFunc(ranking, func(a, b dto.TopGuest) int {
			return b.Bookings - a.Bookings
		})

		res.TopGuests = append(res.TopGuests, ranking[:min(len(ranking), constant.TopGuestLimit)]...)

		return nil
	})

	return res, nil
}
