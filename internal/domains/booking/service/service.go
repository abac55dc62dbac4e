package service

import (
	"context"
	"fmt"

	"hotel/infras/metrics"
	"hotel/infras/otel"
	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/booking/model/dto"
	guestModel "hotel/internal/domains/guest/model"
	roomModel "hotel/internal/domains/room/model"
	"hotel/internal/store"
	"hotel/shared"
	"hotel/shared/clock"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	gModel "hotel/shared/model"
	"hotel/shared/validator"

	"github.com/rs/zerolog/log"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateBookingRequest) (dto.BookingResponse, error)
	Cancel(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Search(ctx context.Context, query gDto.QueryParams) (gDto.ListResponse[dto.BookingResponse], error)
	Availability(ctx context.Context, req dto.AvailabilityRequest) (dto.AvailabilityResponse, error)
}

type serviceImpl struct {
	store   *store.Store
	clock   clock.Clock
	otel    otel.Otel
	metrics *metrics.Metrics
}

func New(st *store.Store, clk clock.Clock, otel otel.Otel, mtr *metrics.Metrics) Booking {
	return &serviceImpl{
		store:   st,
		clock:   clk,
		otel:    otel,
		metrics: mtr,
	}
}

func unavailable(roomNumber string, checkIn, checkOut gModel.Date) error {
	return failure.Conflict(fmt.Sprintf("room %s is not available from %s to %s", roomNumber, checkIn, checkOut)) // nolint:wrapcheck
}

func guestName(state *store.Snapshot, id string) string {
	if guest, ok := state.Guest(id); ok {
		return guest.Name
	}

	return constant.Unknown
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Booking.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()
	defer func() { s.metrics.ObserveOperation("booking.create", err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	today := s.clock.Today()

	err = s.store.Update(ctx, func(state *store.Snapshot) error {
		guest, ok := state.Guest(req.GuestID)
		if !ok {
			return failure.NotFound(guestModel.EntityName, req.GuestID) // nolint:wrapcheck
		}

		if _, ok = state.Room(req.RoomNumber); !ok {
			return failure.NotFound(roomModel.EntityName, req.RoomNumber) // nolint:wrapcheck
		}

		checkIn, checkOut, err := dto.ParseStay(req.CheckIn, req.CheckOut)
		if err != nil {
			return failure.BadRequest(err) // nolint:wrapcheck
		}

		if !model.IsAvailable(state.Bookings, req.RoomNumber, checkIn, checkOut, constant.Empty) {
			return unavailable(req.RoomNumber, checkIn, checkOut)
		}

		booking := model.Booking{
			BookingID:  shared.NewID(state.IDTaken),
			GuestID:    guest.GuestID,
			RoomNumber: req.RoomNumber,
			CheckIn:    checkIn,
			CheckOut:   checkOut,
			IsActive:   true,
		}

		state.Bookings = append(state.Bookings, booking)
		res.FromModel(booking, guest.Name, today)

		return nil
	}, store.Bookings)
	if err != nil {
		log.Error().Err(err).Str("guest_id", req.GuestID).Str("room", req.RoomNumber).Msg("failed to create booking")

		return dto.BookingResponse{}, err
	}

	scope.SetAttribute("booking_id", res.BookingID)
	log.Info().Str("booking_id", res.BookingID).Str("room", res.RoomNumber).Msg("booking created")

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpdateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Booking.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()
	defer func() { s.metrics.ObserveOperation("booking.update", err) }()

	today := s.clock.Today()

	err = s.store.Update(ctx, func(state *store.Snapshot) error {
		idx := state.BookingIndex(id)
		if idx < 0 {
			return failure.NotFound(model.EntityName, id) // nolint:wrapcheck
		}

		booking := &state.Bookings[idx]

		checkIn := booking.CheckIn.String()
		if req.CheckIn != nil {
			checkIn = *req.CheckIn
		}

		checkOut := booking.CheckOut.String()
		if req.CheckOut != nil {
			checkOut = *req.CheckOut
		}

		in, out, err := dto.ParseStay(checkIn, checkOut)
		if err != nil {
			return failure.BadRequest(err) // nolint:wrapcheck
		}

		if !model.IsAvailable(state.Bookings, booking.RoomNumber, in, out, booking.BookingID) {
			return unavailable(booking.RoomNumber, in, out)
		}

		booking.CheckIn = in
		booking.CheckOut = out
		res.FromModel(*booking, guestName(state, booking.GuestID), today)

		return nil
	}, store.Bookings)
	if err != nil {
		log.Error().Err(err).Str("booking_id", id).Msg("failed to update booking")

		return dto.BookingResponse{}, err
	}

	return res, nil
}

// Cancel removes the booking for good. A bill already generated for it is left in place.
func (s *serviceImpl) Cancel(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Booking.Cancel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()
	defer func() { s.metrics.ObserveOperation("booking.cancel", err) }()

	err = s.store.Update(ctx, func(state *store.Snapshot) error {
		idx := state.BookingIndex(id)
		if idx < 0 {
			return failure.NotFound(model.EntityName, id) // nolint:wrapcheck
		}

		state.Bookings = append(state.Bookings[:idx], state.Bookings[idx+1:]...)

		return nil
	}, store.Bookings)
	if err != nil {
		log.Error().Err(err).Str("booking_id", id).Msg("failed to cancel booking")

		return err
	}

	log.Info().Str("booking_id", id).Msg("booking cancelled")

	return nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Booking.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	today := s.clock.Today()

	err = s.store.View(func(state *store.Snapshot) error {
		booking, ok := state.Booking(id)
		if !ok {
			return failure.NotFound(model.EntityName, id) // nolint:wrapcheck
		}

		res.FromModel(booking, guestName(state, booking.GuestID), today)

		return nil
	})

	return res, err
}

// Search matches the search term exactly against booking id, guest id or room number. An empty
// term lists every booking.
func (s *serviceImpl) Search(ctx context.Context, query gDto.QueryParams) (res gDto.ListResponse[dto.BookingResponse], err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Booking.Search")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, query.Search)

	today := s.clock.Today()
	bookings := []dto.BookingResponse{}

	_ = s.store.View(func(state *store.Snapshot) error {
		for _, booking := range state.Bookings {
			term := query.Search
			if term != constant.Empty && booking.BookingID != term && booking.GuestID != term && booking.RoomNumber != term {
				continue
			}

			var item dto.BookingResponse
			item.FromModel(booking, guestName(state, booking.GuestID), today)
			bookings = append(bookings, item)
		}

		return nil
	})

	return shared.Paginate(bookings, query), nil
}

func (s *serviceImpl) Availability(ctx context.Context, req dto.AvailabilityRequest) (res dto.AvailabilityResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Booking.Availability")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	checkIn, checkOut, err := dto.ParseStay(req.CheckIn, req.CheckOut)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	err = s.store.View(func(state *store.Snapshot) error {
		if _, ok := state.Room(req.RoomNumber); !ok {
			return failure.NotFound(roomModel.EntityName, req.RoomNumber) // nolint:wrapcheck
		}

		conflicts := model.Conflicts(state.Bookings, req.RoomNumber, checkIn, checkOut, req.ExcludeBookingID)

		res = dto.AvailabilityResponse{
			RoomNumber: req.RoomNumber,
			CheckIn:    checkIn.String(),
			CheckOut:   checkOut.String(),
			Available:  len(conflicts) == 0,
			Conflicts:  make([]string, 0, len(conflicts)),
		}

		for _, conflict := range conflicts {
			res.Conflicts = append(res.Conflicts, conflict.BookingID)
		}

		return nil
	})

	return res, err
}
