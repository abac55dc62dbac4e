package service

import (
	"context"
	"fmt"

	"hotel/infras/metrics"
	"hotel/infras/otel"
	"hotel/internal/domains/bill/model"
	"hotel/internal/domains/bill/model/dto"
	bookingModel "hotel/internal/domains/booking/model"
	roomModel "hotel/internal/domains/room/model"
	"hotel/internal/store"
	"hotel/shared"
	"hotel/shared/clock"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"hotel/shared/validator"

	"github.com/rs/zerolog/log"
)

type Bill interface {
	Generate(ctx context.Context, req dto.GenerateBillRequest) (dto.BillResponse, error)
	Pay(ctx context.Context, id string, req dto.PayBillRequest) (dto.BillResponse, error)
	Get(ctx context.Context, id string) (dto.BillResponse, error)
	GetAll(ctx context.Context, query gDto.QueryParams) (gDto.ListResponse[dto.BillResponse], error)
}

type serviceImpl struct {
	store   *store.Store
	clock   clock.Clock
	otel    otel.Otel
	metrics *metrics.Metrics
}

func New(st *store.Store, clk clock.Clock, otel otel.Otel, mtr *metrics.Metrics) Bill {
	return &serviceImpl{
		store:   st,
		clock:   clk,
		otel:    otel,
		metrics: mtr,
	}
}

func describe(state *store.Snapshot, bill model.Bill) (res dto.BillResponse) {
	res.FromModel(bill)

	booking, ok := state.Booking(bill.BookingID)
	if !ok {
		return res
	}

	room, ok := state.Room(booking.RoomNumber)
	if !ok {
		return res
	}

	name := constant.Unknown
	if guest, found := state.Guest(booking.GuestID); found {
		name = guest.Name
	}

	res.WithDetails(booking, name, room)

	return res
}

// Generate bills a booking for nights × the room's nightly price. A booking that already has a
// bill gets that bill back and nothing is written.
func (s *serviceImpl) Generate(ctx context.Context, req dto.GenerateBillRequest) (res dto.BillResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Bill.Generate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()
	defer func() { s.metrics.ObserveOperation("bill.generate", err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	var existing bool

	err = s.store.View(func(state *store.Snapshot) error {
		bill, ok := state.BillForBooking(req.BookingID)
		if !ok {
			return nil
		}

		existing = true
		res = describe(state, bill)

		return nil
	})
	if err != nil || existing {
		return res, err
	}

	err = s.store.Update(ctx, func(state *store.Snapshot) error {
		// another writer may have billed the booking since the read above
		if bill, ok := state.BillForBooking(req.BookingID); ok {
			res = describe(state, bill)

			return store.ErrUnchanged
		}

		booking, ok := state.Booking(req.BookingID)
		if !ok {
			return failure.NotFound(bookingModel.EntityName, req.BookingID) // nolint:wrapcheck
		}

		room, ok := state.Room(booking.RoomNumber)
		if !ok {
			return failure.NotFound(roomModel.EntityName, booking.RoomNumber) // nolint:wrapcheck
		}

		bill := model.Bill{
			BillID:    shared.NewID(state.IDTaken),
			BookingID: booking.BookingID,
			Amount:    float64(booking.Nights()) * room.Price,
			Status:    model.StatusUnpaid,
		}

		state.Bills = append(state.Bills, bill)
		res = describe(state, bill)

		return nil
	}, store.Bills)
	if err != nil {
		log.Error().Err(err).Str("booking_id", req.BookingID).Msg("failed to generate bill")

		return dto.BillResponse{}, err
	}

	log.Info().Str("bill_id", res.BillID).Float64("amount", res.Amount).Msg("bill generated")

	return res, nil
}

// Pay settles the whole bill. Underpayment is declined and overpayment is accepted as is.
func (s *serviceImpl) Pay(ctx context.Context, id string, req dto.PayBillRequest) (res dto.BillResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Bill.Pay")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()
	defer func() { s.metrics.ObserveOperation("bill.pay", err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	today := s.clock.Today()

	err = s.store.Update(ctx, func(state *store.Snapshot) error {
		idx := state.BillIndex(id)
		if idx < 0 {
			return failure.NotFound(model.EntityName, id) // nolint:wrapcheck
		}

		bill := &state.Bills[idx]

		if bill.IsPaid() {
			return failure.Conflict(fmt.Sprintf("bill %s is already paid", bill.BillID)) // nolint:wrapcheck
		}

		if req.Amount < bill.Amount {
			return failure.Conflict(fmt.Sprintf("payment of %.2f is less than the amount due %.2f", req.Amount, bill.Amount)) // nolint:wrapcheck
		}

		bill.Status = model.StatusPaid
		bill.PaymentDate = today
		res = describe(state, *bill)

		return nil
	}, store.Bills)
	if err != nil {
		log.Error().Err(err).Str("bill_id", id).Msg("failed to process payment")

		return dto.BillResponse{}, err
	}

	log.Info().Str("bill_id", id).Float64("paid", req.Amount).Msg("bill paid")

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BillResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Bill.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.store.View(func(state *store.Snapshot) error {
		bill, ok := state.Bill(id)
		if !ok {
			return failure.NotFound(model.EntityName, id) // nolint:wrapcheck
		}

		res = describe(state, bill)

		return nil
	})

	return res, err
}

func (s *serviceImpl) GetAll(ctx context.Context, query gDto.QueryParams) (res gDto.ListResponse[dto.BillResponse], err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Bill.GetAll")
	defer scope.End()

	bills := []dto.BillResponse{}

	_ = s.store.View(func(state *store.Snapshot) error {
		for _, bill := range state.Bills {
			bills = append(bills, describe(state, bill))
		}

		return nil
	})

	return shared.Paginate(bills, query), nil
}
