package service

import (
	"context"

	"hotel/infras/otel"
	"hotel/internal/domains/guest/model"
	"hotel/internal/domains/guest/model/dto"
	"hotel/internal/store"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"hotel/shared/validator"

	"github.com/rs/zerolog/log"
)

type Guest interface {
	Register(ctx context.Context, req dto.RegisterGuestRequest) (dto.GuestResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateGuestRequest) (dto.GuestResponse, error)
	Get(ctx context.Context, id string) (dto.GuestResponse, error)
	Search(ctx context.Context, query gDto.QueryParams) (gDto.ListResponse[dto.GuestResponse], error)
}

type serviceImpl struct {
	store *store.Store
	otel  otel.Otel
}

func New(st *store.Store, otel otel.Otel) Guest {
	return &serviceImpl{
		store: st,
		otel:  otel,
	}
}

func countBookings(state *store.Snapshot, guestID string) int {
	count := 0

	for _, booking := range state.Bookings {
		if booking.GuestID == guestID {
			count++
		}
	}

	return count
}

func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterGuestRequest) (res dto.GuestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Guest.Register")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	err = s.store.Update(ctx, func(state *store.Snapshot) error {
		guest := req.ToModel(shared.NewID(state.IDTaken))
		state.Guests = append(state.Guests, guest)
		res.FromModel(guest, 0)

		return nil
	}, store.Guests)
	if err != nil {
		log.Error().Err(err).Msg("failed to register guest")

		return dto.GuestResponse{}, err
	}

	scope.SetAttribute("guest_id", res.GuestID)
	log.Info().Str("guest_id", res.GuestID).Msg("guest registered")

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpdateGuestRequest) (res dto.GuestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Guest.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	err = s.store.Update(ctx, func(state *store.Snapshot) error {
		idx := state.GuestIndex(id)
		if idx < 0 {
			return failure.NotFound(model.EntityName, id) // nolint:wrapcheck
		}

		req.Apply(&state.Guests[idx])
		res.FromModel(state.Guests[idx], countBookings(state, id))

		return nil
	}, store.Guests)
	if err != nil {
		log.Error().Err(err).Str("guest_id", id).Msg("failed to update guest")

		return dto.GuestResponse{}, err
	}

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.GuestResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Guest.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.store.View(func(state *store.Snapshot) error {
		guest, ok := state.Guest(id)
		if !ok {
			return failure.NotFound(model.EntityName, id) // nolint:wrapcheck
		}

		res.FromModel(guest, countBookings(state, id))

		return nil
	})

	return res, err
}

// Search matches the exact guest id or a case-insensitive substring of the name. An empty search
// lists every guest.
func (s *serviceImpl) Search(ctx context.Context, query gDto.QueryParams) (res gDto.ListResponse[dto.GuestResponse], err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Guest.Search")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, query.Search)

	guests := []dto.GuestResponse{}

	_ = s.store.View(func(state *store.Snapshot) error {
		for _, guest := range state.Guests {
			if query.Search != constant.Empty && guest.GuestID != query.Search && !shared.ContainsFold(guest.Name, query.Search) {
				continue
			}

			var item dto.GuestResponse
			item.FromModel(guest, countBookings(state, guest.GuestID))
			guests = append(guests, item)
		}

		return nil
	})

	return shared.Paginate(guests, query), nil
}
