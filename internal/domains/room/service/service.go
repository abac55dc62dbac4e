package service

import (
	"context"
	"fmt"

	"hotel/infras/otel"
	bookingModel "hotel/internal/domains/booking/model"
	"hotel/internal/domains/room/model"
	"hotel/internal/domains/room/model/dto"
	"hotel/internal/store"
	"hotel/shared"
	"hotel/shared/clock"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"hotel/shared/validator"

	"github.com/rs/zerolog/log"
)

type Room interface {
	Create(ctx context.Context, req dto.CreateRoomRequest) (dto.RoomResponse, error)
	Update(ctx context.Context, number string, req dto.UpdateRoomRequest) (dto.RoomResponse, error)
	Get(ctx context.Context, number string) (dto.RoomResponse, error)
	GetAll(ctx context.Context, query gDto.QueryParams) (gDto.ListResponse[dto.RoomResponse], error)
}

type serviceImpl struct {
	store *store.Store
	clock clock.Clock
	otel  otel.Otel
}

func New(st *store.Store, clk clock.Clock, otel otel.Otel) Room {
	return &serviceImpl{
		store: st,
		clock: clk,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRoomRequest) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Room.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	room := req.ToModel()
	scope.SetAttribute("room", room.Number)

	err = s.store.Update(ctx, func(state *store.Snapshot) error {
		if _, exists := state.Room(room.Number); exists {
			return failure.Conflict(fmt.Sprintf("room %s already exists", room.Number)) // nolint:wrapcheck
		}

		state.Rooms = append(state.Rooms, room)

		return nil
	}, store.Rooms)
	if err != nil {
		log.Error().Err(err).Str("room", room.Number).Msg("failed to create room")

		return res, err
	}

	log.Info().Str("room", room.Number).Str("type", room.Type).Msg("room created")

	res.FromModel(room, false)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, number string, req dto.UpdateRoomRequest) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Room.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	today := s.clock.Today()

	err = s.store.Update(ctx, func(state *store.Snapshot) error {
		idx := state.RoomIndex(number)
		if idx < 0 {
			return failure.NotFound(model.EntityName, number) // nolint:wrapcheck
		}

		req.Apply(&state.Rooms[idx])
		res.FromModel(state.Rooms[idx], bookingModel.Occupied(state.Bookings, number, today))

		return nil
	}, store.Rooms)
	if err != nil {
		log.Error().Err(err).Str("room", number).Msg("failed to update room")

		return dto.RoomResponse{}, err
	}

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, number string) (res dto.RoomResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Room.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	today := s.clock.Today()

	err = s.store.View(func(state *store.Snapshot) error {
		room, ok := state.Room(number)
		if !ok {
			return failure.NotFound(model.EntityName, number) // nolint:wrapcheck
		}

		res.FromModel(room, bookingModel.Occupied(state.Bookings, number, today))

		return nil
	})

	return res, err
}

func (s *serviceImpl) GetAll(ctx context.Context, query gDto.QueryParams) (res gDto.ListResponse[dto.RoomResponse], err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Room.GetAll")
	defer scope.End()

	today := s.clock.Today()
	rooms := []dto.RoomResponse{}

	_ = s.store.View(func(state *store.Snapshot) error {
		for _, room := range state.Rooms {
			var item dto.RoomResponse
			item.FromModel(room, bookingModel.Occupied(state.Bookings, room.Number, today))
			rooms = append(rooms, item)
		}

		return nil
	})

	return shared.Paginate(rooms, query), nil
}
