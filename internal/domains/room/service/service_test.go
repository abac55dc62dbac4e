package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel/infras/otel/mocks"
	bookingModel "hotel/internal/domains/booking/model"
	"hotel/internal/domains/room/model"
	"hotel/internal/domains/room/model/dto"
	"hotel/internal/domains/room/service"
	"hotel/internal/store"
	"hotel/internal/store/storetest"
	"hotel/shared/clock"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	gModel "hotel/shared/model"
	"hotel/shared/repository"
	repoMocks "hotel/shared/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var today = gModel.NewDate(2024, time.June, 2)

func seed() store.Snapshot {
	return store.Snapshot{
		Rooms: []model.Room{
			{Number: "101", Type: "Deluxe", Price: 100},
			{Number: "102", Type: "Standard", Price: 60},
		},
		Bookings: []bookingModel.Booking{
			{
				BookingID:  "b1",
				GuestID:    "g1",
				RoomNumber: "101",
				CheckIn:    gModel.NewDate(2024, time.June, 1),
				CheckOut:   gModel.NewDate(2024, time.June, 4),
				IsActive:   true,
			},
		},
	}
}

func ptr[T any](v T) *T {
	return &v
}

func TestRoomService_Create(t *testing.T) {
	tests := []struct {
		name    string
		req     dto.CreateRoomRequest
		wantErr func(error) bool
	}{
		{
			name: "successful creation",
			req:  dto.CreateRoomRequest{Number: " 201 ", Type: "Suite", Price: 250},
		},
		{
			name:    "duplicate number",
			req:     dto.CreateRoomRequest{Number: "101", Type: "Suite", Price: 250},
			wantErr: failure.IsConflict,
		},
		{
			name:    "non positive price",
			req:     dto.CreateRoomRequest{Number: "201", Type: "Suite", Price: 0},
			wantErr: failure.IsBadRequest,
		},
		{
			name:    "missing type",
			req:     dto.CreateRoomRequest{Number: "201", Price: 80},
			wantErr: failure.IsBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, _ := storetest.New(t, seed())
			svc := service.New(st, clock.Fixed(today), mocks.NewOtel())

			res, err := svc.Create(context.Background(), tt.req)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, tt.wantErr(err), err.Error())
				assert.Len(t, storetest.Snapshot(t, st).Rooms, 2)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "201", res.Number)
			assert.False(t, res.Occupied)

			rooms := storetest.Snapshot(t, st).Rooms
			require.Len(t, rooms, 3)
			assert.Equal(t, "201", rooms[2].Number)
			assert.False(t, rooms[2].IsOccupied)
		})
	}
}

func TestRoomService_Update(t *testing.T) {
	tests := []struct {
		name     string
		number   string
		req      dto.UpdateRoomRequest
		expected dto.RoomResponse
		wantErr  func(error) bool
	}{
		{
			name:     "price only keeps type",
			number:   "101",
			req:      dto.UpdateRoomRequest{Price: ptr(120.0)},
			expected: dto.RoomResponse{Number: "101", Type: "Deluxe", Price: 120, Occupied: true},
		},
		{
			name:     "type only keeps price",
			number:   "102",
			req:      dto.UpdateRoomRequest{Type: ptr("Family")},
			expected: dto.RoomResponse{Number: "102", Type: "Family", Price: 60},
		},
		{
			name:     "empty update keeps everything",
			number:   "102",
			req:      dto.UpdateRoomRequest{},
			expected: dto.RoomResponse{Number: "102", Type: "Standard", Price: 60},
		},
		{
			name:    "unknown room",
			number:  "999",
			req:     dto.UpdateRoomRequest{Price: ptr(120.0)},
			wantErr: failure.IsNotFound,
		},
		{
			name:    "negative price",
			number:  "101",
			req:     dto.UpdateRoomRequest{Price: ptr(-5.0)},
			wantErr: failure.IsBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, _ := storetest.New(t, seed())
			svc := service.New(st, clock.Fixed(today), mocks.NewOtel())

			res, err := svc.Update(context.Background(), tt.number, tt.req)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, tt.wantErr(err), err.Error())

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, res)

			got, err := svc.Get(context.Background(), tt.number)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestRoomService_UpdatePersistFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := repoMocks.NewMockBackend(ctrl)

	backend.EXPECT().Read(gomock.Any(), "rooms").Return([]byte(`[{"number":"101","type":"Deluxe","price":100,"is_occupied":false}]`), nil)
	backend.EXPECT().Read(gomock.Any(), gomock.Any()).Return(nil, repository.ErrNotExist).Times(3)
	backend.EXPECT().Write(gomock.Any(), "rooms", gomock.Any()).Return(errors.New("disk full"))

	st := storetest.NewWithBackend(t, backend)
	svc := service.New(st, clock.Fixed(today), mocks.NewOtel())

	_, err := svc.Update(context.Background(), "101", dto.UpdateRoomRequest{Price: ptr(500.0)})
	require.Error(t, err)

	room, err := svc.Get(context.Background(), "101")
	require.NoError(t, err)
	assert.Equal(t, 100.0, room.Price)
}

func TestRoomService_GetAll(t *testing.T) {
	st, _ := storetest.New(t, seed())

	tests := []struct {
		name     string
		today    gModel.Date
		query    gDto.QueryParams
		expected []dto.RoomResponse
	}{
		{
			name:  "occupancy derived from bookings",
			today: today,
			expected: []dto.RoomResponse{
				{Number: "101", Type: "Deluxe", Price: 100, Occupied: true},
				{Number: "102", Type: "Standard", Price: 60},
			},
		},
		{
			name:  "checkout day is free",
			today: gModel.NewDate(2024, time.June, 4),
			expected: []dto.RoomResponse{
				{Number: "101", Type: "Deluxe", Price: 100},
				{Number: "102", Type: "Standard", Price: 60},
			},
		},
		{
			name:  "paginated",
			today: today,
			query: gDto.QueryParams{Page: 2, Limit: 1},
			expected: []dto.RoomResponse{
				{Number: "102", Type: "Standard", Price: 60},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := service.New(st, clock.Fixed(tt.today), mocks.NewOtel())

			res, err := svc.GetAll(context.Background(), tt.query)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, res.Items)
		})
	}
}

func TestRoomService_Get(t *testing.T) {
	st, _ := storetest.New(t, seed())
	svc := service.New(st, clock.Fixed(today), mocks.NewOtel())

	_, err := svc.Get(context.Background(), "404")

	require.Error(t, err)
	assert.True(t, failure.IsNotFound(err))
	assert.Equal(t, "room 404 not found", err.Error())
}
