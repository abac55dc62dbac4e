package dto

import (
	"strings"

	"hotel/internal/domains/room/model"
)

type CreateRoomRequest struct {
	Number string  `json:"number" validate:"required,notblank,max=20"`
	Type   string  `json:"type"   validate:"required,notblank,max=50"`
	Price  float64 `json:"price"  validate:"gt=0"`
}

func (c *CreateRoomRequest) ToModel() model.Room {
	return model.Room{
		Number:     strings.TrimSpace(c.Number),
		Type:       strings.TrimSpace(c.Type),
		Price:      c.Price,
		IsOccupied: false,
	}
}

// UpdateRoomRequest leaves a field unchanged when it is nil.
type UpdateRoomRequest struct {
	Type  *string  `json:"type"  validate:"omitempty,notblank,max=50"`
	Price *float64 `json:"price" validate:"omitempty,gt=0"`
}

func (u *UpdateRoomRequest) Apply(room *model.Room) {
	if u.Type != nil {
		room.Type = strings.TrimSpace(*u.Type)
	}

	if u.Price != nil {
		room.Price = *u.Price
	}
}

type RoomResponse struct {
	Number   string  `json:"number"`
	Type     string  `json:"type"`
	Price    float64 `json:"price"`
	Occupied bool    `json:"occupied"`
}

func (r *RoomResponse) FromModel(room model.Room, occupied bool) {
	r.Number = room.Number
	r.Type = room.Type
	r.Price = room.Price
	r.Occupied = occupied
}
