package dto

import (
	"strings"

	"hotel/internal/domains/guest/model"
)

type RegisterGuestRequest struct {
	Name    string `json:"name"    validate:"required,notblank,max=100"`
	Phone   string `json:"phone"   validate:"omitempty,max=30"`
	Email   string `json:"email"   validate:"omitempty,email"`
	Address string `json:"address" validate:"omitempty,max=200"`
}

func (r *RegisterGuestRequest) ToModel(id string) model.Guest {
	return model.Guest{
		GuestID: id,
		Name:    strings.TrimSpace(r.Name),
		Phone:   strings.TrimSpace(r.Phone),
		Email:   strings.TrimSpace(r.Email),
		Address: strings.TrimSpace(r.Address),
	}
}

// UpdateGuestRequest leaves a field unchanged when it is nil. A non-nil empty string clears
// phone, email or address.
type UpdateGuestRequest struct {
	Name    *string `json:"name"    validate:"omitempty,notblank,max=100"`
	Phone   *string `json:"phone"   validate:"omitempty,max=30"`
	Email   *string `json:"email"   validate:"omitempty,email"`
	Address *string `json:"address" validate:"omitempty,max=200"`
}

func (u *UpdateGuestRequest) Apply(guest *model.Guest) {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}

	set(&guest.Name, u.Name)
	set(&guest.Phone, u.Phone)
	set(&guest.Email, u.Email)
	set(&guest.Address, u.Address)
}

type GuestResponse struct {
	GuestID  string `json:"guest_id"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Address  string `json:"address"`
	Bookings int    `json:"bookings"`
}

func (g *GuestResponse) FromModel(guest model.Guest, bookings int) {
	g.GuestID = guest.GuestID
	g.Name = guest.Name
	g.Phone = guest.Phone
	g.Email = guest.Email
	g.Address = guest.Address
	g.Bookings = bookings
}
