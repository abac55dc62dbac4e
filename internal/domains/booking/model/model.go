package model

import (
	"hotel/shared/model"
)

const (
	CollectionName = "bookings"
	EntityName     = "booking"
)

const (
	StatusUpcoming  = "upcoming"
	StatusInHouse   = "in_house"
	StatusCompleted = "completed"
)

// Booking reserves a room for the nights in [CheckIn, CheckOut). The checkout day itself is free
// for the next guest.
type Booking struct {
	BookingID  string     `json:"booking_id"  yaml:"booking_id"`
	GuestID    string     `json:"guest_id"    yaml:"guest_id"`
	RoomNumber string     `json:"room_number" yaml:"room_number"`
	CheckIn    model.Date `json:"check_in"    yaml:"check_in"`
	CheckOut   model.Date `json:"check_out"   yaml:"check_out"`
	IsActive   bool       `json:"is_active"   yaml:"is_active"`
}

// Overlaps reports whether the stay shares at least one night with [checkIn, checkOut).
func (b Booking) Overlaps(checkIn, checkOut model.Date) bool {
	return checkIn.Before(b.CheckOut) && checkOut.After(b.CheckIn)
}

// Covers reports whether the guest holds the room on the night of day.
func (b Booking) Covers(day model.Date) bool {
	return !day.Before(b.CheckIn) && day.Before(b.CheckOut)
}

// Intersects reports whether any night of the stay falls on a day in the closed range [start, end].
func (b Booking) Intersects(start, end model.Date) bool {
	return !b.CheckIn.After(end) && b.CheckOut.After(start)
}

func (b Booking) Nights() int {
	return b.CheckIn.DaysUntil(b.CheckOut)
}

// Status is derived from the calendar and never stored.
func (b Booking) Status(today model.Date) string {
	switch {
	case today.Before(b.CheckIn):
		return StatusUpcoming
	case today.Before(b.CheckOut):
		return StatusInHouse
	default:
		return StatusCompleted
	}
}
