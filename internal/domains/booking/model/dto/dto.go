package dto

import (
	"fmt"

	"hotel/internal/domains/booking/model"
	gModel "hotel/shared/model"
)

type CreateBookingRequest struct {
	GuestID    string `json:"guest_id"    validate:"required,notblank"`
	RoomNumber string `json:"room_number" validate:"required,notblank"`
	CheckIn    string `json:"check_in"    validate:"required"`
	CheckOut   string `json:"check_out"   validate:"required"`
}

// UpdateBookingRequest keeps the current date when a field is nil.
type UpdateBookingRequest struct {
	CheckIn  *string `json:"check_in"`
	CheckOut *string `json:"check_out"`
}

type AvailabilityRequest struct {
	RoomNumber       string `json:"room_number"        validate:"required,notblank"`
	CheckIn          string `json:"check_in"           validate:"required"`
	CheckOut         string `json:"check_out"          validate:"required"`
	ExcludeBookingID string `json:"exclude_booking_id"`
}

type AvailabilityResponse struct {
	RoomNumber string   `json:"room_number"`
	CheckIn    string   `json:"check_in"`
	CheckOut   string   `json:"check_out"`
	Available  bool     `json:"available"`
	Conflicts  []string `json:"conflicts"`
}

type BookingResponse struct {
	BookingID  string `json:"booking_id"`
	GuestID    string `json:"guest_id"`
	GuestName  string `json:"guest_name"`
	RoomNumber string `json:"room_number"`
	CheckIn    string `json:"check_in"`
	CheckOut   string `json:"check_out"`
	Nights     int    `json:"nights"`
	Status     string `json:"status"`
	IsActive   bool   `json:"is_active"`
}

func (b *BookingResponse) FromModel(booking model.Booking, guestName string, today gModel.Date) {
	b.BookingID = booking.BookingID
	b.GuestID = booking.GuestID
	b.GuestName = guestName
	b.RoomNumber = booking.RoomNumber
	b.CheckIn = booking.CheckIn.String()
	b.CheckOut = booking.CheckOut.String()
	b.Nights = booking.Nights()
	b.Status = booking.Status(today)
	b.IsActive = booking.IsActive
}

// ParseStay parses both dates and checks the range. Messages name the offending field.
func ParseStay(checkIn, checkOut string) (in, out gModel.Date, err error) {
	in, err = ParseField("check_in", checkIn)
	if err != nil {
		return in, out, err
	}

	out, err = ParseField("check_out", checkOut)
	if err != nil {
		return in, out, err
	}

	if !out.After(in) {
		return in, out, fmt.Errorf("check_out (%s) must be after check_in (%s)", out, in)
	}

	return in, out, nil
}

func ParseField(field, value string) (gModel.Date, error) {
	date, err := gModel.ParseDate(value)
	if err != nil {
		return date, fmt.Errorf("invalid %s date %q, expected YYYY-MM-DD", field, value)
	}

	return date, nil
}
