package store

import (
	"slices"

	billModel "hotel/internal/domains/bill/model"
	bookingModel "hotel/internal/domains/booking/model"
	guestModel "hotel/internal/domains/guest/model"
	roomModel "hotel/internal/domains/room/model"
)

// Snapshot is the whole hotel state. Slices keep insertion order; lookups scan by natural key.
type Snapshot struct {
	Rooms    []roomModel.Room
	Guests   []guestModel.Guest
	Bookings []bookingModel.Booking
	Bills    []billModel.Bill
}

func (s *Snapshot) clone() *Snapshot {
	return &Snapshot{
		Rooms:    slices.Clone(s.Rooms),
		Guests:   slices.Clone(s.Guests),
		Bookings: slices.Clone(s.Bookings),
		Bills:    slices.Clone(s.Bills),
	}
}

func (s *Snapshot) RoomIndex(number string) int {
	return slices.IndexFunc(s.Rooms, func(r roomModel.Room) bool { return r.Number == number })
}

func (s *Snapshot) Room(number string) (roomModel.Room, bool) {
	if i := s.RoomIndex(number); i >= 0 {
		return s.Rooms[i], true
	}

	return roomModel.Room{}, false
}

func (s *Snapshot) GuestIndex(id string) int {
	return slices.IndexFunc(s.Guests, func(g guestModel.Guest) bool { return g.GuestID == id })
}

func (s *Snapshot) Guest(id string) (guestModel.Guest, bool) {
	if i := s.GuestIndex(id); i >= 0 {
		return s.Guests[i], true
	}

	return guestModel.Guest{}, false
}

func (s *Snapshot) BookingIndex(id string) int {
	return slices.IndexFunc(s.Bookings, func(b bookingModel.Booking) bool { return b.BookingID == id })
}

func (s *Snapshot) Booking(id string) (bookingModel.Booking, bool) {
	if i := s.BookingIndex(id); i >= 0 {
		return s.Bookings[i], true
	}

	return bookingModel.Booking{}, false
}

func (s *Snapshot) BillIndex(id string) int {
	return slices.IndexFunc(s.Bills, func(b billModel.Bill) bool { return b.BillID == id })
}

func (s *Snapshot) Bill(id string) (billModel.Bill, bool) {
	if i := s.BillIndex(id); i >= 0 {
		return s.Bills[i], true
	}

	return billModel.Bill{}, false
}

// BillForBooking returns the bill generated for bookingID, if any.
func (s *Snapshot) BillForBooking(bookingID string) (billModel.Bill, bool) {
	i := slices.IndexFunc(s.Bills, func(b billModel.Bill) bool { return b.BookingID == bookingID })
	if i < 0 {
		return billModel.Bill{}, false
	}

	return s.Bills[i], true
}

// IDTaken reports whether id is already used as a guest, booking or bill key.
func (s *Snapshot) IDTaken(id string) bool {
	return s.GuestIndex(id) >= 0 || s.BookingIndex(id) >= 0 || s.BillIndex(id) >= 0
}
