package model

import (
	"hotel/shared/model"
)

// IsAvailable scans every booking of roomNumber, skipping excludeID, and reports whether none of
// them overlaps [checkIn, checkOut). Back-to-back stays do not overlap.
func IsAvailable(bookings []Booking, roomNumber string, checkIn, checkOut model.Date, excludeID string) bool {
	return len(Conflicts(bookings, roomNumber, checkIn, checkOut, excludeID)) == 0
}

// Conflicts returns the bookings that block [checkIn, checkOut) for roomNumber.
func Conflicts(bookings []Booking, roomNumber string, checkIn, checkOut model.Date, excludeID string) []Booking {
	var conflicts []Booking

	for _, booking := range bookings {
		if booking.RoomNumber != roomNumber {
			continue
		}

		if excludeID != "" && booking.BookingID == excludeID {
			continue
		}

		if booking.Overlaps(checkIn, checkOut) {
			conflicts = append(conflicts, booking)
		}
	}

	return conflicts
}

// Occupied reports whether some booking holds roomNumber on the night of day.
func Occupied(bookings []Booking, roomNumber string, day model.Date) bool {
	for _, booking := range bookings {
		if booking.RoomNumber == roomNumber && booking.Covers(day) {
			return true
		}
	}

	return false
}
