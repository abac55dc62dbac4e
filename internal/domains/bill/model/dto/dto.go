package dto

import (
	"hotel/internal/domains/bill/model"
	bookingModel "hotel/internal/domains/booking/model"
	roomModel "hotel/internal/domains/room/model"
	gModel "hotel/shared/model"
)

type GenerateBillRequest struct {
	BookingID string `json:"booking_id" validate:"required,notblank"`
}

type PayBillRequest struct {
	Amount float64 `json:"amount" validate:"gt=0"`
}

// BillDetails describes the stay a bill was generated for. It is absent once the booking is gone.
type BillDetails struct {
	GuestID     string  `json:"guest_id"`
	GuestName   string  `json:"guest_name"`
	RoomNumber  string  `json:"room_number"`
	RoomType    string  `json:"room_type"`
	CheckIn     string  `json:"check_in"`
	CheckOut    string  `json:"check_out"`
	Nights      int     `json:"nights"`
	NightlyRate float64 `json:"nightly_rate"`
}

type BillResponse struct {
	BillID      string       `json:"bill_id"`
	BookingID   string       `json:"booking_id"`
	Amount      float64      `json:"amount"`
	Status      string       `json:"status"`
	PaymentDate gModel.Date  `json:"payment_date"`
	Details     *BillDetails `json:"details,omitempty"`
}

func (b *BillResponse) FromModel(bill model.Bill) {
	b.BillID = bill.BillID
	b.BookingID = bill.BookingID
	b.Amount = bill.Amount
	b.Status = bill.Status
	b.PaymentDate = bill.PaymentDate
	b.Details = nil
}

// WithDetails attaches the stay. The nightly rate is the room's current price, which may differ
// from the rate frozen into the amount.
func (b *BillResponse) WithDetails(booking bookingModel.Booking, guestName string, room roomModel.Room) {
	b.Details = &BillDetails{
		GuestID:     booking.GuestID,
		GuestName:   guestName,
		RoomNumber:  booking.RoomNumber,
		RoomType:    room.Type,
		CheckIn:     booking.CheckIn.String(),
		CheckOut:    booking.CheckOut.String(),
		Nights:      booking.Nights(),
		NightlyRate: room.Price,
	}
}
