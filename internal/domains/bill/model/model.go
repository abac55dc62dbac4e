package model

import (
	"hotel/shared/model"
)

const (
	CollectionName = "bills"
	EntityName     = "bill"
)

const (
	StatusUnpaid = "UNPAID"
	StatusPaid   = "PAID"
)

// Bill settles one booking. Amount is frozen when the bill is generated; PaymentDate is set exactly
// when Status becomes PAID.
type Bill struct {
	BillID      string     `json:"bill_id"      yaml:"bill_id"`
	BookingID   string     `json:"booking_id"   yaml:"booking_id"`
	Amount      float64    `json:"amount"       yaml:"amount"`
	Status      string     `json:"status"       yaml:"status"`
	PaymentDate model.Date `json:"payment_date" yaml:"payment_date"`
}

func (b Bill) IsPaid() bool {
	return b.Status == StatusPaid
}

// PaidBetween reports whether the bill was settled on a day within [start, end].
func (b Bill) PaidBetween(start, end model.Date) bool {
	if !b.IsPaid() || b.PaymentDate.IsZero() {
		return false
	}

	return !b.PaymentDate.Before(start) && !b.PaymentDate.After(end)
}
