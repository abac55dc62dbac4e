package dto

type RevenueRequest struct {
	Start string `json:"start" validate:"required"`
	End   string `json:"end"   validate:"required"`
}

type RoomOccupancy struct {
	Number   string `json:"number"`
	Type     string `json:"type"`
	Occupied bool   `json:"occupied"`
}

type TypeOccupancy struct {
	Type     string  `json:"type"`
	Total    int     `json:"total"`
	Occupied int     `json:"occupied"`
	Rate     float64 `json:"rate"`
}

type OccupancyReport struct {
	Date      string          `json:"date"`
	Total     int             `json:"total"`
	Occupied  int             `json:"occupied"`
	Available int             `json:"available"`
	Rate      float64         `json:"rate"`
	Rooms     []RoomOccupancy `json:"rooms"`
	ByType    []TypeOccupancy `json:"by_type"`
}

type TypeRevenue struct {
	Type       string  `json:"type"`
	Revenue    float64 `json:"revenue"`
	Percentage float64 `json:"percentage"`
}

type RevenueReport struct {
	Start       string        `json:"start"`
	End         string        `json:"end"`
	Total       float64       `json:"total"`
	PaidBills   int           `json:"paid_bills"`
	UnpaidBills int           `json:"unpaid_bills"`
	ByType      []TypeRevenue `json:"by_type"`
}

type TopGuest struct {
	GuestID  string `json:"guest_id"`
	Name     string `json:"name"`
	Bookings int    `json:"bookings"`
}

type GuestStatistics struct {
	Total           int        `json:"total"`
	WithBookings    int        `json:"with_bookings"`
	WithoutBookings int        `json:"without_bookings"`
	TopGuests       []TopGuest `json:"top_guests"`
}
