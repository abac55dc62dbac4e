package model

const (
	CollectionName = "rooms"
	EntityName     = "room"
)

// Room is keyed by its number. IsOccupied is carried for the stored record shape only; occupancy is
// always derived from bookings.
type Room struct {
	Number     string  `json:"number"      yaml:"number"`
	Type       string  `json:"type"        yaml:"type"`
	Price      float64 `json:"price"       yaml:"price"`
	IsOccupied bool    `json:"is_occupied" yaml:"is_occupied"`
}
