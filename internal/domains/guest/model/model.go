package model

const (
	CollectionName = "guests"
	EntityName     = "guest"
)

type Guest struct {
	GuestID string `json:"guest_id" yaml:"guest_id"`
	Name    string `json:"name"     yaml:"name"`
	Phone   string `json:"phone"    yaml:"phone"`
	Email   string `json:"email"    yaml:"email"`
	Address string `json:"address"  yaml:"address"`
}
