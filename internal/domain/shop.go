package domain

import "strings"

const (
	DefaultWeightUnit = "kg"
	DefaultMessage    = "Welcome to our shop!"
)

type ShopProfile struct {
	BusinessName string
	Contact      string
	OwnerName    string
	WeightUnit   string
	ShopAddress  string
	Message      string
}

// WithDefaults fills the fields that have a default when they are blank.
func (p ShopProfile) WithDefaults() ShopProfile {
	if strings.TrimSpace(p.WeightUnit) == "" {
		p.WeightUnit = DefaultWeightUnit
	}
	if strings.TrimSpace(p.Message) == "" {
		p.Message = DefaultMessage
	}
	return p
}

// IsConfigured reports whether first-run setup has been completed.
func (p ShopProfile) IsConfigured() bool {
	return strings.TrimSpace(p.BusinessName) != "" && strings.TrimSpace(p.OwnerName) != ""
}

// PickupMessage is the text sent to a customer whose laundry is ready. It
// must be called on the profile as stored, before WithDefaults.
func (p ShopProfile) PickupMessage() string {
	if strings.TrimSpace(p.Message) != "" {
		return p.Message
	}
	return "Hello! Your laundry is ready for pick up @ " + p.BusinessName
}
