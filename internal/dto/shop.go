package dto

import "laundrypos/internal/domain"

type ShopProfileRequest struct {
	BusinessName string `json:"businessName"`
	Contact      string `json:"contact"`
	OwnerName    string `json:"ownerName"`
	WeightUnit   string `json:"weightUnit"`
	ShopAddress  string `json:"shopAddress"`
	Message      string `json:"message"`
}

type ShopProfileResponse struct {
	BusinessName string `json:"businessName"`
	Contact      string `json:"contact"`
	OwnerName    string `json:"ownerName"`
	WeightUnit   string `json:"weightUnit"`
	ShopAddress  string `json:"shopAddress"`
	Message      string `json:"message"`
	Configured   bool   `json:"configured"`
}

type PickupMessageResponse struct {
	Message string `json:"message"`
}

// NewShopProfileResponse renders p with defaults applied; configured is
// computed by the caller from the stored profile.
func NewShopProfileResponse(p domain.ShopProfile, configured bool) ShopProfileResponse {
	return ShopProfileResponse{
		BusinessName: p.BusinessName,
		Contact:      p.Contact,
		OwnerName:    p.OwnerName,
		WeightUnit:   p.WeightUnit,
		ShopAddress:  p.ShopAddress,
		Message:      p.Message,
		Configured:   configured,
	}
}
