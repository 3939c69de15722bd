package dto

import (
	"time"

	"laundrypos/internal/domain"
)

type CustomerRequest struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
}

// RegisterRequest creates a customer and its first order in one call.
type RegisterRequest struct {
	CustomerRequest
	Order CreateOrderRequest `json:"order"`
}

type CustomerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Contact   string    `json:"contact"`
	CreatedAt time.Time `json:"createdAt"`
}

type CustomerBalanceResponse struct {
	CustomerResponse
	UnpaidTotal          float64 `json:"unpaidTotal"`
	UnpaidTotalFormatted string  `json:"unpaidTotalFormatted"`
}

type UnclaimedCountResponse struct {
	CustomerID string `json:"customerId"`
	Count      int    `json:"count"`
}

func NewCustomerResponse(c domain.Customer) CustomerResponse {
	return CustomerResponse{ID: c.ID, Name: c.Name, Contact: c.Contact, CreatedAt: c.CreatedAt}
}

func NewCustomerBalanceResponses(balances []domain.CustomerBalance, format func(float64) string) []CustomerBalanceResponse {
	out := make([]CustomerBalanceResponse, len(balances))
	for i, b := range balances {
		out[i] = CustomerBalanceResponse{
			CustomerResponse:     NewCustomerResponse(b.Customer),
			UnpaidTotal:          b.UnpaidTotal,
			UnpaidTotalFormatted: format(b.UnpaidTotal),
		}
	}
	return out
}
