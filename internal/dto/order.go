package dto

import (
	"time"

	"laundrypos/internal/domain"
)

type CreateOrderRequest struct {
	ServiceType  string   `json:"serviceType"`
	Weight       *float64 `json:"weight"`
	Load         *int     `json:"load"`
	Instructions string   `json:"instructions"`
	AddOns       []string `json:"addons"`
}

type TagOrderRequest struct {
	Action string `json:"action" validate:"required"`
}

type StyleResponse struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

type OrderStatusResponse struct {
	IsFinished  bool          `json:"isFinished"`
	FinishedAt  *time.Time    `json:"finishedAt"`
	IsPaid      bool          `json:"isPaid"`
	PaidAt      *time.Time    `json:"paidAt"`
	IsClaimed   bool          `json:"isClaimed"`
	ClaimedAt   *time.Time    `json:"claimedAt"`
	Label       string        `json:"label"`
	Style       StyleResponse `json:"style"`
	AmountStyle StyleResponse `json:"amountStyle"`
}

type OrderResponse struct {
	ID           string              `json:"id"`
	CustomerID   string              `json:"customerId"`
	ServiceType  string              `json:"serviceType"`
	Weight       float64             `json:"weight"`
	Load         int                 `json:"load"`
	Instructions string              `json:"instructions"`
	AddOnIDs     []string            `json:"addons"`
	Gross        float64             `json:"gross"`
	CreatedAt    time.Time           `json:"createdAt"`
	Status       OrderStatusResponse `json:"status"`
}

type OrderDetailsResponse struct {
	OrderResponse
	AddOnsLabel string          `json:"addOnsLabel"`
	AddOns      []AddOnResponse `json:"addOnDetails"`
}

type ActionResponse struct {
	Action string `json:"action"`
	Label  string `json:"label"`
}

type OfferedActionsResponse struct {
	OrderID string              `json:"orderId"`
	Status  OrderStatusResponse `json:"status"`
	Actions []ActionResponse    `json:"actions"`
}

type RegisterResponse struct {
	Customer CustomerResponse `json:"customer"`
	Order    OrderResponse    `json:"order"`
}

func newStyleResponse(s domain.Style) StyleResponse {
	return StyleResponse{Name: s.Name, Color: s.Color}
}

func NewOrderStatusResponse(s domain.OrderStatus) OrderStatusResponse {
	return OrderStatusResponse{
		IsFinished:  s.IsFinished,
		FinishedAt:  s.FinishedAt,
		IsPaid:      s.IsPaid,
		PaidAt:      s.PaidAt,
		IsClaimed:   s.IsClaimed,
		ClaimedAt:   s.ClaimedAt,
		Label:       s.Label(),
		Style:       newStyleResponse(s.BadgeStyle()),
		AmountStyle: newStyleResponse(s.AmountStyle()),
	}
}

func NewOrderResponse(o domain.OrderWithStatus) OrderResponse {
	ids := o.AddOnIDs
	if ids == nil {
		ids = []string{}
	}
	return OrderResponse{
		ID:           o.ID,
		CustomerID:   o.CustomerID,
		ServiceType:  o.ServiceTypeName,
		Weight:       o.Weight,
		Load:         o.LoadCount,
		Instructions: o.Instructions,
		AddOnIDs:     ids,
		Gross:        o.Gross,
		CreatedAt:    o.CreatedAt,
		Status:       NewOrderStatusResponse(o.Status),
	}
}

func NewOrderResponses(orders []domain.OrderWithStatus) []OrderResponse {
	out := make([]OrderResponse, len(orders))
	for i, o := range orders {
		out[i] = NewOrderResponse(o)
	}
	return out
}

func NewOrderDetailsResponse(o domain.OrderWithStatus, label string, addOns []domain.AddOn) OrderDetailsResponse {
	return OrderDetailsResponse{
		OrderResponse: NewOrderResponse(o),
		AddOnsLabel:   label,
		AddOns:        NewAddOnResponses(addOns),
	}
}

func NewOfferedActionsResponse(s domain.OrderStatus, actions []domain.Action) OfferedActionsResponse {
	out := make([]ActionResponse, len(actions))
	for i, a := range actions {
		out[i] = ActionResponse{Action: string(a), Label: a.Label()}
	}
	return OfferedActionsResponse{
		OrderID: s.OrderID,
		Status:  NewOrderStatusResponse(s),
		Actions: out,
	}
}
