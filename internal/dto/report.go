package dto

import (
	"time"

	"laundrypos/internal/domain"
)

type DashboardResponse struct {
	CustomersToday int `json:"customersToday"`
	Pending        int `json:"pending"`
	Finished       int `json:"finished"`
	Paid           int `json:"paid"`
	Unpaid         int `json:"unpaid"`
	Claimed        int `json:"claimed"`
	Unclaimed      int `json:"unclaimed"`
}

type IncomeResponse struct {
	TotalIncome             float64 `json:"totalIncome"`
	TotalIncomeFormatted    string  `json:"totalIncomeFormatted"`
	TodayIncome             float64 `json:"todayIncome"`
	TodayIncomeFormatted    string  `json:"todayIncomeFormatted"`
	ToCollect               float64 `json:"toCollect"`
	ToCollectFormatted      string  `json:"toCollectFormatted"`
	UnclaimedTotal          float64 `json:"unclaimedTotal"`
	UnclaimedTotalFormatted string  `json:"unclaimedTotalFormatted"`
}

type ReportEntryResponse struct {
	OrderID        string              `json:"orderId"`
	CustomerID     string              `json:"customerId"`
	CustomerName   string              `json:"customerName"`
	ServiceType    string              `json:"serviceType"`
	Weight         float64             `json:"weight"`
	Instructions   string              `json:"instructions"`
	Gross          float64             `json:"gross"`
	GrossFormatted string              `json:"grossFormatted"`
	CreatedAt      time.Time           `json:"createdAt"`
	Status         OrderStatusResponse `json:"status"`
}

func NewDashboardResponse(c domain.DashboardCounts) DashboardResponse {
	return DashboardResponse{
		CustomersToday: c.CustomersToday,
		Pending:        c.Pending,
		Finished:       c.Finished,
		Paid:           c.Paid,
		Unpaid:         c.Unpaid,
		Claimed:        c.Claimed,
		Unclaimed:      c.Unclaimed,
	}
}

func NewIncomeResponse(s domain.IncomeSummary, format func(float64) string) IncomeResponse {
	return IncomeResponse{
		TotalIncome:             s.TotalIncome,
		TotalIncomeFormatted:    format(s.TotalIncome),
		TodayIncome:             s.TodayIncome,
		TodayIncomeFormatted:    format(s.TodayIncome),
		ToCollect:               s.ToCollect,
		ToCollectFormatted:      format(s.ToCollect),
		UnclaimedTotal:          s.UnclaimedTotal,
		UnclaimedTotalFormatted: format(s.UnclaimedTotal),
	}
}

func NewReportEntryResponses(entries []domain.ReportEntry, format func(float64) string) []ReportEntryResponse {
	out := make([]ReportEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = ReportEntryResponse{
			OrderID:        e.OrderID,
			CustomerID:     e.CustomerID,
			CustomerName:   e.CustomerName,
			ServiceType:    e.ServiceTypeName,
			Weight:         e.Weight,
			Instructions:   e.Instructions,
			Gross:          e.Gross,
			GrossFormatted: format(e.Gross),
			CreatedAt:      e.CreatedAt,
			Status:         NewOrderStatusResponse(e.Status),
		}
	}
	return out
}

func NewCustomerResponses(customers []domain.Customer) []CustomerResponse {
	out := make([]CustomerResponse, len(customers))
	for i, c := range customers {
		out[i] = NewCustomerResponse(c)
	}
	return out
}
