package dto

import "laundrypos/internal/domain"

type ServiceTypeRequest struct {
	Name      string   `json:"name"`
	Price     *float64 `json:"price"`
	MinWeight *float64 `json:"minWeight"`
}

type ServiceTypeResponse struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Price     float64  `json:"price"`
	MinWeight *float64 `json:"minWeight"`
}

type AddOnRequest struct {
	Name  string   `json:"name"`
	Price *float64 `json:"price"`
}

type AddOnResponse struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

func NewServiceTypeResponse(st domain.ServiceType) ServiceTypeResponse {
	return ServiceTypeResponse{
		ID:        st.ID,
		Name:      st.Name,
		Price:     st.Price,
		MinWeight: st.MinWeight.Ptr(),
	}
}

func NewServiceTypeResponses(types []domain.ServiceType) []ServiceTypeResponse {
	out := make([]ServiceTypeResponse, len(types))
	for i, st := range types {
		out[i] = NewServiceTypeResponse(st)
	}
	return out
}

func NewAddOnResponse(a domain.AddOn) AddOnResponse {
	return AddOnResponse{ID: a.ID, Name: a.Name, Price: a.Price}
}

func NewAddOnResponses(addOns []domain.AddOn) []AddOnResponse {
	out := make([]AddOnResponse, len(addOns))
	for i, a := range addOns {
		out[i] = NewAddOnResponse(a)
	}
	return out
}
