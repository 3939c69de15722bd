package domain

import "time"

type Customer struct {
	ID        string
	Name      string
	Contact   string
	CreatedAt time.Time
}

// CustomerBalance is a customer with the sum of gross amounts still unpaid.
type CustomerBalance struct {
	Customer
	UnpaidTotal float64
}
