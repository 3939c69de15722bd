package domain

import (
	"errors"
	"math"
)

var (
	ErrInvalidWeight    = errors.New("invalid weight")
	ErrInvalidLoad      = errors.New("invalid load")
	ErrInvalidUnitPrice = errors.New("invalid unit price")
	ErrCalculation      = errors.New("calculation failed")
)

// ComputeGross prices an order. A single load at or under the minimum weight
// is charged the unit price; a single load over it is charged the unit price
// rounded up to the next hundred. Any other load count is charged per load.
// Weight never multiplies the price.
func ComputeGross(unitPrice, weight float64, loadCount int, minWeight, addOnsTotal float64) float64 {
	var base float64
	if loadCount == 1 {
		if weight <= minWeight {
			base = unitPrice * float64(loadCount)
		} else {
			base = math.Ceil(unitPrice/100) * 100
		}
	} else {
		base = unitPrice * float64(loadCount)
	}
	return base + addOnsTotal
}

func SumAddOns(addOns []AddOn) float64 {
	total := 0.0
	for _, a := range addOns {
		total += a.Price
	}
	return total
}

// Quote validates the order inputs and computes the gross amount for them.
func Quote(serviceType ServiceType, weight float64, loadCount int, addOns []AddOn) (float64, error) {
	if math.IsNaN(weight) || math.IsInf(weight, 0) || weight <= 0 {
		return 0, ErrInvalidWeight
	}
	if loadCount <= 0 {
		return 0, ErrInvalidLoad
	}
	if math.IsNaN(serviceType.Price) || serviceType.Price <= 0 {
		return 0, ErrInvalidUnitPrice
	}

	gross := ComputeGross(serviceType.Price, weight, loadCount, serviceType.MinWeight.OrZero(), SumAddOns(addOns))
	if math.IsNaN(gross) || math.IsInf(gross, 0) {
		return 0, ErrCalculation
	}
	return gross, nil
}
