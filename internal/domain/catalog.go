package domain

// Quantity is an optional numeric value. The zero value is unset, which is
// distinct from a set value of zero.
type Quantity struct {
	Value float64
	Set   bool
}

func QuantityOf(v float64) Quantity {
	return Quantity{Value: v, Set: true}
}

func (q Quantity) OrZero() float64 {
	if !q.Set {
		return 0
	}
	return q.Value
}

// Ptr returns nil when unset; used at the storage and JSON boundaries.
func (q Quantity) Ptr() *float64 {
	if !q.Set {
		return nil
	}
	v := q.Value
	return &v
}

func QuantityFromPtr(p *float64) Quantity {
	if p == nil {
		return Quantity{}
	}
	return QuantityOf(*p)
}

type ServiceType struct {
	ID        string
	Name      string
	Price     float64
	MinWeight Quantity
}

type AddOn struct {
	ID    string
	Name  string
	Price float64
}
