package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShopProfile_WithDefaults(t *testing.T) {
	p := ShopProfile{BusinessName: "Suds & Duds"}.WithDefaults()

	assert.Equal(t, "kg", p.WeightUnit)
	assert.Equal(t, "Welcome to our shop!", p.Message)

	p = ShopProfile{WeightUnit: "lb", Message: "Hi"}.WithDefaults()
	assert.Equal(t, "lb", p.WeightUnit)
	assert.Equal(t, "Hi", p.Message)
}

func TestShopProfile_IsConfigured(t *testing.T) {
	assert.False(t, ShopProfile{}.IsConfigured())
	assert.False(t, ShopProfile{BusinessName: "Suds"}.IsConfigured())
	assert.True(t, ShopProfile{BusinessName: "Suds", OwnerName: "Maria"}.IsConfigured())
}

func TestShopProfile_PickupMessage(t *testing.T) {
	p := ShopProfile{BusinessName: "Suds & Duds"}
	assert.Equal(t, "Hello! Your laundry is ready for pick up @ Suds & Duds", p.PickupMessage())

	p.Message = "Your clothes are ready!"
	assert.Equal(t, "Your clothes are ready!", p.PickupMessage())
}
