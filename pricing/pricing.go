// Package pricing owns the order total policy. Totals are always derived
// server-side from the order's line items; caller-supplied totals are never
// trusted.
package pricing

import (
	"math"

	"fashionstore/models"
)

const (
	// TaxRate is the flat tax applied to the item subtotal.
	TaxRate = 0.10
	// FreeShippingMin is the subtotal above which shipping is free.
	FreeShippingMin = 100.0
	// FlatShippingFee applies to orders at or below FreeShippingMin.
	FlatShippingFee = 10.0
)

// Breakdown is the price decomposition stored on an order.
type Breakdown struct {
	ItemsPrice    float64
	TaxPrice      float64
	ShippingPrice float64
	TotalPrice    float64
}

// Compute derives the full price breakdown from order line items.
func Compute(items []models.OrderItem) Breakdown {
	subtotal := 0.0
	for _, item := range items {
		subtotal += item.Price * float64(item.Qty)
	}
	subtotal = roundCents(subtotal)

	tax := roundCents(subtotal * TaxRate)

	shipping := FlatShippingFee
	if subtotal > FreeShippingMin {
		shipping = 0
	}

	return Breakdown{
		ItemsPrice:    subtotal,
		TaxPrice:      tax,
		ShippingPrice: shipping,
		TotalPrice:    roundCents(subtotal + tax + shipping),
	}
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
