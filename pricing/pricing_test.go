package pricing

import (
	"testing"

	"fashionstore/models"
)

func TestComputeUnderFreeShippingThreshold(t *testing.T) {
	// subtotal 90 -> tax 9, flat shipping, total 109
	items := []models.OrderItem{
		{Name: "Classic White T-Shirt", Qty: 2, Price: 30, Size: "M"},
		{Name: "Chino Shorts", Qty: 1, Price: 30, Size: "32"},
	}

	b := Compute(items)

	if b.ItemsPrice != 90 {
		t.Fatalf("expected subtotal 90, got %v", b.ItemsPrice)
	}
	if b.TaxPrice != 9 {
		t.Fatalf("expected tax 9, got %v", b.TaxPrice)
	}
	if b.ShippingPrice != FlatShippingFee {
		t.Fatalf("expected shipping %v, got %v", FlatShippingFee, b.ShippingPrice)
	}
	if b.TotalPrice != 109 {
		t.Fatalf("expected total 109, got %v", b.TotalPrice)
	}
}

func TestComputeFreeShipping(t *testing.T) {
	// subtotal 150 -> shipping free, total 150 + 15 tax
	items := []models.OrderItem{
		{Name: "Wool Winter Coat", Qty: 1, Price: 150, Size: "L"},
	}

	b := Compute(items)

	if b.ShippingPrice != 0 {
		t.Fatalf("expected free shipping, got %v", b.ShippingPrice)
	}
	if b.TotalPrice != 165 {
		t.Fatalf("expected total 165, got %v", b.TotalPrice)
	}
}

func TestComputeThresholdBoundary(t *testing.T) {
	// exactly at the threshold still pays shipping
	items := []models.OrderItem{{Name: "Blazer", Qty: 1, Price: 100, Size: "M"}}

	b := Compute(items)

	if b.ShippingPrice != FlatShippingFee {
		t.Fatalf("subtotal at threshold should pay flat fee, got %v", b.ShippingPrice)
	}
}

func TestComputeEmpty(t *testing.T) {
	b := Compute(nil)

	if b.ItemsPrice != 0 || b.TaxPrice != 0 {
		t.Fatalf("expected zero subtotal and tax, got %+v", b)
	}
	if b.ShippingPrice != FlatShippingFee {
		t.Fatalf("expected flat fee on zero subtotal, got %v", b.ShippingPrice)
	}
}

func TestComputeRoundsToCents(t *testing.T) {
	items := []models.OrderItem{
		{Name: "Kids Rainbow T-Shirt", Qty: 3, Price: 19.99, Size: "4T"},
	}

	b := Compute(items)

	if b.ItemsPrice != 59.97 {
		t.Fatalf("expected subtotal 59.97, got %v", b.ItemsPrice)
	}
	if b.TaxPrice != 6.00 {
		t.Fatalf("expected tax 6.00, got %v", b.TaxPrice)
	}
	if b.TotalPrice != 75.97 {
		t.Fatalf("expected total 75.97, got %v", b.TotalPrice)
	}
}
