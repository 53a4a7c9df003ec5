// Package gateway abstracts the payment provider so a real integration can
// replace the mock without touching order logic.
package gateway

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
)

// GatewayOrder is the provider-side order created before payment capture.
// Amount is in minor currency units (paise/cents).
type GatewayOrder struct {
	ID       string
	Amount   int64
	Currency string
	Receipt  string
	Status   string
}

// Gateway is the payment capability an order checkout needs.
type Gateway interface {
	CreateOrder(amount float64, currency string) (GatewayOrder, error)
	Verify(gatewayOrderID, paymentID, signature string) bool
}

// Mock simulates a Razorpay-style gateway. Every well-formed verification
// succeeds; there is no real signature check.
type Mock struct{}

// NewMock returns the stub gateway.
func NewMock() *Mock {
	return &Mock{}
}

// CreateOrder returns a synthetic gateway order for the given amount.
func (m *Mock) CreateOrder(amount float64, currency string) (GatewayOrder, error) {
	if amount <= 0 {
		return GatewayOrder{}, errors.New("amount must be positive")
	}
	if currency == "" {
		currency = "INR"
	}
	return GatewayOrder{
		ID:       fmt.Sprintf("order_%s", strings.ReplaceAll(uuid.NewString(), "-", "")[:14]),
		Amount:   int64(math.Round(amount * 100)),
		Currency: currency,
		Receipt:  fmt.Sprintf("receipt_%s", uuid.NewString()[:8]),
		Status:   "created",
	}, nil
}

// Verify accepts any payment whose identifiers are all present.
func (m *Mock) Verify(gatewayOrderID, paymentID, signature string) bool {
	return gatewayOrderID != "" && paymentID != "" && signature != ""
}
