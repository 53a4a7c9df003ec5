package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fashionstore/gateway"
)

func TestCreatePaymentOrder(t *testing.T) {
	pc := NewPaymentController(gateway.NewMock())

	req := httptest.NewRequest("POST", "/api/payment/create-order",
		strings.NewReader(`{"amount": 65.97, "currency": "INR"}`))
	rec := httptest.NewRecorder()

	pc.CreatePaymentOrder(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Success  bool   `json:"success"`
		OrderID  string `json:"orderId"`
		Amount   int64  `json:"amount"`
		Currency string `json:"currency"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success {
		t.Fatal("expected success")
	}
	if !strings.HasPrefix(resp.OrderID, "order_") {
		t.Fatalf("unexpected order id %q", resp.OrderID)
	}
	if resp.Amount != 6597 {
		t.Fatalf("expected amount in minor units 6597, got %d", resp.Amount)
	}
}

func TestCreatePaymentOrderValidation(t *testing.T) {
	pc := NewPaymentController(gateway.NewMock())

	for _, body := range []string{
		`{"currency": "INR"}`,
		`{"amount": 10}`,
		`{"amount": -1, "currency": "INR"}`,
		`not json`,
	} {
		req := httptest.NewRequest("POST", "/api/payment/create-order", strings.NewReader(body))
		rec := httptest.NewRecorder()

		pc.CreatePaymentOrder(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %q: expected 400, got %d", body, rec.Code)
		}
		var resp map[string]string
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("error body should be JSON: %v", err)
		}
		if resp["message"] == "" {
			t.Errorf("body %q: error response missing message field", body)
		}
	}
}

func TestVerifyPayment(t *testing.T) {
	pc := NewPaymentController(gateway.NewMock())

	req := httptest.NewRequest("POST", "/api/payment/verify-payment",
		strings.NewReader(`{"orderId":"order_1","razorpayPaymentId":"pay_1","razorpaySignature":"sig"}`))
	rec := httptest.NewRecorder()

	pc.VerifyPayment(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Success   bool   `json:"success"`
		PaymentID string `json:"paymentId"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success || resp.PaymentID != "pay_1" {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestVerifyPaymentMissingParameters(t *testing.T) {
	pc := NewPaymentController(gateway.NewMock())

	req := httptest.NewRequest("POST", "/api/payment/verify-payment",
		strings.NewReader(`{"orderId":"order_1"}`))
	rec := httptest.NewRecorder()

	pc.VerifyPayment(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
