package controllers

import (
	"encoding/json"
	"net/http"

	"fashionstore/gateway"
	"fashionstore/utils"
)

// PaymentController exposes the payment gateway over HTTP
type PaymentController struct {
	Gateway gateway.Gateway
}

// NewPaymentController creates a new PaymentController
func NewPaymentController(gw gateway.Gateway) *PaymentController {
	return &PaymentController{Gateway: gw}
}

// CreatePaymentOrder opens a gateway-side order for the given amount
func (pc *PaymentController) CreatePaymentOrder(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Amount   float64 `json:"amount"`
		Currency string  `json:"currency"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if body.Amount <= 0 || body.Currency == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Amount and currency are required")
		return
	}

	order, err := pc.Gateway.CreateOrder(body.Amount, body.Currency)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create payment order")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"orderId":  order.ID,
		"amount":   order.Amount,
		"currency": order.Currency,
	})
}

// VerifyPayment checks a completed payment against the gateway
func (pc *PaymentController) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	var body struct {
		OrderID           string `json:"orderId"`
		RazorpayPaymentID string `json:"razorpayPaymentId"`
		RazorpaySignature string `json:"razorpaySignature"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if body.OrderID == "" || body.RazorpayPaymentID == "" || body.RazorpaySignature == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing payment verification parameters")
		return
	}

	if !pc.Gateway.Verify(body.OrderID, body.RazorpayPaymentID, body.RazorpaySignature) {
		utils.RespondWithJSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"message": "Payment verification failed",
		})
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"message":   "Payment verified successfully",
		"paymentId": body.RazorpayPaymentID,
	})
}
