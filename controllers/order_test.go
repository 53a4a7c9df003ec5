package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fashionstore/middleware"
	"fashionstore/models"
	"fashionstore/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func authedRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	claims := &utils.Claims{UserID: primitive.NewObjectID().Hex()}
	return req.WithContext(context.WithValue(req.Context(), middleware.UserContextKey, claims))
}

func TestPaidUpdateDocSetsOnlyPaymentFields(t *testing.T) {
	now := time.Now()
	result := models.PaymentResult{
		ID:           "pay_123",
		Status:       "captured",
		UpdateTime:   now.Format(time.RFC3339),
		EmailAddress: "john@example.com",
	}

	doc := paidUpdateDoc(result, now)

	if doc["isPaid"] != true {
		t.Fatalf("expected isPaid=true, got %v", doc["isPaid"])
	}
	if doc["paidAt"] != now {
		t.Errorf("expected paidAt=%v, got %v", now, doc["paidAt"])
	}
	if doc["paymentResult"] != result {
		t.Errorf("expected paymentResult=%+v, got %+v", result, doc["paymentResult"])
	}
	if doc["updatedAt"] != now {
		t.Errorf("expected updatedAt=%v, got %v", now, doc["updatedAt"])
	}

	for _, key := range []string{"itemsPrice", "taxPrice", "shippingPrice", "totalPrice"} {
		if _, ok := doc[key]; ok {
			t.Errorf("settlement must not touch %s", key)
		}
	}
	if len(doc) != 4 {
		t.Errorf("expected exactly 4 fields, got %d: %v", len(doc), doc)
	}
}

func TestPaidUpdateDocRepeatedSettlementStaysPaid(t *testing.T) {
	first := paidUpdateDoc(models.PaymentResult{ID: "pay_1", Status: "captured"}, time.Now())
	later := time.Now().Add(time.Hour)
	second := paidUpdateDoc(models.PaymentResult{ID: "pay_2", Status: "captured"}, later)

	if first["isPaid"] != true || second["isPaid"] != true {
		t.Fatal("every settlement must leave the order paid")
	}
	if second["paidAt"] != later {
		t.Errorf("expected paidAt re-stamped to %v, got %v", later, second["paidAt"])
	}
}

func TestCreateOrderRequiresAuth(t *testing.T) {
	oc := &OrderController{}

	req := httptest.NewRequest("POST", "/api/orders", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	oc.CreateOrder(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestCreateOrderRejectsMissingOrEmptyItems(t *testing.T) {
	oc := &OrderController{}

	for _, body := range []string{
		`{"orderItems": []}`,
		`{"shippingAddress": {"address":"a","city":"b","postalCode":"c","country":"d"}}`,
	} {
		rec := httptest.NewRecorder()
		oc.CreateOrder(rec, authedRequest("POST", "/api/orders", body))

		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %q: expected 400, got %d", body, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "No order items") {
			t.Errorf("body %q: unexpected message %s", body, rec.Body.String())
		}
	}
}

func TestCreateOrderRejectsIncompleteAddress(t *testing.T) {
	oc := &OrderController{}

	body := `{
		"orderItems": [{"name":"Shirt","qty":1,"image":"i","price":29.99,"size":"M","product":"` +
		primitive.NewObjectID().Hex() + `"}],
		"shippingAddress": {"address":"123 Demo St","city":"","postalCode":"12345","country":"US"}
	}`
	rec := httptest.NewRecorder()
	oc.CreateOrder(rec, authedRequest("POST", "/api/orders", body))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestCreateOrderRejectsBadLineItems(t *testing.T) {
	oc := &OrderController{}

	addr := `"shippingAddress": {"address":"a","city":"b","postalCode":"c","country":"d"}`
	for _, items := range []string{
		`[{"name":"Shirt","qty":0,"image":"i","price":29.99,"size":"M","product":"` + primitive.NewObjectID().Hex() + `"}]`,
		`[{"name":"Shirt","qty":1,"image":"i","price":-1,"size":"M","product":"` + primitive.NewObjectID().Hex() + `"}]`,
		`[{"name":"Shirt","qty":1,"image":"i","price":29.99,"size":"M"}]`,
	} {
		rec := httptest.NewRecorder()
		oc.CreateOrder(rec, authedRequest("POST", "/api/orders", `{"orderItems": `+items+`, `+addr+`}`))

		if rec.Code != http.StatusBadRequest {
			t.Errorf("items %s: expected 400, got %d", items, rec.Code)
		}
	}
}
