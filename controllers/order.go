package controllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"fashionstore/models"
	"fashionstore/pricing"
	"fashionstore/utils"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// OrderController handles order-related requests
type OrderController struct {
	OrderCollection *mongo.Collection
	UserCollection  *mongo.Collection
	EmailService    *utils.EmailService
}

// NewOrderController creates a new OrderController
func NewOrderController(db *mongo.Database, emailService *utils.EmailService) *OrderController {
	return &OrderController{
		OrderCollection: db.Collection("orders"),
		UserCollection:  db.Collection("users"),
		EmailService:    emailService,
	}
}

// CreateOrder snapshots the submitted line items into an immutable order.
// Totals are recomputed server-side from the line items; any caller-supplied
// totals are ignored.
func (oc *OrderController) CreateOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var body struct {
		OrderItems      []models.OrderItem     `json:"orderItems"`
		ShippingAddress models.ShippingAddress `json:"shippingAddress"`
		PaymentMethod   string                 `json:"paymentMethod"`
		PaymentResult   *models.PaymentResult  `json:"paymentResult"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if len(body.OrderItems) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "No order items")
		return
	}
	addr := body.ShippingAddress
	if addr.Address == "" || addr.City == "" || addr.PostalCode == "" || addr.Country == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Shipping address is incomplete")
		return
	}
	for _, item := range body.OrderItems {
		if item.Qty < 1 || item.Price < 0 || item.Product.IsZero() {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid order item")
			return
		}
	}

	paymentMethod := body.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "Razorpay"
	}

	breakdown := pricing.Compute(body.OrderItems)
	now := time.Now()

	order := models.Order{
		ID:              primitive.NewObjectID(),
		OrderID:         uuid.NewString(),
		UserID:          userID,
		OrderItems:      body.OrderItems,
		ShippingAddress: addr,
		PaymentMethod:   paymentMethod,
		ItemsPrice:      breakdown.ItemsPrice,
		TaxPrice:        breakdown.TaxPrice,
		ShippingPrice:   breakdown.ShippingPrice,
		TotalPrice:      breakdown.TotalPrice,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if body.PaymentResult != nil {
		order.IsPaid = true
		order.PaidAt = &now
		order.PaymentResult = body.PaymentResult
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := oc.OrderCollection.InsertOne(ctx, order); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error creating order")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, order)
}

// GetOrderByID fetches one order with the owning user's name and email
func (oc *OrderController) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Order not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var order models.Order
	if err := oc.OrderCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&order); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Order not found")
		return
	}

	oc.attachUser(ctx, &order)
	utils.RespondWithJSON(w, http.StatusOK, order)
}

// paidUpdateDoc builds the $set document that settles an order's payment.
// It only ever touches the payment fields; the price breakdown fixed at
// creation stays untouched no matter how often an order is re-settled.
func paidUpdateDoc(result models.PaymentResult, now time.Time) bson.M {
	return bson.M{
		"isPaid":        true,
		"paidAt":        now,
		"paymentResult": result,
		"updatedAt":     now,
	}
}

// MarkOrderPaid sets the order paid and records the gateway result. Price
// fields are never touched here.
func (oc *OrderController) MarkOrderPaid(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Order not found")
		return
	}

	var result models.PaymentResult
	if err := json.NewDecoder(r.Body).Decode(&result); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	now := time.Now()
	var order models.Order
	err = oc.OrderCollection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": paidUpdateDoc(result, now)},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&order)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Order not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error updating order")
		return
	}

	if oc.EmailService != nil {
		var user models.User
		if err := oc.UserCollection.FindOne(ctx, bson.M{"_id": order.UserID}).Decode(&user); err == nil {
			go func(email, name, orderID string, total float64) {
				if err := oc.EmailService.SendOrderConfirmationEmail(email, name, orderID, total); err != nil {
					log.Printf("Failed to send email to %s: %v", email, err)
				}
			}(user.Email, user.Name, order.OrderID, order.TotalPrice)
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, order)
}

// GetMyOrders lists the caller's orders, newest first
func (oc *OrderController) GetMyOrders(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	cursor, err := oc.OrderCollection.Find(
		ctx,
		bson.M{"user": userID},
		options.Find().SetSort(bson.M{"createdAt": -1}),
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching orders")
		return
	}
	defer cursor.Close(ctx)

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error reading orders")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, orders)
}

// GetAllOrders lists every order with owner info resolved (Admin only)
func (oc *OrderController) GetAllOrders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	cursor, err := oc.OrderCollection.Find(
		ctx,
		bson.M{},
		options.Find().SetSort(bson.M{"createdAt": -1}),
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching orders")
		return
	}
	defer cursor.Close(ctx)

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error reading orders")
		return
	}

	for i := range orders {
		oc.attachUser(ctx, &orders[i])
	}

	utils.RespondWithJSON(w, http.StatusOK, orders)
}

// attachUser resolves the owning user's public fields onto the order. Orders
// stay valid historical records even when the user is gone, so a failed
// lookup is not an error.
func (oc *OrderController) attachUser(ctx context.Context, order *models.Order) {
	var user models.User
	if err := oc.UserCollection.FindOne(ctx, bson.M{"_id": order.UserID}).Decode(&user); err != nil {
		return
	}
	order.User = &models.PublicProfile{
		ID:      user.ID,
		Name:    user.Name,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
	}
}
