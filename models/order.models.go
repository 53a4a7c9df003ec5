package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderItem is an immutable snapshot of a product at checkout time. Later
// changes to the live product never alter past orders.
type OrderItem struct {
	Name    string             `bson:"name" json:"name"`
	Qty     int                `bson:"qty" json:"qty"`
	Image   string             `bson:"image" json:"image"`
	Price   float64            `bson:"price" json:"price"`
	Size    string             `bson:"size" json:"size"`
	Product primitive.ObjectID `bson:"product" json:"product"`
}

// ShippingAddress is the delivery destination for an order.
type ShippingAddress struct {
	Address    string `bson:"address" json:"address"`
	City       string `bson:"city" json:"city"`
	PostalCode string `bson:"postalCode" json:"postalCode"`
	Country    string `bson:"country" json:"country"`
}

// Order is a completed checkout. Price fields are fixed at creation; only the
// payment and delivery flags change afterwards.
type Order struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	OrderID         string             `bson:"orderId" json:"orderId"`
	UserID          primitive.ObjectID `bson:"user" json:"user"`
	User            *PublicProfile     `bson:"-" json:"userInfo,omitempty"`
	OrderItems      []OrderItem        `bson:"orderItems" json:"orderItems"`
	ShippingAddress ShippingAddress    `bson:"shippingAddress" json:"shippingAddress"`
	PaymentMethod   string             `bson:"paymentMethod" json:"paymentMethod"`
	PaymentResult   *PaymentResult     `bson:"paymentResult,omitempty" json:"paymentResult,omitempty"`
	ItemsPrice      float64            `bson:"itemsPrice" json:"itemsPrice"`
	TaxPrice        float64            `bson:"taxPrice" json:"taxPrice"`
	ShippingPrice   float64            `bson:"shippingPrice" json:"shippingPrice"`
	TotalPrice      float64            `bson:"totalPrice" json:"totalPrice"`
	IsPaid          bool               `bson:"isPaid" json:"isPaid"`
	PaidAt          *time.Time         `bson:"paidAt,omitempty" json:"paidAt,omitempty"`
	IsDelivered     bool               `bson:"isDelivered" json:"isDelivered"`
	DeliveredAt     *time.Time         `bson:"deliveredAt,omitempty" json:"deliveredAt,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}
