package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartItem is one pending line in a cart. Each item gets its own id so it
// can be addressed by the update/remove endpoints.
type CartItem struct {
	ID       primitive.ObjectID `bson:"_id" json:"_id"`
	Product  primitive.ObjectID `bson:"product" json:"product"`
	Quantity int                `bson:"quantity" json:"quantity"`
	Size     string             `bson:"size" json:"size"`
}

// Cart holds a user's pending items. At most one cart per user, and at most
// one item per (product, size) pair.
type Cart struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	UserID primitive.ObjectID `bson:"user" json:"user"`
	Items  []CartItem         `bson:"items" json:"items"`
}

// ResolvedCartItem is a cart item with its product document joined in.
type ResolvedCartItem struct {
	ID       primitive.ObjectID `json:"_id"`
	Product  Product            `json:"product"`
	Quantity int                `json:"quantity"`
	Size     string             `json:"size"`
}

// ResolvedCart is the cart shape returned over HTTP. The id fields are
// pointers so the empty-cart state serializes as a bare item list rather
// than zero ObjectIDs.
type ResolvedCart struct {
	ID     *primitive.ObjectID `json:"_id,omitempty"`
	UserID *primitive.ObjectID `json:"user,omitempty"`
	Items  []ResolvedCartItem  `json:"items"`
}
