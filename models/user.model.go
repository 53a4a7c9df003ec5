package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a registered account
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password,omitempty" json:"-"`
	IsAdmin   bool               `bson:"isAdmin" json:"isAdmin"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// PublicProfile is the shape auth endpoints return, credentials excluded
type PublicProfile struct {
	ID      primitive.ObjectID `json:"_id"`
	Name    string             `json:"name"`
	Email   string             `json:"email"`
	IsAdmin bool               `json:"isAdmin"`
	Token   string             `json:"token,omitempty"`
}
