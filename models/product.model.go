package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product categories
const (
	CategoryMen   = "men"
	CategoryWomen = "women"
	CategoryKids  = "kids"
)

// ValidCategory reports whether c is one of the known product categories.
func ValidCategory(c string) bool {
	return c == CategoryMen || c == CategoryWomen || c == CategoryKids
}

// Product represents a catalog item
type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	Price       float64            `bson:"price" json:"price"`
	Image       string             `bson:"image" json:"image"`
	Category    string             `bson:"category" json:"category"`
	Subcategory string             `bson:"subcategory" json:"subcategory"`
	Sizes       []string           `bson:"sizes" json:"sizes"`
	Colors      []string           `bson:"colors" json:"colors"`
	Stock       int                `bson:"stock" json:"stock"`
	Featured    bool               `bson:"featured" json:"featured"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
