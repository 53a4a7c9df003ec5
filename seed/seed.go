// Package seed loads demo users and catalog data for local development.
package seed

import (
	"context"
	"log"
	"time"

	"fashionstore/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

type seedUser struct {
	name     string
	email    string
	password string
	isAdmin  bool
}

var users = []seedUser{
	{"Admin User", "admin@example.com", "admin123", true},
	{"John Doe", "john@example.com", "john123", false},
}

var products = []models.Product{
	{
		Name:        "Men's Classic White Shirt",
		Image:       "https://images.unsplash.com/photo-1602810318383-e386cc2a3ccf?w=500&h=500&fit=crop",
		Description: "Comfortable and stylish white shirt perfect for office wear. Made from premium cotton blend.",
		Category:    models.CategoryMen,
		Subcategory: "Men's Shirts",
		Price:       29.99,
		Stock:       15,
		Sizes:       []string{"S", "M", "L", "XL"},
		Colors:      []string{"White", "Blue"},
		Featured:    true,
	},
	{
		Name:        "Men's Casual Blue Jeans",
		Image:       "https://images.unsplash.com/photo-1542272604-787c3835535d?w=500&h=500&fit=crop",
		Description: "Comfortable denim jeans for casual wear. Regular fit with classic styling.",
		Category:    models.CategoryMen,
		Subcategory: "Men's Jeans",
		Price:       49.99,
		Stock:       20,
		Sizes:       []string{"30", "32", "34", "36"},
		Colors:      []string{"Blue", "Black"},
	},
	{
		Name:        "Women's Elegant Black Dress",
		Image:       "https://images.unsplash.com/photo-1539008835657-9e8e9680c956?w=500&h=500&fit=crop",
		Description: "Beautiful black dress perfect for special occasions. Elegant design with premium fabric.",
		Category:    models.CategoryWomen,
		Subcategory: "Women's Dresses",
		Price:       79.99,
		Stock:       10,
		Sizes:       []string{"XS", "S", "M", "L"},
		Colors:      []string{"Black", "Navy"},
		Featured:    true,
	},
	{
		Name:        "Women's Floral Summer Dress",
		Image:       "https://images.unsplash.com/photo-1515372039744-b8f02a3ae446?w=500&h=500&fit=crop",
		Description: "Light and breezy floral dress perfect for summer occasions. Comfortable and stylish.",
		Category:    models.CategoryWomen,
		Subcategory: "Women's Dresses",
		Price:       39.99,
		Stock:       14,
		Sizes:       []string{"XS", "S", "M", "L"},
		Colors:      []string{"White", "Pink", "Light Blue"},
	},
	{
		Name:        "Kids Rainbow T-Shirt",
		Image:       "https://images.unsplash.com/photo-1503454537195-1dcabb73ffb9?w=500&h=500&fit=crop",
		Description: "Cheerful rainbow t-shirt made from soft, breathable cotton that is gentle on sensitive skin.",
		Category:    models.CategoryKids,
		Subcategory: "Casual Wear",
		Price:       19.99,
		Stock:       40,
		Sizes:       []string{"2T", "3T", "4T", "5T"},
		Colors:      []string{"Rainbow Print"},
		Featured:    true,
	},
}

// Run clears the users and products collections and inserts the demo data.
func Run(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	userCollection := db.Collection("users")
	productCollection := db.Collection("products")

	if _, err := userCollection.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}
	if _, err := productCollection.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}

	now := time.Now()
	for _, u := range users {
		hashed, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		_, err = userCollection.InsertOne(ctx, models.User{
			ID:        primitive.NewObjectID(),
			Name:      u.name,
			Email:     u.email,
			Password:  string(hashed),
			IsAdmin:   u.isAdmin,
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			return err
		}
	}
	log.Printf("Created %d users", len(users))

	docs := make([]interface{}, 0, len(products))
	for _, p := range products {
		p.ID = primitive.NewObjectID()
		p.CreatedAt = now
		p.UpdatedAt = now
		docs = append(docs, p)
	}
	if _, err := productCollection.InsertMany(ctx, docs); err != nil {
		return err
	}
	log.Printf("Created %d products", len(products))

	log.Println("Demo credentials: admin@example.com / admin123, john@example.com / john123")
	return nil
}
