package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"fashionstore/models"
	"fashionstore/utils"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Fixed page size for the product list endpoint
const productPageSize = 12

// ProductController handles product-related requests
type ProductController struct {
	Collection *mongo.Collection
}

// NewProductController creates a new ProductController
func NewProductController(db *mongo.Database) *ProductController {
	return &ProductController{
		Collection: db.Collection("products"),
	}
}

// pageCount returns the number of pages needed for total items.
func pageCount(total int64, pageSize int) int {
	if total <= 0 {
		return 0
	}
	pages := int(total) / pageSize
	if int(total)%pageSize != 0 {
		pages++
	}
	return pages
}

// GetProducts lists products with keyword/category/maxPrice filters and
// fixed-size pagination.
func (pc *ProductController) GetProducts(w http.ResponseWriter, r *http.Request) {
	query := bson.M{}

	if keyword := r.URL.Query().Get("keyword"); keyword != "" {
		query["name"] = bson.M{"$regex": keyword, "$options": "i"}
	}
	if category := r.URL.Query().Get("category"); category != "" && category != "all" {
		query["category"] = category
	}
	if maxPrice := r.URL.Query().Get("maxPrice"); maxPrice != "" {
		if price, err := strconv.ParseFloat(maxPrice, 64); err == nil {
			query["price"] = bson.M{"$lte": price}
		}
	}

	page := 1
	if p, err := strconv.Atoi(r.URL.Query().Get("pageNumber")); err == nil && p > 0 {
		page = p
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	count, err := pc.Collection.CountDocuments(ctx, query)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching products")
		return
	}

	opts := options.Find().
		SetSort(bson.M{"createdAt": -1}).
		SetSkip(int64(productPageSize * (page - 1))).
		SetLimit(productPageSize)

	cursor, err := pc.Collection.Find(ctx, query, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching products")
		return
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error reading products")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"products": products,
		"page":     page,
		"pages":    pageCount(count, productPageSize),
		"total":    count,
	})
}

// GetProductByID retrieves a single product by ID
func (pc *ProductController) GetProductByID(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var product models.Product
	if err := pc.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&product); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, product)
}

// GetFeaturedProducts returns up to 6 featured products
func (pc *ProductController) GetFeaturedProducts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	cursor, err := pc.Collection.Find(ctx, bson.M{"featured": true}, options.Find().SetLimit(6))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching featured products")
		return
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error reading products")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, products)
}

// CreateProduct handles adding a new product (Admin only)
func (pc *ProductController) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name        string   `json:"name"`
		Description string   `json:"description"`
		Price       *float64 `json:"price"`
		Image       string   `json:"image"`
		Category    string   `json:"category"`
		Subcategory string   `json:"subcategory"`
		Sizes       []string `json:"sizes"`
		Colors      []string `json:"colors"`
		Stock       int      `json:"stock"`
		Featured    bool     `json:"featured"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	switch {
	case body.Name == "", body.Description == "", body.Image == "", body.Subcategory == "", body.Price == nil:
		utils.RespondWithError(w, http.StatusBadRequest, "Please provide all required fields")
		return
	case *body.Price < 0:
		utils.RespondWithError(w, http.StatusBadRequest, "Price must not be negative")
		return
	case body.Stock < 0:
		utils.RespondWithError(w, http.StatusBadRequest, "Stock must not be negative")
		return
	case !models.ValidCategory(body.Category):
		utils.RespondWithError(w, http.StatusBadRequest, "Category must be one of men, women, kids")
		return
	}

	now := time.Now()
	product := models.Product{
		ID:          primitive.NewObjectID(),
		Name:        body.Name,
		Description: body.Description,
		Price:       *body.Price,
		Image:       body.Image,
		Category:    body.Category,
		Subcategory: body.Subcategory,
		Sizes:       body.Sizes,
		Colors:      body.Colors,
		Stock:       body.Stock,
		Featured:    body.Featured,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := pc.Collection.InsertOne(ctx, product); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error creating product")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, product)
}

// ProductUpdate is a partial update where nil means "keep the prior value".
// Pointer fields make an explicit 0 or empty string distinguishable from an
// omitted field.
type ProductUpdate struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Price       *float64  `json:"price"`
	Image       *string   `json:"image"`
	Category    *string   `json:"category"`
	Subcategory *string   `json:"subcategory"`
	Sizes       *[]string `json:"sizes"`
	Colors      *[]string `json:"colors"`
	Stock       *int      `json:"stock"`
	Featured    *bool     `json:"featured"`
}

// apply merges the update into a bson $set document.
func (u ProductUpdate) apply() bson.M {
	set := bson.M{"updatedAt": time.Now()}
	if u.Name != nil {
		set["name"] = *u.Name
	}
	if u.Description != nil {
		set["description"] = *u.Description
	}
	if u.Price != nil {
		set["price"] = *u.Price
	}
	if u.Image != nil {
		set["image"] = *u.Image
	}
	if u.Category != nil {
		set["category"] = *u.Category
	}
	if u.Subcategory != nil {
		set["subcategory"] = *u.Subcategory
	}
	if u.Sizes != nil {
		set["sizes"] = *u.Sizes
	}
	if u.Colors != nil {
		set["colors"] = *u.Colors
	}
	if u.Stock != nil {
		set["stock"] = *u.Stock
	}
	if u.Featured != nil {
		set["featured"] = *u.Featured
	}
	return set
}

// UpdateProduct handles a partial product update (Admin only)
func (pc *ProductController) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}

	var update ProductUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if update.Price != nil && *update.Price < 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Price must not be negative")
		return
	}
	if update.Stock != nil && *update.Stock < 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Stock must not be negative")
		return
	}
	if update.Category != nil && !models.ValidCategory(*update.Category) {
		utils.RespondWithError(w, http.StatusBadRequest, "Category must be one of men, women, kids")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var product models.Product
	err = pc.Collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": update.apply()},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&product)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error updating product")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, product)
}

// DeleteProduct handles deleting a product (Admin only)
func (pc *ProductController) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result, err := pc.Collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error deleting product")
		return
	}
	if result.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Product removed successfully"})
}
