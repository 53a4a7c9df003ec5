package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"fashionstore/middleware"
	"fashionstore/models"
	"fashionstore/utils"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// CartController handles cart-related requests
type CartController struct {
	CartCollection    *mongo.Collection
	ProductCollection *mongo.Collection
}

// NewCartController creates a new CartController
func NewCartController(db *mongo.Database) *CartController {
	return &CartController{
		CartCollection:    db.Collection("carts"),
		ProductCollection: db.Collection("products"),
	}
}

// upsertCartItem merges a new line into the item list. An existing
// (product, size) entry has its quantity replaced, never summed, so the list
// keeps at most one item per (product, size) pair.
func upsertCartItem(items []models.CartItem, productID primitive.ObjectID, quantity int, size string) []models.CartItem {
	for i, existing := range items {
		if existing.Product == productID && existing.Size == size {
			items[i].Quantity = quantity
			return items
		}
	}
	return append(items, models.CartItem{
		ID:       primitive.NewObjectID(),
		Product:  productID,
		Quantity: quantity,
		Size:     size,
	})
}

// removeCartItem drops the item with the given id. Unknown ids leave the
// list unchanged.
func removeCartItem(items []models.CartItem, itemID primitive.ObjectID) []models.CartItem {
	kept := make([]models.CartItem, 0, len(items))
	for _, item := range items {
		if item.ID != itemID {
			kept = append(kept, item)
		}
	}
	return kept
}

// resolveCart joins each item's product document into the response shape.
func (cc *CartController) resolveCart(ctx context.Context, cart models.Cart) (models.ResolvedCart, error) {
	resolved := models.ResolvedCart{
		ID:     &cart.ID,
		UserID: &cart.UserID,
		Items:  []models.ResolvedCartItem{},
	}
	for _, item := range cart.Items {
		entry := models.ResolvedCartItem{
			ID:       item.ID,
			Quantity: item.Quantity,
			Size:     item.Size,
		}
		// a product deleted after being carted resolves to its zero value
		var product models.Product
		err := cc.ProductCollection.FindOne(ctx, bson.M{"_id": item.Product}).Decode(&product)
		if err == nil {
			entry.Product = product
		} else if err != mongo.ErrNoDocuments {
			return resolved, err
		}
		resolved.Items = append(resolved.Items, entry)
	}
	return resolved, nil
}

func (cc *CartController) findCart(ctx context.Context, userID primitive.ObjectID) (models.Cart, error) {
	var cart models.Cart
	err := cc.CartCollection.FindOne(ctx, bson.M{"user": userID}).Decode(&cart)
	return cart, err
}

func callerID(r *http.Request) (primitive.ObjectID, bool) {
	claims, ok := middleware.CallerClaims(r)
	if !ok {
		return primitive.NilObjectID, false
	}
	id, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return id, true
}

// GetCart retrieves the caller's cart with product data resolved. A missing
// cart is the valid empty state, not an error.
func (cc *CartController) GetCart(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	cart, err := cc.findCart(ctx, userID)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithJSON(w, http.StatusOK, models.ResolvedCart{Items: []models.ResolvedCartItem{}})
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching cart")
		return
	}

	resolved, err := cc.resolveCart(ctx, cart)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching cart")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resolved)
}

// AddToCart adds or replaces an item in the caller's cart
func (cc *CartController) AddToCart(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var body struct {
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
		Size      string `json:"size"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if body.ProductID == "" || body.Quantity < 1 || body.Size == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	productID, err := primitive.ObjectIDFromHex(body.ProductID)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var product models.Product
	if err := cc.ProductCollection.FindOne(ctx, bson.M{"_id": productID}).Decode(&product); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}

	cart, err := cc.findCart(ctx, userID)
	if err == mongo.ErrNoDocuments {
		cart = models.Cart{UserID: userID, Items: []models.CartItem{}}
	} else if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error adding to cart")
		return
	}

	cart.Items = upsertCartItem(cart.Items, productID, body.Quantity, body.Size)
	if err := cc.saveCart(ctx, &cart); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error adding to cart")
		return
	}

	resolved, err := cc.resolveCart(ctx, cart)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error adding to cart")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resolved)
}

// UpdateCartItem replaces the quantity of one cart item
func (cc *CartController) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	itemID, err := primitive.ObjectIDFromHex(mux.Vars(r)["itemId"])
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Item not found")
		return
	}

	var body struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	cart, err := cc.findCart(ctx, userID)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Cart not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error updating cart")
		return
	}

	found := false
	for i, item := range cart.Items {
		if item.ID == itemID {
			cart.Items[i].Quantity = body.Quantity
			found = true
			break
		}
	}
	if !found {
		utils.RespondWithError(w, http.StatusNotFound, "Item not found")
		return
	}

	if err := cc.saveCart(ctx, &cart); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error updating cart")
		return
	}

	resolved, err := cc.resolveCart(ctx, cart)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error updating cart")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resolved)
}

// RemoveCartItem removes one item from the caller's cart. Removing an id
// that is not present is tolerated; only a missing cart is an error.
func (cc *CartController) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	itemID, err := primitive.ObjectIDFromHex(mux.Vars(r)["itemId"])
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Item not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	cart, err := cc.findCart(ctx, userID)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Cart not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error removing from cart")
		return
	}

	cart.Items = removeCartItem(cart.Items, itemID)
	if err := cc.saveCart(ctx, &cart); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error removing from cart")
		return
	}

	resolved, err := cc.resolveCart(ctx, cart)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error removing from cart")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resolved)
}

// saveCart persists the cart, creating it lazily on first add.
func (cc *CartController) saveCart(ctx context.Context, cart *models.Cart) error {
	if cart.ID.IsZero() {
		cart.ID = primitive.NewObjectID()
		_, err := cc.CartCollection.InsertOne(ctx, cart)
		return err
	}
	_, err := cc.CartCollection.UpdateOne(
		ctx,
		bson.M{"_id": cart.ID},
		bson.M{"$set": bson.M{"items": cart.Items}},
	)
	return err
}
