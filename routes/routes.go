package routes

import (
	"net/http"
	"time"

	"fashionstore/controllers"
	"fashionstore/middleware"
	"fashionstore/utils"

	"github.com/gorilla/mux"
)

// RegisterRoutes sets up all the routes for the application
func RegisterRoutes(
	router *mux.Router,
	limiter *middleware.RateLimiter,
	userController *controllers.UserController,
	productController *controllers.ProductController,
	cartController *controllers.CartController,
	orderController *controllers.OrderController,
	paymentController *controllers.PaymentController,
) {
	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/health", healthCheck).Methods("GET")

	// Auth routes; register/login are rate limited per IP
	auth := api.PathPrefix("/auth").Subrouter()
	auth.Use(limiter.Limit)
	auth.HandleFunc("/register", userController.Register).Methods("POST")
	auth.HandleFunc("/login", userController.Login).Methods("POST")

	profile := api.PathPrefix("/auth/profile").Subrouter()
	profile.Use(middleware.AuthMiddleware)
	profile.HandleFunc("", userController.GetProfile).Methods("GET")

	// Product routes
	api.HandleFunc("/products", productController.GetProducts).Methods("GET")
	api.HandleFunc("/products/featured/top", productController.GetFeaturedProducts).Methods("GET")
	api.HandleFunc("/products/{id}", productController.GetProductByID).Methods("GET")

	// Admin product routes
	adminProducts := api.PathPrefix("/products").Subrouter()
	adminProducts.Use(middleware.AuthMiddleware)
	adminProducts.Use(middleware.AdminMiddleware)
	adminProducts.HandleFunc("", productController.CreateProduct).Methods("POST")
	adminProducts.HandleFunc("/{id}", productController.UpdateProduct).Methods("PUT")
	adminProducts.HandleFunc("/{id}", productController.DeleteProduct).Methods("DELETE")

	// Cart routes
	cart := api.PathPrefix("/cart").Subrouter()
	cart.Use(middleware.AuthMiddleware)
	cart.HandleFunc("", cartController.GetCart).Methods("GET")
	cart.HandleFunc("", cartController.AddToCart).Methods("POST")
	cart.HandleFunc("/{itemId}", cartController.UpdateCartItem).Methods("PUT")
	cart.HandleFunc("/{itemId}", cartController.RemoveCartItem).Methods("DELETE")

	// Order routes
	orders := api.PathPrefix("/orders").Subrouter()
	orders.Use(middleware.AuthMiddleware)
	orders.HandleFunc("", orderController.CreateOrder).Methods("POST")
	orders.HandleFunc("/user/myorders", orderController.GetMyOrders).Methods("GET")
	orders.HandleFunc("/{id}", orderController.GetOrderByID).Methods("GET")
	orders.HandleFunc("/{id}/pay", orderController.MarkOrderPaid).Methods("PUT")

	adminOrders := api.PathPrefix("/orders").Subrouter()
	adminOrders.Use(middleware.AuthMiddleware)
	adminOrders.Use(middleware.AdminMiddleware)
	adminOrders.HandleFunc("", orderController.GetAllOrders).Methods("GET")

	// Payment routes (mock gateway, no auth per the given design)
	api.HandleFunc("/payment/create-order", paymentController.CreatePaymentOrder).Methods("POST")
	api.HandleFunc("/payment/verify-payment", paymentController.VerifyPayment).Methods("POST")
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"message":   "Backend server is running!",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
