package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fashionstore/config"
	"fashionstore/controllers"
	"fashionstore/gateway"
	"fashionstore/middleware"
	"fashionstore/routes"
	"fashionstore/seed"
	"fashionstore/utils"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// loggingMiddleware logs each request method, path, remote address, and duration.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s from %s - %v", r.Method, r.RequestURI, r.RemoteAddr, time.Since(start))
	})
}

func main() {
	seedFlag := flag.Bool("seed", false, "insert sample catalog data and exit")
	flag.Parse()

	cfg := config.Load()
	utils.JwtKey = []byte(cfg.JWTSecret)

	client := config.Connect(cfg.MongoURI)
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Fatal(err)
		}
	}()
	db := client.Database(cfg.MongoDB)

	if *seedFlag {
		if err := seed.Run(db); err != nil {
			log.Fatal("Seeding failed:", err)
		}
		log.Println("Seeding completed")
		return
	}

	emailService := utils.NewEmailService(cfg.PostmarkToken, cfg.EmailSender)

	userController := controllers.NewUserController(db, emailService)
	productController := controllers.NewProductController(db)
	cartController := controllers.NewCartController(db)
	orderController := controllers.NewOrderController(db, emailService)
	paymentController := controllers.NewPaymentController(gateway.NewMock())

	limiter := middleware.NewRateLimiter(1, 5)

	router := mux.NewRouter()
	routes.RegisterRoutes(router, limiter, userController, productController, cartController, orderController, paymentController)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(router)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           loggingMiddleware(corsHandler),
		ReadTimeout:       7 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	go func() {
		log.Printf("Server is running on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe error: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("Shutdown signal received; shutting down gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Graceful shutdown failed: %v", err)
	}
	log.Println("Server stopped cleanly")
}
