package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config carries everything the server reads from the environment.
type Config struct {
	MongoURI       string
	MongoDB        string
	Port           string
	JWTSecret      string
	AllowedOrigins []string
	PostmarkToken  string
	EmailSender    string
}

// Load reads a .env file when present and falls back to process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Proceeding with environment variables.")
	}

	return &Config{
		MongoURI:       getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:        getEnv("MONGO_DB", "fashionstore"),
		Port:           getEnv("PORT", "5001"),
		JWTSecret:      getEnv("JWT_SECRET", ""),
		AllowedOrigins: splitOrigins(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),
		PostmarkToken:  getEnv("POSTMARK_API_TOKEN", ""),
		EmailSender:    getEnv("EMAIL_SENDER", ""),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
