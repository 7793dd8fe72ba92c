package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

const (
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

var (
	PORT        string
	STORE       string
	DB_URL      string
	JWT_SECRET  string
	CORS_ORIGIN string
	LOG_LEVEL   string

	CATALOG_LOCALE   string
	TIER_CONFIG_PATH string

	STRIPE_SECRET_KEY         string
	STRIPE_CATALOG_PRODUCT_ID string
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	STORE = getEnv("STORE", StorePostgres)
	if STORE != StoreMemory {
		DB_URL = mustEnv("DB_URL")
	}
	JWT_SECRET = mustEnv("JWT_SECRET")
	CORS_ORIGIN = getEnv("CORS_ORIGIN", "http://localhost:5173")
	LOG_LEVEL = getEnv("LOG_LEVEL", "info")

	CATALOG_LOCALE = getEnv("CATALOG_LOCALE", "en-IN")
	TIER_CONFIG_PATH = getEnv("TIER_CONFIG_PATH", "")

	// stripe import is optional; /admin/sync-services answers 500 without a key
	STRIPE_SECRET_KEY = getEnv("STRIPE_SECRET_KEY", "")
	STRIPE_CATALOG_PRODUCT_ID = getEnv("STRIPE_CATALOG_PRODUCT_ID", "")
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("Missing required environment variable: %s", key)
	}
	return v
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
