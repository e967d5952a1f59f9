// Package config loads the library configuration from the environment, with
// an optional .env file for local development.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type Config struct {
	RedisAddr     string `validate:"required"`
	RedisPassword string
	RedisDB       int

	NatsURL string

	ProductServiceURL string `validate:"required,url"`
	StockServiceURL   string `validate:"required,url"`
	OrderServiceURL   string `validate:"required,url"`

	CartStorageKey string

	Currency         string `validate:"required,len=3"`
	CurrencySymbol   string
	CurrencyThousand string
	CurrencyDecimal  string
}

func Load(logger *zap.Logger) (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		logger.Warn("No .env file found")
	}

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	cfg := &Config{
		RedisAddr:         getEnv("REDIS_ADDR", "127.0.0.1:6379"),
		RedisPassword:     os.Getenv("REDIS_PASSWORD"),
		RedisDB:           redisDB,
		NatsURL:           getEnv("NATS_URL", "nats://127.0.0.1:4222"),
		ProductServiceURL: getEnv("PRODUCT_SERVICE_URL", "http://localhost:8081"),
		StockServiceURL:   getEnv("STOCK_SERVICE_URL", "http://localhost:8085"),
		OrderServiceURL:   getEnv("ORDER_SERVICE_URL", "http://localhost:8083"),
		CartStorageKey:    os.Getenv("CART_STORAGE_KEY"),
		Currency:          getEnv("CURRENCY", "EUR"),
		CurrencySymbol:    getEnv("CURRENCY_SYMBOL", "€"),
		CurrencyThousand:  getEnv("CURRENCY_THOUSAND_SEP", "."),
		CurrencyDecimal:   getEnv("CURRENCY_DECIMAL_SEP", ","),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
