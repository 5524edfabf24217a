package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddress string `env:"SERVER_ADDRESS" envDefault:"0.0.0.0:8080"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
	UploadDir     string `env:"UPLOAD_DIR" envDefault:"uploads"`
	MongoConfig
	RedisConfig
	AuthConfig
	PaymentConfig
	InvoiceConfig
}

// MongoConfig selects the document store; an empty URI runs on the in-memory repository
type MongoConfig struct {
	URI      string `env:"MONGO_URI"`
	Database string `env:"MONGO_DATABASE" envDefault:"artisan_market"`
}

// RedisConfig enables the display-name cache when Addr is set
type RedisConfig struct {
	Addr         string        `env:"REDIS_ADDR"`
	NameCacheTTL time.Duration `env:"NAME_CACHE_TTL" envDefault:"10m"`
}

type AuthConfig struct {
	JWTSecret string        `env:"JWT_SECRET" envDefault:"change-me"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" envDefault:"24h"`
}

type PaymentConfig struct {
	StripeSecretKey string `env:"STRIPE_SECRET_KEY"`
	SuccessURL      string `env:"CHECKOUT_SUCCESS_URL" envDefault:"http://localhost:3000/payment/success?session_id={CHECKOUT_SESSION_ID}"`
	CancelURL       string `env:"CHECKOUT_CANCEL_URL" envDefault:"http://localhost:3000/cart"`
	Currency        string `env:"CHECKOUT_CURRENCY" envDefault:"inr"`
}

type InvoiceConfig struct {
	FontPath        string  `env:"INVOICE_FONT_PATH" envDefault:"assets/fonts/DejaVuSans.ttf"`
	PlatformFeeRate float64 `env:"PLATFORM_FEE_RATE" envDefault:"0.05"`
}

// NewConfig loads an optional .env file and parses the environment
func NewConfig() (*Config, error) {
	_ = godotenv.Load() // .env is optional

	config := &Config{}

	err := env.Parse(config)
	if err != nil {
		err = fmt.Errorf("config.NewConfig: %w", err)
	}
	return config, err
}
