package config

import (
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"xtreme/internal/cart"
)

type Config struct {
	Port     string `envconfig:"PORT" default:"8080"`
	DBDSN    string `envconfig:"DB_DSN" default:"xtreme.db"`
	LogFile  string `envconfig:"LOG_FILE"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// base64 32-byte key for cookie encryption; generated at start when empty
	CookieKey string `envconfig:"COOKIE_KEY"`

	Cart  CartConfig
	Toast time.Duration `envconfig:"TOAST_DURATION" default:"2s"`
}

// CartConfig is read from XTREME_CART_*. Quota is the size of the cart
// cookie as the browser keeps it, name and encrypted value included.
type CartConfig struct {
	Key               string        `envconfig:"KEY" default:"xtreme_cart_v1"`
	Quota             int           `envconfig:"QUOTA" default:"3800"`
	MaxAge            time.Duration `envconfig:"MAX_AGE" default:"720h"`
	DiscountThreshold float64       `envconfig:"DISCOUNT_THRESHOLD" default:"5000"`
	DiscountAmount    float64       `envconfig:"DISCOUNT_AMOUNT" default:"400"`
	Shipping          float64       `envconfig:"SHIPPING" default:"0"`
}

// Totals is the pricing part of the cart settings.
func (c CartConfig) Totals() cart.Config {
	return cart.Config{
		DiscountThreshold: c.DiscountThreshold,
		DiscountAmount:    c.DiscountAmount,
		Shipping:          c.Shipping,
	}
}

const EnvPrefix = "XTREME"

// MaxCartQuota is the per-cookie limit browsers enforce.
const MaxCartQuota = 4096

var (
	ErrCartQuota   = errors.New("cart quota must be between 1 and 4096 bytes")
	ErrNotFinite   = errors.New("cart pricing values must be finite")
	ErrNegativeFee = errors.New("cart pricing values must not be negative")
)

// Validate rejects settings the cart cannot run with.
func (c CartConfig) Validate() error {
	if c.Quota <= 0 || c.Quota > MaxCartQuota {
		return ErrCartQuota
	}
	for _, v := range []float64{c.DiscountThreshold, c.DiscountAmount, c.Shipping} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNotFinite
		}
		if v < 0 {
			return ErrNegativeFee
		}
	}
	return nil
}

// Load reads XTREME_* variables, after loading a .env file if one exists.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Cart.Validate(); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	log.Printf("[config] PORT=%s DB_DSN=%s LOG_FILE=%s LOG_LEVEL=%s CART_KEY=%s",
		cfg.Port, cfg.DBDSN, cfg.LogFile, cfg.LogLevel, cfg.Cart.Key)
	return cfg, nil
}

// Default is the configuration with every default applied, for tests and
// embedding.
func Default() Config {
	return Config{
		Port:     "8080",
		DBDSN:    "xtreme.db",
		LogLevel: "info",
		Cart: CartConfig{
			Key:               cart.DefaultKey,
			Quota:             3800,
			MaxAge:            30 * 24 * time.Hour,
			DiscountThreshold: 5000,
			DiscountAmount:    400,
		},
		Toast: 2 * time.Second,
	}
}
