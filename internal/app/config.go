package app

import (
	"os"
	"time"

	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigyaml"
	"github.com/go-faster/errors"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/xenking/storefront/internal/domain/pricing"
)

// Config holds the complete application configuration, loadable from
// environment variables (STORE_ prefix), a .env file, flags, or YAML config
// files.
type Config struct {
	Addr        string `default:"0.0.0.0:8080" usage:"API server listen address"`
	DatabaseURL string `usage:"PostgreSQL connection URL (STORE_DATABASE_URL or DATABASE_URL)" flag:"database-url"`
	Auth        AuthConfig
	Fees        FeesConfig
	Payment     PaymentConfig
	Email       EmailConfig
	Invoices    InvoicesConfig
	PubSub      PubSubConfig
	RateLimit   RateLimitConfig
	CORS        CORSConfig
	Graceful    GracefulConfig
}

// AuthConfig configures bearer token verification.
type AuthConfig struct {
	JWTSecret string `usage:"HS256 secret of the identity provider (STORE_AUTH_JWT_SECRET)" flag:"jwt-secret"`
}

// FeesConfig holds the delivery fee settings.
type FeesConfig struct {
	DeliveryFee           string `default:"50" usage:"Standard delivery fee"`
	FreeDeliveryThreshold string `default:"500" usage:"Subtotal from which delivery is free; 0 disables"`
}

// PaymentConfig configures the payment gateway.
type PaymentConfig struct {
	BaseURL   string `default:"https://api.razorpay.com" usage:"Payment gateway API base URL"`
	KeyID     string `usage:"Payment gateway key id"`
	KeySecret string `usage:"Payment gateway key secret"`
	Currency  string `default:"INR" usage:"Default payment currency"`
	// VerifySignature checks the gateway payment signature on finalization.
	VerifySignature bool          `default:"false" usage:"Verify payment signatures" flag:"verify-signature"`
	Timeout         time.Duration `default:"10s" usage:"Gateway request timeout"`
}

// EmailConfig configures the confirmation mailer. An empty APIKey disables it.
type EmailConfig struct {
	BaseURL      string        `default:"https://api.resend.com" usage:"Email API base URL"`
	APIKey       string        `usage:"Email API key"`
	From         string        `default:"Store <orders@example.com>" usage:"Sender address"`
	BCC          []string      `usage:"Addresses copied on every confirmation"`
	StoreName    string        `default:"Storefront" usage:"Store name used in emails"`
	SupportPhone string        `usage:"Support phone shown in emails"`
	Timeout      time.Duration `default:"10s" usage:"Email request timeout"`
}

// InvoicesConfig configures invoice file storage.
type InvoicesConfig struct {
	BucketURL     string `default:"file:///tmp/storefront-invoices" usage:"Blob bucket URL for invoices"`
	PublicBaseURL string `default:"http://localhost:8080/files" usage:"Public URL prefix of stored invoices"`
}

// PubSubConfig configures order event publishing. An empty Project disables it.
type PubSubConfig struct {
	Project string `usage:"Google Cloud project of the order events topic"`
	Topic   string `default:"orders" usage:"Order events topic"`
}

// RateLimitConfig controls the per-client sliding window rate limiter.
type RateLimitConfig struct {
	Max    int           `default:"100" usage:"Max requests per window"`
	Window time.Duration `default:"1m"  usage:"Rate limit window duration"`
}

// CORSConfig controls Cross-Origin Resource Sharing headers.
type CORSConfig struct {
	Origins          []string `default:"*" usage:"Allowed CORS origins"`
	AllowCredentials bool     `default:"false" usage:"Allow credentials (cookies, auth headers)" flag:"cors-credentials"`
}

// GracefulConfig controls graceful shutdown timing.
type GracefulConfig struct {
	ReadinessDelay  time.Duration `default:"3s"  usage:"Delay after readiness=false before shutdown" flag:"readiness-delay"`
	ShutdownTimeout time.Duration `default:"15s" usage:"Maximum shutdown duration" flag:"shutdown-timeout"`
}

// LoadConfig loads configuration from a .env file, environment variables,
// YAML config files, and applies platform-specific defaults.
func LoadConfig() (*Config, error) {
	// A missing .env is not an error; real environment variables win.
	_ = godotenv.Load()

	var cfg Config
	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		EnvPrefix: "STORE",
		Files:     []string{"config.yaml", "/etc/storefront/config.yaml"},
		FileDecoders: map[string]aconfig.FileDecoder{
			".yaml": aconfigyaml.New(),
		},
	})
	if err := loader.Load(); err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	cfg.applyPlatformDefaults()

	if cfg.DatabaseURL == "" {
		return nil, errors.New("database URL is required: set STORE_DATABASE_URL or DATABASE_URL")
	}
	if cfg.Auth.JWTSecret == "" {
		return nil, errors.New("JWT secret is required: set STORE_AUTH_JWT_SECRET")
	}
	if _, err := cfg.Fees.Fees(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Fees parses the delivery fee settings.
func (c FeesConfig) Fees() (pricing.Fees, error) {
	fee, err := decimal.NewFromString(c.DeliveryFee)
	if err != nil || fee.IsNegative() {
		return pricing.Fees{}, errors.Errorf("invalid delivery fee %q", c.DeliveryFee)
	}
	threshold, err := decimal.NewFromString(c.FreeDeliveryThreshold)
	if err != nil || threshold.IsNegative() {
		return pricing.Fees{}, errors.Errorf("invalid free delivery threshold %q", c.FreeDeliveryThreshold)
	}
	return pricing.Fees{StandardDeliveryFee: fee, FreeDeliveryThreshold: threshold}, nil
}

// applyPlatformDefaults maps platform-provided environment variables (Railway,
// Render, etc.) that use standard names like DATABASE_URL and PORT to the
// application's STORE_-prefixed configuration.
func (c *Config) applyPlatformDefaults() {
	if c.DatabaseURL == "" {
		if v := os.Getenv("DATABASE_URL"); v != "" {
			c.DatabaseURL = v
		}
	}
	if c.Auth.JWTSecret == "" {
		if v := os.Getenv("JWT_SECRET"); v != "" {
			c.Auth.JWTSecret = v
		}
	}
	if port := os.Getenv("PORT"); port != "" && c.Addr == "0.0.0.0:8080" {
		c.Addr = "0.0.0.0:" + port
	}
}
