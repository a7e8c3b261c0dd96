package config

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"go.uber.org/zap"

	usecase "github.com/avGenie/go-checkout-system/internal/app/usecase/errors"
)

const (
	defaultGatewayTimeout = 10 * time.Second
	minAuthSecretLen      = 32
)

type Config struct {
	NetAddr   string `env:"RUN_ADDRESS"`
	DBConnect string `env:"DATABASE_URI"`
	LogLevel  string `env:"LOG_LEVEL"`

	GatewayKeyID     string        `env:"GATEWAY_KEY_ID"`
	GatewayKeySecret string        `env:"GATEWAY_KEY_SECRET"`
	GatewayAddr      string        `env:"GATEWAY_ADDRESS"`
	GatewayTimeout   time.Duration `env:"GATEWAY_TIMEOUT"`

	Currency     string `env:"CHECKOUT_CURRENCY"`
	CatalogPath  string `env:"PRODUCT_CATALOG"`
	MerchantName string `env:"MERCHANT_NAME"`

	CORSAllowedOrigin string `env:"CORS_ALLOWED_ORIGIN"`
	AuthSecret        string `env:"AUTH_SECRET"`

	KafkaBrokers []string `env:"KAFKA_BROKERS" envSeparator:","`
	KafkaTopic   string   `env:"KAFKA_TOPIC"`
	RedisAddr    string   `env:"REDIS_ADDR"`
}

func InitConfig() (Config, error) {
	return parse(os.Args[1:])
}

func parse(args []string) (config Config, err error) {
	fs := flag.NewFlagSet("checkout", flag.ContinueOnError)

	fs.StringVar(&config.NetAddr, "a", "localhost:8080", "net address host:port")
	fs.StringVar(&config.DBConnect, "d", "", "database credentials in format: host=host port=port user=myuser password=xxxx dbname=mydb sslmode=disable")
	fs.StringVar(&config.LogLevel, "l", "info", "log level")
	fs.StringVar(&config.GatewayKeyID, "k", "", "payment gateway public key id")
	fs.StringVar(&config.GatewayAddr, "g", "https://api.razorpay.com", "payment gateway address")
	fs.DurationVar(&config.GatewayTimeout, "t", defaultGatewayTimeout, "payment gateway request timeout")
	fs.StringVar(&config.Currency, "c", "INR", "checkout currency")
	fs.StringVar(&config.CatalogPath, "p", "", "path to JSON product price catalog")
	fs.StringVar(&config.MerchantName, "m", "A Touch of Arts", "merchant name shown in checkout widget")
	fs.StringVar(&config.CORSAllowedOrigin, "o", "http://localhost:3000", "allowed CORS origin")
	fs.StringVar(&config.KafkaTopic, "q", "checkout-events", "kafka topic for checkout events")

	if err = fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("%w: error while parsing flags: %w", usecase.ErrConfig, err)
	}

	if err = env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("%w: error while parsing env: %w", usecase.ErrConfig, err)
	}

	config.Currency = strings.ToUpper(strings.TrimSpace(config.Currency))

	if err = config.Validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}

// Validate reports missing values the service cannot start without.
func (c Config) Validate() error {
	if len(c.GatewayKeyID) == 0 {
		return fmt.Errorf("%w: gateway key id is empty", usecase.ErrConfig)
	}

	if len(c.GatewayKeySecret) == 0 {
		return fmt.Errorf("%w: gateway key secret is empty", usecase.ErrConfig)
	}

	if len(c.DBConnect) == 0 {
		return fmt.Errorf("%w: database connection string is empty", usecase.ErrConfig)
	}

	if len(c.AuthSecret) < minAuthSecretLen {
		return fmt.Errorf("%w: auth secret must be at least %d characters", usecase.ErrConfig, minAuthSecretLen)
	}

	if c.GatewayTimeout <= 0 {
		return fmt.Errorf("%w: gateway timeout must be positive", usecase.ErrConfig)
	}

	return nil
}

// LogFields returns the configuration safe for logging. Secrets are never included.
func (c Config) LogFields() []zap.Field {
	return []zap.Field{
		zap.String("address", c.NetAddr),
		zap.String("gateway_address", c.GatewayAddr),
		zap.String("gateway_key_id", c.GatewayKeyID),
		zap.Duration("gateway_timeout", c.GatewayTimeout),
		zap.String("currency", c.Currency),
		zap.String("product_catalog", c.CatalogPath),
		zap.String("cors_allowed_origin", c.CORSAllowedOrigin),
		zap.Strings("kafka_brokers", c.KafkaBrokers),
		zap.String("kafka_topic", c.KafkaTopic),
		zap.Bool("redis_enabled", len(c.RedisAddr) != 0),
	}
}
