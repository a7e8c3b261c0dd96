package main

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/avGenie/go-checkout-system/internal/app/catalog"
	"github.com/avGenie/go-checkout-system/internal/app/config"
	"github.com/avGenie/go-checkout-system/internal/app/controller/http/cart"
	checkouthttp "github.com/avGenie/go-checkout-system/internal/app/controller/http/checkout"
	"github.com/avGenie/go-checkout-system/internal/app/controller/http/middleware/token"
	"github.com/avGenie/go-checkout-system/internal/app/controller/http/orders"
	"github.com/avGenie/go-checkout-system/internal/app/controller/http/router"
	server "github.com/avGenie/go-checkout-system/internal/app/controller/http/server"
	"github.com/avGenie/go-checkout-system/internal/app/logger"
	"github.com/avGenie/go-checkout-system/internal/app/metrics"
	"github.com/avGenie/go-checkout-system/internal/app/notifier"
	storage "github.com/avGenie/go-checkout-system/internal/app/storage/api"
	"github.com/avGenie/go-checkout-system/internal/app/storage/guard"
	"github.com/avGenie/go-checkout-system/internal/app/usecase/checkout"
	"github.com/avGenie/go-checkout-system/internal/app/usecase/crypto"
	"github.com/avGenie/go-checkout-system/internal/app/usecase/gateway"
)

const (
	startupTimeout = 30 * time.Second

	// covers the gateway call plus order persistence
	guardTTLPadding = 30 * time.Second
)

type closer interface {
	Close() error
}

func main() {
	config, err := config.InitConfig()
	if err != nil {
		panic(err)
	}

	err = logger.Initialize(config.LogLevel)
	if err != nil {
		panic(err)
	}
	defer zap.L().Sync()

	zap.L().Info("starting checkout service", config.LogFields()...)

	if err := run(config); err != nil {
		zap.L().Fatal("checkout service stopped with error", zap.Error(err))
	}
}

func run(config config.Config) error {
	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	builder, err := checkout.NewBuilder(config.Currency)
	if err != nil {
		return err
	}

	orderStorage, err := storage.InitStorage(ctx, config)
	if err != nil {
		return fmt.Errorf("error while initializing storage: %w", err)
	}
	defer closeResource("storage", orderStorage)

	if len(config.CatalogPath) != 0 {
		if err := catalog.Sync(ctx, config.CatalogPath, orderStorage); err != nil {
			return err
		}
	} else {
		zap.L().Info("product catalog path is empty, using prices already stored")
	}

	submissionGuard, guardCloser, err := initGuard(ctx, config)
	if err != nil {
		return err
	}
	defer closeResource("guard", guardCloser)

	eventNotifier := initNotifier(config)
	defer closeResource("notifier", eventNotifier)

	instrumentation := metrics.New()

	service := checkout.New(checkout.Params{
		Builder:        builder,
		Storage:        orderStorage,
		Gateway:        gateway.New(config),
		Guard:          submissionGuard,
		Notifier:       eventNotifier,
		Recorder:       instrumentation,
		GatewayTimeout: config.GatewayTimeout,
	})

	mux := router.CreateRouter(router.Handlers{
		Checkout:      checkouthttp.New(service, config.GatewayKeyID, config.MerchantName),
		Cart:          cart.New(orderStorage),
		Orders:        orders.New(service, orderStorage),
		Pinger:        orderStorage,
		Instrumenter:  instrumentation,
		TokenParser:   token.NewParser(crypto.NewTokenizer(config.AuthSecret)),
		AllowedOrigin: config.CORSAllowedOrigin,
	})

	return server.New(config.NetAddr, mux).StartHTTPServer()
}

func initGuard(ctx context.Context, config config.Config) (checkout.Guard, closer, error) {
	if len(config.RedisAddr) == 0 {
		zap.L().Info("redis address is empty, using in-process checkout guard")
		return guard.NewMemory(), nopCloser{}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr: config.RedisAddr,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, nil, fmt.Errorf("error while connecting to redis: %w", err)
	}

	return guard.NewRedis(client, config.GatewayTimeout+guardTTLPadding), client, nil
}

type eventPublisher interface {
	checkout.Notifier
	closer
}

func initNotifier(config config.Config) eventPublisher {
	if len(config.KafkaBrokers) == 0 {
		zap.L().Info("kafka brokers are empty, checkout events are not published")
		return notifier.Nop{}
	}

	return notifier.NewKafka(config.KafkaBrokers, config.KafkaTopic)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func closeResource(name string, resource closer) {
	if err := resource.Close(); err != nil {
		zap.L().Error("error while closing resource", zap.String("resource", name), zap.Error(err))
	}
}
