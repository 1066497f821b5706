package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-payment-wallet/internal/config"
	"github.com/sbilibin2017/gw-payment-wallet/internal/facades"
	"github.com/sbilibin2017/gw-payment-wallet/internal/fees"
	"github.com/sbilibin2017/gw-payment-wallet/internal/handlers"
	"github.com/sbilibin2017/gw-payment-wallet/internal/jwt"
	"github.com/sbilibin2017/gw-payment-wallet/internal/logger"
	"github.com/sbilibin2017/gw-payment-wallet/internal/middlewares"
	"github.com/sbilibin2017/gw-payment-wallet/internal/repositories"
	"github.com/sbilibin2017/gw-payment-wallet/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-payment-wallet API
// @version 1.0.0
// @description Wallet funding and withdrawals through Paystack and Flutterwave
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// routes groups the HTTP handlers mounted under /api/v1.
type routes struct {
	fund               http.HandlerFunc
	verifyFunding      http.HandlerFunc
	withdraw           http.HandlerFunc
	balance            http.HandlerFunc
	transactions       http.HandlerFunc
	freeze             http.HandlerFunc
	payment            http.HandlerFunc
	listPayments       http.HandlerFunc
	addPaymentMethod   http.HandlerFunc
	listPaymentMethods http.HandlerFunc
	webhook            http.HandlerFunc
}

// newRouter mounts the API. Webhooks are public and authenticated by
// signature; every other API route requires a bearer token.
func newRouter(rt routes, tokener middlewares.Tokener, swaggerURL string) *chi.Mux {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middlewares.LoggingMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"https://*", "http://*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", middlewares.RequestIDHeader},
		ExposedHeaders: []string{middlewares.RequestIDHeader},
		MaxAge:         300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(swaggerURL)))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/webhooks/{gateway}", rt.webhook)

		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(tokener))

			r.Post("/wallet/fund", rt.fund)
			r.Get("/wallet/fund/{reference}/verify", rt.verifyFunding)
			r.Post("/wallet/withdraw", rt.withdraw)
			r.Get("/wallet/balance", rt.balance)
			r.Get("/wallet/transactions", rt.transactions)
			r.Post("/wallet/freeze", rt.freeze)
			r.Get("/payments", rt.listPayments)
			r.Get("/payments/{reference}", rt.payment)
			r.Post("/payment-methods", rt.addPaymentMethod)
			r.Get("/payment-methods", rt.listPaymentMethods)
		})
	})

	return r
}

// newGateways builds a client for every provider with a secret key.
func newGateways(cfg *config.Config) services.Gateways {
	clientConfig := func(gw config.GatewayConfig) facades.ClientConfig {
		return facades.ClientConfig{
			BaseURL:     gw.BaseURL,
			SecretKey:   gw.SecretKey,
			Timeout:     cfg.Gateway.Timeout,
			MaxAttempts: cfg.Gateway.MaxAttempts,
			Backoff:     facades.ExponentialBackoff{Base: cfg.Gateway.BackoffBase, Max: cfg.Gateway.BackoffMax},
		}
	}

	var gateways services.Gateways
	if cfg.Paystack.Enabled() {
		gateways.Paystack = facades.NewPaystackClient(clientConfig(cfg.Paystack))
	} else {
		logger.Log.Warn("Paystack secret key not set, gateway disabled")
	}
	if cfg.Flutterwave.Enabled() {
		gateways.Flutterwave = facades.NewFlutterwaveClient(clientConfig(cfg.Flutterwave))
	} else {
		logger.Log.Warn("Flutterwave secret key not set, gateway disabled")
	}
	return gateways
}

// newKafkaWriter returns nil when no brokers are configured.
func newKafkaWriter(cfg config.KafkaConfig) services.KafkaWriter {
	brokers := cfg.BrokerList()
	if len(brokers) == 0 {
		return nil
	}
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}
}

// run initializes the logger, database, Redis, Kafka, gateway clients and
// HTTP server. It sets up routes, applies middleware, and handles graceful
// shutdown.
func run(ctx context.Context, cfg *config.Config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.App.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.App.LogLevel)

	// Connect to PostgreSQL
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DB)
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)

	if err := repositories.Migrate(ctx, db); err != nil {
		return fmt.Errorf("PostgreSQL migration error: %w", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Redis.Addr(),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka producer
	writer := newKafkaWriter(cfg.Kafka)
	if writer != nil {
		defer writer.Close()
	}

	// Initialize JWT
	tokener := jwt.New(jwt.WithSecretKey(cfg.JWT.SecretKey))

	// Initialize repositories
	transactor := repositories.NewTransactor(db)
	walletRepo := repositories.NewWalletRepository(db)
	paymentRepo := repositories.NewPaymentRecordRepository(db)
	methodRepo := repositories.NewPaymentMethodRepository(db)
	accountCache := repositories.NewAccountNameCacheRepository(rdb, cfg.AccountTTL)

	// Initialize services
	gateways := newGateways(cfg)
	calculator := fees.New(fees.DefaultConfig())
	publisher := services.NewEventPublisher(writer)

	fundingService := services.NewFundingService(transactor, walletRepo, paymentRepo, gateways, calculator, publisher, cfg.App.CallbackURL)
	withdrawalService := services.NewWithdrawalService(transactor, walletRepo, paymentRepo, methodRepo, gateways, calculator, publisher)
	webhookProcessor := services.NewWebhookProcessor(
		gateways,
		services.WebhookSecrets{Paystack: cfg.Paystack.WebhookSecret, Flutterwave: cfg.Flutterwave.WebhookSecret},
		paymentRepo,
		fundingService,
		withdrawalService,
	)
	methodService := services.NewPaymentMethodService(methodRepo, accountCache, gateways)
	walletService := services.NewWalletService(walletRepo, paymentRepo)

	// Initialize handlers
	rt := routes{
		fund:               handlers.NewFundHandler(fundingService),
		verifyFunding:      handlers.NewVerifyFundingHandler(fundingService),
		withdraw:           handlers.NewWithdrawHandler(withdrawalService),
		balance:            handlers.NewGetBalanceHandler(walletService),
		transactions:       handlers.NewListTransactionsHandler(walletService),
		freeze:             handlers.NewFreezeHandler(walletService),
		payment:            handlers.NewGetPaymentHandler(fundingService),
		listPayments:       handlers.NewListPaymentsHandler(walletService),
		addPaymentMethod:   handlers.NewAddPaymentMethodHandler(methodService),
		listPaymentMethods: handlers.NewListPaymentMethodsHandler(methodService),
		webhook:            handlers.NewWebhookHandler(webhookProcessor),
	}

	swaggerURL := fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.App.Host, cfg.App.Port)
	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.App.Host, cfg.App.Port),
		Handler:           newRouter(rt, tokener, swaggerURL),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
