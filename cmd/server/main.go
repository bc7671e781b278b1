package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"

	"deliverytech/internal/cache"
	"deliverytech/internal/config"
	"deliverytech/internal/database"
	"deliverytech/internal/httpx"
	"deliverytech/internal/logger"
	"deliverytech/internal/messaging"
	"deliverytech/internal/services/customer"
	"deliverytech/internal/services/order"
	"deliverytech/internal/services/product"
	"deliverytech/internal/services/restaurant"
)

func main() {
	var (
		configPath     = flag.String("config", "config.yaml", "Path to configuration file")
		port           = flag.Int("port", 0, "HTTP port (overrides config)")
		migrationsPath = flag.String("migrations", "migrations", "Path to migration files")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}

	log := logger.New("delivery-api")
	requestID := logger.GenerateRequestID()

	log.Info("service_started", "Starting delivery platform API", requestID, map[string]interface{}{
		"port": cfg.Server.Port,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Info("graceful_shutdown", "Received shutdown signal", requestID, nil)
		cancel()
	}()

	if err := run(ctx, cfg, log, *migrationsPath, requestID); err != nil {
		log.Error("service_failed", "Delivery platform API failed", requestID, err, nil)
		os.Exit(1)
	}

	log.Info("service_stopped", "Service stopped gracefully", requestID, nil)
}

func run(ctx context.Context, cfg *config.Config, log *logger.Logger, migrationsPath, requestID string) error {
	db, err := database.New(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	log.Info("db_connected", "Connected to PostgreSQL database", requestID, nil)

	if err := db.RunMigrations(ctx, migrationsPath); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	conn, err := messaging.New(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize messaging: %w", err)
	}
	defer conn.Close()

	log.Info("rabbitmq_connected", "Connected to RabbitMQ", requestID, nil)

	publisher := messaging.NewPublisher(conn, log)

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr()})
	defer redisClient.Close()
	productCache := cache.NewProductCache(redisClient, cfg.CacheTTL())

	// Repositories and services
	customerRepo := customer.NewRepository(db)
	restaurantRepo := restaurant.NewRepository(db)
	productRepo := product.NewRepository(db)
	orderRepo := order.NewRepository(db)

	customerService := customer.NewService(customerRepo)
	restaurantService := restaurant.NewService(restaurantRepo)
	productService := product.NewService(productRepo, productCache, restaurantRepo)
	orderService := order.NewService(customerRepo, restaurantRepo, productService, orderRepo, publisher, log)

	// Router
	router := mux.NewRouter()
	customer.NewHandler(customerService, log).Register(router)
	restaurant.NewHandler(restaurantService, log).Register(router)
	product.NewHandler(productService, log).Register(router)
	order.NewHandler(orderService, log).Register(router)
	router.HandleFunc("/health", healthHandler(db, conn, productCache)).Methods(http.MethodGet)

	handler := cors.Default().Handler(httpx.AccessLog(log, router))

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: handler,
	}

	go func() {
		log.Info("http_listening", fmt.Sprintf("API listening on port %d", cfg.Server.Port), requestID, nil)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server_failed", "HTTP server failed", requestID, err, nil)
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer shutdownCancel()

	return server.Shutdown(shutdownCtx)
}

func healthHandler(db *database.DB, conn *messaging.Connection, productCache *cache.ProductCache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		checks := map[string]bool{
			"database": db.Ping(ctx) == nil,
			"rabbitmq": !conn.IsClosed(),
			"redis":    productCache.Ping(ctx) == nil,
		}

		healthy := true
		for _, ok := range checks {
			healthy = healthy && ok
		}

		status := http.StatusOK
		statusText := "ok"
		if !healthy {
			status = http.StatusServiceUnavailable
			statusText = "unhealthy"
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":    statusText,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"service":   "delivery-api",
			"checks":    checks,
		})
	}
}
