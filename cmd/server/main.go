package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	api "shareit-booking/internal/api/grpc"
	"shareit-booking/internal/api/grpc/interceptor"
	httpapi "shareit-booking/internal/api/http"
	"shareit-booking/internal/booking"
	"shareit-booking/internal/config"
	"shareit-booking/internal/events"
	"shareit-booking/internal/logger"
	"shareit-booking/internal/repository"
	"shareit-booking/internal/repository/memory"
	"shareit-booking/internal/repository/postgres"
	"shareit-booking/internal/security"
	"shareit-booking/internal/service"

	_ "github.com/lib/pq"
)

type repositories struct {
	users    repository.UserRepository
	items    repository.ItemRepository
	bookings repository.BookingRepository
	close    func() error
}

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting ShareIt booking service...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "http", cfg.GetHTTPAddress(), "grpc", cfg.GetGRPCAddress())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repos, err := openRepositories(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer repos.close()

	// Booking events
	var publisher service.EventPublisher
	if len(cfg.Kafka.Brokers) > 0 {
		producer := events.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		defer producer.Close()
		publisher = producer
		logger.Info("Publishing booking events", "brokers", cfg.Kafka.Brokers, "topic", cfg.Kafka.Topic)
	} else {
		logger.Info("Kafka brokers not configured, booking events disabled")
	}

	bookingSvc := service.NewBookingService(repos.bookings, repos.items, repos.users, booking.SystemClock{}, publisher)

	// Initialize Security
	var tokenManager security.TokenManager
	if cfg.JWT.Secret != "" {
		tokenManager = security.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute)
	}
	if cfg.Auth.TrustUserHeader {
		logger.Warn("Trusting caller-supplied user ids; run only behind an authenticating gateway")
	}

	// gRPC server
	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(interceptor.NewAuthInterceptor(tokenManager, cfg.Auth.TrustUserHeader).Unary()),
	)
	api.RegisterBookingServiceServer(grpcServer, api.NewBookingHandler(bookingSvc))
	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	reflection.Register(grpcServer)

	// HTTP server
	httpServer := &http.Server{
		Addr:              cfg.GetHTTPAddress(),
		Handler:           httpapi.NewRouter(bookingSvc, httpapi.NewAuthenticator(tokenManager, cfg.Auth.TrustUserHeader)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	lis, err := net.Listen("tcp", cfg.GetGRPCAddress())
	if err != nil {
		logger.Error("Failed to listen", "error", err, "address", cfg.GetGRPCAddress())
		log.Fatalf("Failed to listen: %v", err)
	}

	errCh := make(chan error, 2)
	go func() {
		logger.Info("gRPC server listening", "address", cfg.GetGRPCAddress())
		errCh <- grpcServer.Serve(lis)
	}()
	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetHTTPAddress())
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		logger.Error("Server stopped unexpectedly", "error", err)
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	}

	healthServer.Shutdown()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeoutSeconds)*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP shutdown failed", "error", err)
	}
	grpcServer.GracefulStop()
	logger.Info("Server stopped")
}

func openRepositories(ctx context.Context, cfg *config.Config) (*repositories, error) {
	if cfg.Store.Type == config.StoreTypeMemory {
		logger.Info("Using in-memory store")
		store := memory.NewStore()
		return &repositories{
			users:    store.Users(),
			items:    store.Items(),
			bookings: store.Bookings(),
			close:    func() error { return nil },
		}, nil
	}

	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	logger.Info("Database connection established")

	store := postgres.NewStore(db)
	return &repositories{
		users:    store.Users,
		items:    store.Items,
		bookings: store.Bookings,
		close:    store.Close,
	}, nil
}
