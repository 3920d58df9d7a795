package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/simaogato/lifedash-backend/internal/adapter/backup"
	grpcadapter "github.com/simaogato/lifedash-backend/internal/adapter/grpc"
	httpadapter "github.com/simaogato/lifedash-backend/internal/adapter/http"
	"github.com/simaogato/lifedash-backend/internal/app"
	"github.com/simaogato/lifedash-backend/internal/auth"
	"github.com/simaogato/lifedash-backend/internal/config"
	"github.com/simaogato/lifedash-backend/internal/pkg/logger"
	"github.com/simaogato/lifedash-backend/internal/usecase/calendar"
	"github.com/simaogato/lifedash-backend/internal/usecase/seeder"
)

const (
	shutdownTimeout = 10 * time.Second
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New(os.Stderr, "info", "console")
		bootLog.Fatal().Err(err).Msg("Failed to load configuration")
	}
	log := logger.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)

	cal, err := calendar.Load(cfg.Timezone)
	if err != nil {
		log.Fatal().Err(err).Str("timezone", cfg.Timezone).Msg("Failed to load timezone")
	}

	// 2. Setup storage
	ctx := context.Background()
	repos, closeStore, err := app.OpenStore(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Str("store", cfg.Store).Msg("Failed to open store")
	}
	defer closeStore()

	// 3. Seed defaults (and demo data when asked to)
	if err := seeder.NewSystemSeeder(repos.Diet).Seed(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed diet goals")
	}
	if cfg.SeedDemo {
		seeded, err := seeder.NewDemoSeeder(repos, cal).Seed(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to seed demo data")
		}
		log.Info().Bool("seeded", seeded).Msg("Demo data checked")
	}

	// 4. Initialize Services (Use Cases)
	services := app.New(repos, cal)

	var issuer *auth.Issuer
	if cfg.AuthEnabled() {
		issuer = auth.NewIssuer(cfg.AppPassword, cfg.JWTSecret, cfg.SessionTTL)
	} else {
		log.Warn().Msg("APP_PASSWORD is not set, gRPC methods are public")
	}

	// 5. Start gRPC Server
	interceptors := []grpclib.UnaryServerInterceptor{grpcadapter.LoggingInterceptor(log)}
	if issuer != nil {
		interceptors = append(interceptors, grpcadapter.AuthInterceptor(issuer))
	}
	grpcServer := grpclib.NewServer(grpclib.ChainUnaryInterceptor(interceptors...))
	grpcadapter.NewServer(services).Register(grpcServer)

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus(grpcadapter.ServiceName, healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		log.Fatal().Err(err).Str("addr", cfg.GRPCAddr).Msg("Failed to listen")
	}
	go func() {
		log.Info().Str("addr", cfg.GRPCAddr).Msg("gRPC server listening")
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatal().Err(err).Msg("Failed to serve gRPC server")
		}
	}()

	// 6. Start HTTP Server
	handler := &httpadapter.Handler{Exporter: services.Snapshot, Log: log}
	if issuer != nil {
		handler.Auth = issuer
	}
	if cfg.BackupEnabled() {
		sink, err := backup.NewS3Sink(ctx, cfg.S3Region, cfg.S3Bucket, cfg.S3Prefix)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to configure backup storage")
		}
		handler.Sink = sink
	}

	gin.SetMode(gin.ReleaseMode)
	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Msg("HTTP server listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to serve HTTP server")
		}
	}()

	// Graceful shutdown
	waitForShutdown(log, grpcServer, healthServer, httpServer)
}

// waitForShutdown waits for SIGTERM or SIGINT and gracefully shuts down the servers
func waitForShutdown(log zerolog.Logger, grpcServer *grpclib.Server, healthServer *health.Server, httpServer *http.Server) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	sig := <-sigChan
	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully")

	healthServer.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown failed")
	}

	grpcServer.GracefulStop()
	log.Info().Msg("Servers stopped")
}
