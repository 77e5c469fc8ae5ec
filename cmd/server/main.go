/*
Package main implements the OHLC store service.

The server accepts per-instrument OHLC aggregates over gRPC, persists each
one in Redis keyed by stock code (last-write-wins), and serves them back on
lookup. It supports graceful shutdown, health checks, and a Prometheus
metrics endpoint.

Configuration comes from environment variables:

	LISTEN_ADDR=:50051 REDIS_URL=redis://localhost:6379 go run main.go

The server will keep serving store and retrieve requests until interrupted.
*/
package main

import (
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/keepalive"

	pb "ohlc/gen/proto"
	"ohlc/internal/config"
	"ohlc/internal/instrumentation"
	"ohlc/internal/service"
	"ohlc/internal/store"
)

// main is the entry point of the store service. It loads configuration,
// connects to Redis, registers the gRPC service, and serves until shutdown.
func main() {
	// Initialize structured logger with timestamp and console output
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(level)

	// Connect to the persistence backend before accepting any requests
	redisStore, err := store.NewRedisStore(cfg.RedisURL, cfg.RedisPassword)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisStore.Close()

	metrics := instrumentation.NewMetrics(prometheus.DefaultRegisterer)
	ohlcService := service.NewOHLCService(redisStore, metrics, cfg.RequestTimeout)

	// Set up TCP listener for the gRPC server
	lis, err := net.Listen("tcp", cfg.ListenAddr)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to listen")
	}

	// Keepalive settings help maintain stable long-lived client connections
	s := grpc.NewServer(
		grpc.KeepaliveParams(keepalive.ServerParameters{
			MaxConnectionIdle: 5 * time.Minute,
			MaxConnectionAge:  30 * time.Minute,
			Time:              20 * time.Second,
			Timeout:           10 * time.Second,
		}),
	)

	pb.RegisterOHLCServiceServer(s, ohlcService)

	// Register health check service for monitoring and load balancing
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(s, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	// Serve Prometheus metrics on a separate HTTP port
	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		addr := fmt.Sprintf(":%d", cfg.MetricsPort)
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.Error().Err(err).Msg("metrics endpoint stopped")
		}
	}()

	// Graceful shutdown on interrupt signals
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		log.Info().Msg("initiating graceful shutdown")
		s.GracefulStop()
		lis.Close()
	}()

	log.Info().
		Str("addr", cfg.ListenAddr).
		Str("redis", cfg.RedisURL).
		Int("metrics_port", cfg.MetricsPort).
		Msg("server starting")

	if err := s.Serve(lis); err != nil {
		log.Fatal().Err(err).Msg("failed to serve")
	}
}
