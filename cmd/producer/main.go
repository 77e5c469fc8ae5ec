/*
Package main implements the OHLC producer.

The producer reads every newline-delimited JSON record file in a data folder,
aggregates the order events into one running OHLC summary per stock code, and
transmits each summary to the store service over gRPC. Malformed records and
per-instrument send failures are logged and skipped; only an unreadable input
source aborts the run.

Usage:

	go run main.go -data=./data -addr=localhost:50051
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "ohlc/gen/proto"
	"ohlc/internal/client"
	"ohlc/internal/ingest"
	"ohlc/internal/ohlc"
)

// Command-line flags for configuring the producer run
var (
	// dataDir is the folder of newline-delimited JSON record files
	dataDir = flag.String("data", "./data", "Folder containing order record files")
	// serverAddr specifies the store service address to send aggregates to
	serverAddr = flag.String("addr", "localhost:50051", "The store service address in the format host:port")
	// timeout bounds each SendOHLC call
	timeout = flag.Duration("timeout", 5*time.Second, "Per-call timeout for store requests")
)

func main() {
	flag.Parse()

	// Initialize structured logger with timestamp and info level
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	if err := validateConfig(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	// Aggregate the whole input folder before transmitting anything; the
	// engine keeps one running summary per stock code for the entire pass.
	engine := ohlc.NewEngine()
	reader := ingest.NewReader(engine)

	stats, err := reader.ProcessFolder(*dataDir)
	if err != nil {
		log.Fatal().Err(err).Str("folder", *dataDir).Msg("ingestion failed")
	}

	log.Info().
		Int("files", stats.Files).
		Int("records", stats.Records).
		Int("malformed", stats.Malformed).
		Int("instruments", engine.Len()).
		Msg("ingestion complete")

	if engine.Len() == 0 {
		log.Warn().Msg("no aggregates to send")
		return
	}

	// Using insecure credentials; the deployment fronts transport security
	conn, err := grpc.NewClient(*serverAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create connection")
	}
	defer conn.Close()

	storeClient := client.NewStoreClient(pb.NewOHLCServiceClient(conn), *timeout)

	failed := storeClient.SendAll(context.Background(), engine.Snapshot())
	for code, sendErr := range failed {
		log.Error().Err(sendErr).Str("stock_code", code).Msg("aggregate not stored")
	}

	log.Info().
		Int("sent", engine.Len()-len(failed)).
		Int("failed", len(failed)).
		Msg("transmission complete")
}

// validateConfig performs validation of command-line configuration.
func validateConfig() error {
	if *dataDir == "" {
		return fmt.Errorf("data folder cannot be empty")
	}
	if *serverAddr == "" {
		return fmt.Errorf("server address cannot be empty")
	}
	if *timeout <= 0 {
		return fmt.Errorf("timeout must be greater than 0")
	}
	return nil
}
