/*
Package main implements a lookup client for the OHLC store service.

The client fetches the stored OHLC aggregate for one stock code and logs its
fields. A missing code is reported as "no data", distinct from a transport
failure.

Usage:

	go run main.go -addr=localhost:50051 AAPL
*/
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "ohlc/gen/proto"
	"ohlc/internal/client"
)

// Command-line flags for configuring the client connection
var (
	// serverAddr specifies the store service address to connect to
	serverAddr = flag.String("addr", "localhost:50051", "The store service address in the format host:port")
	// timeout bounds the retrieve call
	timeout = flag.Duration("timeout", 5*time.Second, "Per-call timeout for store requests")
)

func main() {
	flag.Parse()

	// Initialize structured logger with timestamp and info level
	log := zerolog.New(os.Stdout).Level(zerolog.InfoLevel).With().Timestamp().Logger()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <stock_code>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}
	stockCode := flag.Arg(0)

	if *serverAddr == "" {
		log.Fatal().Msg("server address cannot be empty")
	}

	conn, err := grpc.NewClient(*serverAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create connection")
	}
	defer conn.Close()

	storeClient := client.NewStoreClient(pb.NewOHLCServiceClient(conn), *timeout)

	aggregate, err := storeClient.Get(context.Background(), stockCode)
	if errors.Is(err, client.ErrNotFound) {
		log.Warn().Str("stock_code", stockCode).Msg("no OHLC data stored for this code")
		return
	}
	if err != nil {
		log.Fatal().Err(err).Str("stock_code", stockCode).Msg("failed to get OHLC data")
	}

	log.Info().
		Str("stock_code", aggregate.StockCode).
		Str("open", aggregate.Open.String()).
		Str("high", aggregate.High.String()).
		Str("low", aggregate.Low.String()).
		Str("close", aggregate.Close.String()).
		Int64("volume", aggregate.Volume).
		Str("value", aggregate.Value.String()).
		Msg("received OHLC data")
}
