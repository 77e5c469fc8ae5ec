// Package client provides the producer-side client of the OHLC store
// protocol.
//
// The client packages aggregates produced by the engine, transmits them to
// the store service, and retrieves stored aggregates by stock code. Remote
// failures are isolated per instrument: one failed send never aborts the
// rest of a batch.
package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "ohlc/gen/proto"
	"ohlc/internal/model"
)

// ErrNotFound reports that the service holds no aggregate for the requested
// code. It is a valid "no data" result, distinct from a transport failure.
var ErrNotFound = errors.New("no OHLC data for stock code")

// StoreClient sends aggregates to and retrieves them from the store service.
type StoreClient struct {
	rpc     pb.OHLCServiceClient // Remote service stub
	timeout time.Duration        // Per-call deadline; zero disables it
}

// NewStoreClient wraps a gRPC service stub.
func NewStoreClient(rpc pb.OHLCServiceClient, timeout time.Duration) *StoreClient {
	return &StoreClient{
		rpc:     rpc,
		timeout: timeout,
	}
}

// Send transmits one aggregate to the store service.
func (c *StoreClient) Send(ctx context.Context, aggregate model.OHLC) error {
	ctx, cancel := c.callContext(ctx)
	defer cancel()

	_, err := c.rpc.SendOHLC(ctx, toProto(aggregate))
	if err != nil {
		return fmt.Errorf("failed to send OHLC data for %s: %w", aggregate.StockCode, err)
	}

	log.Info().Str("stock_code", aggregate.StockCode).Msg("OHLC data sent successfully")
	return nil
}

// SendAll transmits a batch of aggregates, one call per instrument.
//
// Failures are reported per code and never stop the remaining sends. The
// returned map holds the error for each code that failed; it is empty when
// the whole batch succeeded.
func (c *StoreClient) SendAll(ctx context.Context, aggregates []model.OHLC) map[string]error {
	failed := make(map[string]error)

	for _, aggregate := range aggregates {
		if err := c.Send(ctx, aggregate); err != nil {
			log.Error().Err(err).Str("stock_code", aggregate.StockCode).Msg("failed to send OHLC data")
			failed[aggregate.StockCode] = err
		}
	}

	return failed
}

// Get retrieves the stored aggregate for a stock code.
//
// A service response of codes.NotFound maps onto ErrNotFound; any other
// failure is returned as a transport error.
func (c *StoreClient) Get(ctx context.Context, code string) (model.OHLC, error) {
	ctx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.rpc.GetOHLC(ctx, &pb.StockRequest{StockCode: code})
	if status.Code(err) == codes.NotFound {
		return model.OHLC{}, fmt.Errorf("%w: %s", ErrNotFound, code)
	}
	if err != nil {
		return model.OHLC{}, fmt.Errorf("failed to get OHLC data for %s: %w", code, err)
	}

	aggregate, err := fromProto(resp)
	if err != nil {
		return model.OHLC{}, fmt.Errorf("bad OHLC response for %s: %w", code, err)
	}

	return aggregate, nil
}

func (c *StoreClient) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, c.timeout)
}

// toProto converts a model aggregate to its wire representation.
func toProto(aggregate model.OHLC) *pb.OHLC {
	return &pb.OHLC{
		StockCode: aggregate.StockCode,
		Open:      aggregate.Open.String(),
		High:      aggregate.High.String(),
		Low:       aggregate.Low.String(),
		Close:     aggregate.Close.String(),
		Volume:    aggregate.Volume,
		Value:     aggregate.Value.String(),
	}
}

// fromProto parses a wire aggregate back into the model type.
func fromProto(resp *pb.OHLC) (model.OHLC, error) {
	if resp == nil {
		return model.OHLC{}, errors.New("nil response")
	}

	open, err := decimal.NewFromString(resp.Open)
	if err != nil {
		return model.OHLC{}, fmt.Errorf("bad open field %q: %v", resp.Open, err)
	}
	high, err := decimal.NewFromString(resp.High)
	if err != nil {
		return model.OHLC{}, fmt.Errorf("bad high field %q: %v", resp.High, err)
	}
	low, err := decimal.NewFromString(resp.Low)
	if err != nil {
		return model.OHLC{}, fmt.Errorf("bad low field %q: %v", resp.Low, err)
	}
	closePrice, err := decimal.NewFromString(resp.Close)
	if err != nil {
		return model.OHLC{}, fmt.Errorf("bad close field %q: %v", resp.Close, err)
	}
	value, err := decimal.NewFromString(resp.Value)
	if err != nil {
		return model.OHLC{}, fmt.Errorf("bad value field %q: %v", resp.Value, err)
	}

	return model.OHLC{
		StockCode: resp.StockCode,
		Open:      open,
		High:      high,
		Low:       low,
		Close:     closePrice,
		Volume:    resp.Volume,
		Value:     value,
	}, nil
}
