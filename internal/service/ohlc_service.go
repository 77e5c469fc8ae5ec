// Package service implements the OHLCService gRPC server.
//
// The service is a stateless request handler over an external key-value
// store: SendOHLC encodes the incoming aggregate and overwrites the value
// for its stock code, GetOHLC loads and decodes the stored value. The
// service performs no aggregation itself; incoming aggregates are final and
// self-contained.
package service

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
	"ohlc/internal/codec"
	"ohlc/internal/instrumentation"
	"ohlc/internal/model"
	"ohlc/internal/store"
	"ohlc/internal/utils"
)

// OHLCService implements the gRPC OHLCService interface over a Store.
type OHLCService struct {
	pb.UnimplementedOHLCServiceServer // Embed unimplemented server for forward compatibility

	store   store.Store              // Key-value backend for encoded aggregates
	metrics *instrumentation.Metrics // Request counters by outcome
	timeout time.Duration            // Per-request budget for backend calls
}

// NewOHLCService creates a service over the given store. A zero timeout
// disables the per-request deadline.
func NewOHLCService(s store.Store, metrics *instrumentation.Metrics, timeout time.Duration) *OHLCService {
	return &OHLCService{
		store:   s,
		metrics: metrics,
		timeout: timeout,
	}
}

// SendOHLC implements the store operation of the remote protocol.
//
// The incoming aggregate is validated, re-encoded into the storage format
// and written as the sole value for its stock code, unconditionally
// overwriting any prior value.
func (s *OHLCService) SendOHLC(ctx context.Context, req *pb.OHLC) (*pb.SendOHLCResponse, error) {
	aggregate, err := fromProto(req)
	if err != nil {
		s.metrics.RecordStore("invalid")
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	payload, err := codec.Encode(aggregate)
	if err != nil {
		s.metrics.RecordStore("invalid")
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	ctx, cancel := s.requestContext(ctx)
	defer cancel()

	if err := s.store.Save(ctx, aggregate.StockCode, payload); err != nil {
		s.metrics.RecordStore("storage_error")
		log.Error().Err(err).Str("stock_code", aggregate.StockCode).Msg("failed to save OHLC data")
		return nil, status.Errorf(codes.Unavailable, "failed to save OHLC data for %s", aggregate.StockCode)
	}

	s.metrics.RecordStore("ok")
	log.Info().Str("stock_code", aggregate.StockCode).Msg("saved OHLC data")

	return &pb.SendOHLCResponse{Message: "OHLC data received successfully"}, nil
}

// GetOHLC implements the retrieve operation of the remote protocol.
//
// An absent key yields codes.NotFound, a stored payload that no longer
// decodes yields codes.DataLoss, and backend failures yield
// codes.Unavailable; the client can tell all three apart.
func (s *OHLCService) GetOHLC(ctx context.Context, req *pb.StockRequest) (*pb.OHLC, error) {
	if req == nil {
		s.metrics.RecordRetrieve("invalid")
		return nil, status.Error(codes.InvalidArgument, "request cannot be nil")
	}

	if err := utils.ValidateStockCode(req.StockCode); err != nil {
		s.metrics.RecordRetrieve("invalid")
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	ctx, cancel := s.requestContext(ctx)
	defer cancel()

	payload, err := s.store.Load(ctx, req.StockCode)
	if errors.Is(err, store.ErrNotFound) {
		s.metrics.RecordRetrieve("not_found")
		return nil, status.Errorf(codes.NotFound, "no OHLC data for stock %s", req.StockCode)
	}
	if err != nil {
		s.metrics.RecordRetrieve("storage_error")
		log.Error().Err(err).Str("stock_code", req.StockCode).Msg("failed to load OHLC data")
		return nil, status.Errorf(codes.Unavailable, "failed to load OHLC data for %s", req.StockCode)
	}

	aggregate, err := codec.Decode(payload)
	if err != nil {
		s.metrics.RecordRetrieve("data_loss")
		log.Error().Err(err).Str("stock_code", req.StockCode).Msg("stored OHLC payload is corrupt")
		return nil, status.Errorf(codes.DataLoss, "stored OHLC data for %s is corrupt", req.StockCode)
	}

	s.metrics.RecordRetrieve("ok")
	log.Info().Str("stock_code", req.StockCode).Msg("retrieved OHLC data")

	return toProto(aggregate), nil
}

// requestContext derives the per-request deadline for backend calls.
func (s *OHLCService) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.timeout)
}

// fromProto rebuilds a model aggregate from its wire representation.
func fromProto(req *pb.OHLC) (model.OHLC, error) {
	if req == nil {
		return model.OHLC{}, errors.New("request cannot be nil")
	}

	if err := utils.ValidateStockCode(req.StockCode); err != nil {
		return model.OHLC{}, err
	}

	if req.Volume < 0 {
		return model.OHLC{}, fmt.Errorf("negative volume %d", req.Volume)
	}

	fields := []struct {
		name  string
		token string
	}{
		{name: "open", token: req.Open},
		{name: "high", token: req.High},
		{name: "low", token: req.Low},
		{name: "close", token: req.Close},
		{name: "value", token: req.Value},
	}

	parsed := make([]decimal.Decimal, len(fields))
	for i, f := range fields {
		d, err := decimal.NewFromString(f.token)
		if err != nil {
			return model.OHLC{}, fmt.Errorf("bad %s field %q: %v", f.name, f.token, err)
		}
		parsed[i] = d
	}

	return model.OHLC{
		StockCode: req.StockCode,
		Open:      parsed[0],
		High:      parsed[1],
		Low:       parsed[2],
		Close:     parsed[3],
		Volume:    req.Volume,
		Value:     parsed[4],
	}, nil
}

// toProto converts a model aggregate to its wire representation. Decimal
// fields travel as strings to preserve precision.
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
