// Package model defines core data types for the OHLC aggregation service.
//
// This package contains the fundamental data structures used throughout the
// system for representing order events and per-instrument OHLC aggregates.
// All price and turnover fields use decimal.Decimal for precise financial
// calculations to avoid floating-point precision issues common in financial
// applications.
package model

import (
	"github.com/shopspring/decimal"
)

// EventKind identifies the type of an incoming order event.
type EventKind int

const (
	// NewOrder represents a newly placed order (wire tag "A").
	NewOrder EventKind = iota

	// ExecutedOrder represents an order execution (wire tag "E").
	ExecutedOrder
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case NewOrder:
		return "NewOrder"
	case ExecutedOrder:
		return "ExecutedOrder"
	default:
		return "Unknown"
	}
}

// OrderEvent represents one parsed input record from the ingestion boundary.
//
// It carries the fields the aggregation engine consumes: the event kind, the
// instrument the event belongs to, and the (quantity, price) pair relevant to
// that kind. Events are constructed once per input line by the ingest decoder,
// applied to the engine, and then discarded; they are never retained.
type OrderEvent struct {
	Kind      EventKind       // NewOrder or ExecutedOrder
	StockCode string          // Instrument code the event belongs to (e.g. "AAPL")
	Quantity  int64           // Order size or executed size, non-negative
	Price     decimal.Decimal // Order price or execution price, non-negative
}

// OHLC represents the running Open-High-Low-Close-Volume-Value summary for
// one instrument code.
//
// One instance exists per instrument for the life of an ingestion run, owned
// by the aggregation engine and handed out by value for transmission. Every
// event redefines a nominal bar that opens where the previous one closed, so
// Open tracks the close that preceded the most recent event rather than the
// first price of the run.
//
// Invariants after every update:
//   - Low <= Open, Close, High
//   - High >= Open, Close, Low
//   - Volume >= 0, Value non-decreasing for non-negative inputs
type OHLC struct {
	StockCode string          // Instrument code this aggregate belongs to
	Open      decimal.Decimal // Close carried over from before the latest event
	High      decimal.Decimal // Maximum price observed so far
	Low       decimal.Decimal // Minimum price observed so far
	Close     decimal.Decimal // Price of the most recent event
	Volume    int64           // Sum of all quantities observed
	Value     decimal.Decimal // Turnover: sum of quantity x price across all events
}

// Equal reports whether two aggregates match field for field. Decimal fields
// compare by numeric value, so "98" and "98.00" are equal.
func (o OHLC) Equal(other OHLC) bool {
	return o.StockCode == other.StockCode &&
		o.Open.Equal(other.Open) &&
		o.High.Equal(other.High) &&
		o.Low.Equal(other.Low) &&
		o.Close.Equal(other.Close) &&
		o.Volume == other.Volume &&
		o.Value.Equal(other.Value)
}
