// Package ohlc provides incremental OHLC (Open, High, Low, Close) aggregation
// over a stream of order events.
//
// The engine keeps one mutable aggregate per instrument code for the life of
// the process and applies a fixed update rule to every incoming event. It
// performs no I/O; transmission and persistence of the resulting aggregates
// belong to the store client and service.
//
// Thread Safety:
//   - All state is guarded by a single mutex, so distinct instrument codes
//     may be ingested from concurrent workers
//   - Updates to the same instrument are serialized by that mutex
package ohlc

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"ohlc/internal/model"
)

// ErrMalformedRecord reports an input event the engine refuses to apply.
// A rejected event never mutates any aggregate; the caller skips the record
// and continues with the rest of the batch.
var ErrMalformedRecord = errors.New("malformed record")

// Engine aggregates order events into per-instrument OHLC summaries.
//
// Aggregates are created on the first event seen for an instrument code and
// never expire within a run. High and Low are maintained as O(1) running
// extrema, which is equivalent to recomputing them over the full price
// history for every update.
type Engine struct {
	mu sync.Mutex

	// aggregates maintains the current OHLC state for each instrument code.
	// The map key is the stock code and the value is the single live
	// aggregate for that instrument, mutated in place on every event.
	aggregates map[string]*model.OHLC
}

// NewEngine creates an empty aggregation engine.
func NewEngine() *Engine {
	return &Engine{
		aggregates: make(map[string]*model.OHLC),
	}
}

// ApplyEvent applies one parsed order event to the engine.
//
// Both event kinds feed the same update rule; the kind only determined which
// JSON fields the decoder read the (quantity, price) pair from.
func (e *Engine) ApplyEvent(event model.OrderEvent) (model.OHLC, error) {
	return e.Apply(event.StockCode, event.Price, event.Quantity)
}

// Apply folds one (price, quantity) observation into the aggregate for the
// given instrument code and returns a copy of the updated aggregate.
//
// The first event for a code seeds the aggregate with
// open=high=low=close=price, volume=quantity and value=quantity*price.
// Every subsequent event redefines a nominal bar that opens where the
// previous one closed:
//
//  1. open   <- previous close
//  2. high   <- max(high, price)
//  3. low    <- min(low, price)
//  4. close  <- price
//  5. volume <- volume + quantity
//  6. value  <- value + quantity*price
//
// Empty codes, negative prices and negative quantities are rejected with
// ErrMalformedRecord and leave all state untouched.
func (e *Engine) Apply(code string, price decimal.Decimal, quantity int64) (model.OHLC, error) {
	if code == "" {
		return model.OHLC{}, fmt.Errorf("%w: empty stock code", ErrMalformedRecord)
	}
	if price.IsNegative() {
		return model.OHLC{}, fmt.Errorf("%w: negative price %s for %s", ErrMalformedRecord, price, code)
	}
	if quantity < 0 {
		return model.OHLC{}, fmt.Errorf("%w: negative quantity %d for %s", ErrMalformedRecord, quantity, code)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	current, found := e.aggregates[code]
	if !found {
		current = seedAggregate(code, price, quantity)
		e.aggregates[code] = current
		return *current, nil
	}

	updateAggregate(current, price, quantity)
	return *current, nil
}

// seedAggregate builds the initial aggregate from the first observation for
// an instrument.
func seedAggregate(code string, price decimal.Decimal, quantity int64) *model.OHLC {
	return &model.OHLC{
		StockCode: code,
		Open:      price,
		High:      price,
		Low:       price,
		Close:     price,
		Volume:    quantity,
		Value:     price.Mul(decimal.NewFromInt(quantity)),
	}
}

// updateAggregate applies the continuation-bar update rule in place.
// Order matters: Open must capture the close value before this event
// overwrites it.
func updateAggregate(current *model.OHLC, price decimal.Decimal, quantity int64) {
	current.Open = current.Close

	if price.GreaterThan(current.High) {
		current.High = price
	}

	if price.LessThan(current.Low) {
		current.Low = price
	}

	current.Close = price
	current.Volume += quantity
	current.Value = current.Value.Add(price.Mul(decimal.NewFromInt(quantity)))
}

// Lookup returns a copy of the aggregate for the given code, if one exists.
func (e *Engine) Lookup(code string) (model.OHLC, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	current, found := e.aggregates[code]
	if !found {
		return model.OHLC{}, false
	}
	return *current, true
}

// Snapshot returns copies of all live aggregates, sorted by stock code so
// that downstream transmission and logging are deterministic.
func (e *Engine) Snapshot() []model.OHLC {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]model.OHLC, 0, len(e.aggregates))
	for _, aggregate := range e.aggregates {
		out = append(out, *aggregate)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].StockCode < out[j].StockCode
	})

	return out
}

// Codes returns the sorted set of instrument codes seen so far.
func (e *Engine) Codes() []string {
	e.mu.Lock()
	defer e.mu.Unlock()

	codes := make([]string, 0, len(e.aggregates))
	for code := range e.aggregates {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	return codes
}

// Len returns the number of instruments with live aggregates.
func (e *Engine) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return len(e.aggregates)
}
