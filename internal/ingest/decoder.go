// Package ingest provides the ingestion boundary of the OHLC service.
//
// It decodes newline-delimited JSON order records into model.OrderEvent
// values and feeds whole folders of record files into the aggregation
// engine. All numeric fields arrive as strings on the wire and are validated
// with struct tags before parsing.
//
// Key features:
//   - Input validation using struct tags and validator
//   - Financial precision using decimal.Decimal for price data
//   - Per-record error isolation: a malformed line is skipped and counted,
//     never aborting the rest of the batch
package ingest

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"

	"ohlc/internal/model"
)

// ErrMalformedRecord reports an input line that cannot be turned into an
// order event. The offending record is skipped; processing continues.
var ErrMalformedRecord = errors.New("malformed record")

// record represents the raw JSON shape of one input line.
//
// Two event kinds share the format. A new order ("A") carries quantity and
// price; an execution ("E") carries executed_quantity and execution_price.
// Numeric fields are strings to preserve precision during JSON parsing, as
// in:
//
//	{"type":"A","stock_code":"AAPL","quantity":"10","price":"100.0"}
//	{"type":"E","stock_code":"AAPL","executed_quantity":"5","execution_price":"105.0"}
type record struct {
	Type             string `json:"type" validate:"required,len=1"`                 // Event kind tag: "A" or "E"
	StockCode        string `json:"stock_code" validate:"required"`                 // Instrument code
	Quantity         string `json:"quantity" validate:"omitempty,numeric"`          // Order size (type "A")
	Price            string `json:"price" validate:"omitempty,numeric"`             // Order price (type "A")
	ExecutedQuantity string `json:"executed_quantity" validate:"omitempty,numeric"` // Executed size (type "E")
	ExecutionPrice   string `json:"execution_price" validate:"omitempty,numeric"`   // Execution price (type "E")
}

// Decoder parses raw order record lines into model.OrderEvent values.
type Decoder struct {
	validate *validator.Validate // Validator instance for record validation
}

// NewDecoder creates a record decoder.
func NewDecoder() *Decoder {
	return &Decoder{
		validate: validator.New(),
	}
}

// DecodeRecord parses one JSON line into an order event.
//
// Unparseable JSON, an unrecognized type tag, a missing stock code, or a
// numeric field that fails to parse all yield an ErrMalformedRecord-wrapped
// error. Negative quantities and prices are rejected for the same reason.
func (d *Decoder) DecodeRecord(line []byte) (model.OrderEvent, error) {
	var raw record
	if err := json.Unmarshal(line, &raw); err != nil {
		return model.OrderEvent{}, fmt.Errorf("%w: invalid JSON: %v", ErrMalformedRecord, err)
	}

	if err := d.validate.Struct(&raw); err != nil {
		return model.OrderEvent{}, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}

	var (
		kind          model.EventKind
		quantityToken string
		priceToken    string
	)

	switch raw.Type {
	case "A":
		kind = model.NewOrder
		quantityToken = raw.Quantity
		priceToken = raw.Price
	case "E":
		kind = model.ExecutedOrder
		quantityToken = raw.ExecutedQuantity
		priceToken = raw.ExecutionPrice
	default:
		return model.OrderEvent{}, fmt.Errorf("%w: unrecognized type %q", ErrMalformedRecord, raw.Type)
	}

	quantity, err := parseQuantity(quantityToken)
	if err != nil {
		return model.OrderEvent{}, err
	}

	price, err := parsePrice(priceToken)
	if err != nil {
		return model.OrderEvent{}, err
	}

	return model.OrderEvent{
		Kind:      kind,
		StockCode: raw.StockCode,
		Quantity:  quantity,
		Price:     price,
	}, nil
}

func parseQuantity(token string) (int64, error) {
	if token == "" {
		return 0, fmt.Errorf("%w: missing quantity", ErrMalformedRecord)
	}

	quantity, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: bad quantity %q: %v", ErrMalformedRecord, token, err)
	}
	if quantity < 0 {
		return 0, fmt.Errorf("%w: negative quantity %d", ErrMalformedRecord, quantity)
	}

	return quantity, nil
}

func parsePrice(token string) (decimal.Decimal, error) {
	if token == "" {
		return decimal.Decimal{}, fmt.Errorf("%w: missing price", ErrMalformedRecord)
	}

	price, err := decimal.NewFromString(token)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: bad price %q: %v", ErrMalformedRecord, token, err)
	}
	if price.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("%w: negative price %s", ErrMalformedRecord, price)
	}

	return price, nil
}
