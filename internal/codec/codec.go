// Package codec converts OHLC aggregates to and from their flat storage
// encoding.
//
// The encoding is a single line of seven comma-separated fields in fixed
// order:
//
//	stock_code,open,high,low,close,volume,value
//
// Decimal fields are decimal-formatted and volume is a base-10 integer,
// though decoders accept an integral decimal token for it as well. Encode and
// Decode are mutual inverses for every valid aggregate.
//
// The format defines no escaping, so instrument codes containing a comma are
// out of contract and rejected at encode time rather than silently mangled.
package codec

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"ohlc/internal/model"
	"ohlc/internal/utils"
)

// fieldCount is the fixed number of fields in an encoded aggregate.
const fieldCount = 7

// ErrDecode reports a payload that cannot be decoded into an aggregate.
// A stored value failing to decode implies data loss; callers surface it
// rather than recover.
var ErrDecode = errors.New("decode OHLC payload")

// Encode serializes an aggregate into its comma-separated wire form.
func Encode(aggregate model.OHLC) (string, error) {
	if err := utils.ValidateStockCode(aggregate.StockCode); err != nil {
		return "", fmt.Errorf("encode OHLC: %w", err)
	}

	fields := []string{
		aggregate.StockCode,
		aggregate.Open.String(),
		aggregate.High.String(),
		aggregate.Low.String(),
		aggregate.Close.String(),
		strconv.FormatInt(aggregate.Volume, 10),
		aggregate.Value.String(),
	}

	return strings.Join(fields, ","), nil
}

// Decode parses a comma-separated payload back into an aggregate.
//
// It fails with an ErrDecode-wrapped error when the field count is not seven,
// the stock code is empty, or any numeric field does not parse. The volume
// token may be an integer or an integral decimal ("42" or "42.0"); fractional
// volumes are rejected.
func Decode(payload string) (model.OHLC, error) {
	fields := strings.Split(payload, ",")
	if len(fields) != fieldCount {
		return model.OHLC{}, fmt.Errorf("%w: expected %d fields, got %d", ErrDecode, fieldCount, len(fields))
	}

	code := fields[0]
	if strings.TrimSpace(code) == "" {
		return model.OHLC{}, fmt.Errorf("%w: empty stock code", ErrDecode)
	}

	open, err := parsePrice("open", fields[1])
	if err != nil {
		return model.OHLC{}, err
	}
	high, err := parsePrice("high", fields[2])
	if err != nil {
		return model.OHLC{}, err
	}
	low, err := parsePrice("low", fields[3])
	if err != nil {
		return model.OHLC{}, err
	}
	closePrice, err := parsePrice("close", fields[4])
	if err != nil {
		return model.OHLC{}, err
	}
	volume, err := parseVolume(fields[5])
	if err != nil {
		return model.OHLC{}, err
	}
	value, err := parsePrice("value", fields[6])
	if err != nil {
		return model.OHLC{}, err
	}

	return model.OHLC{
		StockCode: code,
		Open:      open,
		High:      high,
		Low:       low,
		Close:     closePrice,
		Volume:    volume,
		Value:     value,
	}, nil
}

func parsePrice(field, token string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(token)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: bad %s field %q: %v", ErrDecode, field, token, err)
	}
	return d, nil
}

// parseVolume accepts "42" and "42.0" but rejects "42.5". Stored values are
// written with an integer token; the decimal form exists for compatibility
// with writers that format every field generically.
func parseVolume(token string) (int64, error) {
	if v, err := strconv.ParseInt(token, 10, 64); err == nil {
		return v, nil
	}

	d, err := decimal.NewFromString(token)
	if err != nil {
		return 0, fmt.Errorf("%w: bad volume field %q: %v", ErrDecode, token, err)
	}
	if !d.IsInteger() {
		return 0, fmt.Errorf("%w: volume %q is not integral", ErrDecode, token)
	}

	return d.IntPart(), nil
}
