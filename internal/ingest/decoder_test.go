package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ohlc/internal/model"
)

func Test_DecodeRecord_NewOrder(t *testing.T) {
	d := NewDecoder()

	event, err := d.DecodeRecord([]byte(`{"type":"A","stock_code":"AAPL","quantity":"10","price":"100.0"}`))
	require.NoError(t, err)

	assert.Equal(t, model.NewOrder, event.Kind)
	assert.Equal(t, "AAPL", event.StockCode)
	assert.Equal(t, int64(10), event.Quantity)
	assert.Equal(t, "100.0", event.Price.String())
}

func Test_DecodeRecord_ExecutedOrder(t *testing.T) {
	d := NewDecoder()

	event, err := d.DecodeRecord([]byte(`{"type":"E","stock_code":"MSFT","executed_quantity":"5","execution_price":"105.25"}`))
	require.NoError(t, err)

	assert.Equal(t, model.ExecutedOrder, event.Kind)
	assert.Equal(t, "MSFT", event.StockCode)
	assert.Equal(t, int64(5), event.Quantity)
	assert.Equal(t, "105.25", event.Price.String())
}

func Test_DecodeRecord_Malformed(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{
			name: "not JSON",
			line: `this is not json`,
		},
		{
			name: "unrecognized type",
			line: `{"type":"X","stock_code":"AAPL","quantity":"10","price":"100.0"}`,
		},
		{
			name: "missing type",
			line: `{"stock_code":"AAPL","quantity":"10","price":"100.0"}`,
		},
		{
			name: "missing stock code",
			line: `{"type":"A","quantity":"10","price":"100.0"}`,
		},
		{
			name: "new order missing price",
			line: `{"type":"A","stock_code":"AAPL","quantity":"10"}`,
		},
		{
			name: "execution missing executed quantity",
			line: `{"type":"E","stock_code":"AAPL","execution_price":"105.0"}`,
		},
		{
			name: "unparseable quantity",
			line: `{"type":"A","stock_code":"AAPL","quantity":"ten","price":"100.0"}`,
		},
		{
			name: "unparseable price",
			line: `{"type":"A","stock_code":"AAPL","quantity":"10","price":"1e"}`,
		},
		{
			name: "negative quantity",
			line: `{"type":"A","stock_code":"AAPL","quantity":"-1","price":"100.0"}`,
		},
		{
			name: "negative price",
			line: `{"type":"A","stock_code":"AAPL","quantity":"1","price":"-100.0"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDecoder()

			_, err := d.DecodeRecord([]byte(tt.line))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedRecord)
		})
	}
}

// A new order ignores execution fields and vice versa; only the fields of
// the declared kind are consumed.
func Test_DecodeRecord_KindSelectsFields(t *testing.T) {
	d := NewDecoder()

	line := `{"type":"A","stock_code":"AAPL","quantity":"10","price":"100.0","executed_quantity":"99","execution_price":"999.0"}`
	event, err := d.DecodeRecord([]byte(line))
	require.NoError(t, err)

	assert.Equal(t, int64(10), event.Quantity)
	assert.Equal(t, "100.0", event.Price.String())
}
