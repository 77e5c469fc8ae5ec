package ohlc

import (
	"fmt"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ohlc/internal/model"
)

// dec parses a decimal literal for test fixtures.
func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(fmt.Sprintf("bad decimal literal %q: %v", s, err))
	}
	return d
}

// observation is one (price, quantity) pair fed to the engine in tests.
type observation struct {
	price    string
	quantity int64
}

// applyAll feeds a sequence of observations for one code and returns the
// final aggregate.
func applyAll(t *testing.T, e *Engine, code string, obs []observation) model.OHLC {
	t.Helper()

	var last model.OHLC
	for _, o := range obs {
		updated, err := e.Apply(code, dec(o.price), o.quantity)
		require.NoError(t, err)
		last = updated
	}
	return last
}

func Test_Apply_SeedsFirstEvent(t *testing.T) {
	e := NewEngine()

	got, err := e.Apply("AAPL", dec("100.5"), 10)
	require.NoError(t, err)

	assert.Equal(t, "AAPL", got.StockCode)
	assert.True(t, got.Open.Equal(dec("100.5")), "open should equal first price")
	assert.True(t, got.High.Equal(dec("100.5")), "high should equal first price")
	assert.True(t, got.Low.Equal(dec("100.5")), "low should equal first price")
	assert.True(t, got.Close.Equal(dec("100.5")), "close should equal first price")
	assert.Equal(t, int64(10), got.Volume)
	assert.True(t, got.Value.Equal(dec("1005")), "value should be price*quantity")
}

// The continuation-bar rule: every event after the first reopens the bar at
// the close that preceded it, not at the first price of the run.
func Test_Apply_OpenEqualsPreviousClose(t *testing.T) {
	e := NewEngine()

	_, err := e.Apply("AAPL", dec("100"), 1)
	require.NoError(t, err)

	got, err := e.Apply("AAPL", dec("105"), 1)
	require.NoError(t, err)
	assert.True(t, got.Open.Equal(dec("100")), "open should be the prior close, got %s", got.Open)

	got, err = e.Apply("AAPL", dec("98"), 1)
	require.NoError(t, err)
	assert.True(t, got.Open.Equal(dec("105")), "open should follow the close before the last event")
}

func Test_Apply_MonotoneExtremes(t *testing.T) {
	tests := []struct {
		name     string
		prices   []string
		wantHigh string
		wantLow  string
	}{
		{
			name:     "ascending",
			prices:   []string{"1", "2", "3", "4"},
			wantHigh: "4",
			wantLow:  "1",
		},
		{
			name:     "descending",
			prices:   []string{"4", "3", "2", "1"},
			wantHigh: "4",
			wantLow:  "1",
		},
		{
			name:     "zig zag",
			prices:   []string{"10", "2", "30", "4", "25"},
			wantHigh: "30",
			wantLow:  "2",
		},
		{
			name:     "all equal",
			prices:   []string{"7", "7", "7"},
			wantHigh: "7",
			wantLow:  "7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEngine()

			obs := make([]observation, 0, len(tt.prices))
			for _, p := range tt.prices {
				obs = append(obs, observation{price: p, quantity: 1})
			}
			got := applyAll(t, e, "TEST", obs)

			assert.True(t, got.High.Equal(dec(tt.wantHigh)), "high = %s, want %s", got.High, tt.wantHigh)
			assert.True(t, got.Low.Equal(dec(tt.wantLow)), "low = %s, want %s", got.Low, tt.wantLow)
		})
	}
}

func Test_Apply_VolumeAndValueAdditivity(t *testing.T) {
	e := NewEngine()

	obs := []observation{
		{price: "10.5", quantity: 3},
		{price: "11", quantity: 0},
		{price: "9.25", quantity: 4},
	}
	got := applyAll(t, e, "TEST", obs)

	// volume = 3+0+4, value = 10.5*3 + 11*0 + 9.25*4
	assert.Equal(t, int64(7), got.Volume)
	assert.True(t, got.Value.Equal(dec("68.5")), "value = %s, want 68.5", got.Value)
}

// Worked example: a new order followed by two executions.
func Test_Apply_WorkedExample(t *testing.T) {
	e := NewEngine()

	got := applyAll(t, e, "AAPL", []observation{
		{price: "100.0", quantity: 10},
		{price: "105.0", quantity: 5},
		{price: "98.0", quantity: 3},
	})

	assert.True(t, got.Open.Equal(dec("105.0")), "open = %s, want 105.0", got.Open)
	assert.True(t, got.High.Equal(dec("105.0")), "high = %s, want 105.0", got.High)
	assert.True(t, got.Low.Equal(dec("98.0")), "low = %s, want 98.0", got.Low)
	assert.True(t, got.Close.Equal(dec("98.0")), "close = %s, want 98.0", got.Close)
	assert.Equal(t, int64(18), got.Volume)
	assert.True(t, got.Value.Equal(dec("1819.0")), "value = %s, want 1819.0", got.Value)
}

func Test_Apply_RejectsMalformedInput(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		price    string
		quantity int64
	}{
		{
			name:     "empty code",
			code:     "",
			price:    "1",
			quantity: 1,
		},
		{
			name:     "negative price",
			code:     "AAPL",
			price:    "-1",
			quantity: 1,
		},
		{
			name:     "negative quantity",
			code:     "AAPL",
			price:    "1",
			quantity: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEngine()

			_, err := e.Apply(tt.code, dec(tt.price), tt.quantity)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedRecord)
			assert.Equal(t, 0, e.Len(), "rejected record must not create state")
		})
	}
}

func Test_Apply_RejectedRecordDoesNotMutateExistingState(t *testing.T) {
	e := NewEngine()

	before, err := e.Apply("AAPL", dec("100"), 10)
	require.NoError(t, err)

	_, err = e.Apply("AAPL", dec("-5"), 1)
	require.Error(t, err)

	after, found := e.Lookup("AAPL")
	require.True(t, found)
	assert.True(t, before.Equal(after), "aggregate changed after a rejected record")
}

func Test_Apply_InstrumentsAreIndependent(t *testing.T) {
	e := NewEngine()

	applyAll(t, e, "AAPL", []observation{{price: "100", quantity: 1}, {price: "200", quantity: 1}})
	applyAll(t, e, "MSFT", []observation{{price: "50", quantity: 2}})

	aapl, found := e.Lookup("AAPL")
	require.True(t, found)
	msft, found := e.Lookup("MSFT")
	require.True(t, found)

	assert.True(t, aapl.High.Equal(dec("200")))
	assert.True(t, msft.High.Equal(dec("50")))
	assert.Equal(t, int64(2), aapl.Volume)
	assert.Equal(t, int64(2), msft.Volume)
}

func Test_Snapshot_SortedCopies(t *testing.T) {
	e := NewEngine()

	applyAll(t, e, "MSFT", []observation{{price: "50", quantity: 1}})
	applyAll(t, e, "AAPL", []observation{{price: "100", quantity: 1}})
	applyAll(t, e, "GOOG", []observation{{price: "150", quantity: 1}})

	snap := e.Snapshot()
	require.Len(t, snap, 3)
	assert.Equal(t, []string{"AAPL", "GOOG", "MSFT"},
		[]string{snap[0].StockCode, snap[1].StockCode, snap[2].StockCode})

	// Snapshot entries are copies: mutating one must not leak into the engine.
	snap[0].Volume = 999
	aapl, _ := e.Lookup("AAPL")
	assert.Equal(t, int64(1), aapl.Volume)

	assert.Equal(t, []string{"AAPL", "GOOG", "MSFT"}, e.Codes())
}

// Running extrema must match a full recomputation over the complete price
// history for any sequence of prices.
func Test_Apply_RunningExtremaMatchFullHistory(t *testing.T) {
	e := NewEngine()

	prices := []string{"55", "13", "89", "21", "34", "144", "8", "5", "233", "1"}
	var history []decimal.Decimal
	for _, p := range prices {
		price := dec(p)
		history = append(history, price)

		got, err := e.Apply("TEST", price, 1)
		require.NoError(t, err)

		wantHigh, wantLow := history[0], history[0]
		for _, h := range history[1:] {
			if h.GreaterThan(wantHigh) {
				wantHigh = h
			}
			if h.LessThan(wantLow) {
				wantLow = h
			}
		}

		assert.True(t, got.High.Equal(wantHigh), "after %d events high = %s, want %s", len(history), got.High, wantHigh)
		assert.True(t, got.Low.Equal(wantLow), "after %d events low = %s, want %s", len(history), got.Low, wantLow)
	}
}

func Test_Apply_ConcurrentDistinctCodes(t *testing.T) {
	e := NewEngine()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(code string) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_, err := e.Apply(code, dec("10"), 1)
				assert.NoError(t, err)
			}
		}(fmt.Sprintf("SYM%d", i))
	}
	wg.Wait()

	require.Equal(t, 8, e.Len())
	for _, aggregate := range e.Snapshot() {
		assert.Equal(t, int64(100), aggregate.Volume)
		assert.True(t, aggregate.Value.Equal(dec("1000")))
	}
}
