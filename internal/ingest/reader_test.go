package ingest

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ohlc/internal/model"
)

// recordingApplier captures every event the reader feeds it.
type recordingApplier struct {
	events []model.OrderEvent
	err    error
}

func (a *recordingApplier) ApplyEvent(event model.OrderEvent) (model.OHLC, error) {
	if a.err != nil {
		return model.OHLC{}, a.err
	}
	a.events = append(a.events, event)
	return model.OHLC{StockCode: event.StockCode}, nil
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func Test_ProcessFolder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "day1.ndjson",
		`{"type":"A","stock_code":"AAPL","quantity":"10","price":"100.0"}
{"type":"E","stock_code":"AAPL","executed_quantity":"5","execution_price":"105.0"}
`)
	writeFile(t, dir, "day2.ndjson",
		`{"type":"A","stock_code":"MSFT","quantity":"3","price":"50.0"}
`)

	applier := &recordingApplier{}
	stats, err := NewReader(applier).ProcessFolder(dir)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Files)
	assert.Equal(t, 3, stats.Records)
	assert.Equal(t, 0, stats.Malformed)
	require.Len(t, applier.events, 3)
}

func Test_ProcessFolder_SkipsMalformedLines(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "mixed.ndjson",
		`{"type":"A","stock_code":"AAPL","quantity":"10","price":"100.0"}
not json at all
{"type":"Q","stock_code":"AAPL","quantity":"1","price":"1"}

{"type":"E","stock_code":"AAPL","executed_quantity":"5","execution_price":"105.0"}
`)

	applier := &recordingApplier{}
	stats, err := NewReader(applier).ProcessFolder(dir)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Records, "good records around bad lines must still be applied")
	assert.Equal(t, 2, stats.Malformed)
}

func Test_ProcessFolder_EngineRejectionIsIsolated(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "data.ndjson",
		`{"type":"A","stock_code":"AAPL","quantity":"10","price":"100.0"}
`)

	applier := &recordingApplier{err: errors.New("rejected")}
	stats, err := NewReader(applier).ProcessFolder(dir)
	require.NoError(t, err, "engine rejections do not abort the run")
	assert.Equal(t, 1, stats.Malformed)
	assert.Equal(t, 0, stats.Records)
}

func Test_ProcessFolder_MissingFolderAborts(t *testing.T) {
	_, err := NewReader(&recordingApplier{}).ProcessFolder(filepath.Join(t.TempDir(), "absent"))
	assert.Error(t, err)
}

func Test_ProcessFolder_IgnoresSubdirectories(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o755))
	writeFile(t, dir, "data.ndjson",
		`{"type":"A","stock_code":"AAPL","quantity":"1","price":"1"}
`)

	applier := &recordingApplier{}
	stats, err := NewReader(applier).ProcessFolder(dir)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Files)
	assert.Equal(t, 1, stats.Records)
}
