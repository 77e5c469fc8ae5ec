package ingest

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"ohlc/internal/model"
)

// EventApplier consumes decoded order events. Implemented by the
// aggregation engine.
type EventApplier interface {
	// ApplyEvent folds one order event into the per-instrument state.
	ApplyEvent(event model.OrderEvent) (model.OHLC, error)
}

// Stats summarizes one ingestion run.
type Stats struct {
	Files     int // Record files read
	Records   int // Events applied to the engine
	Malformed int // Lines skipped as malformed
}

// Reader feeds folders of newline-delimited JSON record files into an
// EventApplier, one line at a time.
type Reader struct {
	decoder *Decoder
	applier EventApplier
}

// NewReader creates a reader that feeds decoded events to the given applier.
func NewReader(applier EventApplier) *Reader {
	return &Reader{
		decoder: NewDecoder(),
		applier: applier,
	}
}

// ProcessFolder reads every regular file in the folder and applies its
// records in order.
//
// Malformed lines are logged, counted and skipped; they never abort the
// batch. A failure to list the folder or to open or read a file aborts the
// whole run, since that means part of the input source is unreadable.
func (r *Reader) ProcessFolder(path string) (Stats, error) {
	var stats Stats

	entries, err := os.ReadDir(path)
	if err != nil {
		return stats, fmt.Errorf("failed to read data folder %s: %w", path, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		if err := r.processFile(filepath.Join(path, entry.Name()), &stats); err != nil {
			return stats, err
		}
		stats.Files++
	}

	return stats, nil
}

// processFile streams one record file line by line into the applier.
func (r *Reader) processFile(path string, stats *Stats) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		event, err := r.decoder.DecodeRecord(line)
		if err != nil {
			stats.Malformed++
			log.Warn().Err(err).Str("file", path).Int("line", lineNo).Msg("skipping malformed record")
			continue
		}

		if _, err := r.applier.ApplyEvent(event); err != nil {
			stats.Malformed++
			log.Warn().Err(err).Str("file", path).Int("line", lineNo).Msg("engine rejected record")
			continue
		}
		stats.Records++
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read file %s: %w", path, err)
	}

	return nil
}
