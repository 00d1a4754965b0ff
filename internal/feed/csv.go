package feed

import (
	"bufio"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/quantforge/taseries/internal/types"
	"github.com/shopspring/decimal"
)

// CSVFeed provides candle data from CSV files.
type CSVFeed struct {
	filePath string
	symbol   string
	candles  []types.Candle
	loaded   bool
}

// NewCSVFeed creates a new feed from a CSV file.
// CSV format: timestamp,open,high,low,close,volume
// Timestamp format: 2006-01-02 15:04:05 or Unix timestamp
func NewCSVFeed(filePath, symbol string) *CSVFeed {
	return &CSVFeed{
		filePath: filePath,
		symbol:   symbol,
	}
}

// Subscribe starts sending historical candles.
// The channel will close when all data has been sent or context is cancelled.
func (f *CSVFeed) Subscribe(ctx context.Context, symbol string) (<-chan types.Candle, error) {
	if !f.loaded {
		if err := f.load(); err != nil {
			return nil, err
		}
	}

	ch := make(chan types.Candle, 100)

	go func() {
		defer close(ch)
		for _, candle := range f.candles {
			if candle.Symbol != symbol {
				continue
			}
			select {
			case <-ctx.Done():
				return
			case ch <- candle:
			}
		}
	}()

	return ch, nil
}

// Close releases resources.
func (f *CSVFeed) Close() error {
	f.candles = nil
	f.loaded = false
	return nil
}

// Name returns the feed identifier.
func (f *CSVFeed) Name() string {
	return "csv"
}

// load reads and parses the CSV file.
func (f *CSVFeed) load() error {
	file, err := os.Open(f.filePath)
	if err != nil {
		return fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	candles, err := ParseCSV(file, f.symbol)
	if err != nil {
		return fmt.Errorf("parse csv: %w", err)
	}

	f.candles = candles
	f.loaded = true
	return nil
}

// CandleCount returns the number of loaded candles.
func (f *CSVFeed) CandleCount() int {
	return len(f.candles)
}

// ParseCSV parses candle data from a CSV reader.
// Expected columns: timestamp,open,high,low,close,volume with an
// optional header row.
func ParseCSV(r io.Reader, symbol string) ([]types.Candle, error) {
	reader := csv.NewReader(bufio.NewReader(r))
	reader.TrimLeadingSpace = true

	var candles []types.Candle
	lineNum := 0

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		lineNum++

		// Skip header row
		if lineNum == 1 && isHeader(record) {
			continue
		}

		if len(record) < 5 {
			continue // Skip invalid rows
		}

		candle, err := parseRecord(record, symbol)
		if err != nil {
			// Skip invalid rows instead of failing
			continue
		}

		candles = append(candles, candle)
	}

	return candles, nil
}

// parseRecord parses a single CSV record into a Candle.
func parseRecord(record []string, symbol string) (types.Candle, error) {
	var candle types.Candle
	candle.Symbol = symbol

	// Parse timestamp
	ts, err := parseTimestamp(record[0])
	if err != nil {
		return candle, fmt.Errorf("parse timestamp: %w", err)
	}
	candle.Timestamp = ts

	// Parse OHLC
	candle.Open, err = decimal.NewFromString(record[1])
	if err != nil {
		return candle, fmt.Errorf("parse open: %w", err)
	}

	candle.High, err = decimal.NewFromString(record[2])
	if err != nil {
		return candle, fmt.Errorf("parse high: %w", err)
	}

	candle.Low, err = decimal.NewFromString(record[3])
	if err != nil {
		return candle, fmt.Errorf("parse low: %w", err)
	}

	candle.Close, err = decimal.NewFromString(record[4])
	if err != nil {
		return candle, fmt.Errorf("parse close: %w", err)
	}

	// Parse volume (optional)
	if len(record) > 5 {
		vol, err := strconv.ParseInt(record[5], 10, 64)
		if err == nil {
			candle.Volume = vol
		}
	}

	return candle, nil
}

// parseTimestamp tries multiple timestamp formats.
func parseTimestamp(s string) (time.Time, error) {
	// Try Unix timestamp first
	if unix, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Unix(unix, 0), nil
	}

	// Try common date formats
	formats := []string{
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05",
		"2006-01-02T15:04:05Z",
		"2006-01-02 15:04",
		"2006-01-02",
		"01/02/2006 15:04:05",
		"01/02/2006",
	}

	for _, format := range formats {
		if t, err := time.Parse(format, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unknown timestamp format: %s", s)
}

// isHeader checks if a record looks like a header row.
func isHeader(record []string) bool {
	if len(record) == 0 {
		return false
	}
	// Common header names
	headers := []string{"timestamp", "time", "date", "datetime", "open", "high", "low", "close"}
	first := record[0]
	for _, h := range headers {
		if first == h {
			return true
		}
	}
	return false
}
