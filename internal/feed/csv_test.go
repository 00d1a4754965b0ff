package feed

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/quantforge/taseries/internal/types"
	"github.com/shopspring/decimal"
)

func createTempCSV(t *testing.T, data string) string {
	t.Helper()

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "bars.csv")
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write temp csv: %v", err)
	}
	return path
}

// TestCSVFeed_Subscribe tests candle streaming from a file.
func TestCSVFeed_Subscribe(t *testing.T) {
	csvData := `timestamp,open,high,low,close,volume
2024-01-01 09:30:00,5000,5010,4990,5005,1000
2024-01-01 09:35:00,5005,5015,5000,5010,1200
2024-01-01 09:40:00,5010,5020,5005,5015,1100
`
	feed := NewCSVFeed(createTempCSV(t, csvData), "MES")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	ch, err := feed.Subscribe(ctx, "MES")
	if err != nil {
		t.Fatalf("failed to subscribe: %v", err)
	}

	candles := make([]types.Candle, 0)
	for candle := range ch {
		candles = append(candles, candle)
	}

	if len(candles) != 3 {
		t.Fatalf("expected 3 candles, got %d", len(candles))
	}

	if candles[0].Symbol != "MES" {
		t.Error("expected symbol MES")
	}
	if !candles[0].Open.Equal(decimal.NewFromInt(5000)) {
		t.Errorf("expected open 5000, got %s", candles[0].Open.String())
	}
	if candles[2].Volume != 1100 {
		t.Errorf("expected volume 1100, got %d", candles[2].Volume)
	}
}

// TestCSVFeed_Subscribe_FileNotFound tests error handling.
func TestCSVFeed_Subscribe_FileNotFound(t *testing.T) {
	feed := NewCSVFeed("/nonexistent/file.csv", "MES")

	_, err := feed.Subscribe(context.Background(), "MES")
	if err == nil {
		t.Error("expected error for non-existent file")
	}
}

// TestCSVFeed_Name tests feed name.
func TestCSVFeed_Name(t *testing.T) {
	feed := NewCSVFeed("file.csv", "MES")
	if feed.Name() != "csv" {
		t.Errorf("expected name 'csv', got '%s'", feed.Name())
	}
}

// TestParseCSV_SkipsInvalidRows tests malformed row handling.
func TestParseCSV_SkipsInvalidRows(t *testing.T) {
	csvData := `timestamp,open,high,low,close,volume
2024-01-01 09:30:00,5000,5010,4990,5005,1000
not-a-timestamp,5005,5015,5000,5010,1200
2024-01-01 09:40:00,5010,5020,5005,5015,1100
`
	candles, err := ParseCSV(strings.NewReader(csvData), "MES")
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}

	if len(candles) != 2 {
		t.Errorf("expected 2 candles after skipping bad row, got %d", len(candles))
	}
}

// TestParseCSV_UnixTimestamps tests numeric timestamp support.
func TestParseCSV_UnixTimestamps(t *testing.T) {
	csvData := `1704103800,5000,5010,4990,5005,1000
1704104100,5005,5015,5000,5010,1200
`
	candles, err := ParseCSV(strings.NewReader(csvData), "MES")
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}

	if len(candles) != 2 {
		t.Fatalf("expected 2 candles, got %d", len(candles))
	}
	if candles[0].Timestamp.Unix() != 1704103800 {
		t.Errorf("timestamp = %d, want 1704103800", candles[0].Timestamp.Unix())
	}
}

// TestParseCSV_NoVolumeColumn tests that volume is optional.
func TestParseCSV_NoVolumeColumn(t *testing.T) {
	csvData := `2024-01-01 09:30:00,5000,5010,4990,5005
`
	candles, err := ParseCSV(strings.NewReader(csvData), "MES")
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}

	if len(candles) != 1 {
		t.Fatalf("expected 1 candle, got %d", len(candles))
	}
	if candles[0].Volume != 0 {
		t.Errorf("volume = %d, want 0", candles[0].Volume)
	}
}

// TestCSVFeed_Close tests resource cleanup.
func TestCSVFeed_Close(t *testing.T) {
	feed := NewCSVFeed("file.csv", "MES")
	feed.loaded = true
	feed.candles = make([]types.Candle, 10)

	if err := feed.Close(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if feed.loaded || feed.CandleCount() != 0 {
		t.Error("expected feed state to be cleared")
	}
}
