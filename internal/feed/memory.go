package feed

import (
	"context"

	"github.com/quantforge/taseries/internal/types"
)

// MemoryFeed provides candle data from an in-memory slice.
// Useful for testing.
type MemoryFeed struct {
	candles []types.Candle
	symbol  string
}

// NewMemoryFeed creates a feed from pre-loaded candles.
func NewMemoryFeed(candles []types.Candle, symbol string) *MemoryFeed {
	return &MemoryFeed{
		candles: candles,
		symbol:  symbol,
	}
}

// Subscribe starts sending candles from memory.
func (f *MemoryFeed) Subscribe(ctx context.Context, symbol string) (<-chan types.Candle, error) {
	ch := make(chan types.Candle, len(f.candles))

	go func() {
		defer close(ch)
		for _, candle := range f.candles {
			if candle.Symbol != symbol && f.symbol != symbol {
				continue
			}
			// Override symbol if feed has a fixed symbol
			if f.symbol != "" {
				candle.Symbol = f.symbol
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

// Close is a no-op for memory feed.
func (f *MemoryFeed) Close() error {
	return nil
}

// Name returns the feed identifier.
func (f *MemoryFeed) Name() string {
	return "memory"
}

// AddCandle adds a candle to the feed.
func (f *MemoryFeed) AddCandle(candle types.Candle) {
	f.candles = append(f.candles, candle)
}
