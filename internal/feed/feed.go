// Package feed handles candle data sources for the scanner.
package feed

import (
	"context"

	"github.com/quantforge/taseries/internal/types"
	"golang.org/x/time/rate"
)

// Feed defines the interface for candle sources. Implementations can
// replay historical files or stream from storage.
type Feed interface {
	// Subscribe starts receiving candles for a symbol.
	// The channel is closed when the context is cancelled or the
	// source is exhausted.
	Subscribe(ctx context.Context, symbol string) (<-chan types.Candle, error)

	// Close shuts down the feed and releases resources.
	Close() error

	// Name returns the feed identifier (e.g., "csv", "memory").
	Name() string
}

// PacedFeed wraps a feed and throttles replay to a fixed number of
// bars per second.
type PacedFeed struct {
	inner   Feed
	limiter *rate.Limiter
}

// NewPacedFeed creates a throttled view of a feed. A barsPerSec of 0
// or less disables pacing and the inner feed is returned as-is.
func NewPacedFeed(inner Feed, barsPerSec float64) Feed {
	if barsPerSec <= 0 {
		return inner
	}
	return &PacedFeed{
		inner:   inner,
		limiter: rate.NewLimiter(rate.Limit(barsPerSec), 1),
	}
}

// Subscribe starts a paced subscription on the inner feed.
func (f *PacedFeed) Subscribe(ctx context.Context, symbol string) (<-chan types.Candle, error) {
	raw, err := f.inner.Subscribe(ctx, symbol)
	if err != nil {
		return nil, err
	}

	ch := make(chan types.Candle)

	go func() {
		defer close(ch)
		for candle := range raw {
			if err := f.limiter.Wait(ctx); err != nil {
				return
			}
			select {
			case ch <- candle:
			case <-ctx.Done():
				return
			}
		}
	}()

	return ch, nil
}

// Close shuts down the inner feed.
func (f *PacedFeed) Close() error {
	return f.inner.Close()
}

// Name returns the inner feed identifier.
func (f *PacedFeed) Name() string {
	return f.inner.Name()
}

// Collect drains a feed subscription into a slice. Intended for batch
// scans where pacing is disabled.
func Collect(ctx context.Context, f Feed, symbol string) ([]types.Candle, error) {
	ch, err := f.Subscribe(ctx, symbol)
	if err != nil {
		return nil, err
	}

	var candles []types.Candle
	for candle := range ch {
		candles = append(candles, candle)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(candles) == 0 {
		return nil, types.ErrNoData
	}
	return candles, nil
}
