package feed

import (
	"context"

	"github.com/quantforge/taseries/internal/persistence"
	"github.com/quantforge/taseries/internal/types"
)

// RepositoryFeed replays candles previously imported into storage.
type RepositoryFeed struct {
	repo  persistence.Repository
	limit int
}

// NewRepositoryFeed creates a feed backed by a repository. The limit
// caps how many of the most recent bars are replayed; 0 means all.
func NewRepositoryFeed(repo persistence.Repository, limit int) *RepositoryFeed {
	return &RepositoryFeed{
		repo:  repo,
		limit: limit,
	}
}

// Subscribe streams stored candles for a symbol, oldest first.
func (f *RepositoryFeed) Subscribe(ctx context.Context, symbol string) (<-chan types.Candle, error) {
	limit := f.limit
	if limit <= 0 {
		limit = 1 << 20
	}

	candles, err := f.repo.GetRecentCandles(ctx, symbol, limit)
	if err != nil {
		return nil, err
	}

	ch := make(chan types.Candle, 100)

	go func() {
		defer close(ch)
		for _, candle := range candles {
			select {
			case <-ctx.Done():
				return
			case ch <- candle:
			}
		}
	}()

	return ch, nil
}

// Close is a no-op; the repository lifecycle belongs to the caller.
func (f *RepositoryFeed) Close() error {
	return nil
}

// Name returns the feed identifier.
func (f *RepositoryFeed) Name() string {
	return "sqlite"
}
