// Package persistence provides candle and signal storage.
package persistence

import (
	"context"
	"time"

	"github.com/quantforge/taseries/internal/types"
)

// Repository defines the interface for scanner storage.
type Repository interface {
	// Candle operations
	SaveCandles(ctx context.Context, candles []types.Candle) error
	GetCandles(ctx context.Context, symbol string, from, to time.Time) ([]types.Candle, error)
	GetRecentCandles(ctx context.Context, symbol string, limit int) ([]types.Candle, error)

	// Signal operations
	SaveSignal(ctx context.Context, signal types.Signal) error
	GetSignals(ctx context.Context, symbol string, from, to time.Time) ([]types.Signal, error)
	GetSignalsByRule(ctx context.Context, rule string, limit int) ([]types.Signal, error)

	// Lifecycle
	Ping(ctx context.Context) error
	Close() error
	Migrate(ctx context.Context) error
}
