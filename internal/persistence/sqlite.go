package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/quantforge/taseries/internal/types"
	"github.com/shopspring/decimal"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SQLiteRepository implements Repository using SQLite.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository creates a new SQLite repository.
func NewSQLiteRepository(path string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	repo := &SQLiteRepository{db: db}

	// Run migrations
	if err := repo.Migrate(context.Background()); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return repo, nil
}

// Migrate runs database migrations.
func (r *SQLiteRepository) Migrate(ctx context.Context) error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS candles (
			symbol TEXT NOT NULL,
			timestamp DATETIME NOT NULL,
			open TEXT NOT NULL,
			high TEXT NOT NULL,
			low TEXT NOT NULL,
			close TEXT NOT NULL,
			volume INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (symbol, timestamp)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_candles_timestamp ON candles(timestamp)`,

		`CREATE TABLE IF NOT EXISTS signals (
			id TEXT PRIMARY KEY,
			timestamp DATETIME NOT NULL,
			symbol TEXT NOT NULL,
			rule TEXT NOT NULL,
			direction INTEGER NOT NULL,
			value REAL NOT NULL,
			reason TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_signals_symbol ON signals(symbol)`,
		`CREATE INDEX IF NOT EXISTS idx_signals_rule ON signals(rule)`,
		`CREATE INDEX IF NOT EXISTS idx_signals_timestamp ON signals(timestamp)`,
	}

	for _, migration := range migrations {
		if _, err := r.db.ExecContext(ctx, migration); err != nil {
			return fmt.Errorf("execute migration: %w", err)
		}
	}

	return nil
}

// SaveCandles inserts a batch of candles in one transaction. Existing
// bars at the same (symbol, timestamp) are replaced.
func (r *SQLiteRepository) SaveCandles(ctx context.Context, candles []types.Candle) error {
	if len(candles) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `INSERT OR REPLACE INTO candles
		(symbol, timestamp, open, high, low, close, volume)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, c := range candles {
		_, err := stmt.ExecContext(ctx,
			c.Symbol,
			c.Timestamp,
			c.Open.String(),
			c.High.String(),
			c.Low.String(),
			c.Close.String(),
			c.Volume,
		)
		if err != nil {
			return fmt.Errorf("insert candle: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	return nil
}

// GetCandles returns candles for a symbol in a time range, oldest first.
func (r *SQLiteRepository) GetCandles(ctx context.Context, symbol string, from, to time.Time) ([]types.Candle, error) {
	query := `SELECT symbol, timestamp, open, high, low, close, volume
		FROM candles WHERE symbol = ? AND timestamp BETWEEN ? AND ? ORDER BY timestamp`

	rows, err := r.db.QueryContext(ctx, query, symbol, from, to)
	if err != nil {
		return nil, fmt.Errorf("query candles: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return r.scanCandles(rows)
}

// GetRecentCandles returns the most recent candles for a symbol,
// oldest first.
func (r *SQLiteRepository) GetRecentCandles(ctx context.Context, symbol string, limit int) ([]types.Candle, error) {
	query := `SELECT symbol, timestamp, open, high, low, close, volume FROM (
			SELECT symbol, timestamp, open, high, low, close, volume
			FROM candles WHERE symbol = ? ORDER BY timestamp DESC LIMIT ?
		) ORDER BY timestamp`

	rows, err := r.db.QueryContext(ctx, query, symbol, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent candles: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return r.scanCandles(rows)
}

func (r *SQLiteRepository) scanCandles(rows *sql.Rows) ([]types.Candle, error) {
	var candles []types.Candle
	for rows.Next() {
		var c types.Candle
		var open, high, low, close string

		if err := rows.Scan(&c.Symbol, &c.Timestamp, &open, &high, &low, &close, &c.Volume); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}

		c.Open, _ = decimal.NewFromString(open)
		c.High, _ = decimal.NewFromString(high)
		c.Low, _ = decimal.NewFromString(low)
		c.Close, _ = decimal.NewFromString(close)

		candles = append(candles, c)
	}

	return candles, rows.Err()
}

// SaveSignal saves a scan signal.
func (r *SQLiteRepository) SaveSignal(ctx context.Context, signal types.Signal) error {
	query := `INSERT INTO signals (id, timestamp, symbol, rule, direction, value, reason)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		signal.ID,
		signal.Timestamp,
		signal.Symbol,
		signal.Rule,
		signal.Direction,
		signal.Value,
		signal.Reason,
	)
	if err != nil {
		return fmt.Errorf("insert signal: %w", err)
	}

	return nil
}

// GetSignals returns signals for a symbol in a time range, newest first.
func (r *SQLiteRepository) GetSignals(ctx context.Context, symbol string, from, to time.Time) ([]types.Signal, error) {
	query := `SELECT id, timestamp, symbol, rule, direction, value, reason
		FROM signals WHERE symbol = ? AND timestamp BETWEEN ? AND ? ORDER BY timestamp DESC`

	rows, err := r.db.QueryContext(ctx, query, symbol, from, to)
	if err != nil {
		return nil, fmt.Errorf("query signals: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return r.scanSignals(rows)
}

// GetSignalsByRule returns the most recent signals for a rule.
func (r *SQLiteRepository) GetSignalsByRule(ctx context.Context, rule string, limit int) ([]types.Signal, error) {
	query := `SELECT id, timestamp, symbol, rule, direction, value, reason
		FROM signals WHERE rule = ? ORDER BY timestamp DESC LIMIT ?`

	rows, err := r.db.QueryContext(ctx, query, rule, limit)
	if err != nil {
		return nil, fmt.Errorf("query signals by rule: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return r.scanSignals(rows)
}

func (r *SQLiteRepository) scanSignals(rows *sql.Rows) ([]types.Signal, error) {
	var signals []types.Signal
	for rows.Next() {
		var s types.Signal
		var reason sql.NullString

		if err := rows.Scan(&s.ID, &s.Timestamp, &s.Symbol, &s.Rule, &s.Direction, &s.Value, &reason); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}

		s.Reason = reason.String
		signals = append(signals, s)
	}

	return signals, rows.Err()
}

// Ping verifies the database connection is alive.
func (r *SQLiteRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// Close closes the database connection.
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}
