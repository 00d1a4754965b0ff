package scan

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"time"

	"github.com/quantforge/taseries/internal/config"
	"github.com/quantforge/taseries/internal/metrics"
	"github.com/quantforge/taseries/internal/persistence"
	"github.com/quantforge/taseries/internal/types"
)

// Report holds the outcome of one scan.
type Report struct {
	Symbol      string
	BarsScanned int
	Signals     []types.Signal
	ByRule      map[string]int
	Elapsed     time.Duration
}

// Scanner runs a set of rules over a candle history.
type Scanner struct {
	rules    []Rule
	minBar   int
	logger   *slog.Logger
	recorder *metrics.Recorder
	repo     persistence.Repository
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithRecorder attaches a metrics recorder.
func WithRecorder(r *metrics.Recorder) Option {
	return func(s *Scanner) { s.recorder = r }
}

// WithRepository persists generated signals.
func WithRepository(repo persistence.Repository) Option {
	return func(s *Scanner) { s.repo = repo }
}

// WithMinBar suppresses signals on the first n bars, where indicator
// warm-up makes crossings unreliable.
func WithMinBar(n int) Option {
	return func(s *Scanner) { s.minBar = n }
}

// NewScanner creates a scanner with the given rules.
func NewScanner(rules []Rule, logger *slog.Logger, opts ...Option) *Scanner {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Scanner{
		rules:  rules,
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scan evaluates all rules on a candle history and returns the
// combined report, signals ordered by bar time.
func (s *Scanner) Scan(ctx context.Context, symbol string, candles []types.Candle) (*Report, error) {
	if len(candles) == 0 {
		return nil, types.ErrNoData
	}

	start := time.Now()
	frame := types.NewFrame(candles)

	// Suppress signals on warm-up bars.
	var cutoff int64 = math.MinInt64
	if s.minBar > 0 {
		if s.minBar >= frame.Len() {
			cutoff = math.MaxInt64
		} else {
			cutoff = frame.Times[s.minBar]
		}
	}

	report := &Report{
		Symbol:      symbol,
		BarsScanned: frame.Len(),
		ByRule:      make(map[string]int),
	}

	for _, rule := range s.rules {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		signals, err := rule.Evaluate(symbol, frame)
		if err != nil {
			s.logger.Error("rule evaluation failed", "rule", rule.Name(), "err", err)
			if s.recorder != nil {
				s.recorder.RecordRuleError(rule.Name())
			}
			return nil, fmt.Errorf("rule %s: %w", rule.Name(), err)
		}

		for _, sig := range signals {
			if sig.Timestamp.Unix() < cutoff {
				continue
			}
			report.Signals = append(report.Signals, sig)
			report.ByRule[rule.Name()]++

			s.logger.Info("signal",
				"rule", sig.Rule,
				"symbol", sig.Symbol,
				"direction", sig.Direction.String(),
				"value", sig.Value,
				"time", sig.Timestamp,
			)
			if s.recorder != nil {
				s.recorder.RecordSignal(sig.Rule, sig.Direction.String())
			}
		}
	}

	sort.Slice(report.Signals, func(i, j int) bool {
		return report.Signals[i].Timestamp.Before(report.Signals[j].Timestamp)
	})

	if s.repo != nil {
		for _, sig := range report.Signals {
			if err := s.repo.SaveSignal(ctx, sig); err != nil {
				s.logger.Error("persist signal", "err", err)
				if s.recorder != nil {
					s.recorder.RecordError("persistence")
				}
			}
		}
	}

	report.Elapsed = time.Since(start)
	if s.recorder != nil {
		s.recorder.RecordScanDuration(report.Elapsed)
	}

	s.logger.Info("scan complete",
		"symbol", symbol,
		"bars", report.BarsScanned,
		"signals", len(report.Signals),
		"elapsed", report.Elapsed,
	)

	return report, nil
}

// BuildRules constructs the rule set named in the configuration.
func BuildRules(cfg *config.Config) ([]Rule, error) {
	names := cfg.Scan.Rules
	if len(names) == 0 {
		names = []string{"rsi", "macd", "bollinger", "psar"}
	}

	var rules []Rule
	for _, name := range names {
		switch name {
		case "rsi":
			rules = append(rules, NewRSIRule(cfg.Indicators.RSIPeriod, cfg.Scan.RSIOverbought, cfg.Scan.RSIOversold))
		case "macd":
			rules = append(rules, NewMACDRule(cfg.Indicators.MACDFast, cfg.Indicators.MACDSlow, cfg.Indicators.MACDSignal))
		case "bollinger":
			rules = append(rules, NewBollingerRule(cfg.Indicators.BollingerPeriod, cfg.Indicators.BollingerWidth))
		case "psar":
			rules = append(rules, NewPSARRule(cfg.Indicators.PSARStep, cfg.Indicators.PSARMax))
		default:
			return nil, fmt.Errorf("%w: %s", types.ErrUnknownRule, name)
		}
	}

	return rules, nil
}
