// Package main is the entry point for the taseries scanner.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/quantforge/taseries/internal/alerting"
	"github.com/quantforge/taseries/internal/config"
	"github.com/quantforge/taseries/internal/feed"
	"github.com/quantforge/taseries/internal/metrics"
	"github.com/quantforge/taseries/internal/persistence"
	"github.com/quantforge/taseries/internal/scan"
	"github.com/quantforge/taseries/internal/types"
)

// Version information (set by build flags).
var (
	Version   = "0.3.0"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "version", "-v", "--version":
		cmdVersion()
	case "help", "-h", "--help":
		printUsage()
	case "validate":
		cmdValidate(os.Args[2:])
	case "import":
		cmdImport(os.Args[2:])
	case "scan":
		cmdScan(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`taseries - Technical Analysis Scanner

Usage:
  taseries <command> [options]

Commands:
  scan       Scan a candle history for indicator signals
  import     Import CSV candle data into the local database
  validate   Validate configuration file
  version    Show version information
  help       Show this help message

Examples:
  taseries scan --config config.yaml
  taseries import --config config.yaml --data data/SPY_1m.csv
  taseries validate --config config.yaml

Use "taseries <command> --help" for more information about a command.`)
}

func cmdVersion() {
	fmt.Printf("taseries version %s\n", Version)
	fmt.Printf("  Build time: %s\n", BuildTime)
	fmt.Printf("  Git commit: %s\n", GitCommit)
}

func cmdValidate(args []string) {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	configPath := fs.String("config", "config.yaml", "Path to configuration file")
	fs.Parse(args)

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Configuration is valid!")
	fmt.Printf("  Symbol: %s\n", cfg.Data.Symbol)
	fmt.Printf("  Source: %s (%s)\n", cfg.Data.Source, cfg.Data.Path)
	rules := cfg.Scan.Rules
	if len(rules) == 0 {
		rules = []string{"rsi", "macd", "bollinger", "psar"}
	}
	fmt.Printf("  Rules: %v\n", rules)
	fmt.Printf("  History bars: %d\n", cfg.Indicators.HistoryBars)
}

func cmdImport(args []string) {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	configPath := fs.String("config", "config.yaml", "Path to configuration file")
	dataPath := fs.String("data", "", "Path to CSV data file (required)")
	fs.Parse(args)

	if *dataPath == "" {
		fmt.Fprintln(os.Stderr, "Error: --data is required")
		fs.Usage()
		os.Exit(1)
	}

	logger := newLogger(false)
	slog.SetDefault(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}
	if !cfg.Persistence.Enabled {
		slog.Error("persistence is disabled; enable it to import")
		os.Exit(1)
	}

	repo, err := persistence.NewSQLiteRepository(cfg.Persistence.Path)
	if err != nil {
		slog.Error("failed to open database", "err", err)
		os.Exit(1)
	}
	defer repo.Close()

	file, err := os.Open(*dataPath)
	if err != nil {
		slog.Error("failed to open data file", "err", err)
		os.Exit(1)
	}
	defer file.Close()

	candles, err := feed.ParseCSV(file, cfg.Data.Symbol)
	if err != nil {
		slog.Error("failed to parse csv", "err", err)
		os.Exit(1)
	}

	if err := repo.SaveCandles(context.Background(), candles); err != nil {
		slog.Error("failed to save candles", "err", err)
		os.Exit(1)
	}

	slog.Info("import complete",
		"symbol", cfg.Data.Symbol,
		"bars", len(candles),
		"db", cfg.Persistence.Path,
	)
}

func cmdScan(args []string) {
	fs := flag.NewFlagSet("scan", flag.ExitOnError)
	configPath := fs.String("config", "config.yaml", "Path to configuration file")
	verbose := fs.Bool("verbose", false, "Verbose output")
	fs.Parse(args)

	logger := newLogger(*verbose)
	slog.SetDefault(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	slog.Info("taseries starting",
		"version", Version,
		"symbol", cfg.Data.Symbol,
		"source", cfg.Data.Source,
	)

	// Storage
	var repo persistence.Repository
	if cfg.Persistence.Enabled {
		r, err := persistence.NewSQLiteRepository(cfg.Persistence.Path)
		if err != nil {
			slog.Error("failed to open database", "err", err)
			os.Exit(1)
		}
		defer r.Close()
		repo = r
	}

	// Data feed
	src, err := buildFeed(cfg, repo)
	if err != nil {
		slog.Error("failed to build feed", "err", err)
		os.Exit(1)
	}
	defer src.Close()

	// Metrics
	recorder := metrics.NewRecorder()
	if cfg.Metrics.Enabled {
		server := metrics.NewServer(metrics.ServerConfig{
			Port:        cfg.Metrics.Port,
			MetricsPath: cfg.Metrics.Path,
			HealthPath:  "/health",
		}, logger)
		if repo != nil {
			server.AddCheck("db", func() metrics.Check {
				if err := repo.Ping(context.Background()); err != nil {
					return metrics.Check{OK: false, Message: err.Error()}
				}
				return metrics.Check{OK: true}
			})
		}
		if err := server.Start(); err != nil {
			slog.Error("failed to start metrics server", "err", err)
			os.Exit(1)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = server.Shutdown(shutdownCtx)
		}()
	}

	// Alerting
	alerter, telegrams := buildAlerter(cfg, logger)

	// Rules
	rules, err := scan.BuildRules(cfg)
	if err != nil {
		slog.Error("failed to build rules", "err", err)
		os.Exit(1)
	}

	opts := []scan.Option{
		scan.WithRecorder(recorder),
		scan.WithMinBar(cfg.Scan.MinBarsBeforeAlert),
	}
	if repo != nil && cfg.Scan.PersistSignals {
		opts = append(opts, scan.WithRepository(repo))
	}
	scanner := scan.NewScanner(rules, logger, opts...)

	// Stream the history in, then scan it.
	recorder.RecordFeedStatus(src.Name(), true)
	candles, err := collectCandles(ctx, src, cfg.Data.Symbol, recorder)
	recorder.RecordFeedStatus(src.Name(), false)
	if err != nil {
		slog.Error("feed failed", "err", err)
		if alerter != nil {
			_ = alerter.AlertEvent(ctx, alerting.EventFeedError, err.Error())
		}
		os.Exit(1)
	}

	report, err := scanner.Scan(ctx, cfg.Data.Symbol, candles)
	if err != nil {
		slog.Error("scan failed", "err", err)
		os.Exit(1)
	}

	printReport(report)

	if alerter != nil {
		sendAlerts(ctx, cfg, alerter, telegrams, report, candles)
	}
}

// buildFeed constructs the configured candle source, paced if a replay
// rate is set.
func buildFeed(cfg *config.Config, repo persistence.Repository) (feed.Feed, error) {
	var src feed.Feed
	switch cfg.Data.Source {
	case "csv":
		src = feed.NewCSVFeed(cfg.Data.Path, cfg.Data.Symbol)
	case "sqlite":
		if repo == nil {
			r, err := persistence.NewSQLiteRepository(cfg.Data.Path)
			if err != nil {
				return nil, err
			}
			repo = r
		}
		src = feed.NewRepositoryFeed(repo, cfg.Indicators.HistoryBars)
	default:
		return nil, fmt.Errorf("unknown data source: %s", cfg.Data.Source)
	}

	return feed.NewPacedFeed(src, cfg.Data.ReplayRate), nil
}

// collectCandles drains the feed, recording per-bar metrics.
func collectCandles(ctx context.Context, src feed.Feed, symbol string, recorder *metrics.Recorder) ([]types.Candle, error) {
	ch, err := src.Subscribe(ctx, symbol)
	if err != nil {
		return nil, err
	}

	var candles []types.Candle
	for candle := range ch {
		recorder.RecordBar(candle.Symbol, src.Name(), candle.Timestamp)
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

// buildAlerter wires the configured alert channels. Telegram alerters
// are also returned separately so the scan summary can use their
// richer formatting. Returns nil when alerting is disabled or no
// channels are configured.
func buildAlerter(cfg *config.Config, logger *slog.Logger) (*alerting.MultiAlerter, []*alerting.TelegramAlerter) {
	if !cfg.Alerting.Enabled || len(cfg.Alerting.Channels) == 0 {
		return nil, nil
	}

	multi := alerting.NewMultiAlerter(logger)
	var telegrams []*alerting.TelegramAlerter
	for _, ch := range cfg.Alerting.Channels {
		switch ch.Type {
		case "console":
			multi.AddAlerter(alerting.NewConsoleAlerter(logger))
		case "telegram":
			tg := alerting.NewTelegramAlerter(alerting.TelegramConfig{
				BotToken: ch.BotToken,
				ChatID:   ch.ChatID,
			})
			multi.AddAlerter(tg)
			telegrams = append(telegrams, tg)
		}
	}
	return multi, telegrams
}

func sendAlerts(ctx context.Context, cfg *config.Config, alerter *alerting.MultiAlerter, telegrams []*alerting.TelegramAlerter, report *scan.Report, candles []types.Candle) {
	if cfg.IsAlertEventEnabled(string(alerting.EventSignal)) {
		for _, sig := range report.Signals {
			msg := fmt.Sprintf("%s %s on %s", sig.Rule, sig.Direction, sig.Symbol)
			if err := alerter.AlertEvent(ctx, alerting.EventSignal, msg, alerting.SignalFields(sig)...); err != nil {
				slog.Warn("alert failed", "err", err)
			}
		}
	}

	// The full report is already printed locally, so the completion
	// notice only goes out to remote channels, in their rich form.
	if !cfg.IsAlertEventEnabled(string(alerting.EventScanComplete)) {
		return
	}

	summary := alerting.NewScanSummary(
		report.Symbol,
		candles[0].Timestamp,
		candles[len(candles)-1].Timestamp,
		report.BarsScanned,
		report.Signals,
	)

	for _, tg := range telegrams {
		if err := tg.SendScanSummary(ctx, summary); err != nil {
			slog.Warn("summary alert failed", "channel", tg.Name(), "err", err)
		}
	}
}

func printReport(report *scan.Report) {
	fmt.Println("\n=== SCAN RESULTS ===")
	fmt.Printf("Symbol:        %s\n", report.Symbol)
	fmt.Printf("Bars scanned:  %d\n", report.BarsScanned)
	fmt.Printf("Signals:       %d\n", len(report.Signals))
	fmt.Printf("Elapsed:       %s\n", report.Elapsed)

	if len(report.Signals) == 0 {
		return
	}

	fmt.Println()
	for _, sig := range report.Signals {
		fmt.Printf("%s  %-10s %-8s %10.4f  %s\n",
			sig.Timestamp.Format("2006-01-02 15:04"),
			sig.Rule,
			sig.Direction,
			sig.Value,
			sig.Reason,
		)
	}
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
}
