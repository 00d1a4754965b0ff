// Package config handles configuration loading and validation.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/quantforge/taseries/internal/types"
	"gopkg.in/yaml.v3"
)

// Config represents the full application configuration.
type Config struct {
	Data        DataConfig        `yaml:"data"`
	Indicators  IndicatorConfig   `yaml:"indicators"`
	Scan        ScanConfig        `yaml:"scan"`
	Persistence PersistenceConfig `yaml:"persistence"`
	Alerting    AlertingConfig    `yaml:"alerting"`
	Metrics     MetricsConfig     `yaml:"metrics"`
}

// DataConfig holds data source settings.
type DataConfig struct {
	Source     string  `yaml:"source"` // csv | sqlite
	Path       string  `yaml:"path"`
	Symbol     string  `yaml:"symbol"`
	ReplayRate float64 `yaml:"replay_rate"` // bars per second, 0 disables pacing
}

// IndicatorConfig holds indicator parameters.
type IndicatorConfig struct {
	RSIPeriod       int     `yaml:"rsi_period"`
	StochRSIPeriod  int     `yaml:"stoch_rsi_period"`
	MACDFast        int     `yaml:"macd_fast"`
	MACDSlow        int     `yaml:"macd_slow"`
	MACDSignal      int     `yaml:"macd_signal"`
	BollingerPeriod int     `yaml:"bollinger_period"`
	BollingerWidth  float64 `yaml:"bollinger_width"`
	ATRPeriod       int     `yaml:"atr_period"`
	ADXPeriod       int     `yaml:"adx_period"`
	PSARStep        float64 `yaml:"psar_step"`
	PSARMax         float64 `yaml:"psar_max"`
	ZigzagPct       float64 `yaml:"zigzag_pct"`
	HistoryBars     int     `yaml:"history_bars"`
}

// ScanConfig holds scan settings.
type ScanConfig struct {
	Rules              []string `yaml:"rules"`
	RSIOverbought      float64  `yaml:"rsi_overbought"`
	RSIOversold        float64  `yaml:"rsi_oversold"`
	PersistSignals     bool     `yaml:"persist_signals"`
	MinBarsBeforeAlert int      `yaml:"min_bars_before_alert"`
}

// PersistenceConfig holds persistence settings.
type PersistenceConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// AlertingConfig holds alerting settings.
type AlertingConfig struct {
	Enabled  bool            `yaml:"enabled"`
	Channels []ChannelConfig `yaml:"channels"`
	Events   []string        `yaml:"events"`
}

// ChannelConfig holds a single alert channel configuration.
type ChannelConfig struct {
	Type     string `yaml:"type"` // console | telegram
	BotToken string `yaml:"bot_token"`
	ChatID   string `yaml:"chat_id"`
}

// MetricsConfig holds metrics settings.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Port    int    `yaml:"port"`
	Path    string `yaml:"path"`
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	return LoadFromBytes(data)
}

// LoadFromBytes loads configuration from YAML bytes.
func LoadFromBytes(data []byte) (*Config, error) {
	// Expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// knownRules lists the scan rules the engine can evaluate.
var knownRules = map[string]bool{
	"rsi":       true,
	"macd":      true,
	"bollinger": true,
	"psar":      true,
}

// Validate validates the configuration and fills defaults.
func (c *Config) Validate() error {
	var errs []string

	// Data validation
	if c.Data.Source != "csv" && c.Data.Source != "sqlite" {
		errs = append(errs, "data.source must be 'csv' or 'sqlite'")
	}
	if c.Data.Path == "" {
		errs = append(errs, "data.path is required")
	}
	if c.Data.Symbol == "" {
		errs = append(errs, "data.symbol is required")
	}
	if c.Data.ReplayRate < 0 {
		errs = append(errs, "data.replay_rate must not be negative")
	}

	// Indicator defaults
	if c.Indicators.RSIPeriod == 0 {
		c.Indicators.RSIPeriod = 14
	}
	if c.Indicators.StochRSIPeriod == 0 {
		c.Indicators.StochRSIPeriod = 14
	}
	if c.Indicators.MACDFast == 0 {
		c.Indicators.MACDFast = 12
	}
	if c.Indicators.MACDSlow == 0 {
		c.Indicators.MACDSlow = 26
	}
	if c.Indicators.MACDSignal == 0 {
		c.Indicators.MACDSignal = 9
	}
	if c.Indicators.BollingerPeriod == 0 {
		c.Indicators.BollingerPeriod = 20
	}
	if c.Indicators.BollingerWidth == 0 {
		c.Indicators.BollingerWidth = 2
	}
	if c.Indicators.ATRPeriod == 0 {
		c.Indicators.ATRPeriod = 14
	}
	if c.Indicators.ADXPeriod == 0 {
		c.Indicators.ADXPeriod = 14
	}
	if c.Indicators.PSARStep == 0 {
		c.Indicators.PSARStep = 0.02
	}
	if c.Indicators.PSARMax == 0 {
		c.Indicators.PSARMax = 0.2
	}
	if c.Indicators.ZigzagPct == 0 {
		c.Indicators.ZigzagPct = 5
	}
	if c.Indicators.HistoryBars == 0 {
		c.Indicators.HistoryBars = 200
	}

	// Indicator validation
	if c.Indicators.RSIPeriod < 1 {
		errs = append(errs, "indicators.rsi_period must be positive")
	}
	if c.Indicators.MACDFast >= c.Indicators.MACDSlow {
		errs = append(errs, "indicators.macd_fast must be smaller than macd_slow")
	}
	if c.Indicators.PSARStep <= 0 || c.Indicators.PSARStep > c.Indicators.PSARMax {
		errs = append(errs, "indicators.psar_step must be positive and not exceed psar_max")
	}
	if c.Indicators.ZigzagPct <= 0 || c.Indicators.ZigzagPct >= 100 {
		errs = append(errs, "indicators.zigzag_pct must be between 0 and 100")
	}
	if c.Indicators.HistoryBars < c.Indicators.MACDSlow {
		errs = append(errs, "indicators.history_bars must cover the slowest indicator period")
	}

	// Scan validation
	if c.Scan.RSIOverbought == 0 {
		c.Scan.RSIOverbought = 70
	}
	if c.Scan.RSIOversold == 0 {
		c.Scan.RSIOversold = 30
	}
	if c.Scan.RSIOversold >= c.Scan.RSIOverbought {
		errs = append(errs, "scan.rsi_oversold must be below rsi_overbought")
	}
	for _, r := range c.Scan.Rules {
		if !knownRules[r] {
			errs = append(errs, fmt.Sprintf("scan.rules: unknown rule '%s'", r))
		}
	}

	// Persistence validation
	if c.Persistence.Enabled && c.Persistence.Path == "" {
		errs = append(errs, "persistence.path is required when persistence is enabled")
	}

	// Alerting validation
	for _, ch := range c.Alerting.Channels {
		switch ch.Type {
		case "console":
		case "telegram":
			if ch.BotToken == "" || ch.ChatID == "" {
				errs = append(errs, "alerting: telegram channel requires bot_token and chat_id")
			}
		default:
			errs = append(errs, fmt.Sprintf("alerting: unknown channel type '%s'", ch.Type))
		}
	}

	// Metrics defaults
	if c.Metrics.Enabled {
		if c.Metrics.Port == 0 {
			c.Metrics.Port = 9090
		}
		if c.Metrics.Path == "" {
			c.Metrics.Path = "/metrics"
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", types.ErrInvalidConfig, strings.Join(errs, "; "))
	}

	return nil
}

// IsAlertEventEnabled checks if an alert event type is enabled.
func (c *Config) IsAlertEventEnabled(event string) bool {
	if !c.Alerting.Enabled {
		return false
	}
	// If no events specified, all are enabled
	if len(c.Alerting.Events) == 0 {
		return true
	}
	for _, e := range c.Alerting.Events {
		if e == event || e == "all" {
			return true
		}
	}
	return false
}
