package alerting

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func telegramTestServer(t *testing.T, ok bool, capture *telegramMessage) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if capture != nil {
			if err := json.NewDecoder(r.Body).Decode(capture); err != nil {
				t.Errorf("decode request: %v", err)
			}
		}
		resp := telegramResponse{OK: ok}
		if !ok {
			resp.Description = "chat not found"
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
}

func TestTelegramAlerter_Alert(t *testing.T) {
	var captured telegramMessage
	srv := telegramTestServer(t, true, &captured)
	defer srv.Close()

	alerter := NewTelegramAlerter(TelegramConfig{
		BotToken: "token",
		ChatID:   "42",
		BaseURL:  srv.URL,
	})

	err := alerter.Alert(context.Background(), SeverityWarning, "signal detected", "rule", "rsi")
	if err != nil {
		t.Fatalf("Alert() error = %v", err)
	}

	if captured.ChatID != "42" {
		t.Errorf("chat_id = %s, want 42", captured.ChatID)
	}
	if !strings.Contains(captured.Text, "signal detected") {
		t.Errorf("text missing message: %s", captured.Text)
	}
	if !strings.Contains(captured.Text, "WARNING") {
		t.Errorf("text missing severity: %s", captured.Text)
	}
}

func TestTelegramAlerter_APIError(t *testing.T) {
	srv := telegramTestServer(t, false, nil)
	defer srv.Close()

	alerter := NewTelegramAlerter(TelegramConfig{
		BotToken: "token",
		ChatID:   "42",
		BaseURL:  srv.URL,
	})

	err := alerter.Alert(context.Background(), SeverityInfo, "hello")
	if err == nil {
		t.Fatal("expected error from API failure")
	}
	if !strings.Contains(err.Error(), "chat not found") {
		t.Errorf("err = %v, want API description", err)
	}
}

func TestTelegramAlerter_SendScanSummary(t *testing.T) {
	var captured telegramMessage
	srv := telegramTestServer(t, true, &captured)
	defer srv.Close()

	alerter := NewTelegramAlerter(TelegramConfig{
		BotToken: "token",
		ChatID:   "42",
		BaseURL:  srv.URL,
	})

	from := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	summary := ScanSummary{
		Symbol:      "SPY",
		From:        from,
		To:          from.Add(time.Hour),
		BarsScanned: 60,
		Total:       3,
		Bullish:     2,
		Bearish:     1,
		ByRule:      map[string]int{"rsi": 1, "macd": 2},
	}

	if err := alerter.SendScanSummary(context.Background(), summary); err != nil {
		t.Fatalf("SendScanSummary() error = %v", err)
	}

	for _, want := range []string{"SPY", "60", "rsi: 1", "macd: 2"} {
		if !strings.Contains(captured.Text, want) {
			t.Errorf("summary text missing %q: %s", want, captured.Text)
		}
	}
}
