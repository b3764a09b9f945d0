package alphavantage

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestClient(serverURL string) *Client {
	return NewClient("test-key",
		WithBaseURL(serverURL),
		WithRateInterval(time.Millisecond),
	)
}

func TestGetQuote(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("function"); got != "GLOBAL_QUOTE" {
			t.Errorf("function = %q, want GLOBAL_QUOTE", got)
		}
		if got := r.URL.Query().Get("apikey"); got != "test-key" {
			t.Errorf("apikey = %q, want test-key", got)
		}
		// Alpha Vantage returns every field as a string.
		w.Write([]byte(`{"Global Quote": {"01. symbol": "AAPL", "05. price": "189.4300"}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	price, err := client.GetQuote(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("GetQuote: %v", err)
	}
	if price != 189.43 {
		t.Errorf("price = %v, want 189.43", price)
	}
}

func TestGetQuoteNumericPrice(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"Global Quote": map[string]interface{}{"01. symbol": "JPM", "05. price": 120.5},
		})
	}))
	defer server.Close()

	price, err := newTestClient(server.URL).GetQuote(context.Background(), "JPM")
	if err != nil {
		t.Fatalf("GetQuote: %v", err)
	}
	if price != 120.5 {
		t.Errorf("price = %v, want 120.5", price)
	}
}

func TestGetQuoteErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		message string
	}{
		{
			name:    "http error status",
			status:  http.StatusInternalServerError,
			body:    "upstream broke",
			message: "upstream broke",
		},
		{
			name:    "quota note",
			status:  http.StatusOK,
			body:    `{"Global Quote": {}, "Note": "API call frequency exceeded"}`,
			message: "API call frequency exceeded",
		},
		{
			name:    "empty quote payload",
			status:  http.StatusOK,
			body:    `{"Global Quote": {}}`,
			message: "no price in quote response",
		},
		{
			name:    "unparseable price string",
			status:  http.StatusOK,
			body:    `{"Global Quote": {"01. symbol": "X", "05. price": "N/A"}}`,
			message: "no price in quote response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			_, err := newTestClient(server.URL).GetQuote(context.Background(), "AAPL")
			if err == nil {
				t.Fatal("expected error")
			}

			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("err = %T, want *APIError", err)
			}
			if apiErr.Message != tt.message {
				t.Errorf("message = %q, want %q", apiErr.Message, tt.message)
			}
			if apiErr.Symbol != "AAPL" {
				t.Errorf("symbol = %q, want AAPL", apiErr.Symbol)
			}
		})
	}
}

func TestGetQuoteRateLimiterSpacesCalls(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Global Quote": {"01. symbol": "AAPL", "05. price": "100"}}`))
	}))
	defer server.Close()

	interval := 50 * time.Millisecond
	client := NewClient("test-key", WithBaseURL(server.URL), WithRateInterval(interval))

	start := time.Now()
	for i := 0; i < 3; i++ {
		if _, err := client.GetQuote(context.Background(), "AAPL"); err != nil {
			t.Fatalf("call %d: %v", i, err)
		}
	}

	// Burst of 1, so three calls must span at least two intervals.
	if elapsed := time.Since(start); elapsed < 2*interval {
		t.Errorf("three calls completed in %v, want at least %v", elapsed, 2*interval)
	}
}

func TestGetQuoteRateLimiterHonorsCancellation(t *testing.T) {
	client := NewClient("test-key", WithRateInterval(time.Hour))

	// Consume the single burst token.
	client.limiter.Allow()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if _, err := client.GetQuote(ctx, "AAPL"); err == nil {
		t.Fatal("expected error waiting on exhausted limiter")
	}
}

func TestFlexFloat64(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{`"123.45"`, 123.45},
		{`123.45`, 123.45},
		{`""`, 0},
		{`"N/A"`, 0},
		{`"garbage"`, 0},
	}

	for _, tt := range tests {
		var f flexFloat64
		if err := json.Unmarshal([]byte(tt.input), &f); err != nil {
			t.Errorf("Unmarshal(%s): %v", tt.input, err)
			continue
		}
		if float64(f) != tt.want {
			t.Errorf("Unmarshal(%s) = %v, want %v", tt.input, float64(f), tt.want)
		}
	}
}
