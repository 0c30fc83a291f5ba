package storage

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	apperrors "github.com/anime-shed/glowmatch-go/internal/errors"
)

const tinyDocument = `{"version":"2.0","palettes":{}}`

func TestHTTPPaletteSource_RetryLogic(t *testing.T) {
	tests := []struct {
		name          string
		responses     []int // Status codes to return in sequence
		expectRetries int   // Expected number of requests
		expectError   bool
		errorContains string
	}{
		{
			name:          "Success on first attempt",
			responses:     []int{200},
			expectRetries: 1,
		},
		{
			name:          "Success on second attempt after 5xx",
			responses:     []int{500, 200},
			expectRetries: 2,
		},
		{
			name:          "4xx client error - no retry",
			responses:     []int{404},
			expectRetries: 1,
			expectError:   true,
			errorContains: "client error: status code 404",
		},
		{
			name:          "4xx after 5xx - stop at the 4xx",
			responses:     []int{500, 403},
			expectRetries: 2,
			expectError:   true,
			errorContains: "client error: status code 403",
		},
		{
			name:          "All 5xx errors - retry all attempts",
			responses:     []int{500, 502, 503},
			expectRetries: 3,
			expectError:   true,
			errorContains: "server error: status code 503",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var requestCount int32

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				n := int(atomic.AddInt32(&requestCount, 1)) - 1
				if n >= len(tt.responses) {
					w.WriteHeader(http.StatusInternalServerError)
					return
				}
				status := tt.responses[n]
				if status == http.StatusOK {
					w.Header().Set("Content-Type", "application/json")
					_, _ = w.Write([]byte(tinyDocument))
					return
				}
				w.WriteHeader(status)
				_, _ = w.Write([]byte(fmt.Sprintf("Error %d", status)))
			}))
			defer server.Close()

			source := NewHTTPPaletteSource(server.URL+"/palettes.json", time.Second).WithBackoff(time.Millisecond)
			body, err := source.Fetch(context.Background())

			if got := int(atomic.LoadInt32(&requestCount)); got != tt.expectRetries {
				t.Errorf("Expected %d requests, got %d", tt.expectRetries, got)
			}

			if tt.expectError {
				if err == nil {
					t.Fatal("Expected error, but got none")
				}
				if !strings.Contains(err.Error(), tt.errorContains) {
					t.Errorf("Expected error to contain %q, got: %s", tt.errorContains, err)
				}
				if !apperrors.IsType(err, apperrors.ErrorTypeNetwork) {
					t.Errorf("Expected network error type, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Expected no error, got: %s", err)
			}
			if string(body) != tinyDocument {
				t.Errorf("Unexpected body %q", body)
			}
		})
	}
}

func TestHTTPPaletteSource_NetworkErrorRetry(t *testing.T) {
	var requestCount int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&requestCount, 1) < 3 {
			if hj, ok := w.(http.Hijacker); ok {
				conn, _, _ := hj.Hijack()
				conn.Close()
			}
			return
		}
		_, _ = w.Write([]byte(tinyDocument))
	}))
	defer server.Close()

	source := NewHTTPPaletteSource(server.URL, time.Second).WithBackoff(20 * time.Millisecond)

	start := time.Now()
	_, err := source.Fetch(context.Background())
	duration := time.Since(start)

	if err != nil {
		t.Fatalf("Expected success after retries, got error: %s", err)
	}
	if got := atomic.LoadInt32(&requestCount); got != 3 {
		t.Errorf("Expected 3 requests, got %d", got)
	}
	// linear backoff: 1x + 2x
	if duration < 60*time.Millisecond {
		t.Errorf("Expected at least 60ms of backoff, took %v", duration)
	}
}

func TestHTTPPaletteSource_BodyCap(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("x", MaxPaletteBytes+10)))
	}))
	defer server.Close()

	_, err := NewHTTPPaletteSource(server.URL, 5*time.Second).WithBackoff(time.Millisecond).Fetch(context.Background())
	if err == nil || !strings.Contains(err.Error(), "exceeds") {
		t.Errorf("Expected size limit error, got %v", err)
	}
}

func TestHTTPPaletteSource_CancelledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewHTTPPaletteSource(server.URL, time.Second).Fetch(ctx); err == nil {
		t.Error("Expected error for cancelled context")
	}
}
