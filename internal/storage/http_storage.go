package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	apperrors "github.com/anime-shed/glowmatch-go/internal/errors"
)

const fetchAttempts = 3

// HTTPPaletteSource downloads the palette document over HTTP(S)
type HTTPPaletteSource struct {
	url     string
	client  *http.Client
	backoff time.Duration
}

// NewHTTPPaletteSource creates a fetcher for url. The URL is expected to be
// vetted by the caller.
func NewHTTPPaletteSource(url string, timeout time.Duration) *HTTPPaletteSource {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	transport := &http.Transport{
		MaxIdleConns:           4,
		MaxIdleConnsPerHost:    1,
		IdleConnTimeout:        30 * time.Second,
		TLSHandshakeTimeout:    10 * time.Second,
		ResponseHeaderTimeout:  10 * time.Second,
		ExpectContinueTimeout:  1 * time.Second,
		MaxResponseHeaderBytes: 4096,
	}

	return &HTTPPaletteSource{
		url:     url,
		backoff: time.Second,
		client: &http.Client{
			Transport: transport,
			Timeout:   timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("too many redirects (limit: 3)")
				}
				return nil
			},
		},
	}
}

// WithBackoff overrides the base delay between attempts.
func (h *HTTPPaletteSource) WithBackoff(d time.Duration) *HTTPPaletteSource {
	h.backoff = d
	return h
}

func (h *HTTPPaletteSource) Describe() string { return "http:" + h.url }

// Fetch retries transport failures and 5xx responses. A 4xx response stops
// immediately.
func (h *HTTPPaletteSource) Fetch(ctx context.Context) ([]byte, error) {
	var lastErr error

	for attempt := 0; attempt < fetchAttempts; attempt++ {
		body, retry, err := h.attempt(ctx)
		if err == nil {
			return body, nil
		}
		lastErr = err
		if !retry || ctx.Err() != nil {
			break
		}

		if attempt < fetchAttempts-1 {
			select {
			case <-ctx.Done():
				return nil, apperrors.NewTimeoutError("palette download cancelled", ctx.Err())
			case <-time.After(time.Duration(attempt+1) * h.backoff):
			}
		}
	}

	return nil, apperrors.NewNetworkError(
		fmt.Sprintf("failed to fetch palette after %d attempts: %v", fetchAttempts, lastErr), lastErr)
}

func (h *HTTPPaletteSource) attempt(ctx context.Context) ([]byte, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.url, nil)
	if err != nil {
		return nil, false, fmt.Errorf("invalid URL: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "GlowMatch-Go/2.0")

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, true, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return nil, false, fmt.Errorf("client error: status code %d", resp.StatusCode)
	case resp.StatusCode >= 500:
		return nil, true, fmt.Errorf("server error: status code %d", resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return nil, false, fmt.Errorf("unexpected status code %d", resp.StatusCode)
	}

	return readCapped(resp.Body)
}

func readCapped(r io.Reader) ([]byte, bool, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxPaletteBytes+1))
	if err != nil {
		return nil, true, fmt.Errorf("failed to read body: %w", err)
	}
	if len(data) > MaxPaletteBytes {
		return nil, false, fmt.Errorf("palette document exceeds %d bytes", MaxPaletteBytes)
	}
	return data, false, nil
}
