package container

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/anime-shed/glowmatch-go/internal/config"
	"github.com/anime-shed/glowmatch-go/internal/repository"
)

func testConfig() *config.Config {
	return &config.Config{
		Host:                   "127.0.0.1",
		Port:                   "8080",
		RequestTimeout:         5 * time.Second,
		AnalysisTimeout:        time.Second,
		MaxRequestBodySize:     1 << 20,
		RetryThreshold:         0.7,
		DefaultResponseVersion: "2.0",
		MaxBatchSize:           10,
		AnalysisWorkers:        2,
		PaletteSource:          "embedded",
		PaletteFetchTimeout:    time.Second,
		AzureStorageContainer:  "palettes",
	}
}

func TestNewContainerEmbedded(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, err := NewContainer(context.Background(), testConfig())
	if err != nil {
		t.Fatalf("NewContainer: %v", err)
	}
	defer c.Close()

	if c.PaletteTable().Len() != 30 {
		t.Errorf("Expected 30 palettes, got %d", c.PaletteTable().Len())
	}

	w := httptest.NewRecorder()
	body := `{"hues":[10,12],"saturations":[0.4,0.4],"values":[230,232],"sampleSize":2}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze?version=1.0", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"skinToneCategory":"Fair-Warm"`) {
		t.Errorf("Unexpected response %d %s", w.Code, w.Body.String())
	}
}

func TestNewContainerRecordsPaletteLoad(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, err := NewContainer(context.Background(), testConfig())
	if err != nil {
		t.Fatalf("NewContainer: %v", err)
	}
	c.Close()

	if got := c.Metrics().GetMetrics().PaletteLoads; got != 1 {
		t.Errorf("Expected one palette load, got %d", got)
	}
}

func TestNewContainerRejectsBrokenTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "palettes.json")
	if err := os.WriteFile(path, []byte(`{"version":"2.0","palettes":{"Medium-Warm":{}}}`), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg := testConfig()
	cfg.PaletteSource = "file"
	cfg.PaletteLocation = path

	_, err := NewContainer(context.Background(), cfg)
	if !errors.Is(err, repository.ErrPaletteInvalid) {
		t.Errorf("Expected ErrPaletteInvalid, got %v", err)
	}
}

func TestNewContainerMissingFile(t *testing.T) {
	cfg := testConfig()
	cfg.PaletteSource = "file"
	cfg.PaletteLocation = filepath.Join(t.TempDir(), "missing.json")

	_, err := NewContainer(context.Background(), cfg)
	if !errors.Is(err, repository.ErrPaletteUnavailable) {
		t.Errorf("Expected ErrPaletteUnavailable, got %v", err)
	}
}
