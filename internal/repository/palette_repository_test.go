package repository

import (
	"context"
	"errors"
	"testing"

	apperrors "github.com/anime-shed/glowmatch-go/internal/errors"
	"github.com/anime-shed/glowmatch-go/internal/storage"
)

type stubSource struct {
	data []byte
	err  error
}

func (s stubSource) Fetch(ctx context.Context) ([]byte, error) { return s.data, s.err }
func (s stubSource) Describe() string { return "stub" }

func TestLoadEmbedded(t *testing.T) {
	repo := NewPaletteRepository(storage.NewEmbeddedSource())

	table, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if table.Len() != 30 {
		t.Errorf("Expected 30 palettes, got %d", table.Len())
	}

	if repo.Source() != "embedded" {
		t.Errorf("Unexpected source %q", repo.Source())
	}
}

func TestLoadFailures(t *testing.T) {
	tests := []struct {
		name     string
		source   stubSource
		sentinel error
	}{
		{
			name:     "source error",
			source:   stubSource{err: apperrors.NewNetworkError("down", nil)},
			sentinel: ErrPaletteUnavailable,
		},
		{
			name:     "malformed json",
			source:   stubSource{data: []byte("{")},
			sentinel: ErrPaletteInvalid,
		},
		{
			name:     "incomplete table",
			source:   stubSource{data: []byte(`{"version":"2.0","palettes":{}}`)},
			sentinel: ErrPaletteInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewPaletteRepository(tt.source)
			table, err := repo.Load(context.Background())
			if !errors.Is(err, tt.sentinel) {
				t.Errorf("Expected %v, got %v", tt.sentinel, err)
			}
			if table != nil {
				t.Error("Failed load must not return a table")
			}
		})
	}
}

func TestLoadKeepsCauseType(t *testing.T) {
	repo := NewPaletteRepository(stubSource{err: apperrors.NewNetworkError("down", nil)})
	_, err := repo.Load(context.Background())
	if !apperrors.IsType(err, apperrors.ErrorTypeNetwork) {
		t.Errorf("Expected wrapped network error, got %v", err)
	}
}
