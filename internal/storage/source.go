package storage

import (
	"context"
	"fmt"
	"os"

	apperrors "github.com/anime-shed/glowmatch-go/internal/errors"
	"github.com/anime-shed/glowmatch-go/internal/palette"
)

// MaxPaletteBytes caps how much of a palette document any source will read.
const MaxPaletteBytes = 4 << 20

// PaletteSource yields the raw palette document.
type PaletteSource interface {
	Fetch(ctx context.Context) ([]byte, error)
	Describe() string
}

type embeddedSource struct{}

// NewEmbeddedSource serves the asset compiled into the binary.
func NewEmbeddedSource() PaletteSource {
	return embeddedSource{}
}

func (embeddedSource) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return palette.DefaultAsset(), nil
}

func (embeddedSource) Describe() string { return "embedded" }

type fileSource struct {
	path string
}

func NewFileSource(path string) PaletteSource {
	return &fileSource{path: path}
}

func (s *fileSource) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := os.Stat(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("palette file %s not found", s.path), err)
		}
		return nil, apperrors.NewInternalError("failed to stat palette file", err)
	}
	if info.Size() > MaxPaletteBytes {
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("palette file is %d bytes, limit is %d", info.Size(), MaxPaletteBytes), nil)
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to read palette file", err)
	}
	return data, nil
}

func (s *fileSource) Describe() string { return "file:" + s.path }
