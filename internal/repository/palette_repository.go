package repository

import (
	"context"
	"fmt"

	"github.com/anime-shed/glowmatch-go/internal/palette"
	"github.com/anime-shed/glowmatch-go/internal/storage"
)

// SourcePaletteRepository implements PaletteRepository on top of a storage source
type SourcePaletteRepository struct {
	source storage.PaletteSource
}

func NewPaletteRepository(source storage.PaletteSource) PaletteRepository {
	return &SourcePaletteRepository{source: source}
}

func (r *SourcePaletteRepository) Load(ctx context.Context) (*palette.Table, error) {
	data, err := r.source.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrPaletteUnavailable, r.source.Describe(), err)
	}

	table, err := palette.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrPaletteInvalid, r.source.Describe(), err)
	}

	return table, nil
}

func (r *SourcePaletteRepository) Source() string {
	return r.source.Describe()
}
