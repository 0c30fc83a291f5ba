package repository

import (
	"context"

	"github.com/anime-shed/glowmatch-go/internal/palette"
)

// PaletteRepository defines access to the palette table
type PaletteRepository interface {
	// Load fetches, decodes and validates the palette document
	Load(ctx context.Context) (*palette.Table, error)

	// Source describes where the document comes from
	Source() string
}
