package repository

import "errors"

var (
	// ErrPaletteUnavailable indicates the palette source could not be read
	ErrPaletteUnavailable = errors.New("palette source unavailable")

	// ErrPaletteInvalid indicates the palette document failed validation
	ErrPaletteInvalid = errors.New("palette document invalid")
)
