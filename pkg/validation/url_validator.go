package validation

import (
	"net/url"
	"path"
	"strings"

	apperrors "github.com/anime-shed/glowmatch-go/internal/errors"
)

// PaletteURLValidator vets the location of a remotely hosted palette asset
type PaletteURLValidator struct {
	allowedSchemes []string
	allowedHosts   []string
}

// NewPaletteURLValidator allows http and https on any host
func NewPaletteURLValidator() *PaletteURLValidator {
	return &PaletteURLValidator{
		allowedSchemes: []string{"http", "https"},
	}
}

func NewPaletteURLValidatorWithOptions(schemes []string, hosts []string) *PaletteURLValidator {
	return &PaletteURLValidator{
		allowedSchemes: schemes,
		allowedHosts:   hosts,
	}
}

// Validate checks scheme, host and that the path names a .json document.
func (v *PaletteURLValidator) Validate(rawURL string) error {
	if strings.TrimSpace(rawURL) == "" {
		return apperrors.NewValidationError("palette URL cannot be empty", nil)
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return apperrors.NewValidationError("invalid palette URL format", err)
	}
	if !contains(v.allowedSchemes, strings.ToLower(u.Scheme)) {
		return apperrors.NewValidationError("palette URL scheme not allowed", nil)
	}
	if u.Hostname() == "" {
		return apperrors.NewValidationError("palette URL must have a valid host", nil)
	}
	if len(v.allowedHosts) > 0 && !contains(v.allowedHosts, strings.ToLower(u.Hostname())) {
		return apperrors.NewValidationError("palette URL host not allowed", nil)
	}
	if !strings.EqualFold(path.Ext(u.Path), ".json") {
		return apperrors.NewValidationError("palette URL must point to a .json document", nil)
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
