package validation

import (
	"testing"

	apperrors "github.com/anime-shed/glowmatch-go/internal/errors"
)

func TestPaletteURLValidator(t *testing.T) {
	v := NewPaletteURLValidator()

	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{"https json", "https://cdn.example.com/palettes/v2.json", false},
		{"http json uppercase ext", "http://example.com/P.JSON", false},
		{"query string ignored", "https://example.com/palettes.json?sig=abc", false},
		{"empty", "   ", true},
		{"ftp scheme", "ftp://example.com/palettes.json", true},
		{"no host", "https:///palettes.json", true},
		{"not json", "https://example.com/palettes.yaml", true},
		{"bad format", "://bad", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.url)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate(%q): expected error %v, got %v", tt.url, tt.wantErr, err)
			}
			if err != nil && !apperrors.IsType(err, apperrors.ErrorTypeValidation) {
				t.Errorf("Expected validation error, got %v", err)
			}
		})
	}
}

func TestPaletteURLValidatorHostAllowList(t *testing.T) {
	v := NewPaletteURLValidatorWithOptions([]string{"https"}, []string{"assets.example.com"})

	if err := v.Validate("https://assets.example.com/p.json"); err != nil {
		t.Errorf("Expected allowed host to pass, got %v", err)
	}
	if err := v.Validate("https://ASSETS.example.com:8443/p.json"); err != nil {
		t.Errorf("Expected host match to ignore case and port, got %v", err)
	}
	if err := v.Validate("https://other.example.com/p.json"); err == nil {
		t.Error("Expected other host to be rejected")
	}
	if err := v.Validate("http://assets.example.com/p.json"); err == nil {
		t.Error("Expected http to be rejected")
	}
}
