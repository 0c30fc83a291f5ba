// Package palette holds the per-category colour recommendation table and the
// lookups built on it. A Table is immutable once constructed.
package palette

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/arbovm/levenshtein"
	"github.com/lucasb-eyer/go-colorful"

	apperrors "github.com/anime-shed/glowmatch-go/internal/errors"
	"github.com/anime-shed/glowmatch-go/internal/skintone"
)

// NamedColor is a hex code with an optional display name.
type NamedColor struct {
	Name string `json:"name,omitempty"`
	Hex  string `json:"hex"`
}

type Makeup struct {
	Foundation []NamedColor `json:"foundation"`
	Lipstick   []NamedColor `json:"lipstick"`
	Eyeshadow  []NamedColor `json:"eyeshadow"`
}

type Jewelry struct {
	Metals []NamedColor `json:"metals"`
	Stones []NamedColor `json:"stones"`
}

// Entry is the recommendation bundle for one extended category.
type Entry struct {
	Clothing []string `json:"clothing"`
	Makeup   Makeup   `json:"makeup"`
	Jewelry  Jewelry  `json:"jewelry"`
}

// Document is the on-disk shape of a palette asset.
type Document struct {
	Version  string           `json:"version"`
	Palettes map[string]Entry `json:"palettes"`
}

type Table struct {
	version string
	entries map[string]Entry
}

// Decode parses a palette asset and validates it into a Table.
func Decode(data []byte) (*Table, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, apperrors.NewValidationError("malformed palette asset", err)
	}
	return NewTable(doc)
}

// NewTable validates doc and copies it. Every one of the 30 canonical keys
// must be present and no other key is allowed.
func NewTable(doc Document) (*Table, error) {
	if err := validate(doc); err != nil {
		return nil, apperrors.NewValidationError("invalid palette table", err)
	}

	t := &Table{
		version: doc.Version,
		entries: make(map[string]Entry, len(doc.Palettes)),
	}
	for k, e := range doc.Palettes {
		t.entries[k] = e.clone()
	}
	return t, nil
}

func (t *Table) Version() string { return t.version }

func (t *Table) Len() int { return len(t.entries) }

// Keys returns the table keys in canonical category order.
func (t *Table) Keys() []string {
	keys := make([]string, 0, len(t.entries))
	for _, c := range skintone.AllCategories() {
		if _, ok := t.entries[c.Key()]; ok {
			keys = append(keys, c.Key())
		}
	}
	return keys
}

// Lookup returns a copy of the entry for c.
func (t *Table) Lookup(c skintone.Category) (Entry, error) {
	e, ok := t.entries[c.Key()]
	if !ok {
		return Entry{}, apperrors.NewPaletteNotFoundError(c.Key())
	}
	return e.clone(), nil
}

func validate(doc Document) error {
	var errs []error

	canonical := make(map[string]bool)
	for _, c := range skintone.AllCategories() {
		canonical[c.Key()] = true
		if _, ok := doc.Palettes[c.Key()]; !ok {
			errs = append(errs, fmt.Errorf("missing palette for %q", c.Key()))
		}
	}

	keys := make([]string, 0, len(doc.Palettes))
	for k := range doc.Palettes {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if !canonical[k] {
			errs = append(errs, fmt.Errorf("unknown palette key %q (did you mean %q?)", k, closestKey(k)))
			continue
		}
		if err := validateEntry(doc.Palettes[k]); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", k, err))
		}
	}
	return errors.Join(errs...)
}

func validateEntry(e Entry) error {
	var errs []error
	if len(e.Clothing) == 0 {
		errs = append(errs, errors.New("clothing list is empty"))
	}
	for _, h := range e.Clothing {
		if err := checkHex(h); err != nil {
			errs = append(errs, fmt.Errorf("clothing: %w", err))
		}
	}

	lists := []struct {
		name   string
		colors []NamedColor
		named  bool
	}{
		{"foundation", e.Makeup.Foundation, false},
		{"lipstick", e.Makeup.Lipstick, false},
		{"eyeshadow", e.Makeup.Eyeshadow, false},
		{"metals", e.Jewelry.Metals, true},
		{"stones", e.Jewelry.Stones, true},
	}
	for _, l := range lists {
		if len(l.colors) == 0 {
			errs = append(errs, fmt.Errorf("%s list is empty", l.name))
		}
		for _, c := range l.colors {
			if err := checkHex(c.Hex); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", l.name, err))
			}
			if l.named && strings.TrimSpace(c.Name) == "" {
				errs = append(errs, fmt.Errorf("%s: %s has no name", l.name, c.Hex))
			}
		}
	}
	return errors.Join(errs...)
}

func checkHex(h string) error {
	if len(h) != 7 || h[0] != '#' {
		return fmt.Errorf("hex code %q must look like #RRGGBB", h)
	}
	if _, err := colorful.Hex(h); err != nil {
		return fmt.Errorf("hex code %q: %w", h, err)
	}
	return nil
}

func closestKey(key string) string {
	best, bestDist := "", -1
	for _, c := range skintone.AllCategories() {
		d := levenshtein.Distance(strings.ToLower(key), strings.ToLower(c.Key()))
		if bestDist < 0 || d < bestDist {
			best, bestDist = c.Key(), d
		}
	}
	return best
}

func (e Entry) clone() Entry {
	return Entry{
		Clothing: append([]string(nil), e.Clothing...),
		Makeup: Makeup{
			Foundation: append([]NamedColor(nil), e.Makeup.Foundation...),
			Lipstick:   append([]NamedColor(nil), e.Makeup.Lipstick...),
			Eyeshadow:  append([]NamedColor(nil), e.Makeup.Eyeshadow...),
		},
		Jewelry: Jewelry{
			Metals: append([]NamedColor(nil), e.Jewelry.Metals...),
			Stones: append([]NamedColor(nil), e.Jewelry.Stones...),
		},
	}
}
