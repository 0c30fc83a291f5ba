package palette

import _ "embed"

//go:embed data/palettes.json
var defaultAsset []byte

// DefaultAsset returns a copy of the palette asset compiled into the binary.
func DefaultAsset() []byte {
	return append([]byte(nil), defaultAsset...)
}

// Default decodes the built-in asset.
func Default() (*Table, error) {
	return Decode(defaultAsset)
}
