package factory

import (
	"fmt"
	"path"
	"time"

	"github.com/anime-shed/glowmatch-go/internal/analyzer"
	apperrors "github.com/anime-shed/glowmatch-go/internal/errors"
	"github.com/anime-shed/glowmatch-go/internal/storage"
	"github.com/anime-shed/glowmatch-go/pkg/validation"
)

// SourceType selects where the palette document is read from
type SourceType string

const (
	// EmbeddedSource uses the asset compiled into the binary
	EmbeddedSource SourceType = "embedded"
	// FileSource reads a local file
	FileSource SourceType = "file"
	// HTTPSource downloads over HTTP(S)
	HTTPSource SourceType = "http"
	// AzureSource downloads from Azure blob storage
	AzureSource SourceType = "azure"
)

// AnalyzerType represents the range checking mode of the analyzer
type AnalyzerType string

const (
	// StandardAnalyzer reports out of range readings as warnings
	StandardAnalyzer AnalyzerType = "standard"
	// StrictAnalyzer rejects out of range readings
	StrictAnalyzer AnalyzerType = "strict"
)

// SourceConfig carries everything a palette source may need
type SourceConfig struct {
	Type                  SourceType
	Location              string
	FetchTimeout          time.Duration
	AzureAccount          string
	AzureKey              string
	AzureContainer        string
	AzureConnectionString string
}

// SourceFactory creates palette sources
type SourceFactory interface {
	CreateSource(cfg SourceConfig) (storage.PaletteSource, error)
}

// AnalyzerFactory creates skin tone analyzers
type AnalyzerFactory interface {
	CreateAnalyzer(analyzerType AnalyzerType, resolver analyzer.PaletteResolver, retryThreshold float64) (analyzer.SkinToneAnalyzer, error)
}

type sourceFactory struct {
	urlValidator *validation.PaletteURLValidator
}

// NewSourceFactory creates a source factory that vets HTTP locations with urlValidator
func NewSourceFactory(urlValidator *validation.PaletteURLValidator) SourceFactory {
	if urlValidator == nil {
		urlValidator = validation.NewPaletteURLValidator()
	}
	return &sourceFactory{urlValidator: urlValidator}
}

func (f *sourceFactory) CreateSource(cfg SourceConfig) (storage.PaletteSource, error) {
	switch cfg.Type {
	case EmbeddedSource, "":
		return storage.NewEmbeddedSource(), nil
	case FileSource:
		if cfg.Location == "" {
			return nil, apperrors.NewValidationError("file palette source needs a location", nil)
		}
		return storage.NewFileSource(cfg.Location), nil
	case HTTPSource:
		if err := f.urlValidator.Validate(cfg.Location); err != nil {
			return nil, err
		}
		return storage.NewHTTPPaletteSource(cfg.Location, cfg.FetchTimeout), nil
	case AzureSource:
		blob := cfg.Location
		if blob == "" {
			blob = "palettes.json"
		}
		if path.Ext(blob) != ".json" {
			return nil, apperrors.NewValidationError(fmt.Sprintf("palette blob %q must be a .json document", blob), nil)
		}
		return storage.NewAzureSource(storage.AzureBlobConfig{
			ConnectionString: cfg.AzureConnectionString,
			AccountName:      cfg.AzureAccount,
			AccountKey:       cfg.AzureKey,
			Container:        cfg.AzureContainer,
			BlobName:         blob,
		})
	default:
		return nil, apperrors.NewValidationError(fmt.Sprintf("unsupported palette source: %s", cfg.Type), nil)
	}
}

type analyzerFactory struct{}

func NewAnalyzerFactory() AnalyzerFactory {
	return &analyzerFactory{}
}

func (f *analyzerFactory) CreateAnalyzer(analyzerType AnalyzerType, resolver analyzer.PaletteResolver, retryThreshold float64) (analyzer.SkinToneAnalyzer, error) {
	if resolver == nil {
		return nil, apperrors.NewInternalError("analyzer needs a palette resolver", nil)
	}

	var opts analyzer.AnalysisOptions
	switch analyzerType {
	case StandardAnalyzer, "":
		opts = analyzer.DefaultOptions()
	case StrictAnalyzer:
		opts = analyzer.StrictOptions()
	default:
		return nil, apperrors.NewValidationError(fmt.Sprintf("unsupported analyzer type: %s", analyzerType), nil)
	}

	return analyzer.NewSkinToneAnalyzer(resolver, opts.WithRetryThreshold(retryThreshold)), nil
}

// ComponentFactory combines all factories
type ComponentFactory struct {
	SourceFactory   SourceFactory
	AnalyzerFactory AnalyzerFactory
}

func NewComponentFactory() *ComponentFactory {
	return &ComponentFactory{
		SourceFactory:   NewSourceFactory(nil),
		AnalyzerFactory: NewAnalyzerFactory(),
	}
}
