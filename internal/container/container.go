package container

import (
	"context"
	"fmt"
	"net/http"

	"github.com/anime-shed/glowmatch-go/internal/analyzer"
	"github.com/anime-shed/glowmatch-go/internal/config"
	"github.com/anime-shed/glowmatch-go/internal/factory"
	"github.com/anime-shed/glowmatch-go/internal/logger"
	"github.com/anime-shed/glowmatch-go/internal/observer"
	"github.com/anime-shed/glowmatch-go/internal/palette"
	"github.com/anime-shed/glowmatch-go/internal/repository"
	"github.com/anime-shed/glowmatch-go/internal/service"
	"github.com/anime-shed/glowmatch-go/internal/strategy"
	"github.com/anime-shed/glowmatch-go/internal/transport"
)

// Container holds all application dependencies
type Container struct {
	config            *config.Config
	paletteRepository repository.PaletteRepository
	table             *palette.Table
	skinAnalyzer      analyzer.SkinToneAnalyzer
	pool              *analyzer.WorkerPool
	events            *observer.EventPublisher
	metrics           *observer.MetricsObserver
	analysisService   service.AnalysisService
	handler           http.Handler
}

// NewContainer builds the dependency graph. The palette table is loaded and
// validated here; any failure aborts startup.
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	components := factory.NewComponentFactory()

	events := observer.NewEventPublisher()
	metrics := observer.NewMetricsObserver()
	events.Subscribe(observer.NewLoggingObserver(logger.Logger))
	events.Subscribe(metrics)

	source, err := components.SourceFactory.CreateSource(factory.SourceConfig{
		Type:                  factory.SourceType(cfg.PaletteSource),
		Location:              cfg.PaletteLocation,
		FetchTimeout:          cfg.PaletteFetchTimeout,
		AzureAccount:          cfg.AzureStorageAccount,
		AzureKey:              cfg.AzureStorageKey,
		AzureContainer:        cfg.AzureStorageContainer,
		AzureConnectionString: cfg.AzureStorageConnectionString,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create palette source: %w", err)
	}

	paletteRepository := repository.NewPaletteRepository(source)
	table, err := loadPalettes(ctx, paletteRepository, cfg, events)
	if err != nil {
		return nil, err
	}
	resolver := palette.NewResolver(table)

	analyzerType := factory.StandardAnalyzer
	if cfg.StrictRange {
		analyzerType = factory.StrictAnalyzer
	}
	skinAnalyzer, err := components.AnalyzerFactory.CreateAnalyzer(analyzerType, resolver, cfg.RetryThreshold)
	if err != nil {
		return nil, fmt.Errorf("failed to create analyzer: %w", err)
	}

	pool := analyzer.NewWorkerPool(cfg.AnalysisWorkers)
	pool.Start()

	analysisService := service.NewAnalysisService(
		skinAnalyzer,
		resolver,
		pool,
		strategy.NewRegistry(cfg.DefaultResponseVersion),
		events,
		service.Options{
			AnalysisTimeout:  cfg.AnalysisTimeout,
			MaxBatchSize:     cfg.MaxBatchSize,
			BatchConcurrency: cfg.BatchConcurrency,
		},
	)
	handler := transport.NewHandler(analysisService, metrics, cfg)

	return &Container{
		config:            cfg,
		paletteRepository: paletteRepository,
		table:             table,
		skinAnalyzer:      skinAnalyzer,
		pool:              pool,
		events:            events,
		metrics:           metrics,
		analysisService:   analysisService,
		handler:           handler,
	}, nil
}

func loadPalettes(ctx context.Context, repo repository.PaletteRepository, cfg *config.Config, events *observer.EventPublisher) (*palette.Table, error) {
	loadCtx, cancel := context.WithTimeout(ctx, cfg.PaletteFetchTimeout)
	defer cancel()

	table, err := repo.Load(loadCtx)
	if err == nil {
		err = palette.NewResolver(table).CheckComplete()
	}
	if err != nil {
		events.NotifyObservers(ctx, observer.AnalysisEvent{
			EventType:    observer.PaletteLoadFailed,
			ErrorMessage: err.Error(),
			Metadata:     map[string]interface{}{"source": repo.Source()},
		})
		events.Wait()
		return nil, fmt.Errorf("failed to load palette table: %w", err)
	}

	events.NotifyObservers(ctx, observer.AnalysisEvent{
		EventType: observer.PaletteLoaded,
		Success:   true,
		Metadata: map[string]interface{}{
			"source":          repo.Source(),
			"palette_version": table.Version(),
			"palettes":        table.Len(),
		},
	})
	return table, nil
}

// Handler returns the HTTP handler
func (c *Container) Handler() http.Handler {
	return c.handler
}

// Config returns the configuration
func (c *Container) Config() *config.Config {
	return c.config
}

func (c *Container) Service() service.AnalysisService {
	return c.analysisService
}

func (c *Container) Metrics() *observer.MetricsObserver {
	return c.metrics
}

func (c *Container) PaletteTable() *palette.Table {
	return c.table
}

// Close stops the worker pool and flushes pending events
func (c *Container) Close() error {
	c.pool.Close()
	c.pool.Wait()
	c.events.Wait()
	return c.skinAnalyzer.Close()
}
