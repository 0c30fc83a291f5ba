package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/anime-shed/glowmatch-go/internal/analyzer"
	apperrors "github.com/anime-shed/glowmatch-go/internal/errors"
	"github.com/anime-shed/glowmatch-go/internal/observer"
	"github.com/anime-shed/glowmatch-go/internal/skintone"
	"github.com/anime-shed/glowmatch-go/internal/strategy"
	"github.com/anime-shed/glowmatch-go/pkg/models"
)

// AnalysisService classifies pixel samples and serves the palette catalogue
type AnalysisService interface {
	// Analyze classifies one sample and renders it in the requested version
	Analyze(ctx context.Context, req models.AnalysisRequest) (models.VersionedResponse, error)

	// AnalyzeBatch classifies several samples; per-sample failures are reported inline
	AnalyzeBatch(ctx context.Context, req models.BatchAnalysisRequest) (*models.BatchAnalysisResponse, error)

	// Palette returns the recommendations for an extended category key
	Palette(key string) (models.PaletteRecommendations, error)

	// Categories lists every extended category with its legacy cell
	Categories() []models.CategoryInfo
}

// Options bounds the work the service accepts
type Options struct {
	AnalysisTimeout  time.Duration
	MaxBatchSize     int
	BatchConcurrency int
}

func (o Options) withDefaults() Options {
	if o.AnalysisTimeout <= 0 {
		o.AnalysisTimeout = 5 * time.Second
	}
	if o.MaxBatchSize <= 0 {
		o.MaxBatchSize = 50
	}
	if o.BatchConcurrency <= 0 {
		o.BatchConcurrency = runtime.NumCPU()
	}
	return o
}

type analysisService struct {
	analyzer   analyzer.SkinToneAnalyzer
	resolver   analyzer.PaletteResolver
	pool       *analyzer.WorkerPool
	strategies *strategy.Registry
	events     observer.Subject
	opts       Options
}

// NewAnalysisService wires the analyzer to the worker pool. The pool must
// already be started; events may be nil.
func NewAnalysisService(
	skinAnalyzer analyzer.SkinToneAnalyzer,
	resolver analyzer.PaletteResolver,
	pool *analyzer.WorkerPool,
	strategies *strategy.Registry,
	events observer.Subject,
	opts Options,
) AnalysisService {
	return &analysisService{
		analyzer:   skinAnalyzer,
		resolver:   resolver,
		pool:       pool,
		strategies: strategies,
		events:     events,
		opts:       opts.withDefaults(),
	}
}

func (s *analysisService) Analyze(ctx context.Context, req models.AnalysisRequest) (models.VersionedResponse, error) {
	renderer, err := s.strategies.ForVersion(req.Version)
	if err != nil {
		return nil, err
	}
	return s.analyzeOne(ctx, req.PixelSample, renderer)
}

func (s *analysisService) AnalyzeBatch(ctx context.Context, req models.BatchAnalysisRequest) (*models.BatchAnalysisResponse, error) {
	if len(req.Samples) == 0 {
		return nil, apperrors.NewValidationError("batch must contain at least one sample", nil)
	}
	if len(req.Samples) > s.opts.MaxBatchSize {
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("batch of %d samples exceeds the limit of %d", len(req.Samples), s.opts.MaxBatchSize), nil)
	}

	renderer, err := s.strategies.ForVersion(req.Version)
	if err != nil {
		return nil, err
	}

	items := make([]models.BatchItem, len(req.Samples))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.BatchConcurrency)

	for i, sample := range req.Samples {
		i, sample := i, sample
		g.Go(func() error {
			resp, err := s.analyzeOne(gctx, sample, renderer)
			if errors.Is(err, analyzer.ErrPoolClosed) {
				return err
			}
			items[i] = models.BatchItem{Index: i, Response: resp}
			if err != nil {
				errResp := NewErrorResponse(err)
				items[i].Error = &errResp
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, apperrors.NewInternalError("batch analysis aborted", err)
	}

	out := &models.BatchAnalysisResponse{
		Version: renderer.Version(),
		Total:   len(items),
		Results: items,
	}
	for _, item := range items {
		if item.Error != nil {
			out.Failed++
		} else {
			out.Succeeded++
		}
	}
	return out, nil
}

type outcome struct {
	result models.AnalysisResult
	err    error
}

func (s *analysisService) analyzeOne(ctx context.Context, sample models.PixelSample, renderer strategy.ResponseStrategy) (models.VersionedResponse, error) {
	s.publish(ctx, observer.AnalysisEvent{
		EventType: observer.AnalysisStarted,
		Metadata:  map[string]interface{}{"sample_size": sample.SampleSize},
	})

	ctx, cancel := context.WithTimeout(ctx, s.opts.AnalysisTimeout)
	defer cancel()

	// buffered so a job that outlives ctx never blocks its worker
	done := make(chan outcome, 1)
	err := s.pool.Do(ctx, func() {
		result, err := s.analyzer.Analyze(sample)
		done <- outcome{result: result, err: err}
	})

	var res outcome
	switch {
	case errors.Is(err, analyzer.ErrPoolClosed):
		res.err = err
	case errors.Is(err, context.DeadlineExceeded):
		res.err = apperrors.NewTimeoutError(fmt.Sprintf("analysis exceeded %s", s.opts.AnalysisTimeout), err)
	case err != nil:
		res.err = apperrors.NewTimeoutError("analysis cancelled", err)
	default:
		res = <-done
	}

	if res.err != nil {
		s.publish(ctx, observer.AnalysisEvent{
			EventType:    observer.AnalysisFailed,
			ErrorMessage: res.err.Error(),
		})
		return nil, res.err
	}

	result := res.result
	event := observer.AnalysisEvent{
		EventType:      observer.AnalysisCompleted,
		AnalysisID:     result.ID,
		Category:       result.Extended.ExtendedCategory,
		Confidence:     result.Extended.SkinToneConfidence,
		ProcessingTime: result.ProcessingTime,
		Success:        true,
	}
	s.publish(ctx, event)
	if result.Details.RetrySuggested {
		event.EventType = observer.LowConfidence
		event.Metadata = map[string]interface{}{"retry_threshold": result.Details.RecommendedRetryIfBelow}
		s.publish(ctx, event)
	}

	return renderer.Render(result), nil
}

func (s *analysisService) Palette(key string) (models.PaletteRecommendations, error) {
	c, err := skintone.ParseCategoryKey(key)
	if err != nil {
		return models.PaletteRecommendations{}, apperrors.NewNotFoundError(fmt.Sprintf("unknown skin tone category %q", key), err)
	}
	return s.resolver.Resolve(c)
}

func (s *analysisService) Categories() []models.CategoryInfo {
	all := skintone.AllCategories()
	out := make([]models.CategoryInfo, 0, len(all))
	for _, c := range all {
		r := c.Undertone.HueRange()
		out = append(out, models.CategoryInfo{
			Key:             c.Key(),
			Depth:           c.Depth.String(),
			DepthLevel:      c.Depth.Level(),
			DepthPercentile: c.Depth.Percentile(),
			Undertone:       c.Undertone.String(),
			HueRange:        [2]int{r.Start, r.End},
			LegacyCategory:  c.Legacy().Key(),
		})
	}
	return out
}

// publish detaches the event from the request context so observers outlive
// a cancelled request.
func (s *analysisService) publish(ctx context.Context, event observer.AnalysisEvent) {
	if s.events == nil {
		return
	}
	s.events.NotifyObservers(context.WithoutCancel(ctx), event)
}

// NewErrorResponse converts err into the wire error body
func NewErrorResponse(err error) models.ErrorResponse {
	if appErr, ok := apperrors.As(err); ok {
		msg := appErr.Message
		if appErr.Details != "" {
			msg += ": " + appErr.Details
		}
		return models.ErrorResponse{
			Error:   http.StatusText(appErr.StatusCode),
			Type:    string(appErr.Type),
			Message: msg,
		}
	}
	return models.ErrorResponse{
		Error:   http.StatusText(http.StatusInternalServerError),
		Type:    string(apperrors.ErrorTypeInternal),
		Message: err.Error(),
	}
}
