package observer

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// AnalysisEvent represents a lifecycle event of the classification service
type AnalysisEvent struct {
	EventType      EventType              `json:"eventType"`
	Timestamp      time.Time              `json:"timestamp"`
	AnalysisID     string                 `json:"analysisId,omitempty"`
	Category       string                 `json:"category,omitempty"`
	Confidence     float64                `json:"confidence,omitempty"`
	ProcessingTime time.Duration          `json:"processingTime"`
	Success        bool                   `json:"success"`
	ErrorMessage   string                 `json:"errorMessage,omitempty"`
	Metadata       map[string]interface{} `json:"metadata,omitempty"`
}

// EventType represents the type of analysis event
type EventType string

const (
	// AnalysisStarted when a sample is accepted for analysis
	AnalysisStarted EventType = "analysis_started"
	// AnalysisCompleted when a classification was produced
	AnalysisCompleted EventType = "analysis_completed"
	// AnalysisFailed when a sample could not be classified
	AnalysisFailed EventType = "analysis_failed"
	// LowConfidence when a result falls below the retry threshold
	LowConfidence EventType = "low_confidence"
	// PaletteLoaded when the palette table passed startup validation
	PaletteLoaded EventType = "palette_loaded"
	// PaletteLoadFailed when the palette table could not be loaded
	PaletteLoadFailed EventType = "palette_load_failed"
)

// Observer defines the interface for event observers
type Observer interface {
	OnEvent(ctx context.Context, event AnalysisEvent)
	GetObserverName() string
}

// Subject defines the interface for event publishers
type Subject interface {
	Subscribe(observer Observer)
	Unsubscribe(observer Observer)
	NotifyObservers(ctx context.Context, event AnalysisEvent)
}

// LoggingObserver logs analysis events
type LoggingObserver struct {
	logger *logrus.Logger
}

func NewLoggingObserver(logger *logrus.Logger) *LoggingObserver {
	return &LoggingObserver{logger: logger}
}

// OnEvent handles analysis events by logging them
func (o *LoggingObserver) OnEvent(ctx context.Context, event AnalysisEvent) {
	fields := logrus.Fields{
		"event_type":      event.EventType,
		"processing_time": event.ProcessingTime,
		"success":         event.Success,
	}
	if event.AnalysisID != "" {
		fields["analysis_id"] = event.AnalysisID
	}
	if event.Category != "" {
		fields["category"] = event.Category
		fields["confidence"] = event.Confidence
	}
	if event.ErrorMessage != "" {
		fields["error"] = event.ErrorMessage
	}
	for k, v := range event.Metadata {
		fields[k] = v
	}

	entry := o.logger.WithFields(fields)
	switch event.EventType {
	case AnalysisStarted:
		entry.Debug("Skin tone analysis started")
	case AnalysisCompleted:
		entry.Info("Skin tone analysis completed")
	case AnalysisFailed:
		entry.Warn("Skin tone analysis failed")
	case LowConfidence:
		entry.Warn("Low confidence classification, retry suggested")
	case PaletteLoaded:
		entry.Info("Palette table loaded")
	case PaletteLoadFailed:
		entry.Error("Palette table failed to load")
	default:
		entry.Info("Analysis event occurred")
	}
}

func (o *LoggingObserver) GetObserverName() string {
	return "logging_observer"
}

// MetricsSnapshot is a point-in-time copy of MetricsObserver counters
type MetricsSnapshot struct {
	TotalAnalyses         int64            `json:"totalAnalyses"`
	SuccessfulAnalyses    int64            `json:"successfulAnalyses"`
	FailedAnalyses        int64            `json:"failedAnalyses"`
	LowConfidenceAnalyses int64            `json:"lowConfidenceAnalyses"`
	CategoryCounts        map[string]int64 `json:"categoryCounts"`
	AvgProcessingTime     string           `json:"avgProcessingTime"`
	PaletteLoads          int64            `json:"paletteLoads"`
	PaletteLoadFailures   int64            `json:"paletteLoadFailures"`
}

// MetricsObserver collects counters from analysis events
type MetricsObserver struct {
	mu                  sync.RWMutex
	totalAnalyses       int64
	successfulAnalyses  int64
	failedAnalyses      int64
	lowConfidence       int64
	categoryCounts      map[string]int64
	totalProcessingTime time.Duration
	paletteLoads        int64
	paletteFailures     int64
}

func NewMetricsObserver() *MetricsObserver {
	return &MetricsObserver{categoryCounts: make(map[string]int64)}
}

func (o *MetricsObserver) OnEvent(ctx context.Context, event AnalysisEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()

	switch event.EventType {
	case AnalysisStarted:
		o.totalAnalyses++
	case AnalysisCompleted:
		o.successfulAnalyses++
		o.totalProcessingTime += event.ProcessingTime
		if event.Category != "" {
			o.categoryCounts[event.Category]++
		}
	case AnalysisFailed:
		o.failedAnalyses++
	case LowConfidence:
		o.lowConfidence++
	case PaletteLoaded:
		o.paletteLoads++
	case PaletteLoadFailed:
		o.paletteFailures++
	}
}

func (o *MetricsObserver) GetObserverName() string {
	return "metrics_observer"
}

// GetMetrics returns current metrics
func (o *MetricsObserver) GetMetrics() MetricsSnapshot {
	o.mu.RLock()
	defer o.mu.RUnlock()

	avg := time.Duration(0)
	if o.successfulAnalyses > 0 {
		avg = o.totalProcessingTime / time.Duration(o.successfulAnalyses)
	}

	counts := make(map[string]int64, len(o.categoryCounts))
	for k, v := range o.categoryCounts {
		counts[k] = v
	}

	return MetricsSnapshot{
		TotalAnalyses:         o.totalAnalyses,
		SuccessfulAnalyses:    o.successfulAnalyses,
		FailedAnalyses:        o.failedAnalyses,
		LowConfidenceAnalyses: o.lowConfidence,
		CategoryCounts:        counts,
		AvgProcessingTime:     avg.String(),
		PaletteLoads:          o.paletteLoads,
		PaletteLoadFailures:   o.paletteFailures,
	}
}

// EventPublisher implements the Subject interface
type EventPublisher struct {
	mu        sync.RWMutex
	observers []Observer
	pending   sync.WaitGroup
}

func NewEventPublisher() *EventPublisher {
	return &EventPublisher{observers: make([]Observer, 0)}
}

func (p *EventPublisher) Subscribe(observer Observer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.observers = append(p.observers, observer)
}

// Unsubscribe removes the first observer with a matching name
func (p *EventPublisher) Unsubscribe(observer Observer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for i, obs := range p.observers {
		if obs.GetObserverName() == observer.GetObserverName() {
			p.observers = append(p.observers[:i], p.observers[i+1:]...)
			break
		}
	}
}

// NotifyObservers delivers event to every observer on its own goroutine
func (p *EventPublisher) NotifyObservers(ctx context.Context, event AnalysisEvent) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	p.mu.RLock()
	observers := make([]Observer, len(p.observers))
	copy(observers, p.observers)
	p.mu.RUnlock()

	for _, observer := range observers {
		p.pending.Add(1)
		go func(obs Observer) {
			defer p.pending.Done()
			defer func() {
				if r := recover(); r != nil {
					logrus.WithField("observer", obs.GetObserverName()).
						WithField("panic", r).
						Error("Observer panicked while handling event")
				}
			}()
			obs.OnEvent(ctx, event)
		}(observer)
	}
}

// Wait blocks until every delivered event has been handled
func (p *EventPublisher) Wait() {
	p.pending.Wait()
}
