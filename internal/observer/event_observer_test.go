package observer

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

type recordingObserver struct {
	name   string
	mu     sync.Mutex
	events []EventType
}

func (o *recordingObserver) OnEvent(ctx context.Context, event AnalysisEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, event.EventType)
}

func (o *recordingObserver) GetObserverName() string { return o.name }

func (o *recordingObserver) count() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.events)
}

type panickingObserver struct{}

func (panickingObserver) OnEvent(ctx context.Context, event AnalysisEvent) { panic("boom") }
func (panickingObserver) GetObserverName() string { return "panicky" }

func TestMetricsObserver(t *testing.T) {
	m := NewMetricsObserver()
	ctx := context.Background()

	events := []AnalysisEvent{
		{EventType: AnalysisStarted},
		{EventType: AnalysisCompleted, Category: "Medium-Warm", ProcessingTime: 2 * time.Millisecond},
		{EventType: AnalysisStarted},
		{EventType: AnalysisCompleted, Category: "Medium-Warm", ProcessingTime: 4 * time.Millisecond},
		{EventType: LowConfidence, Category: "Medium-Warm"},
		{EventType: AnalysisStarted},
		{EventType: AnalysisFailed, ErrorMessage: "empty"},
		{EventType: PaletteLoaded},
		{EventType: PaletteLoadFailed},
	}
	for _, e := range events {
		m.OnEvent(ctx, e)
	}

	got := m.GetMetrics()
	if got.TotalAnalyses != 3 || got.SuccessfulAnalyses != 2 || got.FailedAnalyses != 1 {
		t.Errorf("Unexpected totals %+v", got)
	}
	if got.LowConfidenceAnalyses != 1 {
		t.Errorf("Expected 1 low confidence, got %d", got.LowConfidenceAnalyses)
	}
	if got.CategoryCounts["Medium-Warm"] != 2 {
		t.Errorf("Expected 2 Medium-Warm, got %d", got.CategoryCounts["Medium-Warm"])
	}
	if got.AvgProcessingTime != "3ms" {
		t.Errorf("Expected average 3ms, got %s", got.AvgProcessingTime)
	}
	if got.PaletteLoads != 1 || got.PaletteLoadFailures != 1 {
		t.Errorf("Unexpected palette counters %+v", got)
	}

	// snapshot must not alias internal state
	got.CategoryCounts["Medium-Warm"] = 99
	if m.GetMetrics().CategoryCounts["Medium-Warm"] != 2 {
		t.Error("Snapshot shares its map with the observer")
	}
}

func TestEventPublisher(t *testing.T) {
	p := NewEventPublisher()
	a := &recordingObserver{name: "a"}
	b := &recordingObserver{name: "b"}
	p.Subscribe(a)
	p.Subscribe(b)
	p.Subscribe(panickingObserver{})

	p.NotifyObservers(context.Background(), AnalysisEvent{EventType: AnalysisStarted})
	p.Wait()

	if a.count() != 1 || b.count() != 1 {
		t.Errorf("Expected both observers notified, got %d and %d", a.count(), b.count())
	}

	p.Unsubscribe(&recordingObserver{name: "a"})
	p.NotifyObservers(context.Background(), AnalysisEvent{EventType: AnalysisCompleted})
	p.Wait()

	if a.count() != 1 {
		t.Errorf("Unsubscribed observer still notified")
	}
	if b.count() != 2 {
		t.Errorf("Expected b to see 2 events, got %d", b.count())
	}
}

func TestLoggingObserver(t *testing.T) {
	var buf bytes.Buffer
	l := logrus.New()
	l.SetOutput(&buf)
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetLevel(logrus.DebugLevel)

	o := NewLoggingObserver(l)
	o.OnEvent(context.Background(), AnalysisEvent{
		EventType:  LowConfidence,
		AnalysisID: "id-1",
		Category:   "Deep-Cool",
		Confidence: 0.42,
	})

	var line map[string]interface{}
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line); err != nil {
		t.Fatalf("Expected one JSON log line, got %q: %v", buf.String(), err)
	}
	if line["level"] != "warning" {
		t.Errorf("Expected warning level, got %v", line["level"])
	}
	if line["category"] != "Deep-Cool" || line["analysis_id"] != "id-1" {
		t.Errorf("Missing fields in %v", line)
	}
	if !strings.Contains(line["msg"].(string), "Low confidence") {
		t.Errorf("Unexpected message %v", line["msg"])
	}
}
