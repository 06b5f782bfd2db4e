package analysis

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/quentinrf/plant-monitor/services/light-analysis/internal/adapters/catalog"
	"github.com/quentinrf/plant-monitor/services/light-analysis/internal/adapters/feed"
	"github.com/quentinrf/plant-monitor/services/light-analysis/internal/adapters/memory"
	"github.com/quentinrf/plant-monitor/services/light-analysis/internal/domain"
	"github.com/quentinrf/plant-monitor/services/light-analysis/internal/ports"
)

type harness struct {
	clock    clockwork.FakeClock
	hub      *feed.Hub
	repo     *memory.RecordRepository
	metrics  *Metrics
	progress chan Status
	ctrl     *Controller
}

// newHarness wires a controller to an in-memory feed and store.
// The plant search has no latency unless a directory is supplied.
func newHarness(t *testing.T, directory ports.PlantDirectory, repo domain.RecordRepository, opts ...Option) *harness {
	t.Helper()

	h := &harness{
		clock:    clockwork.NewFakeClock(),
		hub:      feed.NewHub(),
		repo:     memory.NewRecordRepository(),
		metrics:  NewMetrics(prometheus.NewRegistry()),
		progress: make(chan Status, 256),
	}
	if directory == nil {
		directory = catalog.NewSearcher(domain.NewMatcher(domain.DefaultCatalog()), 0, h.clock)
	}
	if repo == nil {
		repo = h.repo
	}

	base := []Option{
		WithClock(h.clock),
		WithMetrics(h.metrics),
		WithProgressHook(func(st Status) { h.progress <- st }),
	}
	h.ctrl = NewController(h.hub, directory, NewAssembler(repo, h.clock), append(base, opts...)...)
	t.Cleanup(func() { h.ctrl.Close() })
	return h
}

func waitSession(t *testing.T, s *Session) (*domain.Record, error) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	rec, err := s.Wait(ctx)
	if errors.Is(err, context.DeadlineExceeded) {
		t.Fatal("session did not finish in time")
	}
	return rec, err
}

func TestController_AveragesBufferedSamples(t *testing.T) {
	h := newHarness(t, nil, nil)
	ctx := context.Background()

	s, err := h.ctrl.Start(ctx, Request{PlantName: "cactus", ImageRef: "img://1", DurationSeconds: 10})
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	h.hub.Publish(5000)
	h.hub.Publish(6000)
	h.hub.Publish(7000)

	h.clock.BlockUntil(1)
	h.clock.Advance(10 * time.Second)

	rec, err := waitSession(t, s)
	if err != nil {
		t.Fatalf("session failed: %v", err)
	}

	if rec.AverageLux != 6000 {
		t.Errorf("expected average 6000, got %v", rec.AverageLux)
	}
	if len(rec.Readings) != 3 {
		t.Errorf("expected 3 readings in trace, got %v", rec.Readings)
	}
	if rec.MinLightLevel == nil || *rec.MinLightLevel != 5000 || rec.MaxLightLevel == nil || *rec.MaxLightLevel != 7000 {
		t.Errorf("expected min/max 5000/7000, got %v/%v", rec.MinLightLevel, rec.MaxLightLevel)
	}
	if rec.PlantName != "Cactus" {
		t.Errorf("expected canonical name Cactus, got %q", rec.PlantName)
	}
	if rec.IsSuitable == nil || !*rec.IsSuitable {
		t.Errorf("expected suitable, got %v", rec.IsSuitable)
	}
	if !strings.Contains(rec.Recommendation, "Excelente") {
		t.Errorf("unexpected recommendation %q", rec.Recommendation)
	}
	if rec.ImageRef != "img://1" || rec.DurationSeconds != 10 {
		t.Errorf("session inputs not carried into record: %+v", rec)
	}

	stored, err := h.repo.ListAll(ctx)
	if err != nil || len(stored) != 1 || stored[0].ID != rec.ID {
		t.Errorf("expected the record to be stored, got %v (err=%v)", stored, err)
	}

	if st := h.ctrl.Status(); st.State != StateIdle || st.Progress != 0 {
		t.Errorf("expected idle controller with progress reset, got %+v", st)
	}
}

func TestController_MeanOfManySamples(t *testing.T) {
	h := newHarness(t, nil, nil)

	s, err := h.ctrl.Start(context.Background(), Request{PlantName: "monstera", DurationSeconds: 30})
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	var sum float64
	n := 0
	for lux := 0.5; lux < 4000; lux *= 1.7 {
		h.hub.Publish(lux)
		sum += lux
		n++
	}

	h.clock.BlockUntil(1)
	h.clock.Advance(30 * time.Second)

	rec, err := waitSession(t, s)
	if err != nil {
		t.Fatalf("session failed: %v", err)
	}
	if want := sum / float64(n); math.Abs(rec.AverageLux-want) > 1e-9 {
		t.Errorf("expected average %v, got %v", want, rec.AverageLux)
	}
	if len(rec.Readings) != n {
		t.Errorf("expected %d readings, got %d", n, len(rec.Readings))
	}
}

func TestController_ZeroDurationUsesInstantReading(t *testing.T) {
	h := newHarness(t, nil, nil)
	h.hub.Publish(750)

	s, err := h.ctrl.Start(context.Background(), Request{PlantName: "pothos", DurationSeconds: 0})
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	// Samples after Start belong to no window
	h.hub.Publish(9999)

	rec, err := waitSession(t, s)
	if err != nil {
		t.Fatalf("session failed: %v", err)
	}
	if rec.AverageLux != 750 {
		t.Errorf("expected instantaneous reading 750, got %v", rec.AverageLux)
	}
	if len(rec.Readings) != 0 {
		t.Errorf("expected empty trace, got %v", rec.Readings)
	}
	if rec.MinLightLevel != nil || rec.MaxLightLevel != nil {
		t.Error("expected no min/max for an empty trace")
	}
}

func TestController_SilentSensorFallsBackToCurrentLux(t *testing.T) {
	h := newHarness(t, nil, nil)
	h.hub.Publish(420)

	s, err := h.ctrl.Start(context.Background(), Request{PlantName: "calathea", DurationSeconds: 2})
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	h.clock.BlockUntil(1)
	h.clock.Advance(2 * time.Second)

	rec, err := waitSession(t, s)
	if err != nil {
		t.Fatalf("session failed: %v", err)
	}
	if rec.AverageLux != 420 {
		t.Errorf("expected fallback to 420, got %v", rec.AverageLux)
	}
	if len(rec.Readings) != 0 {
		t.Errorf("expected empty trace, got %v", rec.Readings)
	}
}

func TestController_NeverReportedSensorAveragesZero(t *testing.T) {
	h := newHarness(t, nil, nil)

	s, err := h.ctrl.Start(context.Background(), Request{PlantName: "calathea", DurationSeconds: 1})
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	h.clock.BlockUntil(1)
	h.clock.Advance(time.Second)

	rec, err := waitSession(t, s)
	if err != nil {
		t.Fatalf("session failed: %v", err)
	}
	if rec.AverageLux != 0 {
		t.Errorf("expected 0 lux, got %v", rec.AverageLux)
	}
	if st := h.ctrl.Status(); st.HasLux {
		t.Error("expected no current reading")
	}
}

func TestController_InvalidSamplesIgnored(t *testing.T) {
	h := newHarness(t, nil, nil)

	s, err := h.ctrl.Start(context.Background(), Request{PlantName: "fern", DurationSeconds: 1})
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	h.hub.Publish(1000)
	h.hub.Publish(-3)
	h.hub.Publish(math.NaN())
	h.hub.Publish(math.Inf(1))

	if st := h.ctrl.Status(); st.CurrentLux != 1000 {
		t.Errorf("invalid sample must not update current lux, got %v", st.CurrentLux)
	}

	h.clock.BlockUntil(1)
	h.clock.Advance(time.Second)

	rec, err := waitSession(t, s)
	if err != nil {
		t.Fatalf("session failed: %v", err)
	}
	if len(rec.Readings) != 1 || rec.AverageLux != 1000 {
		t.Errorf("expected one 1000 lux reading, got %v (avg %v)", rec.Readings, rec.AverageLux)
	}
}

func TestController_RejectsStartWhileRunning(t *testing.T) {
	h := newHarness(t, nil, nil)
	ctx := context.Background()

	first, err := h.ctrl.Start(ctx, Request{PlantName: "ficus", DurationSeconds: 5})
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	if _, err := h.ctrl.Start(ctx, Request{PlantName: "cactus", DurationSeconds: 1}); !errors.Is(err, domain.ErrSessionBusy) {
		t.Fatalf("expected ErrSessionBusy, got %v", err)
	}

	st := h.ctrl.Status()
	if st.State != StateRunning || st.SessionID != first.ID || st.PlantName != "ficus" {
		t.Errorf("rejected start changed state: %+v", st)
	}

	h.clock.BlockUntil(1)
	h.clock.Advance(5 * time.Second)
	if _, err := waitSession(t, first); err != nil {
		t.Fatalf("session failed: %v", err)
	}

	second, err := h.ctrl.Start(ctx, Request{PlantName: "cactus", DurationSeconds: 0})
	if err != nil {
		t.Fatalf("expected Start to succeed once idle, got %v", err)
	}
	if _, err := waitSession(t, second); err != nil {
		t.Fatalf("second session failed: %v", err)
	}
}

// gatedDirectory blocks every search until released
type gatedDirectory struct {
	entered chan struct{}
	release chan struct{}
}

func (g *gatedDirectory) Search(ctx context.Context, query string) (*domain.PlantLightRequirement, error) {
	g.entered <- struct{}{}
	<-g.release
	return nil, nil
}

func TestController_RejectsStartWhileSearching(t *testing.T) {
	dir := &gatedDirectory{entered: make(chan struct{}, 1), release: make(chan struct{})}
	h := newHarness(t, dir, nil)
	ctx := context.Background()

	s, err := h.ctrl.Start(ctx, Request{PlantName: "mystery", DurationSeconds: 0})
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	<-dir.entered

	if st := h.ctrl.Status(); st.State != StateFinalizing {
		t.Errorf("expected finalizing during search, got %v", st.State)
	}
	if _, err := h.ctrl.Start(ctx, Request{PlantName: "other"}); !errors.Is(err, domain.ErrSessionBusy) {
		t.Errorf("expected ErrSessionBusy during search, got %v", err)
	}

	close(dir.release)
	if _, err := waitSession(t, s); err != nil {
		t.Fatalf("session failed: %v", err)
	}
}

func TestController_ProgressMonotonicAndReachesOne(t *testing.T) {
	h := newHarness(t, nil, nil, WithTick(time.Second))

	s, err := h.ctrl.Start(context.Background(), Request{PlantName: "begonia", DurationSeconds: 3})
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	wantProgress := []float64{0, 1.0 / 3, 2.0 / 3, 1}
	wantRemaining := []int{3, 2, 1, 0}

	last := -1.0
	for i := range wantProgress {
		if i > 0 {
			h.clock.Advance(time.Second)
		}
		var st Status
		select {
		case st = <-h.progress:
		case <-time.After(2 * time.Second):
			t.Fatalf("tick %d: no progress update", i)
		}

		if st.Progress < last {
			t.Errorf("tick %d: progress went backwards: %v after %v", i, st.Progress, last)
		}
		last = st.Progress
		if math.Abs(st.Progress-wantProgress[i]) > 1e-9 {
			t.Errorf("tick %d: progress = %v, want %v", i, st.Progress, wantProgress[i])
		}
		if st.TimeRemaining != wantRemaining[i] {
			t.Errorf("tick %d: remaining = %d, want %d", i, st.TimeRemaining, wantRemaining[i])
		}
		if st.SessionID != s.ID {
			t.Errorf("tick %d: unexpected session %q", i, st.SessionID)
		}
	}

	if _, err := waitSession(t, s); err != nil {
		t.Fatalf("session failed: %v", err)
	}
	if st := h.ctrl.Status(); st.Progress != 0 || st.TimeRemaining != 0 {
		t.Errorf("expected progress reset after finalization, got %+v", st)
	}
}

func TestController_UnknownPlantUsesHeuristic(t *testing.T) {
	h := newHarness(t, nil, nil)
	h.hub.Publish(600)

	s, err := h.ctrl.Start(context.Background(), Request{PlantName: "xyz-unknown-plant"})
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	rec, err := waitSession(t, s)
	if err != nil {
		t.Fatalf("session failed: %v", err)
	}
	if rec.PlantName != "xyz-unknown-plant" {
		t.Errorf("expected raw input as name, got %q", rec.PlantName)
	}
	if rec.IsSuitable == nil || !*rec.IsSuitable {
		t.Errorf("expected generic rule to accept 600 lux, got %v", rec.IsSuitable)
	}
	if !strings.Contains(rec.Recommendation, domain.NoSpeciesDataNote) {
		t.Errorf("expected no-species-data flag, got %q", rec.Recommendation)
	}
	if s.Verdict().Source != domain.SourceHeuristic {
		t.Errorf("expected heuristic verdict, got %q", s.Verdict().Source)
	}
}

type failingRepo struct{}

func (failingRepo) Append(ctx context.Context, r *domain.Record) error {
	return errors.New("disk full")
}

func (failingRepo) Get(ctx context.Context, id int64) (*domain.Record, error) {
	return nil, domain.ErrRecordNotFound
}

func (failingRepo) ListAll(ctx context.Context) ([]*domain.Record, error) {
	return nil, nil
}

func TestController_PersistenceFailureSurfaced(t *testing.T) {
	h := newHarness(t, nil, failingRepo{})
	h.hub.Publish(3000)

	s, err := h.ctrl.Start(context.Background(), Request{PlantName: "helecho"})
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	rec, err := waitSession(t, s)
	if err == nil {
		t.Fatal("expected persistence error")
	}
	if rec == nil || !strings.Contains(rec.Recommendation, "Demasiada") {
		t.Errorf("expected the unsaved record to be returned, got %+v", rec)
	}
	if st := h.ctrl.Status(); st.State != StateIdle {
		t.Errorf("expected idle after failure, got %v", st.State)
	}
	if got := testutil.ToFloat64(h.metrics.persistFailures); got != 1 {
		t.Errorf("expected 1 persist failure, got %v", got)
	}
}

func TestController_SessionIgnoresCallerCancellation(t *testing.T) {
	h := newHarness(t, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	s, err := h.ctrl.Start(ctx, Request{PlantName: "cactus", DurationSeconds: 1})
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	cancel()

	h.clock.BlockUntil(1)
	h.clock.Advance(time.Second)

	if _, err := waitSession(t, s); err != nil {
		t.Fatalf("expected session to complete despite cancelled ctx, got %v", err)
	}
}

func TestController_InvalidDuration(t *testing.T) {
	h := newHarness(t, nil, nil)

	if _, err := h.ctrl.Start(context.Background(), Request{PlantName: "cactus", DurationSeconds: -1}); !errors.Is(err, domain.ErrInvalidDuration) {
		t.Errorf("expected ErrInvalidDuration, got %v", err)
	}
	if st := h.ctrl.Status(); st.State != StateIdle {
		t.Errorf("expected idle, got %v", st.State)
	}
}

func TestController_CloseUnsubscribesOnce(t *testing.T) {
	h := newHarness(t, nil, nil)

	if n := h.hub.Subscribers(); n != 1 {
		t.Fatalf("expected 1 subscriber, got %d", n)
	}
	if err := h.ctrl.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := h.ctrl.Close(); err != nil {
		t.Errorf("second Close should be a no-op, got %v", err)
	}
	if n := h.hub.Subscribers(); n != 0 {
		t.Errorf("expected 0 subscribers after Close, got %d", n)
	}

	if _, err := h.ctrl.Start(context.Background(), Request{PlantName: "cactus"}); !errors.Is(err, domain.ErrControllerClosed) {
		t.Errorf("expected ErrControllerClosed, got %v", err)
	}
}

func TestController_SeedsCurrentLuxFromFeed(t *testing.T) {
	hub := feed.NewHub()
	hub.Publish(321)

	ctrl := NewController(hub, catalog.NewSearcher(domain.NewMatcher(domain.DefaultCatalog()), 0, nil),
		NewAssembler(memory.NewRecordRepository(), nil))
	defer ctrl.Close()

	st := ctrl.Status()
	if !st.HasLux || st.CurrentLux != 321 {
		t.Errorf("expected current lux 321, got %+v", st)
	}
}

func TestController_Metrics(t *testing.T) {
	h := newHarness(t, nil, nil)
	ctx := context.Background()

	s, err := h.ctrl.Start(ctx, Request{PlantName: "cactus", DurationSeconds: 1})
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	h.hub.Publish(8000)
	_, _ = h.ctrl.Start(ctx, Request{PlantName: "fern"})

	h.clock.BlockUntil(1)
	h.clock.Advance(time.Second)
	if _, err := waitSession(t, s); err != nil {
		t.Fatalf("session failed: %v", err)
	}

	if got := testutil.ToFloat64(h.metrics.sessionsStarted); got != 1 {
		t.Errorf("sessions started = %v, want 1", got)
	}
	if got := testutil.ToFloat64(h.metrics.sessionsRejected); got != 1 {
		t.Errorf("sessions rejected = %v, want 1", got)
	}
	if got := testutil.ToFloat64(h.metrics.samplesBuffered); got != 1 {
		t.Errorf("samples buffered = %v, want 1", got)
	}
	if got := testutil.ToFloat64(h.metrics.sessionsCompleted.WithLabelValues("catalog", "true")); got != 1 {
		t.Errorf("completed catalog/true = %v, want 1", got)
	}
	if got := testutil.ToFloat64(h.metrics.currentLux); got != 8000 {
		t.Errorf("current lux gauge = %v, want 8000", got)
	}
}
