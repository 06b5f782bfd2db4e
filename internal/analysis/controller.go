package analysis

import (
	"context"
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/quentinrf/plant-monitor/services/light-analysis/internal/domain"
	"github.com/quentinrf/plant-monitor/services/light-analysis/internal/ports"
)

// DefaultTick is the progress refresh cadence
const DefaultTick = 100 * time.Millisecond

// Status is a point-in-time view of the controller
type Status struct {
	State         State
	SessionID     string
	PlantName     string
	Progress      float64
	TimeRemaining int // seconds, rounded up
	CurrentLux    float64
	HasLux        bool
}

// Option configures a Controller
type Option func(*Controller)

// WithClock replaces the wall clock, e.g. with a fake clock in tests
func WithClock(clock clockwork.Clock) Option {
	return func(c *Controller) { c.clock = clock }
}

// WithTick sets the progress refresh cadence
func WithTick(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.tick = d
		}
	}
}

// WithMetrics attaches Prometheus collectors
func WithMetrics(m *Metrics) Option {
	return func(c *Controller) { c.metrics = m }
}

// WithProgressHook calls fn after every progress update of a running session
func WithProgressHook(fn func(Status)) Option {
	return func(c *Controller) { c.onProgress = fn }
}

// Controller runs timed sampling windows over a SensorFeed.
// At most one session is running or finalizing at any time.
type Controller struct {
	feed       ports.SensorFeed
	directory  ports.PlantDirectory
	assembler  *Assembler
	clock      clockwork.Clock
	tick       time.Duration
	metrics    *Metrics
	onProgress func(Status)

	token     ports.SubscriptionToken
	closeOnce sync.Once

	mu        sync.Mutex
	closed    bool
	state     State
	current   float64
	hasLux    bool
	buffer    ReadingBuffer
	active    *Session
	progress  float64
	remaining int
}

// NewController creates a controller and subscribes it to feed.
// Call Close to release the subscription.
func NewController(feed ports.SensorFeed, directory ports.PlantDirectory, assembler *Assembler, opts ...Option) *Controller {
	c := &Controller{
		feed:      feed,
		directory: directory,
		assembler: assembler,
		clock:     clockwork.NewRealClock(),
		tick:      DefaultTick,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.metrics == nil {
		c.metrics = NewMetrics(nil)
	}

	if lux, ok := feed.Latest(); ok {
		if _, err := domain.NewSample(lux, c.clock.Now()); err == nil {
			c.current, c.hasLux = lux, true
		}
	}
	c.token = feed.Subscribe(c.onSample)

	return c
}

// Close unsubscribes from the sensor feed. It is safe to call more than once.
// A session already in progress still finishes on its own deadline.
func (c *Controller) Close() error {
	var err error
	c.closeOnce.Do(func() {
		c.mu.Lock()
		c.closed = true
		c.mu.Unlock()

		err = c.feed.Unsubscribe(c.token)
		log.Info().Msg("analysis controller unsubscribed from sensor feed")
	})
	return err
}

// onSample receives every reading pushed by the feed
func (c *Controller) onSample(lux float64) {
	sample, err := domain.NewSample(lux, c.clock.Now())
	if err != nil {
		log.Debug().Err(err).Float64("lux", lux).Msg("ignoring sensor sample")
		return
	}

	c.mu.Lock()
	c.current, c.hasLux = lux, true
	buffered := c.state == StateRunning
	if buffered {
		c.buffer.Append(sample)
	}
	c.mu.Unlock()

	c.metrics.currentLux.Set(lux)
	if buffered {
		c.metrics.samplesBuffered.Inc()
	}
}

// Start begins an analysis and returns immediately.
// It fails with domain.ErrSessionBusy, leaving the running session untouched,
// while another session is sampling or searching. The session is detached
// from ctx cancellation: it always runs to its deadline.
func (c *Controller) Start(ctx context.Context, req Request) (*Session, error) {
	if req.DurationSeconds < 0 {
		return nil, domain.ErrInvalidDuration
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil, domain.ErrControllerClosed
	}
	if c.state != StateIdle {
		active := c.active
		c.mu.Unlock()

		c.metrics.sessionsRejected.Inc()
		log.Warn().
			Str("plant", req.PlantName).
			Str("active_session", active.ID).
			Msg("analysis rejected: session in progress")
		return nil, domain.ErrSessionBusy
	}

	s, err := newSession(req, c.clock.Now())
	if err != nil {
		c.mu.Unlock()
		return nil, err
	}

	c.buffer.Reset()
	c.active = s
	c.progress = 0
	if s.DurationSeconds == 0 {
		// Instantaneous window: no polling, the current reading is the result
		s.instantLux = c.current
		c.state = StateFinalizing
		c.remaining = 0
	} else {
		c.state = StateRunning
		c.remaining = s.DurationSeconds
	}
	c.mu.Unlock()

	c.metrics.sessionsStarted.Inc()
	log.Info().
		Str("session_id", s.ID).
		Str("plant", s.PlantName).
		Int("duration_seconds", s.DurationSeconds).
		Msg("analysis started")

	go c.run(context.WithoutCancel(ctx), s)

	return s, nil
}

// Status returns a snapshot safe for concurrent readers
func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.statusLocked()
}

func (c *Controller) statusLocked() Status {
	st := Status{
		State:         c.state,
		Progress:      c.progress,
		TimeRemaining: c.remaining,
		CurrentLux:    c.current,
		HasLux:        c.hasLux,
	}
	if c.active != nil {
		st.SessionID = c.active.ID
		st.PlantName = c.active.PlantName
	}
	return st
}

func (c *Controller) run(ctx context.Context, s *Session) {
	if s.DurationSeconds > 0 {
		c.sampleWindow(s)
	}
	c.finalize(ctx, s)
}

// sampleWindow publishes progress every tick until the deadline
func (c *Controller) sampleWindow(s *Session) {
	ticker := c.clock.NewTicker(c.tick)
	defer ticker.Stop()

	for {
		now := c.clock.Now()
		c.reportProgress(s, now)
		if !now.Before(s.EndsAt) {
			return
		}
		<-ticker.Chan()
	}
}

func (c *Controller) reportProgress(s *Session, now time.Time) {
	progress := float64(now.Sub(s.StartedAt)) / float64(s.duration())
	progress = math.Max(0, math.Min(1, progress))

	remaining := 0
	if left := s.EndsAt.Sub(now); left > 0 {
		remaining = int(math.Ceil(left.Seconds()))
	}

	c.mu.Lock()
	c.progress = progress
	c.remaining = remaining
	st := c.statusLocked()
	c.mu.Unlock()

	c.metrics.progress.Set(progress)
	if c.onProgress != nil {
		c.onProgress(st)
	}
}

// finalize computes the average, resolves the plant and stores the record
func (c *Controller) finalize(ctx context.Context, s *Session) {
	c.mu.Lock()
	c.state = StateFinalizing
	readings := c.buffer.Values()
	average, ok := c.buffer.Average()
	switch {
	case s.DurationSeconds == 0:
		average, readings = s.instantLux, []float64{}
	case !ok:
		// Silent or absent sensor: fall back to the last known reading
		average = c.current
	}
	c.buffer.Reset()
	c.progress = 0
	c.remaining = 0
	c.mu.Unlock()

	c.metrics.progress.Set(0)

	log.Info().
		Str("session_id", s.ID).
		Int("samples", len(readings)).
		Float64("average_lux", average).
		Msg("sampling finished, searching plant requirements")

	req, err := c.directory.Search(ctx, s.PlantName)
	if err != nil {
		log.Warn().Err(err).Str("plant", s.PlantName).Msg("plant search failed, using generic rules")
		req = nil
	}

	record, verdict, err := c.assembler.Assemble(ctx, Measurement{
		PlantName:       s.PlantName,
		ImageRef:        s.ImageRef,
		AverageLux:      average,
		DurationSeconds: s.DurationSeconds,
		Readings:        readings,
	}, req)
	if err != nil {
		c.metrics.persistFailures.Inc()
		log.Error().Err(err).Str("session_id", s.ID).Msg("failed to persist analysis")
	}
	c.metrics.sessionsCompleted.WithLabelValues(string(verdict.Source), strconv.FormatBool(verdict.Suitable)).Inc()

	s.record, s.verdict, s.err = record, verdict, err

	c.mu.Lock()
	c.state = StateIdle
	c.active = nil
	c.mu.Unlock()

	close(s.done)
}
