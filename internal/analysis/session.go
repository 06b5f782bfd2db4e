package analysis

import (
	"context"
	"time"

	gonanoid "github.com/matoous/go-nanoid"

	"github.com/quentinrf/plant-monitor/services/light-analysis/internal/domain"
)

const sessionIDAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// State is the lifecycle phase of the controller
type State int

const (
	StateIdle State = iota
	StateRunning
	StateFinalizing
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateFinalizing:
		return "finalizing"
	default:
		return "unknown"
	}
}

// Request describes an analysis to run
type Request struct {
	PlantName       string
	ImageRef        string
	DurationSeconds int
}

// Session is the handle of one accepted analysis.
// It completes once the record has been assembled (and stored, if possible).
type Session struct {
	ID              string
	PlantName       string
	ImageRef        string
	DurationSeconds int
	StartedAt       time.Time
	EndsAt          time.Time

	// instantLux is the reading captured at Start for zero-length windows
	instantLux float64

	done    chan struct{}
	record  *domain.Record
	verdict domain.Verdict
	err     error
}

func newSession(req Request, now time.Time) (*Session, error) {
	id, err := gonanoid.Generate(sessionIDAlphabet, 12)
	if err != nil {
		return nil, err
	}

	return &Session{
		ID:              id,
		PlantName:       req.PlantName,
		ImageRef:        req.ImageRef,
		DurationSeconds: req.DurationSeconds,
		StartedAt:       now,
		EndsAt:          now.Add(time.Duration(req.DurationSeconds) * time.Second),
		done:            make(chan struct{}),
	}, nil
}

// Done is closed when the session has finished
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Wait blocks until the session finishes or ctx ends.
// On a storage failure the unsaved record is returned with the error.
func (s *Session) Wait(ctx context.Context) (*domain.Record, error) {
	select {
	case <-s.done:
		return s.record, s.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Verdict returns the suitability verdict; valid after Done is closed
func (s *Session) Verdict() domain.Verdict {
	<-s.done
	return s.verdict
}

func (s *Session) duration() time.Duration {
	return time.Duration(s.DurationSeconds) * time.Second
}
