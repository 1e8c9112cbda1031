package timer

import (
	"sync"
	"time"
)

// Timer measures the total duration of a command and the duration of its current stage.
type Timer interface {
	// Start resets the timer and starts both the total and the stage clock.
	Start()
	// NewStage restarts the stage clock without touching the total clock.
	NewStage()
	// GetTiming returns the total and stage durations.
	GetTiming() (time.Duration, time.Duration)
}

// Clock returns the current time. It is replaceable in tests.
type Clock func() time.Time

// Option configures a timer created by New.
type Option func(*timer)

// WithClock overrides the clock used by the timer.
func WithClock(clock Clock) Option {
	return func(t *timer) {
		t.now = clock
	}
}

type timer struct {
	mu         sync.Mutex
	now        Clock
	startTime  time.Time
	stageStart time.Time
}

// New creates a timer. Call Start before reading timings.
func New(opts ...Option) Timer {
	t := &timer{now: time.Now}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

func (t *timer) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	t.startTime = now
	t.stageStart = now
}

func (t *timer) NewStage() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.startTime.IsZero() {
		t.startTime = t.now()
	}

	t.stageStart = t.now()
}

func (t *timer) GetTiming() (time.Duration, time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.startTime.IsZero() {
		return 0, 0
	}

	now := t.now()

	return now.Sub(t.startTime), now.Sub(t.stageStart)
}
