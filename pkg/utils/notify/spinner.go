package notify

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/MunavvarSinan/node-docker-cli/pkg/utils/timer"
	fcolor "github.com/fatih/color"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
)

// Reporter reports the lifecycle of one pipeline step at a time.
type Reporter interface {
	// Start marks a step as running.
	Start(label string)
	// Succeed marks the running step as completed.
	Succeed(label string)
	// Fail marks the running step as failed.
	Fail(label string)
	// Warn marks the running step as failed without aborting the pipeline.
	Warn(label string)
}

const spinnerTickInterval = 100 * time.Millisecond

// clearLine returns the cursor to the start of the line and erases it.
const clearLine = "\r\033[K"

func getSpinnerFrames() []string {
	return []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
}

// Spinner is a Reporter that animates a braille spinner next to the running
// step on interactive terminals. On anything else (pipes, CI logs, test
// buffers) it prints a single activity line per started step.
type Spinner struct {
	writer   io.Writer
	timer    timer.Timer
	isTTY    bool
	interval time.Duration

	mu       sync.Mutex
	label    string
	frameIdx int
	stop     chan struct{}
	group    *errgroup.Group
}

// SpinnerOption configures a Spinner.
type SpinnerOption func(*Spinner)

// WithSpinnerTimer prints stage and total durations after every succeeded step.
func WithSpinnerTimer(tmr timer.Timer) SpinnerOption {
	return func(s *Spinner) {
		s.timer = tmr
	}
}

// WithTTY overrides terminal detection.
func WithTTY(isTTY bool) SpinnerOption {
	return func(s *Spinner) {
		s.isTTY = isTTY
	}
}

// WithTickInterval sets the delay between animation frames.
func WithTickInterval(interval time.Duration) SpinnerOption {
	return func(s *Spinner) {
		s.interval = interval
	}
}

// NewSpinner creates a Spinner writing to writer (os.Stdout if nil).
func NewSpinner(writer io.Writer, opts ...SpinnerOption) *Spinner {
	if writer == nil {
		writer = os.Stdout
	}

	spinner := &Spinner{
		writer:   writer,
		isTTY:    IsTerminal(writer),
		interval: spinnerTickInterval,
	}

	for _, opt := range opts {
		opt(spinner)
	}

	return spinner
}

// IsTerminal reports whether writer is backed by an interactive terminal.
func IsTerminal(writer io.Writer) bool {
	file, ok := writer.(interface{ Fd() uintptr })
	if !ok {
		return false
	}

	return term.IsTerminal(int(file.Fd()))
}

// Start begins reporting a step. A step that is still running is stopped silently.
func (s *Spinner) Start(label string) {
	s.stopAnimation()

	if s.timer != nil {
		s.timer.NewStage()
	}

	if !s.isTTY {
		Activityf(s.writer, "%s", label)

		return
	}

	s.mu.Lock()
	s.label = label
	s.frameIdx = 0
	s.drawLocked()

	stop := make(chan struct{})
	s.stop = stop
	s.group = &errgroup.Group{}
	s.mu.Unlock()

	s.group.Go(func() error {
		s.animate(stop)

		return nil
	})
}

// Succeed ends the running step with a success message.
func (s *Spinner) Succeed(label string) {
	s.stopAnimation()

	if s.timer != nil {
		SuccessWithTimerf(s.writer, s.timer, "%s", label)

		return
	}

	Successf(s.writer, "%s", label)
}

// Fail ends the running step with an error message.
func (s *Spinner) Fail(label string) {
	s.stopAnimation()
	Errorf(s.writer, "%s", label)
}

// Warn ends the running step with a warning message.
func (s *Spinner) Warn(label string) {
	s.stopAnimation()
	Warningf(s.writer, "%s", label)
}

func (s *Spinner) animate(stop <-chan struct{}) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	frames := getSpinnerFrames()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			s.mu.Lock()
			s.frameIdx = (s.frameIdx + 1) % len(frames)
			s.drawLocked()
			s.mu.Unlock()
		}
	}
}

// drawLocked must be called with s.mu held.
func (s *Spinner) drawLocked() {
	frame := getSpinnerFrames()[s.frameIdx]

	_, err := fmt.Fprint(s.writer, clearLine+fcolor.New(fcolor.FgCyan).Sprintf("%s %s", frame, s.label))
	handleNotifyError(err)
}

func (s *Spinner) stopAnimation() {
	s.mu.Lock()
	stop, group := s.stop, s.group
	s.stop, s.group = nil, nil
	s.mu.Unlock()

	if stop == nil {
		return
	}

	close(stop)
	_ = group.Wait()

	_, err := fmt.Fprint(s.writer, clearLine)
	handleNotifyError(err)
}

var _ Reporter = (*Spinner)(nil)
