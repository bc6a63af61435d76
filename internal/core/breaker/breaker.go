package breaker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// State is the breaker's gate position.
type State int

const (
	StateClosed State = iota
	StateOpen
	StateHalfOpen
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half-open"
	}
	return "unknown"
}

// ErrOpen is returned when the breaker short-circuits a call.
var ErrOpen = errors.New("circuit breaker is open")

// Classifier decides whether an error from the protected call counts as a
// failure for breaker statistics. Caller errors (downstream 4xx) must
// return false so they never trip the breaker.
type Classifier func(err error) bool

// Config parameterizes the breaker state machine.
type Config struct {
	// VolumeThreshold is the minimum number of calls in the rolling window
	// before the error percentage is evaluated.
	VolumeThreshold int
	// ErrorThresholdPercent opens the breaker when the window error
	// percentage reaches it and volume is met.
	ErrorThresholdPercent int
	// Window is the rolling window over which calls are counted.
	Window time.Duration
	// ResetTimeout is how long the breaker stays open before allowing a
	// single half-open probe.
	ResetTimeout time.Duration
	// CallTimeout bounds each protected call; exceeding it cancels the
	// in-flight call and counts as a failure.
	CallTimeout time.Duration
	// IsFailure classifies errors. Defaults to "any non-nil error".
	IsFailure Classifier
}

// Breaker is an explicit closed/open/half-open circuit breaker. All state
// transitions are logged; the breaker never alters business results beyond
// gating the call.
type Breaker struct {
	cfg  Config
	name string
	log  zerolog.Logger

	mu          sync.Mutex
	state       State
	windowStart time.Time
	requests    int
	failures    int
	openedAt    time.Time
	probing     bool
}

// New creates a breaker in the closed state.
func New(name string, cfg Config, log zerolog.Logger) *Breaker {
	if cfg.IsFailure == nil {
		cfg.IsFailure = func(err error) bool { return err != nil }
	}
	return &Breaker{
		cfg:         cfg,
		name:        name,
		log:         log,
		state:       StateClosed,
		windowStart: time.Now(),
	}
}

// State returns the current gate position.
func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// Execute runs fn under the breaker. When the breaker is open the call is
// short-circuited with ErrOpen. The call runs with the configured timeout;
// the original error from fn is always returned to the caller.
func (b *Breaker) Execute(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := b.acquire(); err != nil {
		return err
	}

	callCtx := ctx
	if b.cfg.CallTimeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, b.cfg.CallTimeout)
		defer cancel()
	}

	err := fn(callCtx)
	b.record(err)
	return err
}

// acquire decides whether a call may pass, transitioning open -> half-open
// after the reset timeout.
func (b *Breaker) acquire() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case StateOpen:
		if time.Since(b.openedAt) < b.cfg.ResetTimeout {
			return ErrOpen
		}
		b.transition(StateHalfOpen)
		b.probing = true
		return nil
	case StateHalfOpen:
		if b.probing {
			// Single trial call allowed at a time
			return ErrOpen
		}
		b.probing = true
		return nil
	default:
		return nil
	}
}

// record folds the call outcome into the window counters and applies
// state transitions.
func (b *Breaker) record(err error) {
	failed := b.cfg.IsFailure(err)

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == StateHalfOpen {
		b.probing = false
		if failed {
			b.openedAt = time.Now()
			b.transition(StateOpen)
		} else {
			b.resetWindow()
			b.transition(StateClosed)
		}
		return
	}

	if b.cfg.Window > 0 && time.Since(b.windowStart) > b.cfg.Window {
		b.resetWindow()
	}

	b.requests++
	if failed {
		b.failures++
	}

	if b.requests >= b.cfg.VolumeThreshold && b.errorPercent() >= b.cfg.ErrorThresholdPercent {
		b.openedAt = time.Now()
		b.transition(StateOpen)
	}

	b.log.Debug().
		Str("breaker", b.name).
		Bool("failure", failed).
		Int("requests", b.requests).
		Int("failures", b.failures).
		Msg("breaker call recorded")
}

func (b *Breaker) errorPercent() int {
	if b.requests == 0 {
		return 0
	}
	return b.failures * 100 / b.requests
}

func (b *Breaker) resetWindow() {
	b.windowStart = time.Now()
	b.requests = 0
	b.failures = 0
}

// transition must be called with the lock held.
func (b *Breaker) transition(to State) {
	if b.state == to {
		return
	}
	b.log.Warn().
		Str("breaker", b.name).
		Str("from", b.state.String()).
		Str("to", to.String()).
		Msg("breaker state transition")
	b.state = to
}
