// Package timer implements the lesson countdown: a state machine over
// idle → running ↔ paused → expired/stopped, with bonus-time injection
// capped at the initial allotment.
//
// The engine does not schedule anything itself. The host delivers one Tick
// per elapsed second while the timer is running (the TUI does this from its
// event loop) and may redraw at a finer granularity for smooth display. The
// host must deliver ticks on a single execution context; the engine's mutex
// additionally makes tick processing and Pause/Stop mutually exclusive.
package timer

import (
	"fmt"
	"sync"
)

// State is the timer lifecycle state.
type State int

const (
	StateIdle State = iota
	StateRunning
	StatePaused
	StateExpired
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateExpired:
		return "expired"
	case StateStopped:
		return "stopped"
	}
	return "unknown"
}

// Terminal reports whether the state accepts no further transitions.
func (s State) Terminal() bool {
	return s == StateExpired || s == StateStopped
}

// Config holds the countdown parameters.
type Config struct {
	// InitialSeconds is the starting allotment and the cap for bonus time.
	InitialSeconds int

	// LowTimeSeconds is the threshold below which the timer is critical.
	LowTimeSeconds int

	// WarningSeconds is the threshold below which the timer is in warning.
	WarningSeconds int

	// AnswerBonusSeconds is added for each correct answer.
	AnswerBonusSeconds int
}

// DefaultConfig returns the standard five-minute countdown.
func DefaultConfig() Config {
	return Config{
		InitialSeconds:     300,
		LowTimeSeconds:     30,
		WarningSeconds:     60,
		AnswerBonusSeconds: 10,
	}
}

// Listener receives countdown notifications. Implementations must not call
// back into the engine from within a notification.
type Listener interface {
	// OnTick is delivered once per authoritative second while running,
	// carrying the remaining seconds and the remaining fraction in [0,1].
	OnTick(remaining int, fraction float64)

	// OnTimeOver is delivered instead of OnTick when the countdown reaches
	// zero. The timer is expired and ignores all further operations.
	OnTimeOver()
}

// BonusListener is an optional extension for hosts that pop up bonus-time
// feedback.
type BonusListener interface {
	OnBonusTime(seconds int)
}

// Engine is the countdown state machine.
type Engine struct {
	mu        sync.Mutex
	cfg       Config
	state     State
	remaining int
	listener  Listener
}

// New creates an idle countdown engine. listener may be nil.
func New(cfg Config, listener Listener) *Engine {
	return &Engine{
		cfg:       cfg,
		state:     StateIdle,
		remaining: cfg.InitialSeconds,
		listener:  listener,
	}
}

// Start moves idle or paused to running. No-op when already running or in a
// terminal state.
func (e *Engine) Start() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == StateIdle || e.state == StatePaused {
		e.state = StateRunning
	}
}

// Pause moves running to paused. No-op otherwise. After Pause returns the
// host must stop delivering ticks; any tick delivered anyway is ignored.
func (e *Engine) Pause() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == StateRunning {
		e.state = StatePaused
	}
}

// Stop terminates the countdown (normal lesson completion before expiry).
// Terminal: all further operations, including ticks, are no-ops.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.state.Terminal() {
		e.state = StateStopped
	}
}

// AddBonusTime adds seconds to the remaining time, clamped so remaining
// never exceeds the initial allotment. No-op in terminal states.
func (e *Engine) AddBonusTime(seconds int) {
	e.mu.Lock()
	if e.state.Terminal() || seconds <= 0 {
		e.mu.Unlock()
		return
	}
	e.remaining += seconds
	if e.remaining > e.cfg.InitialSeconds {
		e.remaining = e.cfg.InitialSeconds
	}
	remaining, fraction := e.remaining, e.fractionLocked()
	listener := e.listener
	e.mu.Unlock()

	if listener != nil {
		listener.OnTick(remaining, fraction)
		if bl, ok := listener.(BonusListener); ok {
			bl.OnBonusTime(seconds)
		}
	}
}

// Tick processes one authoritative elapsed second. Ignored unless running.
func (e *Engine) Tick() {
	e.mu.Lock()
	if e.state != StateRunning {
		e.mu.Unlock()
		return
	}

	e.remaining--
	expired := e.remaining <= 0
	if expired {
		e.remaining = 0
		e.state = StateExpired
	}
	remaining, fraction := e.remaining, e.fractionLocked()
	listener := e.listener
	e.mu.Unlock()

	if listener == nil {
		return
	}
	if expired {
		listener.OnTimeOver()
		return
	}
	listener.OnTick(remaining, fraction)
}

// Config returns the engine's configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Remaining returns the remaining whole seconds.
func (e *Engine) Remaining() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.remaining
}

// Fraction returns remaining/initial in [0,1].
func (e *Engine) Fraction() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.fractionLocked()
}

func (e *Engine) fractionLocked() float64 {
	if e.cfg.InitialSeconds <= 0 {
		return 0
	}
	return float64(e.remaining) / float64(e.cfg.InitialSeconds)
}

// State returns the current lifecycle state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// IsCritical reports remaining time below the low-time threshold. Display
// classification only; countdown behavior is unaffected.
func (e *Engine) IsCritical() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.remaining < e.cfg.LowTimeSeconds
}

// IsWarning reports remaining time in the warning band, between the
// low-time and warning thresholds.
func (e *Engine) IsWarning() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.remaining < e.cfg.WarningSeconds && e.remaining >= e.cfg.LowTimeSeconds
}

// Format renders seconds as an M:SS clock string.
func Format(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
