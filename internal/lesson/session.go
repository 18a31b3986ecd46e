package lesson

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/Maradon197/5MinuteChallenge-sub000/internal/content"
	"github.com/Maradon197/5MinuteChallenge-sub000/internal/scoring"
	"github.com/Maradon197/5MinuteChallenge-sub000/internal/timer"
)

// Phase is the session lifecycle phase for the current container.
type Phase int

const (
	// PhaseAwaitingAnswer means the current container is shown and waiting
	// for user input.
	PhaseAwaitingAnswer Phase = iota

	// PhaseEvaluated means the current container has been submitted and
	// judged; the session is waiting for Advance.
	PhaseEvaluated

	// PhaseComplete means the last container was advanced past (terminal).
	PhaseComplete

	// PhaseExpired means the countdown ran out mid-lesson (terminal).
	PhaseExpired
)

func (p Phase) String() string {
	switch p {
	case PhaseAwaitingAnswer:
		return "awaiting_answer"
	case PhaseEvaluated:
		return "evaluated"
	case PhaseComplete:
		return "complete"
	case PhaseExpired:
		return "expired"
	}
	return "unknown"
}

// Terminal reports whether the phase accepts no further transitions.
func (p Phase) Terminal() bool {
	return p == PhaseComplete || p == PhaseExpired
}

// Config holds the session-level knobs.
type Config struct {
	// MinAnswerTime is the floor applied to measured answer time, so a
	// degenerate near-zero elapsed time cannot distort scoring.
	MinAnswerTime time.Duration
}

// DefaultConfig returns the standard session parameters.
func DefaultConfig() Config {
	return Config{MinAnswerTime: time.Second}
}

var (
	// ErrNoContainers is returned when a session is created over an empty
	// container list.
	ErrNoContainers = errors.New("lesson: no containers")

	// ErrSessionOver is returned for submissions or advances after the
	// session reached a terminal phase.
	ErrSessionOver = errors.New("lesson: session is over")

	// ErrAlreadyEvaluated is returned when Submit is called twice for the
	// same container.
	ErrAlreadyEvaluated = errors.New("lesson: container already evaluated")

	// ErrNotEvaluated is returned when Advance is called on an evaluated
	// variant that has not been submitted yet.
	ErrNotEvaluated = errors.New("lesson: container awaits an answer")
)

// Evaluation is the immediate feedback for one submitted container.
type Evaluation struct {
	// Evaluated is false for pure-content containers, where the submission
	// is just progression and the remaining fields are zero.
	Evaluated bool
	Correct   bool
	Points    int
	Elapsed   time.Duration
}

// Report is the final outcome of a finished session.
type Report struct {
	TotalScore     int
	Accuracy       float64
	MaxStreak      int
	CorrectAnswers int
	TotalAnswers   int
	AccuracyBonus  int
	TimeBonus      int
	ExpiredEarly   bool
}

// Session walks an ordered container list, judging submissions and feeding
// the scoring and timer engines. All methods are synchronous and must be
// called from a single execution context; the host's event loop delivers
// timer ticks and user input serially.
type Session struct {
	id         string
	cfg        Config
	containers []content.Container
	scores     *scoring.Engine
	clock      *timer.Engine

	index   int
	phase   Phase
	shownAt time.Time

	now func() time.Time
}

// NewSession creates a session over containers, wiring the given scoring and
// timer engines. The session does not start the timer; call Start once the
// host is ready to display the first container.
func NewSession(cfg Config, containers []content.Container, scores *scoring.Engine, clock *timer.Engine) (*Session, error) {
	if len(containers) == 0 {
		return nil, ErrNoContainers
	}
	return &Session{
		id:         uuid.NewString(),
		cfg:        cfg,
		containers: containers,
		scores:     scores,
		clock:      clock,
		phase:      PhaseAwaitingAnswer,
		now:        time.Now,
	}, nil
}

// ID returns the unique session id.
func (s *Session) ID() string { return s.id }

// Start begins the lesson: starts the countdown and stamps the first
// container as shown.
func (s *Session) Start() {
	s.clock.Start()
	s.shownAt = s.now()
}

// Current returns the container in play, or nil in a terminal phase.
func (s *Session) Current() content.Container {
	if s.phase.Terminal() {
		return nil
	}
	return s.containers[s.index]
}

// Index returns the zero-based position of the current container.
func (s *Session) Index() int { return s.index }

// Len returns the number of containers in the lesson.
func (s *Session) Len() int { return len(s.containers) }

// Phase returns the current lifecycle phase.
func (s *Session) Phase() Phase { return s.phase }

// Scores exposes the scoring engine for display purposes. Callers must not
// record results through it directly.
func (s *Session) Scores() *scoring.Engine { return s.scores }

// Timer exposes the countdown engine for display purposes.
func (s *Session) Timer() *timer.Engine { return s.clock }

// Submit judges the current container against the user state accumulated
// through its mutation API. For evaluated variants it clamps the elapsed
// time to the configured minimum, checks correctness, records the result,
// and awards bonus time on a correct answer. For pure-content variants the
// submission is plain progression with no scoring.
func (s *Session) Submit() (Evaluation, error) {
	switch s.phase {
	case PhaseComplete, PhaseExpired:
		return Evaluation{}, ErrSessionOver
	case PhaseEvaluated:
		return Evaluation{}, ErrAlreadyEvaluated
	}

	c := s.containers[s.index]
	if !c.RequiresValidation() {
		s.advance()
		return Evaluation{}, nil
	}

	elapsed := s.now().Sub(s.shownAt)
	if elapsed < s.cfg.MinAnswerTime {
		elapsed = s.cfg.MinAnswerTime
	}

	eval := Evaluation{Evaluated: true, Elapsed: elapsed}
	if safeIsCorrect(c) {
		eval.Correct = true
		eval.Points = s.scores.RecordCorrect()
		s.clock.AddBonusTime(s.clock.Config().AnswerBonusSeconds)
	} else {
		s.scores.RecordIncorrect()
	}

	s.phase = PhaseEvaluated
	return eval, nil
}

// Advance moves to the next container, or completes the session when the
// current container is the last. Evaluated variants must be submitted first.
func (s *Session) Advance() error {
	switch s.phase {
	case PhaseComplete, PhaseExpired:
		return ErrSessionOver
	case PhaseAwaitingAnswer:
		if s.containers[s.index].RequiresValidation() {
			return ErrNotEvaluated
		}
	}
	s.advance()
	return nil
}

func (s *Session) advance() {
	if s.index+1 >= len(s.containers) {
		s.phase = PhaseComplete
		s.clock.Stop()
		return
	}
	s.index++
	s.phase = PhaseAwaitingAnswer
	s.shownAt = s.now()
}

// ExpireTimer terminates the session on countdown expiry. Any in-flight
// container state is discarded: no correctness check runs and the answer
// counts are untouched.
func (s *Session) ExpireTimer() {
	if s.phase.Terminal() {
		return
	}
	s.phase = PhaseExpired
}

// Finish produces the final report. Completion bonuses (accuracy, and the
// time bonus when enabled) apply only when the lesson ran to the end; an
// expired session reports raw totals.
func (s *Session) Finish() Report {
	expired := s.phase == PhaseExpired
	if !s.phase.Terminal() {
		// Host abandoned the lesson mid-way; treat as expiry, no bonuses.
		s.phase = PhaseExpired
		expired = true
	}
	s.clock.Stop()

	r := Report{ExpiredEarly: expired}
	if !expired {
		r.AccuracyBonus = s.scores.AccuracyBonus()
		r.TimeBonus = s.scores.TimeBonus(s.clock.Remaining())
	}
	r.TotalScore = s.scores.TotalScore()
	r.Accuracy = s.scores.Accuracy()
	r.MaxStreak = s.scores.MaxStreak()
	r.CorrectAnswers = s.scores.CorrectAnswers()
	r.TotalAnswers = s.scores.TotalAnswers()
	return r
}

// safeIsCorrect shields the session from a panicking correctness check. A
// container that blows up judges as incorrect instead of killing the lesson.
func safeIsCorrect(c content.Container) (correct bool) {
	defer func() {
		if recover() != nil {
			correct = false
		}
	}()
	return c.IsCorrect()
}
