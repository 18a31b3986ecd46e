// Package player runs one challenge: it walks the container list, collects
// answers, and feeds the scoring and countdown engines.
package player

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/Maradon197/5MinuteChallenge-sub000/internal/config"
	"github.com/Maradon197/5MinuteChallenge-sub000/internal/content"
	"github.com/Maradon197/5MinuteChallenge-sub000/internal/lesson"
	"github.com/Maradon197/5MinuteChallenge-sub000/internal/router"
	"github.com/Maradon197/5MinuteChallenge-sub000/internal/scoring"
	"github.com/Maradon197/5MinuteChallenge-sub000/internal/screen"
	"github.com/Maradon197/5MinuteChallenge-sub000/internal/screens/summary"
	"github.com/Maradon197/5MinuteChallenge-sub000/internal/store"
	"github.com/Maradon197/5MinuteChallenge-sub000/internal/timer"
	"github.com/Maradon197/5MinuteChallenge-sub000/internal/ui/layout"
)

const uiTickInterval = 100 * time.Millisecond

// clockSink receives countdown notifications. The engine delivers them
// synchronously from Tick/AddBonusTime calls on the UI loop, so plain
// fields are safe.
type clockSink struct {
	expired bool
	bonus   int
}

func (c *clockSink) OnTick(remaining int, fraction float64) {}
func (c *clockSink) OnTimeOver()                            { c.expired = true }
func (c *clockSink) OnBonusTime(seconds int)                { c.bonus += seconds }

// PlayerScreen plays through a single challenge.
type PlayerScreen struct {
	challenge *lesson.Challenge
	topics    store.TopicRepo
	cfg       config.Config

	sess  *lesson.Session
	clock *timer.Engine
	sink  *clockSink

	cursor  int
	grabbed int // sorting: picked-up position, -1 when nothing is held

	feedback     *lesson.Evaluation
	bonusAwarded int
	showingQuit  bool
	timeOver     bool
	finished     bool
	lastTick     time.Time
	errMsg       string
}

var _ screen.Screen = (*PlayerScreen)(nil)
var _ screen.KeyHintProvider = (*PlayerScreen)(nil)
var _ screen.StatusProvider = (*PlayerScreen)(nil)
var _ screen.EscHandler = (*PlayerScreen)(nil)

// New creates a player over the challenge's containers with fresh scoring
// and countdown engines.
func New(challenge *lesson.Challenge, topics store.TopicRepo, cfg config.Config) *PlayerScreen {
	p := &PlayerScreen{
		challenge: challenge,
		topics:    topics,
		cfg:       cfg,
		grabbed:   -1,
		sink:      &clockSink{},
	}
	p.clock = timer.New(cfg.TimerEngineConfig(), p.sink)

	sess, err := lesson.NewSession(cfg.SessionConfig(), challenge.Containers, scoring.New(cfg.ScoringEngineConfig()), p.clock)
	if err != nil {
		p.errMsg = err.Error()
		return p
	}
	p.sess = sess
	return p
}

func (p *PlayerScreen) Init() tea.Cmd {
	if p.sess == nil {
		return nil
	}
	p.sess.Start()
	p.lastTick = time.Now()
	return p.tick()
}

func (p *PlayerScreen) Title() string {
	return p.challenge.Title
}

// HandlesEsc keeps Esc for the quit confirmation while the lesson runs.
func (p *PlayerScreen) HandlesEsc() bool {
	return !p.finished && p.errMsg == ""
}

// Status feeds the header score and clock.
func (p *PlayerScreen) Status() layout.HeaderStatus {
	if p.sess == nil {
		return layout.HeaderStatus{}
	}
	return layout.HeaderStatus{
		Score:         p.sess.Scores().TotalScore(),
		Clock:         timer.Format(p.clock.Remaining()),
		ClockCritical: p.clock.IsCritical(),
		ClockWarning:  p.clock.IsWarning(),
	}
}

func (p *PlayerScreen) KeyHints() []layout.KeyHint {
	switch {
	case p.errMsg != "":
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	case p.timeOver:
		return []layout.KeyHint{{Key: "any key", Description: "See results"}}
	case p.showingQuit:
		return []layout.KeyHint{
			{Key: "Y", Description: "Quit lesson"},
			{Key: "N", Description: "Keep going"},
		}
	case p.feedback != nil:
		return []layout.KeyHint{{Key: "any key", Description: "Continue"}}
	}

	hints := containerKeyHints(interactive(p.current()))
	hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Quit"})
	return hints
}

func (p *PlayerScreen) tick() tea.Cmd {
	return tea.Tick(uiTickInterval, func(t time.Time) tea.Msg {
		return uiTickMsg(t)
	})
}

func (p *PlayerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case uiTickMsg:
		return p.handleTick()
	case resultSavedMsg:
		// Persistence is best effort; the in-memory challenge already holds
		// the result.
		return p, nil
	case tea.KeyMsg:
		return p.handleKey(msg)
	}
	return p, nil
}

// handleTick advances the authoritative countdown by one engine tick per
// elapsed wall-clock second, then reschedules the redraw tick.
func (p *PlayerScreen) handleTick() (screen.Screen, tea.Cmd) {
	if p.finished || p.errMsg != "" {
		return p, nil
	}

	if p.clock.State() == timer.StateRunning {
		for time.Since(p.lastTick) >= time.Second {
			p.lastTick = p.lastTick.Add(time.Second)
			p.clock.Tick()
		}
		if p.sink.expired && !p.timeOver {
			p.timeOver = true
			p.sess.ExpireTimer()
		}
	}

	return p, p.tick()
}

func (p *PlayerScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if p.errMsg != "" {
		return p, popCmd()
	}

	if p.timeOver {
		return p, p.finishLesson()
	}

	if p.showingQuit {
		switch key {
		case "y", "Y":
			p.finished = true
			// Abandoned runs stop the clock but leave no attempt behind.
			p.sess.Finish()
			id := p.challenge.ID
			return p, tea.Sequence(popCmd(), func() tea.Msg {
				return ChallengeFinishedMsg{ChallengeID: id}
			})
		case "n", "N", "esc":
			p.showingQuit = false
			p.lastTick = time.Now()
			p.clock.Start()
		}
		return p, nil
	}

	if p.feedback != nil {
		p.feedback = nil
		p.bonusAwarded = 0
		if err := p.sess.Advance(); err != nil {
			return p, nil
		}
		if p.sess.Phase() == lesson.PhaseComplete {
			return p, p.finishLesson()
		}
		p.resetContainerState()
		return p, nil
	}

	switch key {
	case "esc":
		p.showingQuit = true
		p.clock.Pause()
		return p, nil
	case "enter":
		return p.submit()
	}

	p.handleContainerKey(key)
	return p, nil
}

// submit judges the current container once its answer is complete.
func (p *PlayerScreen) submit() (screen.Screen, tea.Cmd) {
	if !answerReady(interactive(p.current())) {
		return p, nil
	}

	bonusBefore := p.sink.bonus
	eval, err := p.sess.Submit()
	if err != nil {
		return p, nil
	}

	if !eval.Evaluated {
		// Pure content: the submission already advanced the session.
		if p.sess.Phase() == lesson.PhaseComplete {
			return p, p.finishLesson()
		}
		p.resetContainerState()
		return p, nil
	}

	e := eval
	p.feedback = &e
	p.bonusAwarded = p.sink.bonus - bonusBefore
	return p, nil
}

// finishLesson closes out the run, records the attempt, and swaps in the
// summary screen.
func (p *PlayerScreen) finishLesson() tea.Cmd {
	p.finished = true
	report := p.sess.Finish()
	p.challenge.RecordResult(report.TotalScore, report.ExpiredEarly)

	ch := p.challenge
	save := func() tea.Msg {
		err := p.topics.RecordResult(context.Background(), ch)
		return resultSavedMsg{Err: err}
	}

	done := tea.Sequence(popCmd(), func() tea.Msg {
		return ChallengeFinishedMsg{ChallengeID: ch.ID}
	})
	show := func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(report, ch, done)}
	}

	return tea.Batch(save, show)
}

func (p *PlayerScreen) current() content.Container {
	if p.sess == nil {
		return nil
	}
	return p.sess.Current()
}

func (p *PlayerScreen) resetContainerState() {
	p.cursor = 0
	p.grabbed = -1
}

// handleContainerKey routes navigation and mutation keys to the container
// in play.
func (p *PlayerScreen) handleContainerKey(key string) {
	switch c := interactive(p.current()).(type) {
	case *content.MultipleChoiceQuiz:
		n := len(c.Options())
		switch key {
		case "up", "k":
			p.moveCursor(-1, n)
		case "down", "j":
			p.moveCursor(1, n)
		case "space":
			if containsInt(c.SelectedIndices(), p.cursor) {
				c.DeselectOption(p.cursor)
			} else {
				_ = c.SelectOption(p.cursor)
			}
		}

	case *content.ReverseQuiz:
		n := len(c.QuestionOptions())
		switch key {
		case "up", "k":
			p.moveCursor(-1, n)
		case "down", "j":
			p.moveCursor(1, n)
		case "space":
			_ = c.Select(p.cursor)
		}

	case *content.ErrorSpotting:
		n := len(c.Items())
		switch key {
		case "up", "k":
			p.moveCursor(-1, n)
		case "down", "j":
			p.moveCursor(1, n)
		case "space":
			_ = c.Select(p.cursor)
		}

	case *content.FillInTheGaps:
		n := len(c.WordOptions())
		switch key {
		case "left", "h":
			p.moveCursor(-1, n)
		case "right", "l":
			p.moveCursor(1, n)
		case "space":
			_ = c.FillGapAt(p.cursor)
		case "backspace":
			_ = c.RemoveLastWord()
		}

	case *content.SortingTask:
		n := len(c.CurrentOrder())
		switch key {
		case "up", "k":
			p.moveCursor(-1, n)
		case "down", "j":
			p.moveCursor(1, n)
		case "space":
			if p.grabbed < 0 {
				p.grabbed = p.cursor
			} else {
				_ = c.Move(p.grabbed, p.cursor)
				p.grabbed = -1
			}
		}

	case *content.WireConnecting:
		n := len(c.LeftItems())
		switch key {
		case "up", "k":
			p.moveCursor(-1, n)
		case "down", "j":
			p.moveCursor(1, n)
		case "backspace":
			c.Disconnect(p.cursor)
		default:
			if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
				right := int(key[0] - '1')
				if right < len(c.RightItems()) {
					_ = c.Connect(p.cursor, right)
				}
			}
		}
	}
}

func (p *PlayerScreen) moveCursor(delta, n int) {
	next := p.cursor + delta
	if next >= 0 && next < n {
		p.cursor = next
	}
}

// interactive unwraps a recap so keys and checks target the inner
// container.
func interactive(c content.Container) content.Container {
	if r, ok := c.(*content.Recap); ok && r.Wrapped() != nil {
		return r.Wrapped()
	}
	return c
}

// answerReady reports whether the container holds a submittable answer.
func answerReady(c content.Container) bool {
	switch c := c.(type) {
	case *content.MultipleChoiceQuiz:
		return len(c.SelectedIndices()) > 0
	case *content.ReverseQuiz:
		return c.SelectedIndex() >= 0
	case *content.ErrorSpotting:
		return c.SelectedIndex() >= 0
	case *content.FillInTheGaps:
		return c.AllGapsFilled()
	case *content.WireConnecting:
		return len(c.Connections()) == len(c.LeftItems())
	}
	return true
}

func containerKeyHints(c content.Container) []layout.KeyHint {
	switch c.(type) {
	case *content.MultipleChoiceQuiz, *content.ReverseQuiz, *content.ErrorSpotting:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Space", Description: "Select"},
			{Key: "Enter", Description: "Submit"},
		}
	case *content.FillInTheGaps:
		return []layout.KeyHint{
			{Key: "←→", Description: "Pick word"},
			{Key: "Space", Description: "Fill gap"},
			{Key: "Backspace", Description: "Undo"},
			{Key: "Enter", Description: "Submit"},
		}
	case *content.SortingTask:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Space", Description: "Grab/drop"},
			{Key: "Enter", Description: "Submit"},
		}
	case *content.WireConnecting:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "1-9", Description: "Connect"},
			{Key: "Backspace", Description: "Clear"},
			{Key: "Enter", Description: "Submit"},
		}
	}
	return []layout.KeyHint{{Key: "Enter", Description: "Continue"}}
}

func containsInt(xs []int, x int) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}

func popCmd() tea.Cmd {
	return func() tea.Msg { return router.PopScreenMsg{} }
}
