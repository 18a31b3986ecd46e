// Package summary shows the results of a finished challenge run.
package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Maradon197/5MinuteChallenge-sub000/internal/lesson"
	"github.com/Maradon197/5MinuteChallenge-sub000/internal/screen"
	"github.com/Maradon197/5MinuteChallenge-sub000/internal/ui/layout"
	"github.com/Maradon197/5MinuteChallenge-sub000/internal/ui/theme"
)

// SummaryScreen displays the final report of a challenge run.
type SummaryScreen struct {
	report    lesson.Report
	challenge *lesson.Challenge
	done      tea.Cmd
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)
var _ screen.EscHandler = (*SummaryScreen)(nil)

// New creates a summary screen. done runs when the screen is dismissed and
// is responsible for unwinding the navigation stack.
func New(report lesson.Report, challenge *lesson.Challenge, done tea.Cmd) *SummaryScreen {
	return &SummaryScreen{report: report, challenge: challenge, done: done}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Results"
}

// HandlesEsc keeps Esc routed here so dismissal always runs done.
func (s *SummaryScreen) HandlesEsc() bool { return true }

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Back to topic"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, s.done
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	r := s.report
	centered := func(style lipgloss.Style, text string) string {
		return style.Width(width).Align(lipgloss.Center).Render(text)
	}

	var b strings.Builder
	b.WriteString("\n")

	if r.ExpiredEarly {
		b.WriteString(centered(lipgloss.NewStyle().Foreground(theme.Error).Bold(true), "Time ran out"))
		b.WriteString("\n")
		b.WriteString(centered(lipgloss.NewStyle().Foreground(theme.TextDim), "No completion bonuses this time."))
	} else {
		b.WriteString(centered(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true), "Challenge complete!"))
	}
	b.WriteString("\n\n")

	b.WriteString(centered(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true),
		fmt.Sprintf("★ %d points", r.TotalScore)))
	b.WriteString("\n\n")

	stats := fmt.Sprintf("Correct: %d/%d        Accuracy: %.0f%%        Best streak: %d",
		r.CorrectAnswers, r.TotalAnswers, r.Accuracy*100, r.MaxStreak)
	b.WriteString(centered(lipgloss.NewStyle().Foreground(theme.Text), stats))
	b.WriteString("\n")

	if r.AccuracyBonus > 0 {
		b.WriteString("\n")
		b.WriteString(centered(lipgloss.NewStyle().Foreground(theme.Success),
			fmt.Sprintf("Accuracy bonus: +%d", r.AccuracyBonus)))
	}
	if r.TimeBonus > 0 {
		b.WriteString("\n")
		b.WriteString(centered(lipgloss.NewStyle().Foreground(theme.Success),
			fmt.Sprintf("Time bonus: +%d", r.TimeBonus)))
	}

	if s.challenge != nil && s.challenge.Attempts > 1 {
		b.WriteString("\n\n")
		b.WriteString(centered(lipgloss.NewStyle().Foreground(theme.TextDim),
			fmt.Sprintf("Personal best: %d (attempt %d)", s.challenge.BestScore, s.challenge.Attempts)))
	}

	b.WriteString("\n\n")
	b.WriteString(centered(lipgloss.NewStyle().Foreground(theme.TextDim), "Press Enter to continue"))
	return b.String()
}
