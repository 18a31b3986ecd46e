// Package topic shows one topic's challenge list and launches the player.
package topic

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Maradon197/5MinuteChallenge-sub000/internal/config"
	"github.com/Maradon197/5MinuteChallenge-sub000/internal/lesson"
	"github.com/Maradon197/5MinuteChallenge-sub000/internal/router"
	"github.com/Maradon197/5MinuteChallenge-sub000/internal/screen"
	"github.com/Maradon197/5MinuteChallenge-sub000/internal/screens/player"
	"github.com/Maradon197/5MinuteChallenge-sub000/internal/store"
	"github.com/Maradon197/5MinuteChallenge-sub000/internal/ui/components"
	"github.com/Maradon197/5MinuteChallenge-sub000/internal/ui/layout"
	"github.com/Maradon197/5MinuteChallenge-sub000/internal/ui/theme"
)

// topicLoadedMsg delivers the fully parsed topic.
type topicLoadedMsg struct {
	Topic *lesson.Topic
	Err   error
}

// TopicScreen lists a topic's challenges.
type TopicScreen struct {
	topics  store.TopicRepo
	topicID int64
	cfg     config.Config

	topic  *lesson.Topic
	menu   components.Menu
	errMsg string
}

var _ screen.Screen = (*TopicScreen)(nil)
var _ screen.KeyHintProvider = (*TopicScreen)(nil)

// New creates a topic screen; the topic itself loads asynchronously.
func New(topics store.TopicRepo, topicID int64, cfg config.Config) *TopicScreen {
	return &TopicScreen{topics: topics, topicID: topicID, cfg: cfg}
}

func (t *TopicScreen) Init() tea.Cmd {
	return t.loadTopic()
}

func (t *TopicScreen) Title() string {
	if t.topic != nil {
		return t.topic.Title
	}
	return "Topic"
}

func (t *TopicScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Play"},
		{Key: "Esc", Description: "Back"},
	}
}

func (t *TopicScreen) loadTopic() tea.Cmd {
	return func() tea.Msg {
		topic, err := t.topics.LoadTopic(context.Background(), t.topicID)
		return topicLoadedMsg{Topic: topic, Err: err}
	}
}

func (t *TopicScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case topicLoadedMsg:
		if msg.Err != nil {
			t.errMsg = msg.Err.Error()
			return t, nil
		}
		t.topic = msg.Topic
		t.menu = components.NewMenu(t.buildMenuItems())
		return t, nil

	case player.ChallengeFinishedMsg:
		// Refresh progress after a play-through.
		return t, t.loadTopic()
	}

	var cmd tea.Cmd
	t.menu, cmd = t.menu.Update(msg)
	return t, cmd
}

func (t *TopicScreen) buildMenuItems() []components.MenuItem {
	items := make([]components.MenuItem, 0, len(t.topic.Challenges))
	for i, c := range t.topic.Challenges {
		c := c
		detail := fmt.Sprintf("%d containers", len(c.Containers))
		if c.Attempts > 0 {
			detail = fmt.Sprintf("best %d · %d attempts", c.BestScore, c.Attempts)
		}
		label := fmt.Sprintf("%d. %s", i+1, c.Title)
		if c.Completed {
			label += " ✓"
		}
		items = append(items, components.MenuItem{
			Label:  label,
			Detail: detail,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: player.New(c, t.topics, t.cfg),
					}
				}
			},
		})
	}
	return items
}

func (t *TopicScreen) View(width, height int) string {
	if t.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(fmt.Sprintf("\n\n  Error: %s", t.errMsg))
	}
	if t.topic == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Loading...")
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(t.topic.Title))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d of %d challenges done", t.topic.CompletedCount(), len(t.topic.Challenges))))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, t.menu.View()))
	return b.String()
}
