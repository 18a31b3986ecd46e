// Package home is the entry screen: the topic library plus actions to
// generate new topics.
package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Maradon197/5MinuteChallenge-sub000/internal/config"
	"github.com/Maradon197/5MinuteChallenge-sub000/internal/curriculum"
	"github.com/Maradon197/5MinuteChallenge-sub000/internal/router"
	"github.com/Maradon197/5MinuteChallenge-sub000/internal/screen"
	"github.com/Maradon197/5MinuteChallenge-sub000/internal/screens/generate"
	"github.com/Maradon197/5MinuteChallenge-sub000/internal/screens/topic"
	"github.com/Maradon197/5MinuteChallenge-sub000/internal/store"
	"github.com/Maradon197/5MinuteChallenge-sub000/internal/ui/components"
	"github.com/Maradon197/5MinuteChallenge-sub000/internal/ui/layout"
	"github.com/Maradon197/5MinuteChallenge-sub000/internal/ui/theme"
)

// topicsLoadedMsg delivers the topic list.
type topicsLoadedMsg struct {
	Summaries []store.TopicSummary
	Err       error
}

// HomeScreen is the main screen of the application.
type HomeScreen struct {
	topics store.TopicRepo
	gen    *curriculum.Service
	cfg    config.Config

	menu      components.Menu
	summaries []store.TopicSummary
	errMsg    string
	loaded    bool
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates the home screen.
func New(topics store.TopicRepo, gen *curriculum.Service, cfg config.Config) *HomeScreen {
	return &HomeScreen{topics: topics, gen: gen, cfg: cfg}
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.loadTopics()
}

func (h *HomeScreen) Title() string {
	return "Topics"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "r", Description: "Refresh"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) loadTopics() tea.Cmd {
	return func() tea.Msg {
		summaries, err := h.topics.ListTopics(context.Background())
		return topicsLoadedMsg{Summaries: summaries, Err: err}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case topicsLoadedMsg:
		if msg.Err != nil {
			h.errMsg = msg.Err.Error()
			return h, nil
		}
		h.errMsg = ""
		h.loaded = true
		h.summaries = msg.Summaries
		h.menu = components.NewMenu(h.buildMenuItems())
		return h, nil

	case generate.TopicSavedMsg:
		// A freshly generated topic arrived; reload and jump straight in.
		return h, tea.Batch(
			h.loadTopics(),
			func() tea.Msg {
				return router.PushScreenMsg{
					Screen: topic.New(h.topics, msg.TopicID, h.cfg),
				}
			},
		)

	case tea.KeyMsg:
		if msg.String() == "r" {
			return h, h.loadTopics()
		}
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) buildMenuItems() []components.MenuItem {
	items := make([]components.MenuItem, 0, len(h.summaries)+2)

	for _, s := range h.summaries {
		s := s
		items = append(items, components.MenuItem{
			Label:  s.Title,
			Detail: fmt.Sprintf("%d/%d done", s.Completed, s.Challenges),
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: topic.New(h.topics, s.ID, h.cfg),
					}
				}
			},
		})
	}

	items = append(items, components.MenuItem{
		Label:    "+ New topic",
		Disabled: h.gen == nil,
		Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: generate.New(h.gen, h.topics),
				}
			}
		},
	})
	items = append(items, components.MenuItem{
		Label:  "Quit",
		Action: func() tea.Cmd { return tea.Quit },
	})

	return items
}

func (h *HomeScreen) View(width, height int) string {
	if h.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(fmt.Sprintf("\n\n  Error: %s\n\n  Press r to retry.", h.errMsg))
	}
	if !h.loaded {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Loading topics...")
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Pick a topic"))
	b.WriteString("\n\n")

	if len(h.summaries) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("No topics yet. Generate one to get started."))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))
	return b.String()
}
