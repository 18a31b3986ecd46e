// Package generate is the "new topic" screen: a subject prompt, then an
// async generation call whose result is saved and handed back to home.
package generate

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Maradon197/5MinuteChallenge-sub000/internal/curriculum"
	"github.com/Maradon197/5MinuteChallenge-sub000/internal/router"
	"github.com/Maradon197/5MinuteChallenge-sub000/internal/screen"
	"github.com/Maradon197/5MinuteChallenge-sub000/internal/store"
	"github.com/Maradon197/5MinuteChallenge-sub000/internal/ui/components"
	"github.com/Maradon197/5MinuteChallenge-sub000/internal/ui/layout"
	"github.com/Maradon197/5MinuteChallenge-sub000/internal/ui/theme"
)

// TopicSavedMsg is delivered to the screen below when generation succeeded
// and the topic is persisted.
type TopicSavedMsg struct {
	TopicID int64
}

// generationDoneMsg is the internal completion signal.
type generationDoneMsg struct {
	TopicID int64
	Err     error
}

// GenerateScreen prompts for a subject and drives topic generation.
type GenerateScreen struct {
	gen    *curriculum.Service
	topics store.TopicRepo

	input      components.TextInput
	generating bool
	errMsg     string
}

var _ screen.Screen = (*GenerateScreen)(nil)
var _ screen.KeyHintProvider = (*GenerateScreen)(nil)

// New creates the generation screen.
func New(gen *curriculum.Service, topics store.TopicRepo) *GenerateScreen {
	return &GenerateScreen{
		gen:    gen,
		topics: topics,
		input:  components.NewTextInput("What do you want to learn about?", 80),
	}
}

func (g *GenerateScreen) Init() tea.Cmd {
	return g.input.Init()
}

func (g *GenerateScreen) Title() string {
	return "New Topic"
}

func (g *GenerateScreen) KeyHints() []layout.KeyHint {
	if g.generating {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Generate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (g *GenerateScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case generationDoneMsg:
		g.generating = false
		if msg.Err != nil {
			g.errMsg = msg.Err.Error()
			return g, nil
		}
		// Hand the result to home and leave. Sequence so the pop lands
		// before the saved message, which home then receives.
		topicID := msg.TopicID
		return g, tea.Sequence(
			func() tea.Msg { return router.PopScreenMsg{} },
			func() tea.Msg { return TopicSavedMsg{TopicID: topicID} },
		)

	case tea.KeyMsg:
		if g.generating {
			return g, nil
		}
		switch msg.String() {
		case "enter":
			subject := strings.TrimSpace(g.input.Value())
			if subject == "" {
				return g, nil
			}
			g.generating = true
			g.errMsg = ""
			return g, g.generateTopic(subject)
		}
	}

	if !g.generating {
		var cmd tea.Cmd
		g.input, cmd = g.input.Update(msg)
		return g, cmd
	}
	return g, nil
}

// generateTopic runs generation and persistence off the UI loop.
func (g *GenerateScreen) generateTopic(subject string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		var prior []string
		if summaries, err := g.topics.ListTopics(ctx); err == nil {
			for _, s := range summaries {
				prior = append(prior, s.Title)
			}
		}

		topic, err := g.gen.GenerateTopic(ctx, curriculum.GenerateInput{
			Subject:     subject,
			PriorTopics: prior,
		})
		if err != nil {
			return generationDoneMsg{Err: err}
		}

		if err := g.topics.SaveTopic(ctx, topic); err != nil {
			return generationDoneMsg{Err: fmt.Errorf("save topic: %w", err)}
		}

		return generationDoneMsg{TopicID: topic.ID}
	}
}

func (g *GenerateScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Generate a new topic"))
	b.WriteString("\n\n")

	if g.generating {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Writing your lesson... this takes a few seconds."))
		return b.String()
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render("Subject: " + g.input.View()))

	if g.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("Generation failed: " + g.errMsg))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Edit the subject and press Enter to retry."))
	}

	return b.String()
}
