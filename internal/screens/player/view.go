package player

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/Maradon197/5MinuteChallenge-sub000/internal/content"
	"github.com/Maradon197/5MinuteChallenge-sub000/internal/timer"
	"github.com/Maradon197/5MinuteChallenge-sub000/internal/ui/components"
	"github.com/Maradon197/5MinuteChallenge-sub000/internal/ui/theme"
)

func (p *PlayerScreen) View(width, height int) string {
	if p.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(fmt.Sprintf("\n\n  Error: %s", p.errMsg))
	}
	if p.finished {
		// One frame at most before the summary replaces this screen.
		return ""
	}

	if p.showingQuit {
		return p.renderQuitConfirm(width)
	}
	if p.timeOver {
		return p.renderTimeOver(width)
	}
	if p.feedback != nil {
		return p.renderFeedback(width)
	}

	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Step %d of %d", p.sess.Index()+1, p.sess.Len())))
	b.WriteString("\n\n")

	body := renderContainer(p.current(), p.cursor, p.grabbed)
	card := theme.Card.Width(min(width-8, 72)).Render(body)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))
	b.WriteString("\n\n")

	bar := components.ProgressBar{
		Label:    timer.Format(p.clock.Remaining()),
		Percent:  p.clock.Fraction(),
		Width:    min(width-8, 60),
		Critical: p.clock.IsCritical(),
		Warning:  p.clock.IsWarning(),
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))

	return b.String()
}

func (p *PlayerScreen) renderQuitConfirm(width int) string {
	body := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Quit this lesson?") +
		"\n\n" +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Progress in this run will be lost.") +
		"\n\n" +
		lipgloss.NewStyle().Foreground(theme.Error).Render("[Y] Quit") +
		"    " +
		lipgloss.NewStyle().Foreground(theme.Success).Render("[N] Keep going")

	return "\n\n\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Card.Render(body))
}

func (p *PlayerScreen) renderTimeOver(width int) string {
	body := lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render("Time's up!") +
		"\n\n" +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Press any key to see your results.")

	return "\n\n\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Card.Render(body))
}

func (p *PlayerScreen) renderFeedback(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")

	if p.feedback.Correct {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render(theme.Correct.Render("✓ Correct!")))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render(fmt.Sprintf("+%d points", p.feedback.Points)))
		if p.bonusAwarded > 0 {
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.Secondary).
				Render(fmt.Sprintf("+%d seconds", p.bonusAwarded)))
		}
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render(theme.Incorrect.Render("✗ Not quite")))
	}

	if expl := explanationOf(interactive(p.current())); expl != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(expl))
	}

	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press any key to continue"))

	return b.String()
}

func explanationOf(c content.Container) string {
	switch c := c.(type) {
	case *content.MultipleChoiceQuiz:
		return c.Explanation()
	case *content.ReverseQuiz:
		return c.Explanation()
	case *content.ErrorSpotting:
		return c.Explanation()
	}
	return ""
}

// renderContainer renders the body of the container in play.
func renderContainer(c content.Container, cursor, grabbed int) string {
	switch c := c.(type) {
	case *content.Title:
		return lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(c.Title())

	case *content.Text:
		return lipgloss.NewStyle().Foreground(theme.Text).Render(c.Text())

	case *content.Video:
		return lipgloss.NewStyle().Foreground(theme.TextDim).Render("Watch: ") +
			lipgloss.NewStyle().Foreground(theme.Secondary).Underline(true).Render(c.URL())

	case *content.MultipleChoiceQuiz:
		return renderMultiChoice(c, cursor)

	case *content.ReverseQuiz:
		return renderReverseQuiz(c, cursor)

	case *content.ErrorSpotting:
		return renderErrorSpotting(c, cursor)

	case *content.FillInTheGaps:
		return renderGaps(c, cursor)

	case *content.SortingTask:
		return renderSorting(c, cursor, grabbed)

	case *content.WireConnecting:
		return renderWire(c, cursor)

	case *content.Recap:
		head := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("Recap: " + c.Title())
		if c.Wrapped() == nil {
			return head
		}
		return head + "\n\n" + renderContainer(c.Wrapped(), cursor, grabbed)
	}
	return ""
}

func renderMultiChoice(q *content.MultipleChoiceQuiz, cursor int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(q.Question()))
	b.WriteString("\n\n")

	selected := q.SelectedIndices()
	for i, opt := range q.Options() {
		mark := "[ ]"
		if containsInt(selected, i) {
			mark = "[x]"
		}
		b.WriteString(renderRow(fmt.Sprintf("%s %s", mark, opt), i == cursor))
		b.WriteString("\n")
	}

	if q.AllowMultiple() {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("Select all that apply."))
	}
	return b.String()
}

func renderReverseQuiz(q *content.ReverseQuiz, cursor int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("The answer is:"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(q.Answer()))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("Which question does it answer?"))
	b.WriteString("\n\n")

	for i, opt := range q.QuestionOptions() {
		mark := "( )"
		if q.SelectedIndex() == i {
			mark = "(•)"
		}
		b.WriteString(renderRow(fmt.Sprintf("%s %s", mark, opt), i == cursor))
		b.WriteString("\n")
	}
	return b.String()
}

func renderErrorSpotting(e *content.ErrorSpotting, cursor int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(e.Instructions()))
	b.WriteString("\n\n")

	for i, item := range e.Items() {
		mark := "( )"
		if e.SelectedIndex() == i {
			mark = "(•)"
		}
		b.WriteString(renderRow(fmt.Sprintf("%s %s", mark, item), i == cursor))
		b.WriteString("\n")
	}
	return b.String()
}

func renderGaps(f *content.FillInTheGaps, cursor int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(f.DisplayText("____")))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("Filled %d of %d gaps", len(f.FilledWords()), f.GapCount())))
	b.WriteString("\n\n")

	chips := make([]string, 0, len(f.WordOptions()))
	for i, word := range f.WordOptions() {
		style := theme.Unselected
		if i == cursor {
			style = theme.Selected
		}
		chips = append(chips, style.Render("["+word+"]"))
	}
	b.WriteString(strings.Join(chips, " "))
	return b.String()
}

func renderSorting(s *content.SortingTask, cursor, grabbed int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(s.Instructions()))
	b.WriteString("\n\n")

	for i, item := range s.CurrentOrder() {
		prefix := "  "
		if i == grabbed {
			prefix = lipgloss.NewStyle().Foreground(theme.Accent).Render("◆ ")
		}
		b.WriteString(renderRow(fmt.Sprintf("%s%d. %s", prefix, i+1, item), i == cursor))
		b.WriteString("\n")
	}

	if grabbed >= 0 {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("Pick a new position and press Space to drop."))
	}
	return b.String()
}

func renderWire(w *content.WireConnecting, cursor int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(w.Instructions()))
	b.WriteString("\n\n")

	right := w.RightItems()
	for i, item := range w.LeftItems() {
		row := item
		if j := w.Connection(i); j >= 0 && j < len(right) {
			row += lipgloss.NewStyle().Foreground(theme.Secondary).Render(
				fmt.Sprintf("  ── %d. %s", j+1, right[j]))
		}
		b.WriteString(renderRow(row, i == cursor))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	for j, item := range right {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(
			fmt.Sprintf("  %d. %s", j+1, item)))
		b.WriteString("\n")
	}
	return b.String()
}

func renderRow(text string, active bool) string {
	if active {
		return theme.Selected.Render("❯ " + text)
	}
	return theme.Unselected.Render("  " + text)
}
