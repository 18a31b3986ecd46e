package curriculum

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a lesson author creating five-minute micro-lessons for curious adults.

Rules:
- Build a topic as a sequence of short challenges. Each challenge teaches one idea and then tests it.
- Open each challenge with a TITLE container, follow with one or two TEXT containers that teach, then test with interactive containers.
- Mix the interactive kinds: MULTIPLE_CHOICE_QUIZ, REVERSE_QUIZ, FILL_IN_THE_GAPS, SORTING_TASK, ERROR_SPOTTING, WIRE_CONNECTING. Do not use the same kind twice in a row.
- Every fact you test must have been taught by an earlier TEXT container in the same challenge.
- For FILL_IN_THE_GAPS, write the template with one {} marker per blank and include every correct word in wordOptions along with 2-3 plausible distractors.
- For MULTIPLE_CHOICE_QUIZ, give 3-4 options with exactly the indices in correctAnswerIndices correct. Set allowMultipleAnswers only when more than one index is correct.
- For ERROR_SPOTTING, exactly one item contains the error.
- For WIRE_CONNECTING, correctMatches must map every left index to a distinct right index.
- Keep all indices zero-based. Keep text plain ASCII, no markdown.
- Do not repeat any topic from the "already covered" list.`

// buildUserMessage constructs the generation request from the input and
// config limits.
func buildUserMessage(input GenerateInput, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Subject: %s\n", input.Subject)
	if input.Audience != "" {
		fmt.Fprintf(&b, "Audience: %s\n", input.Audience)
	}
	fmt.Fprintf(&b, "Challenges: %d\n", cfg.ChallengeCount)
	fmt.Fprintf(&b, "Containers per challenge: about %d\n", cfg.ContainersPerChallenge)

	if input.Notes != "" {
		b.WriteString("\nExtra guidance:\n")
		b.WriteString(input.Notes)
		b.WriteString("\n")
	}

	b.WriteString("\nAlready covered topics:\n")
	b.WriteString(buildPriorTopics(input.PriorTopics, cfg.MaxPriorTopics))

	return b.String()
}

// buildPriorTopics formats existing topic titles for deduplication,
// respecting the max limit.
func buildPriorTopics(topics []string, max int) string {
	if len(topics) == 0 {
		return "None"
	}
	if max > 0 && len(topics) > max {
		topics = topics[len(topics)-max:]
	}

	var b strings.Builder
	for i, t := range topics {
		fmt.Fprintf(&b, "%d. %s\n", i+1, t)
	}
	return strings.TrimRight(b.String(), "\n")
}
