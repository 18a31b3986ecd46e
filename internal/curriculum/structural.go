package curriculum

import (
	"fmt"

	"github.com/Maradon197/5MinuteChallenge-sub000/internal/lesson"
)

// StructuralValidator checks that the generated topic has the requested
// shape: a title, non-empty challenges, and containers in every challenge.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(t *lesson.Topic, _ GenerateInput) *ValidationError {
	if t.Title == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "topic title is empty",
			Retryable: true,
		}
	}
	if len(t.Challenges) == 0 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "topic has no challenges",
			Retryable: true,
		}
	}
	for i, c := range t.Challenges {
		if c.Title == "" {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("challenge %d has no title", i+1),
				Retryable: true,
			}
		}
		if len(c.Containers) == 0 {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("challenge %q has no containers", c.Title),
				Retryable: true,
			}
		}
	}
	return nil
}

// InteractionValidator rejects topics where a challenge is pure reading: at
// least one container per challenge must require an answer, or the score and
// timer mechanics never engage.
type InteractionValidator struct{}

func (v *InteractionValidator) Name() string { return "interaction" }

func (v *InteractionValidator) Validate(t *lesson.Topic, _ GenerateInput) *ValidationError {
	for _, c := range t.Challenges {
		evaluated := 0
		for _, container := range c.Containers {
			if container.RequiresValidation() {
				evaluated++
			}
		}
		if evaluated == 0 {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("challenge %q has no answerable containers", c.Title),
				Retryable: true,
			}
		}
	}
	return nil
}
