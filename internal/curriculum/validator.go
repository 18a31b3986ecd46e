package curriculum

import (
	"fmt"

	"github.com/Maradon197/5MinuteChallenge-sub000/internal/lesson"
)

// Validator checks a generated topic before it is accepted.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for error messages, e.g. "structural".
	Name() string

	// Validate returns nil when the topic passes.
	Validate(t *lesson.Topic, input GenerateInput) *ValidationError
}

// ValidationError describes why a generated topic was rejected.
type ValidationError struct {
	Validator string
	Message   string
	Retryable bool
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}
