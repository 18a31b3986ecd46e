// Package content models the heterogeneous content containers that make up
// a five-minute lesson. A container is one unit of lesson content with a
// fixed kind, its own authoring data, and (for exercise kinds) its own
// user-progress state and correctness rule.
package content

// Kind identifies a container variant. The set is closed: the factory, the
// codec, and every render site switch exhaustively over these values.
type Kind string

const (
	KindTitle              Kind = "TITLE"
	KindText               Kind = "TEXT"
	KindMultipleChoiceQuiz Kind = "MULTIPLE_CHOICE_QUIZ"
	KindReverseQuiz        Kind = "REVERSE_QUIZ"
	KindFillInTheGaps      Kind = "FILL_IN_THE_GAPS"
	KindSortingTask        Kind = "SORTING_TASK"
	KindErrorSpotting      Kind = "ERROR_SPOTTING"
	KindWireConnecting     Kind = "WIRE_CONNECTING"
	KindRecap              Kind = "RECAP"
	KindVideo              Kind = "VIDEO"
)

// Container is the common surface of all content variants.
//
// RequiresValidation reports whether the variant carries a correct-answer
// concept. IsCorrect is callable at any time: for answer-requiring variants
// it returns false (never an error) while required user state is absent or
// partial, and for non-evaluated variants (Title, Text, Video, Recap without
// a wrapped container) it always returns false; callers must consult
// RequiresValidation before feeding the result into scoring.
type Container interface {
	ID() int
	Kind() Kind
	RequiresValidation() bool
	IsCorrect() bool
}

// base carries the identity shared by all variants.
type base struct {
	id   int
	kind Kind
}

func (b base) ID() int    { return b.id }
func (b base) Kind() Kind { return b.kind }
