package content

// ReverseQuiz presents an answer and asks the learner to pick the question
// it answers from an option list.
type ReverseQuiz struct {
	base
	answer          string
	questionOptions []string
	correctIndex    int
	explanation     string

	selected int
}

// NewReverseQuiz creates a reverse quiz container.
func NewReverseQuiz(id int, answer string, questionOptions []string, correctIndex int) *ReverseQuiz {
	return &ReverseQuiz{
		base:            base{id: id, kind: KindReverseQuiz},
		answer:          answer,
		questionOptions: questionOptions,
		correctIndex:    correctIndex,
		selected:        -1,
	}
}

func (q *ReverseQuiz) Answer() string            { return q.answer }
func (q *ReverseQuiz) QuestionOptions() []string { return q.questionOptions }
func (q *ReverseQuiz) CorrectIndex() int         { return q.correctIndex }
func (q *ReverseQuiz) Explanation() string       { return q.explanation }

// SelectedIndex returns the chosen question index, or -1 before any choice.
func (q *ReverseQuiz) SelectedIndex() int { return q.selected }

// SetExplanation attaches optional explanation text shown after answering.
func (q *ReverseQuiz) SetExplanation(text string) { q.explanation = text }

// Select records the learner's chosen question option.
func (q *ReverseQuiz) Select(index int) error {
	if index < 0 || index >= len(q.questionOptions) {
		return invalidIndex("select question", index, len(q.questionOptions))
	}
	q.selected = index
	return nil
}

func (q *ReverseQuiz) RequiresValidation() bool { return true }

func (q *ReverseQuiz) IsCorrect() bool {
	return q.selected >= 0 && q.selected == q.correctIndex
}
