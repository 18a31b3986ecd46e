package content

// MultipleChoiceQuiz is a question with a fixed option list and one or more
// correct options. When multiple answers are not allowed, selecting a new
// option replaces any prior selection.
type MultipleChoiceQuiz struct {
	base
	question       string
	options        []string
	correctIndices []int
	allowMultiple  bool
	explanation    string

	selected []int // insertion order, set semantics
}

// NewMultipleChoiceQuiz creates a multiple choice quiz container.
func NewMultipleChoiceQuiz(id int, question string, options []string, correctIndices []int, allowMultiple bool) *MultipleChoiceQuiz {
	return &MultipleChoiceQuiz{
		base:           base{id: id, kind: KindMultipleChoiceQuiz},
		question:       question,
		options:        options,
		correctIndices: correctIndices,
		allowMultiple:  allowMultiple,
	}
}

func (q *MultipleChoiceQuiz) Question() string       { return q.question }
func (q *MultipleChoiceQuiz) Options() []string      { return q.options }
func (q *MultipleChoiceQuiz) CorrectIndices() []int  { return q.correctIndices }
func (q *MultipleChoiceQuiz) AllowMultiple() bool    { return q.allowMultiple }
func (q *MultipleChoiceQuiz) Explanation() string    { return q.explanation }
func (q *MultipleChoiceQuiz) SelectedIndices() []int { return q.selected }

// SetExplanation attaches optional explanation text shown after answering.
func (q *MultipleChoiceQuiz) SetExplanation(text string) { q.explanation = text }

// SelectOption adds index to the selection. Under single-select semantics the
// prior selection is cleared first; selecting an already-selected option is a
// no-op.
func (q *MultipleChoiceQuiz) SelectOption(index int) error {
	if index < 0 || index >= len(q.options) {
		return invalidIndex("select option", index, len(q.options))
	}
	if !q.allowMultiple {
		q.selected = q.selected[:0]
	}
	for _, s := range q.selected {
		if s == index {
			return nil
		}
	}
	q.selected = append(q.selected, index)
	return nil
}

// DeselectOption removes index from the selection if present.
func (q *MultipleChoiceQuiz) DeselectOption(index int) {
	for i, s := range q.selected {
		if s == index {
			q.selected = append(q.selected[:i], q.selected[i+1:]...)
			return
		}
	}
}

func (q *MultipleChoiceQuiz) RequiresValidation() bool { return true }

// IsCorrect reports whether the selected set equals the correct set exactly.
// Selection order is irrelevant.
func (q *MultipleChoiceQuiz) IsCorrect() bool {
	if len(q.selected) != len(q.correctIndices) {
		return false
	}
	correct := make(map[int]bool, len(q.correctIndices))
	for _, c := range q.correctIndices {
		correct[c] = true
	}
	for _, s := range q.selected {
		if !correct[s] {
			return false
		}
	}
	return true
}
