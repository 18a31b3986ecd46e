package content

// ErrorSpotting lists items of which exactly one is an outlier the learner
// must spot.
type ErrorSpotting struct {
	base
	instructions string
	items        []string
	errorIndex   int
	explanation  string

	selected int
}

// NewErrorSpotting creates an error spotting container.
func NewErrorSpotting(id int, instructions string, items []string, errorIndex int) *ErrorSpotting {
	return &ErrorSpotting{
		base:         base{id: id, kind: KindErrorSpotting},
		instructions: instructions,
		items:        items,
		errorIndex:   errorIndex,
		selected:     -1,
	}
}

func (e *ErrorSpotting) Instructions() string { return e.instructions }
func (e *ErrorSpotting) Items() []string      { return e.items }
func (e *ErrorSpotting) ErrorIndex() int      { return e.errorIndex }
func (e *ErrorSpotting) Explanation() string  { return e.explanation }

// SelectedIndex returns the chosen item index, or -1 before any choice.
func (e *ErrorSpotting) SelectedIndex() int { return e.selected }

// SetExplanation attaches optional explanation text shown after answering.
func (e *ErrorSpotting) SetExplanation(text string) { e.explanation = text }

// Select records the learner's chosen item.
func (e *ErrorSpotting) Select(index int) error {
	if index < 0 || index >= len(e.items) {
		return invalidIndex("select item", index, len(e.items))
	}
	e.selected = index
	return nil
}

func (e *ErrorSpotting) RequiresValidation() bool { return true }

func (e *ErrorSpotting) IsCorrect() bool {
	return e.selected >= 0 && e.selected == e.errorIndex
}
