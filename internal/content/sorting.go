package content

// SortingTask asks the learner to arrange items into a target order. The
// current ordering starts out equal to the correct order; the host shuffles
// it through Swap/Move before presenting.
type SortingTask struct {
	base
	instructions string
	correctOrder []string

	currentOrder []string
}

// NewSortingTask creates a sorting task container. The current order is
// initialized to the correct order.
func NewSortingTask(id int, instructions string, correctOrder []string) *SortingTask {
	current := make([]string, len(correctOrder))
	copy(current, correctOrder)
	return &SortingTask{
		base:         base{id: id, kind: KindSortingTask},
		instructions: instructions,
		correctOrder: correctOrder,
		currentOrder: current,
	}
}

func (s *SortingTask) Instructions() string    { return s.instructions }
func (s *SortingTask) CorrectOrder() []string  { return s.correctOrder }
func (s *SortingTask) CurrentOrder() []string  { return s.currentOrder }
func (s *SortingTask) RequiresValidation() bool { return true }

// Swap exchanges the items at positions i and j.
func (s *SortingTask) Swap(i, j int) error {
	if i < 0 || i >= len(s.currentOrder) {
		return invalidIndex("swap", i, len(s.currentOrder))
	}
	if j < 0 || j >= len(s.currentOrder) {
		return invalidIndex("swap", j, len(s.currentOrder))
	}
	s.currentOrder[i], s.currentOrder[j] = s.currentOrder[j], s.currentOrder[i]
	return nil
}

// Move removes the item at from and reinserts it at to.
func (s *SortingTask) Move(from, to int) error {
	if from < 0 || from >= len(s.currentOrder) {
		return invalidIndex("move", from, len(s.currentOrder))
	}
	if to < 0 || to >= len(s.currentOrder) {
		return invalidIndex("move", to, len(s.currentOrder))
	}
	item := s.currentOrder[from]
	s.currentOrder = append(s.currentOrder[:from], s.currentOrder[from+1:]...)
	rest := append([]string{item}, s.currentOrder[to:]...)
	s.currentOrder = append(s.currentOrder[:to:to], rest...)
	return nil
}

// IsCorrect reports whether the current ordering equals the correct ordering
// position by position.
func (s *SortingTask) IsCorrect() bool {
	if len(s.currentOrder) != len(s.correctOrder) {
		return false
	}
	for i, want := range s.correctOrder {
		if s.currentOrder[i] != want {
			return false
		}
	}
	return true
}
