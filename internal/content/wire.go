package content

// WireConnecting asks the learner to connect each left item to its matching
// right item. Connections are an index mapping left→right; a left index with
// no connection is simply incorrect, never an error.
type WireConnecting struct {
	base
	instructions   string
	leftItems      []string
	rightItems     []string
	correctMatches map[int]int

	connections map[int]int
}

// NewWireConnecting creates a wire connecting container.
func NewWireConnecting(id int, instructions string, leftItems, rightItems []string, correctMatches map[int]int) *WireConnecting {
	return &WireConnecting{
		base:           base{id: id, kind: KindWireConnecting},
		instructions:   instructions,
		leftItems:      leftItems,
		rightItems:     rightItems,
		correctMatches: correctMatches,
		connections:    make(map[int]int),
	}
}

func (w *WireConnecting) Instructions() string        { return w.instructions }
func (w *WireConnecting) LeftItems() []string         { return w.leftItems }
func (w *WireConnecting) RightItems() []string        { return w.rightItems }
func (w *WireConnecting) CorrectMatches() map[int]int { return w.correctMatches }
func (w *WireConnecting) Connections() map[int]int    { return w.connections }
func (w *WireConnecting) RequiresValidation() bool    { return true }

// Connect wires left to right, replacing any prior connection from left.
func (w *WireConnecting) Connect(left, right int) error {
	if left < 0 || left >= len(w.leftItems) {
		return invalidIndex("connect left", left, len(w.leftItems))
	}
	if right < 0 || right >= len(w.rightItems) {
		return invalidIndex("connect right", right, len(w.rightItems))
	}
	w.connections[left] = right
	return nil
}

// Disconnect removes the connection from left, if any.
func (w *WireConnecting) Disconnect(left int) {
	delete(w.connections, left)
}

// Connection returns the right index wired to left, or -1 when unconnected.
func (w *WireConnecting) Connection(left int) int {
	if r, ok := w.connections[left]; ok {
		return r
	}
	return -1
}

// IsCorrect reports whether every expected left→right pair is present and
// equal in the submitted connections and the counts match.
func (w *WireConnecting) IsCorrect() bool {
	if len(w.connections) != len(w.correctMatches) {
		return false
	}
	for left, want := range w.correctMatches {
		got, ok := w.connections[left]
		if !ok || got != want {
			return false
		}
	}
	return true
}
