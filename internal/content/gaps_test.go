package content

import "testing"

func newGaps(t *testing.T) *FillInTheGaps {
	t.Helper()
	f, err := NewFillInTheGaps(0,
		"Water boils at {} degrees and freezes at {} degrees.",
		[]string{"100", "0"},
		[]string{"0", "50", "100"})
	if err != nil {
		t.Fatalf("new gaps: %v", err)
	}
	return f
}

func TestGapsFillAndRemove(t *testing.T) {
	f := newGaps(t)

	if err := f.FillGap("100"); err != nil {
		t.Fatalf("fill: %v", err)
	}
	if f.AllGapsFilled() {
		t.Error("one of two gaps filled, AllGapsFilled should be false")
	}

	if err := f.FillGap("0"); err != nil {
		t.Fatalf("fill: %v", err)
	}
	if !f.AllGapsFilled() {
		t.Error("expected all gaps filled")
	}
	if !f.IsCorrect() {
		t.Error("expected correct fill")
	}

	// Overfilling is rejected.
	if err := f.FillGap("50"); err == nil {
		t.Error("expected error filling past the last gap")
	}

	if err := f.RemoveLastWord(); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if f.IsCorrect() {
		t.Error("partially filled should not be correct")
	}
}

func TestGapsCaseInsensitiveCorrectness(t *testing.T) {
	f, err := NewFillInTheGaps(0, "The capital is {}.", []string{"Paris"}, []string{"paris", "Lyon"})
	if err != nil {
		t.Fatalf("new gaps: %v", err)
	}
	_ = f.FillGap("PARIS")
	if !f.IsCorrect() {
		t.Error("correctness should ignore case")
	}
}

func TestGapsClickOrder(t *testing.T) {
	f := newGaps(t)

	_ = f.FillGapAt(2) // "100"
	_ = f.FillGapAt(0) // "0"

	if got := f.ClickOrder(); len(got) != 2 || got[0] != 2 || got[1] != 0 {
		t.Errorf("click order = %v, want [2 0]", got)
	}
	if !f.ClickOrderCorrect() {
		t.Error("clicks spelled the correct words in order")
	}

	_ = f.RemoveLastWord()
	if len(f.ClickOrder()) != 1 {
		t.Errorf("click order after remove = %v", f.ClickOrder())
	}
}

func TestGapsClearGapReturnsWordToPool(t *testing.T) {
	f := newGaps(t)
	_ = f.FillGap("100")
	_ = f.FillGap("0")

	before := len(f.WordOptions())
	if err := f.ClearGap(0); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if f.FilledWords()[0] != "" {
		t.Errorf("gap 0 = %q, want blank", f.FilledWords()[0])
	}
	if len(f.WordOptions()) != before+1 {
		t.Error("cleared word should return to the option pool")
	}
	if f.IsCorrect() {
		t.Error("a blanked gap is not correct")
	}
}

func TestGapsDisplayTextProgression(t *testing.T) {
	f := newGaps(t)

	want := "Water boils at ____ degrees and freezes at ____ degrees."
	if got := f.DisplayText("____"); got != want {
		t.Errorf("empty display = %q", got)
	}

	_ = f.FillGap("100")
	want = "Water boils at [100] degrees and freezes at ____ degrees."
	if got := f.DisplayText("____"); got != want {
		t.Errorf("partial display = %q", got)
	}
}

func TestGapsNumberedTemplate(t *testing.T) {
	f, err := NewFillInTheGaps(0, "{0} comes before {1}.", []string{"spring", "summer"}, []string{"summer", "spring"})
	if err != nil {
		t.Fatalf("new gaps: %v", err)
	}
	_ = f.FillGap("spring")

	got := f.DisplayText("__")
	if got != "[spring] comes before __." {
		t.Errorf("display = %q", got)
	}
}

func TestGapsRejectsMixedMarkers(t *testing.T) {
	_, err := NewFillInTheGaps(0, "{} and {1}", []string{"a", "b"}, nil)
	if err == nil {
		t.Fatal("expected error for mixed gap markers")
	}
}

func TestGapsRemoveFromEmpty(t *testing.T) {
	f := newGaps(t)
	if err := f.RemoveLastWord(); err == nil {
		t.Error("expected error removing from empty fill")
	}
}
