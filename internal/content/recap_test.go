package content

import "testing"

func TestRecapDelegatesToWrapped(t *testing.T) {
	q := NewReverseQuiz(1, "42", []string{"What is 6x7?", "What is 6+7?"}, 0)
	r := NewRecap(0, "one more time")
	r.SetWrapped(q)

	if !r.RequiresValidation() {
		t.Error("recap around a quiz requires validation")
	}
	if r.IsCorrect() {
		t.Error("unanswered wrapped quiz is not correct")
	}

	_ = q.Select(0)
	if !r.IsCorrect() {
		t.Error("recap should report the wrapped quiz's correctness")
	}
}

func TestRecapWithoutWrapped(t *testing.T) {
	r := NewRecap(0, "just a note")
	if r.RequiresValidation() {
		t.Error("bare recap is pure content")
	}
	if r.IsCorrect() {
		t.Error("bare recap is never correct")
	}
}

func TestStaticContainersNeverValidate(t *testing.T) {
	containers := []Container{
		NewTitle(0, "t"),
		NewText(1, "body"),
		NewVideo(2, "https://example.com"),
	}
	for _, c := range containers {
		if c.RequiresValidation() {
			t.Errorf("%s should not require validation", c.Kind())
		}
		if c.IsCorrect() {
			t.Errorf("%s should never be correct", c.Kind())
		}
	}
}

func TestErrorSpottingSelect(t *testing.T) {
	e := NewErrorSpotting(0, "find the error", []string{"right", "wrong", "right"}, 1)

	if e.IsCorrect() {
		t.Error("no selection is not correct")
	}
	_ = e.Select(0)
	if e.IsCorrect() {
		t.Error("wrong selection is not correct")
	}
	_ = e.Select(1)
	if !e.IsCorrect() {
		t.Error("selecting the planted error is correct")
	}
	if err := e.Select(9); err == nil {
		t.Error("expected error for out-of-range selection")
	}
	if e.SelectedIndex() != 1 {
		t.Error("failed select must not change state")
	}
}
