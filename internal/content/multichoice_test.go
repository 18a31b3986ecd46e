package content

import "testing"

func TestMultipleChoiceSingleSelectReplaces(t *testing.T) {
	q := NewMultipleChoiceQuiz(0, "q", []string{"a", "b", "c"}, []int{1}, false)

	if err := q.SelectOption(0); err != nil {
		t.Fatalf("select 0: %v", err)
	}
	if err := q.SelectOption(2); err != nil {
		t.Fatalf("select 2: %v", err)
	}

	got := q.SelectedIndices()
	if len(got) != 1 || got[0] != 2 {
		t.Errorf("selected = %v, want [2]", got)
	}
}

func TestMultipleChoiceMultiSelectAccumulates(t *testing.T) {
	q := NewMultipleChoiceQuiz(0, "q", []string{"a", "b", "c"}, []int{0, 2}, true)

	_ = q.SelectOption(0)
	_ = q.SelectOption(2)
	_ = q.SelectOption(0) // duplicate is a no-op

	if len(q.SelectedIndices()) != 2 {
		t.Fatalf("selected = %v, want two entries", q.SelectedIndices())
	}
	if !q.IsCorrect() {
		t.Error("exact selection should be correct")
	}

	q.DeselectOption(2)
	if q.IsCorrect() {
		t.Error("partial selection should not be correct")
	}
}

func TestMultipleChoiceCorrectnessIgnoresOrder(t *testing.T) {
	q := NewMultipleChoiceQuiz(0, "q", []string{"a", "b", "c"}, []int{2, 0}, true)
	_ = q.SelectOption(0)
	_ = q.SelectOption(2)
	if !q.IsCorrect() {
		t.Error("selection order should not matter")
	}
}

func TestMultipleChoiceSupersetIsIncorrect(t *testing.T) {
	q := NewMultipleChoiceQuiz(0, "q", []string{"a", "b", "c"}, []int{0}, true)
	_ = q.SelectOption(0)
	_ = q.SelectOption(1)
	if q.IsCorrect() {
		t.Error("extra selections should make the answer incorrect")
	}
}

func TestMultipleChoiceOutOfRangeSelect(t *testing.T) {
	q := NewMultipleChoiceQuiz(0, "q", []string{"a"}, []int{0}, false)
	if err := q.SelectOption(5); err == nil {
		t.Error("expected error for out-of-range index")
	}
	if len(q.SelectedIndices()) != 0 {
		t.Error("failed select must not change state")
	}
}
