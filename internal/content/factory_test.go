package content

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestFactoryParsesEveryKind(t *testing.T) {
	docs := []map[string]any{
		{"kind": "TITLE", "title": "Photosynthesis"},
		{"kind": "TEXT", "text": "Plants convert light into chemical energy."},
		{"kind": "VIDEO", "url": "https://example.com/v"},
		{
			"kind":                 "MULTIPLE_CHOICE_QUIZ",
			"question":             "Which gas do plants absorb?",
			"options":              []any{"Oxygen", "Carbon dioxide", "Nitrogen"},
			"correctAnswerIndices": []any{float64(1)},
			"allowMultipleAnswers": false,
		},
		{
			"kind":                 "REVERSE_QUIZ",
			"answer":               "Chlorophyll",
			"questionOptions":      []any{"What makes leaves green?", "What is plant sugar called?"},
			"correctQuestionIndex": float64(0),
		},
		{
			"kind":         "FILL_IN_THE_GAPS",
			"textTemplate": "Plants use {} and {} to make glucose.",
			"correctWords": []any{"light", "water"},
			"wordOptions":  []any{"light", "soil", "water"},
		},
		{
			"kind":         "SORTING_TASK",
			"instructions": "Order the stages",
			"correctOrder": []any{"absorb light", "split water", "fix carbon"},
		},
		{
			"kind":         "ERROR_SPOTTING",
			"instructions": "Find the wrong statement",
			"items":        []any{"Plants breathe CO2", "Plants emit CO2 in light"},
			"errorIndex":   float64(1),
		},
		{
			"kind":           "WIRE_CONNECTING",
			"instructions":   "Match the pairs",
			"leftItems":      []any{"Stomata", "Xylem"},
			"rightItems":     []any{"water transport", "gas exchange"},
			"correctMatches": map[string]any{"0": float64(1), "1": float64(0)},
		},
		{
			"kind":       "RECAP",
			"recapTitle": "Quick recap",
		},
	}

	f := NewFactory()
	wantKinds := []Kind{
		KindTitle, KindText, KindVideo, KindMultipleChoiceQuiz,
		KindReverseQuiz, KindFillInTheGaps, KindSortingTask,
		KindErrorSpotting, KindWireConnecting, KindRecap,
	}

	for i, doc := range docs {
		c, err := f.Parse(doc)
		if err != nil {
			t.Fatalf("doc %d (%v): %v", i, doc["kind"], err)
		}
		if c.Kind() != wantKinds[i] {
			t.Errorf("doc %d: kind = %s, want %s", i, c.Kind(), wantKinds[i])
		}
		if c.ID() != i {
			t.Errorf("doc %d: id = %d, want %d", i, c.ID(), i)
		}
	}
}

func TestFactoryKindAliases(t *testing.T) {
	tests := []struct {
		name string
		doc  map[string]any
	}{
		{"screaming snake", map[string]any{"kind": "MULTIPLE_CHOICE_QUIZ"}},
		{"camel case", map[string]any{"kind": "MultipleChoiceQuiz"}},
		{"lower case", map[string]any{"kind": "multiple_choice_quiz"}},
		{"legacy type field", map[string]any{"type": "MULTIPLE_CHOICE_QUIZ"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := tt.doc
			doc["question"] = "q"
			doc["options"] = []any{"a", "b"}
			doc["correctAnswerIndices"] = []any{float64(0)}

			c, err := NewFactory().Parse(doc)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if c.Kind() != KindMultipleChoiceQuiz {
				t.Errorf("kind = %s, want %s", c.Kind(), KindMultipleChoiceQuiz)
			}
		})
	}
}

func TestFactoryUnknownKind(t *testing.T) {
	_, err := NewFactory().Parse(map[string]any{"kind": "HOLOGRAM"})

	var unknown *UnknownKindError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected *UnknownKindError, got %v", err)
	}
	if unknown.Value != "HOLOGRAM" {
		t.Errorf("Value = %q, want HOLOGRAM", unknown.Value)
	}
}

func TestFactoryMissingKind(t *testing.T) {
	_, err := NewFactory().Parse(map[string]any{"title": "no kind"})

	var malformed *MalformedContentError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected *MalformedContentError, got %v", err)
	}
	if malformed.Field != "kind" {
		t.Errorf("Field = %q, want kind", malformed.Field)
	}
}

func TestFactoryMissingRequiredField(t *testing.T) {
	_, err := NewFactory().Parse(map[string]any{
		"kind":     "MULTIPLE_CHOICE_QUIZ",
		"question": "q",
		// options and correctAnswerIndices missing
	})

	var malformed *MalformedContentError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected *MalformedContentError, got %v", err)
	}
	if malformed.Kind != KindMultipleChoiceQuiz {
		t.Errorf("Kind = %s, want %s", malformed.Kind, KindMultipleChoiceQuiz)
	}
}

func TestFactoryIDOffset(t *testing.T) {
	f := NewFactoryAt(7)
	c, err := f.Parse(map[string]any{"kind": "TITLE", "title": "t"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.ID() != 7 {
		t.Errorf("id = %d, want 7", c.ID())
	}
	if f.NextID() != 8 {
		t.Errorf("NextID = %d, want 8", f.NextID())
	}
}

func TestFactoryRecapWrapsContainer(t *testing.T) {
	c, err := NewFactory().Parse(map[string]any{
		"kind":       "RECAP",
		"recapTitle": "Remember this",
		"wrappedContainer": map[string]any{
			"kind":                 "MULTIPLE_CHOICE_QUIZ",
			"question":             "q",
			"options":              []any{"a", "b"},
			"correctAnswerIndices": []any{float64(1)},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	recap, ok := c.(*Recap)
	if !ok {
		t.Fatalf("expected *Recap, got %T", c)
	}
	if recap.Title() != "Remember this" {
		t.Errorf("title = %q", recap.Title())
	}
	inner, ok := recap.Wrapped().(*MultipleChoiceQuiz)
	if !ok {
		t.Fatalf("expected wrapped *MultipleChoiceQuiz, got %T", recap.Wrapped())
	}
	if inner.ID() != 1 {
		t.Errorf("wrapped id = %d, want 1", inner.ID())
	}
	if !recap.RequiresValidation() {
		t.Error("recap wrapping a quiz should require validation")
	}
}

func TestFactoryRecapDepthLimit(t *testing.T) {
	// Nest recaps one level past the cap.
	doc := map[string]any{"kind": "RECAP", "recapTitle": "bottom"}
	for i := 0; i < MaxRecapDepth; i++ {
		doc = map[string]any{"kind": "RECAP", "wrappedContainer": doc}
	}

	_, err := NewFactory().Parse(doc)
	if err == nil {
		t.Fatal("expected depth error")
	}
	if !strings.Contains(err.Error(), "nesting") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestParseListAbortsOnBadEntry(t *testing.T) {
	docs := []any{
		map[string]any{"kind": "TITLE", "title": "ok"},
		map[string]any{"kind": "NOPE"},
	}

	_, err := NewFactory().ParseList(docs)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "container 1") {
		t.Errorf("error should name the failing index: %v", err)
	}
}

func TestParseJSONRejectsInvalidJSON(t *testing.T) {
	_, err := NewFactory().ParseJSON([]byte(`{not json`))
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestEncodeParseRoundTrip(t *testing.T) {
	f := NewFactory()

	quiz := NewMultipleChoiceQuiz(0, "q", []string{"a", "b", "c"}, []int{0, 2}, true)
	quiz.SetExplanation("because")
	wire := NewWireConnecting(1, "match", []string{"l1", "l2"}, []string{"r1", "r2"}, map[int]int{0: 1, 1: 0})
	recap := NewRecap(2, "again")
	recap.SetWrapped(NewSortingTask(3, "order", []string{"x", "y"}))

	data, err := EncodeList([]Container{quiz, wire, recap})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	var docs []any
	if err := json.Unmarshal(data, &docs); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	parsed, err := f.ParseList(docs)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(parsed) != 3 {
		t.Fatalf("expected 3 containers, got %d", len(parsed))
	}

	q := parsed[0].(*MultipleChoiceQuiz)
	if q.Question() != "q" || !q.AllowMultiple() || q.Explanation() != "because" {
		t.Errorf("quiz fields lost in round trip: %+v", q)
	}
	if len(q.CorrectIndices()) != 2 {
		t.Errorf("correct indices = %v", q.CorrectIndices())
	}

	w := parsed[1].(*WireConnecting)
	if w.CorrectMatches()[0] != 1 || w.CorrectMatches()[1] != 0 {
		t.Errorf("matches = %v", w.CorrectMatches())
	}

	r := parsed[2].(*Recap)
	if r.Title() != "again" {
		t.Errorf("recap title = %q", r.Title())
	}
	if _, ok := r.Wrapped().(*SortingTask); !ok {
		t.Errorf("wrapped = %T, want *SortingTask", r.Wrapped())
	}
}
