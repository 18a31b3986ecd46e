package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/Maradon197/5MinuteChallenge-sub000/internal/content"
	"github.com/Maradon197/5MinuteChallenge-sub000/internal/lesson"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func sampleTopic() *lesson.Topic {
	quiz := content.NewMultipleChoiceQuiz(0, "2+2?", []string{"3", "4"}, []int{1}, false)
	gaps, _ := content.NewFillInTheGaps(1, "Roses are {}.", []string{"red"}, []string{"red", "blue"})
	return &lesson.Topic{
		Title: "Arithmetic",
		Challenges: []*lesson.Challenge{
			{
				Title:       "Addition",
				Description: "warm up",
				Containers:  []content.Container{content.NewTitle(2, "Add"), quiz},
			},
			{
				Title:      "Cloze",
				Containers: []content.Container{gaps},
			},
		},
	}
}

func TestTopicSaveLoadRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.TopicRepo()
	ctx := context.Background()

	topic := sampleTopic()
	if err := repo.SaveTopic(ctx, topic); err != nil {
		t.Fatalf("save: %v", err)
	}
	if topic.ID == 0 {
		t.Fatal("save should assign the topic id")
	}
	if topic.Challenges[0].ID == 0 || topic.Challenges[1].ID == 0 {
		t.Fatal("save should assign challenge ids")
	}

	loaded, err := repo.LoadTopic(ctx, topic.ID)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Title != "Arithmetic" || len(loaded.Challenges) != 2 {
		t.Fatalf("loaded = %+v", loaded)
	}

	first := loaded.Challenges[0]
	if first.Title != "Addition" || first.Description != "warm up" {
		t.Errorf("challenge = %+v", first)
	}
	if len(first.Containers) != 2 {
		t.Fatalf("containers = %d, want 2", len(first.Containers))
	}
	quiz, ok := first.Containers[1].(*content.MultipleChoiceQuiz)
	if !ok {
		t.Fatalf("container 1 = %T, want *MultipleChoiceQuiz", first.Containers[1])
	}
	if quiz.Question() != "2+2?" {
		t.Errorf("question = %q", quiz.Question())
	}

	// Container ids stay unique across the whole topic.
	seen := map[int]bool{}
	for _, c := range loaded.Challenges {
		for _, container := range c.Containers {
			if seen[container.ID()] {
				t.Fatalf("duplicate container id %d", container.ID())
			}
			seen[container.ID()] = true
		}
	}
}

func TestListTopics(t *testing.T) {
	s := openTestStore(t)
	repo := s.TopicRepo()
	ctx := context.Background()

	topic := sampleTopic()
	topic.Challenges[0].Completed = true
	if err := repo.SaveTopic(ctx, topic); err != nil {
		t.Fatalf("save: %v", err)
	}

	summaries, err := repo.ListTopics(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("summaries = %d, want 1", len(summaries))
	}
	got := summaries[0]
	if got.Title != "Arithmetic" || got.Challenges != 2 || got.Completed != 1 {
		t.Errorf("summary = %+v", got)
	}
}

func TestRecordResultPersistsProgress(t *testing.T) {
	s := openTestStore(t)
	repo := s.TopicRepo()
	ctx := context.Background()

	topic := sampleTopic()
	if err := repo.SaveTopic(ctx, topic); err != nil {
		t.Fatalf("save: %v", err)
	}

	c := topic.Challenges[0]
	c.RecordResult(420, false)
	if err := repo.RecordResult(ctx, c); err != nil {
		t.Fatalf("record: %v", err)
	}

	loaded, err := repo.LoadTopic(ctx, topic.ID)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	got := loaded.Challenges[0]
	if got.BestScore != 420 || got.Attempts != 1 || !got.Completed {
		t.Errorf("progress = %+v", got)
	}
}

func TestRecordResultUnknownChallenge(t *testing.T) {
	s := openTestStore(t)
	err := s.TopicRepo().RecordResult(context.Background(), &lesson.Challenge{ID: 999})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestDeleteTopicCascades(t *testing.T) {
	s := openTestStore(t)
	repo := s.TopicRepo()
	ctx := context.Background()

	topic := sampleTopic()
	if err := repo.SaveTopic(ctx, topic); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.DeleteTopic(ctx, topic.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := repo.LoadTopic(ctx, topic.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("load after delete: %v", err)
	}

	var n int
	if err := s.DB().QueryRow(`SELECT COUNT(*) FROM challenges`).Scan(&n); err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Errorf("challenges left after cascade: %d", n)
	}
}

func TestLoadTopicNotFound(t *testing.T) {
	s := openTestStore(t)
	if _, err := s.TopicRepo().LoadTopic(context.Background(), 12345); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestLLMEventRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	data := LLMRequestEventData{
		Model:        "test-model",
		Purpose:      "topic-generation",
		InputTokens:  120,
		OutputTokens: 800,
		LatencyMs:    1500,
		Success:      true,
		ResponseBody: `{"title":"x"}`,
	}
	if err := repo.AppendLLMRequest(ctx, data); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Model: "test-model", Purpose: "topic-generation",
		Success: false, ErrorMessage: "rate limited",
	}); err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, 10)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("events = %d, want 2", len(events))
	}

	// Newest first.
	if events[0].Success || events[0].ErrorMessage != "rate limited" {
		t.Errorf("newest event = %+v", events[0])
	}
	if !events[1].Success || events[1].OutputTokens != 800 {
		t.Errorf("oldest event = %+v", events[1])
	}

	limited, err := repo.QueryLLMEvents(ctx, 1)
	if err != nil {
		t.Fatalf("query limited: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("limited = %d, want 1", len(limited))
	}
}
