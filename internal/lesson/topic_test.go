package lesson

import "testing"

func TestRecordResultTracksBest(t *testing.T) {
	c := &Challenge{Title: "c"}

	c.RecordResult(300, false)
	c.RecordResult(150, false)

	if c.BestScore != 300 {
		t.Errorf("best = %d, want 300", c.BestScore)
	}
	if c.Attempts != 2 {
		t.Errorf("attempts = %d, want 2", c.Attempts)
	}
	if !c.Completed {
		t.Error("finished run should mark the challenge completed")
	}
}

func TestRecordResultExpiredRun(t *testing.T) {
	c := &Challenge{Title: "c"}

	c.RecordResult(80, true)

	if c.Completed {
		t.Error("expired run must not mark the challenge completed")
	}
	if c.Attempts != 1 || c.BestScore != 80 {
		t.Errorf("attempts=%d best=%d", c.Attempts, c.BestScore)
	}

	// A later full run completes it; the best score survives lower runs.
	c.RecordResult(40, false)
	if !c.Completed || c.BestScore != 80 {
		t.Errorf("completed=%v best=%d", c.Completed, c.BestScore)
	}
}

func TestTopicCompletedCount(t *testing.T) {
	topic := &Topic{
		Title: "t",
		Challenges: []*Challenge{
			{Completed: true},
			{},
			{Completed: true},
		},
	}
	if got := topic.CompletedCount(); got != 2 {
		t.Errorf("completed = %d, want 2", got)
	}
}
