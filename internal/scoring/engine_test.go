package scoring

import "testing"

func TestStreakScoring(t *testing.T) {
	e := New(DefaultConfig())

	points := []int{e.RecordCorrect(), e.RecordCorrect(), e.RecordCorrect()}

	want := []int{100, 120, 140}
	for i, p := range points {
		if p != want[i] {
			t.Errorf("answer %d: points = %d, want %d", i+1, p, want[i])
		}
	}
	if e.TotalScore() != 360 {
		t.Errorf("total = %d, want 360", e.TotalScore())
	}
	if e.CurrentStreak() != 3 || e.MaxStreak() != 3 {
		t.Errorf("streak = %d/%d, want 3/3", e.CurrentStreak(), e.MaxStreak())
	}
}

func TestIncorrectResetsStreakNotScore(t *testing.T) {
	e := New(DefaultConfig())

	e.RecordCorrect()
	e.RecordCorrect()
	e.RecordIncorrect()

	if e.CurrentStreak() != 0 {
		t.Errorf("streak = %d, want 0", e.CurrentStreak())
	}
	if e.MaxStreak() != 2 {
		t.Errorf("max streak = %d, want 2", e.MaxStreak())
	}
	if e.TotalScore() != 220 {
		t.Errorf("total = %d, want 220 (no deduction)", e.TotalScore())
	}

	// Streak restarts from base points.
	if p := e.RecordCorrect(); p != 100 {
		t.Errorf("points after reset = %d, want 100", p)
	}
}

func TestAccuracyBonusPerfect(t *testing.T) {
	e := New(DefaultConfig())
	e.RecordCorrect()
	e.RecordCorrect()

	bonus := e.AccuracyBonus()
	if bonus != 300 { // floor(1.0*100) + 200 perfect bonus
		t.Errorf("bonus = %d, want 300", bonus)
	}
	if e.TotalScore() != 220+300 {
		t.Errorf("total = %d, want %d", e.TotalScore(), 520)
	}
}

func TestAccuracyBonusPartial(t *testing.T) {
	e := New(DefaultConfig())
	e.RecordCorrect()
	e.RecordCorrect()
	e.RecordIncorrect()

	// 2/3 accuracy: floor(0.666*100) = 66, no perfect bonus.
	if bonus := e.AccuracyBonus(); bonus != 66 {
		t.Errorf("bonus = %d, want 66", bonus)
	}
}

func TestAccuracyBonusNoAnswers(t *testing.T) {
	e := New(DefaultConfig())
	if bonus := e.AccuracyBonus(); bonus != 0 {
		t.Errorf("bonus = %d, want 0", bonus)
	}
	if e.Accuracy() != 0 {
		t.Errorf("accuracy = %f, want 0", e.Accuracy())
	}
}

func TestTimeBonusDisabledByDefault(t *testing.T) {
	e := New(DefaultConfig())
	e.RecordCorrect()

	if bonus := e.TimeBonus(120); bonus != 0 {
		t.Errorf("bonus = %d, want 0 when disabled", bonus)
	}
	if e.TotalScore() != 100 {
		t.Errorf("total = %d, disabled bonus must not change score", e.TotalScore())
	}
}

func TestTimeBonusEnabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TimeBonusPerSecond = 2
	e := New(cfg)

	if bonus := e.TimeBonus(30); bonus != 60 {
		t.Errorf("bonus = %d, want 60", bonus)
	}
	if bonus := e.TimeBonus(0); bonus != 0 {
		t.Errorf("bonus = %d, want 0 for no remaining time", bonus)
	}
}
