package timer

import "testing"

// recordingListener captures notifications for assertions.
type recordingListener struct {
	ticks    []int
	timeOver bool
	bonuses  []int
}

func (l *recordingListener) OnTick(remaining int, fraction float64) {
	l.ticks = append(l.ticks, remaining)
}
func (l *recordingListener) OnTimeOver()       { l.timeOver = true }
func (l *recordingListener) OnBonusTime(s int) { l.bonuses = append(l.bonuses, s) }

func testConfig() Config {
	return Config{
		InitialSeconds:     10,
		LowTimeSeconds:     3,
		WarningSeconds:     6,
		AnswerBonusSeconds: 4,
	}
}

func TestTickCountsDown(t *testing.T) {
	l := &recordingListener{}
	e := New(testConfig(), l)
	e.Start()

	e.Tick()
	e.Tick()

	if e.Remaining() != 8 {
		t.Errorf("remaining = %d, want 8", e.Remaining())
	}
	if len(l.ticks) != 2 || l.ticks[1] != 8 {
		t.Errorf("ticks = %v", l.ticks)
	}
	if e.Fraction() != 0.8 {
		t.Errorf("fraction = %f, want 0.8", e.Fraction())
	}
}

func TestTickIgnoredUnlessRunning(t *testing.T) {
	e := New(testConfig(), nil)

	e.Tick() // idle
	if e.Remaining() != 10 {
		t.Errorf("idle tick changed remaining: %d", e.Remaining())
	}

	e.Start()
	e.Pause()
	e.Tick() // paused
	if e.Remaining() != 10 {
		t.Errorf("paused tick changed remaining: %d", e.Remaining())
	}

	e.Start() // resume
	e.Tick()
	if e.Remaining() != 9 {
		t.Errorf("remaining = %d, want 9", e.Remaining())
	}
}

func TestExpiry(t *testing.T) {
	l := &recordingListener{}
	e := New(testConfig(), l)
	e.Start()

	for i := 0; i < 10; i++ {
		e.Tick()
	}

	if e.State() != StateExpired {
		t.Errorf("state = %s, want expired", e.State())
	}
	if !l.timeOver {
		t.Error("expected OnTimeOver")
	}
	if e.Remaining() != 0 {
		t.Errorf("remaining = %d, want 0", e.Remaining())
	}

	// Expired is terminal: everything is a no-op.
	e.Tick()
	e.Start()
	e.AddBonusTime(5)
	if e.State() != StateExpired || e.Remaining() != 0 {
		t.Error("terminal state accepted operations")
	}
}

func TestBonusTimeClampedAtInitial(t *testing.T) {
	l := &recordingListener{}
	e := New(testConfig(), l)
	e.Start()

	e.Tick()
	e.Tick() // remaining 8
	e.AddBonusTime(4)

	if e.Remaining() != 10 {
		t.Errorf("remaining = %d, want clamp at 10", e.Remaining())
	}
	if len(l.bonuses) != 1 || l.bonuses[0] != 4 {
		t.Errorf("bonuses = %v, want [4]", l.bonuses)
	}
	// The clamp also notifies an OnTick with the new remaining.
	if l.ticks[len(l.ticks)-1] != 10 {
		t.Errorf("last tick = %d, want 10", l.ticks[len(l.ticks)-1])
	}
}

func TestStopBeforeExpiry(t *testing.T) {
	e := New(testConfig(), nil)
	e.Start()
	e.Tick()
	e.Stop()

	if e.State() != StateStopped {
		t.Errorf("state = %s, want stopped", e.State())
	}
	e.Tick()
	if e.Remaining() != 9 {
		t.Errorf("stopped tick changed remaining: %d", e.Remaining())
	}
}

func TestThresholdClassification(t *testing.T) {
	e := New(testConfig(), nil)
	e.Start()

	// 10 remaining: neither warning nor critical.
	if e.IsWarning() || e.IsCritical() {
		t.Error("full time should be neither warning nor critical")
	}

	for i := 0; i < 5; i++ {
		e.Tick()
	}
	// 5 remaining: warning band [3,6).
	if !e.IsWarning() || e.IsCritical() {
		t.Errorf("remaining 5: warning=%v critical=%v", e.IsWarning(), e.IsCritical())
	}

	for i := 0; i < 3; i++ {
		e.Tick()
	}
	// 2 remaining: critical.
	if !e.IsCritical() || e.IsWarning() {
		t.Errorf("remaining 2: warning=%v critical=%v", e.IsWarning(), e.IsCritical())
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{300, "5:00"},
		{65, "1:05"},
		{9, "0:09"},
		{0, "0:00"},
		{-3, "0:00"},
	}
	for _, tt := range tests {
		if got := Format(tt.seconds); got != tt.want {
			t.Errorf("Format(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}
