// Package scoring tracks score, streaks, and accuracy for a single lesson
// attempt.
package scoring

// Config holds the point values for the scoring engine.
type Config struct {
	// BasePoints is awarded for every correct answer.
	BasePoints int

	// StreakMultiplier is the extra points per streak step: a correct answer
	// at streak n (n > 1) earns BasePoints + (n-1)*StreakMultiplier.
	StreakMultiplier int

	// PerfectBonus is the flat bonus added by AccuracyBonus when every
	// answered container was correct.
	PerfectBonus int

	// TimeBonusPerSecond is the end-of-lesson points per remaining second.
	// Zero disables the time bonus, which is the default: the accuracy bonus
	// is the authoritative completion reward.
	TimeBonusPerSecond int
}

// DefaultConfig returns the standard point values.
func DefaultConfig() Config {
	return Config{
		BasePoints:         100,
		StreakMultiplier:   20,
		PerfectBonus:       200,
		TimeBonusPerSecond: 0,
	}
}

// Engine is a pure state machine over answer results. It must only be fed
// results for containers that require validation; pure-content containers
// (titles, text, video) never touch the engine.
type Engine struct {
	cfg Config

	totalScore     int
	currentStreak  int
	maxStreak      int
	correctAnswers int
	totalAnswers   int
}

// New creates a scoring engine.
func New(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// RecordCorrect registers a correct answer and returns the points awarded
// for it, so callers can show immediate feedback.
func (e *Engine) RecordCorrect() int {
	e.correctAnswers++
	e.totalAnswers++
	e.currentStreak++
	if e.currentStreak > e.maxStreak {
		e.maxStreak = e.currentStreak
	}

	points := e.cfg.BasePoints
	if e.currentStreak > 1 {
		points += (e.currentStreak - 1) * e.cfg.StreakMultiplier
	}
	e.totalScore += points
	return points
}

// RecordIncorrect registers an incorrect answer and resets the streak. No
// points are awarded or deducted.
func (e *Engine) RecordIncorrect() {
	e.totalAnswers++
	e.currentStreak = 0
}

// AccuracyBonus computes and adds the end-of-lesson accuracy bonus:
// floor(accuracy*100) points, plus PerfectBonus when accuracy is exactly
// 1.0. Returns the bonus added. Zero answers yield a zero bonus.
func (e *Engine) AccuracyBonus() int {
	if e.totalAnswers == 0 {
		return 0
	}

	accuracy := e.Accuracy()
	bonus := int(accuracy * 100)
	if accuracy == 1.0 {
		bonus += e.cfg.PerfectBonus
	}

	e.totalScore += bonus
	return bonus
}

// TimeBonus computes and adds the optional end-of-lesson time bonus for the
// given remaining seconds. Returns 0 without touching the score when the
// bonus is disabled (TimeBonusPerSecond == 0).
func (e *Engine) TimeBonus(remainingSeconds int) int {
	if e.cfg.TimeBonusPerSecond <= 0 || remainingSeconds <= 0 {
		return 0
	}
	bonus := remainingSeconds * e.cfg.TimeBonusPerSecond
	e.totalScore += bonus
	return bonus
}

// Accuracy returns correct/total, or 0 when nothing was answered.
func (e *Engine) Accuracy() float64 {
	if e.totalAnswers == 0 {
		return 0
	}
	return float64(e.correctAnswers) / float64(e.totalAnswers)
}

func (e *Engine) TotalScore() int     { return e.totalScore }
func (e *Engine) CurrentStreak() int  { return e.currentStreak }
func (e *Engine) MaxStreak() int      { return e.maxStreak }
func (e *Engine) CorrectAnswers() int { return e.correctAnswers }
func (e *Engine) TotalAnswers() int   { return e.totalAnswers }
