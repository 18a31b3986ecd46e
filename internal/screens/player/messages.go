package player

import "time"

// ChallengeFinishedMsg tells the topic screen a play-through ended, so it
// can reload progress.
type ChallengeFinishedMsg struct {
	ChallengeID int64
}

// uiTickMsg drives the redraw loop. Authoritative countdown seconds are
// derived from wall-clock time, not from the tick cadence.
type uiTickMsg time.Time

// resultSavedMsg reports the async attempt persistence.
type resultSavedMsg struct {
	Err error
}
