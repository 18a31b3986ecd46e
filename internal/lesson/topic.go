// Package lesson orchestrates a lesson attempt: it walks an ordered
// container list, validates submissions per container kind, and drives the
// scoring and timer engines.
package lesson

import "github.com/Maradon197/5MinuteChallenge-sub000/internal/content"

// Challenge is one playable unit: an ordered container list plus progress
// tracked across attempts.
type Challenge struct {
	ID          int64
	Title       string
	Description string
	Containers  []content.Container

	BestScore int
	Attempts  int
	Completed bool
}

// RecordResult registers a finished attempt: increments the attempt count,
// keeps the best score, and marks the challenge completed unless the attempt
// ended by timer expiry.
func (c *Challenge) RecordResult(score int, expired bool) {
	c.Attempts++
	if score > c.BestScore {
		c.BestScore = score
	}
	if !expired {
		c.Completed = true
	}
}

// Topic owns an ordered list of challenges on one subject area.
type Topic struct {
	ID         int64
	Title      string
	Challenges []*Challenge
}

// CompletedCount returns the number of completed challenges.
func (t *Topic) CompletedCount() int {
	n := 0
	for _, c := range t.Challenges {
		if c.Completed {
			n++
		}
	}
	return n
}
