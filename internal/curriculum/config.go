// Package curriculum turns a subject request into a playable topic: it
// prompts the generation backend for a structured lesson document, parses it
// into typed containers, and validates the result before anything reaches a
// player.
package curriculum

// Config controls topic generation.
type Config struct {
	// Validators run in order on every generated topic; the first failure
	// stops the pipeline.
	Validators []Validator

	// MaxTokens is the token budget for the generation response. Topic
	// documents are large, so this is far above a single-question budget.
	MaxTokens int

	// Temperature controls output randomness (0.0-1.0).
	Temperature float64

	// ChallengeCount is the number of challenges to request per topic.
	ChallengeCount int

	// ContainersPerChallenge is the container count to request per
	// challenge, guidance for the prompt rather than a hard limit.
	ContainersPerChallenge int

	// MaxPriorTopics caps how many existing topic titles go into the prompt
	// for deduplication.
	MaxPriorTopics int
}

// DefaultConfig returns the standard validator chain and limits.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&InteractionValidator{},
		},
		MaxTokens:              8192,
		Temperature:            0.7,
		ChallengeCount:         3,
		ContainersPerChallenge: 8,
		MaxPriorTopics:         20,
	}
}
