package curriculum

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Maradon197/5MinuteChallenge-sub000/internal/content"
	"github.com/Maradon197/5MinuteChallenge-sub000/internal/lesson"
	"github.com/Maradon197/5MinuteChallenge-sub000/internal/llm"
)

// GenerateInput describes the topic to generate.
type GenerateInput struct {
	// Subject is what the topic should teach, e.g. "how tides work".
	Subject string

	// Audience tunes tone and depth. Optional.
	Audience string

	// Notes is freeform extra guidance for the author prompt. Optional.
	Notes string

	// PriorTopics lists existing topic titles so the model avoids repeats.
	PriorTopics []string
}

// Service generates topics through an llm.Provider.
type Service struct {
	provider llm.Provider
	config   Config
}

// New creates a topic generation service.
func New(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, config: cfg}
}

// GenerateTopic produces a fully parsed and validated topic.
func (s *Service) GenerateTopic(ctx context.Context, input GenerateInput) (*lesson.Topic, error) {
	ctx = llm.WithPurpose(ctx, "topic-generation")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input, s.config)},
		},
		Schema:      TopicSchema,
		MaxTokens:   s.config.MaxTokens,
		Temperature: s.config.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("topic generation failed: %w", err)
	}

	topic, err := ParseTopicDocument(resp.Content)
	if err != nil {
		return nil, err
	}

	for _, v := range s.config.Validators {
		if verr := v.Validate(topic, input); verr != nil {
			return nil, verr
		}
	}

	return topic, nil
}

// topicOutput is the raw document shape before container parsing.
type topicOutput struct {
	Title      string            `json:"title"`
	Challenges []challengeOutput `json:"challenges"`
}

type challengeOutput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Containers  []any  `json:"containers"`
}

// ParseTopicDocument turns a raw topic document into typed containers. All
// challenges share one content factory so container ids are unique across
// the whole topic.
func ParseTopicDocument(raw json.RawMessage) (*lesson.Topic, error) {
	var doc topicOutput
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse topic document: %w", err)
	}

	topic := &lesson.Topic{Title: doc.Title}
	factory := content.NewFactory()

	for i, c := range doc.Challenges {
		containers, err := factory.ParseList(c.Containers)
		if err != nil {
			return nil, fmt.Errorf("challenge %d (%q): %w", i+1, c.Title, err)
		}
		topic.Challenges = append(topic.Challenges, &lesson.Challenge{
			Title:       c.Title,
			Description: c.Description,
			Containers:  containers,
		})
	}

	return topic, nil
}
