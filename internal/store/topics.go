package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Maradon197/5MinuteChallenge-sub000/internal/content"
	"github.com/Maradon197/5MinuteChallenge-sub000/internal/lesson"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("store: not found")

// TopicSummary is a topic listing row without its container payloads.
type TopicSummary struct {
	ID         int64
	Title      string
	Challenges int
	Completed  int
}

// TopicRepo persists topics and their challenges. Containers are stored as
// the JSON document lists the content factory consumes, so a loaded topic
// round-trips through the same parsing path as generated content.
type TopicRepo interface {
	// SaveTopic inserts the topic and its challenges, assigning their IDs.
	SaveTopic(ctx context.Context, t *lesson.Topic) error

	// ListTopics returns summaries of all topics, newest first.
	ListTopics(ctx context.Context) ([]TopicSummary, error)

	// LoadTopic loads a topic with fully parsed containers.
	LoadTopic(ctx context.Context, id int64) (*lesson.Topic, error)

	// RecordResult persists a challenge's progress after an attempt.
	RecordResult(ctx context.Context, c *lesson.Challenge) error

	// DeleteTopic removes a topic and its challenges.
	DeleteTopic(ctx context.Context, id int64) error
}

type topicRepo struct {
	db *sql.DB
}

func (r *topicRepo) SaveTopic(ctx context.Context, t *lesson.Topic) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `INSERT INTO topics (title) VALUES (?)`, t.Title)
	if err != nil {
		return fmt.Errorf("insert topic: %w", err)
	}
	topicID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("topic id: %w", err)
	}

	for i, c := range t.Challenges {
		docs, err := content.EncodeList(c.Containers)
		if err != nil {
			return fmt.Errorf("encode challenge %d: %w", i, err)
		}
		res, err := tx.ExecContext(ctx,
			`INSERT INTO challenges (topic_id, position, title, description, containers, best_score, attempts, completed)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			topicID, i, c.Title, c.Description, string(docs),
			c.BestScore, c.Attempts, boolToInt(c.Completed))
		if err != nil {
			return fmt.Errorf("insert challenge %d: %w", i, err)
		}
		if c.ID, err = res.LastInsertId(); err != nil {
			return fmt.Errorf("challenge id: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	t.ID = topicID
	return nil
}

func (r *topicRepo) ListTopics(ctx context.Context) ([]TopicSummary, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT t.id, t.title,
		       COUNT(c.id),
		       COALESCE(SUM(c.completed), 0)
		FROM topics t
		LEFT JOIN challenges c ON c.topic_id = t.id
		GROUP BY t.id
		ORDER BY t.id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}
	defer rows.Close()

	var out []TopicSummary
	for rows.Next() {
		var s TopicSummary
		if err := rows.Scan(&s.ID, &s.Title, &s.Challenges, &s.Completed); err != nil {
			return nil, fmt.Errorf("scan topic: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *topicRepo) LoadTopic(ctx context.Context, id int64) (*lesson.Topic, error) {
	t := &lesson.Topic{ID: id}
	err := r.db.QueryRowContext(ctx, `SELECT title FROM topics WHERE id = ?`, id).Scan(&t.Title)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load topic %d: %w", id, err)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, description, containers, best_score, attempts, completed
		FROM challenges WHERE topic_id = ? ORDER BY position`, id)
	if err != nil {
		return nil, fmt.Errorf("load challenges: %w", err)
	}
	defer rows.Close()

	// One factory across all challenges keeps container ids unique for the
	// whole topic, matching how the content was numbered at generation time.
	factory := content.NewFactory()

	for rows.Next() {
		var (
			c         lesson.Challenge
			docsJSON  string
			completed int
		)
		if err := rows.Scan(&c.ID, &c.Title, &c.Description, &docsJSON,
			&c.BestScore, &c.Attempts, &completed); err != nil {
			return nil, fmt.Errorf("scan challenge: %w", err)
		}
		c.Completed = completed != 0

		var docs []any
		if err := json.Unmarshal([]byte(docsJSON), &docs); err != nil {
			return nil, fmt.Errorf("challenge %d: decode containers: %w", c.ID, err)
		}
		if c.Containers, err = factory.ParseList(docs); err != nil {
			return nil, fmt.Errorf("challenge %d: %w", c.ID, err)
		}

		t.Challenges = append(t.Challenges, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return t, nil
}

func (r *topicRepo) RecordResult(ctx context.Context, c *lesson.Challenge) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE challenges SET best_score = ?, attempts = ?, completed = ? WHERE id = ?`,
		c.BestScore, c.Attempts, boolToInt(c.Completed), c.ID)
	if err != nil {
		return fmt.Errorf("record result: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *topicRepo) DeleteTopic(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM topics WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete topic %d: %w", id, err)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
