// Package config loads the optional YAML settings file that tunes gameplay.
// Core packages keep their own Config structs free of serialization tags;
// this package owns the file format and converts into them.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Maradon197/5MinuteChallenge-sub000/internal/lesson"
	"github.com/Maradon197/5MinuteChallenge-sub000/internal/scoring"
	"github.com/Maradon197/5MinuteChallenge-sub000/internal/timer"
)

// Config is the on-disk settings shape.
type Config struct {
	Timer   TimerConfig   `yaml:"timer"`
	Scoring ScoringConfig `yaml:"scoring"`
	Lesson  LessonConfig  `yaml:"lesson"`
}

// TimerConfig tunes the countdown.
type TimerConfig struct {
	InitialSeconds     int `yaml:"initial_seconds"`
	LowTimeSeconds     int `yaml:"low_time_seconds"`
	WarningSeconds     int `yaml:"warning_seconds"`
	AnswerBonusSeconds int `yaml:"answer_bonus_seconds"`
}

// ScoringConfig tunes point values. TimeBonusPerSecond is zero (disabled)
// unless explicitly set.
type ScoringConfig struct {
	BasePoints         int `yaml:"base_points"`
	StreakMultiplier   int `yaml:"streak_multiplier"`
	PerfectBonus       int `yaml:"perfect_bonus"`
	TimeBonusPerSecond int `yaml:"time_bonus_per_second"`
}

// LessonConfig tunes session behavior.
type LessonConfig struct {
	MinAnswerTimeMs int `yaml:"min_answer_time_ms"`
}

// Default returns the standard gameplay settings.
func Default() Config {
	t := timer.DefaultConfig()
	s := scoring.DefaultConfig()
	l := lesson.DefaultConfig()
	return Config{
		Timer: TimerConfig{
			InitialSeconds:     t.InitialSeconds,
			LowTimeSeconds:     t.LowTimeSeconds,
			WarningSeconds:     t.WarningSeconds,
			AnswerBonusSeconds: t.AnswerBonusSeconds,
		},
		Scoring: ScoringConfig{
			BasePoints:         s.BasePoints,
			StreakMultiplier:   s.StreakMultiplier,
			PerfectBonus:       s.PerfectBonus,
			TimeBonusPerSecond: s.TimeBonusPerSecond,
		},
		Lesson: LessonConfig{
			MinAnswerTimeMs: int(l.MinAnswerTime / time.Millisecond),
		},
	}
}

// Load reads the YAML file at path over the defaults. A missing file is not
// an error; the defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// DefaultPath resolves the settings file location:
// 1. FIVEMIN_CONFIG environment variable
// 2. $XDG_CONFIG_HOME/fivemin/config.yaml
// 3. ~/.config/fivemin/config.yaml
func DefaultPath() (string, error) {
	if p := os.Getenv("FIVEMIN_CONFIG"); p != "" {
		return p, nil
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}

	return filepath.Join(configHome, "fivemin", "config.yaml"), nil
}

func (c Config) validate() error {
	if c.Timer.InitialSeconds <= 0 {
		return fmt.Errorf("timer.initial_seconds must be positive")
	}
	if c.Timer.LowTimeSeconds < 0 || c.Timer.WarningSeconds < c.Timer.LowTimeSeconds {
		return fmt.Errorf("timer thresholds must satisfy 0 <= low_time_seconds <= warning_seconds")
	}
	if c.Scoring.BasePoints < 0 || c.Scoring.StreakMultiplier < 0 || c.Scoring.PerfectBonus < 0 || c.Scoring.TimeBonusPerSecond < 0 {
		return fmt.Errorf("scoring values must be non-negative")
	}
	if c.Lesson.MinAnswerTimeMs < 0 {
		return fmt.Errorf("lesson.min_answer_time_ms must be non-negative")
	}
	return nil
}

// TimerEngineConfig converts to the countdown engine's config.
func (c Config) TimerEngineConfig() timer.Config {
	return timer.Config{
		InitialSeconds:     c.Timer.InitialSeconds,
		LowTimeSeconds:     c.Timer.LowTimeSeconds,
		WarningSeconds:     c.Timer.WarningSeconds,
		AnswerBonusSeconds: c.Timer.AnswerBonusSeconds,
	}
}

// ScoringEngineConfig converts to the scoring engine's config.
func (c Config) ScoringEngineConfig() scoring.Config {
	return scoring.Config{
		BasePoints:         c.Scoring.BasePoints,
		StreakMultiplier:   c.Scoring.StreakMultiplier,
		PerfectBonus:       c.Scoring.PerfectBonus,
		TimeBonusPerSecond: c.Scoring.TimeBonusPerSecond,
	}
}

// SessionConfig converts to the lesson session's config.
func (c Config) SessionConfig() lesson.Config {
	return lesson.Config{
		MinAnswerTime: time.Duration(c.Lesson.MinAnswerTimeMs) * time.Millisecond,
	}
}
