package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Maradon197/5MinuteChallenge-sub000/internal/app"
	"github.com/Maradon197/5MinuteChallenge-sub000/internal/config"
	"github.com/Maradon197/5MinuteChallenge-sub000/internal/curriculum"
	"github.com/Maradon197/5MinuteChallenge-sub000/internal/llm"
	"github.com/Maradon197/5MinuteChallenge-sub000/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	deps := app.Deps{
		Topics: st.TopicRepo(),
		Config: cfg,
	}

	provider, err := newLLMProvider(ctx, st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Topic generation will be unavailable.")
	} else {
		deps.Generator = curriculum.New(provider, curriculum.DefaultConfig())
	}

	return app.Run(deps)
}

// loadConfig reads the optional YAML config file; a missing file yields the
// defaults.
func loadConfig() (config.Config, error) {
	path, err := config.DefaultPath()
	if err != nil {
		return config.Config{}, fmt.Errorf("resolve config path: %w", err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// newLLMProvider builds the provider from FIVEMIN_* variables, falling back
// to probing the standard vendor key variables.
func newLLMProvider(ctx context.Context, events store.EventRepo) (llm.Provider, error) {
	cfg := llm.ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := llm.DiscoverConfig()
		if !ok {
			return nil, err
		}
		cfg = discovered
	}
	return llm.NewProvider(ctx, cfg, events)
}
