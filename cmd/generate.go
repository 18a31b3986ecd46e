package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Maradon197/5MinuteChallenge-sub000/internal/curriculum"
	"github.com/Maradon197/5MinuteChallenge-sub000/internal/store"
)

var generateCmd = &cobra.Command{
	Use:   "generate <subject>",
	Short: "Generate a topic without launching the TUI",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		subject := strings.Join(args, " ")
		audience, _ := cmd.Flags().GetString("audience")
		notes, _ := cmd.Flags().GetString("notes")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		provider, err := newLLMProvider(ctx, st.EventRepo())
		if err != nil {
			return fmt.Errorf("LLM provider: %w", err)
		}
		gen := curriculum.New(provider, curriculum.DefaultConfig())

		topics := st.TopicRepo()
		var prior []string
		if summaries, err := topics.ListTopics(ctx); err == nil {
			for _, s := range summaries {
				prior = append(prior, s.Title)
			}
		}

		fmt.Printf("Generating a topic on %q...\n", subject)
		topic, err := gen.GenerateTopic(ctx, curriculum.GenerateInput{
			Subject:     subject,
			Audience:    audience,
			Notes:       notes,
			PriorTopics: prior,
		})
		if err != nil {
			return fmt.Errorf("generate topic: %w", err)
		}

		if err := topics.SaveTopic(ctx, topic); err != nil {
			return fmt.Errorf("save topic: %w", err)
		}

		fmt.Printf("Saved topic %d: %s\n", topic.ID, topic.Title)
		for i, c := range topic.Challenges {
			fmt.Printf("  %d. %s (%d containers)\n", i+1, c.Title, len(c.Containers))
		}
		return nil
	},
}

func init() {
	generateCmd.Flags().String("audience", "", "Who the lesson is for (e.g. \"complete beginners\")")
	generateCmd.Flags().String("notes", "", "Extra guidance for the lesson author")
}
