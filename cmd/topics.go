package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Maradon197/5MinuteChallenge-sub000/internal/store"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List stored topics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		summaries, err := st.TopicRepo().ListTopics(cmd.Context())
		if err != nil {
			return fmt.Errorf("list topics: %w", err)
		}
		if len(summaries) == 0 {
			fmt.Println("No topics yet. Run 'fivemin generate <subject>' to create one.")
			return nil
		}

		fmt.Printf("%-5s  %-40s  %s\n", "ID", "Title", "Done")
		for _, s := range summaries {
			title := s.Title
			if len(title) > 40 {
				title = title[:37] + "..."
			}
			fmt.Printf("%-5d  %-40s  %d/%d\n", s.ID, title, s.Completed, s.Challenges)
		}
		return nil
	},
}
