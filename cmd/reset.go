package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Maradon197/5MinuteChallenge-sub000/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset [topic-id]",
	Short: "Delete a topic, or all local data with --all",
	RunE: func(cmd *cobra.Command, args []string) error {
		all, _ := cmd.Flags().GetBool("all")
		yes, _ := cmd.Flags().GetBool("yes")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}

		if all {
			if !yes {
				return fmt.Errorf("refusing to delete all data without --yes")
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
			for _, s := range summaries {
				if err := st.TopicRepo().DeleteTopic(cmd.Context(), s.ID); err != nil {
					return fmt.Errorf("delete topic %d: %w", s.ID, err)
				}
			}
			fmt.Printf("Deleted %d topics.\n", len(summaries))
			return nil
		}

		if len(args) != 1 {
			return fmt.Errorf("pass a topic id, or --all to wipe everything")
		}
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid topic id %q", args[0])
		}

		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		if err := st.TopicRepo().DeleteTopic(cmd.Context(), id); err != nil {
			return fmt.Errorf("delete topic: %w", err)
		}
		fmt.Printf("Deleted topic %d.\n", id)
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("all", false, "Delete every topic")
	resetCmd.Flags().Bool("yes", false, "Skip the confirmation for --all")
}
