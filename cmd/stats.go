package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/pytutor/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show progress for every tracked user",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		records, err := s.ProgressRepo().All(context.Background())
		if err != nil {
			return fmt.Errorf("query progress: %w", err)
		}

		if len(records) == 0 {
			fmt.Println("No progress recorded yet.")
			return nil
		}

		fmt.Printf("%-12s  %-16s  %-14s  %6s  %7s  %8s  %-10s  %-16s\n",
			"User", "Name", "Lesson", "Points", "Passed", "Activity", "Joined", "Last active")
		fmt.Println(strings.Repeat("─", 100))

		for _, p := range records {
			fmt.Printf("%-12s  %-16s  %-14s  %6d  %7d  %8d  %-10s  %-16s\n",
				p.UserID,
				p.DisplayName,
				p.CurrentLessonID,
				p.Points,
				p.LessonsCompleted,
				p.ActivityCount,
				p.JoinedAt.Local().Format("2006-01-02"),
				p.LastActivityAt.Local().Format("2006-01-02 15:04"),
			)
		}
		return nil
	},
}
