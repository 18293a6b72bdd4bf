package cmd

import (
	"fmt"

	"github.com/abhisek/pytutor/internal/curriculum"
	"github.com/spf13/cobra"
)

var lessonsCmd = &cobra.Command{
	Use:   "lessons",
	Short: "List the lessons in the curriculum",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := loadCatalog(cmd)
		if err != nil {
			return fmt.Errorf("load curriculum: %w", err)
		}

		for i, u := range catalog.List() {
			mode := "free text"
			if u.Question.Mode == curriculum.ModeChoice {
				mode = fmt.Sprintf("choice of %d", len(u.Question.Options))
			}
			fmt.Printf("%2d. %-14s  %-30s  quiz: %s\n", i+1, u.ID, u.Title, mode)
		}
		return nil
	},
}
