package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/pytutor/internal/certificate"
	"github.com/abhisek/pytutor/internal/coach"
	"github.com/abhisek/pytutor/internal/curriculum"
	"github.com/abhisek/pytutor/internal/dispatch"
	"github.com/abhisek/pytutor/internal/engine"
	"github.com/abhisek/pytutor/internal/llm"
	"github.com/abhisek/pytutor/internal/store"
	"github.com/abhisek/pytutor/internal/tui"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	catalog, err := loadCatalog(cmd)
	if err != nil {
		return fmt.Errorf("load curriculum: %w", err)
	}

	svc := engine.NewService(catalog, st.ProgressRepo(), st.AttemptRepo(), engine.DefaultConfig())
	dispatcher := dispatch.New(svc)

	var provider llm.Provider
	if p, err := llm.NewProviderFromEnv(ctx, st.EventRepo()); err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "The coach will use canned answers.")
	} else {
		provider = p
	}

	userID, _ := cmd.Flags().GetString("user")
	name, _ := cmd.Flags().GetString("name")
	if name == "" {
		name = os.Getenv("USER")
	}

	return tui.Run(tui.Deps{
		Dispatcher:  dispatcher,
		Catalog:     catalog,
		Coach:       coach.NewService(provider, coach.DefaultConfig()),
		Issuer:      certificate.NewIssuer(),
		UserID:      userID,
		DisplayName: name,
	})
}

// loadCatalog reads the curriculum file named by --curriculum, falling back
// to the built-in course.
func loadCatalog(cmd *cobra.Command) (*curriculum.Catalog, error) {
	path, _ := cmd.Flags().GetString("curriculum")
	if path == "" {
		return curriculum.Default(), nil
	}
	return curriculum.LoadFile(path)
}
