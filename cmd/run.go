package cmd

import (
	"fmt"

	"github.com/abhisek/linguaquest/internal/app"
	"github.com/abhisek/linguaquest/internal/catalog"
	"github.com/abhisek/linguaquest/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, loads the lesson catalog, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	cat, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("load lesson catalog: %w", err)
	}

	return app.Run(st, cat)
}
