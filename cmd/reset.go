package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rghosh/devnotes/internal/progress"
	"github.com/rghosh/devnotes/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the progress record to its starting state",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			return fmt.Errorf("refusing to reset without --yes")
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

		userID, _ := cmd.Flags().GetString("user")
		seed := progress.Default(userID, time.Now().UTC())
		if err := st.ProgressStore().Save(cmd.Context(), seed); err != nil {
			return fmt.Errorf("save progress: %w", err)
		}

		fmt.Printf("Progress for %q reset to defaults. Event history is kept.\n", userID)
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm the reset")
}
