package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rghosh/devnotes/internal/progress"
	"github.com/rghosh/devnotes/internal/store"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Generate learning recommendations from the current progress",
	RunE: func(cmd *cobra.Command, args []string) error {
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

		userID, _ := cmd.Flags().GetString("user")
		current, err := loadProgress(ctx, st.ProgressStore(), userID)
		if err != nil {
			return fmt.Errorf("load progress: %w", err)
		}

		gen := progress.NewGenerator(evaluatorBackend(ctx, st))
		batch, err := gen.Generate(ctx, current)
		if err != nil {
			return err
		}

		next := progress.NewUpdater(modelPricing).ApplyRecommendations(current, batch)
		if err := st.ProgressStore().Save(ctx, next); err != nil {
			return fmt.Errorf("save progress: %w", err)
		}

		for _, r := range batch.Recommendations {
			fmt.Printf("[%s] %s  (%s, %s, ~%d min)\n",
				r.Priority, r.Title, r.Type, r.SkillArea, r.EstimatedTime)
			if r.Description != "" {
				fmt.Printf("    %s\n", r.Description)
			}
			for _, res := range r.Resources {
				fmt.Printf("    • %s — %s\n", res.Title, res.URL)
			}
		}
		fmt.Printf("\n%d recommendations (%d tokens, %s)\n",
			len(batch.Recommendations), batch.TokensUsed, batch.Model)
		return nil
	},
}
