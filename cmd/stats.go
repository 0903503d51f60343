package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rghosh/devnotes/internal/progress"
	"github.com/rghosh/devnotes/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
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

		ctx := context.Background()
		userID, _ := cmd.Flags().GetString("user")

		p, err := st.ProgressStore().Load(ctx, userID)
		if err != nil {
			return fmt.Errorf("load progress: %w", err)
		}
		if p == nil {
			fmt.Println("No progress recorded yet.")
			return nil
		}

		fmt.Println("Skills")
		fmt.Println(strings.Repeat("─", 48))
		for _, key := range progress.SkillAreas {
			sk := p.Skill(key)
			if sk == nil {
				continue
			}
			fmt.Printf("%-10s  level %2d/10  %3d%%  (%d assessments)\n",
				sk.Name, sk.Level, sk.Progress, sk.AssessmentCount)
		}

		fmt.Println()
		fmt.Printf("Assessments: %d  ·  average %.1f/10\n", p.TotalAssessments, p.AverageScore)
		fmt.Printf("Streak:      %d days (longest %d, %d active days)\n",
			p.Streak.CurrentStreak, p.Streak.LongestStreak, p.Streak.TotalDays)
		fmt.Printf("Tokens:      %d total  ·  %d today  ·  $%.4f estimated\n",
			p.TokenUsage.TotalTokens, p.TokenUsage.TokensToday, p.TokenUsage.EstimatedCost)

		events, err := st.EventRepo().QueryAssessments(ctx, store.QueryOpts{Limit: 10})
		if err != nil {
			return fmt.Errorf("query assessments: %w", err)
		}
		if len(events) == 0 {
			return nil
		}

		fmt.Println()
		fmt.Println("Recent assessments")
		fmt.Println(strings.Repeat("─", 72))
		fmt.Printf("%-19s  %-10s  %-6s  %-5s  %-7s  %s\n",
			"Timestamp", "Skill", "Score", "Qs", "Tokens", "Model")
		for _, e := range events {
			fmt.Printf("%-19s  %-10s  %-6.1f  %-5d  %-7d  %s\n",
				e.Timestamp.Local().Format("2006-01-02 15:04:05"),
				e.SkillArea, e.Score, e.QuestionsAnswered, e.TokensUsed, e.Model)
		}
		return nil
	},
}
