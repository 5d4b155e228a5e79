package cmd

import (
	"fmt"
	"strings"

	"github.com/inkinquiry/cmdmaster/internal/catalog"
	"github.com/inkinquiry/cmdmaster/internal/progress"
	"github.com/inkinquiry/cmdmaster/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
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

		tracker := progress.New(cmd.Context(), s.KV())

		fmt.Println("Progress by Tier")
		fmt.Println(strings.Repeat("─", 44))
		fmt.Printf("%-14s  %10s  %8s\n", "Tier", "Learned", "Percent")
		fmt.Println(strings.Repeat("─", 44))

		for _, tier := range catalog.AllTiers() {
			done, total := tracker.TierCounts(tier)
			fmt.Printf("%-14s  %7d/%-2d  %7d%%\n",
				tier, done, total, tracker.TierProgress(tier))
		}

		overall := tracker.OverallProgress()
		fmt.Println(strings.Repeat("─", 44))
		fmt.Printf("%-14s  %7d/%-3d %7d%%\n",
			"TOTAL", overall.Completed, overall.Total, overall.Percentage)

		fmt.Println()
		fmt.Printf("Streak:  %d day(s)\n", tracker.CurrentStreak())
		fmt.Printf("Title:   %s\n", catalog.LearnerTitle(overall.Percentage))

		if lv, ok := tracker.LastViewed(); ok {
			fmt.Printf("Last viewed:  %s (%s)\n", lv.Command, lv.Tier)
		}
		return nil
	},
}
