package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"mindvault/infrastructure/di"
)

// statsCmd prints aggregate learning statistics
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withContainer(func(ctx context.Context, c *di.Container) error {
			derived := c.Store.Stats()
			fmt.Printf("nodes: %d  records: %d  skills: %d  achievements unlocked: %d\n",
				derived.NodeCount, derived.RecordCount, derived.SkillCount, derived.Unlocked)

			stats := c.Store.LearningStats(ctx)
			if stats == nil {
				return c.Store.Err()
			}
			fmt.Printf("total: %d min over %d sessions, avg focus %.0f%%, streak %d days\n",
				stats.TotalMinutes, stats.TotalSessions, stats.AverageFocus, stats.StreakDays)
			for _, day := range stats.Daily {
				fmt.Printf("  %s  %4d min  %3d sessions  focus %.0f%%\n",
					day.Date, day.Duration, day.NodesReviewed, day.FocusScore)
			}
			return nil
		})
	},
}

// reportCmd prints the generated learning report
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate a learning report",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withContainer(func(ctx context.Context, c *di.Container) error {
			report := c.Store.GenerateReport(ctx)
			if report == nil {
				return c.Store.Err()
			}
			fmt.Printf("%s\n", report.Summary)
			if len(report.TopNodes) > 0 {
				fmt.Println("most studied nodes:")
				for _, id := range report.TopNodes {
					if node, ok := c.Store.NodeByID(id); ok {
						fmt.Printf("  %s (%s)\n", node.Title, id)
					} else {
						fmt.Printf("  %s\n", id)
					}
				}
			}
			return nil
		})
	},
}
