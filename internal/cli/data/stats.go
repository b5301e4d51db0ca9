package data

import (
	"fmt"

	"github.com/untwistapp/untwist/internal/cli"
	"github.com/untwistapp/untwist/internal/models"
)

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *cli.Context) error {
	stats, err := ctx.Store.GetStats()
	if err != nil {
		return fmt.Errorf("failed to read stats: %w", err)
	}

	fmt.Println("Journal statistics:")
	fmt.Printf("  Thought records:       %d\n", stats.ThoughtRecords)
	fmt.Printf("  Depression checklists: %d\n", stats.DepressionChecklists)
	fmt.Printf("  Gratitude entries:     %d\n", stats.GratitudeEntries)
	fmt.Printf("  Total:                 %d\n", stats.Total())

	if err := ctx.LoadSession(); err != nil {
		return nil
	}
	checklists := ctx.Session.DepressionChecklists()
	if len(checklists) > 0 {
		latest := checklists[0]
		fmt.Printf("\nLatest checklist (%s): %d/100 - %s\n", latest.Date, latest.Total, models.DepressionLevel(latest.Total))
	}

	return nil
}
