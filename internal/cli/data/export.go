package data

import (
	"fmt"
	"os"
	"time"

	"github.com/untwistapp/untwist/internal/cli"
)

type ExportCmd struct {
	Output string `short:"o" help:"Output file path. Defaults to untwist-export-YYYYMMDD.json in the current directory."`
}

func (c *ExportCmd) Run(ctx *cli.Context) error {
	doc, err := ctx.Session.ExportSnapshot()
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	output := c.Output
	if output == "" {
		output = fmt.Sprintf("untwist-export-%s.json", time.Now().Format("20060102"))
	}

	data, err := doc.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(output, data, 0600); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}

	counts := len(doc.ThoughtRecords) + len(doc.DepressionChecklists) + len(doc.GratitudeEntries)
	fmt.Printf("✓ Exported %d entries to %s\n", counts, output)
	fmt.Printf("  %d thought records, %d checklists, %d gratitude entries\n",
		len(doc.ThoughtRecords), len(doc.DepressionChecklists), len(doc.GratitudeEntries))

	if err := ctx.MarkBackupDone(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to record backup time: %v\n", err)
	}

	return nil
}
