package data

import (
	"fmt"
	"os"

	"github.com/untwistapp/untwist/internal/cli"
	"github.com/untwistapp/untwist/internal/snapshot"
	"github.com/untwistapp/untwist/internal/validation"
)

type ImportCmd struct {
	Files []string `arg:"" help:"Snapshot files to import. With multiple files, later files win on ID collisions."`
	Mode  string   `short:"m" help:"Import mode: merge (upsert into existing data) or replace (clear first)." default:"merge" enum:"merge,replace"`
	Check bool     `help:"Parse and validate the files without touching the store."`
}

func (c *ImportCmd) Run(ctx *cli.Context) error {
	mode, err := snapshot.ParseMode(c.Mode)
	if err != nil {
		return err
	}

	var docs []snapshot.Document
	for _, file := range c.Files {
		data, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", file, err)
		}
		doc, err := snapshot.Parse(data)
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		docs = append(docs, doc)
	}

	merged := snapshot.Merge(docs...)

	if result := validation.New().ValidateDocument(merged); result.HasIssues() {
		fmt.Println(result.FormatReport())
		if c.Check {
			return fmt.Errorf("validation found %d issue(s)", len(result.Issues))
		}
		fmt.Println("Importing anyway; run with --check to inspect without importing.")
	}

	if c.Check {
		fmt.Printf("✓ %d file(s) parsed successfully\n", len(c.Files))
		fmt.Printf("  Would import %d thought records, %d checklists, %d gratitude entries (mode: %s)\n",
			len(merged.ThoughtRecords), len(merged.DepressionChecklists), len(merged.GratitudeEntries), mode)
		return nil
	}

	if err := ctx.LoadSession(); err != nil {
		return err
	}

	counts, err := ctx.Session.ImportSnapshot(merged, mode)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	fmt.Printf("✓ Imported %d entries (mode: %s)\n", counts.Total(), mode)
	fmt.Printf("  %d thought records, %d checklists, %d gratitude entries\n",
		counts.ThoughtRecords, counts.DepressionChecklists, counts.GratitudeEntries)
	return nil
}
