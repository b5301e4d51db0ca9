package gratitude

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/untwistapp/untwist/internal/cli"
	"github.com/untwistapp/untwist/internal/models"
	"github.com/untwistapp/untwist/internal/validation"
)

type GratitudeAddCmd struct {
	Date  string   `short:"d" help:"Entry date (YYYY-MM-DD). Defaults to today."`
	Items []string `arg:"" optional:"" help:"Things you are grateful for. Prompts interactively when omitted."`
}

func (c *GratitudeAddCmd) Run(ctx *cli.Context) error {
	if err := ctx.LoadSession(); err != nil {
		return err
	}

	if c.Date == "" {
		c.Date = time.Now().Format("2006-01-02")
	}

	items := trimItems(c.Items)
	if len(items) == 0 {
		var err error
		items, err = runGratitudeForm()
		if err != nil {
			return err
		}
	}

	entry := models.GratitudeEntry{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Date:      c.Date,
		Entries:   items,
	}

	if result := validation.New().ValidateGratitudeEntry(entry); result.HasIssues() {
		return fmt.Errorf("invalid gratitude entry:\n%s", result.FormatReport())
	}

	if err := ctx.Session.AddGratitudeEntry(entry); err != nil {
		return fmt.Errorf("failed to add gratitude entry: %w", err)
	}

	fmt.Printf("✓ Gratitude entry added (%s, %d items)\n", cli.ShortID(entry.ID), len(items))
	ctx.CheckBackupReminder()
	return nil
}

func runGratitudeForm() ([]string, error) {
	var raw string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("What are you grateful for today?").
				Description("One item per line.").
				Value(&raw),
		),
	)
	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("interactive form error: %w", err)
	}

	return trimItems(strings.Split(raw, "\n")), nil
}

func trimItems(items []string) []string {
	var out []string
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

type GratitudeListCmd struct{}

func (c *GratitudeListCmd) Run(ctx *cli.Context) error {
	if err := ctx.LoadSession(); err != nil {
		return err
	}

	entries := ctx.Session.GratitudeEntries()
	if len(entries) == 0 {
		fmt.Println("No gratitude entries found.")
		return nil
	}

	fmt.Printf("Gratitude entries (%d):\n\n", len(entries))
	for _, entry := range entries {
		preview := "-"
		if len(entry.Entries) > 0 {
			preview = cli.Truncate(strings.Join(entry.Entries, "; "), 50)
		}
		fmt.Printf("  %s  %s  %s\n", cli.ShortID(entry.ID), entry.Date, preview)
	}
	return nil
}

type GratitudeShowCmd struct {
	ID string `arg:"" help:"Entry ID (full or prefix)."`
}

func (c *GratitudeShowCmd) Run(ctx *cli.Context) error {
	if err := ctx.LoadSession(); err != nil {
		return err
	}

	entry, err := findGratitudeEntry(ctx, c.ID)
	if err != nil {
		return err
	}

	fmt.Printf("ID:      %s\n", entry.ID)
	fmt.Printf("Date:    %s\n", entry.Date)
	fmt.Printf("Created: %s\n", entry.CreatedAt)
	fmt.Println("Items:")
	for _, item := range entry.Entries {
		fmt.Printf("  - %s\n", item)
	}
	return nil
}

type GratitudeDeleteCmd struct {
	ID string `arg:"" help:"Entry ID (full or prefix)."`
}

func (c *GratitudeDeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.LoadSession(); err != nil {
		return err
	}

	entry, err := findGratitudeEntry(ctx, c.ID)
	if err != nil {
		return err
	}

	if err := ctx.Session.DeleteGratitudeEntry(entry.ID); err != nil {
		return fmt.Errorf("failed to delete gratitude entry: %w", err)
	}
	fmt.Printf("✓ Deleted gratitude entry %s\n", cli.ShortID(entry.ID))
	return nil
}

func findGratitudeEntry(ctx *cli.Context, id string) (models.GratitudeEntry, error) {
	var matches []models.GratitudeEntry
	for _, entry := range ctx.Session.GratitudeEntries() {
		if entry.ID == id {
			return entry, nil
		}
		if strings.HasPrefix(entry.ID, id) {
			matches = append(matches, entry)
		}
	}
	switch len(matches) {
	case 0:
		return models.GratitudeEntry{}, fmt.Errorf("gratitude entry not found: %s", id)
	case 1:
		return matches[0], nil
	default:
		return models.GratitudeEntry{}, fmt.Errorf("ambiguous ID prefix %q matches %d entries", id, len(matches))
	}
}
