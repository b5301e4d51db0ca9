package checklists

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/untwistapp/untwist/internal/cli"
	"github.com/untwistapp/untwist/internal/models"
	"github.com/untwistapp/untwist/internal/validation"
)

type ChecklistAddCmd struct {
	Date string `short:"d" help:"Checklist date (YYYY-MM-DD). Defaults to today."`
}

func (c *ChecklistAddCmd) Run(ctx *cli.Context) error {
	if err := ctx.LoadSession(); err != nil {
		return err
	}

	if c.Date == "" {
		c.Date = time.Now().Format("2006-01-02")
	}

	scores, err := runChecklistForm()
	if err != nil {
		return err
	}

	entry := models.DepressionChecklistEntry{
		ID:     uuid.NewString(),
		Date:   c.Date,
		Scores: scores,
		Total:  scores.Total(),
	}

	if result := validation.New().ValidateChecklistEntry(entry); result.HasIssues() {
		return fmt.Errorf("invalid checklist entry:\n%s", result.FormatReport())
	}

	if err := ctx.Session.AddDepressionChecklist(entry); err != nil {
		return fmt.Errorf("failed to add checklist entry: %w", err)
	}

	fmt.Printf("✓ Checklist saved (%s)\n", cli.ShortID(entry.ID))
	fmt.Printf("  Total: %d/100 - %s\n", entry.Total, models.DepressionLevel(entry.Total))
	ctx.CheckBackupReminder()
	return nil
}

// runChecklistForm walks the 25 prompts grouped by category, each scored
// 0-4.
func runChecklistForm() (models.DepressionScores, error) {
	var scores models.DepressionScores

	answers := make([]string, len(models.ChecklistItems))
	var groups []*huh.Group

	var fields []huh.Field
	currentCategory := ""
	for i, item := range models.ChecklistItems {
		if item.Category != currentCategory {
			if len(fields) > 0 {
				groups = append(groups, huh.NewGroup(fields...))
				fields = nil
			}
			currentCategory = item.Category
		}
		fields = append(fields, huh.NewSelect[string]().
			Title(fmt.Sprintf("%s - %s", item.Category, item.Label)).
			Options(
				huh.NewOption("0 - Not at all", "0"),
				huh.NewOption("1 - Somewhat", "1"),
				huh.NewOption("2 - Moderately", "2"),
				huh.NewOption("3 - A lot", "3"),
				huh.NewOption("4 - Extremely", "4"),
			).
			Value(&answers[i]))
	}
	if len(fields) > 0 {
		groups = append(groups, huh.NewGroup(fields...))
	}

	form := huh.NewForm(groups...)
	if err := form.Run(); err != nil {
		return scores, fmt.Errorf("interactive form error: %w", err)
	}

	for i, item := range models.ChecklistItems {
		score, err := strconv.Atoi(answers[i])
		if err != nil {
			score = 0
		}
		scores.SetItem(item.Key, score)
	}

	return scores, nil
}

type ChecklistListCmd struct{}

func (c *ChecklistListCmd) Run(ctx *cli.Context) error {
	if err := ctx.LoadSession(); err != nil {
		return err
	}

	entries := ctx.Session.DepressionChecklists()
	if len(entries) == 0 {
		fmt.Println("No checklist entries found.")
		return nil
	}

	fmt.Printf("Depression checklists (%d):\n\n", len(entries))
	for _, entry := range entries {
		fmt.Printf("  %s  %s  %3d/100  %s\n", cli.ShortID(entry.ID), entry.Date, entry.Total, models.DepressionLevel(entry.Total))
	}
	return nil
}

type ChecklistShowCmd struct {
	ID string `arg:"" help:"Entry ID (full or prefix)."`
}

func (c *ChecklistShowCmd) Run(ctx *cli.Context) error {
	if err := ctx.LoadSession(); err != nil {
		return err
	}

	entry, err := findChecklist(ctx, c.ID)
	if err != nil {
		return err
	}

	fmt.Printf("ID:    %s\n", entry.ID)
	fmt.Printf("Date:  %s\n", entry.Date)
	fmt.Printf("Total: %d/100 - %s\n\n", entry.Total, models.DepressionLevel(entry.Total))

	items := entry.Scores.Items()
	currentCategory := ""
	for _, item := range models.ChecklistItems {
		if item.Category != currentCategory {
			currentCategory = item.Category
			fmt.Printf("%s:\n", currentCategory)
		}
		fmt.Printf("  %d  %s\n", items[item.Key], item.Label)
	}
	return nil
}

type ChecklistDeleteCmd struct {
	ID string `arg:"" help:"Entry ID (full or prefix)."`
}

func (c *ChecklistDeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.LoadSession(); err != nil {
		return err
	}

	entry, err := findChecklist(ctx, c.ID)
	if err != nil {
		return err
	}

	if err := ctx.Session.DeleteDepressionChecklist(entry.ID); err != nil {
		return fmt.Errorf("failed to delete checklist entry: %w", err)
	}
	fmt.Printf("✓ Deleted checklist entry %s\n", cli.ShortID(entry.ID))
	return nil
}

func findChecklist(ctx *cli.Context, id string) (models.DepressionChecklistEntry, error) {
	var matches []models.DepressionChecklistEntry
	for _, entry := range ctx.Session.DepressionChecklists() {
		if entry.ID == id {
			return entry, nil
		}
		if strings.HasPrefix(entry.ID, id) {
			matches = append(matches, entry)
		}
	}
	switch len(matches) {
	case 0:
		return models.DepressionChecklistEntry{}, fmt.Errorf("checklist entry not found: %s", id)
	case 1:
		return matches[0], nil
	default:
		return models.DepressionChecklistEntry{}, fmt.Errorf("ambiguous ID prefix %q matches %d entries", id, len(matches))
	}
}
