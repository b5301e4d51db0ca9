package thoughts

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

type ThoughtAddCmd struct {
	Date        string `short:"d" help:"Record date (YYYY-MM-DD). Defaults to today."`
	Situation   string `short:"s" help:"What happened."`
	Thoughts    string `short:"t" help:"The automatic thoughts."`
	Emotions    string `short:"e" help:"Emotions as name:intensity pairs, comma-separated (e.g. 'anxious:80,sad:40')."`
	Distortions string `short:"D" help:"Comma-separated distortion numbers (1-10)."`
	Response    string `short:"r" help:"The rational response."`
	Outcome     string `short:"o" help:"Outcome emotions as name:intensity pairs, comma-separated."`
	Interactive bool   `short:"i" help:"Fill in the record with an interactive form."`
}

func (c *ThoughtAddCmd) Run(ctx *cli.Context) error {
	if err := ctx.LoadSession(); err != nil {
		return err
	}

	if c.Date == "" {
		c.Date = time.Now().Format("2006-01-02")
	}

	if c.Interactive || c.Situation == "" {
		if err := c.runForm(); err != nil {
			return err
		}
	}

	emotions, err := ParseEmotions(c.Emotions)
	if err != nil {
		return err
	}
	outcome, err := ParseEmotions(c.Outcome)
	if err != nil {
		return err
	}
	distortions, err := ParseDistortions(c.Distortions)
	if err != nil {
		return err
	}

	rec := models.ThoughtRecord{
		ID:                uuid.NewString(),
		CreatedAt:         time.Now().UTC().Format(time.RFC3339),
		Date:              c.Date,
		Situation:         c.Situation,
		Emotions:          emotions,
		AutomaticThoughts: c.Thoughts,
		Distortions:       distortions,
		RationalResponse:  c.Response,
		OutcomeEmotions:   outcome,
	}

	if result := validation.New().ValidateThoughtRecord(rec); result.HasIssues() {
		return fmt.Errorf("invalid thought record:\n%s", result.FormatReport())
	}

	if err := ctx.Session.AddThoughtRecord(rec); err != nil {
		return fmt.Errorf("failed to add thought record: %w", err)
	}

	fmt.Printf("✓ Thought record added (%s)\n", cli.ShortID(rec.ID))
	ctx.CheckBackupReminder()
	return nil
}

func (c *ThoughtAddCmd) runForm() error {
	var distortionIDs []string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Date (YYYY-MM-DD)").
				Value(&c.Date),
			huh.NewText().
				Title("Situation").
				Description("What happened? Where were you?").
				Value(&c.Situation),
			huh.NewText().
				Title("Automatic thoughts").
				Description("What went through your mind?").
				Value(&c.Thoughts),
			huh.NewInput().
				Title("Emotions").
				Description("name:intensity pairs, comma-separated (e.g. 'anxious:80,sad:40')").
				Value(&c.Emotions),
		),
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Cognitive distortions").
				Options(distortionOptions()...).
				Value(&distortionIDs),
			huh.NewText().
				Title("Rational response").
				Description("A more balanced way to see it.").
				Value(&c.Response),
			huh.NewInput().
				Title("Outcome emotions").
				Description("How do you feel now? Same format as above.").
				Value(&c.Outcome),
		),
	)

	if err := form.Run(); err != nil {
		return fmt.Errorf("interactive form error: %w", err)
	}

	c.Distortions = strings.Join(distortionIDs, ",")
	return nil
}

func distortionOptions() []huh.Option[string] {
	var opts []huh.Option[string]
	for _, d := range models.CognitiveDistortions {
		opts = append(opts, huh.NewOption(d.Name, strconv.Itoa(d.ID)))
	}
	return opts
}

// ParseEmotions parses "name:intensity" pairs separated by commas.
func ParseEmotions(s string) ([]models.Emotion, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	var emotions []models.Emotion
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, intensityStr, found := strings.Cut(part, ":")
		if !found {
			return nil, fmt.Errorf("invalid emotion %q (expected name:intensity)", part)
		}
		intensity, err := strconv.Atoi(strings.TrimSpace(intensityStr))
		if err != nil {
			return nil, fmt.Errorf("invalid intensity in %q: %w", part, err)
		}
		emotions = append(emotions, models.Emotion{
			Name:      strings.TrimSpace(name),
			Intensity: intensity,
		})
	}
	return emotions, nil
}

// ParseDistortions parses a comma-separated list of distortion numbers.
func ParseDistortions(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	var ids []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid distortion number %q", part)
		}
		if _, ok := models.DistortionByID(id); !ok {
			return nil, fmt.Errorf("unknown distortion number %d (valid: 1-%d)", id, len(models.CognitiveDistortions))
		}
		ids = append(ids, id)
	}
	return ids, nil
}

type ThoughtListCmd struct {
	From string `help:"Only show records on or after this date (YYYY-MM-DD)."`
	To   string `help:"Only show records on or before this date (YYYY-MM-DD)."`
}

func (c *ThoughtListCmd) Run(ctx *cli.Context) error {
	var (
		records []models.ThoughtRecord
		err     error
	)
	if c.From != "" || c.To != "" {
		from := c.From
		if from == "" {
			from = "0000-01-01"
		}
		to := c.To
		if to == "" {
			to = "9999-12-31"
		}
		records, err = ctx.Store.GetThoughtRecordsByDateRange(from, to)
	} else {
		if err := ctx.LoadSession(); err != nil {
			return err
		}
		records = ctx.Session.ThoughtRecords()
	}
	if err != nil {
		return fmt.Errorf("failed to list thought records: %w", err)
	}

	if len(records) == 0 {
		fmt.Println("No thought records found.")
		return nil
	}

	fmt.Printf("Thought records (%d):\n\n", len(records))
	for _, rec := range records {
		fmt.Printf("  %s  %s  %s\n", cli.ShortID(rec.ID), rec.Date, cli.Truncate(rec.Situation, 50))
	}
	return nil
}

type ThoughtShowCmd struct {
	ID string `arg:"" help:"Record ID (full or prefix)."`
}

func (c *ThoughtShowCmd) Run(ctx *cli.Context) error {
	if err := ctx.LoadSession(); err != nil {
		return err
	}

	rec, err := findThoughtRecord(ctx, c.ID)
	if err != nil {
		return err
	}

	fmt.Printf("ID:          %s\n", rec.ID)
	fmt.Printf("Date:        %s\n", rec.Date)
	fmt.Printf("Created:     %s\n", rec.CreatedAt)
	fmt.Printf("Situation:   %s\n", rec.Situation)
	fmt.Printf("Thoughts:    %s\n", rec.AutomaticThoughts)
	fmt.Printf("Emotions:    %s\n", cli.FormatEmotions(rec.Emotions))
	fmt.Printf("Distortions: %s\n", cli.FormatDistortions(rec.Distortions))
	fmt.Printf("Response:    %s\n", rec.RationalResponse)
	fmt.Printf("Outcome:     %s\n", cli.FormatEmotions(rec.OutcomeEmotions))
	return nil
}

type ThoughtDeleteCmd struct {
	ID string `arg:"" help:"Record ID (full or prefix)."`
}

func (c *ThoughtDeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.LoadSession(); err != nil {
		return err
	}

	rec, err := findThoughtRecord(ctx, c.ID)
	if err != nil {
		return err
	}

	if err := ctx.Session.DeleteThoughtRecord(rec.ID); err != nil {
		return fmt.Errorf("failed to delete thought record: %w", err)
	}
	fmt.Printf("✓ Deleted thought record %s\n", cli.ShortID(rec.ID))
	return nil
}

// findThoughtRecord resolves a full ID or unique prefix against the cache.
func findThoughtRecord(ctx *cli.Context, id string) (models.ThoughtRecord, error) {
	var matches []models.ThoughtRecord
	for _, rec := range ctx.Session.ThoughtRecords() {
		if rec.ID == id {
			return rec, nil
		}
		if strings.HasPrefix(rec.ID, id) {
			matches = append(matches, rec)
		}
	}
	switch len(matches) {
	case 0:
		return models.ThoughtRecord{}, fmt.Errorf("thought record not found: %s", id)
	case 1:
		return matches[0], nil
	default:
		return models.ThoughtRecord{}, fmt.Errorf("ambiguous ID prefix %q matches %d records", id, len(matches))
	}
}
