package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/untwistapp/untwist/internal/autosave"
	"github.com/untwistapp/untwist/internal/cli"
	"github.com/untwistapp/untwist/internal/cli/backups"
	"github.com/untwistapp/untwist/internal/cli/checklists"
	"github.com/untwistapp/untwist/internal/cli/data"
	"github.com/untwistapp/untwist/internal/cli/gratitude"
	"github.com/untwistapp/untwist/internal/cli/system"
	"github.com/untwistapp/untwist/internal/cli/thoughts"
	apperrors "github.com/untwistapp/untwist/internal/errors"
	"github.com/untwistapp/untwist/internal/logger"
	"github.com/untwistapp/untwist/internal/session"
	"github.com/untwistapp/untwist/internal/storage"
	"github.com/untwistapp/untwist/internal/storage/sqlite"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Database path. A .json path selects the flat-file store instead of SQLite." type:"string" default:"~/.config/untwist/untwist.db"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	// The auto-save destination is never persisted; it only lives for the
	// duration of a single invocation.
	AutosaveTo string `help:"Mirror every change to this snapshot file for the duration of the run." placeholder:"PATH"`

	Init    system.InitCmd    `cmd:"" help:"Initialize untwist storage."`
	Migrate system.MigrateCmd `cmd:"" help:"Run database migrations."`
	Doctor  system.DoctorCmd  `cmd:"" help:"Run health checks and diagnostics."`
	Tui     system.TuiCmd     `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Thought struct {
		Add    thoughts.ThoughtAddCmd    `cmd:"" help:"Record a new thought record."`
		List   thoughts.ThoughtListCmd   `cmd:"" help:"List thought records."`
		Show   thoughts.ThoughtShowCmd   `cmd:"" help:"Show a thought record in full."`
		Delete thoughts.ThoughtDeleteCmd `cmd:"" help:"Delete a thought record."`
	} `cmd:"" help:"Manage thought records."`
	Checklist struct {
		Add    checklists.ChecklistAddCmd    `cmd:"" help:"Fill in a depression checklist."`
		List   checklists.ChecklistListCmd   `cmd:"" help:"List checklist entries."`
		Show   checklists.ChecklistShowCmd   `cmd:"" help:"Show a checklist entry in full."`
		Delete checklists.ChecklistDeleteCmd `cmd:"" help:"Delete a checklist entry."`
	} `cmd:"" help:"Manage depression checklists."`
	Gratitude struct {
		Add    gratitude.GratitudeAddCmd    `cmd:"" help:"Record a gratitude entry."`
		List   gratitude.GratitudeListCmd   `cmd:"" help:"List gratitude entries."`
		Show   gratitude.GratitudeShowCmd   `cmd:"" help:"Show a gratitude entry in full."`
		Delete gratitude.GratitudeDeleteCmd `cmd:"" help:"Delete a gratitude entry."`
	} `cmd:"" help:"Manage gratitude entries."`
	Export data.ExportCmd `cmd:"" help:"Export all data to a snapshot file."`
	Import data.ImportCmd `cmd:"" help:"Import one or more snapshot files."`
	Stats  data.StatsCmd  `cmd:"" help:"Show journal statistics."`
	Backup struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage snapshot backups."`
	Autosave struct {
		Enable  data.AutosaveEnableCmd  `cmd:"" help:"Enable auto-save mirroring for this run."`
		Disable data.AutosaveDisableCmd `cmd:"" help:"Disable auto-save."`
		Status  data.AutosaveStatusCmd  `cmd:"" help:"Show auto-save status."`
	} `cmd:"" help:"Manage auto-save mirroring."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("untwist"),
		kong.Description("CBT journaling companion: thought records, mood checklists, gratitude"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": "v0.2.0"},
	)

	configPath := expandHome(CLI.Config)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(configPath),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	// A .json config selects the flat-file store; anything else is SQLite
	var store storage.Provider
	if strings.HasSuffix(configPath, ".json") {
		store = storage.NewJSONStore(configPath)
	} else {
		store = sqlite.NewStore(configPath)
	}

	sidecar := autosave.New()
	if CLI.AutosaveTo != "" {
		sidecar.SetDestination(expandHome(CLI.AutosaveTo))
	}
	appCtx := &cli.Context{
		Store:   store,
		Session: session.New(store, sidecar),
		Sidecar: sidecar,
	}

	// Load the store before running the command (init and doctor handle
	// their own loading)
	if ctx.Selected() != nil {
		name := ctx.Selected().Name
		if name != "init" && name != "doctor" {
			if err := store.Load(); err != nil {
				apperrors.Fatal(err)
			}
			defer store.Close()
		}
	}

	if err := ctx.Run(appCtx); err != nil {
		store.Close()
		apperrors.Fatal(err)
	}
}

// expandHome resolves a leading ~/ against the user's home directory.
func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
