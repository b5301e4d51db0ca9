package data

import (
	"fmt"

	"github.com/untwistapp/untwist/internal/cli"
)

type AutosaveEnableCmd struct {
	Destination string `arg:"" help:"File the snapshot is mirrored to after each change."`
}

func (c *AutosaveEnableCmd) Run(ctx *cli.Context) error {
	if err := ctx.LoadSession(); err != nil {
		return err
	}

	if err := ctx.Session.SetAutoSaveEnabled(true); err != nil {
		return fmt.Errorf("failed to enable auto-save: %w", err)
	}
	ctx.Sidecar.SetDestination(c.Destination)

	fmt.Printf("✓ Auto-save enabled, mirroring to %s\n", c.Destination)
	fmt.Println("  The destination applies to this run; the enabled flag persists.")
	return nil
}

type AutosaveDisableCmd struct{}

func (c *AutosaveDisableCmd) Run(ctx *cli.Context) error {
	if err := ctx.LoadSession(); err != nil {
		return err
	}

	if err := ctx.Session.SetAutoSaveEnabled(false); err != nil {
		return fmt.Errorf("failed to disable auto-save: %w", err)
	}
	ctx.Sidecar.SetDestination("")

	fmt.Println("✓ Auto-save disabled")
	return nil
}

type AutosaveStatusCmd struct{}

func (c *AutosaveStatusCmd) Run(ctx *cli.Context) error {
	if err := ctx.LoadSession(); err != nil {
		return err
	}

	settings := ctx.Session.Settings()
	if settings.AutoSaveEnabled {
		fmt.Println("Auto-save: enabled")
		if ctx.Sidecar.Active() {
			fmt.Println("Sidecar: active for this run")
		} else {
			fmt.Println("Sidecar: idle (pass --autosave-to to set a destination for a run)")
		}
	} else {
		fmt.Println("Auto-save: disabled")
	}
	return nil
}
