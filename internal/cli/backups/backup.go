package backups

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/untwistapp/untwist/internal/backup"
	"github.com/untwistapp/untwist/internal/cli"
	"github.com/untwistapp/untwist/internal/snapshot"
)

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *cli.Context) error {
	doc, err := ctx.Store.ExportAll()
	if err != nil {
		return fmt.Errorf("failed to read store contents: %w", err)
	}

	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backupPath, err := mgr.CreateBackup(doc)
	if err != nil {
		return fmt.Errorf("backup failed: %w", err)
	}

	if err := ctx.MarkBackupDone(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to record backup time: %v\n", err)
	}

	fmt.Printf("✓ Backup created: %s\n", filepath.Base(backupPath))
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}

	if len(backups) == 0 {
		fmt.Println("No backups found.")
		fmt.Printf("Backups are stored in: %s\n", mgr.GetBackupDir())
		return nil
	}

	fmt.Printf("Available backups (%d total, keeping most recent %d):\n\n", len(backups), backup.MaxBackups)
	for _, b := range backups {
		sizeKB := float64(b.Size) / 1024.0
		timestamp := b.Timestamp.Format("2006-01-02 15:04:05")
		filename := filepath.Base(b.Path)
		fmt.Printf("  %s  %s  (%.1f KB)\n", timestamp, filename, sizeKB)
	}
	fmt.Printf("\nBackup directory: %s\n", mgr.GetBackupDir())

	return nil
}

type BackupRestoreCmd struct {
	BackupFile string `arg:"" help:"Path or filename of the backup to restore."`
	Yes        bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *BackupRestoreCmd) Run(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())

	backupPath, err := resolveBackupPath(mgr, c.BackupFile)
	if err != nil {
		return err
	}

	// Parse up front so a corrupt file never clears the store
	doc, err := mgr.ReadBackup(backupPath)
	if err != nil {
		return err
	}

	if !c.Yes {
		fmt.Println("⚠️  WARNING: This will replace your current journal with the backup contents.")
		fmt.Println("A safety backup of your current data will be created before restoring.")
		fmt.Printf("\nRestore from: %s\n", backupPath)
		fmt.Print("Continue? [y/N]: ")

		reader := bufio.NewReader(os.Stdin)
		response, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		response = strings.TrimSpace(strings.ToLower(response))
		if response != "y" && response != "yes" {
			fmt.Println("Restore cancelled.")
			return nil
		}
	}

	current, err := ctx.Store.ExportAll()
	if err != nil {
		return fmt.Errorf("failed to read current data for safety backup: %w", err)
	}
	safetyPath, err := mgr.SafetyBackup(current)
	if err != nil {
		return fmt.Errorf("failed to create safety backup: %w", err)
	}
	fmt.Printf("Safety backup created: %s\n", filepath.Base(safetyPath))

	if err := ctx.LoadSession(); err != nil {
		return err
	}
	counts, err := ctx.Session.ImportSnapshot(doc, snapshot.ModeReplace)
	if err != nil {
		return fmt.Errorf("restore failed: %w", err)
	}

	fmt.Printf("✓ Restored %d entries from backup\n", counts.Total())
	return nil
}

// resolveBackupPath accepts an absolute path, a path relative to the
// current directory, or a bare filename inside the backup directory.
func resolveBackupPath(mgr *backup.Manager, file string) (string, error) {
	if filepath.IsAbs(file) {
		if _, err := os.Stat(file); os.IsNotExist(err) {
			return "", fmt.Errorf("backup file not found: %s", file)
		}
		return file, nil
	}

	if _, err := os.Stat(file); err == nil {
		absPath, err := filepath.Abs(file)
		if err != nil {
			return "", fmt.Errorf("failed to resolve backup path: %w", err)
		}
		return absPath, nil
	}

	possiblePath := filepath.Join(mgr.GetBackupDir(), file)
	if _, err := os.Stat(possiblePath); err == nil {
		return possiblePath, nil
	}
	return "", fmt.Errorf("backup file not found: tried current directory and %s", mgr.GetBackupDir())
}
