package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/julianstephens/calmher/internal/backup"
	"github.com/julianstephens/calmher/internal/constants"
)

type BackupCmd struct {
	Create  BackupCreateCmd  `cmd:"" help:"Snapshot the SQLite database."`
	List    BackupListCmd    `cmd:"" help:"List snapshots, newest first."`
	Restore BackupRestoreCmd `cmd:"" help:"Replace the database with a snapshot."`
}

// backupManager only exists for the sqlite driver; the other sinks are
// either remote or a single JSON file.
func backupManager(ctx *Context) (*backup.Manager, error) {
	if ctx.Config == nil || ctx.Config.Storage.Driver != constants.DriverSQLite {
		return nil, fmt.Errorf("backups are only supported for the sqlite storage driver")
	}
	return backup.NewManager(ctx.Config.StoragePath()), nil
}

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *Context) error {
	mgr, err := backupManager(ctx)
	if err != nil {
		return err
	}
	path, err := mgr.Create(context.Background())
	if err != nil {
		return fmt.Errorf("backup failed: %w", err)
	}
	ctx.printf("%s Backup created: %s\n", okStyle.Render("✓"), filepath.Base(path))
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *Context) error {
	mgr, err := backupManager(ctx)
	if err != nil {
		return err
	}
	backups, err := mgr.List()
	if err != nil {
		return err
	}
	if len(backups) == 0 {
		ctx.println("No backups found.")
		return nil
	}

	ctx.printf("Backups in %s:\n\n", mgr.Dir())
	for _, b := range backups {
		ctx.printf("  %s  %s  %d KB\n",
			b.Timestamp.Format("2006-01-02 15:04:05"), filepath.Base(b.Path), b.Size/1024)
	}
	return nil
}

type BackupRestoreCmd struct {
	File string `arg:"" help:"Backup file name or path."`
	Yes  bool   `short:"y" help:"Do not ask for confirmation."`
}

func (c *BackupRestoreCmd) Run(ctx *Context) error {
	mgr, err := backupManager(ctx)
	if err != nil {
		return err
	}

	path := c.File
	if !filepath.IsAbs(path) && !strings.ContainsRune(path, filepath.Separator) {
		path = filepath.Join(mgr.Dir(), path)
	}

	if !c.Yes {
		ctx.printf("This replaces %s with %s.\n", ctx.Config.StoragePath(), filepath.Base(path))
		ctx.printf("Continue? [y/N]: ")
		response, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil {
			return err
		}
		response = strings.ToLower(strings.TrimSpace(response))
		if response != "y" && response != "yes" {
			ctx.println("Restore cancelled.")
			return nil
		}
	}

	safety, err := mgr.Restore(context.Background(), path)
	if err != nil {
		return err
	}
	if safety != "" {
		ctx.printf("Previous database saved as %s\n", filepath.Base(safety))
	}
	ctx.printf("%s Restored from %s\n", okStyle.Render("✓"), filepath.Base(path))
	return nil
}
