package cli

import (
	"errors"
	"fmt"

	"github.com/julianstephens/calmher/internal/keyring"
	"github.com/julianstephens/calmher/internal/storage/postgres"
)

type KeyringCmd struct {
	Set    KeyringSetCmd    `cmd:"" help:"Store the PostgreSQL connection string in the OS keyring."`
	Delete KeyringDeleteCmd `cmd:"" help:"Remove the stored connection string."`
	Status KeyringStatusCmd `cmd:"" help:"Report whether a connection string is stored."`
}

type KeyringSetCmd struct {
	DSN string `arg:"" help:"PostgreSQL connection string (may contain a password)."`
}

func (c *KeyringSetCmd) Run(ctx *Context) error {
	if !keyring.IsAvailable() {
		return fmt.Errorf("no OS keyring is available on this system")
	}
	// the keyring is the one place a password may live
	if err := postgres.ValidateConnString(c.DSN); err != nil && !errors.Is(err, postgres.ErrEmbeddedCredentials) {
		return err
	}
	if err := keyring.SetConnectionString(c.DSN); err != nil {
		return err
	}
	ctx.println("Connection string stored in the OS keyring.")
	return nil
}

type KeyringDeleteCmd struct{}

func (c *KeyringDeleteCmd) Run(ctx *Context) error {
	err := keyring.DeleteConnectionString()
	if errors.Is(err, keyring.ErrNotFound) {
		ctx.println("No connection string stored.")
		return nil
	}
	if err != nil {
		return err
	}
	ctx.println("Connection string removed from the OS keyring.")
	return nil
}

type KeyringStatusCmd struct{}

func (c *KeyringStatusCmd) Run(ctx *Context) error {
	_, err := keyring.GetConnectionString()
	if errors.Is(err, keyring.ErrNotFound) {
		ctx.println("No connection string stored.")
		return nil
	}
	if err != nil {
		return err
	}
	ctx.println("A connection string is stored.")
	return nil
}
