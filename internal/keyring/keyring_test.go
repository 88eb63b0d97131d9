package keyring

import (
	"errors"
	"testing"

	"github.com/zalando/go-keyring"
)

func TestConnectionStringLifecycle(t *testing.T) {
	keyring.MockInit()

	if _, err := GetConnectionString(); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on empty keyring, got %v", err)
	}

	const dsn = "postgresql://calm@localhost:5432/calmher?sslmode=disable"
	if err := SetConnectionString(dsn); err != nil {
		t.Fatalf("SetConnectionString failed: %v", err)
	}

	got, err := GetConnectionString()
	if err != nil {
		t.Fatalf("GetConnectionString failed: %v", err)
	}
	if got != dsn {
		t.Errorf("got %q, want %q", got, dsn)
	}

	if err := DeleteConnectionString(); err != nil {
		t.Fatalf("DeleteConnectionString failed: %v", err)
	}
	if err := DeleteConnectionString(); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestSetConnectionString_Empty(t *testing.T) {
	keyring.MockInit()

	if err := SetConnectionString("  "); err == nil {
		t.Error("expected error for empty connection string")
	}
}

func TestResolveConnectionString(t *testing.T) {
	keyring.MockInit()

	got, err := ResolveConnectionString("host=db user=calm")
	if err != nil || got != "host=db user=calm" {
		t.Fatalf("configured value should win, got %q, %v", got, err)
	}

	if _, err := ResolveConnectionString(""); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound without keyring entry, got %v", err)
	}

	if err := SetConnectionString("host=vault"); err != nil {
		t.Fatalf("SetConnectionString failed: %v", err)
	}
	got, err = ResolveConnectionString("")
	if err != nil || got != "host=vault" {
		t.Errorf("expected keyring fallback, got %q, %v", got, err)
	}
}

func TestIsAvailable_Mock(t *testing.T) {
	keyring.MockInit()

	if !IsAvailable() {
		t.Error("mock keyring should be available")
	}
}
