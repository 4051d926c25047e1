package state_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/arenaku/courtbook/internal/state"
)

func TestFileStore_UnsetSlotsAreEmpty(t *testing.T) {
	store := state.NewFileStore(filepath.Join(t.TempDir(), "state.json"))
	ctx := context.Background()

	id, err := store.LastBookingID(ctx)
	if err != nil {
		t.Fatalf("LastBookingID failed: %v", err)
	}
	if id != "" {
		t.Fatalf("expected empty id, got %q", id)
	}

	token, err := store.SessionToken(ctx)
	if err != nil {
		t.Fatalf("SessionToken failed: %v", err)
	}
	if token != "" {
		t.Fatalf("expected empty token, got %q", token)
	}
}

func TestFileStore_SurvivesReinstantiation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "courtbook", "state.json")
	ctx := context.Background()

	first := state.NewFileStore(path)
	if err := first.SetLastBookingID(ctx, "42"); err != nil {
		t.Fatalf("SetLastBookingID failed: %v", err)
	}
	if err := first.SetSessionToken(ctx, "tok"); err != nil {
		t.Fatalf("SetSessionToken failed: %v", err)
	}

	// A fresh instance on the same path sees the prior writes, the way a
	// new process invocation would.
	second := state.NewFileStore(path)
	id, err := second.LastBookingID(ctx)
	if err != nil {
		t.Fatalf("LastBookingID failed: %v", err)
	}
	if id != "42" {
		t.Fatalf("id = %q, want 42", id)
	}

	token, err := second.SessionToken(ctx)
	if err != nil {
		t.Fatalf("SessionToken failed: %v", err)
	}
	if token != "tok" {
		t.Fatalf("token = %q, want tok", token)
	}
}

func TestFileStore_LastWriteWins(t *testing.T) {
	store := state.NewFileStore(filepath.Join(t.TempDir(), "state.json"))
	ctx := context.Background()

	for _, id := range []string{"1", "2", "3"} {
		if err := store.SetLastBookingID(ctx, id); err != nil {
			t.Fatalf("SetLastBookingID(%q) failed: %v", id, err)
		}
	}

	id, err := store.LastBookingID(ctx)
	if err != nil {
		t.Fatalf("LastBookingID failed: %v", err)
	}
	if id != "3" {
		t.Fatalf("id = %q, want 3", id)
	}
}

func TestFileStore_SlotsAreIndependent(t *testing.T) {
	store := state.NewFileStore(filepath.Join(t.TempDir(), "state.json"))
	ctx := context.Background()

	if err := store.SetSessionToken(ctx, "tok"); err != nil {
		t.Fatalf("SetSessionToken failed: %v", err)
	}
	if err := store.SetLastBookingID(ctx, "7"); err != nil {
		t.Fatalf("SetLastBookingID failed: %v", err)
	}

	token, err := store.SessionToken(ctx)
	if err != nil {
		t.Fatalf("SessionToken failed: %v", err)
	}
	if token != "tok" {
		t.Fatalf("writing the booking slot clobbered the token: %q", token)
	}
}
