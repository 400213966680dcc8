package params_test

import (
	"errors"
	"testing"

	"chirp/internal/params"
)

func TestSetAndGet(t *testing.T) {
	store := params.NewStore()
	if err := store.Set("MODE", "ON"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	value, ok := store.Get("MODE")
	if !ok || value != "ON" {
		t.Fatalf("expected MODE=ON, got %q (present=%v)", value, ok)
	}
	if _, ok := store.Get("MISSING"); ok {
		t.Fatal("expected MISSING to be absent")
	}
}

func TestSetLastWriteWins(t *testing.T) {
	store := params.NewStore()
	if err := store.Set("MODE", "ON"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := store.Set("MODE", "OFF"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if value, _ := store.Get("MODE"); value != "OFF" {
		t.Fatalf("expected last write to win, got %q", value)
	}
	if store.Len() != 1 {
		t.Fatalf("expected 1 parameter, got %d", store.Len())
	}
}

func TestSetRejectsEmptyName(t *testing.T) {
	store := params.NewStore()
	if err := store.Set("", "value"); !errors.Is(err, params.ErrEmptyName) {
		t.Fatalf("expected ErrEmptyName, got %v", err)
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	store := params.NewStore()
	if err := store.Set("A", "1"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	snap := store.Snapshot()
	snap["A"] = "mutated"
	if value, _ := store.Get("A"); value != "1" {
		t.Fatalf("snapshot mutation leaked into store: %q", value)
	}
}
