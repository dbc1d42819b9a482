package session

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokens.json")
	store := NewFileStore(path)

	if _, err := store.Tokens(); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession on empty store, got %v", err)
	}

	want := Tokens{Access: "acc-1", Refresh: "ref-1"}
	if err := store.SetTokens(want); err != nil {
		t.Fatalf("SetTokens failed: %v", err)
	}

	got, err := store.Tokens()
	if err != nil {
		t.Fatalf("Tokens failed: %v", err)
	}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestFileStore_PersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokens.json")

	if err := NewFileStore(path).SetTokens(Tokens{Access: "acc", Refresh: "ref"}); err != nil {
		t.Fatalf("SetTokens failed: %v", err)
	}

	got, err := NewFileStore(path).Tokens()
	if err != nil {
		t.Fatalf("Tokens failed on fresh instance: %v", err)
	}
	if got.Access != "acc" || got.Refresh != "ref" {
		t.Errorf("expected persisted tokens, got %+v", got)
	}
}

func TestFileStore_SetAccessKeepsRefresh(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokens.json")
	store := NewFileStore(path)

	store.SetTokens(Tokens{Access: "old", Refresh: "ref"})
	if err := store.SetAccess("new"); err != nil {
		t.Fatalf("SetAccess failed: %v", err)
	}

	got, _ := store.Tokens()
	if got.Access != "new" || got.Refresh != "ref" {
		t.Errorf("expected access rotated and refresh kept, got %+v", got)
	}
}

func TestFileStore_ClearRemovesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokens.json")
	store := NewFileStore(path)

	store.SetTokens(Tokens{Access: "acc", Refresh: "ref"})
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}

	if _, err := store.Tokens(); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession after clear, got %v", err)
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected token file removed, got %v", err)
	}

	// Clearing an already-empty store is not an error.
	if err := store.Clear(); err != nil {
		t.Errorf("second Clear failed: %v", err)
	}
}

func TestAuthenticated(t *testing.T) {
	store := NewMemoryStore()
	if Authenticated(store) {
		t.Error("empty store reported authenticated")
	}

	store.SetTokens(Tokens{Access: "acc", Refresh: "ref"})
	if !Authenticated(store) {
		t.Error("store with tokens reported unauthenticated")
	}

	store.Clear()
	if Authenticated(store) {
		t.Error("cleared store reported authenticated")
	}
}
