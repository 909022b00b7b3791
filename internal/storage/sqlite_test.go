package storage

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.SaveProfile("alice", []string{"a", "s", "k", "l"}); err != nil {
		t.Fatalf("SaveProfile() failed: %v", err)
	}
	store.Close()

	// Migrations must be idempotent and data must survive
	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	p, err := store.Profile("alice")
	if err != nil {
		t.Fatalf("Profile() failed: %v", err)
	}
	if !slices.Equal(p.LaneKeys, []string{"a", "s", "k", "l"}) {
		t.Errorf("LaneKeys = %v", p.LaneKeys)
	}
}

func TestProfileSaveAndUpdate(t *testing.T) {
	store := openTestStore(t)

	if err := store.SaveProfile("bob", []string{"d", "f", "j", "k"}); err != nil {
		t.Fatalf("SaveProfile() failed: %v", err)
	}
	if err := store.SaveProfile("bob", []string{"left", "down", "up", "right"}); err != nil {
		t.Fatalf("SaveProfile() update failed: %v", err)
	}

	p, err := store.Profile("bob")
	if err != nil {
		t.Fatalf("Profile() failed: %v", err)
	}
	if p.User != "bob" {
		t.Errorf("User = %q, expected bob", p.User)
	}
	if !slices.Equal(p.LaneKeys, []string{"left", "down", "up", "right"}) {
		t.Errorf("LaneKeys = %v, expected the updated binding", p.LaneKeys)
	}
	if p.UpdatedAt.IsZero() {
		t.Error("UpdatedAt should be set")
	}

	all, err := store.Profiles()
	if err != nil {
		t.Fatalf("Profiles() failed: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("expected one profile after update, got %d", len(all))
	}
}

func TestProfileNotFound(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.Profile("nobody"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Profile() error = %v, expected ErrNotFound", err)
	}
}

func TestProfileDelete(t *testing.T) {
	store := openTestStore(t)

	if err := store.SaveProfile("carol", []string{"d", "f", "j", "k"}); err != nil {
		t.Fatalf("SaveProfile() failed: %v", err)
	}
	if err := store.DeleteProfile("carol"); err != nil {
		t.Fatalf("DeleteProfile() failed: %v", err)
	}
	if _, err := store.Profile("carol"); !errors.Is(err, ErrNotFound) {
		t.Errorf("profile should be gone, got %v", err)
	}
	if err := store.DeleteProfile("carol"); err != nil {
		t.Errorf("deleting a missing profile should succeed, got %v", err)
	}
}

func TestProfilesOrdered(t *testing.T) {
	store := openTestStore(t)

	for _, u := range []string{"zed", "amy", "kim"} {
		if err := store.SaveProfile(u, []string{"d", "f", "j", "k"}); err != nil {
			t.Fatalf("SaveProfile(%s) failed: %v", u, err)
		}
	}

	all, err := store.Profiles()
	if err != nil {
		t.Fatalf("Profiles() failed: %v", err)
	}
	var users []string
	for _, p := range all {
		users = append(users, p.User)
	}
	if !slices.Equal(users, []string{"amy", "kim", "zed"}) {
		t.Errorf("users = %v, expected sorted", users)
	}
}

func TestSaveProfileRejectsBadInput(t *testing.T) {
	store := openTestStore(t)

	if err := store.SaveProfile("", []string{"d", "f", "j", "k"}); err == nil {
		t.Error("empty user should fail")
	}
	if err := store.SaveProfile("dan", []string{"d", ",", "j", "k"}); err == nil {
		t.Error("comma key should fail")
	}
}
