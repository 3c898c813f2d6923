// ABOUTME: Tests for the Badger and memory Store backends.
// ABOUTME: Verifies get/set/delete round-trips and not-found handling.
package kv

import (
	"errors"
	"testing"
)

func TestBadgerRoundTrip(t *testing.T) {
	store, err := OpenBadger(t.TempDir())
	if err != nil {
		t.Fatalf("OpenBadger failed: %v", err)
	}
	defer store.Close()

	if _, err := store.Get("teams"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get on missing key: got %v, want ErrNotFound", err)
	}

	if err := store.Set("teams", []byte(`[{"id":"a"}]`)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	val, err := store.Get("teams")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(val) != `[{"id":"a"}]` {
		t.Errorf("Get returned %q", val)
	}

	if err := store.Delete("teams"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := store.Get("teams"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get after delete: got %v, want ErrNotFound", err)
	}
}

func TestBadgerDeleteMissingKey(t *testing.T) {
	store, err := OpenBadger(t.TempDir())
	if err != nil {
		t.Fatalf("OpenBadger failed: %v", err)
	}
	defer store.Close()

	if err := store.Delete("nope"); err != nil {
		t.Errorf("Delete on missing key: got %v, want nil", err)
	}
}

func TestMemoryRoundTrip(t *testing.T) {
	store := NewMemory()

	if _, err := store.Get("unitPreference"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get on missing key: got %v, want ErrNotFound", err)
	}

	if err := store.Set("unitPreference", []byte("m")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	val, err := store.Get("unitPreference")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(val) != "m" {
		t.Errorf("Get returned %q, want m", val)
	}

	// Mutating the returned slice must not affect the stored value.
	val[0] = 'y'
	again, _ := store.Get("unitPreference")
	if string(again) != "m" {
		t.Errorf("stored value mutated through returned slice")
	}
}

func TestMemoryFaultInjection(t *testing.T) {
	store := NewMemory()
	store.Err = errors.New("disk full")

	store.FailWrites = true
	if err := store.Set("times", []byte("[]")); err == nil {
		t.Error("Set with FailWrites: want error")
	}
	store.FailWrites = false

	store.FailReads = true
	if _, err := store.Get("times"); err == nil {
		t.Error("Get with FailReads: want error")
	}
}
