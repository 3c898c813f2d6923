// ABOUTME: Tests for the legacy flat entry log.
package store

import (
	"errors"
	"math"
	"testing"

	"github.com/harperreed/swim/internal/kv"
)

func TestEntryAddComputesResult(t *testing.T) {
	s := Open(kv.NewMemory())

	entry, err := s.Entries.Add("Ana", "Freestyle", "100m", "80%", "1:00.500")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if entry.ID == 0 || entry.Timestamp == "" {
		t.Errorf("id or timestamp not stamped: %+v", entry)
	}
	if entry.BestSeconds != 60.5 {
		t.Errorf("bestSeconds = %v, want 60.5", entry.BestSeconds)
	}
	// 80% effort adds 20% on top of the best time.
	if math.Abs(entry.ResultSeconds-72.6) > 1e-9 {
		t.Errorf("resultSeconds = %v, want 72.6", entry.ResultSeconds)
	}
	if entry.BestTime != "1:00.500" {
		t.Errorf("bestTime = %q, want 1:00.500", entry.BestTime)
	}
	if entry.ResultTime != "1:12.600" {
		t.Errorf("resultTime = %q, want 1:12.600", entry.ResultTime)
	}
}

func TestEntryAddDefaultsEffort(t *testing.T) {
	s := Open(kv.NewMemory())

	entry, err := s.Entries.Add("Ana", "Freestyle", "100m", "not-a-percent", "30.000")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if math.Abs(entry.ResultSeconds-36.0) > 1e-9 {
		t.Errorf("unparseable effort should default to 80%%: got %v", entry.ResultSeconds)
	}
}

func TestEntryAddRejectsMissingFields(t *testing.T) {
	s := Open(kv.NewMemory())

	cases := [][4]string{
		{"", "Freestyle", "100m", "30.000"},
		{"Ana", "", "100m", "30.000"},
		{"Ana", "Freestyle", "", "30.000"},
		{"Ana", "Freestyle", "100m", ""},
	}
	for _, c := range cases {
		if _, err := s.Entries.Add(c[0], c[1], c[2], "80%", c[3]); !errors.Is(err, ErrInvalid) {
			t.Errorf("Add(%v): got %v, want ErrInvalid", c, err)
		}
	}
	if s.Entries.Count() != 0 {
		t.Errorf("rejected adds changed the log")
	}
}

func TestEntryAddRejectsBadTime(t *testing.T) {
	s := Open(kv.NewMemory())
	if _, err := s.Entries.Add("Ana", "Freestyle", "100m", "80%", "fast"); !errors.Is(err, ErrInvalid) {
		t.Errorf("unparseable time: got %v, want ErrInvalid", err)
	}
}

func TestEntryLogNewestFirstAndPersisted(t *testing.T) {
	mem := kv.NewMemory()
	s := Open(mem)

	s.Entries.Add("Ana", "Freestyle", "100m", "80%", "1:00.500")
	s.Entries.Add("Ben", "Backstroke", "50m", "90%", "35.200")

	list := s.Entries.List()
	if len(list) != 2 || list[0].Name != "Ben" {
		t.Fatalf("expected newest-first log, got %+v", list)
	}

	// A fresh store over the same backend sees the same log.
	reopened := Open(mem)
	if reopened.Entries.Count() != 2 {
		t.Errorf("log not persisted: %d entries after reopen", reopened.Entries.Count())
	}
}

func TestEntryClear(t *testing.T) {
	s := Open(kv.NewMemory())
	s.Entries.Add("Ana", "Freestyle", "100m", "80%", "30.000")

	if err := s.Entries.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if s.Entries.Count() != 0 {
		t.Errorf("log not empty after clear")
	}
}
