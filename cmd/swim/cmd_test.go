// ABOUTME: Tests for CLI helper functions and command wiring.
// ABOUTME: Tests truncate, padRight, resolveID, appendUnique, and the
// ABOUTME: command tree against an in-memory store.
package main

import (
	"testing"

	"github.com/harperreed/swim/internal/kv"
	"github.com/harperreed/swim/internal/models"
	"github.com/harperreed/swim/internal/store"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{
			name:   "shorter than max",
			input:  "short",
			maxLen: 10,
			want:   "short",
		},
		{
			name:   "exactly max",
			input:  "exactlyten",
			maxLen: 10,
			want:   "exactlyten",
		},
		{
			name:   "longer than max",
			input:  "this is a long string",
			maxLen: 10,
			want:   "this is...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncate(tt.input, tt.maxLen); got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
			}
		})
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		length int
		want   string
	}{
		{
			name:   "shorter than length",
			input:  "abc",
			length: 6,
			want:   "abc   ",
		},
		{
			name:   "equal to length",
			input:  "abcdef",
			length: 6,
			want:   "abcdef",
		},
		{
			name:   "longer than length",
			input:  "abcdefgh",
			length: 6,
			want:   "abcdefgh",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := padRight(tt.input, tt.length); got != tt.want {
				t.Errorf("padRight(%q, %d) = %q, want %q", tt.input, tt.length, got, tt.want)
			}
		})
	}
}

func TestResolveID(t *testing.T) {
	s := store.Open(kv.NewMemory())
	a, _ := s.Teams.Add(&models.Team{Name: "Dolphins"})
	b, _ := s.Teams.Add(&models.Team{Name: "Sharks"})

	if got := resolveID(s.Teams.List(), a.ID); got != a.ID {
		t.Errorf("exact id: got %q, want %q", got, a.ID)
	}
	if got := resolveID(s.Teams.List(), b.ID[:8]); got != b.ID {
		t.Errorf("prefix: got %q, want %q", got, b.ID)
	}
	if got := resolveID(s.Teams.List(), "zzz"); got != "zzz" {
		t.Errorf("unmatched input should pass through, got %q", got)
	}
}

func TestAppendUnique(t *testing.T) {
	list := appendUnique(nil, "a")
	list = appendUnique(list, "b")
	list = appendUnique(list, "a")

	if len(list) != 2 || list[0] != "a" || list[1] != "b" {
		t.Errorf("appendUnique produced %v", list)
	}
}

func TestCommandTree(t *testing.T) {
	expected := []string{
		"team", "group", "swimmer", "stroke", "time", "training",
		"log", "unit", "migrate", "export", "import", "sync", "mcp",
	}

	registered := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		registered[cmd.Name()] = true
	}

	for _, name := range expected {
		if !registered[name] {
			t.Errorf("command %q not registered", name)
		}
	}
}

func TestMigrationRunsThroughStoreOpen(t *testing.T) {
	// The root command runs migration in PersistentPreRunE; exercise the
	// same sequence against an in-memory backend.
	mem := kv.NewMemory()
	s := store.Open(mem)

	ran, _, err := s.RunMigrationIfNeeded()
	if err != nil {
		t.Fatalf("migration failed: %v", err)
	}
	if ran {
		t.Errorf("fresh store should not produce entity writes")
	}
	if s.MigrationVersion() != store.CurrentMigrationVersion {
		t.Errorf("marker not written on fresh store")
	}
}
