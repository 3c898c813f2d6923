// ABOUTME: Tests for the generic repository over an in-memory store.
// ABOUTME: Covers validation gates, merge semantics, seeding, and bulk insert.
package store

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/harperreed/swim/internal/kv"
	"github.com/harperreed/swim/internal/models"
)

func newTestTeams(t *testing.T) (*Teams, *kv.Memory) {
	t.Helper()
	mem := kv.NewMemory()
	teams := NewTeams(mem)
	teams.Load()
	return teams, mem
}

func TestAddAssignsUniqueIDs(t *testing.T) {
	teams, _ := newTestTeams(t)

	seen := make(map[string]bool)
	for _, name := range []string{"Dolphins", "Sharks", "Orcas"} {
		team, err := teams.Add(&models.Team{Name: name})
		if err != nil {
			t.Fatalf("Add(%q) failed: %v", name, err)
		}
		if team.ID == "" {
			t.Fatalf("Add(%q) returned empty id", name)
		}
		if seen[team.ID] {
			t.Fatalf("duplicate id %s", team.ID)
		}
		seen[team.ID] = true
		if team.CreatedAt == 0 {
			t.Errorf("Add(%q): createdAt not stamped", name)
		}
	}
}

func TestAddPrependsNewestFirst(t *testing.T) {
	teams, _ := newTestTeams(t)

	first, _ := teams.Add(&models.Team{Name: "Dolphins"})
	second, _ := teams.Add(&models.Team{Name: "Sharks"})

	list := teams.List()
	if len(list) != 2 {
		t.Fatalf("expected 2 teams, got %d", len(list))
	}
	if list[0].ID != second.ID || list[1].ID != first.ID {
		t.Errorf("expected newest-first ordering, got %s then %s", list[0].Name, list[1].Name)
	}
}

func TestAddValidationGate(t *testing.T) {
	teams, mem := newTestTeams(t)
	teams.Add(&models.Team{Name: "Dolphins"})
	before, _ := mem.Get(KeyTeams)

	_, err := teams.Add(&models.Team{Name: "   "})
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}

	if teams.Count() != 1 {
		t.Errorf("in-memory state changed after rejected add")
	}
	after, _ := mem.Get(KeyTeams)
	if string(before) != string(after) {
		t.Errorf("persisted state changed after rejected add")
	}
}

func TestUpdateMerge(t *testing.T) {
	teams, _ := newTestTeams(t)
	team, _ := teams.Add(&models.Team{Name: "Dolphins"})

	updated, err := teams.Update(team.ID, func(tm *models.Team) {
		tm.Name = "Mighty Dolphins"
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Name != "Mighty Dolphins" {
		t.Errorf("Name = %q, want Mighty Dolphins", updated.Name)
	}
	if updated.ID != team.ID {
		t.Errorf("id changed on update: %s -> %s", team.ID, updated.ID)
	}
	if updated.CreatedAt != team.CreatedAt {
		t.Errorf("createdAt changed on update")
	}
	if updated.UpdatedAt == 0 {
		t.Errorf("updatedAt not stamped")
	}

	got, ok := teams.GetByID(team.ID)
	if !ok || got.Name != "Mighty Dolphins" {
		t.Errorf("stored record not replaced: %+v", got)
	}
}

func TestUpdateRejectsInvalidMerge(t *testing.T) {
	teams, mem := newTestTeams(t)
	team, _ := teams.Add(&models.Team{Name: "Dolphins"})
	before, _ := mem.Get(KeyTeams)

	_, err := teams.Update(team.ID, func(tm *models.Team) {
		tm.Name = "  "
	})
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}

	got, _ := teams.GetByID(team.ID)
	if got.Name != "Dolphins" {
		t.Errorf("prior record not preserved after invalid merge: %+v", got)
	}
	if got.UpdatedAt != 0 {
		t.Errorf("updatedAt stamped despite rejected merge")
	}
	after, _ := mem.Get(KeyTeams)
	if string(before) != string(after) {
		t.Errorf("persisted state changed after rejected merge")
	}
}

func TestUpdateMissingID(t *testing.T) {
	teams, _ := newTestTeams(t)
	if _, err := teams.Update("nope", func(tm *models.Team) {}); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestRemove(t *testing.T) {
	teams, _ := newTestTeams(t)
	a, _ := teams.Add(&models.Team{Name: "Dolphins"})
	b, _ := teams.Add(&models.Team{Name: "Sharks"})

	if err := teams.Remove(a.ID); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	list := teams.List()
	if len(list) != 1 || list[0].ID != b.ID {
		t.Errorf("unexpected collection after remove: %+v", list)
	}

	if err := teams.Remove(a.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("removing missing id: got %v, want ErrNotFound", err)
	}
	again := teams.List()
	if len(again) != 1 || again[0].ID != b.ID {
		t.Errorf("collection changed by failed remove: %+v", again)
	}
}

func TestClear(t *testing.T) {
	teams, mem := newTestTeams(t)
	teams.Add(&models.Team{Name: "Dolphins"})

	if err := teams.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if teams.Count() != 0 {
		t.Errorf("collection not empty after clear")
	}
	data, err := mem.Get(KeyTeams)
	if err != nil {
		t.Fatalf("persisted teams missing after clear: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("persisted %q after clear, want []", data)
	}
}

func TestSeedingIdempotence(t *testing.T) {
	mem := kv.NewMemory()
	strokes := NewStrokes(mem)

	first := strokes.Load()
	if len(first) != 5 {
		t.Fatalf("expected 5 seeded strokes, got %d", len(first))
	}
	for _, s := range first {
		if s.ID == "" {
			t.Errorf("seeded stroke %q missing id", s.Name)
		}
	}

	second := strokes.Load()
	if len(second) != 5 {
		t.Fatalf("second load produced %d strokes, want 5", len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Errorf("stroke %d reseeded with a new id", i)
		}
	}
}

func TestLoadDegradesOnReadFailure(t *testing.T) {
	mem := kv.NewMemory()
	teams := NewTeams(mem)
	teams.Load()
	teams.Add(&models.Team{Name: "Dolphins"})

	mem.FailReads = true
	mem.Err = errors.New("io error")
	if got := teams.Load(); len(got) != 0 {
		t.Errorf("expected empty collection on read failure, got %d records", len(got))
	}
}

func TestBulkInsertSingleWrite(t *testing.T) {
	teams, mem := newTestTeams(t)
	existing, _ := teams.Add(&models.Team{Name: "Old"})

	batch := []*models.Team{
		{Name: "A"},
		{Name: "B"},
	}
	inserted, err := teams.BulkInsert(batch)
	if err != nil {
		t.Fatalf("BulkInsert failed: %v", err)
	}
	for _, item := range inserted {
		if item.ID == "" || item.CreatedAt == 0 {
			t.Errorf("bulk item missing id or createdAt: %+v", item)
		}
	}

	list := teams.List()
	if len(list) != 3 {
		t.Fatalf("expected 3 records, got %d", len(list))
	}
	// Batch prepends ahead of existing records, preserving batch order.
	if list[0].Name != "A" || list[1].Name != "B" || list[2].ID != existing.ID {
		t.Errorf("unexpected order: %s, %s, %s", list[0].Name, list[1].Name, list[2].Name)
	}

	data, _ := mem.Get(KeyTeams)
	var stored []*models.Team
	if err := json.Unmarshal(data, &stored); err != nil {
		t.Fatalf("persisted teams not valid JSON: %v", err)
	}
	if len(stored) != 3 {
		t.Errorf("persisted %d records, want 3", len(stored))
	}
}

func TestBulkInsertKeepsProvidedIDs(t *testing.T) {
	teams, _ := newTestTeams(t)

	pre := &models.Team{Name: "Keeps"}
	pre.ID = "fixed-id"
	pre.CreatedAt = 42
	inserted, err := teams.BulkInsert([]*models.Team{pre})
	if err != nil {
		t.Fatalf("BulkInsert failed: %v", err)
	}
	if inserted[0].ID != "fixed-id" || inserted[0].CreatedAt != 42 {
		t.Errorf("provided id/createdAt overwritten: %+v", inserted[0])
	}
}

func TestReloadRecoversFromExternalChange(t *testing.T) {
	mem := kv.NewMemory()
	teams := NewTeams(mem)
	teams.Load()
	teams.Add(&models.Team{Name: "Dolphins"})

	// Another writer replaces the collection out from under us.
	external := []*models.Team{{Meta: models.Meta{ID: "x"}, Name: "External"}}
	data, _ := json.Marshal(external)
	mem.Set(KeyTeams, data)

	list := teams.Reload()
	if len(list) != 1 || list[0].ID != "x" {
		t.Errorf("reload did not pick up external state: %+v", list)
	}
}
