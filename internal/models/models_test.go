// ABOUTME: Tests for entity validation and JSON field layout.
// ABOUTME: Guards the persisted key names against accidental renames.
package models

import (
	"encoding/json"
	"math"
	"strings"
	"testing"
)

func TestValidateName(t *testing.T) {
	cases := []struct {
		name  string
		valid bool
	}{
		{"Dolphins", true},
		{"  Sharks  ", true},
		{"", false},
		{"   ", false},
		{"\t\n", false},
	}
	for _, c := range cases {
		team := &Team{Name: c.name}
		err := team.Validate()
		if c.valid && err != nil {
			t.Errorf("Validate(%q): unexpected error %v", c.name, err)
		}
		if !c.valid && err == nil {
			t.Errorf("Validate(%q): expected error", c.name)
		}
	}
}

func TestTimeValidate(t *testing.T) {
	valid := &Time{SwimmerID: "s1", StrokeID: "k1", Distance: "100", TimeSeconds: 61.2}
	if err := valid.Validate(); err != nil {
		t.Errorf("valid time rejected: %v", err)
	}

	// Empty distance is accepted; the field just has to be a string.
	noDistance := &Time{SwimmerID: "s1", StrokeID: "k1", TimeSeconds: 61.2}
	if err := noDistance.Validate(); err != nil {
		t.Errorf("empty distance rejected: %v", err)
	}

	cases := []*Time{
		{StrokeID: "k1", TimeSeconds: 61.2},
		{SwimmerID: "s1", TimeSeconds: 61.2},
		{SwimmerID: "s1", StrokeID: "k1", TimeSeconds: math.NaN()},
		{SwimmerID: "s1", StrokeID: "k1", TimeSeconds: math.Inf(1)},
	}
	for i, c := range cases {
		if err := c.Validate(); err == nil {
			t.Errorf("case %d: expected validation error", i)
		}
	}
}

func TestDefaultStrokes(t *testing.T) {
	strokes := DefaultStrokes()
	if len(strokes) != 5 {
		t.Fatalf("expected 5 default strokes, got %d", len(strokes))
	}
	want := []string{"Freestyle", "Backstroke", "Breaststroke", "Butterfly", "Individual Medley"}
	for i, s := range strokes {
		if s.Name != want[i] {
			t.Errorf("stroke %d: got %q, want %q", i, s.Name, want[i])
		}
		if s.ID != "" {
			t.Errorf("seed stroke %q should not carry an id", s.Name)
		}
	}
}

func TestNewIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewID()
		if id == "" {
			t.Fatal("NewID returned empty string")
		}
		if seen[id] {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = true
	}
}

func TestSwimmerJSONLayout(t *testing.T) {
	s := &Swimmer{Name: "Ana"}
	s.ID = "abc"
	s.Normalize()

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	for _, key := range []string{`"id":"abc"`, `"name":"Ana"`, `"teamIds":[]`, `"groupIds":[]`} {
		if !strings.Contains(string(data), key) {
			t.Errorf("marshaled swimmer missing %s: %s", key, data)
		}
	}
	if strings.Contains(string(data), "birthDate") {
		t.Errorf("empty birthDate should be omitted: %s", data)
	}
}

func TestTimeJSONLayout(t *testing.T) {
	tm := &Time{SwimmerID: "s1", StrokeID: "k1", Distance: "100", TimeSeconds: 60.5, LegacyID: 1700000000000}
	tm.ID = "t1"

	data, err := json.Marshal(tm)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	for _, key := range []string{`"swimmerId":"s1"`, `"strokeId":"k1"`, `"timeSeconds":60.5`, `"legacyId":1700000000000`} {
		if !strings.Contains(string(data), key) {
			t.Errorf("marshaled time missing %s: %s", key, data)
		}
	}
}

func TestEntryJSONLayout(t *testing.T) {
	raw := `{"id":1700000000000,"timestamp":"1/2/2024, 10:00:00 AM","name":"Ana","stroke":"Freestyle","distance":"100","effort":"80%","bestTime":"1:00.500","resultTime":"1:12.600","bestSeconds":60.5,"resultSeconds":72.6}`
	var e Entry
	if err := json.Unmarshal([]byte(raw), &e); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if e.ID != 1700000000000 || e.Name != "Ana" || e.BestSeconds != 60.5 {
		t.Errorf("entry fields not decoded: %+v", e)
	}
}
