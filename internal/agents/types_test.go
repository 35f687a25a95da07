package agents

import (
	"errors"
	"testing"
)

func TestDrone_CurrentHubWithoutPath(t *testing.T) {
	d := NewDrone("D1", "A", "C")
	if got := d.CurrentHub(); got != "A" {
		t.Errorf("CurrentHub() = %q, want A", got)
	}
	if _, ok := d.NextHub(); ok {
		t.Error("NextHub() ok = true for a drone without path")
	}
	if d.Arrived() {
		t.Error("Arrived() = true, want false")
	}
}

func TestDrone_AdvanceAndArrive(t *testing.T) {
	d := NewDrone("D1", "A", "C")
	path := []string{"A", "B", "C"}
	d.AssignPath(path)
	path[1] = "mutated"

	next, ok := d.NextHub()
	if !ok || next != "B" {
		t.Fatalf("NextHub() = %q, %v; want B, true", next, ok)
	}
	d.Advance()
	d.Advance()
	if !d.Arrived() {
		t.Errorf("Arrived() = false at %s", d.CurrentHub())
	}
	d.Advance()
	if d.Index != 2 {
		t.Errorf("Index = %d after advancing past the end, want 2", d.Index)
	}
}

func TestDrone_Replan(t *testing.T) {
	d := NewDrone("D1", "A", "E")
	d.AssignPath([]string{"A", "B", "C", "E"})
	d.Advance() // at B

	if err := d.Replan([]string{"B", "D", "E"}); err != nil {
		t.Fatalf("Replan() error: %v", err)
	}
	want := []string{"A", "B", "D", "E"}
	if len(d.Path) != len(want) {
		t.Fatalf("Path = %v, want %v", d.Path, want)
	}
	for i := range want {
		if d.Path[i] != want[i] {
			t.Fatalf("Path = %v, want %v", d.Path, want)
		}
	}
	if d.Index != 1 || d.CurrentHub() != "B" {
		t.Errorf("Index = %d, CurrentHub = %s; want 1, B", d.Index, d.CurrentHub())
	}
}

func TestDrone_ReplanRejectsMismatchAtomically(t *testing.T) {
	d := NewDrone("D1", "A", "E")
	d.AssignPath([]string{"A", "B", "E"})

	tests := []struct {
		name   string
		detour []string
	}{
		{"empty", nil},
		{"wrong start", []string{"B", "E"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := d.Replan(tt.detour)
			if !errors.Is(err, ErrPathMismatch) {
				t.Fatalf("Replan() error = %v, want ErrPathMismatch", err)
			}
			if len(d.Path) != 3 || d.Path[1] != "B" || d.Index != 0 {
				t.Errorf("drone mutated on failure: %v idx=%d", d.Path, d.Index)
			}
		})
	}
}

func TestSpawner_Spawn(t *testing.T) {
	s := NewSpawner()
	drones := s.Spawn(3, "A", "B")
	if len(drones) != 3 {
		t.Fatalf("Spawn(3) returned %d drones", len(drones))
	}
	for i, want := range []DroneID{"D1", "D2", "D3"} {
		if drones[i].ID != want {
			t.Errorf("drone %d ID = %s, want %s", i, drones[i].ID, want)
		}
		if drones[i].Start != "A" || drones[i].End != "B" {
			t.Errorf("drone %s endpoints = %s->%s", drones[i].ID, drones[i].Start, drones[i].End)
		}
	}

	more := s.Spawn(1, "A", "B")
	if more[0].ID != "D4" {
		t.Errorf("next ID = %s, want D4", more[0].ID)
	}
	if got := s.Spawn(0, "A", "B"); got != nil {
		t.Errorf("Spawn(0) = %v, want nil", got)
	}
}

func TestSeedPaths_CopiesPerDrone(t *testing.T) {
	drones := NewSpawner().Spawn(2, "A", "C")
	SeedPaths(drones, []string{"A", "B", "C"})

	drones[0].Path[1] = "X"
	if drones[1].Path[1] != "B" {
		t.Errorf("drones share a path slice: %v", drones[1].Path)
	}
}
