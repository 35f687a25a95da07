// Simulation holds the drone fleet and advances it one turn at a time.
package engine

import (
	"errors"
	"fmt"

	"github.com/talgya/flyin/internal/agents"
	"github.com/talgya/flyin/internal/routing"
	"github.com/talgya/flyin/internal/world"
)

// ErrNoRoute is returned when a drone that has not arrived has no path.
var ErrNoRoute = errors.New("no route to destination")

// Simulation holds the fixed graph, the router used for detours, and the
// drones still in transit.
type Simulation struct {
	Graph  *world.Graph
	Router routing.Pathfinder

	Drones  []*agents.Drone // In transit, registration order
	Arrived []*agents.Drone // Removed from play, arrival order
	Total   int

	// Statistics accumulated over the run.
	Stats Stats
}

// Stats tracks aggregate run statistics.
type Stats struct {
	Turns      int `json:"turns"`
	Moves      int `json:"moves"`      // Hub entries, restricted ones included
	Stationary int `json:"stationary"` // Restricted-zone turns sat out
	Replans    int `json:"replans"`
	Waits      int `json:"waits"`
	Arrived    int `json:"arrived"`
}

// NewSimulation creates a Simulation. Drones are evaluated in slice order
// every turn.
func NewSimulation(g *world.Graph, router routing.Pathfinder, drones []*agents.Drone) *Simulation {
	active := make([]*agents.Drone, len(drones))
	copy(active, drones)
	return &Simulation{
		Graph:  g,
		Router: router,
		Drones: active,
		Total:  len(drones),
	}
}

// Validate checks that every drone references known hubs and that drones
// not yet home have a path.
func (s *Simulation) Validate() error {
	for _, d := range s.Drones {
		for _, name := range []string{d.CurrentHub(), d.End} {
			if !s.Graph.Has(name) {
				return fmt.Errorf("drone %s: %w", d.ID, world.NewNotFoundError("hub", name))
			}
		}
		if !d.Arrived() && len(d.Path) == 0 {
			return fmt.Errorf("drone %s %s->%s: %w", d.ID, d.Start, d.End, ErrNoRoute)
		}
	}
	return nil
}

// Done reports whether no drones remain in transit.
func (s *Simulation) Done() bool {
	return len(s.Drones) == 0
}

// collectArrivals removes drones standing on their destination. They never
// take capacity again.
func (s *Simulation) collectArrivals() {
	remaining := s.Drones[:0]
	for _, d := range s.Drones {
		if d.Arrived() {
			s.Arrived = append(s.Arrived, d)
			continue
		}
		remaining = append(remaining, d)
	}
	for i := len(remaining); i < len(s.Drones); i++ {
		s.Drones[i] = nil
	}
	s.Drones = remaining
	s.Stats.Arrived = len(s.Arrived)
}

// Step evaluates every drone in transit once. Occupancy and link usage are
// scoped to this call.
func (s *Simulation) Step(turn int) TurnReport {
	report := TurnReport{
		Turn:      turn,
		Arrived:   len(s.Arrived),
		InTransit: len(s.Drones),
		Occupancy: make(map[string]int),
		LinkUsage: make(map[DirectedLink]int),
	}

	for _, d := range s.Drones {
		cur := d.CurrentHub()

		// Sitting out a restricted-zone turn.
		if d.Restricted > 0 {
			d.Restricted--
			report.Events = append(report.Events, Event{
				Drone: d.ID, Kind: EventStationary, From: cur, To: cur,
			})
			continue
		}

		next, ok := d.NextHub()
		if !ok {
			report.Waits++
			continue
		}
		nextHub, err := s.Graph.Hub(next)
		if err != nil {
			report.Waits++
			continue
		}

		// Hub full this turn: try a detour around every full hub, move next turn.
		if report.Occupancy[next] >= nextHub.MaxDrones {
			detour := s.Router.FindPath(s.Graph, cur, d.End, s.fullHubs(report.Occupancy))
			if len(detour) == 0 {
				report.Waits++
				continue
			}
			if err := d.Replan(detour); err != nil {
				report.Waits++
				continue
			}
			report.Replans++
			continue
		}

		link := DirectedLink{From: cur, To: next}
		if report.LinkUsage[link] >= s.Graph.LinkCapacity(cur, next) {
			report.Waits++
			continue
		}

		report.LinkUsage[link]++
		report.Occupancy[next]++
		d.Advance()

		if nextHub.Zone == world.ZoneRestricted {
			d.Restricted = 1
			report.Events = append(report.Events, Event{
				Drone: d.ID, Kind: EventRestrictedEntry, From: cur, To: next,
			})
		} else {
			report.Events = append(report.Events, Event{
				Drone: d.ID, Kind: EventMove, From: cur, To: next,
			})
		}
	}

	s.updateStats(report)
	return report
}

// fullHubs returns the hubs whose committed occupancy has reached capacity.
func (s *Simulation) fullHubs(occupancy map[string]int) routing.Avoid {
	full := make(routing.Avoid)
	for name, n := range occupancy {
		h, err := s.Graph.Hub(name)
		if err != nil {
			continue
		}
		if n >= h.MaxDrones {
			full[name] = struct{}{}
		}
	}
	return full
}

func (s *Simulation) updateStats(r TurnReport) {
	s.Stats.Turns = r.Turn
	s.Stats.Replans += r.Replans
	s.Stats.Waits += r.Waits
	for _, e := range r.Events {
		if e.Kind == EventStationary {
			s.Stats.Stationary++
		} else {
			s.Stats.Moves++
		}
	}
}
