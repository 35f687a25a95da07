package engine

import (
	"fmt"

	"github.com/talgya/flyin/internal/agents"
)

// EventKind classifies a movement log entry.
type EventKind uint8

const (
	EventMove            EventKind = iota // Drone entered a hub
	EventRestrictedEntry                  // Drone entered a restricted hub
	EventStationary                       // Drone sat out a restricted-zone turn
)

// EventKindName returns a human-readable name for an event kind.
func EventKindName(k EventKind) string {
	switch k {
	case EventMove:
		return "move"
	case EventRestrictedEntry:
		return "restricted"
	case EventStationary:
		return "stationary"
	default:
		return "unknown"
	}
}

// Event is one drone's entry in a turn's movement log.
type Event struct {
	Drone agents.DroneID `json:"drone"`
	Kind  EventKind      `json:"kind"`
	From  string         `json:"from"`
	To    string         `json:"to"` // Equals From for stationary events
}

// String renders the uncolored log token: "D1-B", "D1-A-B" or "D1-A".
func (e Event) String() string {
	switch e.Kind {
	case EventRestrictedEntry:
		return fmt.Sprintf("%s-%s-%s", e.Drone, e.From, e.To)
	case EventStationary:
		return fmt.Sprintf("%s-%s", e.Drone, e.From)
	default:
		return fmt.Sprintf("%s-%s", e.Drone, e.To)
	}
}

// DirectedLink is one traversal direction of a link.
type DirectedLink struct {
	From string
	To   string
}

// TurnReport summarizes one processed turn.
type TurnReport struct {
	Turn      int                  // 1-based turn number
	Events    []Event              // Movement log in drone order
	Arrived   int                  // Drones removed as arrived before this turn
	InTransit int                  // Drones evaluated this turn
	Occupancy map[string]int       // Drones committed to entering each hub
	LinkUsage map[DirectedLink]int // Drones committed to each directed link
	Replans   int
	Waits     int
}

// Sink receives the movement log, one call per turn that has events.
type Sink interface {
	WriteTurn(turn int, events []Event) error
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(turn int, events []Event) error

// WriteTurn calls f.
func (f SinkFunc) WriteTurn(turn int, events []Event) error {
	return f(turn, events)
}
