// Package world provides the hub graph: hubs with integer coordinates, zones,
// occupancy limits, and the undirected links between them.
package world

import "fmt"

// Coord is an integer position on the map. Used only for heuristic distance.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// String returns "x,y".
func (c Coord) String() string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}

// Distance returns the Manhattan distance between two coordinates.
func Distance(a, b Coord) int {
	dx := a.X - b.X
	dy := a.Y - b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// DefaultHubCapacity is the occupancy limit of a hub with no max_drones metadata.
const DefaultHubCapacity = 1

// Hub is a node of the routing graph. Hubs are immutable once added to a Graph.
type Hub struct {
	Name      string `json:"name"`
	Coord     Coord  `json:"coord"`
	Zone      Zone   `json:"zone"`
	MaxDrones int    `json:"max_drones"`      // Agents that may enter per turn
	Color     string `json:"color,omitempty"` // Presentation only, never read by routing
}

// NewHub returns a normal-zone hub with the default capacity.
func NewHub(name string, x, y int) Hub {
	return Hub{
		Name:      name,
		Coord:     Coord{X: x, Y: y},
		Zone:      ZoneNormal,
		MaxDrones: DefaultHubCapacity,
	}
}

// Traversable reports whether agents may ever enter the hub.
func (h *Hub) Traversable() bool {
	return h.Zone != ZoneBlocked
}

// String returns a short description of the hub.
func (h *Hub) String() string {
	return fmt.Sprintf("Hub(%s @%s, %s, cap=%d)", h.Name, h.Coord, h.Zone, h.MaxDrones)
}
