package world

import (
	"errors"
	"fmt"
	"math"
)

// Unlimited is the capacity of a link that carries no limit.
const Unlimited = math.MaxInt

// DefaultLinkCapacity is the capacity of a declared link with no max_link_capacity.
const DefaultLinkCapacity = 1

var errBuilt = errors.New("graph builder already built")

// Link is an undirected connection between two hubs.
type Link struct {
	A        string `json:"a"`
	B        string `json:"b"`
	Capacity int    `json:"capacity"`
}

// linkKey is the direction-independent identity of a link.
type linkKey struct {
	lo, hi string
}

func keyOf(a, b string) linkKey {
	if b < a {
		a, b = b, a
	}
	return linkKey{lo: a, hi: b}
}

// Graph holds hubs and their undirected links. It has no mutators; use a Builder.
type Graph struct {
	hubs      map[string]*Hub
	order     []string            // Hub names in insertion order
	adjacency map[string][]string // Symmetric, neighbours in link insertion order
	links     map[linkKey]int
	linkOrder []Link
}

func newGraph() *Graph {
	return &Graph{
		hubs:      make(map[string]*Hub),
		adjacency: make(map[string][]string),
		links:     make(map[linkKey]int),
	}
}

// Hub returns a copy of the hub with the given name. Changing the copy does
// not affect the graph.
func (g *Graph) Hub(name string) (*Hub, error) {
	h, ok := g.hubs[name]
	if !ok {
		return nil, NewNotFoundError("hub", name)
	}
	c := *h
	return &c, nil
}

// Has reports whether a hub with the given name exists.
func (g *Graph) Has(name string) bool {
	_, ok := g.hubs[name]
	return ok
}

// Neighbors returns the adjacency list of a hub, or nil if it has none.
// The returned slice must not be modified.
func (g *Graph) Neighbors(name string) []string {
	return g.adjacency[name]
}

// LinkCapacity returns the capacity of the link between a and b in either
// direction. Pairs with no declared link are Unlimited.
func (g *Graph) LinkCapacity(a, b string) int {
	if c, ok := g.links[keyOf(a, b)]; ok {
		return c
	}
	return Unlimited
}

// Linked reports whether a and b share a link.
func (g *Graph) Linked(a, b string) bool {
	_, ok := g.links[keyOf(a, b)]
	return ok
}

// Hubs returns every hub in insertion order.
func (g *Graph) Hubs() []*Hub {
	out := make([]*Hub, 0, len(g.order))
	for _, name := range g.order {
		c := *g.hubs[name]
		out = append(out, &c)
	}
	return out
}

// Links returns every link in insertion order.
func (g *Graph) Links() []Link {
	out := make([]Link, len(g.linkOrder))
	copy(out, g.linkOrder)
	return out
}

// HubCount returns the number of hubs.
func (g *Graph) HubCount() int {
	return len(g.order)
}

// LinkCount returns the number of links.
func (g *Graph) LinkCount() int {
	return len(g.linkOrder)
}

// String returns a summary of the graph.
func (g *Graph) String() string {
	return fmt.Sprintf("Graph(hubs=%d, links=%d)", g.HubCount(), g.LinkCount())
}

// Builder assembles a Graph. After Build the builder rejects further changes.
type Builder struct {
	g *Graph
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{g: newGraph()}
}

// AddHub adds a hub. Names must be unique and capacities non-negative.
func (b *Builder) AddHub(h Hub) error {
	if b.g == nil {
		return errBuilt
	}
	if h.Name == "" {
		return errors.New("hub name cannot be empty")
	}
	if _, ok := b.g.hubs[h.Name]; ok {
		return NewDuplicateError("hub", h.Name)
	}
	if h.MaxDrones < 0 {
		return NewInvalidCapacityError("max_drones", fmt.Sprint(h.MaxDrones))
	}
	hub := h
	b.g.hubs[h.Name] = &hub
	b.g.order = append(b.g.order, h.Name)
	return nil
}

// AddLink connects two existing hubs. The pair may appear only once in
// either order.
func (b *Builder) AddLink(a, c string, capacity int) error {
	if b.g == nil {
		return errBuilt
	}
	if !b.g.Has(a) {
		return NewNotFoundError("hub", a)
	}
	if !b.g.Has(c) {
		return NewNotFoundError("hub", c)
	}
	if a == c {
		return fmt.Errorf("link %s-%s: hub cannot link to itself", a, c)
	}
	if capacity < 0 {
		return NewInvalidCapacityError("max_link_capacity", fmt.Sprint(capacity))
	}
	key := keyOf(a, c)
	if _, ok := b.g.links[key]; ok {
		return NewDuplicateError("link", a+"-"+c)
	}
	b.g.links[key] = capacity
	b.g.linkOrder = append(b.g.linkOrder, Link{A: a, B: c, Capacity: capacity})
	b.g.adjacency[a] = append(b.g.adjacency[a], c)
	b.g.adjacency[c] = append(b.g.adjacency[c], a)
	return nil
}

// Build returns the finished graph.
func (b *Builder) Build() *Graph {
	g := b.g
	b.g = nil
	return g
}
