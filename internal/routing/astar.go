// Package routing finds cost-aware shortest paths over a world.Graph.
package routing

import (
	"container/heap"

	"github.com/talgya/flyin/internal/world"
)

// Avoid is a set of hub names a search must not enter.
type Avoid map[string]struct{}

// NewAvoid builds an Avoid set from names.
func NewAvoid(names ...string) Avoid {
	a := make(Avoid, len(names))
	for _, n := range names {
		a[n] = struct{}{}
	}
	return a
}

// Has reports whether name is in the set. A nil set contains nothing.
func (a Avoid) Has(name string) bool {
	_, ok := a[name]
	return ok
}

// Pathfinder computes a hub sequence from start to end. An empty result means
// no path exists; it is not an error.
type Pathfinder interface {
	FindPath(g *world.Graph, start, end string, avoid Avoid) []string
}

// Per-hop costs by destination zone.
const (
	CostPriority   = 1
	CostNormal     = 2
	CostRestricted = 5
)

// ZoneCost returns the cost of stepping into a hub of the given zone, and
// false for zones that can never be entered.
func ZoneCost(z world.Zone) (int, bool) {
	switch z {
	case world.ZonePriority:
		return CostPriority, true
	case world.ZoneRestricted:
		return CostRestricted, true
	case world.ZoneBlocked:
		return 0, false
	default:
		return CostNormal, true
	}
}

// PathCost sums the hop costs of a path. It returns -1 if the path leaves
// the graph, uses a missing link, or enters a blocked hub.
func PathCost(g *world.Graph, path []string) int {
	if len(path) == 0 {
		return -1
	}
	if !g.Has(path[0]) {
		return -1
	}
	total := 0
	for i := 1; i < len(path); i++ {
		if !g.Linked(path[i-1], path[i]) {
			return -1
		}
		h, err := g.Hub(path[i])
		if err != nil {
			return -1
		}
		c, ok := ZoneCost(h.Zone)
		if !ok {
			return -1
		}
		total += c
	}
	return total
}

// AStar is an informed best-first search with a Manhattan heuristic. Equal
// estimates pop in insertion order, so results are deterministic.
type AStar struct{}

// NewAStar returns an A* pathfinder.
func NewAStar() *AStar {
	return &AStar{}
}

// FindPath returns the cheapest path from start to end, skipping blocked hubs
// and every hub in avoid. A blocked start yields no path; an avoided start is
// still used.
func (AStar) FindPath(g *world.Graph, start, end string, avoid Avoid) []string {
	origin, err := g.Hub(start)
	if err != nil || !origin.Traversable() {
		return nil
	}
	goal, err := g.Hub(end)
	if err != nil {
		return nil
	}

	costSoFar := map[string]int{start: 0}
	cameFrom := make(map[string]string)

	pq := &priorityQueue{}
	heap.Init(pq)
	var seq uint64
	heap.Push(pq, &pqItem{node: start, priority: 0, seq: seq})

	for pq.Len() > 0 {
		current := heap.Pop(pq).(*pqItem).node
		if current == end {
			return reconstructPath(cameFrom, start, end)
		}

		for _, next := range g.Neighbors(current) {
			if avoid.Has(next) {
				continue
			}
			nh, err := g.Hub(next)
			if err != nil {
				continue
			}
			step, ok := ZoneCost(nh.Zone)
			if !ok {
				continue
			}

			tentative := costSoFar[current] + step
			if old, seen := costSoFar[next]; seen && tentative >= old {
				continue
			}
			costSoFar[next] = tentative
			cameFrom[next] = current

			seq++
			estimated := tentative + world.Distance(nh.Coord, goal.Coord)
			heap.Push(pq, &pqItem{node: next, priority: estimated, seq: seq})
		}
	}

	return nil
}

func reconstructPath(cameFrom map[string]string, start, end string) []string {
	var path []string
	for cur := end; ; {
		path = append(path, cur)
		if cur == start {
			break
		}
		cur = cameFrom[cur]
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// ---------- internal PQ ----------

type pqItem struct {
	node     string
	priority int
	seq      uint64 // Insertion order, breaks priority ties
}

type priorityQueue []*pqItem

func (pq priorityQueue) Len() int { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool {
	if pq[i].priority != pq[j].priority {
		return pq[i].priority < pq[j].priority
	}
	return pq[i].seq < pq[j].seq
}
func (pq priorityQueue) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *priorityQueue) Push(x interface{}) { *pq = append(*pq, x.(*pqItem)) }
func (pq *priorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]
	return it
}
