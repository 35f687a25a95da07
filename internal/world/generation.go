// Map generation using layered simplex noise.
// Lays hubs out on a grid, samples a noise field at each hub, and derives the zone.
package world

import (
	"fmt"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/talgya/flyin/internal/entropy"
)

// GenConfig holds map generation parameters.
type GenConfig struct {
	Width        int     // Hubs per row
	Height       int     // Hubs per column
	Seed         int64   // Random seed (0 = random)
	HubCapacity  int     // max_drones for every generated hub
	LinkCapacity int     // max_link_capacity for every generated link
	BlockedLvl   float64 // Noise below this is blocked (0.0–1.0)
	RestrictLvl  float64 // Noise below this is restricted
	PriorityLvl  float64 // Noise above this is priority
}

// DefaultGenConfig returns a reasonable starting configuration.
func DefaultGenConfig() GenConfig {
	return GenConfig{
		Width:        6,
		Height:       4,
		Seed:         0,
		HubCapacity:  1,
		LinkCapacity: 1,
		BlockedLvl:   0.22,
		RestrictLvl:  0.38,
		PriorityLvl:  0.62,
	}
}

// SmallTestConfig returns a tiny map for rapid iteration.
func SmallTestConfig() GenConfig {
	cfg := DefaultGenConfig()
	cfg.Width = 3
	cfg.Height = 3
	cfg.Seed = 42
	return cfg
}

// Generated is a generated graph with its designated endpoints.
type Generated struct {
	Graph *Graph
	Start string
	End   string
	Seed  int64 // Seed actually used
}

// GridHubName returns the name of the generated hub at (x, y).
func GridHubName(x, y int) string {
	return fmt.Sprintf("H%d_%d", x, y)
}

// Generate builds a grid map whose zones come from a noise field. The start
// hub (0,0) and end hub (w-1,h-1) are always normal.
func Generate(cfg GenConfig) (*Generated, error) {
	if cfg.Width < 1 || cfg.Height < 1 {
		return nil, fmt.Errorf("generate: grid %dx%d must be at least 1x1", cfg.Width, cfg.Height)
	}
	if cfg.Width*cfg.Height < 2 {
		return nil, fmt.Errorf("generate: grid needs at least two hubs")
	}

	seed := entropy.Resolve(cfg.Seed)
	noise := opensimplex.NewNormalized(seed)

	b := NewBuilder()
	last := Coord{X: cfg.Width - 1, Y: cfg.Height - 1}

	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			h := NewHub(GridHubName(x, y), x, y)
			h.MaxDrones = cfg.HubCapacity

			endpoint := (x == 0 && y == 0) || (x == last.X && y == last.Y)
			if !endpoint {
				v := octaveNoise(noise, float64(x), float64(y), 3, 0.35, 0.5)
				h.Zone = deriveZone(v, cfg)
			}
			if err := b.AddHub(h); err != nil {
				return nil, err
			}
		}
	}

	// 4-neighbour links, right then down.
	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			from := GridHubName(x, y)
			if x+1 < cfg.Width {
				if err := b.AddLink(from, GridHubName(x+1, y), cfg.LinkCapacity); err != nil {
					return nil, err
				}
			}
			if y+1 < cfg.Height {
				if err := b.AddLink(from, GridHubName(x, y+1), cfg.LinkCapacity); err != nil {
					return nil, err
				}
			}
		}
	}

	return &Generated{
		Graph: b.Build(),
		Start: GridHubName(0, 0),
		End:   GridHubName(last.X, last.Y),
		Seed:  seed,
	}, nil
}

// deriveZone determines the zone from a normalized noise sample.
func deriveZone(v float64, cfg GenConfig) Zone {
	switch {
	case v < cfg.BlockedLvl:
		return ZoneBlocked
	case v < cfg.RestrictLvl:
		return ZoneRestricted
	case v > cfg.PriorityLvl:
		return ZonePriority
	default:
		return ZoneNormal
	}
}

// octaveNoise generates fractal noise by layering multiple frequencies.
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0

	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	return total / maxVal
}

// ZoneCounts returns a summary of zone distribution.
func ZoneCounts(g *Graph) map[Zone]int {
	counts := make(map[Zone]int)
	for _, h := range g.Hubs() {
		counts[h.Zone]++
	}
	return counts
}
