package mapfile

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/talgya/flyin/internal/world"
)

// Write emits sc in the map text format. Hubs and connections keep the
// graph's declaration order; metadata equal to the defaults is omitted.
func Write(w io.Writer, sc *Scenario) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "nb_drones: %d\n", sc.Drones)
	for _, h := range sc.Graph.Hubs() {
		key := "hub"
		switch h.Name {
		case sc.Start:
			key = "start_hub"
		case sc.End:
			key = "end_hub"
		}
		fmt.Fprintf(bw, "%s: %s %d %d%s\n", key, h.Name, h.Coord.X, h.Coord.Y, hubMetadata(h))
	}
	for _, l := range sc.Graph.Links() {
		meta := ""
		if l.Capacity != world.DefaultLinkCapacity && l.Capacity != world.Unlimited {
			meta = fmt.Sprintf(" [max_link_capacity=%d]", l.Capacity)
		}
		fmt.Fprintf(bw, "connection: %s-%s%s\n", l.A, l.B, meta)
	}
	return bw.Flush()
}

func hubMetadata(h *world.Hub) string {
	var parts []string
	if h.Zone != world.ZoneNormal {
		parts = append(parts, "zone="+h.Zone.String())
	}
	if h.MaxDrones != world.DefaultHubCapacity {
		parts = append(parts, fmt.Sprintf("max_drones=%d", h.MaxDrones))
	}
	if h.Color != "" {
		parts = append(parts, "color="+h.Color)
	}
	if len(parts) == 0 {
		return ""
	}
	return " [" + strings.Join(parts, " ") + "]"
}
