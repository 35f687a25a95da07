// Package mapfile reads and writes the drone map text format.
//
//	nb_drones: 3
//	start_hub: A 0 0 [color=green]
//	hub: B 1 0 [zone=restricted max_drones=2]
//	end_hub: C 2 0
//	connection: A-B [max_link_capacity=2]
//	connection: B-C
package mapfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"

	"github.com/talgya/flyin/internal/world"
)

// Parsing errors
var (
	ErrMissingEndpoint = errors.New("map must declare a start_hub and an end_hub")
	ErrMalformedLine   = errors.New("malformed line")
	ErrInvalidHubName  = errors.New("hub names cannot contain spaces or '-'")
)

// suggestThreshold is the minimum similarity for a "did you mean" hint.
const suggestThreshold = 0.6

// lineRegex splits "key: value" lines.
var lineRegex = regexp.MustCompile(`^([a-z_]+)\s*:\s*(.*)$`)

// metadataRegex matches the bracketed key=value block.
var metadataRegex = regexp.MustCompile(`\[(.*?)\]`)

// Scenario is a parsed map: the hub graph, the shared start and end hubs,
// and the number of drones to fly.
type Scenario struct {
	Graph  *world.Graph
	Start  string
	End    string
	Drones int
}

// ParseError attaches a 1-based line number to a parse failure.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ParseFile opens and parses the map at path.
func ParseFile(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open map: %w", err)
	}
	defer f.Close()

	sc, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

// Parse reads a map. Blank lines, comments and unknown keys are skipped.
func Parse(r io.Reader) (*Scenario, error) {
	p := &parser{b: world.NewBuilder()}

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if err := p.parseLine(text); err != nil {
			return nil, &ParseError{Line: line, Err: err}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read map: %w", err)
	}

	if p.start == "" || p.end == "" {
		return nil, ErrMissingEndpoint
	}
	return &Scenario{
		Graph:  p.b.Build(),
		Start:  p.start,
		End:    p.end,
		Drones: p.drones,
	}, nil
}

type parser struct {
	b      *world.Builder
	start  string
	end    string
	drones int
}

func (p *parser) parseLine(text string) error {
	m := lineRegex.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	key, value := m[1], m[2]

	switch key {
	case "nb_drones":
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || n < 0 {
			return fmt.Errorf("'nb_drones' must be a non-negative integer (got: %s)", value)
		}
		p.drones = n
		return nil
	case "hub", "start_hub", "end_hub":
		h, err := parseHub(value)
		if err != nil {
			return err
		}
		if err := p.b.AddHub(h); err != nil {
			return err
		}
		switch key {
		case "start_hub":
			p.start = h.Name
		case "end_hub":
			p.end = h.Name
		}
		return nil
	case "connection":
		a, b, capacity, err := parseConnection(value)
		if err != nil {
			return err
		}
		return p.b.AddLink(a, b, capacity)
	default:
		return nil
	}
}

// splitMetadata separates "fields [k=v ...]" into its fields and metadata.
func splitMetadata(value string) ([]string, map[string]string) {
	meta := make(map[string]string)
	if loc := metadataRegex.FindStringSubmatchIndex(value); loc != nil {
		for _, item := range strings.Fields(value[loc[2]:loc[3]]) {
			k, v, ok := strings.Cut(item, "=")
			if !ok {
				continue
			}
			meta[strings.TrimSpace(k)] = strings.TrimSpace(v)
		}
		value = value[:loc[0]]
	}
	return strings.Fields(value), meta
}

func parseHub(value string) (world.Hub, error) {
	fields, meta := splitMetadata(value)
	if len(fields) != 3 {
		return world.Hub{}, fmt.Errorf("%w: hub needs 'name x y', got %q", ErrMalformedLine, value)
	}
	name := fields[0]
	if strings.Contains(name, "-") {
		return world.Hub{}, fmt.Errorf("%w: %s", ErrInvalidHubName, name)
	}
	x, errX := strconv.Atoi(fields[1])
	y, errY := strconv.Atoi(fields[2])
	if errX != nil || errY != nil {
		return world.Hub{}, fmt.Errorf("%w: hub %s coordinates must be integers", ErrMalformedLine, name)
	}

	h := world.NewHub(name, x, y)
	if v, ok := meta["zone"]; ok {
		z, err := ParseZone(v)
		if err != nil {
			return world.Hub{}, err
		}
		h.Zone = z
	}
	if v, ok := meta["max_drones"]; ok {
		n, err := ParseCapacity("max_drones", v)
		if err != nil {
			return world.Hub{}, err
		}
		h.MaxDrones = n
	}
	if v, ok := meta["color"]; ok {
		h.Color = v
	}
	return h, nil
}

func parseConnection(value string) (string, string, int, error) {
	fields, meta := splitMetadata(value)
	if len(fields) != 1 {
		return "", "", 0, fmt.Errorf("%w: connection needs 'a-b', got %q", ErrMalformedLine, value)
	}
	a, b, ok := strings.Cut(fields[0], "-")
	if !ok || a == "" || b == "" || strings.Contains(b, "-") {
		return "", "", 0, fmt.Errorf("%w: connection needs 'a-b', got %q", ErrMalformedLine, fields[0])
	}

	capacity := world.DefaultLinkCapacity
	if v, ok := meta["max_link_capacity"]; ok {
		n, err := ParseCapacity("max_link_capacity", v)
		if err != nil {
			return "", "", 0, err
		}
		capacity = n
	}
	return a, b, capacity, nil
}

// ParseZone converts a zone tag. Unknown tags yield an InvalidZoneError,
// carrying the closest valid tag when one is similar enough.
func ParseZone(value string) (world.Zone, error) {
	if z, ok := world.LookupZone(value); ok {
		return z, nil
	}
	return 0, world.NewInvalidZoneError(value, suggestZone(value))
}

func suggestZone(value string) string {
	best, bestScore := "", 0.0
	for _, name := range world.ZoneNames() {
		if s := similarity(value, name); s > bestScore {
			best, bestScore = name, s
		}
	}
	if bestScore < suggestThreshold {
		return ""
	}
	return best
}

// similarity is 1 - edit distance / longer length, in [0, 1].
func similarity(a, b string) float64 {
	longest := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if longest == 0 {
		return 1
	}
	return 1 - float64(levenshtein.ComputeDistance(a, b))/float64(longest)
}

// ParseCapacity parses a non-negative integer capacity for field.
func ParseCapacity(field, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, world.NewInvalidCapacityError(field, value).WithCause(err)
	}
	if n < 0 {
		return 0, world.NewInvalidCapacityError(field, value)
	}
	return n, nil
}
