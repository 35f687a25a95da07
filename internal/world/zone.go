package world

// Zone is the traversal category of a hub.
type Zone uint8

const (
	ZoneNormal     Zone = iota // Standard traversal
	ZonePriority               // Preferred by the router
	ZoneRestricted             // Entering costs one extra stationary turn
	ZoneBlocked                // Never traversable
)

// Zones lists every zone in declaration order.
var Zones = [4]Zone{ZoneNormal, ZonePriority, ZoneRestricted, ZoneBlocked}

// ZoneName returns the map-file token for a zone.
func ZoneName(z Zone) string {
	switch z {
	case ZoneNormal:
		return "normal"
	case ZonePriority:
		return "priority"
	case ZoneRestricted:
		return "restricted"
	case ZoneBlocked:
		return "blocked"
	default:
		return "unknown"
	}
}

func (z Zone) String() string {
	return ZoneName(z)
}

// ZoneNames returns the valid zone tokens.
func ZoneNames() []string {
	names := make([]string, 0, len(Zones))
	for _, z := range Zones {
		names = append(names, ZoneName(z))
	}
	return names
}

// LookupZone maps an exact token to its zone.
func LookupZone(name string) (Zone, bool) {
	for _, z := range Zones {
		if ZoneName(z) == name {
			return z, true
		}
	}
	return ZoneNormal, false
}
