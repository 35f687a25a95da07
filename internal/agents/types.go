// Package agents provides the drone data model and its path bookkeeping.
package agents

import (
	"errors"
	"fmt"
)

// DroneID is a unique identifier for a drone, e.g. "D1".
type DroneID string

// ErrPathMismatch is returned when a replacement path does not keep the
// drone at its current hub.
var ErrPathMismatch = errors.New("replacement path does not start at current hub")

// Drone is a mobile agent following a path of hub names to a shared destination.
type Drone struct {
	ID    DroneID `json:"id"`
	Start string  `json:"start"` // Configured start hub
	End   string  `json:"end"`   // Destination hub

	// Path runs from the start hub to End; Index points at the current hub.
	Path  []string `json:"path"`
	Index int      `json:"index"`

	// Restricted counts stationary turns still owed after entering a restricted hub.
	Restricted int `json:"restricted,omitempty"`
}

// NewDrone creates a drone with no path yet.
func NewDrone(id DroneID, start, end string) *Drone {
	return &Drone{ID: id, Start: start, End: end}
}

// CurrentHub returns Path[Index], or the start hub when no path is assigned.
func (d *Drone) CurrentHub() string {
	if len(d.Path) == 0 {
		return d.Start
	}
	return d.Path[d.Index]
}

// NextHub returns the hub after the current one, if any.
func (d *Drone) NextHub() (string, bool) {
	if d.Index+1 >= len(d.Path) {
		return "", false
	}
	return d.Path[d.Index+1], true
}

// Arrived reports whether the drone stands on its destination.
func (d *Drone) Arrived() bool {
	return d.CurrentHub() == d.End
}

// AssignPath installs a fresh path and resets the index to its first hub.
func (d *Drone) AssignPath(path []string) {
	d.Path = append([]string(nil), path...)
	d.Index = 0
}

// Replan replaces the remainder of the path with detour, which must begin at
// the current hub. The travelled prefix and Index are kept. On error the
// drone is left unchanged.
func (d *Drone) Replan(detour []string) error {
	if len(detour) == 0 || detour[0] != d.CurrentHub() {
		return fmt.Errorf("drone %s: %w", d.ID, ErrPathMismatch)
	}
	var prefix []string
	if len(d.Path) > 0 {
		prefix = d.Path[:d.Index]
	}
	next := make([]string, 0, len(prefix)+len(detour))
	next = append(next, prefix...)
	next = append(next, detour...)
	d.Path = next
	return nil
}

// Advance moves the drone one hub along its path.
func (d *Drone) Advance() {
	if d.Index+1 < len(d.Path) {
		d.Index++
	}
}

// String returns a short description of the drone.
func (d *Drone) String() string {
	return fmt.Sprintf("Drone(%s @%s -> %s)", d.ID, d.CurrentHub(), d.End)
}
