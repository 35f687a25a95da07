// Drone spawning: creates the fleet that shares one start/end hub pair.
package agents

import "fmt"

// Spawner creates drones with sequential ids.
type Spawner struct {
	nextID int
}

// NewSpawner creates a spawner whose first drone is D1.
func NewSpawner() *Spawner {
	return &Spawner{nextID: 1}
}

// Spawn creates count drones, all travelling from start to end, in id order.
func (s *Spawner) Spawn(count int, start, end string) []*Drone {
	if count <= 0 {
		return nil
	}
	drones := make([]*Drone, 0, count)
	for i := 0; i < count; i++ {
		drones = append(drones, s.spawnOne(start, end))
	}
	return drones
}

func (s *Spawner) spawnOne(start, end string) *Drone {
	id := DroneID(fmt.Sprintf("D%d", s.nextID))
	s.nextID++
	return NewDrone(id, start, end)
}

// SeedPaths assigns a copy of the same path to every drone.
func SeedPaths(drones []*Drone, path []string) {
	for _, d := range drones {
		d.AssignPath(path)
		d.Restricted = 0
	}
}
