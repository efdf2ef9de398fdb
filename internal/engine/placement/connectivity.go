package placement

import (
	"log/slog"

	"github.com/zyedidia/generic/mapset"

	"github.com/KirkDiggler/dungeon-layout/internal/entities"
)

// doorGraph is the undirected room graph of one zone keyed by anchor position
type doorGraph map[entities.Pos]mapset.Set[entities.Pos]

func (g doorGraph) link(a, b entities.Pos) {
	for _, pair := range [][2]entities.Pos{{a, b}, {b, a}} {
		set, ok := g[pair[0]]
		if !ok {
			set = mapset.New[entities.Pos]()
			g[pair[0]] = set
		}
		set.Put(pair[1])
	}
}

func (g doorGraph) linked(a, b entities.Pos) bool {
	set, ok := g[a]
	return ok && set.Has(b)
}

// reachable returns every anchor reachable from start
func (g doorGraph) reachable(start entities.Pos) mapset.Set[entities.Pos] {
	visited := mapset.New[entities.Pos]()
	queue := []entities.Pos{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if visited.Has(current) {
			continue
		}
		visited.Put(current)

		if next, ok := g[current]; ok {
			next.Each(func(p entities.Pos) {
				if !visited.Has(p) {
					queue = append(queue, p)
				}
			})
		}
	}

	return visited
}

// zoneGraph builds the door graph over the rooms of a zone. Doors leaving the
// zone are ignored.
func (r *run) zoneGraph(zoneID int) doorGraph {
	g := make(doorGraph)
	for _, d := range r.doors {
		if d.ZoneID != zoneID {
			continue
		}
		if _, ok := r.roomInZone(d.Position, zoneID); !ok {
			continue
		}
		if _, ok := r.roomInZone(d.Target, zoneID); !ok {
			continue
		}
		g.link(d.Position, d.Target)
	}
	return g
}

// repair links every room that cannot be reached from the start room to its
// nearest reachable room
func (r *run) repair(z *zoneRun) error {
	if z.start < 0 {
		r.abandon(z, "zone %d has no start room to repair from", z.zone.ID)
		return nil
	}

	var members []int
	for i := range r.rooms {
		if r.rooms[i].ZoneID == z.zone.ID {
			members = append(members, i)
		}
	}

	g := r.zoneGraph(z.zone.ID)
	start := r.rooms[z.start].Position
	reached := g.reachable(start)

	repaired := 0
	for _, idx := range members {
		if err := r.ctx.Err(); err != nil {
			return err
		}

		orphan := r.rooms[idx].Position
		if reached.Has(orphan) {
			continue
		}

		nearest := -1
		best := 0.0
		for _, other := range members {
			pos := r.rooms[other].Position
			if !reached.Has(pos) {
				continue
			}
			dist := orphan.DistanceTo(pos)
			if nearest < 0 || dist < best {
				nearest, best = other, dist
			}
		}
		if nearest < 0 {
			continue
		}

		repaired += r.link(z, g, orphan, r.rooms[nearest].Position)
		reached = g.reachable(start)
	}

	if repaired > 0 {
		slog.Debug("Zone connectivity repaired",
			"zone_id", z.zone.ID,
			"doors_added", repaired,
		)
	}

	r.advance(z, entities.ZoneConnected)
	return nil
}

// link connects from to to through adjacent room anchors, adding a repair door
// for every hop not already joined. With no chain of adjacent rooms a single
// direct door is emitted.
func (r *run) link(z *zoneRun, g doorGraph, from, to entities.Pos) int {
	path := r.anchorPath(z.zone.ID, from, to)
	if path == nil {
		path = []entities.Pos{from, to}
	}

	added := 0
	for i := 0; i+1 < len(path); i++ {
		a, b := path[i], path[i+1]
		if g.linked(a, b) {
			continue
		}
		r.doors = append(r.doors, entities.DoorPlacement{
			Position:  a,
			Direction: dominantDirection(a, b),
			Target:    b,
			ZoneID:    z.zone.ID,
			Room:      r.rooms[r.roomAt[a]].Room.Name,
			Kind:      entities.DoorRepair,
		})
		g.link(a, b)
		added++
	}
	return added
}

// anchorPath finds the shortest chain of grid-adjacent room anchors of a zone
// from from to to, or nil
func (r *run) anchorPath(zoneID int, from, to entities.Pos) []entities.Pos {
	prev := map[entities.Pos]entities.Pos{}
	visited := mapset.New[entities.Pos]()
	visited.Put(from)
	queue := []entities.Pos{from}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current == to {
			path := []entities.Pos{to}
			for p := to; p != from; {
				p = prev[p]
				path = append([]entities.Pos{p}, path...)
			}
			return path
		}

		for _, d := range entities.Directions {
			n := current.Step(d)
			if visited.Has(n) {
				continue
			}
			if _, ok := r.roomInZone(n, zoneID); !ok {
				continue
			}
			visited.Put(n)
			prev[n] = current
			queue = append(queue, n)
		}
	}

	return nil
}

func dominantDirection(from, to entities.Pos) entities.Direction {
	dx, dy := to.X-from.X, to.Y-from.Y
	if abs(dx) > abs(dy) {
		if dx > 0 {
			return entities.East
		}
		return entities.West
	}
	if dy >= 0 {
		return entities.North
	}
	return entities.South
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
