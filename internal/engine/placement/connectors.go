package placement

import (
	"fmt"
	"sort"

	"github.com/KirkDiggler/dungeon-layout/internal/entities"
)

// placeConnectors fills the connector band of a zone. Zones that connect onward
// get connector rooms with a zone link door; terminal zones get their surface
// exits.
func (r *run) placeConnectors(z *zoneRun) error {
	switch {
	case z.zone.ConnectsOnward():
		r.placeZoneConnectors(z)
	case len(z.zone.SurfaceExits) > 0:
		r.placeSurfaceExits(z)
	}

	r.advance(z, entities.ZoneConnectorsPlaced)
	return nil
}

// bridgeRotations lists the rotations of def that open both north and south
func bridgeRotations(def entities.RoomDefinition) []entities.Rotation {
	var rots []entities.Rotation
	for _, rot := range entities.Rotations {
		e := def.Entrances.Rotate(rot)
		if e.Has(entities.North) && e.Has(entities.South) {
			rots = append(rots, rot)
		}
	}
	return rots
}

// bandDefect names the first connector or surface exit definition of z that no
// rotation can place, or returns "" when the band is usable
func bandDefect(z *entities.Zone) string {
	if z.ConnectsOnward() {
		if len(bridgeRotations(z.Connector.Room)) == 0 {
			return fmt.Sprintf("connector room %q has no rotation opening north and south", z.Connector.Room.Name)
		}
		return ""
	}
	for _, def := range z.SurfaceExits {
		if len(def.RotationsWith(entities.South)) == 0 {
			return fmt.Sprintf("surface exit %q has no rotation opening south", def.Name)
		}
	}
	return ""
}

func (r *run) placeZoneConnectors(z *zoneRun) {
	conn := z.zone.Connector
	def := conn.Room
	rots := bridgeRotations(def)

	cells := r.bandCells(z)
	placed := 0
	for _, p := range cells {
		if placed >= conn.Count {
			break
		}
		for _, rot := range r.rotationsFrom(rots) {
			if !r.fits(&def, rot, p, z.zone.ID, true, fitStrict) || !r.northAccepts(p) {
				continue
			}
			r.commitConnector(z, def, rot, p)
			placed++
			break
		}
	}

	if placed > 0 || len(cells) == 0 {
		if placed < conn.Count {
			r.problem(z, "placed %d of %d connectors", placed, conn.Count)
		}
		return
	}

	// nothing mirrored, so the best ranked cell takes the connector without a
	// south door and repair links it up
	for _, p := range cells {
		if r.fits(&def, rots[0], p, z.zone.ID, true, fitForced) {
			r.commitConnector(z, def, rots[0], p)
			r.problem(z, "connector at %s placed without a mirrored south entrance", p)
			return
		}
	}
	r.problem(z, "no connector cell available in zone %d", z.zone.ID)
}

func (r *run) commitConnector(z *zoneRun, def entities.RoomDefinition, rot entities.Rotation, p entities.Pos) {
	r.commit(z, def, rot, p, entities.PlacementConnector)

	r.doors = append(r.doors, entities.DoorPlacement{
		Position:        p,
		Direction:       entities.North,
		Target:          p.Step(entities.North),
		ZoneID:          z.zone.ID,
		Room:            def.Name,
		IsZoneConnector: true,
		NextZoneID:      z.zone.Connector.NextZoneID,
		Kind:            entities.DoorZoneLink,
	})
}

// northAccepts reports whether the cell above p is empty or holds a room that
// opens back south
func (r *run) northAccepts(p entities.Pos) bool {
	n := p.Step(entities.North)
	cell := r.grid.Cell(n)
	if cell == nil || !cell.Occupied {
		return true
	}
	idx, ok := r.roomAt[n]
	return ok && r.rooms[idx].Entrances.Has(entities.South)
}

func (r *run) placeSurfaceExits(z *zoneRun) {
	for _, def := range z.zone.SurfaceExits {
		if !r.placeExit(z, def) {
			r.problem(z, "surface exit %q could not be placed", def.Name)
		}
	}
}

func (r *run) placeExit(z *zoneRun, def entities.RoomDefinition) bool {
	rots := def.RotationsWith(entities.South)
	for _, p := range r.bandCells(z) {
		for _, rot := range r.rotationsFrom(rots) {
			if r.fits(&def, rot, p, z.zone.ID, true, fitStrict) {
				r.commit(z, def, rot, p, entities.PlacementExit)
				return true
			}
		}
	}
	return false
}

// bandCells returns the free connector cells of a zone shuffled, then ranked:
// cells above a room that opens north first, and among those, cells below a
// room that opens south.
func (r *run) bandCells(z *zoneRun) []entities.Pos {
	var cells []entities.Pos
	for _, c := range r.grid.ConnectorCells(z.zone.ID) {
		if !c.Occupied {
			cells = append(cells, c.Pos)
		}
	}
	r.shuffle(cells)

	rank := func(p entities.Pos) int {
		score := 0
		if r.opensToward(p.Step(entities.South), z.zone.ID, entities.North) {
			score += 2
		}
		n := p.Step(entities.North)
		if idx, ok := r.roomAt[n]; ok && r.rooms[idx].Entrances.Has(entities.South) {
			score++
		}
		return score
	}
	sort.SliceStable(cells, func(i, j int) bool {
		return rank(cells[i]) > rank(cells[j])
	})

	return cells
}
