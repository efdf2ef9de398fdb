package placement

import (
	"github.com/KirkDiggler/dungeon-layout/internal/entities"
)

type fitMode int

const (
	// fitStrict requires every entrance to mirror its occupied neighbours
	fitStrict fitMode = iota
	// fitForced only requires the cells to be free
	fitForced
)

// fits reports whether def rotated by rot can be anchored at p in zoneID.
//
// Cells: the anchor and every extension must be free cells of the zone;
// extensions never use connector cells.
// Mirroring: for each direction with an occupied same-zone neighbour, the
// candidate is open exactly when the neighbour room is open back toward it.
// Reserved extension cells count as closed walls on both sides.
func (r *run) fits(def *entities.RoomDefinition, rot entities.Rotation, p entities.Pos, zoneID int, allowConnector bool, mode fitMode) bool {
	if !r.grid.IsFree(p, zoneID, allowConnector) {
		return false
	}

	exts := nonZero(def.RotatedExtensions(rot))
	own := make(map[entities.Pos]bool, len(exts))
	for _, ext := range exts {
		cell := p.Add(ext)
		if own[cell] || !r.grid.IsFree(cell, zoneID, false) {
			return false
		}
		own[cell] = true
	}

	if mode == fitForced {
		return true
	}

	entrances := def.Entrances.Rotate(rot)
	for _, d := range entities.Directions {
		n := p.Step(d)
		if own[n] {
			if entrances.Has(d) {
				return false
			}
			continue
		}
		if !r.occupiedInZone(n, zoneID) {
			continue
		}
		if entrances.Has(d) != r.opensToward(n, zoneID, d.Opposite()) {
			return false
		}
	}

	// rooms next to a reserved cell must not open into it
	for cell := range own {
		for _, d := range entities.Directions {
			n := cell.Step(d)
			if n == p || own[n] {
				continue
			}
			if r.opensToward(n, zoneID, d.Opposite()) {
				return false
			}
		}
	}

	return true
}

func (r *run) occupiedInZone(p entities.Pos, zoneID int) bool {
	cell := r.grid.Cell(p)
	return cell != nil && cell.ZoneID == zoneID && cell.Occupied
}

// opensToward reports whether a room of zoneID anchored at p has an entrance in d
func (r *run) opensToward(p entities.Pos, zoneID int, d entities.Direction) bool {
	idx, ok := r.roomInZone(p, zoneID)
	return ok && r.rooms[idx].Entrances.Has(d)
}

// inferNeeds returns the entrances a room at p must expose so that every
// already placed neighbour opening toward p is answered
func (r *run) inferNeeds(p entities.Pos, zoneID int) entities.Entrances {
	var needs entities.Entrances
	for _, d := range entities.Directions {
		if r.opensToward(p.Step(d), zoneID, d.Opposite()) {
			needs = needs.With(d, true)
		}
	}
	return needs
}

func covers(have, need entities.Entrances) bool {
	for _, d := range entities.Directions {
		if need.Has(d) && !have.Has(d) {
			return false
		}
	}
	return true
}

func nonZero(offsets []entities.Pos) []entities.Pos {
	out := offsets[:0:0]
	for _, o := range offsets {
		if o != (entities.Pos{}) {
			out = append(out, o)
		}
	}
	return out
}

var doorKinds = map[entities.PlacementKind]entities.DoorKind{
	entities.PlacementStart:     entities.DoorGrowth,
	entities.PlacementGrowth:    entities.DoorGrowth,
	entities.PlacementConnector: entities.DoorConnector,
	entities.PlacementExit:      entities.DoorExit,
	entities.PlacementBackfill:  entities.DoorBackfill,
}

// commit claims the cells for a room, records the placement and emits one door
// from every already placed neighbour whose entrance this room mirrors.
// Callers must have checked fits first.
func (r *run) commit(z *zoneRun, def entities.RoomDefinition, rot entities.Rotation, p entities.Pos, kind entities.PlacementKind) int {
	occupies := []entities.Pos{p}
	for _, ext := range nonZero(def.RotatedExtensions(rot)) {
		occupies = append(occupies, p.Add(ext))
	}
	for _, cell := range occupies {
		// fits guaranteed the cells are free
		_ = r.grid.Occupy(cell)
	}

	placement := entities.RoomPlacement{
		Position:  p,
		Room:      def,
		Rotation:  rot,
		ZoneID:    z.zone.ID,
		Entrances: def.Entrances.Rotate(rot),
		Occupies:  occupies,
		Kind:      kind,
	}
	if z.isRequired(def.Name) {
		placement.Required = true
		z.placedRequired[def.Name] = true
	}

	idx := len(r.rooms)
	r.rooms = append(r.rooms, placement)
	r.roomAt[p] = idx

	for _, d := range placement.Entrances.Open() {
		n := p.Step(d)
		nIdx, ok := r.roomInZone(n, z.zone.ID)
		if !ok || nIdx == idx {
			continue
		}
		neighbour := r.rooms[nIdx]
		if !neighbour.Entrances.Has(d.Opposite()) {
			continue
		}
		r.doors = append(r.doors, entities.DoorPlacement{
			Position:  neighbour.Position,
			Direction: d.Opposite(),
			Target:    p,
			ZoneID:    z.zone.ID,
			Room:      neighbour.Room.Name,
			Kind:      doorKinds[kind],
		})
	}

	return idx
}
