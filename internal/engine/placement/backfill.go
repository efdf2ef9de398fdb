package placement

import (
	"github.com/KirkDiggler/dungeon-layout/internal/entities"
)

// backfill places the required rooms growth did not reach. Rooms that still
// do not fit anywhere are listed in the report.
func (r *run) backfill(z *zoneRun) error {
	for _, def := range z.zone.RequiredRooms {
		if z.placedRequired[def.Name] {
			continue
		}
		if err := r.ctx.Err(); err != nil {
			return err
		}
		if !r.backfillOne(z, def) {
			z.report.MissingRequired = append(z.report.MissingRequired, def.Name)
		}
	}

	r.advance(z, entities.ZoneBackfilled)
	return nil
}

// backfillOne scans the free main cells in random order and commits def at the
// first cell where some rotation answers every neighbour opening toward it
func (r *run) backfillOne(z *zoneRun, def entities.RoomDefinition) bool {
	cells := r.freeMainCells(z.zone.ID)
	r.shuffle(cells)

	for _, p := range cells {
		needs := r.inferNeeds(p, z.zone.ID)
		for _, rot := range r.rotationsFrom(entities.Rotations) {
			if !covers(def.Entrances.Rotate(rot), needs) {
				continue
			}
			if r.fits(&def, rot, p, z.zone.ID, false, fitStrict) {
				r.commit(z, def, rot, p, entities.PlacementBackfill)
				return true
			}
		}
	}

	return false
}
