package placement

import (
	"github.com/KirkDiggler/dungeon-layout/internal/entities"
)

// placeStart anchors the first room of a zone. The start room must open south
// so the zone can be entered from the band below.
func (r *run) placeStart(z *zoneRun) error {
	candidates := z.zone.StartCandidates()
	if len(candidates) == 0 {
		r.abandon(z, "zone %d has an empty room table", z.zone.ID)
		return nil
	}
	// a band that cannot be filled is a configuration error, caught before
	// anything is committed
	if defect := bandDefect(z.zone); defect != "" {
		r.abandon(z, "%s", defect)
		return nil
	}

	var fixed *entities.Pos
	if z.zone.StartPosition != nil {
		startY, _ := r.grid.ZoneStartY(z.zone.ID)
		p := entities.Pos{X: z.zone.StartPosition.X, Y: z.zone.StartPosition.Y + startY}
		if !r.grid.IsFree(p, z.zone.ID, false) {
			r.abandon(z, "start position %s is not a main cell of zone %d", z.zone.StartPosition, z.zone.ID)
			return nil
		}
		fixed = &p
	}

	for attempt := 0; attempt < r.opts.MaxStartAttempts; attempt++ {
		p, ok := r.startCell(z, fixed)
		if !ok {
			break
		}

		def := candidates[r.rng.Intn(len(candidates))]
		for _, rot := range r.rotationsFrom(def.RotationsWith(entities.South)) {
			if !r.fits(&def, rot, p, z.zone.ID, false, fitStrict) {
				continue
			}
			idx := r.commit(z, def, rot, p, entities.PlacementStart)
			r.rooms[idx].IsStart = true
			z.start = idx
			z.queue = append(z.queue, idx)
			pos := p
			z.report.StartPosition = &pos
			r.advance(z, entities.ZoneStartPlaced)
			return nil
		}
	}

	r.abandon(z, "no start room fits zone %d after %d attempts", z.zone.ID, r.opts.MaxStartAttempts)
	return nil
}

// startCell returns the fixed start cell or a random free main cell, preferring
// cells off the band edge
func (r *run) startCell(z *zoneRun, fixed *entities.Pos) (entities.Pos, bool) {
	if fixed != nil {
		return *fixed, true
	}

	free := r.freeMainCells(z.zone.ID)
	if len(free) == 0 {
		return entities.Pos{}, false
	}

	startY, _ := r.grid.ZoneStartY(z.zone.ID)
	var interior []entities.Pos
	for _, p := range free {
		localY := p.Y - startY
		if p.X > 0 && p.X < z.zone.Width-1 && localY > 0 && localY < z.zone.Height-1 {
			interior = append(interior, p)
		}
	}
	if len(interior) > 0 {
		return interior[r.rng.Intn(len(interior))], true
	}
	return free[r.rng.Intn(len(free))], true
}
