package placement

import (
	"github.com/KirkDiggler/dungeon-layout/internal/entities"
)

// grow expands the zone breadth first from the start room. Every open entrance
// of a dequeued room that faces a free main cell gets one placement attempt.
func (r *run) grow(z *zoneRun) error {
	r.advance(z, entities.ZoneGrowing)

	for len(z.queue) > 0 {
		if err := r.ctx.Err(); err != nil {
			return err
		}

		src := r.rooms[z.queue[0]]
		z.queue = z.queue[1:]

		for _, d := range src.Entrances.Open() {
			target := src.Position.Step(d)
			if !r.grid.IsFree(target, z.zone.ID, false) {
				continue
			}
			if idx, ok := r.growInto(z, target, d.Opposite()); ok {
				z.queue = append(z.queue, idx)
			}
		}
	}

	return nil
}

// growInto tries to place a room at target that opens toward need
func (r *run) growInto(z *zoneRun, target entities.Pos, need entities.Direction) (int, bool) {
	if r.rng.Float64() < r.opts.DeadEndChance {
		if idx, ok := r.tryPlace(z, r.deadEnds(z, need), target, need); ok {
			return idx, true
		}
	}

	var pool []entities.RoomDefinition
	for _, def := range z.zone.NormalRooms {
		if def.CompatibleWith(need) {
			pool = append(pool, def)
		}
	}

	// one pool per attempt budget: either the unplaced required rooms alone or
	// everything compatible
	required := z.unplacedRequired(need)
	if len(required) > 0 && r.rng.Float64() < r.opts.RequiredBias {
		pool = required
	} else {
		pool = append(pool, required...)
	}

	return r.tryPlace(z, pool, target, need)
}

func (r *run) deadEnds(z *zoneRun, need entities.Direction) []entities.RoomDefinition {
	var out []entities.RoomDefinition
	for _, def := range z.zone.NormalRooms {
		if def.IsDeadEnd() && def.CompatibleWith(need) {
			out = append(out, def)
		}
	}
	return out
}

// tryPlace draws random definitions from pool and commits the first rotation
// that opens toward need and passes the fit check
func (r *run) tryPlace(z *zoneRun, pool []entities.RoomDefinition, target entities.Pos, need entities.Direction) (int, bool) {
	if len(pool) == 0 {
		return -1, false
	}

	for attempt := 0; attempt < r.opts.MaxPlacementAttempts; attempt++ {
		def := pool[r.rng.Intn(len(pool))]
		for _, rot := range r.rotationsFrom(def.RotationsWith(need)) {
			if r.fits(&def, rot, target, z.zone.ID, false, fitStrict) {
				return r.commit(z, def, rot, target, entities.PlacementGrowth), true
			}
		}
	}

	return -1, false
}
