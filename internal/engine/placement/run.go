package placement

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/KirkDiggler/dungeon-layout/internal/engine"
	"github.com/KirkDiggler/dungeon-layout/internal/engine/grid"
	"github.com/KirkDiggler/dungeon-layout/internal/entities"
)

// zoneRun is the per-zone state of a run
type zoneRun struct {
	zone           *entities.Zone
	report         *entities.ZoneReport
	start          int // index into run.rooms, -1 until placed
	queue          []int
	placedRequired map[string]bool
}

func (z *zoneRun) abandoned() bool {
	return z.report.State == entities.ZoneAbandoned
}

// run owns every piece of mutable state for one generation. Nothing in it is
// shared with other runs.
type run struct {
	ctx    context.Context
	grid   *grid.Grid
	rng    *rand.Rand
	opts   engine.Options
	rooms  []entities.RoomPlacement
	doors  []entities.DoorPlacement
	roomAt map[entities.Pos]int
	zones  []*zoneRun
	byID   map[int]*zoneRun
}

func newRun(ctx context.Context, g *grid.Grid, rng *rand.Rand, opts engine.Options, zones []entities.Zone) *run {
	r := &run{
		ctx:    ctx,
		grid:   g,
		rng:    rng,
		opts:   opts,
		roomAt: make(map[entities.Pos]int),
		byID:   make(map[int]*zoneRun),
	}
	for i := range zones {
		z := &zoneRun{
			zone: &zones[i],
			report: &entities.ZoneReport{
				ZoneID: zones[i].ID,
				State:  entities.ZoneUnstarted,
			},
			start:          -1,
			placedRequired: make(map[string]bool),
		}
		r.zones = append(r.zones, z)
		r.byID[z.zone.ID] = z
	}
	return r
}

// advance moves a zone to the next state; out of order transitions are ignored
func (r *run) advance(z *zoneRun, next entities.ZoneState) {
	if !z.report.State.CanAdvanceTo(next) {
		return
	}
	z.report.State = next
}

// abandon stops generation for a zone and records why
func (r *run) abandon(z *zoneRun, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	z.report.State = entities.ZoneAbandoned
	z.report.Problems = append(z.report.Problems, msg)

	slog.Warn("Zone generation abandoned",
		"zone_id", z.zone.ID,
		"reason", msg,
	)
}

// problem records a non-fatal issue for a zone
func (r *run) problem(z *zoneRun, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	z.report.Problems = append(z.report.Problems, msg)

	slog.Debug("Zone generation problem",
		"zone_id", z.zone.ID,
		"problem", msg,
	)
}

// freeMainCells returns the unoccupied non-connector cells of a zone in grid order
func (r *run) freeMainCells(zoneID int) []entities.Pos {
	var out []entities.Pos
	for _, c := range r.grid.MainCells(zoneID) {
		if !c.Occupied {
			out = append(out, c.Pos)
		}
	}
	return out
}

func (r *run) shuffle(cells []entities.Pos) {
	r.rng.Shuffle(len(cells), func(i, j int) {
		cells[i], cells[j] = cells[j], cells[i]
	})
}

// rotationsFrom returns rots starting at a random offset so equal candidates
// do not always turn the same way
func (r *run) rotationsFrom(rots []entities.Rotation) []entities.Rotation {
	if len(rots) < 2 {
		return rots
	}
	offset := r.rng.Intn(len(rots))
	out := make([]entities.Rotation, 0, len(rots))
	out = append(out, rots[offset:]...)
	return append(out, rots[:offset]...)
}

// roomInZone returns the room anchored at p when it belongs to zoneID
func (r *run) roomInZone(p entities.Pos, zoneID int) (int, bool) {
	idx, ok := r.roomAt[p]
	if !ok || r.rooms[idx].ZoneID != zoneID {
		return -1, false
	}
	return idx, true
}

// isRequired reports whether name is a required room of the zone still waiting
// for placement
func (z *zoneRun) isRequired(name string) bool {
	if z.placedRequired[name] {
		return false
	}
	for _, req := range z.zone.RequiredRooms {
		if req.Name == name {
			return true
		}
	}
	return false
}

// unplacedRequired lists required rooms not placed yet that can open toward need
func (z *zoneRun) unplacedRequired(need entities.Direction) []entities.RoomDefinition {
	var out []entities.RoomDefinition
	for _, req := range z.zone.RequiredRooms {
		if z.placedRequired[req.Name] {
			continue
		}
		if req.CompatibleWith(need) {
			out = append(out, req)
		}
	}
	return out
}
