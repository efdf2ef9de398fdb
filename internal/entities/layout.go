package entities

import (
	"time"
)

// Layout is the complete result of one generation run
type Layout struct {
	ID         string          `json:"id"`
	Seed       string          `json:"seed"`
	SeedHash   int32           `json:"seed_hash"`
	CellSize   float64         `json:"cell_size"`
	Origin     Vec3            `json:"origin"`
	ZoneStartY map[int]int     `json:"zone_start_y"`
	Zones      []Zone          `json:"zones"`
	Rooms      []RoomPlacement `json:"rooms"`
	Doors      []DoorPlacement `json:"doors"`
	Reports    []ZoneReport    `json:"reports"`

	// Tuning is nil on layouts stored before it was recorded
	Tuning    *Tuning   `json:"tuning,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at,omitempty"`
}

// Tuning records the placement options a layout was generated with so that
// regenerating it repeats them. CellSize and Origin live on the layout itself.
type Tuning struct {
	DeadEndChance        float64       `json:"dead_end_chance"`
	RequiredBias         float64       `json:"required_bias"`
	MaxPlacementAttempts int           `json:"max_placement_attempts"`
	MaxStartAttempts     int           `json:"max_start_attempts"`
	Timeout              time.Duration `json:"timeout"`
}

// WorldPosition converts a grid position to world space
func (l *Layout) WorldPosition(p Pos) Vec3 {
	return Vec3{
		X: l.Origin.X + float64(p.X)*l.CellSize,
		Y: l.Origin.Y,
		Z: l.Origin.Z + float64(p.Y)*l.CellSize,
	}
}

// RoomsInZone returns the placements of a zone in placement order
func (l *Layout) RoomsInZone(zoneID int) []RoomPlacement {
	var out []RoomPlacement
	for _, r := range l.Rooms {
		if r.ZoneID == zoneID {
			out = append(out, r)
		}
	}
	return out
}

// DoorsInZone returns the doors owned by a zone in emission order
func (l *Layout) DoorsInZone(zoneID int) []DoorPlacement {
	var out []DoorPlacement
	for _, d := range l.Doors {
		if d.ZoneID == zoneID {
			out = append(out, d)
		}
	}
	return out
}

// Report returns the report for a zone, or nil
func (l *Layout) Report(zoneID int) *ZoneReport {
	for i := range l.Reports {
		if l.Reports[i].ZoneID == zoneID {
			return &l.Reports[i]
		}
	}
	return nil
}

// RoomAt returns the room anchored at p, or nil
func (l *Layout) RoomAt(p Pos) *RoomPlacement {
	for i := range l.Rooms {
		if l.Rooms[i].Position == p {
			return &l.Rooms[i]
		}
	}
	return nil
}
