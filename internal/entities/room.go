package entities

// RoomShape categorizes a room definition
type RoomShape string

// Room shapes
const (
	ShapeCorridor  RoomShape = "corridor"
	ShapeEndRoom   RoomShape = "end_room"
	ShapeCorner    RoomShape = "corner"
	ShapeTJunction RoomShape = "t_junction"
	ShapeJunction  RoomShape = "junction"
	ShapeConnector RoomShape = "connector"
	ShapeExit      RoomShape = "exit"
	ShapeSpecial   RoomShape = "special"
)

// RoomDefinition is an immutable room template
type RoomDefinition struct {
	Name      string    `json:"name" yaml:"name"`
	Shape     RoomShape `json:"shape" yaml:"shape"`
	Entrances Entrances `json:"entrances" yaml:"entrances"` // canonical, unrotated
	IsLarge   bool      `json:"is_large,omitempty" yaml:"is_large"`

	// Extensions are offsets relative to the anchor cell, reserved when IsLarge
	Extensions []Pos `json:"extensions,omitempty" yaml:"extensions"`

	ValidForStartingRoom bool   `json:"valid_for_starting_room,omitempty" yaml:"valid_for_starting_room"`
	Asset                string `json:"asset,omitempty" yaml:"asset"` // opaque to the generator
}

// IsDeadEnd reports whether the room has exactly one entrance
func (r *RoomDefinition) IsDeadEnd() bool {
	return r.Entrances.Count() == 1
}

// RotationsWith returns the rotations, in ascending order, whose rotated
// entrances include d
func (r *RoomDefinition) RotationsWith(d Direction) []Rotation {
	var out []Rotation
	for _, rot := range Rotations {
		if r.Entrances.Rotate(rot).Has(d) {
			out = append(out, rot)
		}
	}
	return out
}

// CompatibleWith reports whether some rotation of the room opens toward d
func (r *RoomDefinition) CompatibleWith(d Direction) bool {
	return len(r.RotationsWith(d)) > 0
}

// RotatedExtensions returns the extension offsets after rotation. Empty for
// rooms that are not large.
func (r *RoomDefinition) RotatedExtensions(rot Rotation) []Pos {
	if !r.IsLarge || len(r.Extensions) == 0 {
		return nil
	}
	out := make([]Pos, len(r.Extensions))
	for i, ext := range r.Extensions {
		out[i] = ext.RotateClockwise(rot.Steps())
	}
	return out
}

// PlacementKind records which pass placed a room
type PlacementKind string

// Placement kinds
const (
	PlacementStart     PlacementKind = "start"
	PlacementGrowth    PlacementKind = "growth"
	PlacementConnector PlacementKind = "connector"
	PlacementExit      PlacementKind = "exit"
	PlacementBackfill  PlacementKind = "backfill"
)

// RoomPlacement is a placed room instance
type RoomPlacement struct {
	Position  Pos            `json:"position"`
	Room      RoomDefinition `json:"room"`
	Rotation  Rotation       `json:"rotation"`
	ZoneID    int            `json:"zone_id"`
	Entrances Entrances      `json:"entrances"` // rotated

	// Occupies lists the anchor cell followed by any reserved extension cells
	Occupies []Pos         `json:"occupies"`
	IsStart  bool          `json:"is_start,omitempty"`
	Required bool          `json:"required,omitempty"`
	Kind     PlacementKind `json:"kind"`
}

// DoorKind records why a door was emitted
type DoorKind string

// Door kinds
const (
	DoorGrowth    DoorKind = "growth"
	DoorBackfill  DoorKind = "backfill"
	DoorConnector DoorKind = "connector"
	DoorExit      DoorKind = "exit"
	DoorZoneLink  DoorKind = "zone_link"
	DoorRepair    DoorKind = "repair"
)

// DoorPlacement connects the room at Position to the room at Target
type DoorPlacement struct {
	Position  Pos       `json:"position"`
	Direction Direction `json:"direction"`

	// Target is the far side of the door. For adjacency doors it equals
	// Position stepped in Direction.
	Target          Pos      `json:"target"`
	ZoneID          int      `json:"zone_id"`
	Room            string   `json:"room"`
	IsZoneConnector bool     `json:"is_zone_connector,omitempty"`
	NextZoneID      int      `json:"next_zone_id,omitempty"`
	Kind            DoorKind `json:"kind"`
}
