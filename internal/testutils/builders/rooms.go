package builders

import (
	"github.com/KirkDiggler/dungeon-layout/internal/entities"
)

// Corridor returns a straight north/south room
func Corridor() entities.RoomDefinition {
	return entities.RoomDefinition{
		Name:      "corridor",
		Shape:     entities.ShapeCorridor,
		Entrances: entities.Entrances{North: true, South: true},
	}
}

// EndRoom returns a dead end opening south
func EndRoom() entities.RoomDefinition {
	return entities.RoomDefinition{
		Name:      "end",
		Shape:     entities.ShapeEndRoom,
		Entrances: entities.Entrances{South: true},
	}
}

// Corner returns a room opening north and east
func Corner() entities.RoomDefinition {
	return entities.RoomDefinition{
		Name:      "corner",
		Shape:     entities.ShapeCorner,
		Entrances: entities.Entrances{North: true, East: true},
	}
}

// TJunction returns a room opening east, south and west
func TJunction() entities.RoomDefinition {
	return entities.RoomDefinition{
		Name:      "t_junction",
		Shape:     entities.ShapeTJunction,
		Entrances: entities.Entrances{East: true, South: true, West: true},
	}
}

// Junction returns a room open on every side
func Junction() entities.RoomDefinition {
	return entities.RoomDefinition{
		Name:      "junction",
		Shape:     entities.ShapeJunction,
		Entrances: entities.Entrances{North: true, East: true, South: true, West: true},
	}
}

// Connector returns a north/south connector room
func Connector() entities.RoomDefinition {
	return entities.RoomDefinition{
		Name:      "stairs",
		Shape:     entities.ShapeConnector,
		Entrances: entities.Entrances{North: true, South: true},
	}
}

// SurfaceExit returns an exit opening south
func SurfaceExit(name string) entities.RoomDefinition {
	return entities.RoomDefinition{
		Name:      name,
		Shape:     entities.ShapeExit,
		Entrances: entities.Entrances{South: true},
	}
}

// Special returns a named required room with the given entrances
func Special(name string, entrances entities.Entrances) entities.RoomDefinition {
	return entities.RoomDefinition{
		Name:      name,
		Shape:     entities.ShapeSpecial,
		Entrances: entrances,
	}
}

// LargeHall returns a two cell room extending east of its anchor
func LargeHall() entities.RoomDefinition {
	return entities.RoomDefinition{
		Name:       "hall",
		Shape:      entities.ShapeSpecial,
		Entrances:  entities.Entrances{South: true, West: true},
		IsLarge:    true,
		Extensions: []entities.Pos{{X: 1, Y: 0}},
	}
}

// TwoZoneConfig returns the reference configuration: a 5x5 zone of corridors
// and dead ends connected through one stairwell to a 3x3 zone
func TwoZoneConfig() []entities.Zone {
	return []entities.Zone{
		NewZoneBuilder(0, 5, 5).
			WithName("crypt").
			WithNormalRooms(Corridor(), EndRoom()).
			WithConnector(1, 1, Connector()).
			Build(),
		NewZoneBuilder(1, 3, 3).
			WithName("catacombs").
			WithNormalRooms(Corridor(), EndRoom()).
			Build(),
	}
}
