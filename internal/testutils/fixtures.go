package testutils

import (
	"time"

	"github.com/KirkDiggler/dungeon-layout/internal/entities"
	"github.com/KirkDiggler/dungeon-layout/internal/testutils/builders"
)

// Fixture values shared by service and handler tests
const (
	TestLayoutID = "layout_test_001"
	TestSeed     = "test"
)

// TestCreatedAt is the creation time stamped on fixture layouts
var TestCreatedAt = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

// CreateTestLayout returns a small, hand-built layout: a start corridor with a
// dead end above it and a connector leading to zone 1
func CreateTestLayout(id string) *entities.Layout {
	corridor := builders.Corridor()
	end := builders.EndRoom()
	stairs := builders.Connector()
	start := entities.Pos{X: 1, Y: 0}

	return &entities.Layout{
		ID:         id,
		Seed:       TestSeed,
		SeedHash:   3556498,
		CellSize:   1,
		ZoneStartY: map[int]int{0: 0},
		Zones: []entities.Zone{
			builders.NewZoneBuilder(0, 3, 2).
				WithNormalRooms(corridor, end).
				WithConnector(1, 1, stairs).
				Build(),
		},
		Rooms: []entities.RoomPlacement{
			{
				Position:  start,
				Room:      corridor,
				Rotation:  entities.Rotation0,
				ZoneID:    0,
				Entrances: corridor.Entrances,
				Occupies:  []entities.Pos{start},
				IsStart:   true,
				Kind:      entities.PlacementStart,
			},
			{
				Position:  entities.Pos{X: 1, Y: 1},
				Room:      corridor,
				Rotation:  entities.Rotation180,
				ZoneID:    0,
				Entrances: corridor.Entrances,
				Occupies:  []entities.Pos{{X: 1, Y: 1}},
				Kind:      entities.PlacementGrowth,
			},
			{
				Position:  entities.Pos{X: 1, Y: 2},
				Room:      stairs,
				Rotation:  entities.Rotation0,
				ZoneID:    0,
				Entrances: stairs.Entrances,
				Occupies:  []entities.Pos{{X: 1, Y: 2}},
				Kind:      entities.PlacementConnector,
			},
			{
				Position:  entities.Pos{X: 0, Y: 0},
				Room:      end,
				Rotation:  entities.Rotation90,
				ZoneID:    0,
				Entrances: end.Entrances.Rotate(entities.Rotation90),
				Occupies:  []entities.Pos{{X: 0, Y: 0}},
				Kind:      entities.PlacementBackfill,
			},
		},
		Doors: []entities.DoorPlacement{
			{Position: start, Direction: entities.North, Target: entities.Pos{X: 1, Y: 1}, Room: corridor.Name, Kind: entities.DoorGrowth},
			{Position: entities.Pos{X: 1, Y: 1}, Direction: entities.North, Target: entities.Pos{X: 1, Y: 2}, Room: corridor.Name, Kind: entities.DoorConnector},
			{
				Position:        entities.Pos{X: 1, Y: 2},
				Direction:       entities.North,
				Target:          entities.Pos{X: 1, Y: 3},
				Room:            stairs.Name,
				IsZoneConnector: true,
				NextZoneID:      1,
				Kind:            entities.DoorZoneLink,
			},
			{Position: entities.Pos{X: 0, Y: 0}, Direction: entities.East, Target: start, Room: end.Name, Kind: entities.DoorRepair},
		},
		Reports: []entities.ZoneReport{
			{
				ZoneID:        0,
				State:         entities.ZoneConnected,
				StartPosition: &start,
				RoomCount:     4,
				DoorCount:     4,
			},
		},
		CreatedAt: TestCreatedAt,
	}
}
