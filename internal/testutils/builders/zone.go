// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/dungeon-layout/internal/entities"
)

// ZoneBuilder provides a fluent interface for building test Zone instances
type ZoneBuilder struct {
	zone entities.Zone
}

// NewZoneBuilder creates a new builder for a zone with the given id and size
func NewZoneBuilder(id, width, height int) *ZoneBuilder {
	return &ZoneBuilder{
		zone: entities.Zone{
			ID:     id,
			Width:  width,
			Height: height,
		},
	}
}

// WithName sets the zone name
func (b *ZoneBuilder) WithName(name string) *ZoneBuilder {
	b.zone.Name = name
	return b
}

// WithNormalRooms appends to the normal room table
func (b *ZoneBuilder) WithNormalRooms(rooms ...entities.RoomDefinition) *ZoneBuilder {
	b.zone.NormalRooms = append(b.zone.NormalRooms, rooms...)
	return b
}

// WithRequiredRooms appends required rooms
func (b *ZoneBuilder) WithRequiredRooms(rooms ...entities.RoomDefinition) *ZoneBuilder {
	b.zone.RequiredRooms = append(b.zone.RequiredRooms, rooms...)
	return b
}

// WithStartingRooms appends starting room candidates
func (b *ZoneBuilder) WithStartingRooms(rooms ...entities.RoomDefinition) *ZoneBuilder {
	b.zone.StartingRooms = append(b.zone.StartingRooms, rooms...)
	return b
}

// WithConnector links the zone to nextZoneID through count connector rooms
func (b *ZoneBuilder) WithConnector(nextZoneID, count int, room entities.RoomDefinition) *ZoneBuilder {
	b.zone.Connector = &entities.ZoneConnector{
		NextZoneID: nextZoneID,
		Count:      count,
		Room:       room,
	}
	return b
}

// WithSurfaceExits appends surface exit rooms
func (b *ZoneBuilder) WithSurfaceExits(rooms ...entities.RoomDefinition) *ZoneBuilder {
	b.zone.SurfaceExits = append(b.zone.SurfaceExits, rooms...)
	return b
}

// WithStartPosition fixes the zone-local start cell
func (b *ZoneBuilder) WithStartPosition(x, y int) *ZoneBuilder {
	b.zone.StartPosition = &entities.Pos{X: x, Y: y}
	return b
}

// Build returns the constructed zone
func (b *ZoneBuilder) Build() entities.Zone {
	return b.zone
}
