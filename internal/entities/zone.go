package entities

// ZoneConnector links a zone to the next one through a connector band
type ZoneConnector struct {
	NextZoneID int            `json:"next_zone_id" yaml:"next_zone_id"`
	Count      int            `json:"count" yaml:"count"`
	Room       RoomDefinition `json:"room" yaml:"room"`
}

// Zone is one generation unit with its own band of rows and room table
type Zone struct {
	ID            int              `json:"id"`
	Name          string           `json:"name,omitempty"`
	Width         int              `json:"width"`
	Height        int              `json:"height"`
	NormalRooms   []RoomDefinition `json:"normal_rooms"`
	RequiredRooms []RoomDefinition `json:"required_rooms,omitempty"`
	StartingRooms []RoomDefinition `json:"starting_rooms,omitempty"`
	Connector     *ZoneConnector   `json:"connector,omitempty"`
	SurfaceExits  []RoomDefinition `json:"surface_exits,omitempty"`
	// StartPosition is zone-local; nil picks a random cell
	StartPosition *Pos `json:"start_position,omitempty"`
}

// ConnectsOnward reports whether the zone bridges into another zone
func (z *Zone) ConnectsOnward() bool {
	return z.Connector != nil && z.Connector.Count > 0
}

// IsTerminal reports whether the zone is the end of the chain
func (z *Zone) IsTerminal() bool {
	return !z.ConnectsOnward()
}

// HasConnectorBand reports whether the grid reserves a connector row above the zone
func (z *Zone) HasConnectorBand() bool {
	return z.ConnectsOnward() || len(z.SurfaceExits) > 0
}

// HasRooms reports whether the zone has anything to start from
func (z *Zone) HasRooms() bool {
	return len(z.NormalRooms) > 0 || len(z.StartingRooms) > 0
}

// StartCandidates returns the rooms a zone may start from: its StartingRooms,
// else the normal rooms flagged ValidForStartingRoom, else every normal room
func (z *Zone) StartCandidates() []RoomDefinition {
	if len(z.StartingRooms) > 0 {
		return z.StartingRooms
	}
	var flagged []RoomDefinition
	for _, def := range z.NormalRooms {
		if def.ValidForStartingRoom {
			flagged = append(flagged, def)
		}
	}
	if len(flagged) > 0 {
		return flagged
	}
	return z.NormalRooms
}

// Cell is one grid square
type Cell struct {
	Pos         Pos  `json:"pos"`
	ZoneID      int  `json:"zone_id"`
	Occupied    bool `json:"occupied"`
	IsConnector bool `json:"is_connector"`
}

// ZoneState tracks a zone through the generation passes
type ZoneState string

// Zone states, in the only order a zone may advance through them
const (
	ZoneUnstarted        ZoneState = "unstarted"
	ZoneStartPlaced      ZoneState = "start_placed"
	ZoneGrowing          ZoneState = "growing"
	ZoneConnectorsPlaced ZoneState = "connectors_placed"
	ZoneBackfilled       ZoneState = "backfilled"
	ZoneConnected        ZoneState = "connected"
	ZoneAbandoned        ZoneState = "abandoned"
)

var zoneStateOrder = map[ZoneState]int{
	ZoneUnstarted:        0,
	ZoneStartPlaced:      1,
	ZoneGrowing:          2,
	ZoneConnectorsPlaced: 3,
	ZoneBackfilled:       4,
	ZoneConnected:        5,
}

// CanAdvanceTo reports whether next is the state directly after s
func (s ZoneState) CanAdvanceTo(next ZoneState) bool {
	if s == ZoneAbandoned {
		return false
	}
	if next == ZoneAbandoned {
		return true
	}
	cur, ok := zoneStateOrder[s]
	if !ok {
		return false
	}
	n, ok := zoneStateOrder[next]
	return ok && n == cur+1
}

// ZoneReport summarizes what generation did for one zone
type ZoneReport struct {
	ZoneID          int       `json:"zone_id"`
	State           ZoneState `json:"state"`
	StartPosition   *Pos      `json:"start_position,omitempty"`
	RoomCount       int       `json:"room_count"`
	DoorCount       int       `json:"door_count"`
	MissingRequired []string  `json:"missing_required,omitempty"`
	Problems        []string  `json:"problems,omitempty"`
}
