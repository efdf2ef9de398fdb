// Package grid lays out the global cell grid shared by all zones
package grid

import (
	"github.com/KirkDiggler/rpg-toolkit/tools/spatial"

	"github.com/KirkDiggler/dungeon-layout/internal/entities"
	"github.com/KirkDiggler/dungeon-layout/internal/errors"
)

// Grid is a sparse map of cells spanning every zone band. It is owned by a
// single generation run.
type Grid struct {
	cells      map[entities.Pos]*entities.Cell
	zoneCells  map[int][]*entities.Cell
	zoneStartY map[int]int
	zoneOrder  []int
	rows       []*band
	width      int
	height     int
	cellSize   float64
	origin     entities.Vec3
}

// band is the block of rows owned by one zone, connector row included. Its
// square grid is zone-local with (0,0) at the band's first row.
type band struct {
	zoneID int
	startY int
	area   *spatial.SquareGrid
}

func (b *band) local(p entities.Pos) spatial.Position {
	return spatial.Position{X: float64(p.X), Y: float64(p.Y - b.startY)}
}

// Option configures world-space conversion
type Option func(*Grid)

// WithCellSize sets the world size of one cell
func WithCellSize(size float64) Option {
	return func(g *Grid) {
		if size > 0 {
			g.cellSize = size
		}
	}
}

// WithOrigin sets the world position of cell (0,0)
func WithOrigin(origin entities.Vec3) Option {
	return func(g *Grid) {
		g.origin = origin
	}
}

// Build allocates one band of rows per zone, in order, plus a connector row
// above every zone that connects onward or defines surface exits
func Build(zones []entities.Zone, opts ...Option) (*Grid, error) {
	if len(zones) == 0 {
		return nil, errors.InvalidArgument("at least one zone is required")
	}

	g := &Grid{
		cells:      make(map[entities.Pos]*entities.Cell),
		zoneCells:  make(map[int][]*entities.Cell),
		zoneStartY: make(map[int]int),
		cellSize:   1,
	}
	for _, opt := range opts {
		opt(g)
	}

	vb := errors.NewValidationBuilder()
	currentY := 0
	for i := range zones {
		zone := &zones[i]
		if _, dup := g.zoneStartY[zone.ID]; dup {
			vb.Fieldf("zones", "duplicate zone id %d", zone.ID)
			continue
		}
		if zone.Width <= 0 || zone.Height <= 0 {
			vb.Fieldf("zones", "zone %d must have positive dimensions, got %dx%d", zone.ID, zone.Width, zone.Height)
			continue
		}

		g.zoneStartY[zone.ID] = currentY
		g.zoneOrder = append(g.zoneOrder, zone.ID)
		rows := zone.Height
		g.allocateRows(zone.ID, zone.Width, currentY, zone.Height, false)

		if zone.HasConnectorBand() {
			g.allocateRows(zone.ID, zone.Width, currentY+zone.Height, 1, true)
			rows++
		}

		b := &band{
			zoneID: zone.ID,
			startY: currentY,
			area: spatial.NewSquareGrid(spatial.SquareGridConfig{
				Width:  float64(zone.Width),
				Height: float64(rows),
			}),
		}
		for i := 0; i < rows; i++ {
			g.rows = append(g.rows, b)
		}
		currentY += rows

		if zone.Width > g.width {
			g.width = zone.Width
		}
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	g.height = currentY
	return g, nil
}

func (g *Grid) allocateRows(zoneID, width, startY, rows int, connector bool) {
	for y := startY; y < startY+rows; y++ {
		for x := 0; x < width; x++ {
			c := &entities.Cell{
				Pos:         entities.Pos{X: x, Y: y},
				ZoneID:      zoneID,
				IsConnector: connector,
			}
			g.cells[c.Pos] = c
			g.zoneCells[zoneID] = append(g.zoneCells[zoneID], c)
		}
	}
}

// Cell returns the cell at p, or nil when p is outside every zone band
func (g *Grid) Cell(p entities.Pos) *entities.Cell {
	if !g.InBounds(p) {
		return nil
	}
	return g.cells[p]
}

// InBounds reports whether p lies inside the band of the zone owning row p.Y.
// Bands narrower than the grid end at their own width.
func (g *Grid) InBounds(p entities.Pos) bool {
	b := g.bandAt(p.Y)
	return b != nil && b.area.IsValidPosition(b.local(p))
}

// ZoneAt returns the zone owning row y
func (g *Grid) ZoneAt(y int) (int, bool) {
	b := g.bandAt(y)
	if b == nil {
		return 0, false
	}
	return b.zoneID, true
}

func (g *Grid) bandAt(y int) *band {
	if y < 0 || y >= len(g.rows) {
		return nil
	}
	return g.rows[y]
}

// CellsInZone returns every cell of a zone in row-major order, main band first
func (g *Grid) CellsInZone(zoneID int) []*entities.Cell {
	return g.zoneCells[zoneID]
}

// MainCells returns the non-connector cells of a zone
func (g *Grid) MainCells(zoneID int) []*entities.Cell {
	var out []*entities.Cell
	for _, c := range g.zoneCells[zoneID] {
		if !c.IsConnector {
			out = append(out, c)
		}
	}
	return out
}

// ConnectorCells returns the connector-band cells of a zone
func (g *Grid) ConnectorCells(zoneID int) []*entities.Cell {
	var out []*entities.Cell
	for _, c := range g.zoneCells[zoneID] {
		if c.IsConnector {
			out = append(out, c)
		}
	}
	return out
}

// ZoneStartY returns the first global row of a zone's main band
func (g *Grid) ZoneStartY(zoneID int) (int, bool) {
	y, ok := g.zoneStartY[zoneID]
	return y, ok
}

// ZoneStarts returns a copy of the zone id to start row mapping
func (g *Grid) ZoneStarts() map[int]int {
	out := make(map[int]int, len(g.zoneStartY))
	for k, v := range g.zoneStartY {
		out[k] = v
	}
	return out
}

// ZoneIDs returns zone ids in grid order
func (g *Grid) ZoneIDs() []int {
	return append([]int(nil), g.zoneOrder...)
}

// Width returns the widest zone band
func (g *Grid) Width() int {
	return g.width
}

// Height returns the total number of rows
func (g *Grid) Height() int {
	return g.height
}

// CellSize returns the world size of one cell
func (g *Grid) CellSize() float64 {
	return g.cellSize
}

// Origin returns the world position of cell (0,0)
func (g *Grid) Origin() entities.Vec3 {
	return g.origin
}

// WorldPosition converts a grid position to world space
func (g *Grid) WorldPosition(p entities.Pos) entities.Vec3 {
	return entities.Vec3{
		X: g.origin.X + float64(p.X)*g.cellSize,
		Y: g.origin.Y,
		Z: g.origin.Z + float64(p.Y)*g.cellSize,
	}
}

// IsFree reports whether p is an unoccupied cell of the zone. Connector cells
// only count when allowConnector is set.
func (g *Grid) IsFree(p entities.Pos, zoneID int, allowConnector bool) bool {
	c := g.Cell(p)
	if c == nil || c.ZoneID != zoneID || c.Occupied {
		return false
	}
	return allowConnector || !c.IsConnector
}

// Occupy marks the cell at p as claimed
func (g *Grid) Occupy(p entities.Pos) error {
	c := g.Cell(p)
	if c == nil {
		return errors.OutOfRangef("cell %s is outside the grid", p)
	}
	if c.Occupied {
		return errors.AlreadyExistsf("cell %s is already occupied", p)
	}
	c.Occupied = true
	return nil
}
