// Package render draws layouts on a terminal screen
package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/KirkDiggler/dungeon-layout/internal/entities"
)

// Glyphs for cells that are not plain rooms
const (
	GlyphEmpty     = '·'
	GlyphBand      = '_'
	GlyphExtension = '▒'
	GlyphConnector = '≡'
	GlyphExit      = '⌂'
	GlyphPassage   = '─'
)

// Map origin on screen; the header takes the rows above
const (
	mapTop  = 2
	mapLeft = 1
)

var (
	styleDefault   = tcell.StyleDefault
	styleDim       = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleStart     = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleRequired  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleConnector = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	styleExit      = tcell.StyleDefault.Foreground(tcell.ColorFuchsia)
	styleRepair    = tcell.StyleDefault.Foreground(tcell.ColorRed)
)

// box drawing glyphs keyed by entrance mask N=1 E=2 S=4 W=8
var roomGlyphs = [16]rune{
	'□', '╵', '╶', '└', '╷', '│', '┌', '├',
	'╴', '┘', '─', '┴', '┐', '┤', '┬', '┼',
}

// RoomGlyph returns the glyph for a room with the given rotated entrances
func RoomGlyph(e entities.Entrances) rune {
	mask := 0
	for i, d := range entities.Directions {
		if e.Has(d) {
			mask |= 1 << i
		}
	}
	return roomGlyphs[mask]
}

// Offset scrolls the map; positive X moves the view east, positive Y north
type Offset struct {
	X int
	Y int
}

// Height returns the number of grid rows a layout spans
func Height(l *entities.Layout) int {
	rows := 0
	for _, z := range l.Zones {
		end := l.ZoneStartY[z.ID] + z.Height
		if z.HasConnectorBand() {
			end++
		}
		if end > rows {
			rows = end
		}
	}
	return rows
}

// ScreenPos maps a grid position to a screen cell. North is up.
func ScreenPos(l *entities.Layout, p entities.Pos, off Offset) (int, int) {
	top := Height(l) - 1
	return mapLeft + p.X*2 - off.X*2, mapTop + (top - p.Y) + off.Y
}

// Draw renders the whole layout. The caller shows the screen.
func Draw(s tcell.Screen, l *entities.Layout, off Offset) {
	s.Clear()

	header := fmt.Sprintf("seed %s  zones %d  rooms %d  doors %d", l.Seed, len(l.Zones), len(l.Rooms), len(l.Doors))
	DrawText(s, 0, 0, header, styleDefault)

	for _, z := range l.Zones {
		drawZoneBackground(s, l, z, off)
	}

	for _, d := range l.Doors {
		drawPassage(s, l, d, off)
	}

	for i := range l.Rooms {
		drawRoom(s, l, &l.Rooms[i], off)
	}
}

func drawZoneBackground(s tcell.Screen, l *entities.Layout, z entities.Zone, off Offset) {
	startY := l.ZoneStartY[z.ID]
	for y := 0; y < z.Height; y++ {
		for x := 0; x < z.Width; x++ {
			put(s, l, entities.Pos{X: x, Y: startY + y}, off, GlyphEmpty, styleDim)
		}
	}
	if !z.HasConnectorBand() {
		return
	}
	for x := 0; x < z.Width; x++ {
		put(s, l, entities.Pos{X: x, Y: startY + z.Height}, off, GlyphBand, styleDim)
	}

	// zone name to the right of its first row
	sx, sy := ScreenPos(l, entities.Pos{X: z.Width, Y: startY}, off)
	label := z.Name
	if label == "" {
		label = fmt.Sprintf("zone %d", z.ID)
	}
	DrawText(s, sx+1, sy, label, styleDim)
}

func drawRoom(s tcell.Screen, l *entities.Layout, r *entities.RoomPlacement, off Offset) {
	glyph := RoomGlyph(r.Entrances)
	style := styleDefault

	switch {
	case r.IsStart:
		style = styleStart
	case r.Kind == entities.PlacementConnector:
		glyph, style = GlyphConnector, styleConnector
	case r.Kind == entities.PlacementExit:
		glyph, style = GlyphExit, styleExit
	case r.Required:
		style = styleRequired
	}

	for _, p := range r.Occupies {
		if p != r.Position {
			put(s, l, p, off, GlyphExtension, style)
		}
	}
	put(s, l, r.Position, off, glyph, style)
}

// drawPassage fills the gap between horizontally adjacent rooms joined by a door
func drawPassage(s tcell.Screen, l *entities.Layout, d entities.DoorPlacement, off Offset) {
	if d.IsZoneConnector || d.Position.Y != d.Target.Y {
		return
	}
	dx := d.Target.X - d.Position.X
	if dx != 1 && dx != -1 {
		return
	}

	style := styleDefault
	if d.Kind == entities.DoorRepair {
		style = styleRepair
	}

	x, y := ScreenPos(l, d.Position, off)
	if y >= mapTop {
		s.SetContent(x+dx, y, GlyphPassage, nil, style)
	}
}

func put(s tcell.Screen, l *entities.Layout, p entities.Pos, off Offset, glyph rune, style tcell.Style) {
	x, y := ScreenPos(l, p, off)
	if y < mapTop {
		return
	}
	s.SetContent(x, y, glyph, nil, style)
}

// DrawText writes a string starting at (x, y)
func DrawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		s.SetContent(col, y, ch, nil, style)
		col++
	}
}
