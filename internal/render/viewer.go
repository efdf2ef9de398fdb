package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/KirkDiggler/dungeon-layout/internal/entities"
)

// Viewer is an interactive layout view. Arrow keys or hjkl scroll, tab jumps
// to the next zone, q or escape quits.
type Viewer struct {
	screen tcell.Screen
	layout *entities.Layout
	offset Offset
	zone   int
}

// NewViewer creates a viewer on an initialized screen
func NewViewer(screen tcell.Screen, layout *entities.Layout) *Viewer {
	return &Viewer{screen: screen, layout: layout}
}

// Offset returns the current scroll offset
func (v *Viewer) Offset() Offset {
	return v.offset
}

// Draw renders the layout and the status line
func (v *Viewer) Draw() {
	Draw(v.screen, v.layout, v.offset)

	_, h := v.screen.Size()
	status := "[arrows/hjkl] scroll  [tab] next zone  [q] quit"
	if rep := v.focusedReport(); rep != nil {
		status = fmt.Sprintf("zone %d %s  missing %d  problems %d   %s",
			rep.ZoneID, rep.State, len(rep.MissingRequired), len(rep.Problems), status)
	}
	DrawText(v.screen, 0, h-1, status, styleDim)

	v.screen.Show()
}

// HandleKey applies a key press and reports whether the viewer should keep running
func (v *Viewer) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		v.offset.Y++
	case tcell.KeyDown:
		v.offset.Y--
	case tcell.KeyLeft:
		v.offset.X--
	case tcell.KeyRight:
		v.offset.X++
	case tcell.KeyTab:
		v.nextZone()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return false
		case 'k':
			v.offset.Y++
		case 'j':
			v.offset.Y--
		case 'h':
			v.offset.X--
		case 'l':
			v.offset.X++
		}
	}
	return true
}

// Run draws and handles events until the user quits
func (v *Viewer) Run() {
	v.Draw()
	for {
		switch ev := v.screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			v.screen.Sync()
		case *tcell.EventKey:
			if !v.HandleKey(ev) {
				return
			}
		}
		v.Draw()
	}
}

// nextZone scrolls so the next zone's first row sits at the bottom of the map
func (v *Viewer) nextZone() {
	if len(v.layout.Zones) == 0 {
		return
	}
	v.zone = (v.zone + 1) % len(v.layout.Zones)
	z := v.layout.Zones[v.zone]
	v.offset = Offset{Y: v.layout.ZoneStartY[z.ID]}
}

func (v *Viewer) focusedReport() *entities.ZoneReport {
	if len(v.layout.Zones) == 0 {
		return nil
	}
	return v.layout.Report(v.layout.Zones[v.zone].ID)
}
