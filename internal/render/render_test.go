package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dungeon-layout/internal/entities"
	"github.com/KirkDiggler/dungeon-layout/internal/testutils"
)

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	ss := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, ss.Init())
	ss.SetSize(60, 16)
	t.Cleanup(ss.Fini)
	return ss
}

func contentAt(s tcell.Screen, x, y int) (rune, tcell.Style) {
	r, _, style, _ := s.GetContent(x, y)
	return r, style
}

func rowText(s tcell.Screen, y, width int) string {
	out := make([]rune, 0, width)
	for x := 0; x < width; x++ {
		r, _ := contentAt(s, x, y)
		out = append(out, r)
	}
	return string(out)
}

func TestRoomGlyph(t *testing.T) {
	testCases := []struct {
		entrances entities.Entrances
		want      rune
	}{
		{entities.Entrances{North: true, South: true}, '│'},
		{entities.Entrances{East: true, West: true}, '─'},
		{entities.Entrances{North: true, East: true}, '└'},
		{entities.Entrances{South: true, West: true}, '┐'},
		{entities.Entrances{East: true, South: true, West: true}, '┬'},
		{entities.Entrances{North: true, East: true, South: true, West: true}, '┼'},
		{entities.Entrances{West: true}, '╴'},
	}

	for _, tc := range testCases {
		assert.Equal(t, string(tc.want), string(RoomGlyph(tc.entrances)), "%+v", tc.entrances)
	}
}

func TestDraw_PlacesRoomsNorthUp(t *testing.T) {
	s := newSimScreen(t)
	layout := testutils.CreateTestLayout(testutils.TestLayoutID)

	Draw(s, layout, Offset{})

	assert.Contains(t, rowText(s, 0, 40), "seed test")

	// three grid rows: the connector band (y=2) on top, y=0 at the bottom
	r, style := contentAt(s, 3, 4)
	assert.Equal(t, '│', r, "start corridor")
	assert.Equal(t, styleStart, style)

	r, _ = contentAt(s, 3, 3)
	assert.Equal(t, '│', r)

	r, style = contentAt(s, 3, 2)
	assert.Equal(t, GlyphConnector, r)
	assert.Equal(t, styleConnector, style)

	r, _ = contentAt(s, 1, 4)
	assert.Equal(t, '╴', r, "dead end rotated to open west")

	// repair door between (0,0) and (1,0)
	r, style = contentAt(s, 2, 4)
	assert.Equal(t, GlyphPassage, r)
	assert.Equal(t, styleRepair, style)

	r, _ = contentAt(s, 1, 3)
	assert.Equal(t, GlyphEmpty, r)
	r, _ = contentAt(s, 5, 2)
	assert.Equal(t, GlyphBand, r)
}

func TestDraw_LargeRoomExtensions(t *testing.T) {
	s := newSimScreen(t)
	layout := &entities.Layout{
		Seed:       "hall",
		ZoneStartY: map[int]int{0: 0},
		Zones:      []entities.Zone{{ID: 0, Width: 2, Height: 1}},
		Rooms: []entities.RoomPlacement{{
			Position:  entities.Pos{X: 0, Y: 0},
			Entrances: entities.Entrances{South: true, West: true},
			Occupies:  []entities.Pos{{X: 0, Y: 0}, {X: 1, Y: 0}},
			Required:  true,
			Kind:      entities.PlacementStart,
		}},
	}

	Draw(s, layout, Offset{})

	r, style := contentAt(s, 1, 2)
	assert.Equal(t, '┐', r)
	assert.Equal(t, styleRequired, style)
	r, _ = contentAt(s, 3, 2)
	assert.Equal(t, GlyphExtension, r)
}

func TestViewer_HandleKey(t *testing.T) {
	s := newSimScreen(t)
	layout := testutils.CreateTestLayout(testutils.TestLayoutID)
	layout.Zones = append(layout.Zones, entities.Zone{ID: 1, Width: 3, Height: 3})
	layout.ZoneStartY[1] = 3

	v := NewViewer(s, layout)

	assert.True(t, v.HandleKey(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone)))
	assert.True(t, v.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'l', tcell.ModNone)))
	assert.Equal(t, Offset{X: 1, Y: 1}, v.Offset())

	assert.True(t, v.HandleKey(tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone)))
	assert.Equal(t, Offset{Y: 3}, v.Offset())
	assert.True(t, v.HandleKey(tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone)))
	assert.Equal(t, Offset{}, v.Offset())

	assert.False(t, v.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
	assert.False(t, v.HandleKey(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
}

func TestViewer_DrawShowsZoneStatus(t *testing.T) {
	s := newSimScreen(t)
	v := NewViewer(s, testutils.CreateTestLayout(testutils.TestLayoutID))

	v.Draw()

	_, h := s.Size()
	assert.Contains(t, rowText(s, h-1, 60), "zone 0 connected")
}
