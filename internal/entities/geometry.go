// Package entities provides core data structures for dungeon-layout.
package entities

import (
	"fmt"
	"math"
)

// Direction is one of the four grid-axis openings a room can expose.
// Values are ordered clockwise so rotation is modular addition.
type Direction int

// Directions in clockwise order. North points toward the next zone (+Y).
const (
	North Direction = iota
	East
	South
	West
)

// Directions lists every direction in clockwise order
var Directions = []Direction{North, East, South, West}

// String returns the lowercase name of the direction
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// MarshalText implements encoding.TextMarshaler
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ParseDirection parses a direction name
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "north", "n":
		return North, nil
	case "east", "e":
		return East, nil
	case "south", "s":
		return South, nil
	case "west", "w":
		return West, nil
	}
	return North, fmt.Errorf("unknown direction %q", s)
}

// Opposite returns the direction facing the other way
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// RotateClockwise turns the direction by steps quarter turns
func (d Direction) RotateClockwise(steps int) Direction {
	return Direction(((int(d)+steps)%4 + 4) % 4)
}

// Vector returns the unit grid offset for the direction
func (d Direction) Vector() Pos {
	switch d {
	case North:
		return Pos{X: 0, Y: 1}
	case East:
		return Pos{X: 1, Y: 0}
	case South:
		return Pos{X: 0, Y: -1}
	default:
		return Pos{X: -1, Y: 0}
	}
}

// Pos is a global grid coordinate
type Pos struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// Add returns p offset by o
func (p Pos) Add(o Pos) Pos {
	return Pos{X: p.X + o.X, Y: p.Y + o.Y}
}

// Step returns the neighbouring position in direction d
func (p Pos) Step(d Direction) Pos {
	return p.Add(d.Vector())
}

// DistanceTo returns the Euclidean grid distance between two positions
func (p Pos) DistanceTo(o Pos) float64 {
	dx := float64(p.X - o.X)
	dy := float64(p.Y - o.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// RotateClockwise rotates a relative offset by steps quarter turns around the origin
func (p Pos) RotateClockwise(steps int) Pos {
	out := p
	for i := 0; i < ((steps%4)+4)%4; i++ {
		// north (0,1) becomes east (1,0)
		out = Pos{X: out.Y, Y: -out.X}
	}
	return out
}

// String returns "(x,y)"
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Vec3 is a world-space position handed to scene consumers
type Vec3 struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

// Rotation is a clockwise rotation in degrees; always a multiple of 90
type Rotation int

// Valid rotations
const (
	Rotation0   Rotation = 0
	Rotation90  Rotation = 90
	Rotation180 Rotation = 180
	Rotation270 Rotation = 270
)

// Rotations lists every valid rotation in ascending order
var Rotations = []Rotation{Rotation0, Rotation90, Rotation180, Rotation270}

// Valid reports whether r is one of 0, 90, 180 or 270
func (r Rotation) Valid() bool {
	return r == Rotation0 || r == Rotation90 || r == Rotation180 || r == Rotation270
}

// Steps returns the number of clockwise quarter turns
func (r Rotation) Steps() int {
	return int(r) / 90
}

// Entrances holds the four opening flags of a room
type Entrances struct {
	North bool `json:"north" yaml:"north"`
	East  bool `json:"east" yaml:"east"`
	South bool `json:"south" yaml:"south"`
	West  bool `json:"west" yaml:"west"`
}

// Has reports whether the entrance in direction d is open
func (e Entrances) Has(d Direction) bool {
	switch d {
	case North:
		return e.North
	case East:
		return e.East
	case South:
		return e.South
	case West:
		return e.West
	}
	return false
}

// With returns a copy with the entrance in direction d set to open
func (e Entrances) With(d Direction, open bool) Entrances {
	switch d {
	case North:
		e.North = open
	case East:
		e.East = open
	case South:
		e.South = open
	case West:
		e.West = open
	}
	return e
}

// Count returns the number of open entrances
func (e Entrances) Count() int {
	n := 0
	for _, d := range Directions {
		if e.Has(d) {
			n++
		}
	}
	return n
}

// Open lists the open directions in clockwise order
func (e Entrances) Open() []Direction {
	out := make([]Direction, 0, 4)
	for _, d := range Directions {
		if e.Has(d) {
			out = append(out, d)
		}
	}
	return out
}

// Rotate returns the entrances after rotating the room clockwise by r
func (e Entrances) Rotate(r Rotation) Entrances {
	var out Entrances
	for _, d := range Directions {
		if e.Has(d) {
			out = out.With(d.RotateClockwise(r.Steps()), true)
		}
	}
	return out
}
