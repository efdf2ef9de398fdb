// Package config loads zone configuration files. A file declares a room
// catalog once and zones refer to rooms by name.
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/dungeon-layout/internal/engine"
	"github.com/KirkDiggler/dungeon-layout/internal/entities"
	"github.com/KirkDiggler/dungeon-layout/internal/errors"
)

// File is the on-disk shape of a zone configuration
type File struct {
	Generation *engine.Options `yaml:"generation"`
	Seed       string          `yaml:"seed"`
	Rooms      []Room          `yaml:"rooms"`
	Zones      []Zone          `yaml:"zones"`
}

// Room is a catalog entry
type Room struct {
	Name       string               `yaml:"name"`
	Shape      entities.RoomShape   `yaml:"shape"`
	Entrances  []entities.Direction `yaml:"entrances"`
	Large      bool                 `yaml:"large"`
	Extensions []entities.Pos       `yaml:"extensions"`
	Start      bool                 `yaml:"valid_for_starting_room"`
	Asset      string               `yaml:"asset"`
}

// Zone references catalog rooms by name
type Zone struct {
	ID            int           `yaml:"id"`
	Name          string        `yaml:"name"`
	Width         int           `yaml:"width"`
	Height        int           `yaml:"height"`
	NormalRooms   []string      `yaml:"normal_rooms"`
	RequiredRooms []string      `yaml:"required_rooms"`
	StartingRooms []string      `yaml:"starting_rooms"`
	Connector     *Connector    `yaml:"connector"`
	SurfaceExits  []string      `yaml:"surface_exits"`
	StartPosition *entities.Pos `yaml:"start_position"`
}

// Connector names the room that bridges into the next zone
type Connector struct {
	NextZoneID int    `yaml:"next_zone_id"`
	Count      int    `yaml:"count"`
	Room       string `yaml:"room"`
}

// Config is a resolved configuration ready for the engine
type Config struct {
	// Seed is the configured seed; empty means draw one
	Seed    string
	Options engine.Options
	Zones   []entities.Zone
}

// Load reads and resolves a configuration file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from the operator
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("config file %s not found", path)
		}
		return nil, errors.Wrapf(err, "failed to read config file %s", path)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load %s", path)
	}
	return cfg, nil
}

// Parse decodes and resolves YAML configuration. Unknown keys are rejected and
// a partial generation block keeps the defaults for the keys it omits.
func Parse(data []byte) (*Config, error) {
	defaults := engine.DefaultOptions()
	f := File{Generation: &defaults}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return nil, errors.InvalidArgument("config is empty")
		}
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid config yaml")
	}

	return f.Resolve()
}

// Resolve validates the file and replaces room names with definitions
func (f *File) Resolve() (*Config, error) {
	vb := errors.NewValidationBuilder()

	catalog := make(map[string]entities.RoomDefinition, len(f.Rooms))
	for i, r := range f.Rooms {
		field := fmt.Sprintf("rooms[%d]", i)
		if r.Name == "" {
			vb.RequiredField(field + ".name")
			continue
		}
		if _, dup := catalog[r.Name]; dup {
			vb.Fieldf(field+".name", "duplicate room %q", r.Name)
			continue
		}
		if len(r.Entrances) == 0 {
			vb.Fieldf(field+".entrances", "room %q needs at least one entrance", r.Name)
		}
		if len(r.Extensions) > 0 && !r.Large {
			vb.Fieldf(field+".extensions", "room %q has extensions but is not large", r.Name)
		}
		catalog[r.Name] = r.definition()
	}

	ids := make(map[int]bool, len(f.Zones))
	for _, z := range f.Zones {
		ids[z.ID] = true
	}

	zones := make([]entities.Zone, 0, len(f.Zones))
	for i, z := range f.Zones {
		field := fmt.Sprintf("zones[%d]", i)
		if z.Width <= 0 || z.Height <= 0 {
			vb.Fieldf(field, "zone %d must have positive dimensions", z.ID)
		}

		lookup := func(name, at string) entities.RoomDefinition {
			def, ok := catalog[name]
			if !ok {
				vb.Fieldf(at, "unknown room %q", name)
			}
			return def
		}
		lookupAll := func(names []string, at string) []entities.RoomDefinition {
			if len(names) == 0 {
				return nil
			}
			out := make([]entities.RoomDefinition, 0, len(names))
			for _, n := range names {
				out = append(out, lookup(n, at))
			}
			return out
		}

		zone := entities.Zone{
			ID:            z.ID,
			Name:          z.Name,
			Width:         z.Width,
			Height:        z.Height,
			NormalRooms:   lookupAll(z.NormalRooms, field+".normal_rooms"),
			RequiredRooms: lookupAll(z.RequiredRooms, field+".required_rooms"),
			StartingRooms: lookupAll(z.StartingRooms, field+".starting_rooms"),
			SurfaceExits:  lookupAll(z.SurfaceExits, field+".surface_exits"),
			StartPosition: z.StartPosition,
		}

		if c := z.Connector; c != nil {
			if c.Count < 0 {
				vb.Field(field+".connector.count", "must not be negative")
			}
			if !ids[c.NextZoneID] {
				vb.Fieldf(field+".connector.next_zone_id", "unknown zone %d", c.NextZoneID)
			}
			zone.Connector = &entities.ZoneConnector{
				NextZoneID: c.NextZoneID,
				Count:      c.Count,
				Room:       lookup(c.Room, field+".connector.room"),
			}
		}

		zones = append(zones, zone)
	}
	if len(zones) == 0 {
		vb.RequiredField("zones")
	}

	opts := engine.DefaultOptions()
	if f.Generation != nil {
		opts = f.Generation.WithDefaults()
		if err := opts.Validate(); err != nil {
			return nil, errors.Wrap(err, "invalid generation options")
		}
	}

	if err := vb.Build(); err != nil {
		return nil, err
	}

	return &Config{
		Seed:    f.Seed,
		Options: opts,
		Zones:   zones,
	}, nil
}

func (r Room) definition() entities.RoomDefinition {
	var e entities.Entrances
	for _, d := range r.Entrances {
		e = e.With(d, true)
	}

	shape := r.Shape
	if shape == "" {
		shape = entities.ShapeSpecial
	}

	return entities.RoomDefinition{
		Name:                 r.Name,
		Shape:                shape,
		Entrances:            e,
		IsLarge:              r.Large,
		Extensions:           r.Extensions,
		ValidForStartingRoom: r.Start,
		Asset:                r.Asset,
	}
}
