package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"github.com/lafriks/go-tiled"
	"gopkg.in/yaml.v3"
)

var (
	//go:embed catalog.yaml all:levels
	assetFS embed.FS
)

// FS exposes the embedded assets.
func FS() fs.FS {
	return assetFS
}

type PlayerSpawn struct {
	X, Y float64
	Name string
}

type CreatureSpawn struct {
	X, Y float64
	Name string
	Dead bool
}

// Arena holds the spawn points of an arena map. Spawn coordinates are the
// feet of the creature, in pixels.
type Arena struct {
	Name           string
	Width          int
	Height         int
	PlayerSpawns   []PlayerSpawn
	CreatureSpawns []CreatureSpawn
}

// LoadArena parses a TMX arena from fsys.
func LoadArena(fsys fs.FS, tmxPath string) (*Arena, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	arena := &Arena{
		Name:   tmxPath,
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "PlayerSpawn":
			for _, o := range og.Objects {
				arena.PlayerSpawns = append(arena.PlayerSpawns, PlayerSpawn{X: o.X, Y: o.Y, Name: o.Name})
			}
		case "CreatureSpawn":
			for _, o := range og.Objects {
				arena.CreatureSpawns = append(arena.CreatureSpawns, CreatureSpawn{
					X:    o.X,
					Y:    o.Y,
					Name: o.Name,
					Dead: o.Properties.GetBool("dead"),
				})
			}
		}
	}

	if len(arena.PlayerSpawns) == 0 {
		return nil, fmt.Errorf("load TMX %s: no PlayerSpawn object", tmxPath)
	}

	// Left to right so spawn order does not depend on editor object ids
	sort.Slice(arena.CreatureSpawns, func(i, j int) bool {
		return arena.CreatureSpawns[i].X < arena.CreatureSpawns[j].X
	})

	return arena, nil
}

// Catalog maps asset ids to playback lengths in seconds.
type Catalog struct {
	Lengths map[string]float64 `yaml:"lengths"`
}

// Length returns the playback length of id.
func (c *Catalog) Length(id string) (float64, bool) {
	if c == nil {
		return 0, false
	}
	v, ok := c.Lengths[id]
	return v, ok
}

// LoadCatalog decodes a YAML catalog from fsys.
func LoadCatalog(fsys fs.FS, path string) (*Catalog, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	if c.Lengths == nil {
		c.Lengths = map[string]float64{}
	}
	return &c, nil
}

// DefaultCatalog loads the embedded catalog.
func DefaultCatalog() (*Catalog, error) {
	return LoadCatalog(assetFS, "catalog.yaml")
}
