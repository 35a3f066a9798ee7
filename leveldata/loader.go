package leveldata

import (
	"fmt"
	"io/fs"

	"github.com/lafriks/go-tiled"
)

// LevelLoadError describes malformed level data. It is fatal for the level
// load and carries the offending coordinate when one exists (Col/Row are -1
// otherwise).
type LevelLoadError struct {
	Path     string
	Col, Row int
	Msg      string
}

func (e *LevelLoadError) Error() string {
	if e.Col >= 0 || e.Row >= 0 {
		return fmt.Sprintf("level %s: cell (%d,%d): %s", e.Path, e.Col, e.Row, e.Msg)
	}
	return fmt.Sprintf("level %s: %s", e.Path, e.Msg)
}

func loadErr(path, msg string) *LevelLoadError {
	return &LevelLoadError{Path: path, Col: -1, Row: -1, Msg: msg}
}

// PlayerSpawn is the player's initial position (world px, entity center).
type PlayerSpawn struct {
	X, Y float64
}

// EnemySpawn places one enemy of the named kind (config.Enemy.Types key).
type EnemySpawn struct {
	X, Y float64
	Kind string
}

// Level owns one TileGrid and the initial entity roster. Created at load
// time; immutable afterwards except for tile mutation from block breaks.
type Level struct {
	Name        string
	Grid        *TileGrid
	PlayerSpawn PlayerSpawn
	EnemySpawns []EnemySpawn
}

// tileKindNames maps the tileset "kind" property to a TileKind. A tile with
// no kind property is a plain solid block.
var tileKindNames = map[string]TileKind{
	"solid":         Solid,
	"oneway":        OneWayPlatform,
	"hazard":        Hazard,
	"powerup_block": PowerupBlock,
	"coin":          Coin,
	"goal":          Goal,
}

// Load parses a TMX file into a Level. It takes an fs.FS so callers can pass
// embed.FS (release builds) or os.DirFS (dev builds).
func Load(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	return FromMap(levelMap, tmxPath)
}

// FromMap builds a Level from an already-parsed Tiled map. Split from Load so
// the renderer can reuse the parsed map for background pre-rendering.
func FromMap(levelMap *tiled.Map, path string) (*Level, error) {
	if levelMap.Width <= 0 || levelMap.Height <= 0 {
		return nil, loadErr(path, "empty map")
	}
	if levelMap.TileWidth != int(TileSize) || levelMap.TileHeight != int(TileSize) {
		return nil, loadErr(path, fmt.Sprintf("tile size %dx%d, want %vx%v",
			levelMap.TileWidth, levelMap.TileHeight, TileSize, TileSize))
	}

	level := &Level{
		Name: path,
		Grid: NewTileGrid(levelMap.Width, levelMap.Height),
	}

	if err := parseTiles(level, levelMap, path); err != nil {
		return nil, err
	}
	if err := parseSpawns(level, levelMap, path); err != nil {
		return nil, err
	}
	return level, nil
}

// parseTiles fills the grid from the "tiles" layer. Every non-nil cell must
// resolve to a known tile kind.
func parseTiles(level *Level, levelMap *tiled.Map, path string) error {
	var tileLayer *tiled.Layer
	for _, layer := range levelMap.Layers {
		if layer.Name == "tiles" {
			tileLayer = layer
			break
		}
	}
	if tileLayer == nil {
		return loadErr(path, `missing "tiles" layer`)
	}

	for row := 0; row < levelMap.Height; row++ {
		for col := 0; col < levelMap.Width; col++ {
			tile := tileLayer.Tiles[row*levelMap.Width+col]
			if tile.IsNil() {
				continue
			}

			kind := Solid
			if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
				if name := tilesetTile.Properties.GetString("kind"); name != "" {
					k, ok := tileKindNames[name]
					if !ok {
						return &LevelLoadError{
							Path: path, Col: col, Row: row,
							Msg: fmt.Sprintf("unknown tile kind %q", name),
						}
					}
					kind = k
				}
			}

			if err := level.Grid.SetTile(col, row, kind); err != nil {
				return &LevelLoadError{Path: path, Col: col, Row: row, Msg: err.Error()}
			}
		}
	}
	return nil
}

// parseSpawns reads the PlayerSpawn and Enemies object groups. Object
// coordinates in Tiled are the entity center.
func parseSpawns(level *Level, levelMap *tiled.Map, path string) error {
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "PlayerSpawn":
			if len(og.Objects) == 0 {
				return loadErr(path, "PlayerSpawn group has no objects")
			}
			o := og.Objects[0]
			level.PlayerSpawn = PlayerSpawn{X: o.X, Y: o.Y}

		case "Enemies":
			for _, o := range og.Objects {
				kind := o.Properties.GetString("kind")
				if kind == "" {
					kind = "Walker"
				}
				level.EnemySpawns = append(level.EnemySpawns, EnemySpawn{
					X: o.X, Y: o.Y, Kind: kind,
				})
			}
		}
	}

	if level.PlayerSpawn == (PlayerSpawn{}) {
		return loadErr(path, "missing PlayerSpawn object group")
	}
	return nil
}
