package leveldata

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadLevel(t *testing.T) {
	level, err := Load(os.DirFS("testdata"), "good.tmx")
	require.NoError(t, err)

	assert.Equal(t, "good.tmx", level.Name)
	require.Equal(t, 4, level.Grid.Cols())
	require.Equal(t, 4, level.Grid.Rows())

	tests := []struct {
		name     string
		col, row int
		want     TileKind
	}{
		{"goal", 3, 0, Goal},
		{"oneway", 1, 1, OneWayPlatform},
		{"coin", 2, 2, Coin},
		{"ground", 0, 3, Solid},
		{"empty", 0, 0, Empty},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, err := level.Grid.TileAt(tt.col, tt.row)
			require.NoError(t, err)
			assert.Equal(t, tt.want, kind)
		})
	}

	assert.Equal(t, PlayerSpawn{X: 24, Y: 40}, level.PlayerSpawn)

	require.Len(t, level.EnemySpawns, 2)
	assert.Equal(t, EnemySpawn{X: 40, Y: 40, Kind: "Spiker"}, level.EnemySpawns[0])
	// Missing kind property falls back to Walker
	assert.Equal(t, EnemySpawn{X: 56, Y: 40, Kind: "Walker"}, level.EnemySpawns[1])
}

func TestLoadLevelErrors(t *testing.T) {
	tests := []struct {
		name string
		path string
		msg  string
	}{
		{"unknown tile kind", "unknown_kind.tmx", `unknown tile kind "bouncy"`},
		{"missing tiles layer", "no_tiles_layer.tmx", `missing "tiles" layer`},
		{"missing player spawn", "no_spawn.tmx", "missing PlayerSpawn"},
		{"wrong tile size", "bad_tilesize.tmx", "tile size 32x32"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(os.DirFS("testdata"), tt.path)
			require.Error(t, err)

			var loadErr *LevelLoadError
			require.ErrorAs(t, err, &loadErr)
			assert.Contains(t, loadErr.Error(), tt.msg)
		})
	}
}

func TestLoadLevelErrorCarriesCell(t *testing.T) {
	_, err := Load(os.DirFS("testdata"), "unknown_kind.tmx")
	require.Error(t, err)

	var loadErr *LevelLoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, 1, loadErr.Col)
	assert.Equal(t, 1, loadErr.Row)
}
