package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automata-games/tilerun/assets/animations"
	"github.com/automata-games/tilerun/components"
	cfg "github.com/automata-games/tilerun/config"
	"github.com/automata-games/tilerun/leveldata"
)

const testClipsYAML = `
player:
  idle: {frames: 2, speed: 8}
  run: {frames: 2, speed: 8}
  jump: {frames: 1, speed: 8}
  fall: {frames: 1, speed: 8}
  crouch: {frames: 1, speed: 8}
  die: {frames: 2, speed: 8, freeze: true}
walker:
  walk: {frames: 2, speed: 8}
  stomped: {frames: 1, speed: 8, freeze: true}
spiker:
  walk: {frames: 2, speed: 8}
  stomped: {frames: 1, speed: 8, freeze: true}
pickup:
  drift: {frames: 2, speed: 8}
`

func testClips(t *testing.T) *animations.Library {
	t.Helper()
	lib, err := animations.ParseLibrary([]byte(testClipsYAML))
	require.NoError(t, err)
	return lib
}

// makeLevel builds a level from an ASCII picture: '.' empty, 'X' solid,
// '-' oneway, '^' hazard, 'B' powerup block, 'c' coin, 'G' goal.
func makeLevel(t *testing.T, rows []string, spawnX, spawnY float64, enemies ...leveldata.EnemySpawn) *leveldata.Level {
	t.Helper()
	grid := leveldata.NewTileGrid(len(rows[0]), len(rows))
	for row, line := range rows {
		for col, ch := range line {
			var kind leveldata.TileKind
			switch ch {
			case '.':
				continue
			case 'X':
				kind = leveldata.Solid
			case '-':
				kind = leveldata.OneWayPlatform
			case '^':
				kind = leveldata.Hazard
			case 'B':
				kind = leveldata.PowerupBlock
			case 'c':
				kind = leveldata.Coin
			case 'G':
				kind = leveldata.Goal
			default:
				t.Fatalf("unknown cell rune %q", ch)
			}
			require.NoError(t, grid.SetTile(col, row, kind))
		}
	}
	return &leveldata.Level{
		Name:        "test",
		Grid:        grid,
		PlayerSpawn: leveldata.PlayerSpawn{X: spawnX, Y: spawnY},
		EnemySpawns: enemies,
	}
}

func player(t *testing.T, snap Snapshot) EntitySnapshot {
	t.Helper()
	for _, e := range snap.Entities {
		if e.Kind == KindPlayer {
			return e
		}
	}
	t.Fatal("no player in snapshot")
	return EntitySnapshot{}
}

func enemies(snap Snapshot) []EntitySnapshot {
	var out []EntitySnapshot
	for _, e := range snap.Entities {
		if e.Kind == KindEnemy {
			out = append(out, e)
		}
	}
	return out
}

func settle(t *testing.T, s *Simulation, ticks int) Snapshot {
	t.Helper()
	var snap Snapshot
	var err error
	for i := 0; i < ticks; i++ {
		snap, err = s.Step(Intents{})
		require.NoError(t, err)
	}
	return snap
}

func TestStepBeforeLoadFails(t *testing.T) {
	s := New(testClips(t))

	_, err := s.Step(Intents{})
	assert.ErrorIs(t, err, ErrNoLevel)

	_, _, err = s.Advance(1.0, Intents{})
	assert.ErrorIs(t, err, ErrNoLevel)
}

func TestLoadLevelRejectsUnknownEnemyKind(t *testing.T) {
	s := New(testClips(t))
	level := makeLevel(t, []string{"....", "XXXX"}, 24, 9,
		leveldata.EnemySpawn{X: 40, Y: 9, Kind: "Ghost"})

	err := s.LoadLevel(level)
	require.Error(t, err)

	var loadErr *leveldata.LevelLoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Contains(t, loadErr.Error(), `"Ghost"`)

	// The failed load leaves the simulation unready
	_, err = s.Step(Intents{})
	assert.ErrorIs(t, err, ErrNoLevel)
}

func TestJumpFromIdle(t *testing.T) {
	s := New(testClips(t))
	require.NoError(t, s.LoadLevel(makeLevel(t, []string{
		"....",
		"....",
		"....",
		"XXXX",
	}, 24, 41)))

	snap := settle(t, s, 5)
	require.Equal(t, cfg.Idle, player(t, snap).State)
	restY := player(t, snap).Y

	// The press transitions Idle -> Jump within the same step
	snap, err := s.Step(Intents{JumpPressed: true, JumpHeld: true})
	require.NoError(t, err)
	assert.Equal(t, cfg.Jump, player(t, snap).State)

	// And the impulse moves the player upward on following steps
	snap, err = s.Step(Intents{JumpHeld: true})
	require.NoError(t, err)
	assert.Less(t, player(t, snap).Y, restY)

	// Holding the key without a new edge never re-fires the jump
	for i := 0; i < 120; i++ {
		snap, err = s.Step(Intents{JumpHeld: true})
		require.NoError(t, err)
	}
	assert.Equal(t, cfg.Idle, player(t, snap).State)
	assert.InDelta(t, restY, player(t, snap).Y, 1e-6)
}

func TestWallContactKeepsState(t *testing.T) {
	s := New(testClips(t))
	require.NoError(t, s.LoadLevel(makeLevel(t, []string{
		"...X",
		"...X",
		"...X",
		"XXXX",
	}, 24, 41)))

	var snap Snapshot
	var err error
	for i := 0; i < 90; i++ {
		snap, err = s.Step(Intents{MoveX: 1})
		require.NoError(t, err)
	}

	p := player(t, snap)
	assert.InDelta(t, 48.0-5.0, p.X, 1e-9) // clamped to the wall face
	assert.Equal(t, cfg.Running, p.State)  // horizontal contact never changes state
	assert.Equal(t, cfg.DirectionRight, p.FacingX)
}

func TestStompKillsEnemyAndBouncesPlayer(t *testing.T) {
	s := New(testClips(t))
	level := makeLevel(t, []string{
		"........",
		"........",
		"........",
		"XXXXXXXX",
	}, 40, 16, leveldata.EnemySpawn{X: 40, Y: 41, Kind: "Walker"})
	require.NoError(t, s.LoadLevel(level))

	var snap Snapshot
	var err error
	stomped := false
	bounced := false
	for i := 0; i < 60 && !bounced; i++ {
		snap, err = s.Step(Intents{})
		require.NoError(t, err)
		for _, e := range enemies(snap) {
			if e.State == cfg.StateStomped {
				stomped = true
			}
		}
		if stomped && player(t, snap).State == cfg.Jump {
			bounced = true
		}
	}

	assert.True(t, stomped, "enemy should be stomped")
	assert.True(t, bounced, "player should rebound after the stomp")
	assert.Equal(t, cfg.Score.Stomp, snap.Score)
	assert.Equal(t, cfg.Player.StartingLives, snap.Lives, "a stomp never costs a life")

	// The corpse despawns after its death timer
	snap = settle(t, s, cfg.Enemy.Types["Walker"].DeathFrames+5)
	assert.Empty(t, enemies(snap))
}

func TestPowerupBlockBreaksOnce(t *testing.T) {
	s := New(testClips(t))
	require.NoError(t, s.LoadLevel(makeLevel(t, []string{
		"....",
		".B..",
		"....",
		"....",
		"XXXX",
	}, 24, 57)))

	settle(t, s, 5)

	var snap Snapshot
	var err error
	snap, err = s.Step(Intents{JumpPressed: true})
	require.NoError(t, err)
	foundPickup := false
	for i := 0; i < 30; i++ {
		snap, err = s.Step(Intents{})
		require.NoError(t, err)
		for _, e := range snap.Entities {
			if e.Kind == KindPickup {
				foundPickup = true
			}
		}
	}

	kind, gerr := s.level.Grid.TileAt(1, 1)
	require.NoError(t, gerr)
	assert.Equal(t, leveldata.Empty, kind)
	require.Len(t, snap.TileChanges, 1)
	assert.Equal(t, leveldata.TileChange{Col: 1, Row: 1, Kind: leveldata.Empty}, snap.TileChanges[0])
	assert.GreaterOrEqual(t, snap.Score, cfg.Score.Block)
	assert.True(t, foundPickup, "breaking the block should spawn a pickup")

	// A second jump into the now-empty cell is a no-op
	settle(t, s, 60)
	_, err = s.Step(Intents{JumpPressed: true})
	require.NoError(t, err)
	snap = settle(t, s, 30)
	changes := 0
	for _, c := range snap.TileChanges {
		if c.Col == 1 && c.Row == 1 {
			changes++
		}
	}
	assert.Equal(t, 1, changes)
}

func TestCoinPickup(t *testing.T) {
	s := New(testClips(t))
	require.NoError(t, s.LoadLevel(makeLevel(t, []string{
		"....",
		"....",
		"....",
		".c..",
		"XXXX",
	}, 24, 57)))

	snap := settle(t, s, 3)

	assert.Equal(t, 1, snap.Coins)
	assert.Equal(t, cfg.Score.Coin, snap.Score)
	kind, err := s.level.Grid.TileAt(1, 3)
	require.NoError(t, err)
	assert.Equal(t, leveldata.Empty, kind)
}

func TestGoalCompletesLevel(t *testing.T) {
	s := New(testClips(t))
	require.NoError(t, s.LoadLevel(makeLevel(t, []string{
		"....",
		"....",
		"....",
		".G..",
		"XXXX",
	}, 24, 57)))

	snap := settle(t, s, 3)
	assert.Equal(t, components.StatusLevelComplete, snap.Status)
}

func TestHazardKillsAndRespawns(t *testing.T) {
	s := New(testClips(t))
	require.NoError(t, s.LoadLevel(makeLevel(t, []string{
		"....",
		"....",
		"....",
		".^..",
		"XXXX",
	}, 24, 57)))

	snap := settle(t, s, 3)
	assert.Equal(t, cfg.Die, player(t, snap).State)
	assert.Equal(t, cfg.Player.StartingLives, snap.Lives, "life is taken after the death delay")

	snap = settle(t, s, cfg.Player.DeathDelayFrames+5)
	assert.Equal(t, cfg.Player.StartingLives-1, snap.Lives)
	assert.Equal(t, components.StatusPlaying, snap.Status)
	assert.NotEqual(t, cfg.Die, player(t, snap).State, "player should be live again after respawn")
}

func TestFallingOutEndsInGameOver(t *testing.T) {
	s := New(testClips(t))
	require.NoError(t, s.LoadLevel(makeLevel(t, []string{
		"....",
		"....",
		"....",
	}, 24, 8)))

	var snap Snapshot
	var err error
	for i := 0; i < 600; i++ {
		snap, err = s.Step(Intents{})
		require.NoError(t, err)
		if snap.Status == components.StatusGameOver {
			break
		}
	}

	assert.Equal(t, components.StatusGameOver, snap.Status)
	assert.Equal(t, 0, snap.Lives)
}

func TestEnemyPatrolStaysOnPlatform(t *testing.T) {
	s := New(testClips(t))
	level := makeLevel(t, []string{
		"......",
		"......",
		"......",
		"..XX..",
	}, 8, 8, leveldata.EnemySpawn{X: 48, Y: 41, Kind: "Walker"})
	require.NoError(t, s.LoadLevel(level))

	minX, maxX := 1000.0, -1000.0
	sawLeft, sawRight := false, false
	for i := 0; i < 600; i++ {
		snap, err := s.Step(Intents{})
		require.NoError(t, err)
		for _, e := range enemies(snap) {
			if e.X < minX {
				minX = e.X
			}
			if e.X > maxX {
				maxX = e.X
			}
			if e.FacingX < 0 {
				sawLeft = true
			} else {
				sawRight = true
			}
		}
	}

	// Platform spans x 32..64; the enemy turns at both edges
	assert.True(t, sawLeft && sawRight, "patrol should reverse")
	assert.Greater(t, minX, 32.0-8.0)
	assert.Less(t, maxX, 64.0+8.0)
}

func TestAdvanceAccumulator(t *testing.T) {
	s := New(testClips(t))
	require.NoError(t, s.LoadLevel(makeLevel(t, []string{
		"....",
		"XXXX",
	}, 24, 9)))

	dt := cfg.Physics.Dt

	snap, steps, err := s.Advance(2.5*dt, Intents{})
	require.NoError(t, err)
	assert.Equal(t, 2, steps)
	assert.Equal(t, uint64(2), snap.Tick)

	// The half-step remainder carries into the next frame
	snap, steps, err = s.Advance(0.6*dt, Intents{})
	require.NoError(t, err)
	assert.Equal(t, 1, steps)
	assert.Equal(t, uint64(3), snap.Tick)

	// A long stall is capped, not replayed in full
	_, steps, err = s.Advance(10.0, Intents{})
	require.NoError(t, err)
	assert.Equal(t, cfg.Physics.MaxStepsPerFrame, steps)
}

func TestAdvanceKeepsJumpEdgeAcrossShortFrames(t *testing.T) {
	s := New(testClips(t))
	require.NoError(t, s.LoadLevel(makeLevel(t, []string{
		"....",
		"....",
		"....",
		"XXXX",
	}, 24, 41)))

	snap := settle(t, s, 5)
	require.Equal(t, cfg.Idle, player(t, snap).State)

	dt := cfg.Physics.Dt

	// The frame carrying the press is too short to produce a step
	_, steps, err := s.Advance(0.7*dt, Intents{JumpPressed: true, JumpHeld: true})
	require.NoError(t, err)
	require.Equal(t, 0, steps)

	// The edge must survive until the accumulator yields a step
	snap, steps, err = s.Advance(0.7*dt, Intents{JumpHeld: true})
	require.NoError(t, err)
	require.Equal(t, 1, steps)
	assert.Equal(t, cfg.Jump, player(t, snap).State)

	// And it fires once: the following steps never re-jump
	landed := settle(t, s, 120)
	assert.Equal(t, cfg.Idle, player(t, landed).State)
}

func TestCrouchShrinksAndRestores(t *testing.T) {
	s := New(testClips(t))
	require.NoError(t, s.LoadLevel(makeLevel(t, []string{
		"....",
		"....",
		"....",
		"XXXX",
	}, 24, 41)))

	settle(t, s, 5)

	snap, err := s.Step(Intents{CrouchHeld: true})
	require.NoError(t, err)
	p := player(t, snap)
	assert.Equal(t, cfg.Crouch, p.State)
	assert.InDelta(t, cfg.Player.CrouchHalfHeight, p.HalfH, 1e-9)
	assert.InDelta(t, 48.0, p.Y+p.HalfH, 1e-9, "bottom edge stays planted")

	snap = settle(t, s, 3)
	p = player(t, snap)
	assert.Equal(t, cfg.Idle, p.State)
	assert.InDelta(t, cfg.Player.HalfHeight, p.HalfH, 1e-9)
}
