package scenes

import (
	"image/color"
	"log"
	"os"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/automata-games/tilerun/assets"
	"github.com/automata-games/tilerun/components"
	cfg "github.com/automata-games/tilerun/config"
	"github.com/automata-games/tilerun/sim"
	"github.com/automata-games/tilerun/systems"
	"github.com/automata-games/tilerun/ui"
)

const sceneFadeSeconds = 0.4

// GameScene runs the simulation and renders its snapshots. The simulation
// advances on wall-clock time through its own fixed-step accumulator, so
// the scene never touches world state directly.
type GameScene struct {
	sceneChanger SceneChanger
	once         sync.Once

	simulation *sim.Simulation
	renderer   *ui.Renderer
	poller     *ui.InputPoller
	watcher    *assets.ClipWatcher

	snap     sim.Snapshot
	haveSnap bool

	lastFrame time.Time

	paused      bool
	pauseOption ui.PauseMenuOption

	// Fade overlay alpha, tweened on scene entry and exit
	fade      *gween.Tween
	fadeAlpha float32
	leaving   func() interface{}

	runRecorded bool
}

// NewGameScene creates a new gameplay scene
func NewGameScene(sc SceneChanger) *GameScene {
	return &GameScene{sceneChanger: sc}
}

func (gs *GameScene) configure() {
	clips := assets.MustLoadClips()

	if cfg.Debug.WatchClips {
		watcher, err := assets.WatchClips(cfg.Debug.ClipsDir, clips)
		if err != nil {
			log.Printf("Warning: clip watching disabled: %v", err)
		} else {
			gs.watcher = watcher
		}
	}

	loaded := assets.MustLoadLevels()[0]

	gs.simulation = sim.New(clips)
	if err := gs.simulation.LoadLevel(loaded.Level); err != nil {
		panic("failed to load level: " + err.Error())
	}

	gs.renderer = ui.NewRenderer(loaded)
	gs.poller = ui.NewInputPoller()

	gs.fade = gween.New(1, 0, sceneFadeSeconds, ease.Linear)
	gs.fadeAlpha = 1
	gs.lastFrame = time.Now()
}

func (gs *GameScene) Update() {
	gs.once.Do(gs.configure)

	now := time.Now()
	elapsed := now.Sub(gs.lastFrame).Seconds()
	gs.lastFrame = now

	gs.poller.Poll()

	if gs.updateFade(elapsed) {
		return
	}

	status := components.StatusPlaying
	if gs.haveSnap {
		status = gs.snap.Status
	}

	switch status {
	case components.StatusPlaying:
		gs.updatePlaying(elapsed)
	case components.StatusLevelComplete:
		gs.recordRun(true)
		if gs.poller.JustPressed(cfg.ActionMenuSelect) {
			gs.beginExit(func() interface{} { return NewMenuScene(gs.sceneChanger) })
		}
	case components.StatusGameOver:
		gs.recordRun(false)
		score := gs.snap.Score
		gs.beginExit(func() interface{} { return NewGameOverScene(gs.sceneChanger, score) })
	}
}

// updateFade advances the fade tween. Returns true while a fade-out is in
// progress, during which the simulation is frozen.
func (gs *GameScene) updateFade(elapsed float64) bool {
	if gs.fade != nil {
		alpha, done := gs.fade.Update(float32(elapsed))
		gs.fadeAlpha = alpha
		if done {
			gs.fade = nil
			if gs.leaving != nil {
				gs.closeWatcher()
				gs.sceneChanger.ChangeScene(gs.leaving())
				return true
			}
		}
	}
	return gs.leaving != nil
}

func (gs *GameScene) updatePlaying(elapsed float64) {
	if gs.poller.JustPressed(cfg.ActionPause) {
		gs.paused = !gs.paused
		gs.pauseOption = ui.PauseResume
	}
	if gs.paused {
		gs.updatePauseMenu()
		return
	}

	snap, _, err := gs.simulation.Advance(elapsed, gs.poller.Intents())
	if err != nil {
		log.Printf("simulation error: %v", err)
		return
	}
	gs.snap = snap
	gs.haveSnap = true
}

func (gs *GameScene) updatePauseMenu() {
	numOptions := int(ui.PauseExit) + 1
	if gs.poller.JustPressed(cfg.ActionMenuUp) {
		gs.pauseOption = ui.PauseMenuOption(
			(int(gs.pauseOption) - 1 + numOptions) % numOptions,
		)
	}
	if gs.poller.JustPressed(cfg.ActionMenuDown) {
		gs.pauseOption = ui.PauseMenuOption(
			(int(gs.pauseOption) + 1) % numOptions,
		)
	}

	if gs.poller.JustPressed(cfg.ActionMenuSelect) {
		switch gs.pauseOption {
		case ui.PauseResume:
			gs.paused = false
		case ui.PauseMainMenu:
			gs.paused = false
			gs.beginExit(func() interface{} { return NewMenuScene(gs.sceneChanger) })
		case ui.PauseExit:
			gs.closeWatcher()
			os.Exit(0)
		}
	}
}

// beginExit starts the fade-out; the scene change fires once it finishes.
func (gs *GameScene) beginExit(next func() interface{}) {
	if gs.leaving != nil {
		return
	}
	gs.leaving = next
	gs.fade = gween.New(gs.fadeAlpha, 1, sceneFadeSeconds, ease.Linear)
}

func (gs *GameScene) recordRun(cleared bool) {
	if gs.runRecorded {
		return
	}
	gs.runRecorded = true
	_ = systems.RecordRun(gs.snap.Score, cleared)
}

func (gs *GameScene) closeWatcher() {
	if gs.watcher != nil {
		_ = gs.watcher.Close()
		gs.watcher = nil
	}
}

func (gs *GameScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if !gs.haveSnap {
		return
	}

	gs.renderer.DrawWorld(screen, &gs.snap)
	ui.DrawHUD(screen, &gs.snap)

	if gs.snap.Status == components.StatusLevelComplete {
		ui.DrawLevelComplete(screen, gs.snap.Score)
	}
	if gs.paused {
		ui.DrawPause(screen, gs.pauseOption)
	}

	if gs.fadeAlpha > 0 {
		width := float32(screen.Bounds().Dx())
		height := float32(screen.Bounds().Dy())
		overlay := color.NRGBA{A: uint8(gs.fadeAlpha * 255)}
		vector.FillRect(screen, 0, 0, width, height, overlay, false)
	}
}
