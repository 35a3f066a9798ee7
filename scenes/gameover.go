package scenes

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"

	cfg "github.com/automata-games/tilerun/config"
	"github.com/automata-games/tilerun/fonts"
	"github.com/automata-games/tilerun/ui"
)

// GameOverScene displays the game over screen with the final score
type GameOverScene struct {
	sceneChanger SceneChanger
	poller       *ui.InputPoller
	score        int
	selected     int
}

// NewGameOverScene creates a new game over scene
func NewGameOverScene(sc SceneChanger, score int) *GameOverScene {
	return &GameOverScene{
		sceneChanger: sc,
		poller:       ui.NewInputPoller(),
		score:        score,
	}
}

func (gs *GameOverScene) Update() {
	gs.poller.Poll()

	// Navigate menu with wrap-around using modulo arithmetic
	numOptions := len(cfg.GameOver.MenuOptions)
	if gs.poller.JustPressed(cfg.ActionMenuUp) {
		gs.selected = (gs.selected - 1 + numOptions) % numOptions
	}
	if gs.poller.JustPressed(cfg.ActionMenuDown) {
		gs.selected = (gs.selected + 1) % numOptions
	}

	if gs.poller.JustPressed(cfg.ActionMenuSelect) {
		switch gs.selected {
		case 0: // Retry
			gs.sceneChanger.ChangeScene(NewGameScene(gs.sceneChanger))
		case 1: // Main Menu
			gs.sceneChanger.ChangeScene(NewMenuScene(gs.sceneChanger))
		}
	}
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.GameOver.BackgroundColor,
		false,
	)

	titleFont := fonts.Title.Get()
	title := "GAME OVER"
	titleX := centerX(title, width, 20)
	text.Draw(screen, title, titleFont, titleX, int(cfg.GameOver.TitleY), cfg.GameOver.TitleColor)

	scoreFont := fonts.Regular.Get()
	scoreLine := fmt.Sprintf("Final score: %d", gs.score)
	scoreX := centerX(scoreLine, width, 7)
	text.Draw(screen, scoreLine, scoreFont, scoreX, int(cfg.GameOver.TitleY)+24, cfg.GameOver.TextColorNormal)

	menuFont := fonts.Bold.Get()
	for i, option := range cfg.GameOver.MenuOptions {
		y := cfg.GameOver.MenuStartY + float64(i)*cfg.GameOver.MenuItemHeight

		textColor := cfg.GameOver.TextColorNormal
		if i == gs.selected {
			textColor = cfg.GameOver.TextColorSelected
		}

		x := centerX(option, width, 12)
		text.Draw(screen, option, menuFont, x, int(y), textColor)
	}
}

// centerX approximates horizontal centering from a per-glyph advance.
func centerX(s string, screenWidth float64, glyphWidth int) int {
	return int((screenWidth - float64(len(s)*glyphWidth)) / 2)
}
