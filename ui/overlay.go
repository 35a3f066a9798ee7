package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"

	cfg "github.com/automata-games/tilerun/config"
	"github.com/automata-games/tilerun/fonts"
)

// PauseMenuOption identifies an entry in the pause menu.
type PauseMenuOption int

const (
	PauseResume PauseMenuOption = iota
	PauseMainMenu
	PauseExit
)

var pauseMenuLabels = []string{"Resume", "Main Menu", "Exit"}

// DrawPause renders the pause overlay and its menu.
func DrawPause(screen *ebiten.Image, selected PauseMenuOption) {
	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.BlackOverlay, false)

	titleFont := fonts.Title.Get()
	title := "PAUSED"
	text.Draw(screen, title, titleFont, centerTextX(title, titleFont, width), int(height*0.3), cfg.White)

	menuFont := fonts.Bold.Get()
	startY := height * 0.45
	for i, label := range pauseMenuLabels {
		textColor := cfg.GameOver.TextColorNormal
		if PauseMenuOption(i) == selected {
			textColor = cfg.GameOver.TextColorSelected
		}
		y := startY + float64(i)*cfg.GameOver.MenuItemHeight
		text.Draw(screen, label, menuFont, centerTextX(label, menuFont, width), int(y), textColor)
	}
}

// DrawLevelComplete renders the level complete overlay with the final score.
func DrawLevelComplete(screen *ebiten.Image, score int) {
	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.LevelComplete.OverlayColor, false)

	titleFont := fonts.Title.Get()
	title := cfg.LevelComplete.Title
	text.Draw(screen, title, titleFont, centerTextX(title, titleFont, width), int(height*0.35), cfg.LevelComplete.TitleColor)

	scoreFont := fonts.Bold.Get()
	scoreLine := fmt.Sprintf("Score: %d", score)
	text.Draw(screen, scoreLine, scoreFont, centerTextX(scoreLine, scoreFont, width), int(height*0.5), cfg.White)

	hintFont := fonts.Small.Get()
	hint := cfg.LevelComplete.ContinueHint
	text.Draw(screen, hint, hintFont, centerTextX(hint, hintFont, width), int(height*0.65), cfg.White)
}
