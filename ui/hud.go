package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"golang.org/x/image/font"

	cfg "github.com/automata-games/tilerun/config"
	"github.com/automata-games/tilerun/fonts"
	"github.com/automata-games/tilerun/sim"
)

// DrawHUD renders the score, coin and lives counters in the top-left corner.
func DrawHUD(screen *ebiten.Image, snap *sim.Snapshot) {
	margin := int(cfg.UI.HUDMargin)
	face := fonts.Bold.Get()
	lineHeight := face.Metrics().Height.Ceil() + 2

	y := margin + face.Metrics().Ascent.Ceil()
	text.Draw(screen, fmt.Sprintf("SCORE %06d", snap.Score), face, margin, y, cfg.UI.HUDTextColor)

	small := fonts.Regular.Get()
	y += lineHeight
	text.Draw(screen, fmt.Sprintf("COINS x%d", snap.Coins), small, margin, y, cfg.UI.HUDTextColor)

	y += lineHeight
	text.Draw(screen, fmt.Sprintf("LIVES x%d", snap.Lives), small, margin, y, cfg.UI.HUDTextColor)
}

// centerTextX calculates the X position to center text on screen
func centerTextX(s string, face font.Face, screenWidth float64) int {
	bounds := text.BoundString(face, s)
	textWidth := bounds.Dx()
	return int((screenWidth - float64(textWidth)) / 2)
}
