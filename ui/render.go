package ui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/automata-games/tilerun/assets"
	cfg "github.com/automata-games/tilerun/config"
	"github.com/automata-games/tilerun/leveldata"
	"github.com/automata-games/tilerun/sim"
)

var drawOp = &ebiten.DrawImageOptions{}

// Renderer draws simulation snapshots over a pre-rendered level background.
// Tile mutations arrive through the snapshot's change log and are repainted
// onto the background image in place, so the per-frame cost is a single
// image draw regardless of level size.
type Renderer struct {
	level      *assets.LoadedLevel
	background *ebiten.Image
	applied    int // number of tile changes already painted
}

func NewRenderer(level *assets.LoadedLevel) *Renderer {
	return &Renderer{
		level:      level,
		background: level.Background,
	}
}

// DrawWorld renders the level and all entities for one snapshot.
func (r *Renderer) DrawWorld(screen *ebiten.Image, snap *sim.Snapshot) {
	screen.Fill(cfg.SkyBlue)

	r.applyTileChanges(snap.TileChanges)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())
	camX := width/2 - snap.CameraX
	camY := height/2 - snap.CameraY

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Translate(camX, camY)
	screen.DrawImage(r.background, drawOp)

	for i := range snap.Entities {
		r.drawEntity(screen, &snap.Entities[i], camX, camY)
	}

	if cfg.Debug.ShowColliders {
		r.drawColliders(screen, snap, camX, camY)
	}
}

// applyTileChanges repaints mutated cells. The change log is cumulative
// since level load, so only the tail beyond what was already painted is
// processed.
func (r *Renderer) applyTileChanges(changes []leveldata.TileChange) {
	const ts = int(leveldata.TileSize)

	for ; r.applied < len(changes); r.applied++ {
		ch := changes[r.applied]
		rect := image.Rect(ch.Col*ts, ch.Row*ts, (ch.Col+1)*ts, (ch.Row+1)*ts)
		cell := r.background.SubImage(rect).(*ebiten.Image)
		cell.Clear()

		if ch.Kind == leveldata.Empty {
			continue
		}

		// Tile strip frames follow TileKind order with Empty omitted.
		srcX := (int(ch.Kind) - 1) * ts
		src := r.level.Tiles.SubImage(image.Rect(srcX, 0, srcX+ts, ts)).(*ebiten.Image)
		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Translate(float64(ch.Col*ts), float64(ch.Row*ts))
		r.background.DrawImage(src, drawOp)
	}
}

func (r *Renderer) drawEntity(screen *ebiten.Image, e *sim.EntitySnapshot, camX, camY float64) {
	if e.Flicker {
		return
	}

	if e.Sheet == "" || e.Clip == "" {
		return
	}
	img := assets.GetSheet(e.Sheet, e.Clip)

	// Sheets are horizontal strips of square frames.
	frameH := img.Bounds().Dy()
	frameW := frameH
	frameCount := img.Bounds().Dx() / frameW
	if frameCount == 0 {
		return
	}
	frame := e.Frame % frameCount

	sx := frame * frameW
	src := img.SubImage(image.Rect(sx, 0, sx+frameW, frameH)).(*ebiten.Image)

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()

	// Anchor at bottom-center so feet line up with the collision box even
	// when the box is narrower than the sprite.
	drawOp.GeoM.Translate(-float64(frameW)/2, -float64(frameH))
	if e.FacingX < 0 {
		drawOp.GeoM.Scale(-1, 1)
	}
	drawOp.GeoM.Translate(e.X, e.Y+e.HalfH)
	drawOp.GeoM.Translate(camX, camY)

	screen.DrawImage(src, drawOp)
}

func (r *Renderer) drawColliders(screen *ebiten.Image, snap *sim.Snapshot, camX, camY float64) {
	for i := range snap.Entities {
		e := &snap.Entities[i]
		x := float32(e.X - e.HalfW + camX)
		y := float32(e.Y - e.HalfH + camY)
		vector.StrokeRect(screen, x, y, float32(2*e.HalfW), float32(2*e.HalfH), 1, cfg.BrightGreen, false)
	}
}
