// tilerun is a tile-based platformer built on a fixed-step simulation core.
//
// Usage:
//
//	tilerun           - Start the game at the main menu
//	tilerun dev       - Jump straight into the level with dev tooling flags
package main

import (
	"fmt"
	"image"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	"golang.org/x/image/font/gofont/goregular"

	cfg "github.com/automata-games/tilerun/config"
	"github.com/automata-games/tilerun/fonts"
	"github.com/automata-games/tilerun/scenes"
	"github.com/automata-games/tilerun/systems"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	fonts.LoadFontWithSize(fonts.Regular, goregular.TTF, 10)
	fonts.LoadFontWithSize(fonts.Bold, goregular.TTF, 14)
	fonts.LoadFontWithSize(fonts.Title, goregular.TTF, 28)
	fonts.LoadFontWithSize(fonts.Small, goregular.TTF, 8)

	g := &Game{
		bounds: image.Rectangle{},
	}

	if cfg.Debug.SkipMenu {
		g.scene = scenes.NewGameScene(g)
	} else {
		g.scene = scenes.NewMenuScene(g)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, cfg.C.Width, cfg.C.Height)
	return cfg.C.Width, cfg.C.Height
}

func runGame() error {
	if err := systems.InitPersistence(); err != nil {
		log.Printf("continuing without settings persistence: %v", err)
	}
	saved, _ := systems.LoadSettings()
	systems.ApplySavedSettings(saved)

	ebiten.SetWindowSize(cfg.C.Width*2, cfg.C.Height*2)
	ebiten.SetWindowTitle("Tilerun")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	return ebiten.RunGame(NewGame())
}

var rootCmd = &cobra.Command{
	Use:   "tilerun",
	Short: "Tilerun - a tile platformer",
	Long: `Tilerun is a small platformer: run, jump, stomp enemies, break blocks
and reach the goal flag.

Examples:
  tilerun
  tilerun dev --colliders
  tilerun dev --watch-clips --clips-dir assets/clips`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGame()
	},
}

var devCmd = &cobra.Command{
	Use:   "dev",
	Short: "Run with development tooling",
	Long: `Skips the main menu and starts the level directly, with optional
collision overlays and hot reloading of animation clip definitions.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg.Debug.SkipMenu = true
		return runGame()
	},
}

func init() {
	devCmd.Flags().BoolVar(&cfg.Debug.ShowColliders, "colliders", false, "Draw collision boxes")
	devCmd.Flags().BoolVar(&cfg.Debug.WatchClips, "watch-clips", false, "Hot-reload animation clips from disk")
	devCmd.Flags().StringVar(&cfg.Debug.ClipsDir, "clips-dir", cfg.Debug.ClipsDir, "Directory watched for clip definitions")

	rootCmd.AddCommand(devCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
