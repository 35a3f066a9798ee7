package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the single render/update layer; the simulation has no layered
// draw ordering beyond system registration order.
const Default ecs.LayerID = iota

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement (pixels and seconds; velocities are px/s)
	JumpImpulse  float64
	Acceleration float64
	MaxSpeed     float64
	Friction     float64

	// Stomp
	StompRebound float64

	// Lives
	StartingLives       int
	InvulnFrames        int
	RespawnInvulnFrames int
	DeathDelayFrames    int

	// Dimensions (collision half-extents; sprites are FrameWidth x FrameHeight)
	HalfWidth        float64
	HalfHeight       float64
	CrouchHalfHeight float64
	FrameWidth       int
	FrameHeight      int
}

// EnemyTypeConfig contains configuration for specific enemy kinds
type EnemyTypeConfig struct {
	Name        string
	PatrolSpeed float64
	Gravity     float64
	MaxFall     float64

	// Dimensions
	HalfWidth   float64
	HalfHeight  float64
	FrameWidth  int
	FrameHeight int

	// Frames the stomped corpse stays visible before removal
	DeathFrames int

	SpriteSheetKey string
}

// EnemyConfig contains enemy system configuration
type EnemyConfig struct {
	Types map[string]EnemyTypeConfig
}

// PickupConfig contains powerup pickup configuration
type PickupConfig struct {
	Speed          float64
	Gravity        float64
	MaxFall        float64
	HalfWidth      float64
	HalfHeight     float64
	FrameWidth     int
	FrameHeight    int
	SpriteSheetKey string
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	// Fixed simulation step
	TickRate float64
	Dt       float64

	// Global physics (px/s^2 and px/s)
	Gravity      float64
	MaxFallSpeed float64

	// Upper bound on catch-up steps per host frame so a long stall cannot
	// spiral the accumulator
	MaxStepsPerFrame int
}

// ScoreConfig contains the score values for interaction events
type ScoreConfig struct {
	Coin   int
	Stomp  int
	Block  int
	Pickup int
}

// AnimationConfig contains animation-related configuration values
type AnimationConfig struct {
	// Default playback speeds (ticks per frame) used when a clip spec
	// omits its duration
	DefaultSpeed int
	FastSpeed    int
	SlowSpeed    int
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing float64 // How fast camera follows player (0.0-1.0)
}

// UIConfig contains HUD configuration values
type UIConfig struct {
	HUDMargin     float64
	HUDTextColor  color.RGBA
	FlickerPeriod int // frames per invulnerability flicker cycle
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	Title           string
}

// GameOverConfig contains game over screen configuration values
type GameOverConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuOptions       []string
}

// LevelCompleteConfig contains level complete overlay configuration
type LevelCompleteConfig struct {
	OverlayColor color.RGBA
	TitleColor   color.RGBA
	Title        string
	ContinueHint string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu      bool // Skip menu and go directly to game
	ShowColliders bool // Draw collision boxes and contact flags
	WatchClips    bool // Hot-reload animation clip specs from disk
	ClipsDir      string
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Enemy EnemyConfig
var Pickup PickupConfig
var Physics PhysicsConfig
var Score ScoreConfig
var Animation AnimationConfig
var Camera CameraConfig
var UI UIConfig
var Menu MenuConfig
var GameOver GameOverConfig
var LevelComplete LevelCompleteConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	SkyBlue      = color.RGBA{R: 104, G: 144, B: 252, A: 255}
)

// Direction constants for entity facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
	}

	Physics = PhysicsConfig{
		TickRate:         60.0,
		Dt:               1.0 / 60.0,
		Gravity:          1800.0,
		MaxFallSpeed:     420.0,
		MaxStepsPerFrame: 5,
	}

	Player = PlayerConfig{
		JumpImpulse:  520.0,
		Acceleration: 900.0,
		MaxSpeed:     170.0,
		Friction:     1200.0,

		StompRebound: 260.0,

		StartingLives:       3,
		InvulnFrames:        90,
		RespawnInvulnFrames: 120,
		DeathDelayFrames:    45,

		HalfWidth:        5.0,
		HalfHeight:       7.0,
		CrouchHalfHeight: 4.0,
		FrameWidth:       16,
		FrameHeight:      16,
	}

	walkerType := EnemyTypeConfig{
		Name:           "Walker",
		PatrolSpeed:    40.0,
		Gravity:        1800.0,
		MaxFall:        420.0,
		HalfWidth:      6.0,
		HalfHeight:     7.0,
		FrameWidth:     16,
		FrameHeight:    16,
		DeathFrames:    30,
		SpriteSheetKey: "walker",
	}

	spikerType := EnemyTypeConfig{
		Name:           "Spiker",
		PatrolSpeed:    28.0,
		Gravity:        1800.0,
		MaxFall:        420.0,
		HalfWidth:      7.0,
		HalfHeight:     7.0,
		FrameWidth:     16,
		FrameHeight:    16,
		DeathFrames:    30,
		SpriteSheetKey: "spiker",
	}

	Enemy = EnemyConfig{
		Types: map[string]EnemyTypeConfig{
			"Walker": walkerType,
			"Spiker": spikerType,
		},
	}

	Pickup = PickupConfig{
		Speed:          50.0,
		Gravity:        1800.0,
		MaxFall:        420.0,
		HalfWidth:      6.0,
		HalfHeight:     6.0,
		FrameWidth:     16,
		FrameHeight:    16,
		SpriteSheetKey: "pickup",
	}

	Score = ScoreConfig{
		Coin:   10,
		Stomp:  100,
		Block:  50,
		Pickup: 400,
	}

	Animation = AnimationConfig{
		DefaultSpeed: 8,
		FastSpeed:    4,
		SlowSpeed:    12,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.12,
	}

	UI = UIConfig{
		HUDMargin:     8.0,
		HUDTextColor:  White,
		FlickerPeriod: 8,
	}

	Menu = MenuConfig{
		BackgroundColor: color.RGBA{R: 15, G: 25, B: 50, A: 255},
		TitleColor:      BrightOrange,
		Title:           "TILERUN",
	}

	GameOver = GameOverConfig{
		BackgroundColor:   color.RGBA{R: 40, G: 10, B: 10, A: 255},
		TitleColor:        LightRed,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		TitleY:            100,
		MenuStartY:        160,
		MenuItemHeight:    30,
		MenuOptions:       []string{"Retry", "Main Menu"},
	}

	LevelComplete = LevelCompleteConfig{
		OverlayColor: BlackOverlay,
		TitleColor:   BrightGreen,
		Title:        "Level Complete!",
		ContinueHint: "Press ENTER to continue",
	}

	Debug = DebugConfig{
		SkipMenu:      false,
		ShowColliders: false,
		WatchClips:    false,
		ClipsDir:      "assets/clips",
	}
}
