package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	FacingX      float64 // config.DirectionLeft or DirectionRight
	Score        int
	Coins        int
	InvulnFrames int // invulnerability timer after a hit or respawn
	DeathTimer   int // ticks left in the death animation before respawn
	SpawnX       float64
	SpawnY       float64
}

var Player = donburi.NewComponentType[PlayerData]()
