package components

import (
	"github.com/automata-games/tilerun/config"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	TypeName   string // "Walker", "Spiker"
	TypeConfig *config.EnemyTypeConfig
	DirectionX float64 // current patrol heading
	DeathTimer int     // ticks until a stomped enemy despawns
}

var Enemy = donburi.NewComponentType[EnemyData]()
