package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position math.Vec2 // view center, world px
}

var Camera = donburi.NewComponentType[CameraData]()
