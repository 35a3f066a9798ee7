package components

import "github.com/yohamta/donburi"

// PickupData marks a collectible spawned from a powerup block. It walks
// like an enemy but rewards instead of harming.
type PickupData struct {
	DirectionX float64
}

var Pickup = donburi.NewComponentType[PickupData]()
