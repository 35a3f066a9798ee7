package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Enemy  = donburi.NewTag().SetName("Enemy")
	Pickup = donburi.NewTag().SetName("Pickup")
)

// Resolv tags for the entity broadphase space
const (
	ResolvPlayer = "Player"
	ResolvEnemy  = "Enemy"
	ResolvPickup = "Pickup"
)
