package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"

	"github.com/automata-games/tilerun/physics"
)

// ObjectData holds the entity's world-space box plus the resolv collider
// mirroring it. The box is authoritative: tile collision moves Box, then
// SyncCollider pushes the result into the resolv space used for
// entity-vs-entity checks.
type ObjectData struct {
	Box      physics.AABB
	Collider *resolv.Object
}

// SyncCollider copies the box into the resolv object. Resolv stores
// top-left position while the box stores its center.
func (o *ObjectData) SyncCollider() {
	if o.Collider == nil {
		return
	}
	o.Collider.X = o.Box.Left()
	o.Collider.Y = o.Box.Top()
	o.Collider.W = o.Box.HalfW * 2
	o.Collider.H = o.Box.HalfH * 2
	o.Collider.Update()
}

var Object = donburi.NewComponentType[ObjectData]()
