package components

import "github.com/yohamta/donburi"

// IntentData is the device-independent control state for one tick. The
// host's input poller fills it from keyboard and gamepad; tests fill it
// directly. JumpPressed is an edge, true only on the tick the button
// went down.
type IntentData struct {
	MoveX       float64 // -1, 0 or +1
	JumpPressed bool
	JumpHeld    bool
	CrouchHeld  bool
}

var Intent = donburi.NewComponentType[IntentData]()
