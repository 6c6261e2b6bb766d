package input

import "github.com/veandco/go-sdl2/sdl"

// Action is what a hotkey asks the frame to do
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionReload
)

// DefaultBindings maps the frame's maintenance keys
var DefaultBindings = map[sdl.Scancode]Action{
	sdl.SCANCODE_ESCAPE: ActionQuit,
	sdl.SCANCODE_Q:      ActionQuit,
	sdl.SCANCODE_R:      ActionReload,
	sdl.SCANCODE_F5:     ActionReload,
}

// KeyPressTracker manages key press state to prevent duplicate key presses
type KeyPressTracker struct {
	pressed  map[sdl.Scancode]bool
	bindings map[sdl.Scancode]Action
}

// NewKeyPressTracker creates a tracker for the given bindings
func NewKeyPressTracker(bindings map[sdl.Scancode]Action) KeyPressTracker {
	return KeyPressTracker{
		pressed:  make(map[sdl.Scancode]bool),
		bindings: bindings,
	}
}

// IsPressed checks if a key was just pressed (not held)
func (kpt *KeyPressTracker) IsPressed(keyState []uint8, scancode sdl.Scancode) bool {
	isCurrentlyPressed := int(scancode) < len(keyState) && keyState[scancode] != 0
	wasPressed := kpt.pressed[scancode]

	kpt.pressed[scancode] = isCurrentlyPressed

	return isCurrentlyPressed && !wasPressed
}

// Poll returns the actions whose keys went down since the last poll. Quit
// wins over everything else.
func (kpt *KeyPressTracker) Poll(keyState []uint8) Action {
	action := ActionNone
	for scancode, a := range kpt.bindings {
		if !kpt.IsPressed(keyState, scancode) {
			continue
		}
		if a == ActionQuit || action == ActionNone {
			action = a
		}
	}
	return action
}
