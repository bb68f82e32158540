package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// pollKeys drains this frame's key-press queue into logical keys, preserving
// press order. Draining matters: a fast turn and a pause can land in the
// same frame, and both must dispatch.
func pollKeys() []Key {
	var keys []Key
	for code := rl.GetKeyPressed(); code != 0; code = rl.GetKeyPressed() {
		if k := mapKey(code); k != KeyNone {
			keys = append(keys, k)
		}
	}
	return keys
}

// mapKey translates a raylib keycode onto a logical Key. WASD aliases the
// arrows; unbound keys map to KeyNone and are dropped.
func mapKey(code int32) Key {
	switch code {
	case rl.KeyUp, rl.KeyW:
		return KeyUp
	case rl.KeyDown, rl.KeyS:
		return KeyDown
	case rl.KeyLeft, rl.KeyA:
		return KeyLeft
	case rl.KeyRight, rl.KeyD:
		return KeyRight
	case rl.KeyEnter:
		return KeyEnter
	case rl.KeyEscape:
		return KeyEscape
	}
	return KeyNone
}
