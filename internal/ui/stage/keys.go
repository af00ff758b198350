package stage

import (
	"catanim/internal/core/loop"

	"fyne.io/fyne/v2"
)

// CommandForKey maps a typed key to a loop command.
// Plus shortens the frame delay and minus lengthens it.
func CommandForKey(key fyne.KeyName) loop.Command {
	switch key {
	case fyne.KeyEscape:
		return loop.CommandQuit
	case fyne.KeyPlus, fyne.KeyEqual:
		return loop.CommandSpeedUp
	case fyne.KeyMinus:
		return loop.CommandSlowDown
	default:
		return loop.CommandNone
	}
}
