package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/underwater-snake/internal/core"
)

// keyActions binds window keys to game actions. Arrows and WASD both steer.
var keyActions = map[ebiten.Key]core.Action{
	ebiten.KeyArrowUp:    core.ActionUp,
	ebiten.KeyW:          core.ActionUp,
	ebiten.KeyArrowDown:  core.ActionDown,
	ebiten.KeyS:          core.ActionDown,
	ebiten.KeyArrowLeft:  core.ActionLeft,
	ebiten.KeyA:          core.ActionLeft,
	ebiten.KeyArrowRight: core.ActionRight,
	ebiten.KeyD:          core.ActionRight,
	ebiten.KeyP:          core.ActionPause,
	ebiten.KeyEscape:     core.ActionQuit,
	ebiten.KeyQ:          core.ActionQuit,
}

// framePressed fills frame with the actions of the keys pressed this tick and
// reports whether one of them asked to quit.
func framePressed(keys []ebiten.Key, frame *core.InputFrame) (quit bool) {
	for _, k := range keys {
		action, ok := keyActions[k]
		if !ok {
			continue
		}
		if action == core.ActionQuit {
			quit = true
			continue
		}
		frame.Set(action)
	}
	return quit
}
