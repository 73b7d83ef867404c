package ebitenio

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/spaceshooter/internal/application/input"
)

// Bindings maps each action to the keys that trigger it
type Bindings map[input.Action][]ebiten.Key

// DefaultBindings returns the fixed key layout. Arrows or WASD move and
// navigate, Space fires, P pauses, Enter or Space confirms and Escape
// cancels. Only Enter leaves a paused run.
func DefaultBindings() Bindings {
	return Bindings{
		input.ActionMoveUp:    {ebiten.KeyArrowUp, ebiten.KeyW},
		input.ActionMoveDown:  {ebiten.KeyArrowDown, ebiten.KeyS},
		input.ActionMoveLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
		input.ActionMoveRight: {ebiten.KeyArrowRight, ebiten.KeyD},
		input.ActionFire:      {ebiten.KeySpace},
		input.ActionPause:     {ebiten.KeyP},
		input.ActionConfirm:   {ebiten.KeyEnter, ebiten.KeySpace},
		input.ActionCancel:    {ebiten.KeyEscape},
		input.ActionMenuUp:    {ebiten.KeyArrowUp, ebiten.KeyW},
		input.ActionMenuDown:  {ebiten.KeyArrowDown, ebiten.KeyS},
		input.ActionLeaveRun:  {ebiten.KeyEnter},
	}
}

// Keyboard polls ebiten's key state. It implements input.Source and must
// only be queried from inside ebiten's Update.
type Keyboard struct {
	bindings Bindings
}

// NewKeyboard creates a keyboard source with the given bindings
func NewKeyboard(bindings Bindings) *Keyboard {
	return &Keyboard{bindings: bindings}
}

// IsHeld implements input.Source
func (k *Keyboard) IsHeld(a input.Action) bool {
	for _, key := range k.bindings[a] {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

// JustPressed implements input.Source
func (k *Keyboard) JustPressed(a input.Action) bool {
	for _, key := range k.bindings[a] {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	return false
}
