package bastion

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input is the per-frame input snapshot: held keys, primary button state and
// the pointer position in screen space.
type Input struct {
	Keys        map[ebiten.Key]bool
	PrimaryDown bool
	Pointer     Vec2
}

// KeyDown reports whether k is held this frame.
func (in Input) KeyDown(k ebiten.Key) bool {
	return in.Keys[k]
}

// InputSource produces one snapshot per frame.
type InputSource interface {
	Poll() Input
}

// EbitenInput polls the live keyboard, mouse and touch state.
type EbitenInput struct {
	keyBuf   []ebiten.Key
	touchBuf []ebiten.TouchID
}

// Poll samples ebiten. An active touch takes precedence over the mouse and
// counts as the primary button.
func (e *EbitenInput) Poll() Input {
	e.keyBuf = inpututil.AppendPressedKeys(e.keyBuf[:0])
	keys := make(map[ebiten.Key]bool, len(e.keyBuf))
	for _, k := range e.keyBuf {
		keys[k] = true
	}

	e.touchBuf = ebiten.AppendTouchIDs(e.touchBuf[:0])
	if len(e.touchBuf) > 0 {
		tx, ty := ebiten.TouchPosition(e.touchBuf[0])
		return Input{Keys: keys, PrimaryDown: true, Pointer: Vec2{float64(tx), float64(ty)}}
	}

	mx, my := ebiten.CursorPosition()
	return Input{
		Keys:        keys,
		PrimaryDown: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Pointer:     Vec2{float64(mx), float64(my)},
	}
}
