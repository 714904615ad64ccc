//go:build !headless

package display

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/skx/makovm/mako"
)

// binding maps a host key to bits of the key mask, or to a code
// for the key queue.
type binding struct {
	key  ebiten.Key
	bit  int32
	code int32
}

// held are the keys which make up the key mask.
var held = []binding{
	{key: ebiten.KeyArrowUp, bit: mako.KeyUp},
	{key: ebiten.KeyArrowRight, bit: mako.KeyRight},
	{key: ebiten.KeyArrowDown, bit: mako.KeyDown},
	{key: ebiten.KeyArrowLeft, bit: mako.KeyLeft},
	{key: ebiten.KeyZ, bit: mako.KeyA},
	{key: ebiten.KeySpace, bit: mako.KeyA},
	{key: ebiten.KeyX, bit: mako.KeyB},
	{key: ebiten.KeyEnter, bit: mako.KeyB},
}

// specialKeys are queued when pressed, since they produce no
// character.
var specialKeys = []binding{
	{key: ebiten.KeyEnter, code: 10},
	{key: ebiten.KeyNumpadEnter, code: 10},
	{key: ebiten.KeyBackspace, code: 8},
}

// heldMask returns the key mask for the keys which pressed reports
// as down.
func heldMask(pressed func(ebiten.Key) bool) int32 {
	var mask int32
	for _, b := range held {
		if pressed(b.key) {
			mask |= b.bit
		}
	}
	return mask
}

// typedKey converts a typed character into a code for the key queue.
func typedKey(r rune) (int32, bool) {
	if r <= 0 || r > 0xFF {
		return 0, false
	}
	return int32(r), true
}
