//go:build !headless

package display

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/skx/makovm/mako"
)

func TestHeldMask(t *testing.T) {

	type TestCase struct {
		keys []ebiten.Key
		mask int32
	}

	tests := []TestCase{
		{nil, 0},
		{[]ebiten.Key{ebiten.KeyArrowUp}, mako.KeyUp},
		{[]ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyArrowDown}, mako.KeyLeft | mako.KeyDown},
		{[]ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyZ}, mako.KeyRight | mako.KeyA},
		{[]ebiten.Key{ebiten.KeySpace, ebiten.KeyZ}, mako.KeyA},
		{[]ebiten.Key{ebiten.KeyX, ebiten.KeyEnter}, mako.KeyB},
		{[]ebiten.Key{ebiten.KeyQ}, 0},
	}

	for _, test := range tests {
		down := make(map[ebiten.Key]bool)
		for _, k := range test.keys {
			down[k] = true
		}
		got := heldMask(func(k ebiten.Key) bool { return down[k] })
		if got != test.mask {
			t.Fatalf("keys %v gave mask %02X, expected %02X", test.keys, got, test.mask)
		}
	}
}

func TestTypedKey(t *testing.T) {
	c, ok := typedKey('a')
	if !ok || c != 'a' {
		t.Fatalf("printable character not translated")
	}
	if _, ok = typedKey('€'); ok {
		t.Fatalf("wide character should be ignored")
	}
	if _, ok = typedKey(0); ok {
		t.Fatalf("NUL should be ignored")
	}
}

func TestSpecialKeys(t *testing.T) {
	codes := make(map[ebiten.Key]int32)
	for _, b := range specialKeys {
		codes[b.key] = b.code
	}
	if codes[ebiten.KeyEnter] != 10 || codes[ebiten.KeyBackspace] != 8 {
		t.Fatalf("special keys wrongly mapped %v", codes)
	}
}
