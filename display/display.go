//go:build !headless

// Package display presents a machine in a window, and feeds it with
// keyboard input.
//
// The window ticks at 60Hz; each tick updates the key state, runs the
// machine for one frame, and draws the result.
package display

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/skx/makovm/mako"
)

// Window is an ebiten.Game which drives a machine.
type Window struct {
	machine *mako.Mako

	// frame holds the machine's pixels, and rgba is the buffer we
	// convert them into.
	frame *ebiten.Image
	rgba  []byte

	scale int
	title string

	// halted is set once the machine stops.
	halted bool
}

// New returns a window for the given machine, scaled by an integer
// factor.
func New(machine *mako.Mako, scale int, title string) *Window {
	if scale < 1 {
		scale = 1
	}
	return &Window{
		machine: machine,
		rgba:    make([]byte, mako.Width*mako.Height*4),
		scale:   scale,
		title:   title,
	}
}

// Run opens the window and runs the machine until it halts, in which
// case mako.ErrHalt is returned, or until the window is closed.
func (w *Window) Run() error {
	ebiten.SetWindowSize(mako.Width*w.scale, mako.Height*w.scale)
	ebiten.SetWindowTitle(w.title)
	ebiten.SetTPS(60)

	if err := ebiten.RunGame(w); err != nil {
		return err
	}
	if w.halted {
		return mako.ErrHalt
	}
	return nil
}

// Update is part of the ebiten.Game interface.
func (w *Window) Update() error {
	if w.halted {
		return ebiten.Termination
	}

	keys := w.machine.Keys()
	keys.SetMask(heldMask(ebiten.IsKeyPressed))

	for _, r := range ebiten.AppendInputChars(nil) {
		if c, ok := typedKey(r); ok {
			keys.Enqueue(c)
		}
	}
	for _, k := range specialKeys {
		if inpututil.IsKeyJustPressed(k.key) {
			keys.Enqueue(k.code)
		}
	}

	err := w.machine.Run()
	if errors.Is(err, mako.ErrHalt) {
		w.halted = true
		return ebiten.Termination
	}
	return err
}

// Draw is part of the ebiten.Game interface.
func (w *Window) Draw(screen *ebiten.Image) {
	if w.frame == nil {
		w.frame = ebiten.NewImage(mako.Width, mako.Height)
	}

	w.machine.WriteRGBA(w.rgba)
	w.frame.WritePixels(w.rgba)
	screen.DrawImage(w.frame, nil)
}

// Layout is part of the ebiten.Game interface; we always render at
// the native resolution and let ebiten scale.
func (w *Window) Layout(_, _ int) (int, int) {
	return mako.Width, mako.Height
}
