//go:build headless

package display

import (
	"errors"

	"github.com/skx/makovm/mako"
)

// ErrNoDisplay is returned when we were built without a window system.
var ErrNoDisplay = errors.New("built without display support, use -headless")

// Window is a placeholder which cannot be shown.
type Window struct{}

// New returns a window which cannot be shown.
func New(machine *mako.Mako, scale int, title string) *Window {
	return &Window{}
}

// Run always fails.
func (w *Window) Run() error {
	return ErrNoDisplay
}
