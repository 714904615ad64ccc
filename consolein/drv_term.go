// drv_term uses the termbox library to read the keyboard.
//
// A goroutine collects key events as they arrive and queues them, so
// the guest can consume them a byte at a time.

package consolein

import (
	"fmt"
	"os"

	"github.com/nsf/termbox-go"
	"golang.org/x/term"
)

// TermboxInput is our input-driver, using termbox.
type TermboxInput struct {

	// oldState contains the state of the terminal, before switching to RAW mode.
	oldState *term.State

	// keys receives bytes from the polling goroutine.
	keys chan byte

	// done is closed when the polling goroutine exits.
	done chan struct{}
}

// Setup puts the terminal into raw mode, initialises termbox, and
// starts polling the keyboard.
func (ti *TermboxInput) Setup() error {

	var err error

	// raw mode must be set before termbox takes over the terminal
	ti.oldState, err = term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		return fmt.Errorf("error making raw terminal %s", err)
	}

	if err = termbox.Init(); err != nil {
		_ = term.Restore(int(os.Stdin.Fd()), ti.oldState)
		ti.oldState = nil
		return fmt.Errorf("error initializing termbox %s", err)
	}

	// termbox hides the cursor, which the guest may want.
	os.Stdout.WriteString("\x1b[?25h")

	ti.keys = make(chan byte, 256)
	ti.done = make(chan struct{})
	go ti.pollKeyboard()
	return nil
}

// pollKeyboard runs in a goroutine, queueing key presses until
// termbox is interrupted.
func (ti *TermboxInput) pollKeyboard() {
	defer close(ti.done)

	for {
		ev := termbox.PollEvent()
		switch ev.Type {
		case termbox.EventInterrupt, termbox.EventError:
			return
		case termbox.EventKey:
			c := byte(ev.Key)
			if ev.Ch != 0 {
				c = byte(ev.Ch)
			}
			ti.keys <- c
		}
	}
}

// TearDown stops the polling, closes termbox, and restores the terminal.
func (ti *TermboxInput) TearDown() error {
	if ti.done == nil {
		return nil
	}

	termbox.Interrupt()
	ti.drain()
	termbox.Close()

	if ti.oldState != nil {
		return term.Restore(int(os.Stdin.Fd()), ti.oldState)
	}
	return nil
}

// drain discards queued keys until the poller has exited, then drops
// the queue so later reads fail rather than block.
func (ti *TermboxInput) drain() {
	// a full queue would block the poller
loop:
	for {
		select {
		case <-ti.keys:
		case <-ti.done:
			break loop
		}
	}
	ti.keys = nil
	ti.done = nil
}

// ReadCharacter returns the next character from the console, blocking until
// one is available.
func (ti *TermboxInput) ReadCharacter() (byte, error) {
	if ti.keys == nil {
		return 0, fmt.Errorf("term driver has not been setup")
	}
	return <-ti.keys, nil
}

// GetName is part of the module API, and returns the name of this driver.
func (ti *TermboxInput) GetName() string {
	return "term"
}

// init registers our driver, by name.
func init() {
	Register("term", func() ConsoleInput {
		return new(TermboxInput)
	})
}
