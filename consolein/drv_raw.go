// drv_raw is a console input-driver which switches the terminal
// into raw mode for each byte read, so that single keystrokes are
// delivered immediately and are not echoed.

package consolein

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// RawInput is an input-driver which reads single unechoed
// keystrokes from the terminal.
type RawInput struct {
}

// Setup is a NOP.
func (ri *RawInput) Setup() error {
	return nil
}

// TearDown is a NOP, as we restore the terminal after every read.
func (ri *RawInput) TearDown() error {
	return nil
}

// ReadCharacter returns the next character from the console, blocking until
// one is available.
//
// When STDIN is not a terminal we just read a byte from it.
func (ri *RawInput) ReadCharacter() (byte, error) {

	fd := int(os.Stdin.Fd())

	// read only a single byte
	b := make([]byte, 1)

	if !term.IsTerminal(fd) {
		_, err := os.Stdin.Read(b)
		return b[0], err
	}

	// switch stdin into 'raw' mode
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return 0x00, fmt.Errorf("error making raw terminal %s", err)
	}

	_, err = os.Stdin.Read(b)
	if err != nil {
		_ = term.Restore(fd, oldState)
		return 0x00, err
	}

	// restore the state of the terminal to avoid mixing RAW/Cooked
	err = term.Restore(fd, oldState)
	if err != nil {
		return 0x00, fmt.Errorf("error restoring terminal state %s", err)
	}

	// Return the character we read
	return b[0], nil
}

// GetName is part of the module API, and returns the name of this driver.
func (ri *RawInput) GetName() string {
	return "raw"
}

// init registers our driver, by name.
func init() {
	Register("raw", func() ConsoleInput {
		return new(RawInput)
	})
}
