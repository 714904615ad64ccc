//go:build !windows

// drv_cbreak is a console input-driver which puts the terminal into
// cbreak mode for the life of the machine.  Keystrokes are delivered
// immediately and not echoed, but signals still work.

package consolein

import (
	"bufio"
	"fmt"
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// CbreakInput is an input-driver which reads unechoed keystrokes
// from a terminal in cbreak mode.
type CbreakInput struct {

	// original holds the terminal state we restore at TearDown.
	original unix.Termios

	// changed is true if we altered the terminal.
	changed bool

	reader *bufio.Reader
}

// Setup disables line-buffering and echo, if STDIN is a terminal.
func (ci *CbreakInput) Setup() error {
	ci.reader = bufio.NewReader(os.Stdin)

	fd := os.Stdin.Fd()
	if !term.IsTerminal(int(fd)) {
		return nil
	}

	if err := termios.Tcgetattr(fd, &ci.original); err != nil {
		return fmt.Errorf("error reading terminal state %s", err)
	}

	cbreak := ci.original
	cbreak.Lflag &^= unix.ICANON | unix.ECHO
	if err := termios.Tcsetattr(fd, termios.TCSANOW, &cbreak); err != nil {
		return fmt.Errorf("error setting terminal state %s", err)
	}
	ci.changed = true
	return nil
}

// TearDown restores the terminal.
func (ci *CbreakInput) TearDown() error {
	if !ci.changed {
		return nil
	}
	ci.changed = false
	return termios.Tcsetattr(os.Stdin.Fd(), termios.TCSANOW, &ci.original)
}

// ReadCharacter returns the next character from the console, blocking
// until one is available.
func (ci *CbreakInput) ReadCharacter() (byte, error) {
	if ci.reader == nil {
		ci.reader = bufio.NewReader(os.Stdin)
	}
	return ci.reader.ReadByte()
}

// GetName is part of the module API, and returns the name of this driver.
func (ci *CbreakInput) GetName() string {
	return "cbreak"
}

// init registers our driver, by name.
func init() {
	Register("cbreak", func() ConsoleInput {
		return new(CbreakInput)
	})
}
