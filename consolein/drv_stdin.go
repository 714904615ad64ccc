// drv_stdin is the default console input-driver, which reads
// from STDIN in whatever mode the terminal happens to be in.

package consolein

import (
	"bufio"
	"io"
	"os"
)

// StdinInput reads input from STDIN, via a buffered reader.
//
// When STDIN is a terminal in cooked mode input arrives a line
// at a time, which is what simple guest programs expect.
type StdinInput struct {

	// reader is where we read our input from.
	reader *bufio.Reader
}

// Setup is a NOP.
func (si *StdinInput) Setup() error {
	return nil
}

// TearDown is a NOP.
func (si *StdinInput) TearDown() error {
	return nil
}

// SetReader will update the reader.
func (si *StdinInput) SetReader(r io.Reader) {
	si.reader = bufio.NewReader(r)
}

// ReadCharacter returns the next byte from our reader.
func (si *StdinInput) ReadCharacter() (byte, error) {
	return si.reader.ReadByte()
}

// GetName is part of the module API, and returns the name of this driver.
func (si *StdinInput) GetName() string {
	return "stdin"
}

// init registers our driver, by name.
func init() {
	Register("stdin", func() ConsoleInput {
		return &StdinInput{
			reader: bufio.NewReader(os.Stdin),
		}
	})
}
