package consoleout

import (
	"io"
	"os"
)

// RawOutputDriver holds our state.
type RawOutputDriver struct {
	// writer is where we send our output
	writer io.Writer
}

// GetName returns the name of this driver.
//
// This is part of the OutputDriver interface.
func (ro *RawOutputDriver) GetName() string {
	return "raw"
}

// PutCharacter writes the specified byte to the writer, unbuffered
// and without any translation.
//
// This is part of the OutputDriver interface.
func (ro *RawOutputDriver) PutCharacter(c uint8) error {
	_, err := ro.writer.Write([]byte{c})
	return err
}

// SetWriter will update the writer.
func (ro *RawOutputDriver) SetWriter(w io.Writer) {
	ro.writer = w
}

// init registers our driver, by name.
func init() {
	Register("raw", func() ConsoleOutput {
		return &RawOutputDriver{
			writer: os.Stdout,
		}
	})
}
