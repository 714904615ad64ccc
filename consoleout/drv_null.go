package consoleout

import "io"

// NullOutputDriver discards everything.
type NullOutputDriver struct{}

// GetName returns the name of this driver.
func (no *NullOutputDriver) GetName() string {
	return "null"
}

// PutCharacter discards the specified character.
func (no *NullOutputDriver) PutCharacter(c uint8) error {
	return nil
}

// SetWriter is a NOP, we never write.
func (no *NullOutputDriver) SetWriter(w io.Writer) {}

// init registers our driver, by name.
func init() {
	Register("null", func() ConsoleOutput {
		return new(NullOutputDriver)
	})
}
