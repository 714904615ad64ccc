package consoleout

import (
	"bytes"
	"io"
)

// OutputLoggingDriver records output in memory, and writes nothing.
type OutputLoggingDriver struct {
	history bytes.Buffer
}

// GetName returns the name of this driver.
func (ol *OutputLoggingDriver) GetName() string {
	return "logger"
}

// PutCharacter saves the character into our history.
func (ol *OutputLoggingDriver) PutCharacter(c uint8) error {
	return ol.history.WriteByte(c)
}

// SetWriter is a NOP, we never write.
func (ol *OutputLoggingDriver) SetWriter(w io.Writer) {}

// GetOutput returns our history.
//
// This is part of the ConsoleRecorder interface.
func (ol *OutputLoggingDriver) GetOutput() string {
	return ol.history.String()
}

// Reset truncates our history.
//
// This is part of the ConsoleRecorder interface.
func (ol *OutputLoggingDriver) Reset() {
	ol.history.Reset()
}

// init registers our driver, by name.
func init() {
	Register("logger", func() ConsoleOutput {
		return new(OutputLoggingDriver)
	})
}
