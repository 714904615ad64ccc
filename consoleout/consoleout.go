// Package consoleout is where the bytes a guest stores to the console
// port end up.
//
// Bytes are passed to the host verbatim, with no translation and no
// buffering.  Drivers exist so that tests can record, or discard, that
// output instead of writing it to STDOUT.
package consoleout

import (
	"io"

	"github.com/skx/makovm/internal/driver"
)

// ConsoleOutput is the interface that must be implemented by anything
// that wishes to be used as a console output driver.
type ConsoleOutput interface {

	// PutCharacter sends a single byte to the host.
	PutCharacter(c uint8) error

	// GetName will return the name of the driver.
	GetName() string

	// SetWriter changes where output goes, for drivers which write
	// anywhere at all.  The default is STDOUT.
	SetWriter(io.Writer)
}

// ConsoleRecorder is implemented by drivers which keep a copy of
// everything they were given, so that tests can examine it.
type ConsoleRecorder interface {

	// GetOutput returns the contents which have been displayed.
	GetOutput() string

	// Reset removes any stored state.
	Reset()
}

// Constructor is the signature of a constructor-function
// which is used to instantiate an instance of a driver.
type Constructor func() ConsoleOutput

// drivers holds everything registered; "null" and "logger" are
// for testing and so not advertised.
var drivers = driver.NewRegistry[ConsoleOutput]("console output", "null", "logger")

// Register makes a console driver available, by name.
func Register(name string, obj Constructor) {
	drivers.Register(name, obj)
}

// ConsoleOut wraps the driver selected at runtime.
type ConsoleOut struct {
	driver ConsoleOutput
}

// New creates an output device which uses the named driver.
func New(name string) (*ConsoleOut, error) {
	d, err := drivers.New(name)
	if err != nil {
		return nil, err
	}
	return &ConsoleOut{driver: d}, nil
}

// GetDriver allows getting our driver at runtime.
func (co *ConsoleOut) GetDriver() ConsoleOutput {
	return co.driver
}

// GetName returns the name of our selected driver.
func (co *ConsoleOut) GetName() string {
	return co.driver.GetName()
}

// GetDrivers returns the names of the drivers a user may choose from.
func (co *ConsoleOut) GetDrivers() []string {
	return drivers.Names()
}

// PutCharacter outputs a character, using our selected driver.
func (co *ConsoleOut) PutCharacter(c byte) error {
	return co.driver.PutCharacter(c)
}
