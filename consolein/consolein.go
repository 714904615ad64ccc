// Package consolein handles the reading of console input
// for our emulator.
//
// The guest reads the console port one byte at a time, blocking
// until a byte is available, so that is all a driver needs to
// provide.  Drivers are registered by name, and selected at runtime.
//
// Note that no output functions are handled by this package,
// it is exclusively used for input.
package consolein

import "github.com/skx/makovm/internal/driver"

// ConsoleInput is the interface that must be implemented by anything
// that wishes to be used as an input driver.
type ConsoleInput interface {

	// Setup performs any specific setup which is required.
	Setup() error

	// TearDown performs any specific cleanup which is required.
	TearDown() error

	// ReadCharacter returns the next byte of input, blocking until
	// one is available.  io.EOF is returned when input is exhausted.
	ReadCharacter() (byte, error)

	// GetName will return the name of the driver.
	GetName() string
}

// Constructor is the signature of a constructor-function
// which is used to instantiate an instance of a driver.
type Constructor func() ConsoleInput

// drivers holds everything registered; the "error" driver is for
// testing and so not advertised.
var drivers = driver.NewRegistry[ConsoleInput]("console input", ErrorInputName)

// Register makes a console driver available, by name.
func Register(name string, obj Constructor) {
	drivers.Register(name, obj)
}

// ConsoleIn holds our state, which is the driver we're using and
// any input which has been stuffed into our buffer.
type ConsoleIn struct {

	// driver is the thing that actually reads our input.
	driver ConsoleInput

	// stuffed holds fake input which has been forced into the buffer,
	// and which is returned before anything the driver produces.
	stuffed []byte
}

// New creates an input device which uses the named driver.
//
// The driver has not been setup; that is left to the caller.
func New(name string) (*ConsoleIn, error) {
	d, err := drivers.New(name)
	if err != nil {
		return nil, err
	}
	return &ConsoleIn{driver: d}, nil
}

// GetDriver allows getting our driver at runtime.
func (ci *ConsoleIn) GetDriver() ConsoleInput {
	return ci.driver
}

// GetName returns the name of our selected driver.
func (ci *ConsoleIn) GetName() string {
	return ci.driver.GetName()
}

// GetDrivers returns the names of the drivers a user may choose from.
func (ci *ConsoleIn) GetDrivers() []string {
	return drivers.Names()
}

// Setup proxies into our registered console-input driver.
func (ci *ConsoleIn) Setup() error {
	return ci.driver.Setup()
}

// TearDown proxies into our registered console-input driver.
func (ci *ConsoleIn) TearDown() error {
	return ci.driver.TearDown()
}

// StuffInput inserts fake values into our input-buffer.
func (ci *ConsoleIn) StuffInput(input string) {
	ci.stuffed = append(ci.stuffed, input...)
}

// ReadCharacter returns the next byte of input, from our stuffed
// buffer if that is non-empty, otherwise from our driver.
func (ci *ConsoleIn) ReadCharacter() (byte, error) {
	if len(ci.stuffed) > 0 {
		c := ci.stuffed[0]
		ci.stuffed = ci.stuffed[1:]
		return c, nil
	}
	return ci.driver.ReadCharacter()
}
