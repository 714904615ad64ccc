// Package audio holds the host audio devices which the machine hands
// its samples to, once per frame.
//
// Samples are always 8-bit unsigned PCM, mono, at 8kHz.  Devices are
// registered by name, in the same way as our console drivers, so the
// device can be chosen at runtime.
package audio

import "github.com/skx/makovm/internal/driver"

const (
	// SampleRate is the number of samples per second.
	SampleRate = 8000

	// Channels is the number of audio channels; we're mono.
	Channels = 1

	// BitDepth is the size of each sample, in bits.
	BitDepth = 8

	// Silence is the value of an unsigned 8-bit sample at rest.
	Silence = 0x80
)

// Device is the interface that must be implemented by anything
// that wishes to receive audio from the machine.
type Device interface {

	// Setup acquires any host resources the device needs.
	Setup() error

	// TearDown releases the host resources held by the device.
	TearDown() error

	// Write hands a block of samples to the device.
	//
	// The device must not retain the slice after returning.
	Write(samples []byte) error

	// GetName will return the name of the driver.
	GetName() string
}

// Recorder is an interface that allows returning the samples that
// have been previously written to a device.
//
// This is used solely for tests.
type Recorder interface {

	// GetSamples returns every sample written so far.
	GetSamples() []byte

	// GetWrites returns the number of Write calls made.
	GetWrites() int

	// Reset removes any stored state.
	Reset()
}

// Constructor is the signature of a constructor-function
// which is used to instantiate an instance of a driver.
type Constructor func() Device

// drivers holds everything registered; "logger" is for testing and
// so not advertised.
var drivers = driver.NewRegistry[Device]("audio", "logger")

// Register makes an audio driver available, by name.
func Register(name string, obj Constructor) {
	drivers.Register(name, obj)
}

// New creates a device which uses the named driver.
//
// The device has not been setup; that is left to the caller.
func New(name string) (Device, error) {
	return drivers.New(name)
}

// GetDrivers returns the names of the drivers a user may choose from.
func GetDrivers() []string {
	return drivers.Names()
}
