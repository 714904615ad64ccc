package audio

// LoggingDevice records every sample it is given, so that
// tests can make assertions about what was played.
type LoggingDevice struct {

	// history contains every sample we've received.
	history []byte

	// writes counts the calls to Write.
	writes int
}

// Setup is a NOP.
func (ld *LoggingDevice) Setup() error {
	return nil
}

// TearDown is a NOP.
func (ld *LoggingDevice) TearDown() error {
	return nil
}

// Write appends the samples to our history.
func (ld *LoggingDevice) Write(samples []byte) error {
	ld.history = append(ld.history, samples...)
	ld.writes++
	return nil
}

// GetName returns the name of this driver.
func (ld *LoggingDevice) GetName() string {
	return "logger"
}

// GetSamples returns our history.
//
// This is part of the Recorder interface.
func (ld *LoggingDevice) GetSamples() []byte {
	return ld.history
}

// GetWrites returns the number of writes we've seen.
//
// This is part of the Recorder interface.
func (ld *LoggingDevice) GetWrites() int {
	return ld.writes
}

// Reset clears our history.
//
// This is part of the Recorder interface.
func (ld *LoggingDevice) Reset() {
	ld.history = nil
	ld.writes = 0
}

// init registers our driver, by name.
func init() {
	Register("logger", func() Device {
		return new(LoggingDevice)
	})
}
