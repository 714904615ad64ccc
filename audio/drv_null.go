package audio

// NullDevice discards all audio.
type NullDevice struct {
}

// Setup is a NOP.
func (nd *NullDevice) Setup() error {
	return nil
}

// TearDown is a NOP.
func (nd *NullDevice) TearDown() error {
	return nil
}

// Write discards the samples.
func (nd *NullDevice) Write(samples []byte) error {
	return nil
}

// GetName returns the name of this driver.
func (nd *NullDevice) GetName() string {
	return "null"
}

// init registers our driver, by name.
func init() {
	Register("null", func() Device {
		return new(NullDevice)
	})
}
