// drv_error is a console input-driver which fails every read, so
// that tests can see how the machine copes with a broken console.

package consolein

import "errors"

var (
	// ErrorInputName contains the name of this driver.
	ErrorInputName = "error"

	// ErrInputFailure is returned by every read from this driver.
	ErrInputFailure = errors.New("console input failure")
)

// ErrorInput is an input-driver that only returns errors.
type ErrorInput struct{}

// Setup is a NOP.
func (ei *ErrorInput) Setup() error { return nil }

// TearDown is a NOP.
func (ei *ErrorInput) TearDown() error { return nil }

// GetName returns the name of this driver, "error".
func (ei *ErrorInput) GetName() string {
	return ErrorInputName
}

// ReadCharacter always fails.
func (ei *ErrorInput) ReadCharacter() (byte, error) {
	return 0, ErrInputFailure
}

// init registers our driver, by name.
func init() {
	Register(ErrorInputName, func() ConsoleInput {
		return new(ErrorInput)
	})
}
