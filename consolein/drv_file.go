// drv_file is a console input-driver which replays the contents of
// a file, for scripted runs of interactive programs.

package consolein

import (
	"bytes"
	"io"
	"os"
)

// FileInput returns the bytes of the file named by $INPUT_FILE, or
// "input.txt", as console input.  Once they are exhausted every read
// reports io.EOF.
type FileInput struct {
	content *bytes.Reader
}

// Setup loads the file.
func (fi *FileInput) Setup() error {
	name := os.Getenv("INPUT_FILE")
	if name == "" {
		name = "input.txt"
	}

	dat, err := os.ReadFile(name)
	if err != nil {
		return err
	}
	fi.content = bytes.NewReader(dat)
	return nil
}

// TearDown is a NOP.
func (fi *FileInput) TearDown() error {
	return nil
}

// ReadCharacter returns the next byte of the file.
func (fi *FileInput) ReadCharacter() (byte, error) {
	if fi.content == nil {
		return 0, io.EOF
	}
	return fi.content.ReadByte()
}

// GetName is part of the module API, and returns the name of this driver.
func (fi *FileInput) GetName() string {
	return "file"
}

// init registers our driver, by name.
func init() {
	Register("file", func() ConsoleInput {
		return new(FileInput)
	})
}
