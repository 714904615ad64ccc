// Package config handles the optional mako.toml file, which holds
// the settings a user would otherwise pass on the command-line.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
)

// DefaultFile is the name of the configuration file we look for in
// the current directory when none is given.
const DefaultFile = "mako.toml"

// Config represents the contents of a mako.toml file.
type Config struct {
	Display Display `toml:"display"`
	Audio   Audio   `toml:"audio"`
	Console Console `toml:"console"`
	Machine Machine `toml:"machine"`
}

// Display configures the window.
type Display struct {
	Scale int    `toml:"scale"`
	Title string `toml:"title"`
}

// Audio configures the audio device.
type Audio struct {
	// Driver is the audio device; when empty we use "oto" with a
	// window, and "null" without one.
	Driver string `toml:"driver"`

	// WavFile is the output path for the "wav" driver.
	WavFile string `toml:"wav-file"`
}

// Console configures the console drivers.
type Console struct {
	Input  string `toml:"input"`
	Output string `toml:"output"`

	// InputFile is the source of input for the "file" driver.
	InputFile string `toml:"input-file"`
}

// Machine configures the virtual machine itself.
type Machine struct {
	// Seed, if non-zero, makes RN repeatable.
	Seed uint64 `toml:"seed"`

	// Memory is the minimum memory size, in words.  Smaller images
	// are padded with zeros.
	Memory int `toml:"memory"`

	Trace bool `toml:"trace"`
}

// Default returns the configuration used when there is no file.
func Default() *Config {
	return &Config{
		Display: Display{Scale: 2, Title: "Mako"},
		Audio:   Audio{WavFile: "mako.wav"},
		Console: Console{Input: "stdin", Output: "raw", InputFile: "input.txt"},
	}
}

// Load parses the named file over the defaults.
//
// If path is empty DefaultFile is tried, and its absence is not
// an error.
func Load(path string) (*Config, error) {
	c := Default()

	name := path
	if name == "" {
		name = DefaultFile
	}

	data, err := os.ReadFile(name)
	if err != nil {
		if path == "" && errors.Is(err, fs.ErrNotExist) {
			return c, nil
		}
		return nil, fmt.Errorf("cannot read %s: %w", name, err)
	}

	md, err := toml.Decode(string(data), c)
	if err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", name, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown setting in %s: %s", name, undecoded[0])
	}

	if c.Display.Scale < 1 {
		return nil, fmt.Errorf("invalid display scale %d in %s", c.Display.Scale, name)
	}
	if c.Machine.Memory < 0 {
		return nil, fmt.Errorf("invalid memory size %d in %s", c.Machine.Memory, name)
	}

	return c, nil
}
