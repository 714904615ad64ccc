// Package mako contains the execution core of our fantasy console: a
// stack machine running over a flat memory of 32-bit words, and the
// devices which are mapped into that memory.
//
// The host drives the machine one frame at a time, via Run.  Each call
// executes guest code until it reaches a SYNC instruction, renders a
// frame into the pixel buffer, and hands any audio written during the
// frame to the audio device.  Everything happens on the caller's
// goroutine, and a Mako must not be used from two goroutines at once.
package mako

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"math/rand/v2"

	"github.com/skx/makovm/audio"
	"github.com/skx/makovm/consolein"
	"github.com/skx/makovm/consoleout"
	"github.com/skx/makovm/fileport"
	"github.com/skx/makovm/memory"
)

var (
	// ErrHalt is returned by Run when the program counter reaches Halt.
	//
	// It should be handled and expected by callers, who will typically
	// exit.
	ErrHalt = errors.New("HALT")
)

// Mako is the object that holds our emulator state
type Mako struct {

	// mem is the main memory, which also holds every register.
	mem *memory.Memory

	// pixels is the frame buffer, row-major, 0xAARRGGBB.
	pixels []uint32

	// keys holds the state of the keyboard, fed by the host.
	keys *KeyState

	// abuffer holds the samples written during the current frame,
	// and apointer the count of them.
	abuffer  [AudioBufferSize]byte
	apointer int

	// device is where our audio goes at the end of each frame.
	device audio.Device

	// files holds the streams opened through the external port.
	files *fileport.Port

	// input is used for reading the console.
	input *consolein.ConsoleIn

	// output is used for writing to the console.
	output *consoleout.ConsoleOut

	// rand is our random source.
	rand *rand.Rand

	// frames counts the frames we've produced.
	frames uint64

	// trace enables logging of each instruction executed.
	trace bool

	// The names of the drivers to use, and the seed (if set),
	// recorded by our options.
	inputName  string
	outputName string
	audioName  string
	seed       *uint64

	// Logger holds a logger which we use for debugging and diagnostics.
	Logger *slog.Logger
}

// Option is a function which configures a Mako, and is passed
// to New.
type Option func(m *Mako) error

// WithLogger sets the logger.
func WithLogger(log *slog.Logger) Option {
	return func(m *Mako) error {
		m.Logger = log
		return nil
	}
}

// WithInputDriver selects the console input driver, by name.
func WithInputDriver(name string) Option {
	return func(m *Mako) error {
		m.inputName = name
		return nil
	}
}

// WithOutputDriver selects the console output driver, by name.
func WithOutputDriver(name string) Option {
	return func(m *Mako) error {
		m.outputName = name
		return nil
	}
}

// WithAudioDriver selects the audio device, by name.
func WithAudioDriver(name string) Option {
	return func(m *Mako) error {
		m.audioName = name
		return nil
	}
}

// WithSeed makes our random numbers repeatable.
func WithSeed(seed uint64) Option {
	return func(m *Mako) error {
		m.seed = &seed
		return nil
	}
}

// WithTrace enables logging of every instruction, at debug level.
func WithTrace(enabled bool) Option {
	return func(m *Mako) error {
		m.trace = enabled
		return nil
	}
}

// New returns a machine running with the given memory, which must
// already hold the program and its initial register values.
//
// By default the console is STDIN/STDOUT and audio is discarded.
func New(mem *memory.Memory, options ...Option) (*Mako, error) {

	if mem == nil || mem.Len() < Registers {
		return nil, fmt.Errorf("memory must hold at least %d words", Registers)
	}

	m := &Mako{
		mem:        mem,
		pixels:     make([]uint32, Width*Height),
		keys:       new(KeyState),
		files:      fileport.New(),
		inputName:  "stdin",
		outputName: "raw",
		audioName:  "null",
		Logger:     slog.New(slog.DiscardHandler),
	}

	for _, option := range options {
		if err := option(m); err != nil {
			return nil, err
		}
	}

	if m.seed != nil {
		m.rand = rand.New(rand.NewPCG(*m.seed, *m.seed))
	} else {
		m.rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	var err error

	m.output, err = consoleout.New(m.outputName)
	if err != nil {
		return nil, err
	}

	m.input, err = consolein.New(m.inputName)
	if err != nil {
		return nil, err
	}

	m.device, err = audio.New(m.audioName)
	if err != nil {
		return nil, err
	}

	if err = m.input.Setup(); err != nil {
		return nil, fmt.Errorf("console input %s: %w", m.inputName, err)
	}

	if err = m.device.Setup(); err != nil {
		_ = m.input.TearDown()
		return nil, fmt.Errorf("audio device %s: %w", m.audioName, err)
	}

	return m, nil
}

// Close releases everything the machine holds on the host: open
// files, the audio device, and the console.
func (m *Mako) Close() error {
	return errors.Join(
		m.files.CloseAll(),
		m.device.TearDown(),
		m.input.TearDown(),
	)
}

// Memory returns the main memory.
func (m *Mako) Memory() *memory.Memory {
	return m.mem
}

// Keys returns the keyboard state, which the host updates.
func (m *Mako) Keys() *KeyState {
	return m.keys
}

// Frames returns the number of frames produced so far.
func (m *Mako) Frames() uint64 {
	return m.frames
}

// GetInput returns the console input, which allows input to be stuffed.
func (m *Mako) GetInput() *consolein.ConsoleIn {
	return m.input
}

// GetOutputDriver returns the console output driver.
func (m *Mako) GetOutputDriver() consoleout.ConsoleOutput {
	return m.output.GetDriver()
}

// GetAudioDevice returns the audio device.
func (m *Mako) GetAudioDevice() audio.Device {
	return m.device
}

// Pixel returns the colour of the given pixel in the frame buffer.
func (m *Mako) Pixel(x, y int) uint32 {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return 0
	}
	return m.pixels[x+y*Width]
}

// CopyPixels copies the frame buffer into dst, returning the number
// of pixels copied.
func (m *Mako) CopyPixels(dst []uint32) int {
	return copy(dst, m.pixels)
}

// WriteRGBA converts the frame buffer into RGBA bytes, as used by
// image.RGBA, in dst which must hold Width*Height*4 bytes.
//
// The presented frame is opaque, whatever alpha the background had.
func (m *Mako) WriteRGBA(dst []byte) {
	for i, c := range m.pixels {
		dst[i*4+0] = byte(c >> 16)
		dst[i*4+1] = byte(c >> 8)
		dst[i*4+2] = byte(c)
		dst[i*4+3] = 0xFF
	}
}

// Snapshot returns a copy of the frame buffer as an image.
func (m *Mako) Snapshot() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, Width, Height))
	m.WriteRGBA(img.Pix)
	return img
}
