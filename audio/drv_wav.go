// drv_wav captures all audio into a WAV file, which is written
// when the device is torn down.
//
// Audio data is buffered in memory in its entirety, so this is
// best suited to testing and short recordings.

package audio

import (
	"fmt"
	"os"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// WavDevice records samples into a WAV file.
type WavDevice struct {

	// path is the file we write to.
	path string

	// samples holds everything written so far.
	samples []int
}

// Setup selects the output file from $WAV_FILE, defaulting to "mako.wav".
func (wd *WavDevice) Setup() error {
	wd.path = os.Getenv("WAV_FILE")
	if wd.path == "" {
		wd.path = "mako.wav"
	}
	wd.samples = wd.samples[:0]
	return nil
}

// Write buffers the samples.
func (wd *WavDevice) Write(samples []byte) error {
	for _, s := range samples {
		wd.samples = append(wd.samples, int(s))
	}
	return nil
}

// TearDown encodes everything we've buffered to disk.
func (wd *WavDevice) TearDown() (rerr error) {
	f, err := os.Create(wd.path)
	if err != nil {
		return fmt.Errorf("wav: %w", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = fmt.Errorf("wav: %w", err)
		}
	}()

	// format 1 is uncompressed PCM
	enc := wav.NewEncoder(f, SampleRate, BitDepth, Channels, 1)

	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: Channels,
			SampleRate:  SampleRate,
		},
		Data:           wd.samples,
		SourceBitDepth: BitDepth,
	}

	if len(buf.Data) > 0 {
		if err := enc.Write(buf); err != nil {
			return fmt.Errorf("wav: %w", err)
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("wav: %w", err)
	}
	return nil
}

// GetName returns the name of this driver.
func (wd *WavDevice) GetName() string {
	return "wav"
}

// Path returns the file we'll write to.
func (wd *WavDevice) Path() string {
	return wd.path
}

// init registers our driver, by name.
func init() {
	Register("wav", func() Device {
		return new(WavDevice)
	})
}
