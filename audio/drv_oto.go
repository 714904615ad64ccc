//go:build !headless

// drv_oto plays audio through the host's sound hardware, via oto.

package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
)

// maxPending is the most audio we'll queue before dropping the
// oldest samples, half a second.
const maxPending = SampleRate / 2

// OtoDevice plays samples as they are written.
//
// oto pulls samples from us on its own goroutine, via Read, so the
// queue between Write and Read is guarded by a mutex.  When nothing is
// queued we feed silence.
//
// oto permits only one context per process, so only one OtoDevice may
// be setup at a time.
type OtoDevice struct {
	ctx    *oto.Context
	player *oto.Player

	mu      sync.Mutex
	pending []byte
}

// Setup opens the host audio device and starts playback.
func (od *OtoDevice) Setup() error {
	op := &oto.NewContextOptions{
		SampleRate:   SampleRate,
		ChannelCount: Channels,
		Format:       oto.FormatUnsignedInt8,
		BufferSize:   80 * time.Millisecond,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return fmt.Errorf("unable to initialize sound: %w", err)
	}
	<-ready

	od.ctx = ctx
	od.player = ctx.NewPlayer(od)
	od.player.Play()
	return nil
}

// Read implements io.Reader for the oto player.
func (od *OtoDevice) Read(p []byte) (int, error) {
	od.mu.Lock()
	n := copy(p, od.pending)
	od.pending = od.pending[n:]
	od.mu.Unlock()

	for i := n; i < len(p); i++ {
		p[i] = Silence
	}
	return len(p), nil
}

// Write queues samples for playback.
func (od *OtoDevice) Write(samples []byte) error {
	od.mu.Lock()
	defer od.mu.Unlock()

	od.pending = append(od.pending, samples...)
	if over := len(od.pending) - maxPending; over > 0 {
		od.pending = od.pending[over:]
	}
	return nil
}

// TearDown stops playback.
func (od *OtoDevice) TearDown() error {
	if od.player == nil {
		return nil
	}
	err := od.player.Close()
	od.player = nil
	return err
}

// GetName returns the name of this driver.
func (od *OtoDevice) GetName() string {
	return "oto"
}

// init registers our driver, by name.
func init() {
	Register("oto", func() Device {
		return new(OtoDevice)
	})
}
