package mako

import "log/slog"

// writeAudio appends a sample to this frame's buffer.  Once the
// buffer is full further samples are dropped.
func (m *Mako) writeAudio(sample byte) {
	if m.apointer >= len(m.abuffer) {
		return
	}
	m.abuffer[m.apointer] = sample
	m.apointer++
}

// flushAudio hands the samples written during this frame, if any, to
// the audio device and empties the buffer.
//
// A failing device is reported, never fatal.
func (m *Mako) flushAudio() {
	if m.apointer == 0 {
		return
	}

	err := m.device.Write(m.abuffer[:m.apointer])
	if err != nil {
		m.Logger.Warn("audio write failed",
			slog.String("device", m.device.GetName()),
			slog.Int("samples", m.apointer),
			slog.String("error", err.Error()))
	}
	m.apointer = 0
}
