package mako

import (
	"io"
	"log/slog"
)

// load reads a word of memory, unless the address is one of our
// input ports.
func (m *Mako) load(addr int32) int32 {
	switch addr {
	case RN:
		return int32(m.rand.Uint32())
	case KY:
		return m.keys.Mask()
	case KB:
		return m.keys.Dequeue()
	case CO:
		return m.readConsole()
	case XO:
		c, err := m.files.Read(m.reg(XA))
		if err != nil {
			m.Logger.Warn("external read failed",
				slog.Int("handle", int(m.reg(XA))),
				slog.String("error", err.Error()))
		}
		return c
	case XS:
		return XSupported
	}
	return m.mem.Get(addr)
}

// store writes a word to memory, first passing it to the device
// mapped at that address, if any.
//
// Writes to the console are not stored; writes to every other port
// are.
func (m *Mako) store(addr int32, value int32) {
	switch addr {
	case CO:
		if err := m.output.PutCharacter(byte(value)); err != nil {
			m.Logger.Warn("console write failed",
				slog.String("driver", m.output.GetName()),
				slog.String("error", err.Error()))
		}
		return
	case AU:
		m.writeAudio(byte(value))
	case XO:
		err := m.files.Write(m.reg(XA), byte(value))
		if err != nil {
			m.Logger.Warn("external write failed",
				slog.Int("handle", int(m.reg(XA))),
				slog.String("error", err.Error()))
		}
	case XS:
		m.external(value)
	}
	m.mem.Set(addr, value)
}

// readConsole reads a byte of console input, returning -1 at the end
// of input or on failure.
func (m *Mako) readConsole() int32 {
	c, err := m.input.ReadCharacter()
	if err != nil {
		if err != io.EOF {
			m.Logger.Warn("console read failed",
				slog.String("driver", m.input.GetName()),
				slog.String("error", err.Error()))
		}
		return -1
	}
	return int32(c)
}

// external carries out a command written to XS, against the handle
// or path addressed by XA.
//
// On failure XA is set to -1.
func (m *Mako) external(cmd int32) {
	xa := m.reg(XA)

	var (
		h   int32
		err error
	)

	switch cmd {
	case XClose:
		err = m.files.Close(xa)
		h = xa
	case XOpenRead:
		h, err = m.files.OpenRead(m.mem.String(xa))
	case XOpenWrite:
		h, err = m.files.OpenWrite(m.mem.String(xa))
	default:
		return
	}

	if err != nil {
		m.Logger.Warn("external command failed",
			slog.Int("command", int(cmd)),
			slog.String("error", err.Error()))
		m.mem.Set(XA, -1)
		return
	}

	m.Logger.Debug("external command",
		slog.Int("command", int(cmd)),
		slog.Int("handle", int(h)))
	m.mem.Set(XA, h)
}
