// Package fileport implements the host side of the machine's
// external I/O port: a table of open files, addressed by small
// integer handles, which the guest reads and writes a byte at a time.
//
// Handles are allocated from a counter which starts at one and only
// ever increases, so a handle is never reused within a run even after
// it has been closed.  A single handle may own a read stream and a
// write stream at the same time.
//
// Paths are resolved against the working directory of the host
// process, without any sandboxing.
package fileport

import (
	"errors"
	"io"
	"os"
)

// EOF is returned by Read when no byte is available, for whatever reason.
const EOF = -1

// reader is an open read stream.
//
// Bytes are read from the file one at a time, without read-ahead, so
// that data appended through another handle is seen.
type reader struct {
	file *os.File

	// pushed holds a byte which was read and then given back.
	pushed   byte
	havePush bool
}

// readByte returns the next byte of the stream.
func (r *reader) readByte() (byte, error) {
	if r.havePush {
		r.havePush = false
		return r.pushed, nil
	}

	var b [1]byte
	for {
		n, err := r.file.Read(b[:])
		if n == 1 {
			return b[0], nil
		}
		if err != nil {
			return 0, err
		}
	}
}

// unreadByte gives back a byte, to be returned by the next readByte.
func (r *reader) unreadByte(c byte) {
	r.pushed = c
	r.havePush = true
}

// Port holds the open streams.
type Port struct {

	// next is the handle the next successful open will receive.
	next int32

	// readers and writers hold the open streams, by handle.
	readers map[int32]*reader
	writers map[int32]*os.File
}

// New returns a port with no open streams.
func New() *Port {
	return &Port{
		next:    1,
		readers: make(map[int32]*reader),
		writers: make(map[int32]*os.File),
	}
}

// OpenRead opens the named file for reading, returning a new handle.
//
// On failure no handle is consumed.
func (p *Port) OpenRead(path string) (int32, error) {
	f, err := os.Open(path)
	if err != nil {
		return EOF, err
	}

	h := p.next
	p.next++
	p.readers[h] = &reader{file: f}
	return h, nil
}

// OpenWrite creates, or truncates, the named file for writing,
// returning a new handle.
//
// On failure no handle is consumed.
func (p *Port) OpenWrite(path string) (int32, error) {
	f, err := os.Create(path)
	if err != nil {
		return EOF, err
	}

	h := p.next
	p.next++
	p.writers[h] = f
	return h, nil
}

// Close closes both the read and the write stream owned by the given
// handle, if any.
//
// Closing an unknown, or already-closed, handle is a NOP.  The streams
// are forgotten even if closing them fails.
func (p *Port) Close(h int32) error {
	var errs []error

	if r, ok := p.readers[h]; ok {
		errs = append(errs, r.file.Close())
		delete(p.readers, h)
	}
	if w, ok := p.writers[h]; ok {
		errs = append(errs, w.Close())
		delete(p.writers, h)
	}
	return errors.Join(errs...)
}

// CloseAll closes every open stream.
func (p *Port) CloseAll() error {
	var errs []error

	for h := range p.readers {
		errs = append(errs, p.Close(h))
	}
	for h := range p.writers {
		errs = append(errs, p.Close(h))
	}
	return errors.Join(errs...)
}

// Read returns the next byte from the read stream of the given handle.
//
// Line endings are normalized: a carriage-return is returned as a
// line-feed, and a line-feed which directly follows it is swallowed.
// EOF is returned at the end of the stream, on any error, or if the
// handle has no read stream.
func (p *Port) Read(h int32) (int32, error) {
	r, ok := p.readers[h]
	if !ok {
		return EOF, nil
	}

	c, err := r.readByte()
	if err != nil {
		return EOF, ignoreEOF(err)
	}

	if c == '\r' {
		next, err := r.readByte()
		if err == nil && next != '\n' {
			r.unreadByte(next)
		}
		if err != nil && err != io.EOF {
			return EOF, err
		}
		c = '\n'
	}
	return int32(c), nil
}

// Write writes a single byte to the write stream of the given handle.
//
// Writing to a handle without a write stream is a NOP.
func (p *Port) Write(h int32, c byte) error {
	w, ok := p.writers[h]
	if !ok {
		return nil
	}
	_, err := w.Write([]byte{c})
	return err
}

// IsOpen reports whether the given handle owns a read stream, and a
// write stream.
func (p *Port) IsOpen(h int32) (read bool, write bool) {
	_, read = p.readers[h]
	_, write = p.writers[h]
	return read, write
}

// ignoreEOF hides the end of a stream, which isn't an error for us.
func ignoreEOF(err error) error {
	if err == io.EOF {
		return nil
	}
	return err
}
