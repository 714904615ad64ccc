// Package memory provides the flat, word-addressed RAM within which
// the virtual machine executes its programs.
//
// Every cell is a signed 32-bit integer, and the low addresses double
// as the registers and I/O ports of the machine.  The memory is sized
// once, when it is created, and is never resized.
package memory

import (
	"encoding/binary"
	"fmt"
	"os"
)

// Memory provides a fixed-size array of 32-bit words.
type Memory struct {
	buf []int32
}

// New returns memory of the given number of words, all zero.
func New(size int) *Memory {
	return &Memory{buf: make([]int32, size)}
}

// FromSlice wraps the given words as memory.
//
// The slice is used directly, not copied, so all writes made by the
// machine are visible to the caller.
func FromSlice(words []int32) *Memory {
	return &Memory{buf: words}
}

// Len returns the number of words of memory.
func (m *Memory) Len() int {
	return len(m.buf)
}

// Set sets the word at addr of memory.
//
// Writes outside the memory bounds are discarded.
func (m *Memory) Set(addr int32, value int32) {
	if addr < 0 || int(addr) >= len(m.buf) {
		return
	}
	m.buf[addr] = value
}

// Get returns the word at addr of memory.
//
// Reads outside the memory bounds return zero.
func (m *Memory) Get(addr int32) int32 {
	if addr < 0 || int(addr) >= len(m.buf) {
		return 0
	}
	return m.buf[addr]
}

// SetRange copies words from the given data to the specified
// starting address in RAM.
func (m *Memory) SetRange(addr int32, data ...int32) {
	for _, v := range data {
		m.Set(addr, v)
		addr++
	}
}

// FillRange fills an area of memory with the given word
func (m *Memory) FillRange(addr int32, size int, value int32) {
	for size > 0 {
		m.Set(addr, value)
		addr++
		size--
	}
}

// GetRange returns the contents of a given range
func (m *Memory) GetRange(addr int32, size int) []int32 {
	var ret []int32
	for size > 0 {
		ret = append(ret, m.Get(addr))
		addr++
		size--
	}
	return ret
}

// String reads a string from memory, one character per word, stopping
// at the first zero word or the end of memory.
//
// No decoding is performed; each word is taken as a character code.
func (m *Memory) String(addr int32) string {
	var ret []rune
	for addr >= 0 && int(addr) < len(m.buf) && m.buf[addr] != 0 {
		ret = append(ret, rune(uint16(m.buf[addr])))
		addr++
	}
	return string(ret)
}

// LoadFile loads a program image from disk.
//
// An image is a sequence of big-endian 32-bit words, which are placed
// at address zero.  The resulting memory holds at least minSize words,
// and more if the image is larger.
func LoadFile(name string, minSize int) (*Memory, error) {

	// Load the binary
	prog, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}

	if len(prog)%4 != 0 {
		return nil, fmt.Errorf("image %s has length %d, which is not a whole number of words", name, len(prog))
	}

	words := len(prog) / 4
	size := words
	if minSize > size {
		size = minSize
	}

	m := New(size)
	for i := 0; i < words; i++ {
		m.buf[i] = int32(binary.BigEndian.Uint32(prog[i*4:]))
	}

	return m, nil
}
