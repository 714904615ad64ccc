package mako

// KeyState holds the keys currently held down, as a bitmask, and a
// queue of key presses for the guest to consume one at a time.
//
// It is written by the host and read by the guest, and is not safe
// for concurrent use; hosts should update it between frames.
type KeyState struct {
	mask  int32
	queue []int32
}

// Mask returns the keys currently held.
func (k *KeyState) Mask() int32 {
	return k.mask
}

// SetMask replaces the keys currently held.
func (k *KeyState) SetMask(mask int32) {
	k.mask = mask
}

// Press marks the given keys as held.
func (k *KeyState) Press(bits int32) {
	k.mask |= bits
}

// Release marks the given keys as no longer held.
func (k *KeyState) Release(bits int32) {
	k.mask &^= bits
}

// Enqueue adds a key press to the queue.
func (k *KeyState) Enqueue(code int32) {
	k.queue = append(k.queue, code)
}

// Dequeue removes and returns the oldest key press, or -1 when
// there are none.
func (k *KeyState) Dequeue() int32 {
	if len(k.queue) == 0 {
		return -1
	}
	c := k.queue[0]
	k.queue = k.queue[1:]
	return c
}

// Pending returns the number of queued key presses.
func (k *KeyState) Pending() int {
	return len(k.queue)
}
