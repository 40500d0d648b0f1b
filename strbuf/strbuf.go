// Package strbuf implements the arena-backed growable character buffer
// used to accumulate emitted IR and assembly text (spec §3 "String
// buffer"). Unlike strings.Builder, its storage lives inside a caller-owned
// arena.Arena rather than growing its own independent backing array, so the
// whole buffer is torn down when the arena is reset or destroyed.
package strbuf

import "cleric/arena"

// minCapacity is the smallest backing allocation a fresh Buffer requests.
const minCapacity = 32

// Buffer is a growable, arena-backed accumulator of bytes.
type Buffer struct {
	a    *arena.Arena
	data []byte // len(data) == capacity; buf[:length] is live content
	n    int    // length of live content
}

// New creates a Buffer that allocates its backing storage from a.
func New(a *arena.Arena) *Buffer {
	return &Buffer{a: a}
}

// Len returns the number of live bytes appended so far.
func (b *Buffer) Len() int { return b.n }

// grow ensures at least need more bytes of capacity are available, plus one
// trailing byte reserved for the NUL terminator, doubling (or more) on
// growth as spec §3 requires. Returns false if the arena can't satisfy the
// request.
func (b *Buffer) grow(need int) bool {
	if b.n+need+1 <= len(b.data) {
		return true
	}
	newCap := len(b.data) * 2
	if newCap < minCapacity {
		newCap = minCapacity
	}
	for newCap < b.n+need+1 {
		newCap *= 2
	}
	fresh, ok := b.a.Allocate(newCap)
	if !ok {
		return false
	}
	copy(fresh, b.data[:b.n])
	b.data = fresh
	return true
}

// AppendString appends s verbatim. Returns false on arena exhaustion,
// leaving the buffer's prior content untouched.
func (b *Buffer) AppendString(s string) bool {
	if !b.grow(len(s)) {
		return false
	}
	copy(b.data[b.n:], s)
	b.n += len(s)
	return true
}

// AppendByte appends a single byte.
func (b *Buffer) AppendByte(c byte) bool {
	if !b.grow(1) {
		return false
	}
	b.data[b.n] = c
	b.n++
	return true
}

// Reset truncates the buffer's live content to zero without releasing its
// backing arena allocation.
func (b *Buffer) Reset() { b.n = 0 }

// String returns the buffer's live content. The backing storage always has
// one extra byte of capacity reserved past the live content (see grow),
// which CString zeroes on demand to hand a NUL-terminated view to callers
// that need one (e.g. writing to the system assembler).
func (b *Buffer) String() string {
	if b.n == 0 {
		return ""
	}
	return string(b.data[:b.n])
}

// CString returns a NUL-terminated read-only view of the buffer's content,
// sharing the buffer's arena-backed storage. It returns false if the arena
// can't satisfy the trailing NUL byte, in which case the returned slice
// must not be relied upon.
func (b *Buffer) CString() ([]byte, bool) {
	if !b.grow(0) {
		return nil, false
	}
	b.data[b.n] = 0
	return b.data[:b.n+1], true
}
