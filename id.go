package uikit

import (
	"encoding/binary"
	"errors"
)

// ID uniquely identifies a widget for state persistence.
// IDs are stable across frames: the same scope stack and the same local key
// always hash to the same ID, which is what makes cross-frame StatePool
// lookups meaningful.
type ID uint32

// FNV-1a parameters. IDs are 32-bit FNV-1a hashes seeded by the enclosing
// scope, folding the local key in one byte at a time.
const (
	idSeed  ID = 2166136261
	idPrime ID = 16777619
)

// ErrIDStackUnderflow is returned by Pop when the scope stack is empty.
// An unbalanced Push/Pop pair is a programming error in the widget tree;
// it is surfaced immediately rather than silently corrupting identities.
var ErrIDStackUnderflow = errors.New("uikit: id stack underflow")

// IDStack holds the nested identity scopes for one frame's widget traversal.
// It is owned by the frame context and passed explicitly - never a hidden
// package-level singleton. Push/Pop must balance within a frame.
type IDStack struct {
	stack []ID
	last  ID
}

// Current returns the top of the scope stack, or the fixed seed when the
// stack is empty. This is the hashing seed for the next identity computed.
func (s *IDStack) Current() ID {
	if len(s.stack) > 0 {
		return s.stack[len(s.stack)-1]
	}
	return idSeed
}

// Push makes id the enclosing scope for subsequent identity computations.
func (s *IDStack) Push(id ID) {
	s.stack = append(s.stack, id)
}

// Pop removes the top scope. Popping an empty stack returns
// ErrIDStackUnderflow and leaves the stack unchanged.
func (s *IDStack) Pop() error {
	if len(s.stack) == 0 {
		return ErrIDStackUnderflow
	}
	s.stack = s.stack[:len(s.stack)-1]
	return nil
}

// Depth returns the current nesting depth.
func (s *IDStack) Depth() int {
	return len(s.stack)
}

// Reset empties the stack. Called by the frame context at frame start.
func (s *IDStack) Reset() {
	s.stack = s.stack[:0]
	s.last = 0
}

// LastID returns the identity most recently produced by any of the From*
// methods. Callers use this to learn what ID a just-rendered widget received.
func (s *IDStack) LastID() ID {
	return s.last
}

// fold mixes one byte into the running hash.
func fold(h ID, b byte) ID {
	return (h ^ ID(b)) * idPrime
}

// foldU32 mixes a 32-bit value into the hash, big-endian.
func foldU32(h ID, v uint32) ID {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], v)
	for _, b := range buf {
		h = fold(h, b)
	}
	return h
}

// IDFromString computes an identity from a string key, folding each code
// point as a big-endian 32-bit value into the current scope's hash.
func (s *IDStack) IDFromString(key string) ID {
	h := s.Current()
	for _, r := range key {
		h = foldU32(h, uint32(r))
	}
	s.last = h
	return h
}

// IDFromInt computes an identity from an integer key.
// Useful for items in arrays/slices.
func (s *IDStack) IDFromInt(key uint32) ID {
	h := foldU32(s.Current(), key)
	s.last = h
	return h
}

// IDFromBytes computes an identity from a raw byte key.
func (s *IDStack) IDFromBytes(key []byte) ID {
	h := s.Current()
	for _, b := range key {
		h = fold(h, b)
	}
	s.last = h
	return h
}

// IDFromHandle computes an identity from an address surrogate.
// Addresses are not stable across allocations, so handle-derived IDs are
// only suitable for intra-frame lookups that are never persisted; widgets
// whose state must survive frames should use a string or integer key.
func (s *IDStack) IDFromHandle(handle uintptr) ID {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(handle))
	h := s.Current()
	for _, b := range buf {
		h = fold(h, b)
	}
	s.last = h
	return h
}

// PushIDFromString computes an identity from a string key and pushes it as
// the new scope in one call.
func (s *IDStack) PushIDFromString(key string) ID {
	id := s.IDFromString(key)
	s.Push(id)
	return id
}

// PushIDFromInt computes an identity from an integer key and pushes it.
func (s *IDStack) PushIDFromInt(key uint32) ID {
	id := s.IDFromInt(key)
	s.Push(id)
	return id
}

// PushIDFromBytes computes an identity from a byte key and pushes it.
func (s *IDStack) PushIDFromBytes(key []byte) ID {
	id := s.IDFromBytes(key)
	s.Push(id)
	return id
}
