// Copyright (c) 2026 Contributors to the Eclipse Foundation
//
// See the NOTICE file(s) distributed with this work for additional
// information regarding copyright ownership.
//
// This program and the accompanying materials are made available under the
// terms of the Apache Software License 2.0 which is available at
// https://www.apache.org/licenses/LICENSE-2.0, or the MIT license
// which is available at https://opensource.org/licenses/MIT.
//
// SPDX-License-Identifier: Apache-2.0 OR MIT

package containers

import "fmt"

// ErrWouldExceedCapacity is returned by any FixedByteString mutation that
// would grow the string past its fixed capacity.
var ErrWouldExceedCapacity = fmt.Errorf("containers: content would exceed fixed capacity")

// MaxByteStringCapacity bounds FixedByteString's embedded array. It is
// generous for every name type this module defines (service names, node
// names, attribute keys and values are all well under this bound), and
// fixed so the type has a single, relocatable, compile-time-sized layout
// instead of a heap-allocated backing array.
const MaxByteStringCapacity = 256

// FixedByteString is a relocatable, fixed-capacity byte string. Its backing
// array is embedded in the struct (no heap pointer), so a FixedByteString
// copied verbatim into shared memory and mapped at a different address in
// another process is immediately usable: there is nothing to fix up.
//
// Names that cross process boundaries in this module — service names, node
// names, port tags — are all FixedByteString so they can live inside
// memory-mapped configuration stores (see package config) without any
// serialization step.
type FixedByteString struct {
	data [MaxByteStringCapacity]byte
	len  uint32
	cap  uint32
}

// NewFixedByteString creates an empty string with the given capacity.
// Panics if capacity exceeds MaxByteStringCapacity.
func NewFixedByteString(capacity int) *FixedByteString {
	if capacity < 0 || capacity > MaxByteStringCapacity {
		panic(fmt.Sprintf("containers: capacity %d exceeds maximum %d", capacity, MaxByteStringCapacity))
	}
	return &FixedByteString{cap: uint32(capacity)}
}

// FixedByteStringFrom creates a string with the given capacity,
// pre-populated with b. Fails with ErrWouldExceedCapacity if b is longer
// than capacity.
func FixedByteStringFrom(b []byte, capacity int) (*FixedByteString, error) {
	s := NewFixedByteString(capacity)
	if err := s.PushBytes(b); err != nil {
		return nil, err
	}
	return s, nil
}

// Cap returns the fixed capacity in bytes.
func (s *FixedByteString) Cap() int { return int(s.cap) }

// Len returns the current length in bytes.
func (s *FixedByteString) Len() int { return int(s.len) }

// Bytes returns the string's content. The returned slice aliases the
// string's internal storage and must not be retained past the next
// mutation.
func (s *FixedByteString) Bytes() []byte { return s.data[:s.len] }

// String returns a copy of the content as a Go string.
func (s *FixedByteString) String() string { return string(s.Bytes()) }

// PushBytes appends b to the string. Returns ErrWouldExceedCapacity and
// leaves the string unmodified if b does not fit.
func (s *FixedByteString) PushBytes(b []byte) error {
	if uint32(len(b)) > s.cap-s.len {
		return ErrWouldExceedCapacity
	}
	copy(s.data[s.len:], b)
	s.len += uint32(len(b))
	return nil
}

// SetBytes clears the string and sets its content to b.
func (s *FixedByteString) SetBytes(b []byte) error {
	if uint32(len(b)) > s.cap {
		return ErrWouldExceedCapacity
	}
	s.len = 0
	return s.PushBytes(b)
}

// Clear empties the string without changing its capacity.
func (s *FixedByteString) Clear() { s.len = 0 }

// Equal reports whether s and other have identical content.
func (s *FixedByteString) Equal(other *FixedByteString) bool {
	return string(s.Bytes()) == string(other.Bytes())
}
