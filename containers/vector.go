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

import (
	"fmt"
	"unsafe"

	"code.hybscloud.com/atomix"
)

// ErrVectorFull is returned by FixedVec.Push when the vector is at capacity.
var ErrVectorFull = fmt.Errorf("containers: vector is at capacity")

// vecHeader holds a FixedVec's length. For a region-backed vector this
// struct is placed inside the shared region itself, alongside data,
// rather than as a plain Go field local to one process's handle: a second
// process calling InitFixedVec over the same bytes must observe pushes
// the first process already made, the same relocation guarantee
// containers/indexqueue's header provides for queue positions.
type vecHeader struct {
	length atomix.Uint64
}

// FixedVec is a relocatable, fixed-capacity vector. A FixedVec built with
// InitFixedVec keeps its length header and its elements inside the
// caller-supplied region, and that region holds no pointers, so the same
// bytes can be placed in shared memory and mapped at different addresses
// by different processes. The FixedVec handle itself (a header pointer
// plus a slice over the elements) is process-local; NewFixedVec backs
// both with ordinary Go memory instead.
//
// FixedVec is used for small, bounded collections with a capacity fixed at
// construction — the dynamic config's per-role port-record arrays (see
// package config) are the canonical use.
type FixedVec[T any] struct {
	hdr  *vecHeader
	data []T
}

// NewFixedVec creates an empty, process-local FixedVec with the given
// capacity. The backing array is a regular Go slice of exactly cap
// elements; use this constructor for ordinary in-process use.
func NewFixedVec[T any](capacity int) *FixedVec[T] {
	return &FixedVec[T]{hdr: &vecHeader{}, data: make([]T, capacity)}
}

// InitFixedVec builds a FixedVec whose header and backing storage are both
// views over region, a byte range obtained from a BumpAllocator over a
// memory-mapped segment. This is the relocatable constructor: region must
// be at least FixedVecMemorySize[T](capacity) bytes and already zeroed.
func InitFixedVec[T any](region []byte, capacity int) (*FixedVec[T], error) {
	need := FixedVecMemorySize[T](capacity)
	if len(region) < need {
		return nil, fmt.Errorf("containers: region too small for FixedVec: need %d bytes, have %d", need, len(region))
	}
	hdrSize := int(unsafe.Sizeof(vecHeader{}))
	hdr := (*vecHeader)(unsafe.Pointer(unsafe.SliceData(region)))
	data := unsafeSliceFromBytes[T](region[hdrSize:], capacity)
	return &FixedVec[T]{hdr: hdr, data: data}, nil
}

// FixedVecMemorySize returns the number of bytes InitFixedVec needs for a
// vector of the given capacity.
func FixedVecMemorySize[T any](capacity int) int {
	return int(unsafe.Sizeof(vecHeader{})) + fixedVecElemSize[T]()*capacity
}

// Cap returns the vector's fixed capacity.
func (v *FixedVec[T]) Cap() int { return len(v.data) }

// Len returns the number of elements currently stored.
func (v *FixedVec[T]) Len() int { return int(v.hdr.length.LoadAcquire()) }

// IsEmpty reports whether the vector holds no elements.
func (v *FixedVec[T]) IsEmpty() bool { return v.Len() == 0 }

// IsFull reports whether the vector is at capacity.
func (v *FixedVec[T]) IsFull() bool { return v.Len() == len(v.data) }

// Push appends value. Returns ErrVectorFull if the vector is at capacity.
//
// FixedVec does not itself arbitrate between concurrent writers (the
// dynamic config store, its one caller that spans multiple processes,
// leaves serializing Register/Deregister to its own callers); Push is
// safe to call from a single writer at a time, with any number of
// concurrent readers.
func (v *FixedVec[T]) Push(value T) error {
	n := v.hdr.length.LoadRelaxed()
	if int(n) == len(v.data) {
		return ErrVectorFull
	}
	v.data[n] = value
	v.hdr.length.StoreRelease(n + 1)
	return nil
}

// At returns the element at index i. Panics if i is out of range [0, Len).
func (v *FixedVec[T]) At(i int) *T {
	n := v.Len()
	if i < 0 || i >= n {
		panic(fmt.Sprintf("containers: index %d out of range [0, %d)", i, n))
	}
	return &v.data[i]
}

// RemoveSwap removes the element at index i by swapping it with the last
// element and shrinking the length by one (O(1), order not preserved). This
// is the discipline the dynamic config roster uses when a port deregisters:
// callers only ever need presence, not position.
func (v *FixedVec[T]) RemoveSwap(i int) {
	n := v.Len()
	if i < 0 || i >= n {
		panic(fmt.Sprintf("containers: index %d out of range [0, %d)", i, n))
	}
	last := n - 1
	v.data[i] = v.data[last]
	var zero T
	v.data[last] = zero
	v.hdr.length.StoreRelease(uint64(last))
}

// Each calls f for every stored element in order. f returning false stops
// the iteration early.
func (v *FixedVec[T]) Each(f func(i int, value *T) bool) {
	n := v.Len()
	for i := 0; i < n; i++ {
		if !f(i, &v.data[i]) {
			return
		}
	}
}

// Clear empties the vector without changing its capacity.
func (v *FixedVec[T]) Clear() {
	n := v.Len()
	var zero T
	for i := 0; i < n; i++ {
		v.data[i] = zero
	}
	v.hdr.length.StoreRelease(0)
}
