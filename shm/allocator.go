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

package shm

import (
	"fmt"
	"sync"
)

// ErrOutOfMemory is returned by an Allocator when no free block can
// satisfy a request.
var ErrOutOfMemory = fmt.Errorf("shm: data segment has no free block large enough for this request")

// Allocator hands out and reclaims fixed-lifetime byte ranges (expressed
// as offsets, not pointers, so they remain meaningful to a process that
// mapped the same segment at a different base address) from within a
// data segment's payload region. A publisher loans a sample by
// allocating; the sample is returned to the pool when every
// subscriber holding a borrow has released it.
type Allocator interface {
	// Allocate reserves size bytes aligned to align and returns the byte
	// offset of the reservation, relative to the region this allocator
	// was constructed over.
	Allocate(size, align int) (offset int, err error)
	// Deallocate returns a previously allocated block to the pool.
	Deallocate(offset, size int)
}

// PowerOfTwoAllocator partitions its region into a fixed ladder of
// power-of-two bucket sizes (a simplified buddy allocator without
// splitting/coalescing): a request is rounded up to the smallest bucket
// that fits it, and each bucket tracks its own free list of offsets.
// This trades some fragmentation for O(1) allocate/deallocate and a
// bounded number of distinct sample sizes, which matches the way a
// publish-subscribe service's samples are usually homogeneous in size.
type PowerOfTwoAllocator struct {
	mu        sync.Mutex
	region    int
	next      int
	buckets   map[int][]int // bucket size -> free offsets
	allocated map[int]int   // offset -> bucket size, for Deallocate
}

// NewPowerOfTwoAllocator creates an allocator over a region of the given
// size in bytes.
func NewPowerOfTwoAllocator(regionSize int) *PowerOfTwoAllocator {
	return &PowerOfTwoAllocator{
		region:    regionSize,
		buckets:   make(map[int][]int),
		allocated: make(map[int]int),
	}
}

func bucketSize(size int) int {
	b := 1
	for b < size {
		b <<= 1
	}
	return b
}

// Allocate implements Allocator.
func (a *PowerOfTwoAllocator) Allocate(size, align int) (int, error) {
	if align < 1 {
		align = 1
	}
	bucket := bucketSize(size)
	if align > bucket {
		bucket = bucketSize(align)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if free := a.buckets[bucket]; len(free) > 0 {
		offset := free[len(free)-1]
		a.buckets[bucket] = free[:len(free)-1]
		a.allocated[offset] = bucket
		return offset, nil
	}

	aligned := alignUpInt(a.next, bucket)
	if aligned+bucket > a.region {
		return 0, ErrOutOfMemory
	}
	a.next = aligned + bucket
	a.allocated[aligned] = bucket
	return aligned, nil
}

// Deallocate implements Allocator.
func (a *PowerOfTwoAllocator) Deallocate(offset, size int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	bucket, ok := a.allocated[offset]
	if !ok {
		return
	}
	delete(a.allocated, offset)
	a.buckets[bucket] = append(a.buckets[bucket], offset)
}

func alignUpInt(v, align int) int {
	if align <= 1 {
		return v
	}
	return (v + align - 1) &^ (align - 1)
}

// freeBlock is one entry of a BestFitAllocator's free list.
type freeBlock struct {
	offset, size int
}

// BestFitAllocator scans its free list for the smallest block that still
// satisfies a request, splitting it if it is larger than needed and
// coalescing adjacent free blocks on Deallocate. It uses more CPU per
// allocation than PowerOfTwoAllocator but wastes less space on a segment
// whose sample sizes vary widely, which matches how a request-response
// service's payloads (request vs. response, often very differently
// shaped) tend to look.
type BestFitAllocator struct {
	mu    sync.Mutex
	free  []freeBlock
	inUse map[int]int // offset -> size
}

// NewBestFitAllocator creates an allocator over a region of the given
// size in bytes.
func NewBestFitAllocator(regionSize int) *BestFitAllocator {
	return &BestFitAllocator{
		free:  []freeBlock{{offset: 0, size: regionSize}},
		inUse: make(map[int]int),
	}
}

// Allocate implements Allocator.
func (a *BestFitAllocator) Allocate(size, align int) (int, error) {
	if align < 1 {
		align = 1
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	bestIdx := -1
	bestWaste := -1
	bestOffset := 0
	for i, block := range a.free {
		aligned := alignUpInt(block.offset, align)
		padding := aligned - block.offset
		if padding+size > block.size {
			continue
		}
		waste := block.size - size - padding
		if bestIdx == -1 || waste < bestWaste {
			bestIdx, bestWaste, bestOffset = i, waste, aligned
		}
	}
	if bestIdx == -1 {
		return 0, ErrOutOfMemory
	}

	block := a.free[bestIdx]
	a.free = append(a.free[:bestIdx], a.free[bestIdx+1:]...)

	if leading := bestOffset - block.offset; leading > 0 {
		a.free = append(a.free, freeBlock{offset: block.offset, size: leading})
	}
	if trailing := block.size - (bestOffset - block.offset) - size; trailing > 0 {
		a.free = append(a.free, freeBlock{offset: bestOffset + size, size: trailing})
	}

	a.inUse[bestOffset] = size
	return bestOffset, nil
}

// Deallocate implements Allocator, coalescing the freed block with any
// immediately adjacent free blocks.
func (a *BestFitAllocator) Deallocate(offset, size int) {
	a.mu.Lock()
	defer a.mu.Unlock()

	delete(a.inUse, offset)
	block := freeBlock{offset: offset, size: size}

	merged := true
	for merged {
		merged = false
		for i, f := range a.free {
			switch {
			case f.offset+f.size == block.offset:
				block.offset = f.offset
				block.size += f.size
			case block.offset+block.size == f.offset:
				block.size += f.size
			default:
				continue
			}
			a.free = append(a.free[:i], a.free[i+1:]...)
			merged = true
			break
		}
	}
	a.free = append(a.free, block)
}
