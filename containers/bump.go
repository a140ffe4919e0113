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

	"code.hybscloud.com/atomix"
)

// BumpAllocator hands out non-overlapping byte ranges from a fixed region
// in monotonically increasing order. It never reclaims: the region is torn
// down as a whole (segment unmap, connection file removal), not slot by
// slot. This is the allocation discipline a static shared-memory layout
// needs — a management header followed by N relocatable containers laid
// out back to back, every offset fixed at creation time.
//
// BumpAllocator itself only does bookkeeping; it does not own the backing
// bytes. Callers pass a []byte view (typically the memory-mapped region)
// and receive sub-slices of it.
type BumpAllocator struct {
	region []byte
	offset atomix.Uint64
}

// NewBumpAllocator wraps region for bump allocation. The caller retains
// ownership of region's lifetime.
func NewBumpAllocator(region []byte) *BumpAllocator {
	return &BumpAllocator{region: region}
}

// Cap returns the total size of the wrapped region in bytes.
func (a *BumpAllocator) Cap() int { return len(a.region) }

// Used returns the number of bytes already handed out.
func (a *BumpAllocator) Used() int { return int(a.offset.LoadAcquire()) }

// Allocate reserves size bytes aligned to align (which must be a power of
// two) and returns the corresponding sub-slice of the wrapped region.
// Concurrent callers (e.g. several relocatable containers initializing in
// parallel during segment construction) each get a disjoint range via a
// CAS loop; init layouts built from a single goroutine never contend.
func (a *BumpAllocator) Allocate(size int, align int) ([]byte, error) {
	if align <= 0 || align&(align-1) != 0 {
		return nil, fmt.Errorf("containers: alignment %d is not a power of two", align)
	}
	for {
		cur := a.offset.LoadAcquire()
		aligned := alignUp(cur, uint64(align))
		next := aligned + uint64(size)
		if next > uint64(len(a.region)) {
			return nil, fmt.Errorf("containers: bump allocator exhausted: need %d bytes at offset %d, region is %d bytes", size, aligned, len(a.region))
		}
		if a.offset.CompareAndSwapAcqRel(cur, next) {
			return a.region[aligned:next], nil
		}
	}
}

// MemorySize returns the number of bytes a bump allocator-backed layout of
// the given sizes would require, sizes[i] aligned to aligns[i] (or to 1
// where aligns has no positive entry at that index).
func MemorySize(sizes []int, aligns []int) int {
	var offset uint64
	for i, size := range sizes {
		align := uint64(1)
		if i < len(aligns) && aligns[i] > 0 {
			align = uint64(aligns[i])
		}
		offset = alignUp(offset, align) + uint64(size)
	}
	return int(offset)
}

func alignUp(v uint64, align uint64) uint64 {
	return (v + align - 1) &^ (align - 1)
}
