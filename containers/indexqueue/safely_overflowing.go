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

package indexqueue

import (
	"fmt"
	"unsafe"

	"code.hybscloud.com/atomix"
)

// ErrCapacityTooSmall is returned when a queue is constructed with a
// capacity of zero.
var ErrCapacityTooSmall = fmt.Errorf("indexqueue: capacity must be >= 1")

// ErrRegionTooSmall is returned by the Init constructors when the supplied
// byte region cannot hold capacity+1 slots.
var ErrRegionTooSmall = fmt.Errorf("indexqueue: region too small for requested capacity")

// ErrRoleAlreadyAcquired is returned by AcquireProducer/AcquireConsumer when
// the respective role is already held.
var ErrRoleAlreadyAcquired = fmt.Errorf("indexqueue: role already acquired")

// sofHeader holds every field of a SafelyOverflowingIndexQueue that must be
// visible to both sides of the connection. For a region-backed queue this
// struct itself is placed inside the shared region (not merely the data
// slice): position independence means the whole header, not just the
// payload, has to be something any process can reconstruct a pointer to
// after mapping the same bytes at a different base address.
type sofHeader struct {
	writePosition atomix.Uint64
	readPosition  atomix.Uint64
	hasProducer   atomix.Bool
	hasConsumer   atomix.Bool
}

// SafelyOverflowingIndexQueue is a relocatable single-producer
// single-consumer queue of uint64 values where a push against a full queue
// succeeds by evicting and returning the oldest value instead of failing.
//
// This backs the producer-to-consumer delivery channel of a zero-copy
// connection that has safe overflow enabled: a slow or absent consumer
// never blocks the producer, at the cost of the consumer silently missing
// samples it did not collect in time. The eviction is "safe" in the sense
// that the evicted value is handed back to the producer rather than
// leaked, so the caller can still release whatever resource (e.g. a
// payload segment offset) that value denotes.
type SafelyOverflowingIndexQueue struct {
	hdr      *sofHeader
	data     []uint64
	capacity uint64
}

// SafelyOverflowingIndexQueueMemorySize returns the number of bytes Init
// requires for a queue of the given capacity.
func SafelyOverflowingIndexQueueMemorySize(capacity int) int {
	return int(unsafe.Sizeof(sofHeader{})) + (capacity+1)*8
}

// NewSafelyOverflowingIndexQueue creates an owning queue backed by
// regular Go-managed memory. Use this for in-process queues that never
// need to be shared across a process boundary.
func NewSafelyOverflowingIndexQueue(capacity int) (*SafelyOverflowingIndexQueue, error) {
	if capacity < 1 {
		return nil, ErrCapacityTooSmall
	}
	return &SafelyOverflowingIndexQueue{
		hdr:      &sofHeader{},
		data:     make([]uint64, capacity+1),
		capacity: uint64(capacity),
	}, nil
}

// InitSafelyOverflowingIndexQueue constructs a queue whose header and slot
// array are both views over region, which must already be zeroed and must
// outlive the returned queue. This is the constructor used when the queue
// lives inside a shared-memory segment: any process that maps the same
// bytes and calls InitSafelyOverflowingIndexQueue again obtains a queue
// that aliases the same write_position/read_position/role state and the
// same slot contents, with no pointer fixup required because region is
// reinterpreted relative to its own start, never through an absolute
// address baked in at creation time.
func InitSafelyOverflowingIndexQueue(region []byte, capacity int) (*SafelyOverflowingIndexQueue, error) {
	if capacity < 1 {
		return nil, ErrCapacityTooSmall
	}
	need := SafelyOverflowingIndexQueueMemorySize(capacity)
	if len(region) < need {
		return nil, ErrRegionTooSmall
	}
	hdrSize := int(unsafe.Sizeof(sofHeader{}))
	hdr := (*sofHeader)(unsafe.Pointer(unsafe.SliceData(region)))
	dataPtr := (*uint64)(unsafe.Pointer(unsafe.SliceData(region[hdrSize:])))
	return &SafelyOverflowingIndexQueue{
		hdr:      hdr,
		data:     unsafe.Slice(dataPtr, capacity+1),
		capacity: uint64(capacity),
	}, nil
}

// Capacity returns the number of values the queue can hold before a push
// starts evicting.
func (q *SafelyOverflowingIndexQueue) Capacity() int {
	return int(q.capacity)
}

func (q *SafelyOverflowingIndexQueue) at(position uint64) uint64 {
	return position % (q.capacity + 1)
}

// AcquireProducer grants exclusive producer access. It must be called
// exactly once per queue lifetime (typically by whichever side of the
// connection creates the shared memory) before Push is used; a second
// caller attempting to acquire the role observes ErrRoleAlreadyAcquired.
func (q *SafelyOverflowingIndexQueue) AcquireProducer() error {
	if !q.hdr.hasProducer.CompareAndSwapAcqRel(false, true) {
		return ErrRoleAlreadyAcquired
	}
	return nil
}

// AcquireConsumer grants exclusive consumer access, mirroring
// AcquireProducer.
func (q *SafelyOverflowingIndexQueue) AcquireConsumer() error {
	if !q.hdr.hasConsumer.CompareAndSwapAcqRel(false, true) {
		return ErrRoleAlreadyAcquired
	}
	return nil
}

// Push writes value into the queue. When the queue was not full, Push
// returns (0, false): nothing was evicted. When the queue was full, the
// oldest value is evicted to make room, Push returns (evicted, true), and
// the caller is responsible for reclaiming whatever resource evicted
// denotes.
//
// Producer-only; must not be called concurrently with another Push.
//
// SYNC POINT W: write_position is stored with Release ordering after the
// slot write, so a consumer that observes the new write_position via
// Acquire is guaranteed to observe the slot contents too.
func (q *SafelyOverflowingIndexQueue) Push(value uint64) (evicted uint64, didEvict bool) {
	writePosition := q.hdr.writePosition.LoadAcquire()
	readPosition := q.hdr.readPosition.LoadRelaxed()
	isFull := writePosition == readPosition+q.capacity

	q.data[q.at(writePosition)] = value
	q.hdr.writePosition.StoreRelease(writePosition + 1)

	if !isFull {
		return 0, false
	}

	// SYNC POINT R: only the producer ever advances read_position when the
	// queue is full (the consumer only advances it via Pop, which can only
	// shrink the queue). The CAS therefore either succeeds -- meaning no
	// concurrent Pop raced us, and readPosition's slot is ours to evict --
	// or fails because a concurrent Pop already consumed that slot, in
	// which case there is nothing left to evict.
	if q.hdr.readPosition.CompareAndSwapAcqRel(readPosition, readPosition+1) {
		return q.data[q.at(readPosition)], true
	}
	return 0, false
}

// Pop removes and returns the oldest value, or (0, false) if the queue is
// empty.
//
// Consumer-only; must not be called concurrently with another Pop.
func (q *SafelyOverflowingIndexQueue) Pop() (value uint64, ok bool) {
	readPosition := q.hdr.readPosition.LoadRelaxed()
	if readPosition == q.hdr.writePosition.LoadAcquire() {
		return 0, false
	}

	for {
		value = q.data[q.at(readPosition)]
		if q.hdr.readPosition.CompareAndSwapAcqRel(readPosition, readPosition+1) {
			return value, true
		}
		readPosition = q.hdr.readPosition.LoadAcquire()
	}
}

// IsEmpty reports whether the queue currently holds no values. Like Len
// and IsFull, this is a snapshot: in the presence of a concurrent
// producer or consumer the true state may have already changed by the
// time the caller observes the result.
func (q *SafelyOverflowingIndexQueue) IsEmpty() bool {
	_, empty, _ := q.snapshot()
	return empty
}

// IsFull reports whether the next Push would evict a value.
func (q *SafelyOverflowingIndexQueue) IsFull() bool {
	_, _, full := q.snapshot()
	return full
}

// Len returns the number of values currently in the queue.
func (q *SafelyOverflowingIndexQueue) Len() int {
	n, _, _ := q.snapshot()
	return n
}

// snapshot reads write_position and read_position consistently, retrying
// if a concurrent Pop or overflowing Push advanced read_position while
// write_position was being loaded.
func (q *SafelyOverflowingIndexQueue) snapshot() (length int, empty bool, full bool) {
	for {
		readPosition := q.hdr.readPosition.LoadAcquire()
		writePosition := q.hdr.writePosition.LoadAcquire()
		if q.hdr.readPosition.LoadAcquire() != readPosition {
			continue
		}
		n := writePosition - readPosition
		return int(n), n == 0, n == q.capacity
	}
}
