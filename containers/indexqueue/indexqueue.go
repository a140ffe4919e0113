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
	"unsafe"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
)

// ErrWouldBlock is returned by Push when the queue is full. It is an
// alias for [iox.ErrWouldBlock] for ecosystem consistency with package
// lockfree.
var ErrWouldBlock = iox.ErrWouldBlock

// iqHeader holds every field of an IndexQueue that must be visible to
// both sides of the connection; see sofHeader for why this lives inside
// the shared region itself for a region-backed queue.
type iqHeader struct {
	writePosition atomix.Uint64
	readPosition  atomix.Uint64
	hasProducer   atomix.Bool
	hasConsumer   atomix.Bool
}

// IndexQueue is the non-overflowing sibling of SafelyOverflowingIndexQueue:
// Push fails instead of evicting when the queue is full. It backs the
// consumer-to-producer return channel of a zero-copy connection, where a
// dropped return value would leak a payload slot for the remaining
// lifetime of the connection -- unacceptable regardless of how the
// delivery channel's overflow policy is configured.
type IndexQueue struct {
	hdr      *iqHeader
	data     []uint64
	capacity uint64
}

// IndexQueueMemorySize returns the number of bytes Init requires for a
// queue of the given capacity.
func IndexQueueMemorySize(capacity int) int {
	return int(unsafe.Sizeof(iqHeader{})) + (capacity+1)*8
}

// NewIndexQueue creates an owning queue backed by regular Go-managed
// memory.
func NewIndexQueue(capacity int) (*IndexQueue, error) {
	if capacity < 1 {
		return nil, ErrCapacityTooSmall
	}
	return &IndexQueue{
		hdr:      &iqHeader{},
		data:     make([]uint64, capacity+1),
		capacity: uint64(capacity),
	}, nil
}

// InitIndexQueue constructs a queue whose header and slot array are both
// views over region; see InitSafelyOverflowingIndexQueue for the
// relocation guarantee this provides.
func InitIndexQueue(region []byte, capacity int) (*IndexQueue, error) {
	if capacity < 1 {
		return nil, ErrCapacityTooSmall
	}
	need := IndexQueueMemorySize(capacity)
	if len(region) < need {
		return nil, ErrRegionTooSmall
	}
	hdrSize := int(unsafe.Sizeof(iqHeader{}))
	hdr := (*iqHeader)(unsafe.Pointer(unsafe.SliceData(region)))
	dataPtr := (*uint64)(unsafe.Pointer(unsafe.SliceData(region[hdrSize:])))
	return &IndexQueue{
		hdr:      hdr,
		data:     unsafe.Slice(dataPtr, capacity+1),
		capacity: uint64(capacity),
	}, nil
}

// Capacity returns the number of values the queue can hold.
func (q *IndexQueue) Capacity() int {
	return int(q.capacity)
}

func (q *IndexQueue) at(position uint64) uint64 {
	return position % (q.capacity + 1)
}

// AcquireProducer grants exclusive producer access; see
// SafelyOverflowingIndexQueue.AcquireProducer.
func (q *IndexQueue) AcquireProducer() error {
	if !q.hdr.hasProducer.CompareAndSwapAcqRel(false, true) {
		return ErrRoleAlreadyAcquired
	}
	return nil
}

// AcquireConsumer grants exclusive consumer access; see
// SafelyOverflowingIndexQueue.AcquireConsumer.
func (q *IndexQueue) AcquireConsumer() error {
	if !q.hdr.hasConsumer.CompareAndSwapAcqRel(false, true) {
		return ErrRoleAlreadyAcquired
	}
	return nil
}

// Push writes value into the queue, returning ErrWouldBlock if the queue
// is already full. Producer-only.
func (q *IndexQueue) Push(value uint64) error {
	writePosition := q.hdr.writePosition.LoadRelaxed()
	readPosition := q.hdr.readPosition.LoadAcquire()
	if writePosition == readPosition+q.capacity {
		return ErrWouldBlock
	}
	q.data[q.at(writePosition)] = value
	q.hdr.writePosition.StoreRelease(writePosition + 1)
	return nil
}

// Pop removes and returns the oldest value, or (0, false) if the queue is
// empty. Consumer-only.
func (q *IndexQueue) Pop() (value uint64, ok bool) {
	readPosition := q.hdr.readPosition.LoadRelaxed()
	if readPosition == q.hdr.writePosition.LoadAcquire() {
		return 0, false
	}
	value = q.data[q.at(readPosition)]
	q.hdr.readPosition.StoreRelease(readPosition + 1)
	return value, true
}

// IsEmpty reports whether the queue currently holds no values.
func (q *IndexQueue) IsEmpty() bool {
	return q.hdr.readPosition.LoadAcquire() == q.hdr.writePosition.LoadAcquire()
}

// IsFull reports whether the next Push would fail.
func (q *IndexQueue) IsFull() bool {
	return q.hdr.writePosition.LoadAcquire()-q.hdr.readPosition.LoadAcquire() == q.capacity
}

// Len returns the number of values currently in the queue.
func (q *IndexQueue) Len() int {
	return int(q.hdr.writePosition.LoadAcquire() - q.hdr.readPosition.LoadAcquire())
}
