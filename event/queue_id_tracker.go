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

package event

import (
	"unsafe"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"

	"github.com/eclipse-iceoryx/iceoryx2-core-go/containers/indexqueue"
)

// QueueIdTracker preserves the multiplicity and order of raised
// TriggerIds, up to its capacity, instead of BitsetIdTracker's
// set-once-per-id collapsing. It is built on containers/indexqueue's
// relocatable IndexQueue, which only allows a single producer; since this
// tracker must accept Add calls from any number of Notifier processes,
// it serializes them behind a spinlock word kept in the same shared
// region (the queue's own AcquireProducer/AcquireConsumer are called
// once, internally, by the owning side during initialization -- callers
// never see them).
type QueueIdTracker struct {
	lock  *atomix.Bool
	queue *indexqueue.IndexQueue
}

func queueLockSize() int {
	return int(unsafe.Sizeof(atomix.Bool{}))
}

func queueIdTrackerMemorySize(capacity int) int {
	return queueLockSize() + indexqueue.IndexQueueMemorySize(capacity)
}

func initQueueIdTracker(region []byte, capacity int, owner bool) (IdTracker, error) {
	need := queueIdTrackerMemorySize(capacity)
	if len(region) < need {
		return nil, ErrRegionTooSmall
	}
	lockSize := queueLockSize()
	lock := (*atomix.Bool)(unsafe.Pointer(unsafe.SliceData(region)))

	var queue *indexqueue.IndexQueue
	var err error
	if owner {
		lock.StoreRelaxed(false)
		queue, err = indexqueue.InitIndexQueue(region[lockSize:need], capacity)
		if err != nil {
			return nil, err
		}
		if err := queue.AcquireProducer(); err != nil {
			return nil, err
		}
		if err := queue.AcquireConsumer(); err != nil {
			return nil, err
		}
	} else {
		queue, err = indexqueue.InitIndexQueue(region[lockSize:need], capacity)
		if err != nil {
			return nil, err
		}
	}

	return &QueueIdTracker{lock: lock, queue: queue}, nil
}

func (t *QueueIdTracker) acquireLock() {
	sw := spin.Wait{}
	for !t.lock.CompareAndSwapAcqRel(false, true) {
		sw.Once()
	}
}

func (t *QueueIdTracker) releaseLock() {
	t.lock.StoreRelease(false)
}

// Add pushes id onto the queue, failing with ErrIdTrackerFull once the
// queue is at capacity rather than overwriting or blocking.
func (t *QueueIdTracker) Add(id TriggerId) error {
	t.acquireLock()
	defer t.releaseLock()
	if err := t.queue.Push(uint64(id)); err != nil {
		return ErrIdTrackerFull
	}
	return nil
}

// Acquire pops the oldest pending id, if any. The queue's single-consumer
// contract is satisfied by construction: only the Listener side ever
// calls Acquire/AcquireAll.
func (t *QueueIdTracker) Acquire() (TriggerId, bool) {
	v, ok := t.queue.Pop()
	return TriggerId(v), ok
}

// AcquireAll drains every currently pending id in FIFO order.
func (t *QueueIdTracker) AcquireAll(callback func(TriggerId)) {
	for {
		v, ok := t.queue.Pop()
		if !ok {
			return
		}
		callback(TriggerId(v))
	}
}
