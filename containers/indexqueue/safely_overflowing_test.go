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

package indexqueue_test

import (
	"testing"

	"github.com/eclipse-iceoryx/iceoryx2-core-go/containers/indexqueue"
)

func TestSafelyOverflowingPushPopNoOverflow(t *testing.T) {
	q, err := indexqueue.NewSafelyOverflowingIndexQueue(4)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	pushes, pops := 0, 0
	for i := uint64(1); i <= 3; i++ {
		if _, evicted := q.Push(i); evicted {
			t.Fatalf("Push(%d) unexpectedly evicted a value below capacity", i)
		}
		pushes++
	}
	if q.Len() != pushes-pops {
		t.Fatalf("Len() = %d, want %d", q.Len(), pushes-pops)
	}

	for i := uint64(1); i <= 3; i++ {
		value, ok := q.Pop()
		if !ok {
			t.Fatalf("Pop() returned no value, want %d", i)
		}
		if value != i {
			t.Fatalf("Pop() = %d, want %d (FIFO order)", value, i)
		}
		pops++
	}
	if q.Len() != pushes-pops {
		t.Fatalf("Len() = %d, want %d", q.Len(), pushes-pops)
	}
	if !q.IsEmpty() {
		t.Fatalf("queue should be empty after draining all pushes")
	}
}

// TestSafelyOverflowingEvictsOldestOnOverflow validates testable property 2:
// once overflow triggers, the value returned by Push equals the earliest
// not-yet-popped value.
func TestSafelyOverflowingEvictsOldestOnOverflow(t *testing.T) {
	q, err := indexqueue.NewSafelyOverflowingIndexQueue(2)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, evicted := q.Push(1); evicted {
		t.Fatalf("first push must not evict")
	}
	if _, evicted := q.Push(2); evicted {
		t.Fatalf("second push must not evict (queue exactly at capacity)")
	}
	evictedValue, evicted := q.Push(3)
	if !evicted {
		t.Fatalf("third push on a full capacity-2 queue must evict")
	}
	if evictedValue != 1 {
		t.Fatalf("evicted value = %d, want 1 (the oldest not-yet-popped value)", evictedValue)
	}

	remaining := []uint64{2, 3}
	for _, want := range remaining {
		got, ok := q.Pop()
		if !ok || got != want {
			t.Fatalf("Pop() = (%d, %v), want (%d, true)", got, ok, want)
		}
	}
}

func TestSafelyOverflowingPopEmpty(t *testing.T) {
	q, _ := indexqueue.NewSafelyOverflowingIndexQueue(4)
	if _, ok := q.Pop(); ok {
		t.Fatalf("Pop on empty queue must return ok=false")
	}
}

func TestSafelyOverflowingRoleExclusivity(t *testing.T) {
	q, _ := indexqueue.NewSafelyOverflowingIndexQueue(4)
	if err := q.AcquireProducer(); err != nil {
		t.Fatalf("first AcquireProducer: %v", err)
	}
	if err := q.AcquireProducer(); err != indexqueue.ErrRoleAlreadyAcquired {
		t.Fatalf("second AcquireProducer: got %v, want ErrRoleAlreadyAcquired", err)
	}
	if err := q.AcquireConsumer(); err != nil {
		t.Fatalf("AcquireConsumer must succeed independently of the producer role: %v", err)
	}
}

// TestSafelyOverflowingRelocatable validates testable property 1 for this
// queue: two Init calls over the same region must alias identical state,
// the guarantee a second process mapping the region at a different
// address depends on.
func TestSafelyOverflowingRelocatable(t *testing.T) {
	const capacity = 4
	region := make([]byte, indexqueue.SafelyOverflowingIndexQueueMemorySize(capacity))

	writer, err := indexqueue.InitSafelyOverflowingIndexQueue(region, capacity)
	if err != nil {
		t.Fatalf("Init (writer view): %v", err)
	}
	if _, evicted := writer.Push(42); evicted {
		t.Fatalf("unexpected eviction")
	}

	reader, err := indexqueue.InitSafelyOverflowingIndexQueue(region, capacity)
	if err != nil {
		t.Fatalf("Init (reader view): %v", err)
	}
	value, ok := reader.Pop()
	if !ok || value != 42 {
		t.Fatalf("second view over the same region did not observe the first view's push: got (%d, %v)", value, ok)
	}
}

func TestSafelyOverflowingRegionTooSmall(t *testing.T) {
	region := make([]byte, 8)
	if _, err := indexqueue.InitSafelyOverflowingIndexQueue(region, 4); err == nil {
		t.Fatalf("expected error for undersized region")
	}
}
