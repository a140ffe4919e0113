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

func TestIndexQueuePushPopFIFO(t *testing.T) {
	q, err := indexqueue.NewIndexQueue(3)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for i := uint64(1); i <= 3; i++ {
		if err := q.Push(i); err != nil {
			t.Fatalf("Push(%d): %v", i, err)
		}
	}
	for i := uint64(1); i <= 3; i++ {
		value, ok := q.Pop()
		if !ok || value != i {
			t.Fatalf("Pop() = (%d, %v), want (%d, true)", value, ok, i)
		}
	}
}

// TestIndexQueuePushFullFails validates the non-overflowing contract: Push
// fails rather than evicting once the queue is at capacity.
func TestIndexQueuePushFullFails(t *testing.T) {
	q, _ := indexqueue.NewIndexQueue(2)
	_ = q.Push(1)
	_ = q.Push(2)
	if err := q.Push(3); err != indexqueue.ErrWouldBlock {
		t.Fatalf("Push on full queue: got %v, want ErrWouldBlock", err)
	}
	if !q.IsFull() {
		t.Fatalf("IsFull() should report true once capacity is reached")
	}

	value, ok := q.Pop()
	if !ok || value != 1 {
		t.Fatalf("Pop() = (%d, %v), want (1, true)", value, ok)
	}
	if err := q.Push(3); err != nil {
		t.Fatalf("Push after freeing a slot: %v", err)
	}
}

func TestIndexQueuePopEmpty(t *testing.T) {
	q, _ := indexqueue.NewIndexQueue(4)
	if _, ok := q.Pop(); ok {
		t.Fatalf("Pop on empty queue must return ok=false")
	}
	if !q.IsEmpty() {
		t.Fatalf("IsEmpty() should report true for a freshly constructed queue")
	}
}

func TestIndexQueueRoleExclusivity(t *testing.T) {
	q, _ := indexqueue.NewIndexQueue(4)
	if err := q.AcquireConsumer(); err != nil {
		t.Fatalf("first AcquireConsumer: %v", err)
	}
	if err := q.AcquireConsumer(); err != indexqueue.ErrRoleAlreadyAcquired {
		t.Fatalf("second AcquireConsumer: got %v, want ErrRoleAlreadyAcquired", err)
	}
}

func TestIndexQueueRelocatable(t *testing.T) {
	const capacity = 4
	region := make([]byte, indexqueue.IndexQueueMemorySize(capacity))

	writer, err := indexqueue.InitIndexQueue(region, capacity)
	if err != nil {
		t.Fatalf("Init (writer view): %v", err)
	}
	if err := writer.Push(7); err != nil {
		t.Fatalf("Push: %v", err)
	}

	reader, err := indexqueue.InitIndexQueue(region, capacity)
	if err != nil {
		t.Fatalf("Init (reader view): %v", err)
	}
	value, ok := reader.Pop()
	if !ok || value != 7 {
		t.Fatalf("second view over the same region did not observe the first view's push: got (%d, %v)", value, ok)
	}
}
