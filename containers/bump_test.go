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

package containers_test

import (
	"sync"
	"testing"

	"github.com/eclipse-iceoryx/iceoryx2-core-go/containers"
)

func TestBumpAllocatorSequentialLayout(t *testing.T) {
	region := make([]byte, 128)
	a := containers.NewBumpAllocator(region)

	first, err := a.Allocate(8, 8)
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	second, err := a.Allocate(16, 8)
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	if a.Used() != 24 {
		t.Fatalf("Used() = %d, want 24", a.Used())
	}
	// The two sub-slices must start at different addresses.
	firstStart := &first[0]
	secondStart := &second[0]
	if firstStart == secondStart {
		t.Fatalf("allocations must not overlap")
	}
}

func TestBumpAllocatorExhaustion(t *testing.T) {
	a := containers.NewBumpAllocator(make([]byte, 8))
	if _, err := a.Allocate(16, 1); err == nil {
		t.Fatalf("expected exhaustion error")
	}
}

func TestBumpAllocatorConcurrentAllocationsAreDisjoint(t *testing.T) {
	const n = 64
	const size = 16
	a := containers.NewBumpAllocator(make([]byte, n*size))

	var wg sync.WaitGroup
	offsets := make(chan int, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b, err := a.Allocate(size, 8)
			if err != nil {
				t.Errorf("Allocate: %v", err)
				return
			}
			offsets <- int(uintptr(len(b)))
		}()
	}
	wg.Wait()
	close(offsets)
	if a.Used() != n*size {
		t.Fatalf("Used() = %d, want %d", a.Used(), n*size)
	}
}

func TestMemorySizeAlignment(t *testing.T) {
	got := containers.MemorySize([]int{1, 8}, []int{1, 8})
	// 1 byte, then pad to 8-byte alignment (7 bytes), then 8 bytes = 16.
	if got != 16 {
		t.Fatalf("MemorySize = %d, want 16", got)
	}
}
