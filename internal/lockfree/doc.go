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

// Package lockfree provides an in-process bounded MPMC FIFO queue used
// wherever this module needs an in-memory (not shared-memory) hot path
// lock-free queue: waitset's reactor feeds fired AttachmentIds to
// WaitSet.Run through one.
//
// # Algorithm
//
// MPMC is an FAA-based (Fetch-And-Add) multi-producer multi-consumer
// bounded queue, based on the SCQ (Scalable Circular Queue) algorithm by
// Nikolaev (DISC 2019). It blindly increments producer/consumer position
// counters with FAA rather than CAS, which scales better under
// contention at the cost of needing 2n physical slots for capacity n.
// Cycle-based slot validation (cycle = position / capacity) provides ABA
// safety without a generation-tagged pointer.
//
// # Usage
//
//	q := lockfree.NewMPMC[Job](4096)
//
//	// Producer
//	job := Job{ID: 1}
//	if err := q.Enqueue(&job); err != nil {
//	    // lockfree.IsWouldBlock(err): queue full, apply backpressure
//	}
//
//	// Consumer
//	job, err := q.Dequeue()
//	if err == nil {
//	    job.Run()
//	}
//
// Capacity rounds up to the next power of 2 and must be at least 2;
// NewMPMC panics otherwise.
//
// # Graceful shutdown
//
// FAA-based queues use a threshold mechanism to prevent livelock, which
// can cause Dequeue to return ErrWouldBlock even when items remain while
// waiting for producer activity to reset the threshold. Once producers
// have finished, call Drain to let consumers fully drain the queue
// without that threshold check:
//
//	prodWg.Wait()
//	q.Drain()
//	// consumers now drain remaining items without threshold blocking
//
// # Error handling
//
// Queue operations return ErrWouldBlock (an alias for
// [code.hybscloud.com/iox]'s ErrWouldBlock) when they cannot proceed
// immediately. This is a control-flow signal, not a failure -- retry
// with backoff rather than propagating it:
//
//	backoff := iox.Backoff{}
//	for {
//	    err := q.Enqueue(&item)
//	    if err == nil {
//	        backoff.Reset()
//	        break
//	    }
//	    if !lockfree.IsWouldBlock(err) {
//	        return err
//	    }
//	    backoff.Wait()
//	}
//
// # Race detection
//
// Go's race detector tracks explicit synchronization primitives (mutex,
// channels, WaitGroup) but cannot observe happens-before relationships
// established purely through atomic acquire-release orderings on
// separate variables, which is how MPMC protects its non-atomic slot
// data. The algorithm is correct, but concurrent tests exercising it are
// excluded under the race detector (a //go:build !race constraint)
// to avoid false positives rather than because of a real bug.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors,
// [code.hybscloud.com/atomix] for atomic primitives with explicit memory
// ordering, and [code.hybscloud.com/spin] for CPU pause instructions.
package lockfree
