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

// Package indexqueue provides the two relocatable single-producer
// single-consumer queues of 64-bit values that the zero-copy connection
// (package zerocopy) is built from:
//
//   - SafelyOverflowingIndexQueue: push on a full queue recycles the oldest
//     value back to the caller instead of failing. This backs the
//     producer-to-consumer delivery channel when the service has safe
//     overflow enabled.
//   - IndexQueue: push on a full queue fails. This backs the
//     consumer-to-producer return channel, where silently dropping a
//     returned offset would leak a payload slot forever.
//
// Both queues store capacity+1 physical slots (one extra slot makes the
// empty/full distinction lock-free without a separate counter) and index
// with position%(capacity+1), exactly mirroring the single-writer /
// single-reader discipline code.hybscloud.com/lfq's SPSC[T] already uses
// for its Lamport ring buffer; what differs here is the overflow behavior
// and the fact that these queues are relocatable: a queue built with Init
// lives inside externally supplied memory (a shared-memory segment view)
// rather than owning a Go-allocated slice, so the same bytes remain valid
// after being mapped at a different address by another process.
//
// Role acquisition (AcquireProducer / AcquireConsumer) enforces the
// single-producer/single-consumer constraint across process boundaries via
// a CAS-guarded boolean, the same pattern package zerocopy uses for its
// sender/receiver state bits.
package indexqueue
