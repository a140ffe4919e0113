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

// Package zerocopy implements the zero-copy connection: a shared-memory
// object carrying two queues of PointerOffset values between exactly one
// Sender and exactly one Receiver process.
//
//   - the delivery channel (a containers/indexqueue.SafelyOverflowingIndexQueue)
//     carries offsets from Sender to Receiver; if EnableSafeOverflow is set,
//     a Sender never blocks, instead evicting the oldest undelivered
//     sample, which Sender.TrySend returns to the caller to reclaim.
//   - the return channel (a containers/indexqueue.IndexQueue) carries
//     offsets back from Receiver to Sender once the Receiver is done with
//     them, sized to guarantee every outstanding borrow plus every
//     in-flight delivery has a slot waiting for it, so Receiver.Release
//     never has to drop a returned offset.
//
// No sample bytes ever cross this package: PointerOffset values are
// offsets into a shm.Segment-backed payload pool (see package shm's
// allocators) that both processes already have mapped, which is what
// makes sending "zero-copy" -- only an 8-byte offset moves through the
// queue.
package zerocopy
