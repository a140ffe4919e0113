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

// Package event implements the notification channel: a shared-memory
// construct through which any number of Notifier processes wake a single
// Listener process and tell it which TriggerId(s) fired.
//
// A connection has two cooperating pieces in shared memory:
//
//   - an IdTracker, which remembers which TriggerIds are pending. Two
//     implementations are provided and selected by Builder.UseQueueIdTracker:
//     BitsetIdTracker (one bit per id, default, idempotent — repeated
//     notifications of the same id before it is acquired collapse into
//     one) and QueueIdTracker (preserves multiplicity up to its capacity,
//     at the cost of failing once full instead of collapsing).
//   - a SignalMechanism, which actually wakes a blocked Listener. The one
//     implementation here is a bounded adaptive poll over a shared
//     generation counter, the same wait.Adaptive backoff idiom package
//     zerocopy uses to bound a joiner's wait for connection setup.
//
// The asymmetry between the two sides is intentional and matches the
// construct this is modeled on: a Listener creates the shared segment (it
// is the side whose lifetime defines whether the channel exists at all),
// and any number of Notifiers subsequently open it, each incrementing a
// shared reference count. A Notifier that finds no attached Listener, or
// whose creation-timeout expires before a Listener has finished creating,
// fails rather than silently proceeding.
package event
