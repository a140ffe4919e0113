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

// Package waitset multiplexes many event sources -- Listeners, deadline
// guards, and plain interval ticks -- behind a single blocking Run call,
// so a process can service several ports without a thread per port.
//
// The upstream design this is ported from multiplexes real OS file
// descriptors through a platform reactor (epoll, kqueue, a poll(2) loop)
// and blocks in a single syscall until one of them is readable. Package
// event's Listener has no fd of its own -- its wakeups travel through
// pollSignal, a pure-memory signal mechanism chosen over a SysV semaphore
// or a real eventfd -- so there is nothing here for an OS reactor to
// block on. WaitSet substitutes a poller goroutine per attachment, each
// polling its source once per poll interval (DefaultPollInterval unless
// WithPollInterval overrides it) and pushing
// fired attachments into a shared lock-free queue; Run drains that queue
// and is the single place user callbacks are invoked from. This keeps the
// public shape -- attach sources, block in one call, get a callback per
// fired attachment -- while being honest that the underlying wait is a
// poll loop, not a blocking multiplex syscall.
//
// A Tick or Deadline attachment's clock is reset by its own poller at the
// moment it fires, before the fired entry is queued; RunOnce then dequeues
// fired entries and invokes the callback for each in turn. Resetting
// clocks before any callback runs means a slow callback cannot stretch
// another attachment's deadline just by taking too long -- the same
// ordering the upstream reactor's own run loop documents for the same
// reason.
package waitset
