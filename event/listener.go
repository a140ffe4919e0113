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

import "time"

// Listener waits for Notifiers to raise TriggerIds on a channel it
// created. Exactly one Listener exists per channel.
type Listener struct {
	conn   *connection
	closed bool
}

// TriggerIdMax returns the highest TriggerId this channel accepts.
func (l *Listener) TriggerIdMax() TriggerId {
	return TriggerId(l.conn.hdr.triggerIdMax)
}

// drainSignal collects every outstanding wakeup before touching the id
// tracker. Collecting all of them first, rather than one per acquire,
// matters for BitsetIdTracker: the same id raised twice before a wakeup
// is observed only sets one bit, so leaving a wakeup uncollected after
// acquiring its id would make the next wait spuriously fire for nothing.
func (l *Listener) drainSignal() {
	for l.conn.signal.TryWait() {
	}
}

// TryWaitOne returns one pending TriggerId without blocking, or reports
// none pending.
func (l *Listener) TryWaitOne() (TriggerId, bool) {
	l.drainSignal()
	return l.conn.tracker.Acquire()
}

// TimedWaitOne waits up to timeout for a TriggerId to become pending.
func (l *Listener) TimedWaitOne(timeout time.Duration) (TriggerId, bool) {
	if id, ok := l.TryWaitOne(); ok {
		return id, ok
	}
	if !l.conn.signal.TimedWait(timeout) {
		return 0, false
	}
	return l.conn.tracker.Acquire()
}

// BlockingWaitOne waits indefinitely for a TriggerId to become pending.
func (l *Listener) BlockingWaitOne() TriggerId {
	if id, ok := l.TryWaitOne(); ok {
		return id
	}
	l.conn.signal.BlockingWait()
	id, _ := l.conn.tracker.Acquire()
	return id
}

// TryWaitAll invokes callback once for every currently pending TriggerId
// without blocking.
func (l *Listener) TryWaitAll(callback func(TriggerId)) {
	l.drainSignal()
	l.conn.tracker.AcquireAll(callback)
}

// TimedWaitAll waits up to timeout for at least one wakeup, then invokes
// callback for every TriggerId pending at that point.
func (l *Listener) TimedWaitAll(callback func(TriggerId), timeout time.Duration) {
	l.conn.signal.TimedWait(timeout)
	l.TryWaitAll(callback)
}

// BlockingWaitAll waits indefinitely for at least one wakeup, then
// invokes callback for every TriggerId pending at that point.
func (l *Listener) BlockingWaitAll(callback func(TriggerId)) {
	l.conn.signal.BlockingWait()
	l.TryWaitAll(callback)
}

// HasPendingNotification reports, without blocking, whether at least one
// TriggerId is currently pending, consuming any outstanding wakeups in
// the process (the same collapsing drain TryWaitOne/TryWaitAll already
// perform) without touching the id tracker. Package waitset uses this to
// multiplex many Listeners inside a single reactor loop; a caller that
// gets true back is expected to then drain the pending ids itself with
// TryWaitOne or TryWaitAll, exactly as if it had observed the wakeup
// directly.
func (l *Listener) HasPendingNotification() bool {
	return l.conn.signal.TryWait()
}

// Close detaches this Listener, making it visible to any attached
// Notifiers (hasListener becomes false, so Notify starts failing with
// ErrDisconnected). If no Notifier was attached, the shared segment is
// unlinked immediately.
func (l *Listener) Close() error {
	if l.closed {
		return nil
	}
	l.closed = true

	l.conn.hdr.hasListener.StoreRelaxed(false)
	last := decrementReferenceCounter(l.conn.hdr)
	if last {
		l.conn.segment.unlink()
		return nil
	}
	return l.conn.segment.seg.Close()
}
