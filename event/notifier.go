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

// Notifier raises TriggerIds on a channel a Listener is waiting on. Any
// number of Notifier processes may attach to the same channel.
type Notifier struct {
	conn   *connection
	closed bool
}

// TriggerIdMax returns the highest TriggerId this channel accepts.
func (n *Notifier) TriggerIdMax() TriggerId {
	return TriggerId(n.conn.hdr.triggerIdMax)
}

// Notify raises id. It fails with ErrDisconnected if the Listener has
// already detached, ErrTriggerIdOutOfBounds if id exceeds TriggerIdMax,
// and ErrIdTrackerFull if the channel's IdTracker has no room left for
// another pending id (only reachable with QueueIdTracker).
func (n *Notifier) Notify(id TriggerId) error {
	if !n.conn.hdr.hasListener.LoadRelaxed() {
		return ErrDisconnected
	}
	if id > n.TriggerIdMax() {
		return ErrTriggerIdOutOfBounds
	}
	if err := n.conn.tracker.Add(id); err != nil {
		return err
	}
	n.conn.signal.Notify()
	return nil
}

// Close detaches this Notifier. If it was the last reference to the
// channel, the shared segment is unlinked.
func (n *Notifier) Close() error {
	if n.closed {
		return nil
	}
	n.closed = true

	last := decrementReferenceCounter(n.conn.hdr)
	if last {
		n.conn.segment.unlink()
		return nil
	}
	return n.conn.segment.seg.Close()
}
