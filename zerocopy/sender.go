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

package zerocopy

import (
	"time"

	"github.com/eclipse-iceoryx/iceoryx2-core-go/internal/wait"
)

// Sender is the producing side of a zero-copy connection. A connection
// permits at most one live Sender at a time; see Builder.CreateSender.
type Sender struct {
	conn *connection
}

// BufferSize returns the delivery channel's capacity.
func (s *Sender) BufferSize() int { return s.conn.receiveChannel.Capacity() }

// MaxBorrowedSamples returns the configured max borrow count.
func (s *Sender) MaxBorrowedSamples() int { return int(s.conn.hdr.maxBorrowedSamples) }

// HasEnabledSafeOverflow reports whether a full delivery channel evicts
// instead of blocking.
func (s *Sender) HasEnabledSafeOverflow() bool { return s.conn.hdr.enableSafeOverflow.LoadRelaxed() }

// IsConnected reports whether a Receiver currently also holds this
// connection open.
func (s *Sender) IsConnected() bool { return isConnected(s.conn.hdr) }

// TrySend offers ptr to the delivery channel without waiting.
//
// Before touching the delivery channel, TrySend verifies the retrieve
// channel has enough guaranteed free space to eventually take back every
// sample that could end up outstanding (every borrowed sample plus every
// sample already sitting in the delivery channel); if it does not, the
// caller must drain released samples via Reclaim before sending more, so
// a slow receiver can never cause payload slots to be double-allocated.
func (s *Sender) TrySend(ptr PointerOffset) (evicted *PointerOffset, err error) {
	spaceInRetrieveChannel := s.conn.retrieveChannel.Capacity() - s.conn.retrieveChannel.Len()
	if spaceInRetrieveChannel <= int(s.conn.hdr.maxBorrowedSamples)+s.conn.receiveChannel.Len() {
		return nil, ErrClearRetrieveChannelBeforeSend
	}

	if !s.conn.hdr.enableSafeOverflow.LoadRelaxed() && s.conn.receiveChannel.IsFull() {
		return nil, ErrReceiveBufferFull
	}

	v, didEvict := s.conn.receiveChannel.Push(ptr.Value())
	if !didEvict {
		return nil, nil
	}
	out := NewPointerOffset(v)
	return &out, nil
}

// BlockingSend behaves like TrySend, but when safe overflow is disabled
// it first waits (bounded only by deadline, 0 meaning unbounded) for the
// receive buffer to have space rather than failing immediately with
// ErrReceiveBufferFull.
func (s *Sender) BlockingSend(ptr PointerOffset, deadline time.Duration) (evicted *PointerOffset, err error) {
	if !s.conn.hdr.enableSafeOverflow.LoadRelaxed() {
		wait.Adaptive(deadline, func() bool {
			return !s.conn.receiveChannel.IsFull()
		})
	}
	return s.TrySend(ptr)
}

// Reclaim pops one offset off the retrieve channel, returning nil if it
// is currently empty. A Sender must drain this regularly: it is how
// payload slots released by the Receiver come back for reuse.
func (s *Sender) Reclaim() *PointerOffset {
	v, ok := s.conn.retrieveChannel.Pop()
	if !ok {
		return nil
	}
	out := NewPointerOffset(v)
	return &out
}

// Close releases the Sender role. If the Receiver has also closed, the
// connection's shared memory is unlinked.
func (s *Sender) Close() {
	cleanupSharedMemory(s.conn.segment, s.conn.hdr, stateSender)
}
