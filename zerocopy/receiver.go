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

// Receiver is the consuming side of a zero-copy connection. A connection
// permits at most one live Receiver at a time; see Builder.CreateReceiver.
//
// borrowCount is deliberately a plain, non-atomic field: exactly one
// process ever holds the Receiver role for a given connection (enforced
// by the state bit in mgmtHeader), so unlike the channels it wraps, this
// counter is never observed cross-process and needs no shared-memory
// placement.
type Receiver struct {
	conn        *connection
	borrowCount int
}

// BufferSize returns the delivery channel's capacity.
func (r *Receiver) BufferSize() int { return r.conn.receiveChannel.Capacity() }

// MaxBorrowedSamples returns the configured max borrow count.
func (r *Receiver) MaxBorrowedSamples() int { return int(r.conn.hdr.maxBorrowedSamples) }

// HasEnabledSafeOverflow reports whether a full delivery channel evicts
// instead of blocking the Sender.
func (r *Receiver) HasEnabledSafeOverflow() bool { return r.conn.hdr.enableSafeOverflow.LoadRelaxed() }

// IsConnected reports whether a Sender currently also holds this
// connection open.
func (r *Receiver) IsConnected() bool { return isConnected(r.conn.hdr) }

// Receive pops the next offset off the delivery channel, returning nil
// if it is currently empty, or ErrReceiveWouldExceedMaxBorrow if the
// caller already holds MaxBorrowedSamples offsets without releasing any.
func (r *Receiver) Receive() (*PointerOffset, error) {
	if r.borrowCount >= int(r.conn.hdr.maxBorrowedSamples) {
		return nil, ErrReceiveWouldExceedMaxBorrow
	}
	v, ok := r.conn.receiveChannel.Pop()
	if !ok {
		return nil, nil
	}
	r.borrowCount++
	out := NewPointerOffset(v)
	return &out, nil
}

// Release returns ptr to the Sender via the retrieve channel, freeing the
// corresponding payload slot for reuse and decrementing the borrow count.
// Fails with ErrRetrieveBufferFull if the retrieve channel has no space,
// which Builder's channel sizing (buffer_size + max_borrowed_samples + 1)
// guarantees cannot happen as long as the caller never releases more
// samples than it received.
func (r *Receiver) Release(ptr PointerOffset) error {
	if err := r.conn.retrieveChannel.Push(ptr.Value()); err != nil {
		return ErrRetrieveBufferFull
	}
	r.borrowCount--
	return nil
}

// Close releases the Receiver role. If the Sender has also closed, the
// connection's shared memory is unlinked.
func (r *Receiver) Close() {
	cleanupSharedMemory(r.conn.segment, r.conn.hdr, stateReceiver)
}
