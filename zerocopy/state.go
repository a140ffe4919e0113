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

// connectionState is a bitmask stored in mgmtHeader.state, shared between
// both processes holding a connection open.
type connectionState uint8

const (
	stateNone                 connectionState = 0b0000_0000
	stateSender               connectionState = 0b0000_0001
	stateReceiver              connectionState = 0b0000_0010
	stateMarkedForDestruction connectionState = 0b1000_0000
)

// reservePort claims role in hdr.state via a CAS loop, failing if role is
// already held or the connection is being torn down. This is the only
// place either side's role bit is ever set, so Sender/Receiver creation
// is safe to race between two processes: exactly one wins.
func reservePort(hdr *mgmtHeader, role connectionState) error {
	current := connectionState(hdr.state.LoadRelaxed())
	for {
		if current&role != 0 {
			return ErrAnotherInstanceIsAlreadyConnected
		}
		if current&stateMarkedForDestruction != 0 {
			return ErrConnectionMarkedForDestruction
		}
		next := current | role
		if hdr.state.CompareAndSwapRelaxed(uint64(current), uint64(next)) {
			return nil
		}
		current = connectionState(hdr.state.LoadRelaxed())
	}
}

// cleanupSharedMemory clears role from hdr.state and, if that was the
// last role held, marks the connection for destruction and unlinks its
// backing shared-memory object. Called when a Sender or Receiver closes.
func cleanupSharedMemory(seg *segmentHandle, hdr *mgmtHeader, role connectionState) {
	current := connectionState(hdr.state.LoadRelaxed())
	for {
		var next connectionState
		if current == role {
			next = stateMarkedForDestruction
		} else {
			next = current &^ role
		}
		if hdr.state.CompareAndSwapRelaxed(uint64(current), uint64(next)) {
			current = next
			break
		}
		current = connectionState(hdr.state.LoadRelaxed())
	}

	if current == stateMarkedForDestruction {
		seg.unlink()
	}
}

// isConnected reports whether both a Sender and a Receiver currently hold
// the connection open.
func isConnected(hdr *mgmtHeader) bool {
	return connectionState(hdr.state.LoadRelaxed()) == stateSender|stateReceiver
}
