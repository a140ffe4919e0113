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

const (
	// DefaultBufferSize is the delivery channel capacity used when a
	// Builder's BufferSize option is not called.
	DefaultBufferSize = 1

	// DefaultMaxBorrowedSamples is the max borrow count used when a
	// Builder's MaxBorrowedSamples option is not called.
	DefaultMaxBorrowedSamples = 1

	// DefaultEnableSafeOverflow matches the original project's default of
	// disabled: a full receive buffer blocks a Sender rather than silently
	// dropping samples, unless a service explicitly opts in to overflow.
	DefaultEnableSafeOverflow = false
)

type builderConfig struct {
	bufferSize         int
	maxBorrowedSamples int
	enableSafeOverflow bool
}

// Builder configures and creates one side (Sender or Receiver) of a named
// zero-copy connection. Both sides must agree on every setting: a second
// call with different settings against an already-created connection
// fails with one of the Incompatible* errors rather than silently using
// whichever settings were there first.
type Builder struct {
	name string
	cfg  builderConfig
}

// NewBuilder starts configuring the connection identified by name, the
// same name both the sending and receiving side must use to find each
// other.
func NewBuilder(name string) *Builder {
	return &Builder{
		name: name,
		cfg: builderConfig{
			bufferSize:         DefaultBufferSize,
			maxBorrowedSamples: DefaultMaxBorrowedSamples,
			enableSafeOverflow: DefaultEnableSafeOverflow,
		},
	}
}

// BufferSize sets the delivery channel's capacity.
func (b *Builder) BufferSize(value int) *Builder {
	b.cfg.bufferSize = value
	return b
}

// EnableSafeOverflow sets whether a full delivery channel evicts the
// oldest sample (true) or makes the sender wait / fail (false).
func (b *Builder) EnableSafeOverflow(value bool) *Builder {
	b.cfg.enableSafeOverflow = value
	return b
}

// MaxBorrowedSamples sets the maximum number of samples a Receiver may
// hold concurrently without releasing.
func (b *Builder) MaxBorrowedSamples(value int) *Builder {
	b.cfg.maxBorrowedSamples = value
	return b
}

// CreateSender creates or opens the connection and claims the Sender
// role. Fails with ErrAnotherInstanceIsAlreadyConnected if a Sender
// already holds this connection open.
func (b *Builder) CreateSender() (*Sender, error) {
	conn, err := createOrOpenConnection(b.name, b.cfg)
	if err != nil {
		return nil, err
	}
	if err := reservePort(conn.hdr, stateSender); err != nil {
		_ = conn.segment.seg.Close()
		return nil, err
	}
	return &Sender{conn: conn}, nil
}

// CreateReceiver creates or opens the connection and claims the Receiver
// role. Fails with ErrAnotherInstanceIsAlreadyConnected if a Receiver
// already holds this connection open.
func (b *Builder) CreateReceiver() (*Receiver, error) {
	conn, err := createOrOpenConnection(b.name, b.cfg)
	if err != nil {
		return nil, err
	}
	if err := reservePort(conn.hdr, stateReceiver); err != nil {
		_ = conn.segment.seg.Close()
		return nil, err
	}
	return &Receiver{conn: conn}, nil
}
