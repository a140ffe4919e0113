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

// DefaultCreationTimeout bounds how long OpenNotifier waits for a channel
// to come into existence and finish initializing before giving up.
const DefaultCreationTimeout = 10 * time.Millisecond

// Builder configures and opens one side of an event channel. A Listener
// is created with Builder.CreateListener; any number of Notifiers then
// attach to it with Builder.OpenNotifier.
type Builder struct {
	name            string
	kind            trackerKind
	triggerIdMax    TriggerId
	creationTimeout time.Duration
}

// NewBuilder starts configuring the channel identified by name, defaulting
// to BitsetIdTracker, TriggerIdDefaultMax and DefaultCreationTimeout.
func NewBuilder(name string) *Builder {
	return &Builder{
		name:            name,
		kind:            trackerKindBitset,
		triggerIdMax:    TriggerIdDefaultMax,
		creationTimeout: DefaultCreationTimeout,
	}
}

// UseQueueIdTracker switches this channel to QueueIdTracker instead of the
// default BitsetIdTracker.
func (b *Builder) UseQueueIdTracker() *Builder {
	b.kind = trackerKindQueue
	return b
}

// TriggerIdMax overrides the highest TriggerId this channel accepts.
func (b *Builder) TriggerIdMax(max TriggerId) *Builder {
	b.triggerIdMax = max
	return b
}

// CreationTimeout overrides how long OpenNotifier waits for the channel
// to exist and finish initializing.
func (b *Builder) CreationTimeout(timeout time.Duration) *Builder {
	b.creationTimeout = timeout
	return b
}

// CreateListener creates the channel's shared segment. Fails with
// ErrAlreadyExists if a Listener already created it.
func (b *Builder) CreateListener() (*Listener, error) {
	conn, err := createListener(b.name, b.kind, b.triggerIdMax)
	if err != nil {
		return nil, err
	}
	return &Listener{conn: conn}, nil
}

// OpenNotifier attaches to an existing channel, failing with
// ErrDoesNotExist if it has not been created yet (or has no attached
// Listener), or one of the Incompatible* errors if it was created with
// different settings than this Builder's.
func (b *Builder) OpenNotifier() (*Notifier, error) {
	conn, err := openNotifier(b.name, b.kind, b.triggerIdMax, b.creationTimeout)
	if err != nil {
		return nil, err
	}
	return &Notifier{conn: conn}, nil
}
