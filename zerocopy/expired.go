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
	"github.com/eclipse-iceoryx/iceoryx2-core-go/internal/logging"
	"github.com/eclipse-iceoryx/iceoryx2-core-go/internal/metrics"
)

// RetentionPolicy governs what ExpiredConnectionBuffer.TrackedSend does with a payload
// offset the delivery channel evicts because the receive buffer was full
// and safe overflow is enabled.
//
// This is one of the decisions left open: the original project always
// behaves like DropOldest (a full safely-overflowing queue has no other
// option at the queue level), but leaves unanswered what the owning
// service should then do with the evicted sample's resources. This
// module answers it with a configurable policy so a caller that cares
// about losing samples silently can opt into DropOldestWithWarning
// instead of rolling its own bookkeeping around every TrySend call.
type RetentionPolicy int

const (
	// DropOldest discards the evicted offset's slot back to the payload
	// allocator without logging anything. Matches the original project's
	// behavior exactly.
	DropOldest RetentionPolicy = iota
	// DropOldestWithWarning discards the evicted offset the same way but
	// also logs a warning, so a service with an unexpectedly slow
	// consumer is visible in the logs instead of only in a dropped-sample
	// counter nobody is watching. This is ExpiredConnectionBuffer's
	// default.
	DropOldestWithWarning
)

// ReclaimFunc returns a payload offset to its allocator. Callers plug in
// shm.Allocator.Deallocate (bound to the sample's known size) here;
// package zerocopy has no payload-pool type of its own to call directly.
type ReclaimFunc func(offset PointerOffset)

// ExpiredConnectionBuffer wraps a Sender so that TrackedSend automatically
// applies a RetentionPolicy to whatever Sender.TrySend evicts, instead of
// every caller re-implementing the same "if evicted != nil" bookkeeping.
type ExpiredConnectionBuffer struct {
	sender  *Sender
	policy  RetentionPolicy
	reclaim ReclaimFunc
}

// NewExpiredConnectionBuffer wraps sender with the default retention
// policy, DropOldestWithWarning.
func NewExpiredConnectionBuffer(sender *Sender, reclaim ReclaimFunc) *ExpiredConnectionBuffer {
	return &ExpiredConnectionBuffer{sender: sender, policy: DropOldestWithWarning, reclaim: reclaim}
}

// WithPolicy overrides the retention policy.
func (b *ExpiredConnectionBuffer) WithPolicy(policy RetentionPolicy) *ExpiredConnectionBuffer {
	b.policy = policy
	return b
}

// TrackedSend calls the wrapped Sender's TrySend and applies the
// configured RetentionPolicy to anything it evicts.
func (b *ExpiredConnectionBuffer) TrackedSend(ptr PointerOffset) error {
	evicted, err := b.sender.TrySend(ptr)
	if err != nil {
		return err
	}
	if evicted == nil {
		return nil
	}
	metrics.Default().IncDroppedExpiredConnections()

	if b.policy == DropOldestWithWarning {
		logging.Named("zerocopy").Warn("dropping sample evicted by a full delivery channel")
	}
	if b.reclaim != nil {
		b.reclaim(*evicted)
	}
	return nil
}
