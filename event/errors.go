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

import "fmt"

var (
	// ErrRegionTooSmall is returned by an IdTracker's init function when
	// the region supplied by the management layer is smaller than the
	// tracker's own memory-size calculation promised.
	ErrRegionTooSmall = fmt.Errorf("event: region too small for id tracker")

	// ErrAlreadyExists is returned by Builder.CreateListener when a
	// channel with that name already has a Listener.
	ErrAlreadyExists = fmt.Errorf("event: listener already exists")
	// ErrDoesNotExist is returned by Builder.OpenNotifier when no
	// channel with that name exists, or it exists but has no attached
	// Listener (reference_counter has fallen to zero).
	ErrDoesNotExist = fmt.Errorf("event: channel does not exist or has no listener")
	// ErrInitializationNotYetFinalized is returned by Builder.OpenNotifier
	// when the channel's creator has not finished initializing it within
	// the builder's creation timeout.
	ErrInitializationNotYetFinalized = fmt.Errorf("event: channel initialization not yet finalized")
	// ErrIncompatibleTrackerKind is returned by Builder.OpenNotifier when
	// the existing channel was created with a different IdTracker kind.
	ErrIncompatibleTrackerKind = fmt.Errorf("event: incompatible id tracker kind")
	// ErrIncompatibleTriggerIdMax is returned by Builder.OpenNotifier when
	// the existing channel's maximum TriggerId does not match.
	ErrIncompatibleTriggerIdMax = fmt.Errorf("event: incompatible trigger id max")

	// ErrDisconnected is returned by Notifier.Notify when the attached
	// Listener has already detached.
	ErrDisconnected = fmt.Errorf("event: listener is no longer connected")
	// ErrTriggerIdOutOfBounds is returned by Notifier.Notify when id
	// exceeds the channel's configured maximum.
	ErrTriggerIdOutOfBounds = fmt.Errorf("event: trigger id exceeds the channel's maximum")
	// ErrIdTrackerFull is returned by Notifier.Notify when the id
	// tracker cannot record one more pending id (only reachable with
	// QueueIdTracker; BitsetIdTracker never fails this way).
	ErrIdTrackerFull = fmt.Errorf("event: id tracker has no room for another pending id")
)
