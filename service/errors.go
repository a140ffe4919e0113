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

package service

import "fmt"

// Name validation errors, returned by Name.Validate and, transitively,
// by Builder.Create/Open/OpenOrCreate.
var (
	ErrEmptyName   = fmt.Errorf("service: name must not be empty")
	ErrNameTooLong = fmt.Errorf("service: name exceeds MaxNameLength")
)

// Creation errors, returned by Builder.Create.
var (
	// ErrAlreadyExists is returned when a service with the same Name,
	// MessagingPattern and type identity already exists.
	ErrAlreadyExists = fmt.Errorf("service: already exists")
)

// Open errors, returned by Builder.Open.
var (
	// ErrDoesNotExist is returned when no service with this identity
	// exists yet.
	ErrDoesNotExist = fmt.Errorf("service: does not exist")

	// ErrHangsInCreation is returned when an existing service's static
	// config has not been sealed within config.Global.CreationTimeout --
	// its creator is presumed stuck or crashed mid-creation.
	ErrHangsInCreation = fmt.Errorf("service: hangs in creation")

	// ErrCorruptedStaticConfig is returned when a sealed static config's
	// payload cannot be decoded, e.g. a truncated or foreign-format
	// record -- spec.md §7 names this ServiceInCorruptedState.
	ErrCorruptedStaticConfig = fmt.Errorf("service: static config is corrupted")

	// ErrIncompatibleMessagingPattern is returned when an opener's
	// MessagingPattern does not match the existing service's.
	ErrIncompatibleMessagingPattern = fmt.Errorf("service: incompatible messaging pattern")

	// ErrIncompatiblePayloadType is returned when an opener's payload
	// TypeDetail does not match the existing service's.
	ErrIncompatiblePayloadType = fmt.Errorf("service: incompatible payload type")

	// ErrIncompatibleUserHeaderType is returned when an opener's user
	// header TypeDetail does not match the existing service's.
	ErrIncompatibleUserHeaderType = fmt.Errorf("service: incompatible user header type")

	// ErrIncompatibleOverflowSetting is returned when an opener's
	// EnableSafeOverflow does not exactly match the existing service's.
	ErrIncompatibleOverflowSetting = fmt.Errorf("service: incompatible overflow setting")

	// ErrIncompatibleAttributes is returned when an existing service's
	// Attributes fail an AttributeVerifier's requirements.
	ErrIncompatibleAttributes = fmt.Errorf("service: incompatible attributes")

	// ErrDoesNotSupportRequestedAmountOfPublishers, ...Subscribers,
	// ...Notifiers, ...Listeners, ...Clients and ...Servers are returned
	// when an opener's requested minimum capacity for that PortRole
	// exceeds the existing service's configured capacity.
	ErrDoesNotSupportRequestedAmountOfPublishers  = fmt.Errorf("service: existing capacity does not support the requested number of publishers")
	ErrDoesNotSupportRequestedAmountOfSubscribers = fmt.Errorf("service: existing capacity does not support the requested number of subscribers")
	ErrDoesNotSupportRequestedAmountOfNotifiers   = fmt.Errorf("service: existing capacity does not support the requested number of notifiers")
	ErrDoesNotSupportRequestedAmountOfListeners   = fmt.Errorf("service: existing capacity does not support the requested number of listeners")
	ErrDoesNotSupportRequestedAmountOfClients     = fmt.Errorf("service: existing capacity does not support the requested number of clients")
	ErrDoesNotSupportRequestedAmountOfServers     = fmt.Errorf("service: existing capacity does not support the requested number of servers")
)

// open_or_create's bounded-retry errors.
var (
	// ErrOpenOrCreateRetryLimitExceeded is returned by
	// Builder.OpenOrCreate when the open-fails-with-DoesNotExist ->
	// create-fails-with-AlreadyExists livelock guard trips, per
	// spec.md §4.5's "bounded retry budget against livelock".
	ErrOpenOrCreateRetryLimitExceeded = fmt.Errorf("service: open_or_create retry budget exceeded")
)
