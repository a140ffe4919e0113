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

package config

import "fmt"

var (
	// ErrAlreadyExists is returned by a Create* call when another process
	// already created the store under the requested name.
	ErrAlreadyExists = fmt.Errorf("config: store already exists")

	// ErrDoesNotExist is returned by an Open* call when no store exists
	// under the requested name.
	ErrDoesNotExist = fmt.Errorf("config: store does not exist")

	// ErrHangsInCreation is returned by OpenStaticConfigStore when the
	// creator has not sealed the store within the configured creation
	// timeout.
	ErrHangsInCreation = fmt.Errorf("config: static config store did not seal within the creation timeout")

	// ErrVersionMismatch is returned by OpenDynamicConfigStore when the
	// existing store was written by an incompatible package version.
	ErrVersionMismatch = fmt.Errorf("config: dynamic config store version mismatch")

	// ErrIncompatibleCapacity is returned by OpenDynamicConfigStore when
	// an opener's role limits do not match the store's.
	ErrIncompatibleCapacity = fmt.Errorf("config: dynamic config store capacity mismatch")

	// ErrMarkedForDestruction is returned by OpenDynamicConfigStore when
	// the store's reference count had already fallen to zero, meaning
	// its last participant is in the process of removing it.
	ErrMarkedForDestruction = fmt.Errorf("config: dynamic config store is marked for destruction")

	// ErrRosterFull is returned by DynamicConfigStore.Register when the
	// requested role's fixed-capacity slot array has no room left.
	ErrRosterFull = fmt.Errorf("config: dynamic config store roster is full for this role")

	// ErrPayloadTooLarge is returned by CreateStaticConfigStore when the
	// caller's serialized payload does not fit in the requested capacity.
	ErrPayloadTooLarge = fmt.Errorf("config: static config payload exceeds store capacity")
)
