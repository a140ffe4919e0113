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

import (
	"time"

	"github.com/eclipse-iceoryx/iceoryx2-core-go/shm"
)

// ConfigFormatVersion is written into every DynamicConfigStore's header.
// OpenDynamicConfigStore rejects a store written by a different version
// with ErrVersionMismatch rather than risk misinterpreting its layout.
const ConfigFormatVersion uint64 = 1

// Global collects the process-wide settings that govern how the stores in
// this package create and open shared state: where they live, and how
// long an opener is willing to wait for a concurrent creator to finish.
// File-based configuration loading is out of scope for this module --
// callers construct a Global with Go struct literals or flags of their
// own choosing; DefaultGlobal returns the values every other package in
// this module assumes when none is supplied explicitly.
type Global struct {
	// RootPathHint and Prefix document the namespace every store in this
	// package lives under. They default to package shm's own
	// DefaultPathHint/DefaultPrefix, which is what every CreateOrOpen/Open
	// call in this package actually uses; a future shm variant that
	// accepts a configurable root would thread these two fields through.
	RootPathHint string
	Prefix       string

	// CreationTimeout bounds how long OpenStaticConfigStore waits for a
	// concurrent creator to seal the store, and how long
	// OpenDynamicConfigStore waits for one to finish writing its header.
	CreationTimeout time.Duration

	// OpenRetryLimit holds a bound for the open-fails-with-DoesNotExist ->
	// create-fails-with-AlreadyExists -> open retry loop of open_or_create.
	// No code in this module reads it: service.Builder.OpenOrCreate bounds
	// its loop with the constant service.BuilderRetryLimit instead.
	OpenRetryLimit int
}

// DefaultGlobal returns the settings this module uses when a caller has
// not configured its own.
func DefaultGlobal() Global {
	return Global{
		RootPathHint:    shm.DefaultPathHint,
		Prefix:          shm.DefaultPrefix,
		CreationTimeout: 10 * time.Millisecond,
		OpenRetryLimit:  32,
	}
}
