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

package port

import "github.com/eclipse-iceoryx/iceoryx2-core-go/zerocopy"

// ConnectionConfig carries the per-connection settings every
// Publisher-Subscriber or request/response pair must agree on, matching
// zerocopy.Builder's own options one for one.
type ConnectionConfig struct {
	BufferSize         int
	MaxBorrowedSamples int
	EnableSafeOverflow bool
}

// DefaultConnectionConfig mirrors zerocopy's own defaults.
func DefaultConnectionConfig() ConnectionConfig {
	return ConnectionConfig{
		BufferSize:         zerocopy.DefaultBufferSize,
		MaxBorrowedSamples: zerocopy.DefaultMaxBorrowedSamples,
		EnableSafeOverflow: zerocopy.DefaultEnableSafeOverflow,
	}
}

func (c ConnectionConfig) builder(name string) *zerocopy.Builder {
	return zerocopy.NewBuilder(name).
		BufferSize(c.BufferSize).
		MaxBorrowedSamples(c.MaxBorrowedSamples).
		EnableSafeOverflow(c.EnableSafeOverflow)
}
