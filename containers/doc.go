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

// Package containers provides relocatable, fixed-capacity data structures
// whose byte layout is valid regardless of the virtual address they are
// mapped at.
//
// A type is relocatable when it never stores an absolute pointer to its own
// payload, only offsets relative to its own address. That lets one process
// write the bytes at address A, a second process map the same bytes at
// address B, and both observe identical behavior — the basic requirement
// for any structure placed inside a shared-memory segment (see package shm)
// or a zero-copy connection (see package zerocopy).
//
// Relocatable containers in this package come in two flavors:
//
//   - "New*" constructors build a normal, process-local, owning container
//     (backing storage is a regular Go slice/array).
//   - "Init*" constructors build the same container inside caller-supplied
//     memory (typically a BumpAllocator view over a memory-mapped region)
//     so that it participates correctly when that memory is shared across
//     process boundaries.
//
// Every relocatable type here is a plain, exported struct: callers manage
// its lifetime explicitly (no finalizers), mirroring how the rest of this
// module treats shared-memory-backed resources.
package containers
