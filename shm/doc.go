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

// Package shm manages the POSIX shared-memory segments that every
// cross-process data structure in this module (connections, event
// channels, configuration stores) is ultimately laid out inside of.
//
// A Segment wraps a single named object under /dev/shm, opened with
// create-or-open-existing semantics so that whichever process gets there
// first becomes the owner responsible for initializing the segment's
// contents, and every later opener finds the same bytes already in
// place. Once mapped, a segment whose internal layout is fixed at
// creation, such as a connection's management block, is carved up by
// slicing its bytes at computed offsets; a service's payload data
// segment, where publishers loan differently sized samples over the
// segment's lifetime, is managed by a PowerOfTwoAllocator or
// BestFitAllocator handing out offsets into it.
package shm
