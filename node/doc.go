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

// Package node implements the per-process liveness token every
// participant in this module holds for as long as it lives, and the
// monitor/cleaner pair other processes use to tell a merely-quiet node
// apart from one whose process has died without a chance to clean up
// after itself.
//
// A Node's monitor token is an advisory exclusive file lock: held for the
// Node's entire lifetime, released automatically by the kernel if the
// holding process dies, with no cooperation required from the corpse.
// That single property is what lets StateOf distinguish Alive (lock
// held) from Dead (token file present, lock free) from DoesNotExist
// (token file absent) without the observing process needing to know
// anything about how the owner died.
package node
