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

package node

import "fmt"

var (
	// ErrTokenAlreadyHeld is returned by CreateMonitorToken in the
	// vanishingly unlikely event a freshly minted NodeId collides with a
	// live node's token.
	ErrTokenAlreadyHeld = fmt.Errorf("node: monitor token already held")

	// ErrNodeStillAlive is returned by AcquireCleaner when the target
	// node's monitor token is still held by a live process.
	ErrNodeStillAlive = fmt.Errorf("node: cannot clean up a node that is still alive")

	// ErrCleanerAlreadyRunning is returned by AcquireCleaner when another
	// process already holds the cleaner lock for this node.
	ErrCleanerAlreadyRunning = fmt.Errorf("node: another cleaner is already running for this node")

	// ErrDoesNotExist is returned when the requested node has no token
	// and no details on record at all.
	ErrDoesNotExist = fmt.Errorf("node: no such node")
)
