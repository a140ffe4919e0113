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

// Package wait provides a deadline-bounded adaptive wait loop on top of
// code.hybscloud.com/iox's backoff primitive, used anywhere this module
// needs to poll a condition living in shared memory until it becomes true
// or a timeout elapses: a connection joiner waiting for the creator to
// finish initializing (package zerocopy), a config store opener waiting
// for its creator to seal or initialize it (package config), a Listener
// waiting for a notification (package event), a blocking send waiting
// for receive-channel space (package zerocopy).
//
// This mirrors the original project's AdaptiveWaitBuilder/AdaptiveWait:
// back off more aggressively the longer the condition has not yet held,
// without ever sleeping so long that a short-lived wait overshoots its
// deadline by more than one backoff step.
package wait
