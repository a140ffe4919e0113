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

package waitset

import "fmt"

var (
	// ErrAlreadyAttached is returned by Attach/AttachWithDeadline when the
	// same NotificationSource value is attached to a WaitSet twice.
	ErrAlreadyAttached = fmt.Errorf("waitset: source is already attached")
	// ErrUnknownAttachment is returned by Guard.Detach once the guard's
	// attachment has already been detached or its WaitSet closed.
	ErrUnknownAttachment = fmt.Errorf("waitset: attachment is unknown or already detached")
	// ErrInvalidInterval is returned by AttachWithDeadline and
	// AttachInterval for a non-positive duration.
	ErrInvalidInterval = fmt.Errorf("waitset: interval must be positive")
	// ErrClosed is returned by RunOnce and Attach/AttachWithDeadline/
	// AttachInterval once Close has run; Run returns nil in that case.
	ErrClosed = fmt.Errorf("waitset: closed")
	// ErrTimeout is returned by RunOnce when no attachment fires before a
	// positive timeout elapses.
	ErrTimeout = fmt.Errorf("waitset: timed out waiting for an attachment")
)
