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

// NotificationSource is anything a WaitSet can poll for a pending wakeup
// without blocking. *event.Listener satisfies this directly.
type NotificationSource interface {
	HasPendingNotification() bool
}

// Kind classifies why an AttachmentId fired.
type Kind int

const (
	// KindNotification fires whenever its source has a pending wakeup.
	KindNotification Kind = iota
	// KindDeadline fires on its source's wakeups like KindNotification,
	// but also fires with DeadlineMissed set if no wakeup arrived within
	// the attachment's configured interval.
	KindDeadline
	// KindTick has no source at all and fires once per interval,
	// standing in for a plain timer.
	KindTick
)

func (k Kind) String() string {
	switch k {
	case KindNotification:
		return "notification"
	case KindDeadline:
		return "deadline"
	case KindTick:
		return "tick"
	default:
		return "unknown"
	}
}

// AttachmentId identifies which attachment fired and, for a KindDeadline
// attachment, whether it fired because its interval elapsed with no
// wakeup rather than because a wakeup arrived.
type AttachmentId struct {
	Kind           Kind
	id             uint64
	DeadlineMissed bool
}

// Progression is returned by a Run/RunOnce callback to say whether the
// WaitSet should keep dispatching the rest of the attachments that fired
// in this step (Continue) or stop immediately, leaving any remaining
// fired attachments from this step undelivered (Stop).
type Progression int

const (
	Continue Progression = iota
	Stop
)

// Guard is returned by Attach/AttachWithDeadline/AttachInterval. Detach
// removes the attachment; a Guard that is never detached stays attached
// until its WaitSet is closed.
type Guard struct {
	ws *WaitSet
	id uint64
}

// Detach stops this attachment from firing and releases its poller
// goroutine. Detaching twice, or detaching after the owning WaitSet has
// been closed, returns ErrUnknownAttachment.
func (g *Guard) Detach() error {
	return g.ws.detach(g.id)
}
