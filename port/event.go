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

import (
	"github.com/eclipse-iceoryx/iceoryx2-core-go/config"
	"github.com/eclipse-iceoryx/iceoryx2-core-go/event"
)

// Listener is a port-level event.Listener, named after the PortId it
// belongs to. Embedding *event.Listener promotes TryWaitOne/TimedWaitOne/
// BlockingWaitOne/TryWaitAll/TimedWaitAll/BlockingWaitAll/
// HasPendingNotification/Close directly, so a *Listener is usable
// anywhere a waitset.NotificationSource is, with no adapter needed.
type Listener struct {
	id config.PortId
	*event.Listener
}

// Id returns this Listener's PortId.
func (l *Listener) Id() config.PortId { return l.id }

// CreateListener creates the event channel belonging to id.
func CreateListener(id config.PortId) (*Listener, error) {
	inner, err := event.NewBuilder(eventChannelName(id)).CreateListener()
	if err != nil {
		return nil, err
	}
	return &Listener{id: id, Listener: inner}, nil
}

// Notifier is a port-level event.Notifier attached to listenerId's event
// channel.
type Notifier struct {
	id config.PortId
	*event.Notifier
}

// Id returns this Notifier's PortId, which is the PortId of the Listener
// it is attached to -- a Notifier has no separate registered identity of
// its own (see spec.md §4.4: any number of Notifiers may attach to one
// Listener).
func (n *Notifier) Id() config.PortId { return n.id }

// OpenNotifier attaches to listenerId's event channel.
func OpenNotifier(listenerId config.PortId) (*Notifier, error) {
	inner, err := event.NewBuilder(eventChannelName(listenerId)).OpenNotifier()
	if err != nil {
		return nil, err
	}
	return &Notifier{id: listenerId, Notifier: inner}, nil
}
