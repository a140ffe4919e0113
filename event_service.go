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

package iceoryx2

import (
	"github.com/eclipse-iceoryx/iceoryx2-core-go/config"
	"github.com/eclipse-iceoryx/iceoryx2-core-go/node"
	"github.com/eclipse-iceoryx/iceoryx2-core-go/port"
	"github.com/eclipse-iceoryx/iceoryx2-core-go/service"
)

// Event selects the event messaging pattern on sb.
func (sb *ServiceBuilder) Event() *EventServiceBuilder {
	return &EventServiceBuilder{
		inner: service.NewBuilder(sb.name, service.Event).WithGlobal(sb.global).WithNodeId(sb.nodeId),
	}
}

// EventServiceBuilder builds or joins an event service: one that mints
// Listeners (each with its own event channel) and Notifiers that attach
// to a Listener's channel, per spec.md §4.4.
type EventServiceBuilder struct {
	inner *service.Builder
}

// WithLimits sets (Create) or requires a minimum of (Open) the number of
// listeners and notifiers this service supports.
func (b *EventServiceBuilder) WithLimits(l config.Limits) *EventServiceBuilder {
	b.inner.WithLimits(l)
	return b
}

// Create exclusively creates a new event service.
func (b *EventServiceBuilder) Create(spec *service.AttributeSpecifier) (*EventService, error) {
	svc, err := b.inner.Create(spec)
	if err != nil {
		return nil, err
	}
	return &EventService{svc: svc}, nil
}

// Open joins an existing event service.
func (b *EventServiceBuilder) Open(verifier *service.AttributeVerifier) (*EventService, error) {
	svc, err := b.inner.Open(verifier)
	if err != nil {
		return nil, err
	}
	return &EventService{svc: svc}, nil
}

// OpenOrCreate tries Open, then Create, per service.Builder.OpenOrCreate.
func (b *EventServiceBuilder) OpenOrCreate(verifier *service.AttributeVerifier, spec *service.AttributeSpecifier) (*EventService, error) {
	svc, err := b.inner.OpenOrCreate(verifier, spec)
	if err != nil {
		return nil, err
	}
	return &EventService{svc: svc}, nil
}

// EventService is an open or newly created event service: the handle a
// caller mints Listeners and Notifiers from.
type EventService struct {
	svc *service.Service
}

// Close releases this handle's reference to the underlying service.
func (s *EventService) Close() error { return s.svc.Close() }

// ListenerBuilder starts building a new Listener on this service.
func (s *EventService) ListenerBuilder() *ListenerBuilder {
	return &ListenerBuilder{svc: s}
}

// ListenerBuilder mints a Listener and registers it into this service's
// dynamic config roster.
type ListenerBuilder struct {
	svc *EventService
}

// Create mints a fresh PortId, opens its event channel, and registers it
// as a listener in the service's roster.
func (b *ListenerBuilder) Create() (*port.Listener, error) {
	id := port.NewPortId()
	listener, err := port.CreateListener(id)
	if err != nil {
		return nil, err
	}
	if err := b.svc.svc.RegisterPort(config.RoleListener, id); err != nil {
		_ = listener.Close()
		return nil, err
	}
	_ = node.TagService(node.Id(b.svc.svc.NodeId()), b.svc.svc.Id().String())
	return listener, nil
}

// NotifierBuilder starts building a Notifier attached to listenerId.
func (s *EventService) NotifierBuilder(listenerId config.PortId) *NotifierBuilder {
	return &NotifierBuilder{listenerId: listenerId}
}

// NotifierBuilder attaches a Notifier to an existing Listener's event
// channel. A Notifier has no roster entry of its own, per spec.md §4.4
// ("any number of Notifiers may attach to one Listener").
type NotifierBuilder struct {
	listenerId config.PortId
}

// Create attaches a fresh Notifier to this builder's listenerId.
func (b *NotifierBuilder) Create() (*port.Notifier, error) {
	return port.OpenNotifier(b.listenerId)
}
