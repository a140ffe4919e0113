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
	"time"
	"unsafe"

	"github.com/eclipse-iceoryx/iceoryx2-core-go/config"
	"github.com/eclipse-iceoryx/iceoryx2-core-go/node"
	"github.com/eclipse-iceoryx/iceoryx2-core-go/port"
	"github.com/eclipse-iceoryx/iceoryx2-core-go/service"
)

// defaultSampleSlots bounds how many in-flight samples a Publisher's
// data segment is sized for by default; WithSampleSlots overrides it.
const defaultSampleSlots = 16

// perSampleOverhead pads a data segment's per-slot budget generously
// beyond sizeof(Payload) so the PowerOfTwoAllocator backing it (which
// rounds each allocation's bookkeeping up anyway) never starves on the
// header port.dataSegment prepends to every loan. Overestimating only
// costs unused shared-memory bytes; underestimating fails allocation
// outright, so this errs generous rather than exact.
const perSampleOverhead = 64

func dataSegmentCapacity(payloadSize, slots int) int {
	return (payloadSize + perSampleOverhead) * slots
}

// PublishSubscribe selects the publish-subscribe messaging pattern on
// sb, typed by Payload. Go has no generic methods, so the type
// parameter that would naturally belong on a ServiceBuilder.
// PublishSubscribe[T]() method instead lives on this free function --
// see doc.go.
func PublishSubscribe[Payload any](sb *ServiceBuilder) *PublishSubscribeServiceBuilder[Payload] {
	return &PublishSubscribeServiceBuilder[Payload]{
		inner: service.NewBuilder(sb.name, service.PublishSubscribe).
			WithPayloadType(typeDetailOf[Payload]()).
			WithGlobal(sb.global).
			WithNodeId(sb.nodeId),
	}
}

// PublishSubscribeServiceBuilder builds or joins a publish-subscribe
// service typed by Payload.
type PublishSubscribeServiceBuilder[Payload any] struct {
	inner *service.Builder
}

// WithLimits sets (Create) or requires a minimum of (Open) the per-role
// port capacity.
func (b *PublishSubscribeServiceBuilder[Payload]) WithLimits(l config.Limits) *PublishSubscribeServiceBuilder[Payload] {
	b.inner.WithLimits(l)
	return b
}

// WithSafeOverflow sets the safe-overflow flag stamped into the service's
// static config (Create) or required to match it exactly (Open). The
// flag is not applied to connections: Publisher and Subscriber
// UpdateConnections always connect with port.DefaultConnectionConfig(),
// whose safe overflow is off, so a full subscriber buffer makes a send
// wait or fail rather than evict the oldest sample.
func (b *PublishSubscribeServiceBuilder[Payload]) WithSafeOverflow(v bool) *PublishSubscribeServiceBuilder[Payload] {
	b.inner.WithSafeOverflow(v)
	return b
}

// Create exclusively creates a new publish-subscribe service.
func (b *PublishSubscribeServiceBuilder[Payload]) Create(spec *service.AttributeSpecifier) (*PublishSubscribeService[Payload], error) {
	svc, err := b.inner.Create(spec)
	if err != nil {
		return nil, err
	}
	return &PublishSubscribeService[Payload]{svc: svc}, nil
}

// Open joins an existing publish-subscribe service.
func (b *PublishSubscribeServiceBuilder[Payload]) Open(verifier *service.AttributeVerifier) (*PublishSubscribeService[Payload], error) {
	svc, err := b.inner.Open(verifier)
	if err != nil {
		return nil, err
	}
	return &PublishSubscribeService[Payload]{svc: svc}, nil
}

// OpenOrCreate tries Open, then Create.
func (b *PublishSubscribeServiceBuilder[Payload]) OpenOrCreate(verifier *service.AttributeVerifier, spec *service.AttributeSpecifier) (*PublishSubscribeService[Payload], error) {
	svc, err := b.inner.OpenOrCreate(verifier, spec)
	if err != nil {
		return nil, err
	}
	return &PublishSubscribeService[Payload]{svc: svc}, nil
}

// PublishSubscribeService is an open or newly created publish-subscribe
// service, typed by Payload: the handle a caller mints Publishers and
// Subscribers from.
type PublishSubscribeService[Payload any] struct {
	svc *service.Service
}

// Close releases this handle's reference to the underlying service.
func (s *PublishSubscribeService[Payload]) Close() error { return s.svc.Close() }

// PublisherBuilder starts building a new Publisher on this service.
func (s *PublishSubscribeService[Payload]) PublisherBuilder() *PublisherBuilder[Payload] {
	return &PublisherBuilder[Payload]{svc: s, sampleSlots: defaultSampleSlots}
}

// PublisherBuilder mints a Publisher[Payload] and registers it into its
// service's dynamic config roster.
type PublisherBuilder[Payload any] struct {
	svc         *PublishSubscribeService[Payload]
	sampleSlots int
}

// WithSampleSlots overrides how many in-flight samples the new
// Publisher's data segment is sized to hold concurrently, defaulting to
// defaultSampleSlots.
func (b *PublisherBuilder[Payload]) WithSampleSlots(n int) *PublisherBuilder[Payload] {
	b.sampleSlots = n
	return b
}

// Create mints a fresh PortId, creates its data segment, registers it as
// a publisher in the service's roster, and connects it to every
// subscriber already registered.
func (b *PublisherBuilder[Payload]) Create() (*Publisher[Payload], error) {
	id := port.NewPortId()
	var zero Payload
	capacity := dataSegmentCapacity(int(unsafe.Sizeof(zero)), b.sampleSlots)

	inner, err := port.CreatePublisher(id, capacity)
	if err != nil {
		return nil, err
	}
	if err := b.svc.svc.RegisterPort(config.RolePublisher, id); err != nil {
		_ = inner.Close()
		return nil, err
	}
	_ = node.TagService(node.Id(b.svc.svc.NodeId()), b.svc.svc.Id().String())

	p := &Publisher[Payload]{inner: inner, svc: b.svc}
	p.UpdateConnections()
	return p, nil
}

// Publisher is a type-safe façade over port.Publisher: LoanUninit hands
// back an OutgoingSample[Payload] whose Payload method is a typed view
// over the same bytes port.OutgoingSample.Bytes would return, instead of
// a caller computing sizes and casts by hand.
type Publisher[Payload any] struct {
	inner *port.Publisher
	svc   *PublishSubscribeService[Payload]
}

// Id returns this Publisher's PortId.
func (p *Publisher[Payload]) Id() config.PortId { return p.inner.Id() }

// LoanUninit reserves one Payload-sized slot.
func (p *Publisher[Payload]) LoanUninit() (*OutgoingSample[Payload], error) {
	var zero Payload
	sample, err := p.inner.LoanUninit(int(unsafe.Sizeof(zero)))
	if err != nil {
		return nil, err
	}
	return &OutgoingSample[Payload]{inner: sample, publisher: p}, nil
}

// UpdateConnections scans the service's subscriber roster and connects
// to every subscriber this Publisher is not already connected to. A
// long-lived Publisher should call this periodically (e.g. from the same
// loop that calls ReclaimAll) to pick up subscribers that joined after
// it started -- the same update_connections responsibility
// iceoryx2's port layer assigns to the publisher/subscriber side rather
// than to the registry.
func (p *Publisher[Payload]) UpdateConnections() {
	p.svc.svc.Dynamic().Each(config.RoleSubscriber, func(rec config.PortRecord) {
		if rec.Id == p.inner.Id() {
			return
		}
		_ = p.inner.Connect(rec.Id, port.DefaultConnectionConfig())
	})
}

// ReclaimAll drains released/evicted slots so they can be reused; call
// periodically alongside UpdateConnections.
func (p *Publisher[Payload]) ReclaimAll() { p.inner.ReclaimAll() }

// Close closes every connection, deregisters from the roster, and
// releases the data segment.
func (p *Publisher[Payload]) Close() error {
	p.svc.svc.Dynamic().Deregister(config.RolePublisher, p.inner.Id())
	return p.inner.Close()
}

// OutgoingSample is a loaned, not-yet-sent Payload slot.
type OutgoingSample[Payload any] struct {
	inner     *port.OutgoingSample
	publisher *Publisher[Payload]
}

// Payload returns a pointer into the loaned slot's bytes, reinterpreted
// as *Payload. The caller writes through it before Send.
func (s *OutgoingSample[Payload]) Payload() *Payload {
	return (*Payload)(unsafe.Pointer(&s.inner.Bytes()[0]))
}

// Send fans this sample out to every currently connected Subscriber,
// bounded by deadline (0 meaning unbounded).
func (s *OutgoingSample[Payload]) Send(deadline time.Duration) error {
	return s.publisher.inner.Send(s.inner, deadline)
}

// Discard returns the loaned slot without sending it.
func (s *OutgoingSample[Payload]) Discard() { s.inner.Discard() }

// SubscriberBuilder starts building a new Subscriber on this service.
func (s *PublishSubscribeService[Payload]) SubscriberBuilder() *SubscriberBuilder[Payload] {
	return &SubscriberBuilder[Payload]{svc: s, sampleSlots: defaultSampleSlots}
}

// SubscriberBuilder mints a Subscriber[Payload] and registers it into
// its service's dynamic config roster.
type SubscriberBuilder[Payload any] struct {
	svc         *PublishSubscribeService[Payload]
	sampleSlots int
}

// WithSampleSlots overrides the per-publisher data segment size this
// Subscriber expects to map, which must agree with the capacity the
// corresponding Publisher was created with.
func (b *SubscriberBuilder[Payload]) WithSampleSlots(n int) *SubscriberBuilder[Payload] {
	b.sampleSlots = n
	return b
}

// Create mints a fresh PortId, registers it as a subscriber in the
// service's roster, and connects it to every publisher already
// registered.
func (b *SubscriberBuilder[Payload]) Create() (*Subscriber[Payload], error) {
	id := port.NewPortId()
	if err := b.svc.svc.RegisterPort(config.RoleSubscriber, id); err != nil {
		return nil, err
	}
	_ = node.TagService(node.Id(b.svc.svc.NodeId()), b.svc.svc.Id().String())

	var zero Payload
	s := &Subscriber[Payload]{
		inner:    port.CreateSubscriber(id),
		svc:      b.svc,
		capacity: dataSegmentCapacity(int(unsafe.Sizeof(zero)), b.sampleSlots),
	}
	s.UpdateConnections()
	return s, nil
}

// Subscriber is a type-safe façade over port.Subscriber.
type Subscriber[Payload any] struct {
	inner    *port.Subscriber
	svc      *PublishSubscribeService[Payload]
	capacity int
}

// Id returns this Subscriber's PortId.
func (s *Subscriber[Payload]) Id() config.PortId { return s.inner.Id() }

// UpdateConnections scans the service's publisher roster and connects to
// every publisher this Subscriber is not already connected to, the
// subscriber-side counterpart of Publisher.UpdateConnections.
func (s *Subscriber[Payload]) UpdateConnections() {
	s.svc.svc.Dynamic().Each(config.RolePublisher, func(rec config.PortRecord) {
		if rec.Id == s.inner.Id() {
			return
		}
		_ = s.inner.Connect(rec.Id, s.capacity, port.DefaultConnectionConfig())
	})
}

// Receive returns the next pending Sample[Payload] from whichever
// connected Publisher happens to have one, or nil if none currently do.
func (s *Subscriber[Payload]) Receive() (*Sample[Payload], error) {
	sample, err := s.inner.Receive()
	if err != nil || sample == nil {
		return nil, err
	}
	return &Sample[Payload]{inner: sample}, nil
}

// Close closes every connection and deregisters from the roster.
func (s *Subscriber[Payload]) Close() error {
	s.svc.svc.Dynamic().Deregister(config.RoleSubscriber, s.inner.Id())
	return s.inner.Close()
}

// Sample is a received, not-yet-released Payload.
type Sample[Payload any] struct {
	inner *port.Sample
}

// Payload returns a pointer into the received slot's bytes,
// reinterpreted as *Payload. Valid only until Release is called.
func (s *Sample[Payload]) Payload() *Payload {
	return (*Payload)(unsafe.Pointer(&s.inner.Bytes()[0]))
}

// Release returns this borrow to the Publisher.
func (s *Sample[Payload]) Release() error { return s.inner.Release() }
