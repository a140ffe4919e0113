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

// defaultMaxActiveRequests bounds how many outstanding requests a Client
// admits before LoanRequest starts failing with
// port.ErrMaxActiveRequestsReached; WithMaxActiveRequests overrides it.
const defaultMaxActiveRequests = 4

// RequestResponse selects the request-response messaging pattern on sb,
// typed by Req and Resp. As with PublishSubscribe, the type parameters
// live on this free function rather than on a generic method, which Go
// does not allow.
func RequestResponse[Req, Resp any](sb *ServiceBuilder) *RequestResponseServiceBuilder[Req, Resp] {
	return &RequestResponseServiceBuilder[Req, Resp]{
		inner: service.NewBuilder(sb.name, service.RequestResponse).
			WithPayloadType(typeDetailOf[Req]()).
			WithUserHeaderType(typeDetailOf[Resp]()).
			WithGlobal(sb.global).
			WithNodeId(sb.nodeId),
	}
}

// RequestResponseServiceBuilder builds or joins a request-response
// service typed by its request (Req) and response (Resp) payloads. Resp
// travels as this service's "user header" type slot -- package service
// has only two type-identity slots per service, and request-response
// needs exactly two types compared for compatibility, so Resp is
// naturally the second one rather than this module inventing a third
// slot.
type RequestResponseServiceBuilder[Req, Resp any] struct {
	inner *service.Builder
}

// WithLimits sets (Create) or requires a minimum of (Open) the per-role
// port capacity.
func (b *RequestResponseServiceBuilder[Req, Resp]) WithLimits(l config.Limits) *RequestResponseServiceBuilder[Req, Resp] {
	b.inner.WithLimits(l)
	return b
}

// Create exclusively creates a new request-response service.
func (b *RequestResponseServiceBuilder[Req, Resp]) Create(spec *service.AttributeSpecifier) (*RequestResponseService[Req, Resp], error) {
	svc, err := b.inner.Create(spec)
	if err != nil {
		return nil, err
	}
	return &RequestResponseService[Req, Resp]{svc: svc}, nil
}

// Open joins an existing request-response service.
func (b *RequestResponseServiceBuilder[Req, Resp]) Open(verifier *service.AttributeVerifier) (*RequestResponseService[Req, Resp], error) {
	svc, err := b.inner.Open(verifier)
	if err != nil {
		return nil, err
	}
	return &RequestResponseService[Req, Resp]{svc: svc}, nil
}

// OpenOrCreate tries Open, then Create.
func (b *RequestResponseServiceBuilder[Req, Resp]) OpenOrCreate(verifier *service.AttributeVerifier, spec *service.AttributeSpecifier) (*RequestResponseService[Req, Resp], error) {
	svc, err := b.inner.OpenOrCreate(verifier, spec)
	if err != nil {
		return nil, err
	}
	return &RequestResponseService[Req, Resp]{svc: svc}, nil
}

// RequestResponseService is an open or newly created request-response
// service: the handle a caller mints Clients and Servers from.
type RequestResponseService[Req, Resp any] struct {
	svc *service.Service
}

// Close releases this handle's reference to the underlying service.
func (s *RequestResponseService[Req, Resp]) Close() error { return s.svc.Close() }

// ServerBuilder starts building a new Server on this service.
func (s *RequestResponseService[Req, Resp]) ServerBuilder() *ServerBuilder[Req, Resp] {
	return &ServerBuilder[Req, Resp]{svc: s, sampleSlots: defaultSampleSlots}
}

// ServerBuilder mints a Server[Req, Resp] and registers it into its
// service's dynamic config roster.
type ServerBuilder[Req, Resp any] struct {
	svc         *RequestResponseService[Req, Resp]
	sampleSlots int
}

// WithSampleSlots overrides the response data segment's sizing,
// defaulting to defaultSampleSlots.
func (b *ServerBuilder[Req, Resp]) WithSampleSlots(n int) *ServerBuilder[Req, Resp] {
	b.sampleSlots = n
	return b
}

// Create mints a fresh PortId, creates the response data segment, and
// registers this Server in the service's roster. Clients discovered
// later are connected by UpdateConnections, mirroring
// Publisher.UpdateConnections.
func (b *ServerBuilder[Req, Resp]) Create() (*Server[Req, Resp], error) {
	id := port.NewPortId()
	var zeroResp Resp
	responseCapacity := dataSegmentCapacity(int(unsafe.Sizeof(zeroResp)), b.sampleSlots)

	inner, err := port.CreateServer(id, responseCapacity)
	if err != nil {
		return nil, err
	}
	if err := b.svc.svc.RegisterPort(config.RoleServer, id); err != nil {
		_ = inner.Close()
		return nil, err
	}
	_ = node.TagService(node.Id(b.svc.svc.NodeId()), b.svc.svc.Id().String())

	var zeroReq Req
	s := &Server[Req, Resp]{
		inner:           inner,
		svc:             b.svc,
		requestCapacity: dataSegmentCapacity(int(unsafe.Sizeof(zeroReq)), b.sampleSlots),
		connected:       make(map[config.PortId]bool),
	}
	s.UpdateConnections()
	return s, nil
}

// Server composes a request Subscriber with a response Publisher, typed
// by Req and Resp.
type Server[Req, Resp any] struct {
	inner           *port.Server
	svc             *RequestResponseService[Req, Resp]
	requestCapacity int
	connected       map[config.PortId]bool
}

// Id returns this Server's PortId.
func (s *Server[Req, Resp]) Id() config.PortId { return s.inner.Id() }

// UpdateConnections scans the service's client roster and connects to
// every client this Server has not already connected to.
func (s *Server[Req, Resp]) UpdateConnections() {
	s.svc.svc.Dynamic().Each(config.RoleClient, func(rec config.PortRecord) {
		if s.connected[rec.Id] {
			return
		}
		if err := s.inner.ConnectClient(rec.Id, s.requestCapacity); err == nil {
			s.connected[rec.Id] = true
		}
	})
}

// ReceiveRequest returns the next pending request, typed as *Req, or nil
// if none is pending.
func (s *Server[Req, Resp]) ReceiveRequest() (*Sample[Req], error) {
	sample, err := s.inner.ReceiveRequest()
	if err != nil || sample == nil {
		return nil, err
	}
	return &Sample[Req]{inner: sample}, nil
}

// LoanResponse reserves one Resp-sized response slot.
func (s *Server[Req, Resp]) LoanResponse() (*OutgoingResponse[Req, Resp], error) {
	var zero Resp
	sample, err := s.inner.LoanResponse(int(unsafe.Sizeof(zero)))
	if err != nil {
		return nil, err
	}
	return &OutgoingResponse[Req, Resp]{inner: sample, server: s}, nil
}

// ReclaimResponses drains released/evicted response slots so they can be
// reused; call periodically alongside UpdateConnections.
func (s *Server[Req, Resp]) ReclaimResponses() { s.inner.ReclaimResponses() }

// Close closes both sides of every connection, deregisters from the
// roster, and releases the response data segment.
func (s *Server[Req, Resp]) Close() error {
	s.svc.svc.Dynamic().Deregister(config.RoleServer, s.inner.Id())
	return s.inner.Close()
}

// OutgoingResponse is a loaned, not-yet-sent Resp slot.
type OutgoingResponse[Req, Resp any] struct {
	inner  *port.OutgoingSample
	server *Server[Req, Resp]
}

// Payload returns a pointer into the loaned slot's bytes, reinterpreted
// as *Resp.
func (s *OutgoingResponse[Req, Resp]) Payload() *Resp {
	return (*Resp)(unsafe.Pointer(&s.inner.Bytes()[0]))
}

// Send fans this response out to every connected client, bounded by
// deadline.
func (s *OutgoingResponse[Req, Resp]) Send(deadline time.Duration) error {
	return s.server.inner.SendResponse(s.inner, deadline)
}

// Discard returns the loaned slot without sending it.
func (s *OutgoingResponse[Req, Resp]) Discard() { s.inner.Discard() }

// ClientBuilder starts building a new Client targeting serverId on this
// service.
func (s *RequestResponseService[Req, Resp]) ClientBuilder(serverId config.PortId) *ClientBuilder[Req, Resp] {
	return &ClientBuilder[Req, Resp]{svc: s, serverId: serverId, sampleSlots: defaultSampleSlots, maxActiveRequests: defaultMaxActiveRequests}
}

// ClientBuilder mints a Client[Req, Resp] and registers it into its
// service's dynamic config roster. Unlike Publisher/Subscriber, a Client
// must be pointed at one specific Server up front: port.CreateClient
// connects both directions immediately rather than discovering peers via
// the roster, matching spec.md §4.8's description of request-response as
// a single client-server pair rather than a fan-out pattern.
type ClientBuilder[Req, Resp any] struct {
	svc               *RequestResponseService[Req, Resp]
	serverId          config.PortId
	sampleSlots       int
	maxActiveRequests int
}

// WithSampleSlots overrides the request data segment's sizing,
// defaulting to defaultSampleSlots.
func (b *ClientBuilder[Req, Resp]) WithSampleSlots(n int) *ClientBuilder[Req, Resp] {
	b.sampleSlots = n
	return b
}

// WithMaxActiveRequests overrides how many outstanding requests this
// Client admits before LoanRequest fails, defaulting to
// defaultMaxActiveRequests.
func (b *ClientBuilder[Req, Resp]) WithMaxActiveRequests(n int) *ClientBuilder[Req, Resp] {
	b.maxActiveRequests = n
	return b
}

// Create mints a fresh PortId, connects it to the builder's serverId in
// both directions, and registers it in the service's roster. The target
// server must already exist and have called UpdateConnections (or been
// created after this call and updated its own connections) before
// requests will actually flow.
func (b *ClientBuilder[Req, Resp]) Create() (*Client[Req, Resp], error) {
	id := port.NewPortId()
	var zeroReq Req
	var zeroResp Resp
	requestCapacity := dataSegmentCapacity(int(unsafe.Sizeof(zeroReq)), b.sampleSlots)
	responseCapacity := dataSegmentCapacity(int(unsafe.Sizeof(zeroResp)), b.sampleSlots)

	inner, err := port.CreateClient(id, b.serverId, requestCapacity, responseCapacity, b.maxActiveRequests)
	if err != nil {
		return nil, err
	}
	if err := b.svc.svc.RegisterPort(config.RoleClient, id); err != nil {
		_ = inner.Close()
		return nil, err
	}
	_ = node.TagService(node.Id(b.svc.svc.NodeId()), b.svc.svc.Id().String())
	return &Client[Req, Resp]{inner: inner, svc: b.svc}, nil
}

// Client composes a request Publisher with a response Subscriber, typed
// by Req and Resp.
type Client[Req, Resp any] struct {
	inner *port.Client
	svc   *RequestResponseService[Req, Resp]
}

// Id returns this Client's PortId.
func (c *Client[Req, Resp]) Id() config.PortId { return c.inner.Id() }

// LoanRequest reserves one Req-sized request slot, failing with
// port.ErrMaxActiveRequestsReached if too many requests are already
// outstanding.
func (c *Client[Req, Resp]) LoanRequest() (*OutgoingRequest[Req, Resp], error) {
	var zero Req
	sample, err := c.inner.LoanRequest(int(unsafe.Sizeof(zero)))
	if err != nil {
		return nil, err
	}
	return &OutgoingRequest[Req, Resp]{inner: sample, client: c}, nil
}

// ReceiveResponse returns the next pending response, typed as *Resp, or
// nil if none is pending yet.
func (c *Client[Req, Resp]) ReceiveResponse() (*Sample[Resp], error) {
	sample, err := c.inner.ReceiveResponse()
	if err != nil || sample == nil {
		return nil, err
	}
	return &Sample[Resp]{inner: sample}, nil
}

// ReclaimRequests drains released/evicted request slots so they can be
// reused; call periodically.
func (c *Client[Req, Resp]) ReclaimRequests() { c.inner.ReclaimRequests() }

// Close closes both sides and deregisters from the roster.
func (c *Client[Req, Resp]) Close() error {
	c.svc.svc.Dynamic().Deregister(config.RoleClient, c.inner.Id())
	return c.inner.Close()
}

// OutgoingRequest is a loaned, not-yet-sent Req slot.
type OutgoingRequest[Req, Resp any] struct {
	inner  *port.OutgoingSample
	client *Client[Req, Resp]
}

// Payload returns a pointer into the loaned slot's bytes, reinterpreted
// as *Req.
func (s *OutgoingRequest[Req, Resp]) Payload() *Req {
	return (*Req)(unsafe.Pointer(&s.inner.Bytes()[0]))
}

// Send sends this request to the server, bounded by deadline.
func (s *OutgoingRequest[Req, Resp]) Send(deadline time.Duration) error {
	return s.client.inner.SendRequest(s.inner, deadline)
}

// Discard returns the loaned slot without sending it.
func (s *OutgoingRequest[Req, Resp]) Discard() { s.inner.Discard() }
