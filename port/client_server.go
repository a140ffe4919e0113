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
	"sync"
	"time"

	"github.com/eclipse-iceoryx/iceoryx2-core-go/config"
)

// Client composes a request Publisher (client -> server) with a response
// Subscriber (server -> client), per spec.md §4.8's symmetric
// request-response structure.
type Client struct {
	id        config.PortId
	serverId  config.PortId
	requests  *Publisher
	responses *Subscriber

	mu        sync.Mutex
	maxActive int
	active    int
}

// CreateClient creates id's request Publisher (sized requestCapacity)
// and connects it to serverId, then maps serverId's response data
// segment (sized responseCapacity) and connects a response Subscriber to
// it. maxActiveRequests bounds how many requests LoanRequest will admit
// without a matching response having been observed yet. serverId's
// response Publisher must already exist (see CreateServer) before this
// is called.
func CreateClient(id, serverId config.PortId, requestCapacity, responseCapacity, maxActiveRequests int) (*Client, error) {
	requests, err := CreatePublisher(id, requestCapacity)
	if err != nil {
		return nil, err
	}
	if err := requests.Connect(serverId, DefaultConnectionConfig()); err != nil {
		requests.Close()
		return nil, err
	}

	responses := CreateSubscriber(id)
	if err := responses.Connect(serverId, responseCapacity, DefaultConnectionConfig()); err != nil {
		requests.Close()
		return nil, err
	}

	return &Client{
		id:        id,
		serverId:  serverId,
		requests:  requests,
		responses: responses,
		maxActive: maxActiveRequests,
	}, nil
}

// Id returns this Client's PortId.
func (c *Client) Id() config.PortId { return c.id }

// LoanRequest reserves a size-byte request slot, failing with
// ErrMaxActiveRequestsReached if MaxActiveRequests requests are already
// outstanding.
func (c *Client) LoanRequest(size int) (*OutgoingSample, error) {
	c.mu.Lock()
	if c.active >= c.maxActive {
		c.mu.Unlock()
		return nil, ErrMaxActiveRequestsReached
	}
	c.active++
	c.mu.Unlock()

	sample, err := c.requests.LoanUninit(size)
	if err != nil {
		c.mu.Lock()
		c.active--
		c.mu.Unlock()
		return nil, err
	}
	return sample, nil
}

// SendRequest sends sample to the server, bounded by deadline.
func (c *Client) SendRequest(sample *OutgoingSample, deadline time.Duration) error {
	return c.requests.Send(sample, deadline)
}

// ReceiveResponse returns the next pending response, or nil if none is
// pending yet. Observing a response frees up one slot in
// MaxActiveRequests; the returned Sample must still be Released once the
// caller is done reading it.
func (c *Client) ReceiveResponse() (*Sample, error) {
	sample, err := c.responses.Receive()
	if err != nil || sample == nil {
		return sample, err
	}
	c.mu.Lock()
	if c.active > 0 {
		c.active--
	}
	c.mu.Unlock()
	return sample, nil
}

// ReclaimRequests drains released/evicted request slots so they can be
// reused; call periodically, same as Publisher.ReclaimAll.
func (c *Client) ReclaimRequests() { c.requests.ReclaimAll() }

// Close closes both the request and response sides.
func (c *Client) Close() error {
	c.requests.Close()
	return c.responses.Close()
}

// Server composes a request Subscriber (clients -> server) with a
// response Publisher (server -> clients).
type Server struct {
	id        config.PortId
	requests  *Subscriber
	responses *Publisher
}

// CreateServer creates id's response data segment (sized
// responseCapacity); ConnectClient must be called once per client before
// that client's requests or responses will flow.
func CreateServer(id config.PortId, responseCapacity int) (*Server, error) {
	responses, err := CreatePublisher(id, responseCapacity)
	if err != nil {
		return nil, err
	}
	return &Server{
		id:        id,
		requests:  CreateSubscriber(id),
		responses: responses,
	}, nil
}

// Id returns this Server's PortId.
func (s *Server) Id() config.PortId { return s.id }

// ConnectClient maps clientId's request data segment (sized
// requestCapacity) and connects this server to both the client's
// requests and its own responses back to that client.
func (s *Server) ConnectClient(clientId config.PortId, requestCapacity int) error {
	if err := s.requests.Connect(clientId, requestCapacity, DefaultConnectionConfig()); err != nil {
		return err
	}
	if err := s.responses.Connect(clientId, DefaultConnectionConfig()); err != nil {
		s.requests.Disconnect(clientId)
		return err
	}
	return nil
}

// DisconnectClient tears down both directions of clientId's connection.
func (s *Server) DisconnectClient(clientId config.PortId) {
	s.requests.Disconnect(clientId)
	s.responses.Disconnect(clientId)
}

// ReceiveRequest returns the next pending request, or nil if none is
// pending.
func (s *Server) ReceiveRequest() (*Sample, error) {
	return s.requests.Receive()
}

// LoanResponse reserves a size-byte response slot.
func (s *Server) LoanResponse(size int) (*OutgoingSample, error) {
	return s.responses.LoanUninit(size)
}

// SendResponse sends sample to every connected client, bounded by
// deadline. In the common single-client-per-response case callers
// should instead compose by connecting exactly one client at a time, as
// Send has no way to target one specific client out of several
// connected Senders.
func (s *Server) SendResponse(sample *OutgoingSample, deadline time.Duration) error {
	return s.responses.Send(sample, deadline)
}

// ReclaimResponses drains released/evicted response slots so they can be
// reused; call periodically, same as Publisher.ReclaimAll.
func (s *Server) ReclaimResponses() { s.responses.ReclaimAll() }

// Close closes both the request and response sides.
func (s *Server) Close() error {
	s.requests.Close()
	return s.responses.Close()
}
