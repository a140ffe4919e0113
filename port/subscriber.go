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

	"github.com/eclipse-iceoryx/iceoryx2-core-go/config"
	"github.com/eclipse-iceoryx/iceoryx2-core-go/internal/metrics"
	"github.com/eclipse-iceoryx/iceoryx2-core-go/zerocopy"
)

type subscriberConnection struct {
	segment  *dataSegment
	receiver *zerocopy.Receiver
}

// Subscriber maps each connected Publisher's data segment read-only and
// holds one zerocopy.Receiver per connection.
type Subscriber struct {
	id config.PortId

	mu    sync.Mutex
	conns map[config.PortId]*subscriberConnection
}

// CreateSubscriber starts an empty Subscriber identified by id.
func CreateSubscriber(id config.PortId) *Subscriber {
	return &Subscriber{id: id, conns: make(map[config.PortId]*subscriberConnection)}
}

// Id returns this Subscriber's PortId.
func (s *Subscriber) Id() config.PortId { return s.id }

// Connect maps publisherId's data segment (already created, capacity
// bytes) and creates the zero-copy connection to it, matching cfg
// against the Publisher side's own settings.
func (s *Subscriber) Connect(publisherId config.PortId, capacity int, cfg ConnectionConfig) error {
	segment, err := openDataSegment(publisherId, capacity)
	if err != nil {
		return err
	}
	receiver, err := cfg.builder(connectionName(publisherId, s.id)).CreateReceiver()
	if err != nil {
		_ = segment.close()
		return err
	}
	s.mu.Lock()
	s.conns[publisherId] = &subscriberConnection{segment: segment, receiver: receiver}
	s.mu.Unlock()
	return nil
}

// Disconnect closes the connection to publisherId, if one exists.
func (s *Subscriber) Disconnect(publisherId config.PortId) {
	s.mu.Lock()
	conn, ok := s.conns[publisherId]
	delete(s.conns, publisherId)
	s.mu.Unlock()
	if ok {
		conn.receiver.Close()
		_ = conn.segment.close()
	}
}

// ConnectionCount reports how many publishers are currently connected.
func (s *Subscriber) ConnectionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.conns)
}

// Receive returns the next pending Sample from whichever connected
// Publisher happens to have one, or nil if none currently do. spec.md §5
// guarantees FIFO only within one (publisher, subscriber) pair; which
// pair Receive checks first when several have pending samples is
// unspecified, matching Go's own randomized map iteration order here.
func (s *Subscriber) Receive() (*Sample, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, conn := range s.conns {
		ptr, err := conn.receiver.Receive()
		if err != nil {
			return nil, err
		}
		if ptr == nil {
			continue
		}
		data := conn.segment.payloadAt(*ptr)
		offset := *ptr
		receiver := conn.receiver
		metrics.Default().IncBorrowedSamples("subscriber")
		return &Sample{
			data: data,
			release: func() error {
				defer metrics.Default().DecBorrowedSamples("subscriber")
				return receiver.Release(offset)
			},
		}, nil
	}
	return nil, nil
}

// Close closes every connection.
func (s *Subscriber) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, conn := range s.conns {
		conn.receiver.Close()
		_ = conn.segment.close()
	}
	s.conns = nil
	return nil
}
