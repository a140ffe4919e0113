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
	"github.com/eclipse-iceoryx/iceoryx2-core-go/zerocopy"
)

// Publisher owns a data segment and fans sent samples out to every
// connected Subscriber's zerocopy.Sender.
type Publisher struct {
	id      config.PortId
	segment *dataSegment

	mu      sync.Mutex
	senders map[config.PortId]*zerocopy.Sender
	// pending counts, per payload offset, how many connected senders'
	// subscribers still owe this Publisher a release (or an eviction)
	// before the slot can be freed. See doc.go for why this lives here
	// rather than in the shared segment.
	pending map[uint64]int
}

// CreatePublisher creates id's data segment, sized capacity bytes.
func CreatePublisher(id config.PortId, capacity int) (*Publisher, error) {
	segment, err := createDataSegment(id, capacity)
	if err != nil {
		return nil, err
	}
	return &Publisher{
		id:      id,
		segment: segment,
		senders: make(map[config.PortId]*zerocopy.Sender),
		pending: make(map[uint64]int),
	}, nil
}

// Id returns this Publisher's PortId.
func (p *Publisher) Id() config.PortId { return p.id }

// Connect creates the zero-copy connection to subscriberId, matching
// cfg against whatever a prior Connect from the subscriber side already
// established (or creating it if this is first).
func (p *Publisher) Connect(subscriberId config.PortId, cfg ConnectionConfig) error {
	sender, err := cfg.builder(connectionName(p.id, subscriberId)).CreateSender()
	if err != nil {
		return err
	}
	p.mu.Lock()
	p.senders[subscriberId] = sender
	p.mu.Unlock()
	return nil
}

// Disconnect closes the connection to subscriberId, if one exists.
func (p *Publisher) Disconnect(subscriberId config.PortId) {
	p.mu.Lock()
	sender, ok := p.senders[subscriberId]
	delete(p.senders, subscriberId)
	p.mu.Unlock()
	if ok {
		sender.Close()
	}
}

// ConnectionCount reports how many subscribers are currently connected.
func (p *Publisher) ConnectionCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.senders)
}

// LoanUninit reserves a size-byte payload slot for the caller to fill in
// before Send or Discard.
func (p *Publisher) LoanUninit(size int) (*OutgoingSample, error) {
	offset, data, err := p.segment.loan(size)
	if err != nil {
		return nil, err
	}
	return &OutgoingSample{publisher: p, offset: offset, data: data}, nil
}

// Send fans sample's offset out to every currently connected Subscriber
// via BlockingSend, bounded by deadline (0 meaning unbounded). The slot
// is freed immediately if nobody is connected; otherwise it is freed
// once every subscriber that actually received the offset has released
// or had it evicted -- see ReclaimAll, which must be called periodically
// to observe those releases.
func (p *Publisher) Send(sample *OutgoingSample, deadline time.Duration) error {
	if sample.sent {
		return nil
	}
	sample.sent = true

	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.senders) == 0 {
		p.freeLocked(sample.offset)
		return nil
	}

	p.pending[sample.offset.Value()] = len(p.senders)
	for _, sender := range p.senders {
		evicted, err := sender.BlockingSend(sample.offset, deadline)
		if err != nil {
			p.decrementLocked(sample.offset.Value())
			continue
		}
		if evicted != nil {
			p.decrementLocked(evicted.Value())
		}
	}
	return nil
}

// ReclaimAll drains every connection's retrieve channel, freeing any
// payload slot whose last outstanding subscriber has now released it.
// A Publisher that never calls this leaks payload slots as soon as it
// has more than zero connected subscribers.
func (p *Publisher) ReclaimAll() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, sender := range p.senders {
		for {
			ptr := sender.Reclaim()
			if ptr == nil {
				break
			}
			p.decrementLocked(ptr.Value())
		}
	}
}

func (p *Publisher) decrementLocked(offset uint64) {
	n, ok := p.pending[offset]
	if !ok {
		return
	}
	n--
	if n > 0 {
		p.pending[offset] = n
		return
	}
	delete(p.pending, offset)
	p.freeLocked(zerocopy.NewPointerOffset(offset))
}

func (p *Publisher) freeLocked(offset zerocopy.PointerOffset) {
	p.segment.free(offset)
}

// Close closes every connection and releases the data segment.
func (p *Publisher) Close() error {
	p.mu.Lock()
	for _, sender := range p.senders {
		sender.Close()
	}
	p.senders = nil
	p.mu.Unlock()
	return p.segment.close()
}
