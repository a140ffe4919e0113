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

import "github.com/eclipse-iceoryx/iceoryx2-core-go/zerocopy"

// OutgoingSample is a payload slot a Publisher or Client/Server response
// side has loaned but not yet sent. The caller writes into Bytes, then
// either sends it (Publisher.Send, Client.SendRequest, Server.SendResponse)
// or, if it decides not to send it after all, calls Discard to return the
// slot without ever handing its offset to a connection.
type OutgoingSample struct {
	publisher *Publisher
	offset    zerocopy.PointerOffset
	data      []byte
	sent      bool
}

// Bytes returns the writable payload slice. Its length is exactly the
// size requested from LoanUninit.
func (s *OutgoingSample) Bytes() []byte { return s.data }

// Discard returns the loaned slot to the Publisher's allocator without
// sending it. Calling Discard after the sample has been sent is a no-op:
// ownership of the slot has already passed to the send path.
func (s *OutgoingSample) Discard() {
	if s.sent {
		return
	}
	s.sent = true
	s.publisher.mu.Lock()
	s.publisher.freeLocked(s.offset)
	s.publisher.mu.Unlock()
}

// Sample is a payload a Subscriber, Client, or Server has received and
// not yet released. The underlying slot is not reusable by its Publisher
// until every Subscriber-side Sample referencing it has been released.
type Sample struct {
	data     []byte
	release  func() error
	released bool
}

// Bytes returns the received payload slice.
func (s *Sample) Bytes() []byte { return s.data }

// Release returns this borrow to the Publisher, decrementing its
// outstanding-borrow count. Calling Release more than once is a no-op.
func (s *Sample) Release() error {
	if s.released {
		return nil
	}
	s.released = true
	return s.release()
}
