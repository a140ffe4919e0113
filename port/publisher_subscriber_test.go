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

package port_test

import (
	"os"
	"testing"
	"time"

	"github.com/eclipse-iceoryx/iceoryx2-core-go/port"
	"github.com/eclipse-iceoryx/iceoryx2-core-go/shm"
)

func requireDevShm(t *testing.T) {
	t.Helper()
	if _, err := os.Stat(shm.DefaultPathHint); err != nil {
		t.Skipf("%s not available in this environment: %v", shm.DefaultPathHint, err)
	}
}

const segmentCapacity = 4096

func TestPublishSubscribeRoundTrip(t *testing.T) {
	requireDevShm(t)

	pubId := port.NewPortId()
	subId := port.NewPortId()

	pub, err := port.CreatePublisher(pubId, segmentCapacity)
	if err != nil {
		t.Fatalf("CreatePublisher: %v", err)
	}
	defer pub.Close()

	sub := port.CreateSubscriber(subId)
	defer sub.Close()

	if err := sub.Connect(pubId, segmentCapacity, port.DefaultConnectionConfig()); err != nil {
		t.Fatalf("Subscriber.Connect: %v", err)
	}
	if err := pub.Connect(subId, port.DefaultConnectionConfig()); err != nil {
		t.Fatalf("Publisher.Connect: %v", err)
	}

	out, err := pub.LoanUninit(5)
	if err != nil {
		t.Fatalf("LoanUninit: %v", err)
	}
	copy(out.Bytes(), "hello")

	if err := pub.Send(out, time.Second); err != nil {
		t.Fatalf("Send: %v", err)
	}

	sample, err := sub.Receive()
	if err != nil {
		t.Fatalf("Receive: %v", err)
	}
	if sample == nil {
		t.Fatalf("Receive = nil, want a sample")
	}
	if string(sample.Bytes()) != "hello" {
		t.Fatalf("Bytes = %q, want %q", sample.Bytes(), "hello")
	}
	if err := sample.Release(); err != nil {
		t.Fatalf("Release: %v", err)
	}

	pub.ReclaimAll()
}

func TestReceiveWithNoConnectionsReturnsNil(t *testing.T) {
	sub := port.CreateSubscriber(port.NewPortId())
	defer sub.Close()

	sample, err := sub.Receive()
	if err != nil {
		t.Fatalf("Receive: %v", err)
	}
	if sample != nil {
		t.Fatalf("Receive with no connections = %+v, want nil", sample)
	}
}

func TestSendWithNoSubscribersFreesSlotImmediately(t *testing.T) {
	requireDevShm(t)

	pub, err := port.CreatePublisher(port.NewPortId(), segmentCapacity)
	if err != nil {
		t.Fatalf("CreatePublisher: %v", err)
	}
	defer pub.Close()

	out, err := pub.LoanUninit(16)
	if err != nil {
		t.Fatalf("LoanUninit: %v", err)
	}
	if err := pub.Send(out, time.Second); err != nil {
		t.Fatalf("Send: %v", err)
	}

	// The slot from the first loan must be reusable immediately since
	// nobody was connected to hold a borrow on it.
	if _, err := pub.LoanUninit(16); err != nil {
		t.Fatalf("LoanUninit after an unconnected Send: %v", err)
	}
}

func TestDiscardReturnsSlotWithoutSending(t *testing.T) {
	requireDevShm(t)

	pub, err := port.CreatePublisher(port.NewPortId(), segmentCapacity)
	if err != nil {
		t.Fatalf("CreatePublisher: %v", err)
	}
	defer pub.Close()

	out, err := pub.LoanUninit(16)
	if err != nil {
		t.Fatalf("LoanUninit: %v", err)
	}
	out.Discard()

	if _, err := pub.LoanUninit(16); err != nil {
		t.Fatalf("LoanUninit after Discard: %v", err)
	}
}

func TestMultiSubscriberSlotFreedOnlyAfterEveryReleaseObserved(t *testing.T) {
	requireDevShm(t)

	pubId := port.NewPortId()
	sub1Id := port.NewPortId()
	sub2Id := port.NewPortId()

	pub, err := port.CreatePublisher(pubId, segmentCapacity)
	if err != nil {
		t.Fatalf("CreatePublisher: %v", err)
	}
	defer pub.Close()

	sub1 := port.CreateSubscriber(sub1Id)
	defer sub1.Close()
	sub2 := port.CreateSubscriber(sub2Id)
	defer sub2.Close()

	if err := sub1.Connect(pubId, segmentCapacity, port.DefaultConnectionConfig()); err != nil {
		t.Fatalf("sub1.Connect: %v", err)
	}
	if err := sub2.Connect(pubId, segmentCapacity, port.DefaultConnectionConfig()); err != nil {
		t.Fatalf("sub2.Connect: %v", err)
	}
	if err := pub.Connect(sub1Id, port.DefaultConnectionConfig()); err != nil {
		t.Fatalf("pub.Connect(sub1): %v", err)
	}
	if err := pub.Connect(sub2Id, port.DefaultConnectionConfig()); err != nil {
		t.Fatalf("pub.Connect(sub2): %v", err)
	}

	out, err := pub.LoanUninit(4)
	if err != nil {
		t.Fatalf("LoanUninit: %v", err)
	}
	copy(out.Bytes(), "data")
	if err := pub.Send(out, time.Second); err != nil {
		t.Fatalf("Send: %v", err)
	}

	sample1, err := sub1.Receive()
	if err != nil || sample1 == nil {
		t.Fatalf("sub1.Receive: %v, %v", sample1, err)
	}
	if err := sample1.Release(); err != nil {
		t.Fatalf("sample1.Release: %v", err)
	}
	pub.ReclaimAll()

	sample2, err := sub2.Receive()
	if err != nil || sample2 == nil {
		t.Fatalf("sub2.Receive: %v, %v", sample2, err)
	}
	if err := sample2.Release(); err != nil {
		t.Fatalf("sample2.Release: %v", err)
	}
	pub.ReclaimAll()
}
