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

package iceoryx2_test

import (
	"fmt"
	"os"
	"testing"
	"time"

	iceoryx2 "github.com/eclipse-iceoryx/iceoryx2-core-go"
	"github.com/eclipse-iceoryx/iceoryx2-core-go/config"
	"github.com/eclipse-iceoryx/iceoryx2-core-go/event"
	"github.com/eclipse-iceoryx/iceoryx2-core-go/node"
	"github.com/eclipse-iceoryx/iceoryx2-core-go/service"
	"github.com/eclipse-iceoryx/iceoryx2-core-go/shm"
)

func requireDevShm(t *testing.T) {
	t.Helper()
	if _, err := os.Stat(shm.DefaultPathHint); err != nil {
		t.Skipf("%s not available in this environment: %v", shm.DefaultPathHint, err)
	}
}

func testServiceName(t *testing.T) service.Name {
	return service.Name(fmt.Sprintf("facade_test_%s_%d", t.Name(), os.Getpid()))
}

type measurement struct {
	Value float64
	Unit  [8]byte
}

func TestPublishSubscribeFacadeRoundTrip(t *testing.T) {
	requireDevShm(t)

	n, err := iceoryx2.NewNodeBuilder().Name("facade-test").Create()
	if err != nil {
		t.Fatalf("NewNodeBuilder.Create: %v", err)
	}
	defer n.Close()

	svc, err := iceoryx2.PublishSubscribe[measurement](n.ServiceBuilder(testServiceName(t))).
		WithLimits(config.Limits{MaxPublishers: 1, MaxSubscribers: 1, MaxNotifiers: 1, MaxListeners: 1, MaxClients: 1, MaxServers: 1}).
		Create(nil)
	if err != nil {
		t.Fatalf("PublishSubscribe.Create: %v", err)
	}
	defer svc.Close()

	sub, err := svc.SubscriberBuilder().Create()
	if err != nil {
		t.Fatalf("SubscriberBuilder.Create: %v", err)
	}
	defer sub.Close()

	pub, err := svc.PublisherBuilder().Create()
	if err != nil {
		t.Fatalf("PublisherBuilder.Create: %v", err)
	}
	defer pub.Close()

	// The subscriber was created before the publisher existed, so it
	// needs one more scan to find it.
	sub.UpdateConnections()

	out, err := pub.LoanUninit()
	if err != nil {
		t.Fatalf("LoanUninit: %v", err)
	}
	out.Payload().Value = 42.5
	copy(out.Payload().Unit[:], "meters")
	if err := out.Send(time.Second); err != nil {
		t.Fatalf("Send: %v", err)
	}

	var received *iceoryx2.Sample[measurement]
	for i := 0; i < 100 && received == nil; i++ {
		received, err = sub.Receive()
		if err != nil {
			t.Fatalf("Receive: %v", err)
		}
		if received == nil {
			time.Sleep(time.Millisecond)
		}
	}
	if received == nil {
		t.Fatal("Receive: no sample arrived")
	}
	defer received.Release()

	if received.Payload().Value != 42.5 {
		t.Fatalf("Value = %v, want 42.5", received.Payload().Value)
	}
	if got := string(received.Payload().Unit[:6]); got != "meters" {
		t.Fatalf("Unit = %q, want %q", got, "meters")
	}
}

func TestEventFacadeRoundTrip(t *testing.T) {
	requireDevShm(t)

	n, err := iceoryx2.NewNodeBuilder().Name("facade-test").Create()
	if err != nil {
		t.Fatalf("NewNodeBuilder.Create: %v", err)
	}
	defer n.Close()

	svc, err := n.ServiceBuilder(testServiceName(t)).Event().
		WithLimits(config.Limits{MaxPublishers: 1, MaxSubscribers: 1, MaxNotifiers: 1, MaxListeners: 1, MaxClients: 1, MaxServers: 1}).
		Create(nil)
	if err != nil {
		t.Fatalf("Event.Create: %v", err)
	}
	defer svc.Close()

	listener, err := svc.ListenerBuilder().Create()
	if err != nil {
		t.Fatalf("ListenerBuilder.Create: %v", err)
	}
	defer listener.Close()

	notifier, err := svc.NotifierBuilder(listener.Id()).Create()
	if err != nil {
		t.Fatalf("NotifierBuilder.Create: %v", err)
	}
	defer notifier.Close()

	if err := notifier.Notify(event.TriggerId(3)); err != nil {
		t.Fatalf("Notify: %v", err)
	}

	id, ok := listener.TimedWaitOne(time.Second)
	if !ok {
		t.Fatal("TimedWaitOne: no notification arrived")
	}
	if id != event.TriggerId(3) {
		t.Fatalf("TriggerId = %v, want 3", id)
	}
}

// TestCleanupDeadNodeRemovesLeftoverPorts validates end-to-end scenario
// (e) from spec.md §8: a node that dies without closing its ports
// leaves leftover PortRecords behind, and CleanupDeadNode -- the
// composing function tying node.Cleaner together with package service's
// dynamic config -- removes exactly those, leaving other nodes' ports
// on the same service untouched.
func TestCleanupDeadNodeRemovesLeftoverPorts(t *testing.T) {
	requireDevShm(t)

	// Simulate a node whose owning process crashed: recreate and
	// immediately unlock its monitor token without going through
	// Node.Close, the same pattern node_test.go's
	// TestCleanerRemovesDeadNode uses.
	monitor, err := node.CreateMonitorToken(node.NewId())
	if err != nil {
		t.Fatalf("CreateMonitorToken: %v", err)
	}
	deadId := monitor.Id()
	if err := monitor.Release(); err != nil {
		t.Fatalf("simulated crash release: %v", err)
	}
	reopened, err := node.CreateMonitorToken(deadId)
	if err != nil {
		t.Fatalf("CreateMonitorToken (recreate): %v", err)
	}
	if err := reopened.ReleaseLockOnly(); err != nil {
		t.Fatalf("ReleaseLockOnly: %v", err)
	}

	if state, err := node.StateOf(deadId); err != nil || state != node.Dead {
		t.Fatalf("StateOf = (%v, %v), want (Dead, nil)", state, err)
	}

	global := config.DefaultGlobal()
	limits := config.Limits{MaxPublishers: 2, MaxSubscribers: 1, MaxNotifiers: 1, MaxListeners: 1, MaxClients: 1, MaxServers: 1}
	svc, err := service.NewBuilder(testServiceName(t), service.Event).
		WithLimits(limits).
		WithGlobal(global).
		WithNodeId(config.NodeId(deadId)).
		Create(nil)
	if err != nil {
		t.Fatalf("service.NewBuilder.Create: %v", err)
	}
	defer svc.Close()

	deadPort := config.PortId{0xde, 0xad}
	if err := svc.RegisterPort(config.RolePublisher, deadPort); err != nil {
		t.Fatalf("RegisterPort: %v", err)
	}
	if err := node.TagService(deadId, svc.Id().String()); err != nil {
		t.Fatalf("TagService: %v", err)
	}

	// A live node's port on the same service must survive the cleanup.
	liveId := node.NewId()
	survivor := config.PortId{0x01}
	if err := svc.Dynamic().Register(config.RolePublisher, survivor, config.NodeId(liveId)); err != nil {
		t.Fatalf("Register survivor: %v", err)
	}

	if err := iceoryx2.CleanupDeadNode(deadId, global); err != nil {
		t.Fatalf("CleanupDeadNode: %v", err)
	}

	if got := svc.Dynamic().Len(config.RolePublisher); got != 1 {
		t.Fatalf("Len(RolePublisher) after cleanup = %d, want 1", got)
	}
	var remaining []config.PortId
	svc.Dynamic().Each(config.RolePublisher, func(rec config.PortRecord) { remaining = append(remaining, rec.Id) })
	if len(remaining) != 1 || remaining[0] != survivor {
		t.Fatalf("remaining publishers = %v, want [%v]", remaining, survivor)
	}

	finalState, err := node.StateOf(deadId)
	if err != nil {
		t.Fatalf("StateOf after cleanup: %v", err)
	}
	if finalState != node.DoesNotExist {
		t.Fatalf("StateOf after CleanupDeadNode = %v, want DoesNotExist", finalState)
	}

	tags, err := node.TaggedServices(deadId)
	if err != nil {
		t.Fatalf("TaggedServices: %v", err)
	}
	if len(tags) != 0 {
		t.Fatalf("TaggedServices after cleanup = %v, want none", tags)
	}
}

func TestRequestResponseFacadeRoundTrip(t *testing.T) {
	requireDevShm(t)

	n, err := iceoryx2.NewNodeBuilder().Name("facade-test").Create()
	if err != nil {
		t.Fatalf("NewNodeBuilder.Create: %v", err)
	}
	defer n.Close()

	limits := config.Limits{MaxPublishers: 1, MaxSubscribers: 1, MaxNotifiers: 1, MaxListeners: 1, MaxClients: 1, MaxServers: 1}
	svc, err := iceoryx2.RequestResponse[int32, int32](n.ServiceBuilder(testServiceName(t))).
		WithLimits(limits).
		Create(nil)
	if err != nil {
		t.Fatalf("RequestResponse.Create: %v", err)
	}
	defer svc.Close()

	server, err := svc.ServerBuilder().Create()
	if err != nil {
		t.Fatalf("ServerBuilder.Create: %v", err)
	}
	defer server.Close()

	client, err := svc.ClientBuilder(server.Id()).Create()
	if err != nil {
		t.Fatalf("ClientBuilder.Create: %v", err)
	}
	defer client.Close()

	server.UpdateConnections()

	req, err := client.LoanRequest()
	if err != nil {
		t.Fatalf("LoanRequest: %v", err)
	}
	*req.Payload() = 7
	if err := req.Send(time.Second); err != nil {
		t.Fatalf("Send request: %v", err)
	}

	var gotRequest *iceoryx2.Sample[int32]
	for i := 0; i < 100 && gotRequest == nil; i++ {
		gotRequest, err = server.ReceiveRequest()
		if err != nil {
			t.Fatalf("ReceiveRequest: %v", err)
		}
		if gotRequest == nil {
			time.Sleep(time.Millisecond)
		}
	}
	if gotRequest == nil {
		t.Fatal("ReceiveRequest: no request arrived")
	}
	if *gotRequest.Payload() != 7 {
		t.Fatalf("request payload = %d, want 7", *gotRequest.Payload())
	}
	gotRequest.Release()

	resp, err := server.LoanResponse()
	if err != nil {
		t.Fatalf("LoanResponse: %v", err)
	}
	*resp.Payload() = 14
	if err := resp.Send(time.Second); err != nil {
		t.Fatalf("Send response: %v", err)
	}

	var gotResponse *iceoryx2.Sample[int32]
	for i := 0; i < 100 && gotResponse == nil; i++ {
		gotResponse, err = client.ReceiveResponse()
		if err != nil {
			t.Fatalf("ReceiveResponse: %v", err)
		}
		if gotResponse == nil {
			time.Sleep(time.Millisecond)
		}
	}
	if gotResponse == nil {
		t.Fatal("ReceiveResponse: no response arrived")
	}
	defer gotResponse.Release()
	if *gotResponse.Payload() != 14 {
		t.Fatalf("response payload = %d, want 14", *gotResponse.Payload())
	}
}
