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
	"testing"
	"time"

	"github.com/eclipse-iceoryx/iceoryx2-core-go/port"
)

func TestRequestResponseRoundTrip(t *testing.T) {
	requireDevShm(t)

	clientId := port.NewPortId()
	serverId := port.NewPortId()

	server, err := port.CreateServer(serverId, segmentCapacity)
	if err != nil {
		t.Fatalf("CreateServer: %v", err)
	}
	defer server.Close()

	client, err := port.CreateClient(clientId, serverId, segmentCapacity, segmentCapacity, 2)
	if err != nil {
		t.Fatalf("CreateClient: %v", err)
	}
	defer client.Close()

	if err := server.ConnectClient(clientId, segmentCapacity); err != nil {
		t.Fatalf("ConnectClient: %v", err)
	}

	req, err := client.LoanRequest(7)
	if err != nil {
		t.Fatalf("LoanRequest: %v", err)
	}
	copy(req.Bytes(), "request")
	if err := client.SendRequest(req, time.Second); err != nil {
		t.Fatalf("SendRequest: %v", err)
	}

	received, err := server.ReceiveRequest()
	if err != nil || received == nil {
		t.Fatalf("ReceiveRequest: %v, %v", received, err)
	}
	if string(received.Bytes()) != "request" {
		t.Fatalf("request Bytes = %q, want %q", received.Bytes(), "request")
	}
	if err := received.Release(); err != nil {
		t.Fatalf("request Release: %v", err)
	}

	resp, err := server.LoanResponse(8)
	if err != nil {
		t.Fatalf("LoanResponse: %v", err)
	}
	copy(resp.Bytes(), "response")
	if err := server.SendResponse(resp, time.Second); err != nil {
		t.Fatalf("SendResponse: %v", err)
	}

	got, err := client.ReceiveResponse()
	if err != nil || got == nil {
		t.Fatalf("ReceiveResponse: %v, %v", got, err)
	}
	if string(got.Bytes()) != "response" {
		t.Fatalf("response Bytes = %q, want %q", got.Bytes(), "response")
	}
	if err := got.Release(); err != nil {
		t.Fatalf("response Release: %v", err)
	}

	client.ReclaimRequests()
	server.ReclaimResponses()
}

func TestLoanRequestRejectsPastMaxActive(t *testing.T) {
	requireDevShm(t)

	clientId := port.NewPortId()
	serverId := port.NewPortId()

	server, err := port.CreateServer(serverId, segmentCapacity)
	if err != nil {
		t.Fatalf("CreateServer: %v", err)
	}
	defer server.Close()

	client, err := port.CreateClient(clientId, serverId, segmentCapacity, segmentCapacity, 1)
	if err != nil {
		t.Fatalf("CreateClient: %v", err)
	}
	defer client.Close()

	if err := server.ConnectClient(clientId, segmentCapacity); err != nil {
		t.Fatalf("ConnectClient: %v", err)
	}

	first, err := client.LoanRequest(4)
	if err != nil {
		t.Fatalf("first LoanRequest: %v", err)
	}
	if err := client.SendRequest(first, time.Second); err != nil {
		t.Fatalf("SendRequest: %v", err)
	}

	if _, err := client.LoanRequest(4); err != port.ErrMaxActiveRequestsReached {
		t.Fatalf("second LoanRequest before any response observed: got %v, want ErrMaxActiveRequestsReached", err)
	}
}
