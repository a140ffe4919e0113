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

package service_test

import (
	"fmt"
	"os"
	"testing"

	"github.com/eclipse-iceoryx/iceoryx2-core-go/config"
	"github.com/eclipse-iceoryx/iceoryx2-core-go/service"
	"github.com/eclipse-iceoryx/iceoryx2-core-go/shm"
)

func requireDevShm(t *testing.T) {
	t.Helper()
	if _, err := os.Stat(shm.DefaultPathHint); err != nil {
		t.Skipf("%s not available in this environment: %v", shm.DefaultPathHint, err)
	}
}

func testName(t *testing.T) service.Name {
	return service.Name(fmt.Sprintf("test_service_%s_%d", t.Name(), os.Getpid()))
}

func testPayloadType() service.TypeDetail {
	return service.TypeDetail{Size: 4, Alignment: 4, Variant: service.FixedSize, TypeName: "u32"}
}

func testLimits() config.Limits {
	return config.Limits{
		MaxPublishers:  2,
		MaxSubscribers: 4,
		MaxNotifiers:   1,
		MaxListeners:   1,
		MaxClients:     1,
		MaxServers:     1,
	}
}

func TestBuilderCreateThenOpenRoundTrip(t *testing.T) {
	requireDevShm(t)
	name := testName(t)

	creator := service.NewBuilder(name, service.PublishSubscribe).
		WithPayloadType(testPayloadType()).
		WithLimits(testLimits())

	spec := service.NewAttributeSpecifier().Define("unit", "meters")
	created, err := creator.Create(spec)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer created.Close()

	opener := service.NewBuilder(name, service.PublishSubscribe).
		WithPayloadType(testPayloadType()).
		WithLimits(config.Limits{MaxPublishers: 1, MaxSubscribers: 1, MaxNotifiers: 1, MaxListeners: 1, MaxClients: 1, MaxServers: 1})

	verifier := service.NewAttributeVerifier().Require("unit", "meters")
	opened, err := opener.Open(verifier)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer opened.Close()

	if opened.Id() != created.Id() {
		t.Fatalf("Id mismatch: created %s, opened %s", created.Id(), opened.Id())
	}
	if opened.Name() != name {
		t.Fatalf("Name = %q, want %q", opened.Name(), name)
	}
	if opened.Limits() != testLimits() {
		t.Fatalf("Limits = %+v, want %+v", opened.Limits(), testLimits())
	}
}

func TestBuilderOpenMissingServiceFails(t *testing.T) {
	requireDevShm(t)
	name := testName(t)

	_, err := service.NewBuilder(name, service.Event).Open(nil)
	if err != service.ErrDoesNotExist {
		t.Fatalf("Open on missing service: err = %v, want ErrDoesNotExist", err)
	}
}

func TestBuilderCreateTwiceFailsWithAlreadyExists(t *testing.T) {
	requireDevShm(t)
	name := testName(t)

	builder := func() *service.Builder {
		return service.NewBuilder(name, service.Event).WithLimits(testLimits())
	}

	first, err := builder().Create(nil)
	if err != nil {
		t.Fatalf("first Create: %v", err)
	}
	defer first.Close()

	_, err = builder().Create(nil)
	if err != service.ErrAlreadyExists {
		t.Fatalf("second Create: err = %v, want ErrAlreadyExists", err)
	}
}

func TestBuilderOpenRejectsIncompatiblePattern(t *testing.T) {
	requireDevShm(t)
	name := testName(t)

	created, err := service.NewBuilder(name, service.PublishSubscribe).
		WithPayloadType(testPayloadType()).
		WithLimits(testLimits()).
		Create(nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer created.Close()

	_, err = service.NewBuilder(name, service.Event).Open(nil)
	if err != service.ErrIncompatibleMessagingPattern {
		t.Fatalf("Open with wrong pattern: err = %v, want ErrIncompatibleMessagingPattern", err)
	}
}

func TestBuilderOpenRejectsIncompatiblePayloadType(t *testing.T) {
	requireDevShm(t)
	name := testName(t)

	created, err := service.NewBuilder(name, service.PublishSubscribe).
		WithPayloadType(testPayloadType()).
		WithLimits(testLimits()).
		Create(nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer created.Close()

	mismatched := service.TypeDetail{Size: 8, Alignment: 8, Variant: service.FixedSize, TypeName: "u64"}
	_, err = service.NewBuilder(name, service.PublishSubscribe).WithPayloadType(mismatched).Open(nil)
	if err != service.ErrIncompatiblePayloadType {
		t.Fatalf("Open with wrong payload type: err = %v, want ErrIncompatiblePayloadType", err)
	}
}

func TestBuilderOpenRejectsInsufficientCapacity(t *testing.T) {
	requireDevShm(t)
	name := testName(t)

	created, err := service.NewBuilder(name, service.Event).WithLimits(testLimits()).Create(nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer created.Close()

	demanding := testLimits()
	demanding.MaxSubscribers = testLimits().MaxSubscribers + 1
	_, err = service.NewBuilder(name, service.Event).WithLimits(demanding).Open(nil)
	if err != service.ErrDoesNotSupportRequestedAmountOfSubscribers {
		t.Fatalf("Open demanding too much capacity: err = %v, want ErrDoesNotSupportRequestedAmountOfSubscribers", err)
	}
}

func TestBuilderOpenRejectsMissingAttribute(t *testing.T) {
	requireDevShm(t)
	name := testName(t)

	created, err := service.NewBuilder(name, service.Event).
		WithLimits(testLimits()).
		Create(service.NewAttributeSpecifier().Define("unit", "meters"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer created.Close()

	verifier := service.NewAttributeVerifier().RequireKey("color")
	_, err = service.NewBuilder(name, service.Event).WithLimits(testLimits()).Open(verifier)
	if err != service.ErrIncompatibleAttributes {
		t.Fatalf("Open with unmet attribute requirement: err = %v, want ErrIncompatibleAttributes", err)
	}
}

func TestBuilderOpenOrCreateCreatesThenJoins(t *testing.T) {
	requireDevShm(t)
	name := testName(t)

	builder := func() *service.Builder {
		return service.NewBuilder(name, service.RequestResponse).WithLimits(testLimits())
	}

	first, err := builder().OpenOrCreate(nil, nil)
	if err != nil {
		t.Fatalf("first OpenOrCreate: %v", err)
	}
	defer first.Close()

	second, err := builder().OpenOrCreate(nil, nil)
	if err != nil {
		t.Fatalf("second OpenOrCreate: %v", err)
	}
	defer second.Close()

	if first.Id() != second.Id() {
		t.Fatalf("Id mismatch between OpenOrCreate calls: %s vs %s", first.Id(), second.Id())
	}
}
