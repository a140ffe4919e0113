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
	"testing"

	"github.com/eclipse-iceoryx/iceoryx2-core-go/config"
	"github.com/eclipse-iceoryx/iceoryx2-core-go/service"
)

func TestInspectFindsACreatedService(t *testing.T) {
	requireDevShm(t)

	name := testName(t)
	svc, err := service.NewBuilder(name, service.PublishSubscribe).
		WithPayloadType(testPayloadType()).
		WithLimits(testLimits()).
		Create(nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer svc.Close()

	ids, err := service.ListIds()
	if err != nil {
		t.Fatalf("ListIds: %v", err)
	}
	var found bool
	for _, id := range ids {
		if id == svc.Id() {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("ListIds did not include %s among %d services", svc.Id(), len(ids))
	}

	summary, err := service.Inspect(svc.Id(), config.DefaultGlobal())
	if err != nil {
		t.Fatalf("Inspect: %v", err)
	}
	if summary.Name != name {
		t.Fatalf("Name = %q, want %q", summary.Name, name)
	}
	if summary.Pattern != service.PublishSubscribe {
		t.Fatalf("Pattern = %v, want PublishSubscribe", summary.Pattern)
	}
	if summary.Limits != testLimits() {
		t.Fatalf("Limits = %+v, want %+v", summary.Limits, testLimits())
	}
}

func TestInspectMissingServiceFails(t *testing.T) {
	requireDevShm(t)

	_, err := service.Inspect(service.Id(0xdeadbeef), config.DefaultGlobal())
	if err != service.ErrDoesNotExist {
		t.Fatalf("err = %v, want ErrDoesNotExist", err)
	}
}
