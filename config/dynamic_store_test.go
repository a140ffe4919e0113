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

package config_test

import (
	"testing"

	"github.com/eclipse-iceoryx/iceoryx2-core-go/config"
	"github.com/eclipse-iceoryx/iceoryx2-core-go/shm"
)

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

func TestDynamicConfigRegisterDeregisterRoundTrip(t *testing.T) {
	requireDevShm(t)
	name := storeName(t)
	defer shm.Unlink(name)

	store, err := config.CreateDynamicConfigStore(name, testLimits())
	if err != nil {
		t.Fatalf("CreateDynamicConfigStore: %v", err)
	}
	defer store.Close()

	id := config.PortId{1, 2, 3}
	if err := store.Register(config.RolePublisher, id, config.NodeId{9}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if got := store.Len(config.RolePublisher); got != 1 {
		t.Fatalf("Len(RolePublisher) = %d, want 1", got)
	}

	if !store.Deregister(config.RolePublisher, id) {
		t.Fatalf("Deregister did not find the registered port")
	}
	if got := store.Len(config.RolePublisher); got != 0 {
		t.Fatalf("Len(RolePublisher) after Deregister = %d, want 0", got)
	}
}

func TestDynamicConfigOpenJoinsCreatorsRoster(t *testing.T) {
	requireDevShm(t)
	name := storeName(t)
	defer shm.Unlink(name)

	limits := testLimits()
	creator, err := config.CreateDynamicConfigStore(name, limits)
	if err != nil {
		t.Fatalf("CreateDynamicConfigStore: %v", err)
	}
	defer creator.Close()

	id := config.PortId{9}
	if err := creator.Register(config.RoleSubscriber, id, config.NodeId{1}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	joiner, err := config.OpenDynamicConfigStore(name, limits, config.DefaultGlobal())
	if err != nil {
		t.Fatalf("OpenDynamicConfigStore: %v", err)
	}
	defer joiner.Close()

	if got := joiner.Len(config.RoleSubscriber); got != 1 {
		t.Fatalf("joiner sees Len(RoleSubscriber) = %d, want 1", got)
	}

	var seen []config.PortId
	joiner.Each(config.RoleSubscriber, func(rec config.PortRecord) { seen = append(seen, rec.Id) })
	if len(seen) != 1 || seen[0] != id {
		t.Fatalf("Each reported %v, want [%v]", seen, id)
	}
}

func TestDynamicConfigRosterFull(t *testing.T) {
	requireDevShm(t)
	name := storeName(t)
	defer shm.Unlink(name)

	limits := config.Limits{MaxNotifiers: 1}
	store, err := config.CreateDynamicConfigStore(name, limits)
	if err != nil {
		t.Fatalf("CreateDynamicConfigStore: %v", err)
	}
	defer store.Close()

	if err := store.Register(config.RoleNotifier, config.PortId{1}, config.NodeId{1}); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	if err := store.Register(config.RoleNotifier, config.PortId{2}, config.NodeId{1}); err != config.ErrRosterFull {
		t.Fatalf("Register beyond capacity: got %v, want ErrRosterFull", err)
	}
}

func TestDynamicConfigDeregisterNode(t *testing.T) {
	requireDevShm(t)
	name := storeName(t)
	defer shm.Unlink(name)

	store, err := config.CreateDynamicConfigStore(name, testLimits())
	if err != nil {
		t.Fatalf("CreateDynamicConfigStore: %v", err)
	}
	defer store.Close()

	deadNode := config.NodeId{0xde, 0xad}
	liveNode := config.NodeId{0x1}

	if err := store.Register(config.RolePublisher, config.PortId{1}, deadNode); err != nil {
		t.Fatalf("Register publisher: %v", err)
	}
	if err := store.Register(config.RolePublisher, config.PortId{2}, liveNode); err != nil {
		t.Fatalf("Register publisher: %v", err)
	}
	if err := store.Register(config.RoleSubscriber, config.PortId{3}, deadNode); err != nil {
		t.Fatalf("Register subscriber: %v", err)
	}

	if removed := store.DeregisterNode(deadNode); removed != 2 {
		t.Fatalf("DeregisterNode removed %d records, want 2", removed)
	}
	if got := store.Len(config.RolePublisher); got != 1 {
		t.Fatalf("Len(RolePublisher) after DeregisterNode = %d, want 1", got)
	}
	if got := store.Len(config.RoleSubscriber); got != 0 {
		t.Fatalf("Len(RoleSubscriber) after DeregisterNode = %d, want 0", got)
	}
	var remaining []config.PortId
	store.Each(config.RolePublisher, func(rec config.PortRecord) { remaining = append(remaining, rec.Id) })
	if len(remaining) != 1 || remaining[0] != (config.PortId{2}) {
		t.Fatalf("remaining publishers = %v, want [{2}]", remaining)
	}

	if removed := store.DeregisterNode(deadNode); removed != 0 {
		t.Fatalf("second DeregisterNode removed %d, want 0", removed)
	}
}

func TestDynamicConfigIncompatibleLimitsRejected(t *testing.T) {
	requireDevShm(t)
	name := storeName(t)
	defer shm.Unlink(name)

	store, err := config.CreateDynamicConfigStore(name, testLimits())
	if err != nil {
		t.Fatalf("CreateDynamicConfigStore: %v", err)
	}
	defer store.Close()

	mismatched := testLimits()
	mismatched.MaxSubscribers++
	if _, err := config.OpenDynamicConfigStore(name, mismatched, config.DefaultGlobal()); err != config.ErrIncompatibleCapacity {
		t.Fatalf("OpenDynamicConfigStore with mismatched limits: got %v, want ErrIncompatibleCapacity", err)
	}
}

func TestDynamicConfigMarkedForDestructionRejectsOpen(t *testing.T) {
	requireDevShm(t)
	name := storeName(t)

	limits := testLimits()
	store, err := config.CreateDynamicConfigStore(name, limits)
	if err != nil {
		t.Fatalf("CreateDynamicConfigStore: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if _, err := config.OpenDynamicConfigStore(name, limits, config.DefaultGlobal()); err != config.ErrDoesNotExist {
		t.Fatalf("OpenDynamicConfigStore after the store was unlinked: got %v, want ErrDoesNotExist", err)
	}
}
