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

package config

// PortId is the 128-bit unique identifier of a single port (publisher,
// subscriber, notifier, listener, client or server). Packages node and
// port mint these; this package only stores and compares them.
type PortId [16]byte

// NodeId mirrors package node's Id (a 128-bit uuid.UUID) without this
// package importing node: package node never needs to know about
// services, but a PortRecord does need to remember which node registered
// it, so a dead node's leftover ports can be found and removed from
// every service it joined (see DynamicConfigStore.DeregisterNode).
type NodeId [16]byte

// PortRole classifies which of a service's fixed-capacity roster arrays a
// PortRecord belongs to.
type PortRole uint8

const (
	RolePublisher PortRole = iota
	RoleSubscriber
	RoleNotifier
	RoleListener
	RoleClient
	RoleServer
	roleCount
)

// String names a PortRole, matching package config's own roster field
// names rather than spelling out "publisher port" etc.
func (r PortRole) String() string {
	switch r {
	case RolePublisher:
		return "publisher"
	case RoleSubscriber:
		return "subscriber"
	case RoleNotifier:
		return "notifier"
	case RoleListener:
		return "listener"
	case RoleClient:
		return "client"
	case RoleServer:
		return "server"
	default:
		return "unknown"
	}
}

// PortRecord is one entry in a DynamicConfigStore's per-role roster.
type PortRecord struct {
	Id     PortId
	NodeId NodeId
}

// Limits bounds how many ports of each role a DynamicConfigStore's roster
// can hold. A mismatch between a creator's and an opener's Limits fails
// OpenDynamicConfigStore with ErrIncompatibleCapacity, the same way the
// messaging-pattern and capacity compatibility checks in package service
// reject an incompatible open.
type Limits struct {
	MaxPublishers  int
	MaxSubscribers int
	MaxNotifiers   int
	MaxListeners   int
	MaxClients     int
	MaxServers     int
}

func (l Limits) capacityFor(role PortRole) int {
	switch role {
	case RolePublisher:
		return l.MaxPublishers
	case RoleSubscriber:
		return l.MaxSubscribers
	case RoleNotifier:
		return l.MaxNotifiers
	case RoleListener:
		return l.MaxListeners
	case RoleClient:
		return l.MaxClients
	case RoleServer:
		return l.MaxServers
	default:
		return 0
	}
}
