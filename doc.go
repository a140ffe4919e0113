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

// Package iceoryx2 is the public façade applications import: a Node
// opens or creates named services, each typed by its messaging pattern
// (publish-subscribe, event, request-response), and a service in turn
// mints the ports (Publisher/Subscriber, Notifier/Listener, Client/
// Server) that actually loan, send and receive samples.
//
// Everything below this package -- node, service, port, waitset, event,
// config, zerocopy, shm -- is usable directly, but this package is the
// one import path wiring them together the way an application normally
// wants them: NewNodeBuilder().Create() gives you a Node;
// Node.ServiceBuilder(name) gives you a ServiceBuilder; PublishSubscribe
// applied to that, Event, or RequestResponse selects the pattern and
// (for the first and third) the payload type(s), whose Create/Open/
// OpenOrCreate yields a typed Service that mints ports.
//
// Go has no generic methods, so where the original API reads
// `service_builder.publish_subscribe::<T>()`, this package spells the
// same thing as the free function PublishSubscribe[T](serviceBuilder) --
// the type parameter moves from the method to the function because Go
// does not allow the former.
package iceoryx2
