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

// Package service implements the registry and builder a messaging
// pattern's ports meet through: a ServiceId computed from a service's
// name, pattern and type identity; a StaticConfig written once and
// sealed (package config's StaticConfigStore); a DynamicConfig port
// roster (package config's DynamicConfigStore); and a Builder
// implementing the create / open / open-or-create state machine with
// its compatibility checks.
//
// This package stops at the registry boundary: it does not itself mint
// Publishers, Subscribers or any other port. A caller that has built a
// *Service derives the PortIds its own ports should use and hands them
// to package port; the root package's facade (iceoryx2.PublishSubscribe
// and its siblings) is what wires
// service.Builder and port together into the public
// node.service_builder(...).publish_subscribe() surface.
package service
