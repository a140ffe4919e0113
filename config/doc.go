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

// Package config provides the two shared-memory backed stores a service
// registration needs: StaticConfigStore, the write-once-then-sealed
// description of a service's contract, and DynamicConfigStore, the live
// roster of ports currently connected to it.
//
// Both stores are plain named shm.Segments -- this package owns only the
// header fields and layout math needed to make them safe to create and
// join from multiple processes; it has no notion of what a service name
// or a port record's payload actually means. Package service builds the
// open/create/open-or-create state machine on top of these two stores.
package config
