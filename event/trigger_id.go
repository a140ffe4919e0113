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

package event

// TriggerId identifies which of a service's events fired. A Listener is
// built with a maximum TriggerId it supports; a Notifier is rejected if it
// tries to notify an id beyond that maximum.
type TriggerId uint32

// TriggerIdDefaultMax is the default upper bound NewBuilder sets when
// Builder.TriggerIdMax is not called, matching the original project's
// u16-range default.
const TriggerIdDefaultMax TriggerId = 1<<16 - 1
