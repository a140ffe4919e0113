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

package service

// MessagingPattern is one of the messaging patterns a Service can be
// opened or created for. Two services with the same Name but a
// different MessagingPattern are unrelated services with different
// ServiceIds: the pattern is part of a service's identity, not a
// separate axis you can switch on an already-open one.
type MessagingPattern uint8

const (
	PublishSubscribe MessagingPattern = iota
	Event
	RequestResponse
)

// String names a MessagingPattern the way it is named in spec.md's
// public API surface table.
func (p MessagingPattern) String() string {
	switch p {
	case PublishSubscribe:
		return "publish_subscribe"
	case Event:
		return "event"
	case RequestResponse:
		return "request_response"
	default:
		return "unknown"
	}
}
