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

package zerocopy

import "fmt"

// Creation errors, returned by Builder.CreateSender/CreateReceiver.
var (
	ErrAnotherInstanceIsAlreadyConnected = fmt.Errorf("zerocopy: another instance already holds this role")
	ErrConnectionMarkedForDestruction    = fmt.Errorf("zerocopy: connection is currently being cleaned up")
	ErrIncompatibleBufferSize            = fmt.Errorf("zerocopy: existing connection has a different buffer size")
	ErrIncompatibleMaxBorrowedSamples    = fmt.Errorf("zerocopy: existing connection has a different max borrowed sample setting")
	ErrIncompatibleOverflowSetting       = fmt.Errorf("zerocopy: existing connection has a different safe overflow setting")
	ErrCreationTimedOut                  = fmt.Errorf("zerocopy: timed out waiting for the connection's creator to finish initialization")
)

// Send errors, returned by Sender.TrySend/BlockingSend.
var (
	ErrClearRetrieveChannelBeforeSend = fmt.Errorf("zerocopy: insufficient guaranteed space in the retrieve channel, drain it before sending more")
	ErrReceiveBufferFull              = fmt.Errorf("zerocopy: receive buffer is full and safe overflow is disabled")
)

// Receive errors, returned by Receiver.Receive.
var ErrReceiveWouldExceedMaxBorrow = fmt.Errorf("zerocopy: receiving this sample would exceed the max borrowed sample limit")

// Release errors, returned by Receiver.Release.
var ErrRetrieveBufferFull = fmt.Errorf("zerocopy: retrieve buffer is full, cannot release sample back to sender")
