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

package port

import (
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"

	"github.com/eclipse-iceoryx/iceoryx2-core-go/config"
)

// NewPortId mints a fresh, process-wide-unique config.PortId, the same
// way package node mints Node ids.
func NewPortId() config.PortId {
	return config.PortId(uuid.New())
}

func portIdString(id config.PortId) string {
	return hex.EncodeToString(id[:])
}

func dataSegmentName(owner config.PortId) string {
	return fmt.Sprintf("%s.data", portIdString(owner))
}

func connectionName(producer, consumer config.PortId) string {
	return fmt.Sprintf("%s_%s.connection", portIdString(producer), portIdString(consumer))
}

func eventChannelName(owner config.PortId) string {
	return fmt.Sprintf("%s.event", portIdString(owner))
}
