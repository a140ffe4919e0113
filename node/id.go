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

package node

import "github.com/google/uuid"

// Id is a process-unique 128-bit identifier, valid for as long as the
// process that minted it lives. It never repeats within a host's uptime
// (google/uuid's v4 generator draws from a CSPRNG), so it is safe to
// embed in every message header a port on this node writes, letting a
// receiver detect a self-loopback without consulting any registry.
type Id uuid.UUID

// NewId mints a fresh Id.
func NewId() Id {
	return Id(uuid.New())
}

// String renders the Id in the canonical 8-4-4-4-12 hex form, also used
// to name the Node's on-disk monitor token and details storage.
func (id Id) String() string {
	return uuid.UUID(id).String()
}

// parseId parses the canonical hex form String produces, for recovering
// an Id from a monitor token or details record's file name.
func parseId(s string) (Id, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return Id{}, err
	}
	return Id(u), nil
}
