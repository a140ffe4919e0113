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

import (
	"fmt"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Id is a service's stable fingerprint: two Builders in different
// processes that ask for the same Name, MessagingPattern, payload
// TypeDetail and user-header TypeDetail compute the same Id and so find
// the same on-disk StaticConfig/DynamicConfig storage, per spec.md §3.
// Attributes are deliberately not part of Id (see Attributes' own
// doc comment); neither is capacity or the overflow flag, both of which
// are compatibility-checked separately at open time rather than
// splitting an otherwise-identical service in two over a capacity
// difference.
type Id uint64

// newId hashes name, pattern and both TypeDetails into an Id with
// xxhash, the same fast, well-distributed non-cryptographic hash
// cespare/xxhash/v2 is already pulled in for (by way of
// prometheus/common's label hashing) -- reused here directly instead of
// this module hand-rolling FNV or similar for the one thing it has to
// hash. Byte order is fixed (little-endian, via appendUint64) and
// Attributes.sorted()'s canonical ordering is not involved here at all,
// precisely because attributes never participate in Id.
func newId(name Name, pattern MessagingPattern, payloadType, userHeaderType TypeDetail) Id {
	var buf []byte
	buf = appendString(buf, string(name))
	buf = appendUint64(buf, uint64(pattern))
	buf = appendTypeDetail(buf, payloadType)
	buf = appendTypeDetail(buf, userHeaderType)
	return Id(xxhash.Sum64(buf))
}

// String renders an Id as fixed-width lowercase hex, the form used to
// name its StaticConfig/DynamicConfig shared-memory objects.
func (id Id) String() string {
	return fmt.Sprintf("%016x", uint64(id))
}

// ParseId parses the hex form String renders, the inverse ListIds'
// on-disk name parsing and node's per-service tag files both need.
func ParseId(s string) (Id, error) {
	n, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("service: parse id %q: %w", s, err)
	}
	return Id(n), nil
}
