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

// PointerOffset identifies a payload sample by its byte offset within a
// shared payload segment, not by address: the same value denotes the
// same sample no matter where each process mapped the segment.
type PointerOffset struct {
	offset uint64
}

// NewPointerOffset wraps a raw offset value.
func NewPointerOffset(offset uint64) PointerOffset {
	return PointerOffset{offset: offset}
}

// Value returns the raw offset.
func (p PointerOffset) Value() uint64 {
	return p.offset
}
