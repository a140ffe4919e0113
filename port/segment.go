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
	"encoding/binary"

	"github.com/eclipse-iceoryx/iceoryx2-core-go/config"
	"github.com/eclipse-iceoryx/iceoryx2-core-go/shm"
	"github.com/eclipse-iceoryx/iceoryx2-core-go/zerocopy"
)

// sampleHeaderSize is the length, in bytes, of the little-endian uint64
// payload-size header loan writes immediately before every slot it
// hands out. A Subscriber only ever learns a Sample's offset, not its
// size, over the wire (zerocopy.PointerOffset is a bare offset), so the
// size has to travel some other way; this is this port's stand-in for
// the real project's ChunkHeader.
const sampleHeaderSize = 8

// dataSegment is the payload-carrying shared-memory region a Publisher
// owns and every connected Subscriber maps read-only. Only the owning
// Publisher's side ever has a non-nil allocator: a Subscriber's mapping
// is observe-only, matching spec.md §5's "single-writer for allocation;
// readers only map pages and observe immutable offsets".
type dataSegment struct {
	seg       *shm.Segment
	allocator shm.Allocator
}

// createDataSegment creates owner's data segment, sized capacity bytes,
// and equips it with a PowerOfTwoAllocator.
func createDataSegment(owner config.PortId, capacity int) (*dataSegment, error) {
	seg, err := shm.CreateOrOpen(dataSegmentName(owner), capacity, 0o600)
	if err != nil {
		return nil, err
	}
	return &dataSegment{seg: seg, allocator: shm.NewPowerOfTwoAllocator(capacity)}, nil
}

// openDataSegment maps an already-existing owner's data segment
// read-only (there is no allocator on this side: a Subscriber never
// allocates from a Publisher's segment, only reads what the Publisher
// already wrote).
func openDataSegment(owner config.PortId, capacity int) (*dataSegment, error) {
	seg, err := shm.Open(dataSegmentName(owner), capacity)
	if err != nil {
		return nil, err
	}
	return &dataSegment{seg: seg}, nil
}

// loan reserves a payloadSize-byte slot (plus its header) and returns
// the slot's offset alongside the payload-sized sub-slice the caller
// writes into.
func (d *dataSegment) loan(payloadSize int) (zerocopy.PointerOffset, []byte, error) {
	offset, err := d.allocator.Allocate(payloadSize+sampleHeaderSize, 8)
	if err != nil {
		return zerocopy.PointerOffset{}, nil, err
	}
	raw := d.seg.Bytes()[offset : offset+payloadSize+sampleHeaderSize]
	binary.LittleEndian.PutUint64(raw[:sampleHeaderSize], uint64(payloadSize))
	return zerocopy.NewPointerOffset(uint64(offset)), raw[sampleHeaderSize:], nil
}

// payloadAt reads the header at offset to recover the payload's size and
// returns the payload bytes themselves.
func (d *dataSegment) payloadAt(offset zerocopy.PointerOffset) []byte {
	raw := d.seg.Bytes()[offset.Value():]
	size := binary.LittleEndian.Uint64(raw[:sampleHeaderSize])
	return raw[sampleHeaderSize : sampleHeaderSize+size]
}

// free returns the slot at offset, including its header, to the
// allocator. It is only ever called on the owning Publisher's side,
// which is the only side with a non-nil allocator.
func (d *dataSegment) free(offset zerocopy.PointerOffset) {
	size := binary.LittleEndian.Uint64(d.seg.Bytes()[offset.Value() : offset.Value()+sampleHeaderSize])
	d.allocator.Deallocate(int(offset.Value()), int(size)+sampleHeaderSize)
}

func (d *dataSegment) close() error {
	return d.seg.Close()
}
