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

import (
	"time"
	"unsafe"

	"code.hybscloud.com/atomix"

	"github.com/eclipse-iceoryx/iceoryx2-core-go/containers/indexqueue"
	"github.com/eclipse-iceoryx/iceoryx2-core-go/internal/wait"
	"github.com/eclipse-iceoryx/iceoryx2-core-go/shm"
)

// isInitializedSentinel is written to mgmtHeader.initState once the
// creator has finished laying out both channels. An arbitrary-looking
// constant rather than a plain 1 guards against a joiner racing ahead on
// a segment whose backing file briefly contains leftover zero bytes from
// the filesystem, the same defense the original project's equivalent
// sentinel provides.
const isInitializedSentinel = 0xbeefaffedeadbeef

// maxCreationDuration bounds how long a joiner waits for the creator to
// finish initializing a freshly created segment before giving up.
const maxCreationDuration = 10 * time.Millisecond

// mgmtHeader is the fixed-size control block at the start of every
// connection's shared-memory segment. Everything a joiner needs to
// validate compatibility against its own builder settings is stored here
// rather than inside the channels themselves, so containers/indexqueue
// stays a plain SPSC primitive with no notion of "the settings it was
// created with".
type mgmtHeader struct {
	bufferSize          uint64
	maxBorrowedSamples  uint64
	enableSafeOverflow  atomix.Bool
	state               atomix.Uint64
	initState           atomix.Uint64
}

func mgmtHeaderSize() int {
	return int(unsafe.Sizeof(mgmtHeader{}))
}

// segmentHandle bundles the mapped shm.Segment with the name needed to
// unlink it, so cleanupSharedMemory does not need package shm's full
// Segment type in its signature.
type segmentHandle struct {
	seg  *shm.Segment
	name string
}

func (s *segmentHandle) unlink() {
	_ = s.seg.Close()
	_ = shm.Unlink(s.name)
}

// connection is the shared state both Sender and Receiver wrap: the
// mapped segment, its header, and the two channels built over the
// remainder of the segment's bytes.
type connection struct {
	segment        *segmentHandle
	hdr            *mgmtHeader
	receiveChannel *indexqueue.SafelyOverflowingIndexQueue
	retrieveChannel *indexqueue.IndexQueue
}

func receiveChannelSize(bufferSize int) int {
	return bufferSize
}

func retrieveChannelSize(bufferSize, maxBorrowedSamples int) int {
	return bufferSize + maxBorrowedSamples + 1
}

func connectionMemorySize(bufferSize, maxBorrowedSamples int) int {
	return mgmtHeaderSize() +
		indexqueue.SafelyOverflowingIndexQueueMemorySize(receiveChannelSize(bufferSize)) +
		indexqueue.IndexQueueMemorySize(retrieveChannelSize(bufferSize, maxBorrowedSamples))
}

// createOrOpenConnection maps name's shared memory, initializing it if
// this call is the one that created it or validating an existing one
// against cfg otherwise.
func createOrOpenConnection(name string, cfg builderConfig) (*connection, error) {
	size := connectionMemorySize(cfg.bufferSize, cfg.maxBorrowedSamples)

	seg, err := shm.CreateOrOpen(name, size, 0o600)
	if err != nil {
		return nil, err
	}
	handle := &segmentHandle{seg: seg, name: name}

	bytes := seg.Bytes()
	hdr := (*mgmtHeader)(unsafe.Pointer(unsafe.SliceData(bytes)))

	receiveSize := receiveChannelSize(cfg.bufferSize)
	retrieveSize := retrieveChannelSize(cfg.bufferSize, cfg.maxBorrowedSamples)
	receiveRegionStart := mgmtHeaderSize()
	receiveRegionEnd := receiveRegionStart + indexqueue.SafelyOverflowingIndexQueueMemorySize(receiveSize)
	retrieveRegionEnd := receiveRegionEnd + indexqueue.IndexQueueMemorySize(retrieveSize)

	if seg.HasOwnership() {
		hdr.bufferSize = uint64(cfg.bufferSize)
		hdr.maxBorrowedSamples = uint64(cfg.maxBorrowedSamples)
		hdr.enableSafeOverflow.StoreRelaxed(cfg.enableSafeOverflow)

		receiveChannel, err := indexqueue.InitSafelyOverflowingIndexQueue(bytes[receiveRegionStart:receiveRegionEnd], receiveSize)
		if err != nil {
			return nil, err
		}
		retrieveChannel, err := indexqueue.InitIndexQueue(bytes[receiveRegionEnd:retrieveRegionEnd], retrieveSize)
		if err != nil {
			return nil, err
		}

		hdr.initState.StoreRelease(isInitializedSentinel)
		seg.ReleaseOwnership()

		return &connection{segment: handle, hdr: hdr, receiveChannel: receiveChannel, retrieveChannel: retrieveChannel}, nil
	}

	ready := wait.Adaptive(maxCreationDuration, func() bool {
		return hdr.initState.LoadAcquire() == isInitializedSentinel
	})
	if !ready {
		_ = seg.Close()
		return nil, ErrCreationTimedOut
	}

	if int(hdr.bufferSize) != receiveSize {
		_ = seg.Close()
		return nil, ErrIncompatibleBufferSize
	}
	if int(hdr.maxBorrowedSamples) != cfg.maxBorrowedSamples {
		_ = seg.Close()
		return nil, ErrIncompatibleMaxBorrowedSamples
	}
	if hdr.enableSafeOverflow.LoadRelaxed() != cfg.enableSafeOverflow {
		_ = seg.Close()
		return nil, ErrIncompatibleOverflowSetting
	}

	receiveChannel, err := indexqueue.InitSafelyOverflowingIndexQueue(bytes[receiveRegionStart:receiveRegionEnd], receiveSize)
	if err != nil {
		return nil, err
	}
	retrieveChannel, err := indexqueue.InitIndexQueue(bytes[receiveRegionEnd:retrieveRegionEnd], retrieveSize)
	if err != nil {
		return nil, err
	}

	return &connection{segment: handle, hdr: hdr, receiveChannel: receiveChannel, retrieveChannel: retrieveChannel}, nil
}
