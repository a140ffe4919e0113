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

import (
	"time"
	"unsafe"

	"code.hybscloud.com/atomix"

	"github.com/eclipse-iceoryx/iceoryx2-core-go/internal/wait"
	"github.com/eclipse-iceoryx/iceoryx2-core-go/shm"
)

// mgmtHeader is the fixed-size control block at the front of every event
// channel's shared segment, mirroring package zerocopy's mgmtHeader.
// referenceCounter/hasListener are the cross-process fields the Rust
// original keeps directly on its Management struct; trackerKind and
// triggerIdMax are this module's own additions, letting a Notifier
// validate it is opening a channel laid out the way its builder expects
// before it ever touches the tracker bytes that follow this header.
type mgmtHeader struct {
	trackerKind      uint64
	triggerIdMax     uint64
	referenceCounter atomix.Uint64
	hasListener      atomix.Bool
	initState        atomix.Uint64
}

// isInitializedSentinel guards against a Notifier reading trackerKind/
// triggerIdMax out of a segment whose creator has mapped it but not yet
// finished writing its header fields, the same race package zerocopy
// guards against with its own initState sentinel.
const isInitializedSentinel = 0xbeefaffedeadbeef

func mgmtHeaderSize() int {
	return int(unsafe.Sizeof(mgmtHeader{}))
}

type segmentHandle struct {
	seg  *shm.Segment
	name string
}

func (s *segmentHandle) unlink() {
	_ = s.seg.Close()
	_ = shm.Unlink(s.name)
}

// connection is the shared state both Notifier and Listener wrap.
type connection struct {
	segment *segmentHandle
	hdr     *mgmtHeader
	tracker IdTracker
	signal  *pollSignal
}

// decrementReferenceCounter decrements hdr's reference count by one via a
// CAS loop (atomix.Uint64 only exposes an unsigned Add, so decrementing
// takes the same CAS shape the original's fetch_sub(1) comparison does
// when checking for "I was the last reference"), reporting whether this
// call brought the count to zero.
func decrementReferenceCounter(hdr *mgmtHeader) bool {
	for {
		old := hdr.referenceCounter.LoadRelaxed()
		if hdr.referenceCounter.CompareAndSwapRelaxed(old, old-1) {
			return old == 1
		}
	}
}

func channelMemorySize(kind trackerKind, triggerIdMax TriggerId) int {
	capacity := int(triggerIdMax) + 1
	return mgmtHeaderSize() + idTrackerMemorySize(kind, capacity) + signalMemorySize()
}

// createListener creates name's shared segment. It fails with
// ErrAlreadyExists if a Listener already created it -- unlike package
// zerocopy's symmetric create-or-open, only the Listener side ever
// creates an event channel.
func createListener(name string, kind trackerKind, triggerIdMax TriggerId) (*connection, error) {
	size := channelMemorySize(kind, triggerIdMax)

	seg, err := shm.CreateOrOpen(name, size, 0o600)
	if err != nil {
		return nil, err
	}
	if !seg.HasOwnership() {
		_ = seg.Close()
		return nil, ErrAlreadyExists
	}
	handle := &segmentHandle{seg: seg, name: name}

	bytes := seg.Bytes()
	hdr := (*mgmtHeader)(unsafe.Pointer(unsafe.SliceData(bytes)))
	hdr.trackerKind = uint64(kind)
	hdr.triggerIdMax = uint64(triggerIdMax)
	hdr.referenceCounter.StoreRelaxed(1)
	hdr.hasListener.StoreRelaxed(true)

	capacity := int(triggerIdMax) + 1
	trackerStart := mgmtHeaderSize()
	trackerEnd := trackerStart + idTrackerMemorySize(kind, capacity)
	signalEnd := trackerEnd + signalMemorySize()

	tracker, err := initIdTracker(kind, bytes[trackerStart:trackerEnd], capacity, true)
	if err != nil {
		_ = seg.Close()
		return nil, err
	}
	signal, err := initSignal(bytes[trackerEnd:signalEnd], true)
	if err != nil {
		_ = seg.Close()
		return nil, err
	}

	hdr.initState.StoreRelease(isInitializedSentinel)
	seg.ReleaseOwnership()

	return &connection{segment: handle, hdr: hdr, tracker: tracker, signal: signal}, nil
}

// openNotifier opens an existing channel, validating it against kind and
// triggerIdMax and incrementing the channel's reference count the same
// way the original's NotifierBuilder::open does: failing with
// ErrDoesNotExist if there is no attached Listener or the reference count
// has already fallen to zero, racing any other opener via a CAS loop
// rather than a lock.
func openNotifier(name string, kind trackerKind, triggerIdMax TriggerId, creationTimeout time.Duration) (*connection, error) {
	size := channelMemorySize(kind, triggerIdMax)

	seg, err := shm.Open(name, size)
	if err != nil {
		if creationTimeout <= 0 {
			return nil, ErrDoesNotExist
		}
		found := wait.Adaptive(creationTimeout, func() bool {
			seg, err = shm.Open(name, size)
			return err == nil
		})
		if !found {
			return nil, ErrDoesNotExist
		}
	}
	handle := &segmentHandle{seg: seg, name: name}

	bytes := seg.Bytes()
	hdr := (*mgmtHeader)(unsafe.Pointer(unsafe.SliceData(bytes)))

	isInitialized := func() bool { return hdr.initState.LoadAcquire() == isInitializedSentinel }
	initialized := isInitialized()
	if !initialized && creationTimeout > 0 {
		initialized = wait.Adaptive(creationTimeout, isInitialized)
	}
	if !initialized {
		_ = seg.Close()
		return nil, ErrInitializationNotYetFinalized
	}

	if trackerKind(hdr.trackerKind) != kind {
		_ = seg.Close()
		return nil, ErrIncompatibleTrackerKind
	}
	if TriggerId(hdr.triggerIdMax) != triggerIdMax {
		_ = seg.Close()
		return nil, ErrIncompatibleTriggerIdMax
	}

	refCount := hdr.referenceCounter.LoadRelaxed()
	for {
		if !hdr.hasListener.LoadRelaxed() || refCount == 0 {
			_ = seg.Close()
			return nil, ErrDoesNotExist
		}
		if hdr.referenceCounter.CompareAndSwapRelaxed(refCount, refCount+1) {
			break
		}
		refCount = hdr.referenceCounter.LoadRelaxed()
	}

	capacity := int(triggerIdMax) + 1
	trackerStart := mgmtHeaderSize()
	trackerEnd := trackerStart + idTrackerMemorySize(kind, capacity)
	signalEnd := trackerEnd + signalMemorySize()

	tracker, err := initIdTracker(kind, bytes[trackerStart:trackerEnd], capacity, false)
	if err != nil {
		_ = seg.Close()
		return nil, err
	}
	signal, err := initSignal(bytes[trackerEnd:signalEnd], false)
	if err != nil {
		_ = seg.Close()
		return nil, err
	}

	return &connection{segment: handle, hdr: hdr, tracker: tracker, signal: signal}, nil
}
