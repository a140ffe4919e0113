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

package config

import (
	"fmt"
	"os"
	"unsafe"

	"code.hybscloud.com/atomix"

	"github.com/eclipse-iceoryx/iceoryx2-core-go/internal/wait"
	"github.com/eclipse-iceoryx/iceoryx2-core-go/shm"
)

// staticConfigSealMagic marks a StaticConfigStore as fully written. The
// original project gates this with a file-permission flip (write-only
// while under construction, read-write once sealed); an mmap'd shm
// segment has no equivalent cheap gate, so this package expresses the
// same write-once-then-visible contract with a sentinel field instead,
// the same substitution package zerocopy and package event already make
// for their own initState fields.
const staticConfigSealMagic = 0x5ea1eddeedc0ffee

type staticHeader struct {
	sealMagic        atomix.Uint64
	referenceCounter atomix.Uint64
	payloadLen       uint64
}

func staticHeaderSize() int {
	return int(unsafe.Sizeof(staticHeader{}))
}

// StaticConfigStore holds a service's immutable contract: the serialized
// bytes a caller wrote once at creation, visible to every opener only
// after Seal has been called.
type StaticConfigStore struct {
	segment *shm.Segment
	name    string
	hdr     *staticHeader
	payload []byte
}

// staticConfigMemorySize returns the bytes CreateStaticConfigStore needs
// to hold a payload of up to capacity bytes.
func staticConfigMemorySize(capacity int) int {
	return staticHeaderSize() + capacity
}

// CreateStaticConfigStore exclusively creates name's store and writes
// payload into it. The store is left unsealed: callers that must first
// create a companion DynamicConfigStore before any opener should be able
// to see this one (the builder sequence spec.md describes) call Seal
// only once that has succeeded. Fails with ErrAlreadyExists if another
// process already created this name, or ErrPayloadTooLarge if payload
// does not fit within capacity.
func CreateStaticConfigStore(name string, payload []byte, capacity int) (*StaticConfigStore, error) {
	if len(payload) > capacity {
		return nil, ErrPayloadTooLarge
	}

	size := staticConfigMemorySize(capacity)
	seg, err := shm.CreateOrOpen(name, size, 0o600)
	if err != nil {
		return nil, err
	}
	if !seg.HasOwnership() {
		_ = seg.Close()
		return nil, ErrAlreadyExists
	}

	bytes := seg.Bytes()
	hdr := (*staticHeader)(unsafe.Pointer(unsafe.SliceData(bytes)))
	payloadRegion := bytes[staticHeaderSize():]

	copy(payloadRegion, payload)
	hdr.payloadLen = uint64(len(payload))
	hdr.referenceCounter.StoreRelaxed(1)
	seg.ReleaseOwnership()

	return &StaticConfigStore{segment: seg, name: name, hdr: hdr, payload: payloadRegion[:len(payload)]}, nil
}

// Seal marks the store as fully written, making it visible to openers.
func (s *StaticConfigStore) Seal() {
	s.hdr.sealMagic.StoreRelease(staticConfigSealMagic)
}

// Payload returns the bytes this store was created with.
func (s *StaticConfigStore) Payload() []byte {
	return s.payload
}

// Close detaches this handle. If it was the last reference to the store,
// the backing shared memory is unlinked.
func (s *StaticConfigStore) Close() error {
	last := decrementReferenceCounter(&s.hdr.referenceCounter)
	if last {
		_ = s.segment.Close()
		return shm.Unlink(s.name)
	}
	return s.segment.Close()
}

// OpenStaticConfigStore opens an existing store, waiting up to
// global.CreationTimeout for it to be sealed if it is not sealed yet.
// Fails with ErrDoesNotExist if no store exists under this name, or
// ErrHangsInCreation if it is still unsealed once the timeout elapses.
func OpenStaticConfigStore(name string, capacity int, global Global) (*StaticConfigStore, error) {
	size := staticConfigMemorySize(capacity)

	seg, err := shm.Open(name, size)
	if err != nil {
		return nil, ErrDoesNotExist
	}

	bytes := seg.Bytes()
	hdr := (*staticHeader)(unsafe.Pointer(unsafe.SliceData(bytes)))

	sealed := func() bool { return hdr.sealMagic.LoadAcquire() == staticConfigSealMagic }
	if !sealed() {
		if !wait.Adaptive(global.CreationTimeout, sealed) {
			_ = seg.Close()
			return nil, ErrHangsInCreation
		}
	}

	payloadLen := hdr.payloadLen
	payloadRegion := bytes[staticHeaderSize():]

	for {
		old := hdr.referenceCounter.LoadRelaxed()
		if hdr.referenceCounter.CompareAndSwapRelaxed(old, old+1) {
			break
		}
	}

	return &StaticConfigStore{segment: seg, name: name, hdr: hdr, payload: payloadRegion[:payloadLen]}, nil
}

// OpenStaticConfigStoreAnySize opens an existing store without the
// caller knowing its payload capacity ahead of time, discovering it by
// statting the backing shared-memory object's actual size instead. A
// store's total size is fixed for its whole lifetime at
// CreateStaticConfigStore time (capacity never changes after creation,
// only sealMagic and referenceCounter do), so this is safe to do before
// the store has even been sealed yet. Used by callers like package
// service whose payload size varies per service instance, unlike
// OpenStaticConfigStore's fixed-capacity callers.
func OpenStaticConfigStoreAnySize(name string, global Global) (*StaticConfigStore, error) {
	path := fmt.Sprintf("%s/%s%s", shm.DefaultPathHint, shm.DefaultPrefix, name)
	info, err := os.Stat(path)
	if err != nil {
		return nil, ErrDoesNotExist
	}

	capacity := int(info.Size()) - staticHeaderSize()
	if capacity < 0 {
		return nil, ErrDoesNotExist
	}
	return OpenStaticConfigStore(name, capacity, global)
}
