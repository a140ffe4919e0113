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
	"unsafe"

	"code.hybscloud.com/atomix"

	"github.com/eclipse-iceoryx/iceoryx2-core-go/containers"
	"github.com/eclipse-iceoryx/iceoryx2-core-go/internal/metrics"
	"github.com/eclipse-iceoryx/iceoryx2-core-go/internal/wait"
	"github.com/eclipse-iceoryx/iceoryx2-core-go/shm"
)

// dynamicHeader carries the fields a joiner must validate before it may
// trust the roster arrays that follow it in the segment. formatVersion
// plays the same role the original's Data<T>.version AtomicU64 plays in
// dynamic_storage/file.rs: zero means "creator has not finished writing
// yet", any other value is compared against ConfigFormatVersion rather
// than trusted outright.
type dynamicHeader struct {
	formatVersion        atomix.Uint64
	referenceCounter     atomix.Uint64
	markedForDestruction atomix.Bool
	limits               Limits
}

func dynamicHeaderSize() int {
	return int(unsafe.Sizeof(dynamicHeader{}))
}

// DynamicConfigStore holds a service's live roster: one fixed-capacity
// array of PortRecord per PortRole, each role's capacity bounded by the
// Limits it was created with.
type DynamicConfigStore struct {
	segment *shm.Segment
	name    string
	hdr     *dynamicHeader
	rosters [roleCount]*containers.FixedVec[PortRecord]
}

func dynamicConfigMemorySize(limits Limits) int {
	size := dynamicHeaderSize()
	for role := PortRole(0); role < roleCount; role++ {
		size += containers.FixedVecMemorySize[PortRecord](limits.capacityFor(role))
	}
	return size
}

func initRosters(bytes []byte, limits Limits) ([roleCount]*containers.FixedVec[PortRecord], error) {
	var rosters [roleCount]*containers.FixedVec[PortRecord]
	offset := dynamicHeaderSize()
	for role := PortRole(0); role < roleCount; role++ {
		capacity := limits.capacityFor(role)
		size := containers.FixedVecMemorySize[PortRecord](capacity)
		vec, err := containers.InitFixedVec[PortRecord](bytes[offset:offset+size], capacity)
		if err != nil {
			return rosters, err
		}
		rosters[role] = vec
		offset += size
	}
	return rosters, nil
}

// CreateDynamicConfigStore exclusively creates name's store with the
// given role limits. Fails with ErrAlreadyExists if another process
// already created this name.
func CreateDynamicConfigStore(name string, limits Limits) (*DynamicConfigStore, error) {
	size := dynamicConfigMemorySize(limits)

	seg, err := shm.CreateOrOpen(name, size, 0o600)
	if err != nil {
		return nil, err
	}
	if !seg.HasOwnership() {
		_ = seg.Close()
		return nil, ErrAlreadyExists
	}

	bytes := seg.Bytes()
	hdr := (*dynamicHeader)(unsafe.Pointer(unsafe.SliceData(bytes)))
	hdr.limits = limits
	hdr.referenceCounter.StoreRelaxed(1)

	rosters, err := initRosters(bytes, limits)
	if err != nil {
		_ = seg.Close()
		return nil, err
	}

	hdr.formatVersion.StoreRelease(ConfigFormatVersion)
	seg.ReleaseOwnership()

	return &DynamicConfigStore{segment: seg, name: name, hdr: hdr, rosters: rosters}, nil
}

// OpenDynamicConfigStore opens an existing store, waiting up to
// global.CreationTimeout for the creator to finish writing its header.
// Fails with ErrDoesNotExist if no store exists under this name,
// ErrVersionMismatch if it was written by an incompatible package
// version, ErrIncompatibleCapacity if limits does not match the store's,
// or ErrMarkedForDestruction if its reference count had already reached
// zero.
func OpenDynamicConfigStore(name string, limits Limits, global Global) (*DynamicConfigStore, error) {
	size := dynamicConfigMemorySize(limits)

	seg, err := shm.Open(name, size)
	if err != nil {
		return nil, ErrDoesNotExist
	}

	bytes := seg.Bytes()
	hdr := (*dynamicHeader)(unsafe.Pointer(unsafe.SliceData(bytes)))

	initialized := func() bool { return hdr.formatVersion.LoadAcquire() != 0 }
	if !initialized() {
		if !wait.Adaptive(global.CreationTimeout, initialized) {
			_ = seg.Close()
			return nil, ErrDoesNotExist
		}
	}

	if hdr.formatVersion.LoadAcquire() != ConfigFormatVersion {
		_ = seg.Close()
		return nil, ErrVersionMismatch
	}
	if hdr.limits != limits {
		_ = seg.Close()
		return nil, ErrIncompatibleCapacity
	}

	for {
		old := hdr.referenceCounter.LoadRelaxed()
		if old == 0 {
			_ = seg.Close()
			return nil, ErrMarkedForDestruction
		}
		if hdr.referenceCounter.CompareAndSwapRelaxed(old, old+1) {
			break
		}
	}

	rosters, err := initRosters(bytes, limits)
	if err != nil {
		_ = seg.Close()
		return nil, err
	}

	return &DynamicConfigStore{segment: seg, name: name, hdr: hdr, rosters: rosters}, nil
}

// Register adds id to role's roster, tagged with the node that owns it.
// Fails with ErrRosterFull if that role's fixed-capacity array has no
// room left. Callers must serialize their own Register/Deregister calls
// for a given role (the roster itself arbitrates no more than package
// containers.FixedVec.Push already does): package service calls this
// under the static config's builder-level exclusivity during create, and
// otherwise only ever from the single process performing its own port's
// registration.
func (d *DynamicConfigStore) Register(role PortRole, id PortId, node NodeId) error {
	if err := d.rosters[role].Push(PortRecord{Id: id, NodeId: node}); err != nil {
		return ErrRosterFull
	}
	metrics.Default().SetConnectedPorts(role.String(), d.rosters[role].Len())
	return nil
}

// Deregister removes id from role's roster, reporting whether it was
// found.
func (d *DynamicConfigStore) Deregister(role PortRole, id PortId) bool {
	roster := d.rosters[role]
	found := -1
	roster.Each(func(i int, rec *PortRecord) bool {
		if rec.Id == id {
			found = i
			return false
		}
		return true
	})
	if found < 0 {
		return false
	}
	roster.RemoveSwap(found)
	metrics.Default().SetConnectedPorts(role.String(), roster.Len())
	return true
}

// DeregisterNode removes every PortRecord across all roles that belongs
// to node, the roster-side half of cleaning up a dead node's leftover
// ports once node.Cleaner has identified which services it joined.
// Returns how many records were removed.
func (d *DynamicConfigStore) DeregisterNode(node NodeId) int {
	removed := 0
	for role := PortRole(0); role < roleCount; role++ {
		roster := d.rosters[role]
		for {
			found := -1
			roster.Each(func(i int, rec *PortRecord) bool {
				if rec.NodeId == node {
					found = i
					return false
				}
				return true
			})
			if found < 0 {
				break
			}
			roster.RemoveSwap(found)
			removed++
		}
		metrics.Default().SetConnectedPorts(role.String(), roster.Len())
	}
	return removed
}

// Each invokes f once for every currently registered PortRecord in role's
// roster, in no particular order beyond what FixedVec.Each provides.
func (d *DynamicConfigStore) Each(role PortRole, f func(PortRecord)) {
	d.rosters[role].Each(func(_ int, rec *PortRecord) bool {
		f(*rec)
		return true
	})
}

// Len reports how many ports are currently registered under role.
func (d *DynamicConfigStore) Len(role PortRole) int {
	return d.rosters[role].Len()
}

// Close detaches this handle. If it was the last reference to the store,
// markedForDestruction is set and the backing shared memory is unlinked,
// matching the reference-counted lifetime spec.md requires of dynamic
// config storage.
func (d *DynamicConfigStore) Close() error {
	last := decrementReferenceCounter(&d.hdr.referenceCounter)
	if last {
		d.hdr.markedForDestruction.StoreRelease(true)
		_ = d.segment.Close()
		return shm.Unlink(d.name)
	}
	return d.segment.Close()
}
