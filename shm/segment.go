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

package shm

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// DefaultPathHint is the directory backing named shared-memory objects.
// tmpfs-backed on Linux, which is what gives this module its zero-copy
// property: the "file" never touches disk.
const DefaultPathHint = "/dev/shm"

// DefaultPrefix namespaces every object this module creates so introspection
// tooling (cmd/iceoryx2-introspect) can list only objects that belong to it
// without guessing at a naming convention other software on the machine
// might also be using.
const DefaultPrefix = "iox2_"

// ErrSegmentTooSmall is returned by Open when an existing segment is
// smaller than the size the caller requested.
var ErrSegmentTooSmall = fmt.Errorf("shm: existing segment is smaller than requested size")

// Segment is a single named POSIX shared-memory object mapped into this
// process's address space.
type Segment struct {
	name         string
	file         *os.File
	data         []byte
	hasOwnership bool
}

// pathFor joins DefaultPathHint, DefaultPrefix and name by plain string
// concatenation -- no hidden magic.
func pathFor(name string) string {
	return DefaultPathHint + "/" + DefaultPrefix + name
}

// CreateOrOpen maps a named shared-memory segment of at least size bytes,
// creating it if it does not already exist. The returned Segment's
// HasOwnership reports true exactly for the caller that won the race to
// create it; callers must use that to decide whether they are responsible
// for initializing the segment's contents (see SharedManagementData in
// package zerocopy for the pattern built on top of this).
func CreateOrOpen(name string, size int, perm os.FileMode) (*Segment, error) {
	path := pathFor(name)

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, perm)
	hasOwnership := err == nil
	if err != nil {
		if !os.IsExist(err) {
			return nil, fmt.Errorf("shm: create %s: %w", path, err)
		}
		f, err = os.OpenFile(path, os.O_RDWR, perm)
		if err != nil {
			return nil, fmt.Errorf("shm: open existing %s: %w", path, err)
		}
	}

	if hasOwnership {
		if err := f.Truncate(int64(size)); err != nil {
			f.Close()
			os.Remove(path)
			return nil, fmt.Errorf("shm: truncate %s: %w", path, err)
		}
	} else {
		info, err := f.Stat()
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("shm: stat %s: %w", path, err)
		}
		if info.Size() < int64(size) {
			f.Close()
			return nil, ErrSegmentTooSmall
		}
	}

	data, err := unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		f.Close()
		if hasOwnership {
			os.Remove(path)
		}
		return nil, fmt.Errorf("shm: mmap %s: %w", path, err)
	}

	return &Segment{
		name:         name,
		file:         f,
		data:         data,
		hasOwnership: hasOwnership,
	}, nil
}

// Open maps an already-existing named shared-memory segment of at least
// size bytes. Unlike CreateOrOpen it never creates the backing object:
// callers that must never be the side responsible for initializing a
// construct's layout (e.g. package event's Notifier, which only ever
// joins a channel its Listener already created) use this instead.
func Open(name string, size int) (*Segment, error) {
	path := pathFor(name)

	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("shm: open %s: %w", path, err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("shm: stat %s: %w", path, err)
	}
	if info.Size() < int64(size) {
		f.Close()
		return nil, ErrSegmentTooSmall
	}

	data, err := unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("shm: mmap %s: %w", path, err)
	}

	return &Segment{name: name, file: f, data: data, hasOwnership: false}, nil
}

// HasOwnership reports whether this process's CreateOrOpen call is the one
// that created the backing object.
func (s *Segment) HasOwnership() bool {
	return s.hasOwnership
}

// ReleaseOwnership clears HasOwnership without affecting the mapping. A
// creator calls this once it has finished writing the segment's initial
// layout, so a subsequent cleanup path does not mistake a fully
// initialized, still-owning segment for one whose creation failed midway.
func (s *Segment) ReleaseOwnership() {
	s.hasOwnership = false
}

// Bytes returns the mapped region. Every relocatable container in this
// module (containers.BumpAllocator, containers/indexqueue, the payload
// pool allocators in this package) is constructed as a view over some
// sub-slice of these bytes.
func (s *Segment) Bytes() []byte {
	return s.data
}

// Name returns the segment's logical name, excluding DefaultPrefix and
// DefaultPathHint.
func (s *Segment) Name() string {
	return s.name
}

// Close unmaps the segment and closes its file descriptor. It does not
// remove the backing object; see Unlink.
func (s *Segment) Close() error {
	if s.data != nil {
		if err := unix.Munmap(s.data); err != nil {
			return fmt.Errorf("shm: munmap %s: %w", s.name, err)
		}
		s.data = nil
	}
	return s.file.Close()
}

// Unlink removes the named backing object. Once the last process holding
// a mapping closes it, the underlying memory is reclaimed. Typically
// called only by whichever side of a connection is responsible for
// cleanup (see the MarkedForDestruction state in package zerocopy).
func Unlink(name string) error {
	if err := os.Remove(pathFor(name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("shm: unlink %s: %w", name, err)
	}
	return nil
}
