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

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"github.com/eclipse-iceoryx/iceoryx2-core-go/shm"
)

func cleanerLockPath(id Id) string {
	return fmt.Sprintf("%s/%snode_%s.cleaner", shm.DefaultPathHint, shm.DefaultPrefix, id.String())
}

// Cleaner is the exclusive handle a process acquires before reclaiming a
// dead node's resources, preventing two processes from racing the same
// cleanup. Exactly one Cleaner may exist per node id at a time.
type Cleaner struct {
	id   Id
	file *os.File
}

// AcquireCleaner claims the exclusive right to clean up id. Fails with
// ErrDoesNotExist if id has no token on record, ErrNodeStillAlive if its
// owning process is still running, or ErrCleanerAlreadyRunning if another
// process already holds the cleaner lock for it.
func AcquireCleaner(id Id) (*Cleaner, error) {
	state, err := StateOf(id)
	if err != nil {
		return nil, err
	}
	switch state {
	case DoesNotExist:
		return nil, ErrDoesNotExist
	case Alive:
		return nil, ErrNodeStillAlive
	}

	path := cleanerLockPath(id)
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o600)
	if err != nil {
		return nil, fmt.Errorf("node: create cleaner lock %s: %w", path, err)
	}

	if err := unix.Flock(int(f.Fd()), unix.LOCK_EX|unix.LOCK_NB); err != nil {
		_ = f.Close()
		if err == unix.EWOULDBLOCK {
			return nil, ErrCleanerAlreadyRunning
		}
		return nil, fmt.Errorf("node: lock cleaner lock %s: %w", path, err)
	}

	return &Cleaner{id: id, file: f}, nil
}

// Details returns the dead node's details record, if one is still
// present.
func (c *Cleaner) Details() (Details, error) {
	return ReadDetails(c.id)
}

// RemoveDeadNode removes the node's details record and monitor token.
// Removing which leftover port records belong to this node from the
// dynamic configs of services it participated in is the caller's
// responsibility: package node only knows the node's own id, its
// per-service tag files (TagService, TaggedServices), and its opaque
// details blob, not how to open a service's DynamicConfigStore -- see
// the root package's CleanupDeadNode, which combines a Cleaner with
// TaggedServices and package service's DeregisterNode before calling
// this.
func (c *Cleaner) RemoveDeadNode() error {
	if err := removeDetails(c.id); err != nil {
		return err
	}
	return removeMonitorToken(c.id)
}

// Close releases this cleaner's exclusive lock, allowing a future
// AcquireCleaner call for this id to succeed (or, once RemoveDeadNode has
// run, reporting ErrDoesNotExist since the node no longer has a record
// at all).
func (c *Cleaner) Close() error {
	_ = unix.Flock(int(c.file.Fd()), unix.LOCK_UN)
	if err := c.file.Close(); err != nil {
		return fmt.Errorf("node: close cleaner lock: %w", err)
	}
	path := cleanerLockPath(c.id)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("node: remove cleaner lock %s: %w", path, err)
	}
	return nil
}
