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

// State classifies a node as seen from outside the process that owns it.
type State int

const (
	// Alive means the node's monitor token is currently held by a live
	// process.
	Alive State = iota
	// Dead means the token file exists but no process holds it -- its
	// owner's process ended without releasing it.
	Dead
	// DoesNotExist means no token file was ever created under this id,
	// or it has already been fully cleaned up.
	DoesNotExist
)

func (s State) String() string {
	switch s {
	case Alive:
		return "alive"
	case Dead:
		return "dead"
	default:
		return "does-not-exist"
	}
}

func monitorTokenPath(id Id) string {
	return fmt.Sprintf("%s/%snode_%s.monitor", shm.DefaultPathHint, shm.DefaultPrefix, id.String())
}

// Monitor holds the advisory exclusive file lock that makes a Node
// observable as Alive from other processes for as long as this handle
// stays open. The kernel releases the lock automatically if the owning
// process exits for any reason, including a crash, which is what lets
// StateOf report Dead without any cooperation from the corpse.
type Monitor struct {
	id   Id
	file *os.File
}

// CreateMonitorToken creates and exclusively locks id's token file. Fails
// with ErrTokenAlreadyHeld in the vanishingly unlikely event id collides
// with an already-live node.
func CreateMonitorToken(id Id) (*Monitor, error) {
	path := monitorTokenPath(id)

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o600)
	if err != nil {
		return nil, fmt.Errorf("node: create monitor token %s: %w", path, err)
	}

	if err := unix.Flock(int(f.Fd()), unix.LOCK_EX|unix.LOCK_NB); err != nil {
		_ = f.Close()
		if err == unix.EWOULDBLOCK {
			return nil, ErrTokenAlreadyHeld
		}
		return nil, fmt.Errorf("node: lock monitor token %s: %w", path, err)
	}

	return &Monitor{id: id, file: f}, nil
}

// StateOf queries id's liveness from outside the owning process. It opens
// a fresh file descriptor onto the token file and attempts a non-blocking
// exclusive lock: success means nobody holds it (Dead), EWOULDBLOCK means
// a live owner holds it (Alive), and the file not existing at all means
// DoesNotExist. The probing lock, if acquired, is released immediately --
// this call only ever observes, it never claims ownership.
func StateOf(id Id) (State, error) {
	path := monitorTokenPath(id)

	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		if os.IsNotExist(err) {
			return DoesNotExist, nil
		}
		return DoesNotExist, fmt.Errorf("node: open monitor token %s: %w", path, err)
	}
	defer f.Close()

	err = unix.Flock(int(f.Fd()), unix.LOCK_EX|unix.LOCK_NB)
	if err == unix.EWOULDBLOCK {
		return Alive, nil
	}
	if err != nil {
		return DoesNotExist, fmt.Errorf("node: probe monitor token %s: %w", path, err)
	}
	_ = unix.Flock(int(f.Fd()), unix.LOCK_UN)
	return Dead, nil
}

// Id returns the node id this monitor token was created for.
func (m *Monitor) Id() Id { return m.id }

// ReleaseLockOnly closes this handle's file descriptor without removing
// the token file, simulating a process that exits (or crashes) after
// creating its token: the kernel drops the advisory lock automatically,
// but the file itself is left behind for a Cleaner to find, exactly the
// state StateOf classifies as Dead.
func (m *Monitor) ReleaseLockOnly() error {
	if err := m.file.Close(); err != nil {
		return fmt.Errorf("node: close monitor token: %w", err)
	}
	return nil
}

// removeMonitorToken unlinks id's token file without going through a held
// Monitor handle, for the case where this process is a Cleaner operating
// on another process's dead node rather than the node's own owner.
func removeMonitorToken(id Id) error {
	path := monitorTokenPath(id)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("node: remove monitor token %s: %w", path, err)
	}
	return nil
}

// Release closes and removes the token file, making the node observable
// as DoesNotExist rather than Dead to anyone who checks afterwards.
func (m *Monitor) Release() error {
	if err := m.file.Close(); err != nil {
		return fmt.Errorf("node: close monitor token: %w", err)
	}
	path := monitorTokenPath(m.id)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("node: remove monitor token %s: %w", path, err)
	}
	return nil
}
