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
	"strings"

	"github.com/eclipse-iceoryx/iceoryx2-core-go/shm"
)

const detailsSuffix = ".details"

func detailsStorageName(id Id) string {
	return "node_" + id.String() + detailsSuffix
}

// Details is the small, fixed-meaning record a Node writes about itself:
// a human-assigned name plus an opaque configuration blob the caller
// controls the format of. The original project's equivalent
// (NodeDetails{name, config}) is serialized with whatever format that
// caller's logging/serialization stack prefers; this module leaves the
// Config bytes opaque to package node for the same reason.
type Details struct {
	Name   string
	Config []byte
}

// Node is this process's participant handle: a unique Id, a monitor
// token proving it is alive, and a details record other processes (via
// Cleaner) can read after it dies.
type Node struct {
	id      Id
	monitor *Monitor
	details Details
}

// Create mints a new Id, claims its monitor token, and writes its
// details record. Cleanup-on-create is the caller's responsibility: call
// iceoryx2.CleanupAllDeadNodes before Create if the configuration switch
// spec.md describes is enabled.
func Create(name string, cfg []byte) (*Node, error) {
	id := NewId()

	monitor, err := CreateMonitorToken(id)
	if err != nil {
		return nil, err
	}

	details := Details{Name: name, Config: cfg}
	if err := writeDetails(id, details); err != nil {
		_ = monitor.Release()
		return nil, err
	}

	return &Node{id: id, monitor: monitor, details: details}, nil
}

// Id returns this node's identifier.
func (n *Node) Id() Id { return n.id }

// Details returns the record this node was created with.
func (n *Node) Details() Details { return n.details }

// Close removes this node's details record and releases its monitor
// token, in that order: a concurrent State query must never observe a
// released token while the details record it would need for cleanup is
// still missing.
func (n *Node) Close() error {
	if err := removeDetails(n.id); err != nil {
		return err
	}
	return n.monitor.Release()
}

func writeDetails(id Id, details Details) error {
	name := detailsStorageName(id)
	size := len(details.Name) + 1 + len(details.Config)
	seg, err := shm.CreateOrOpen(name, size, 0o600)
	if err != nil {
		return err
	}
	defer seg.Close()

	bytes := seg.Bytes()
	copy(bytes, details.Name)
	bytes[len(details.Name)] = 0
	copy(bytes[len(details.Name)+1:], details.Config)
	return nil
}

// ReadDetails reads id's details record without claiming ownership of
// anything. Used by Cleaner to recover what a dead node was named before
// its resources are removed.
func ReadDetails(id Id) (Details, error) {
	name := detailsStorageName(id)
	path := fmt.Sprintf("%s/%s%s", shm.DefaultPathHint, shm.DefaultPrefix, name)
	info, err := os.Stat(path)
	if err != nil {
		return Details{}, ErrDoesNotExist
	}

	seg, err := shm.Open(name, int(info.Size()))
	if err != nil {
		return Details{}, ErrDoesNotExist
	}
	defer seg.Close()

	bytes := seg.Bytes()
	nul := strings.IndexByte(string(bytes), 0)
	if nul < 0 {
		return Details{}, fmt.Errorf("node: details record for %s is corrupted", id)
	}
	cfg := make([]byte, len(bytes)-nul-1)
	copy(cfg, bytes[nul+1:])
	return Details{Name: string(bytes[:nul]), Config: cfg}, nil
}

func removeDetails(id Id) error {
	return shm.Unlink(detailsStorageName(id))
}

// List enumerates the ids of every node whose details record currently
// exists (alive or dead alike -- callers combine this with StateOf to
// find which are actually stale).
func List() ([]Id, error) {
	entries, err := os.ReadDir(shm.DefaultPathHint)
	if err != nil {
		return nil, fmt.Errorf("node: list %s: %w", shm.DefaultPathHint, err)
	}

	prefix := shm.DefaultPrefix + "node_"
	var ids []Id
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, detailsSuffix) {
			continue
		}
		raw := strings.TrimSuffix(strings.TrimPrefix(name, prefix), detailsSuffix)
		id, err := parseId(raw)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}
