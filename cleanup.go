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

package iceoryx2

import (
	"github.com/eclipse-iceoryx/iceoryx2-core-go/config"
	"github.com/eclipse-iceoryx/iceoryx2-core-go/node"
	"github.com/eclipse-iceoryx/iceoryx2-core-go/service"
)

// CleanupDeadNode reclaims every resource a dead node left behind: its
// leftover PortRecords in the dynamic config of each service it
// registered a port with, its details record, and its monitor token.
// Fails with node.ErrNodeStillAlive if id's owning process is still
// running, or node.ErrCleanerAlreadyRunning if another process is
// already cleaning it up.
//
// A service that has itself been fully torn down since the node tagged
// it (ErrDoesNotExist from service.DeregisterNode) is skipped rather
// than treated as failure -- there is nothing left for this node's
// leftover ports to be removed from.
func CleanupDeadNode(id node.Id, global config.Global) error {
	cleaner, err := node.AcquireCleaner(id)
	if err != nil {
		return err
	}
	defer cleaner.Close()

	serviceIds, err := node.TaggedServices(id)
	if err != nil {
		return err
	}

	target := config.NodeId(id)
	for _, raw := range serviceIds {
		svcId, err := service.ParseId(raw)
		if err == nil {
			if _, err := service.DeregisterNode(svcId, global, target); err != nil && err != service.ErrDoesNotExist {
				return err
			}
		}
		_ = node.RemoveServiceTag(id, raw)
	}

	return cleaner.RemoveDeadNode()
}

// CleanupAllDeadNodes walks every node with an on-disk record and runs
// CleanupDeadNode on each one found Dead, skipping nodes that are still
// Alive or raced away by another cleaner. Returns how many nodes were
// cleaned up. This is what the configuration switches spec.md describes
// for "cleanup triggered on node creation/destruction" call, and what
// Node.Create's own doc comment refers to as its caller's
// responsibility.
func CleanupAllDeadNodes(global config.Global) (int, error) {
	ids, err := node.List()
	if err != nil {
		return 0, err
	}

	cleaned := 0
	for _, id := range ids {
		state, err := node.StateOf(id)
		if err != nil || state != node.Dead {
			continue
		}
		if err := CleanupDeadNode(id, global); err != nil {
			continue
		}
		cleaned++
	}
	return cleaned, nil
}
