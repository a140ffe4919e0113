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

const tagInfix = ".tag_"

func tagStorageName(id Id, serviceId string) string {
	return "node_" + id.String() + tagInfix + serviceId
}

// TagService records, as a 1-byte shared-memory entry alongside id's
// details record, that this node has registered a port with serviceId.
// Idempotent: tagging the same service twice leaves a single tag behind.
// A Cleaner reads these tags (via TaggedServices) to find which services
// a dead node's leftover ports need deregistering from, without having
// to enumerate every service on the host.
func TagService(id Id, serviceId string) error {
	seg, err := shm.CreateOrOpen(tagStorageName(id, serviceId), 1, 0o600)
	if err != nil {
		return err
	}
	return seg.Close()
}

// RemoveServiceTag removes the tag TagService recorded for serviceId.
// Safe to call on a tag that no longer exists.
func RemoveServiceTag(id Id, serviceId string) error {
	return shm.Unlink(tagStorageName(id, serviceId))
}

// TaggedServices enumerates the service ids id has tagged itself into
// with TagService, the "walk the node's details directory" step
// node.Cleaner's dead-node cleanup needs before it can deregister ports
// from each service's dynamic config.
func TaggedServices(id Id) ([]string, error) {
	entries, err := os.ReadDir(shm.DefaultPathHint)
	if err != nil {
		return nil, fmt.Errorf("node: list %s: %w", shm.DefaultPathHint, err)
	}

	prefix := shm.DefaultPrefix + "node_" + id.String() + tagInfix
	var ids []string
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		ids = append(ids, strings.TrimPrefix(name, prefix))
	}
	return ids, nil
}
