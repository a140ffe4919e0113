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

package service

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/eclipse-iceoryx/iceoryx2-core-go/config"
	"github.com/eclipse-iceoryx/iceoryx2-core-go/shm"
)

// Summary is the read-only view of a service a diagnostic tool needs:
// everything Service exposes except the open handles on its shared
// memory, since a Summary does not join the service and so never has to
// release anything.
type Summary struct {
	Id             Id
	Name           Name
	Pattern        MessagingPattern
	PayloadType    TypeDetail
	UserHeaderType TypeDetail
	Limits         config.Limits
	SafeOverflow   bool
	Attributes     Attributes
	Ports          [6]int
}

// ListIds enumerates the Id of every service whose StaticConfig storage
// currently exists on this host, sealed or not, the same "list what's on
// disk, let the caller decide what's stale" contract node.List offers
// for nodes.
func ListIds() ([]Id, error) {
	entries, err := os.ReadDir(shm.DefaultPathHint)
	if err != nil {
		return nil, fmt.Errorf("service: list %s: %w", shm.DefaultPathHint, err)
	}

	prefix := shm.DefaultPrefix
	const suffix = ".service"
	var ids []Id
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, suffix) {
			continue
		}
		raw := strings.TrimSuffix(strings.TrimPrefix(name, prefix), suffix)
		n, err := strconv.ParseUint(raw, 16, 64)
		if err != nil {
			continue
		}
		ids = append(ids, Id(n))
	}
	return ids, nil
}

// Inspect opens id's StaticConfig and DynamicConfig storage just long
// enough to read a Summary, then closes both -- it never registers a
// port and never takes out a reference a departing participant would be
// obligated to drop. Fails the same way openStaticConfig does:
// ErrDoesNotExist, ErrHangsInCreation, or ErrCorruptedStaticConfig.
func Inspect(id Id, global config.Global) (Summary, error) {
	cfg, static, err := openStaticConfig(id, global)
	if err != nil {
		return Summary{}, err
	}
	defer static.Close()

	dynamic, err := config.OpenDynamicConfigStore(dynamicStorageName(id), cfg.Limits, global)
	if err != nil {
		return Summary{}, err
	}
	defer dynamic.Close()

	var ports [6]int
	for role := config.PortRole(0); int(role) < len(ports); role++ {
		ports[role] = dynamic.Len(role)
	}

	return Summary{
		Id:             id,
		Name:           cfg.Name,
		Pattern:        cfg.Pattern,
		PayloadType:    cfg.PayloadType,
		UserHeaderType: cfg.UserHeaderType,
		Limits:         cfg.Limits,
		SafeOverflow:   cfg.SafeOverflow,
		Attributes:     cfg.Attributes,
		Ports:          ports,
	}, nil
}
