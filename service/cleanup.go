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

import "github.com/eclipse-iceoryx/iceoryx2-core-go/config"

// DeregisterNode opens id's StaticConfig and DynamicConfig storage just
// long enough to remove every PortRecord tagged with node, then closes
// both -- the same short-lived, no-port-registered access pattern
// Inspect uses. Returns how many records were removed. Fails the same
// way openStaticConfig does: ErrDoesNotExist, ErrHangsInCreation, or
// ErrCorruptedStaticConfig.
func DeregisterNode(id Id, global config.Global, node config.NodeId) (int, error) {
	cfg, static, err := openStaticConfig(id, global)
	if err != nil {
		return 0, err
	}
	defer static.Close()

	dynamic, err := config.OpenDynamicConfigStore(dynamicStorageName(id), cfg.Limits, global)
	if err != nil {
		return 0, err
	}
	defer dynamic.Close()

	return dynamic.DeregisterNode(node), nil
}
