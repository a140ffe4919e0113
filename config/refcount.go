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

import "code.hybscloud.com/atomix"

// decrementReferenceCounter decrements counter by one via a CAS loop
// (atomix.Uint64 only exposes an unsigned Add, so decrementing takes this
// shape rather than AddAcqRel with a negative delta; package event's
// connection reference count uses the identical pattern), reporting
// whether this call brought the count to zero.
func decrementReferenceCounter(counter *atomix.Uint64) bool {
	for {
		old := counter.LoadRelaxed()
		if counter.CompareAndSwapRelaxed(old, old-1) {
			return old == 1
		}
	}
}
