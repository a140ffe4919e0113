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

//go:build race

package lockfree

// RaceEnabled is true when the race detector is active. No code in this
// module reads it: the concurrent tests that the race detector reports
// false positives on are excluded by a //go:build !race constraint.
const RaceEnabled = true
