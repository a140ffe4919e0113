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

package wait

import (
	"time"

	"code.hybscloud.com/iox"
)

// Adaptive repeatedly evaluates cond until it returns true or deadline has
// elapsed, sleeping for increasing backoff intervals between attempts. It
// returns true if cond became true, false if the deadline elapsed first.
// A zero deadline means wait forever.
func Adaptive(deadline time.Duration, cond func() bool) bool {
	if cond() {
		return true
	}

	start := time.Now()
	backoff := iox.Backoff{}
	for {
		if deadline > 0 && time.Since(start) >= deadline {
			return cond()
		}
		backoff.Wait()
		if cond() {
			return true
		}
	}
}

// AdaptiveErr is the error-returning counterpart of Adaptive, for
// conditions that can themselves fail (e.g. a syscall-backed check)
// rather than simply being not-yet-true.
func AdaptiveErr(deadline time.Duration, cond func() (bool, error)) (bool, error) {
	ok, err := cond()
	if err != nil || ok {
		return ok, err
	}

	start := time.Now()
	backoff := iox.Backoff{}
	for {
		if deadline > 0 && time.Since(start) >= deadline {
			return cond()
		}
		backoff.Wait()
		ok, err := cond()
		if err != nil || ok {
			return ok, err
		}
	}
}
