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

package event

import (
	"time"
	"unsafe"

	"code.hybscloud.com/atomix"

	"github.com/eclipse-iceoryx/iceoryx2-core-go/internal/wait"
)

// SignalMechanism is the half of a channel responsible for waking a
// blocked Listener, independent of what IdTracker is tracking. Notify is
// called once per Notifier.Notify; a single wakeup may correspond to any
// number of pending ids, which is why the Listener always re-checks the
// IdTracker after a successful wait rather than trusting the wakeup count.
type SignalMechanism interface {
	Notify()
	TryWait() bool
	TimedWait(timeout time.Duration) bool
	BlockingWait()
}

// signalHeader is the shared generation counter both sides observe.
type signalHeader struct {
	generation atomix.Uint64
}

func signalMemorySize() int {
	return int(unsafe.Sizeof(signalHeader{}))
}

// pollSignal implements SignalMechanism by polling a shared generation
// counter with the module's established adaptive backoff
// (internal/wait.Adaptive), the same idiom package zerocopy uses to bound
// a connection joiner's wait. lastSeen is process-local: only the single
// Listener process that owns a pollSignal ever calls the Wait methods, so
// there is no cross-process race on it the way there is on generation.
type pollSignal struct {
	hdr      *signalHeader
	lastSeen uint64
}

func initSignal(region []byte, owner bool) (*pollSignal, error) {
	need := signalMemorySize()
	if len(region) < need {
		return nil, ErrRegionTooSmall
	}
	hdr := (*signalHeader)(unsafe.Pointer(unsafe.SliceData(region)))
	if owner {
		hdr.generation.StoreRelaxed(0)
	}
	return &pollSignal{hdr: hdr}, nil
}

func (s *pollSignal) Notify() {
	s.hdr.generation.AddAcqRel(1)
}

func (s *pollSignal) TryWait() bool {
	current := s.hdr.generation.LoadAcquire()
	if current == s.lastSeen {
		return false
	}
	s.lastSeen = current
	return true
}

func (s *pollSignal) TimedWait(timeout time.Duration) bool {
	fired, _ := wait.AdaptiveErr(timeout, func() (bool, error) {
		return s.TryWait(), nil
	})
	return fired
}

// BlockingWait polls with no deadline (internal/wait.Adaptive treats a
// zero duration as wait-forever), the only form of "blocking" available
// to a poll-based SignalMechanism without a real cross-process blocking
// primitive.
func (s *pollSignal) BlockingWait() {
	s.TimedWait(0)
}
