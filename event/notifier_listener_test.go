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

package event_test

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/eclipse-iceoryx/iceoryx2-core-go/event"
	"github.com/eclipse-iceoryx/iceoryx2-core-go/shm"
)

func requireDevShm(t *testing.T) {
	t.Helper()
	if _, err := os.Stat(shm.DefaultPathHint); err != nil {
		t.Skipf("%s not available in this environment: %v", shm.DefaultPathHint, err)
	}
}

func channelName(t *testing.T) string {
	return fmt.Sprintf("test_event_%s_%d", t.Name(), os.Getpid())
}

// TestNotifyWaitRoundTrip validates end-to-end scenario (d)'s basic half:
// a Notifier's Notify is observable via the Listener's TryWaitOne.
func TestNotifyWaitRoundTrip(t *testing.T) {
	requireDevShm(t)
	name := channelName(t)
	defer shm.Unlink(name)

	listener, err := event.NewBuilder(name).CreateListener()
	if err != nil {
		t.Fatalf("CreateListener: %v", err)
	}
	defer listener.Close()

	notifier, err := event.NewBuilder(name).OpenNotifier()
	if err != nil {
		t.Fatalf("OpenNotifier: %v", err)
	}
	defer notifier.Close()

	if err := notifier.Notify(42); err != nil {
		t.Fatalf("Notify: %v", err)
	}

	id, ok := listener.TimedWaitOne(100 * time.Millisecond)
	if !ok || id != 42 {
		t.Fatalf("TimedWaitOne = (%v, %v), want (42, true)", id, ok)
	}
}

// TestNotifyOutOfBoundsRejected validates the TriggerId bound check.
func TestNotifyOutOfBoundsRejected(t *testing.T) {
	requireDevShm(t)
	name := channelName(t)
	defer shm.Unlink(name)

	listener, err := event.NewBuilder(name).TriggerIdMax(3).CreateListener()
	if err != nil {
		t.Fatalf("CreateListener: %v", err)
	}
	defer listener.Close()

	notifier, err := event.NewBuilder(name).TriggerIdMax(3).OpenNotifier()
	if err != nil {
		t.Fatalf("OpenNotifier: %v", err)
	}
	defer notifier.Close()

	if err := notifier.Notify(4); err != event.ErrTriggerIdOutOfBounds {
		t.Fatalf("Notify(4) with TriggerIdMax 3: got %v, want ErrTriggerIdOutOfBounds", err)
	}
}

// TestOpenNotifierWithoutListenerFails validates end-to-end scenario (d)'s
// missed-deadline/no-listener half: a Notifier cannot attach to a channel
// that was never created.
func TestOpenNotifierWithoutListenerFails(t *testing.T) {
	requireDevShm(t)
	name := channelName(t)
	defer shm.Unlink(name)

	if _, err := event.NewBuilder(name).CreationTimeout(5 * time.Millisecond).OpenNotifier(); err != event.ErrDoesNotExist {
		t.Fatalf("OpenNotifier with no Listener: got %v, want ErrDoesNotExist", err)
	}
}

// TestNotifyAfterListenerClosesFails validates that detaching a Listener
// is observable to an already-attached Notifier.
func TestNotifyAfterListenerClosesFails(t *testing.T) {
	requireDevShm(t)
	name := channelName(t)
	defer shm.Unlink(name)

	listener, err := event.NewBuilder(name).CreateListener()
	if err != nil {
		t.Fatalf("CreateListener: %v", err)
	}

	notifier, err := event.NewBuilder(name).OpenNotifier()
	if err != nil {
		t.Fatalf("OpenNotifier: %v", err)
	}
	defer notifier.Close()

	if err := listener.Close(); err != nil {
		t.Fatalf("Listener.Close: %v", err)
	}

	if err := notifier.Notify(1); err != event.ErrDisconnected {
		t.Fatalf("Notify after Listener.Close: got %v, want ErrDisconnected", err)
	}
}

// TestTimedWaitOneMissesDeadline validates the other half of end-to-end
// scenario (d): waiting past a deadline with nothing raised reports no
// id rather than blocking indefinitely.
func TestTimedWaitOneMissesDeadline(t *testing.T) {
	requireDevShm(t)
	name := channelName(t)
	defer shm.Unlink(name)

	listener, err := event.NewBuilder(name).CreateListener()
	if err != nil {
		t.Fatalf("CreateListener: %v", err)
	}
	defer listener.Close()

	if _, ok := listener.TimedWaitOne(10 * time.Millisecond); ok {
		t.Fatalf("TimedWaitOne with nothing notified must report false")
	}
}

// TestSecondListenerRejected validates that only one Listener may create
// a given channel.
func TestSecondListenerRejected(t *testing.T) {
	requireDevShm(t)
	name := channelName(t)
	defer shm.Unlink(name)

	first, err := event.NewBuilder(name).CreateListener()
	if err != nil {
		t.Fatalf("CreateListener (first): %v", err)
	}
	defer first.Close()

	if _, err := event.NewBuilder(name).CreateListener(); err != event.ErrAlreadyExists {
		t.Fatalf("CreateListener (second): got %v, want ErrAlreadyExists", err)
	}
}

// TestQueueIdTrackerChannelRoundTrip validates the UseQueueIdTracker
// option end-to-end, preserving the multiplicity BitsetIdTracker would
// collapse.
func TestQueueIdTrackerChannelRoundTrip(t *testing.T) {
	requireDevShm(t)
	name := channelName(t)
	defer shm.Unlink(name)

	listener, err := event.NewBuilder(name).UseQueueIdTracker().TriggerIdMax(8).CreateListener()
	if err != nil {
		t.Fatalf("CreateListener: %v", err)
	}
	defer listener.Close()

	notifier, err := event.NewBuilder(name).UseQueueIdTracker().TriggerIdMax(8).OpenNotifier()
	if err != nil {
		t.Fatalf("OpenNotifier: %v", err)
	}
	defer notifier.Close()

	notifier.Notify(1)
	notifier.Notify(1)

	var got []event.TriggerId
	listener.TimedWaitAll(func(id event.TriggerId) { got = append(got, id) }, 100*time.Millisecond)
	if len(got) != 2 {
		t.Fatalf("QueueIdTracker channel reported %v, want two pending 1s (multiplicity preserved)", got)
	}
}
