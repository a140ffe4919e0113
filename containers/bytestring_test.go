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

package containers_test

import (
	"testing"

	"github.com/eclipse-iceoryx/iceoryx2-core-go/containers"
)

func TestFixedByteStringPushAndRead(t *testing.T) {
	s := containers.NewFixedByteString(16)
	if err := s.PushBytes([]byte("hello")); err != nil {
		t.Fatalf("PushBytes: %v", err)
	}
	if err := s.PushBytes([]byte("!")); err != nil {
		t.Fatalf("PushBytes: %v", err)
	}
	if got := s.String(); got != "hello!" {
		t.Fatalf("String() = %q, want %q", got, "hello!")
	}
	if s.Len() != 6 {
		t.Fatalf("Len() = %d, want 6", s.Len())
	}
}

func TestFixedByteStringOverflow(t *testing.T) {
	s := containers.NewFixedByteString(4)
	if err := s.PushBytes([]byte("toolong")); err != containers.ErrWouldExceedCapacity {
		t.Fatalf("PushBytes over capacity: got %v, want ErrWouldExceedCapacity", err)
	}
	if s.Len() != 0 {
		t.Fatalf("failed push must not modify the string, got len %d", s.Len())
	}
}

func TestFixedByteStringSetAndClear(t *testing.T) {
	s := containers.NewFixedByteString(8)
	_ = s.PushBytes([]byte("first"))
	if err := s.SetBytes([]byte("second")); err != nil {
		t.Fatalf("SetBytes: %v", err)
	}
	if s.String() != "second" {
		t.Fatalf("String() = %q, want %q", s.String(), "second")
	}
	s.Clear()
	if s.Len() != 0 {
		t.Fatalf("Clear() left len %d, want 0", s.Len())
	}
}

func TestFixedByteStringEqual(t *testing.T) {
	a, _ := containers.FixedByteStringFrom([]byte("svc"), 16)
	b, _ := containers.FixedByteStringFrom([]byte("svc"), 16)
	c, _ := containers.FixedByteStringFrom([]byte("other"), 16)
	if !a.Equal(b) {
		t.Fatalf("expected equal strings to compare equal")
	}
	if a.Equal(c) {
		t.Fatalf("expected differing strings to compare unequal")
	}
}

// TestFixedByteStringRelocation verifies the relocatability invariant from
// spec.md's testable property 1: copying the raw bytes of a FixedByteString
// elsewhere and reinterpreting them there reproduces identical behavior,
// because the type holds no pointer into itself or elsewhere.
func TestFixedByteStringRelocation(t *testing.T) {
	original := containers.NewFixedByteString(32)
	_ = original.PushBytes([]byte("relocatable"))

	raw := *original // value copy simulates mapping the bytes elsewhere
	copied := &raw

	if !copied.Equal(original) {
		t.Fatalf("copy diverged from original after relocation")
	}
	if err := copied.PushBytes([]byte("!")); err != nil {
		t.Fatalf("PushBytes on relocated copy: %v", err)
	}
	if original.String() == copied.String() {
		t.Fatalf("mutating the relocated copy must not alias the original's storage")
	}
}
