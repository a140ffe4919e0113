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

package service_test

import (
	"reflect"
	"testing"

	"github.com/eclipse-iceoryx/iceoryx2-core-go/service"
)

func TestAttributeSpecifierAllowsRepeatedKeys(t *testing.T) {
	requireDevShm(t)
	spec := service.NewAttributeSpecifier().
		Define("tag", "a").
		Define("tag", "b").
		Define("unit", "meters")

	var attrs service.Attributes
	created, err := service.NewBuilder(testName(t), service.Event).WithLimits(testLimits()).Create(spec)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer created.Close()
	attrs = created.Attributes()

	if got := attrs.Values("tag"); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("Values(tag) = %v, want [a b]", got)
	}
	if got := attrs.Values("unit"); !reflect.DeepEqual(got, []string{"meters"}) {
		t.Fatalf("Values(unit) = %v, want [meters]", got)
	}
	if got := attrs.Values("missing"); got != nil {
		t.Fatalf("Values(missing) = %v, want nil", got)
	}
	if attrs.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", attrs.Len())
	}
}

func TestAttributeVerifierRequireAndRequireKey(t *testing.T) {
	requireDevShm(t)
	existing := service.Attributes{}
	spec := service.NewAttributeSpecifier().Define("color", "red")
	created, err := service.NewBuilder(testName(t), service.Event).WithLimits(testLimits()).Create(spec)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer created.Close()
	existing = created.Attributes()

	if err := service.NewAttributeVerifier().RequireKey("color").Verify(existing); err != nil {
		t.Fatalf("RequireKey(color): %v", err)
	}
	if err := service.NewAttributeVerifier().Require("color", "red").Verify(existing); err != nil {
		t.Fatalf("Require(color, red): %v", err)
	}
	if err := service.NewAttributeVerifier().Require("color", "blue").Verify(existing); err != service.ErrIncompatibleAttributes {
		t.Fatalf("Require(color, blue): err = %v, want ErrIncompatibleAttributes", err)
	}
	if err := service.NewAttributeVerifier().RequireKey("size").Verify(existing); err != service.ErrIncompatibleAttributes {
		t.Fatalf("RequireKey(size): err = %v, want ErrIncompatibleAttributes", err)
	}
}

func TestAttributeVerifierZeroValueRequiresNothing(t *testing.T) {
	var verifier service.AttributeVerifier
	if err := verifier.Verify(service.Attributes{}); err != nil {
		t.Fatalf("zero-value Verify: %v", err)
	}
}
