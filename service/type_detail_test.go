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
	"testing"

	"github.com/eclipse-iceoryx/iceoryx2-core-go/config"
)

func TestTypeDetailCompatibleIgnoresTypeNameWhenEitherSideOmitsIt(t *testing.T) {
	want := TypeDetail{Size: 4, Alignment: 4, Variant: FixedSize}
	have := TypeDetail{Size: 4, Alignment: 4, Variant: FixedSize, TypeName: "u32"}

	if !want.compatible(have) {
		t.Fatalf("unnamed want should be compatible with named have")
	}
	if !have.compatible(want) {
		t.Fatalf("named want should be compatible with unnamed have")
	}
}

func TestTypeDetailCompatibleRejectsMismatchedNamesWhenBothSpecify(t *testing.T) {
	want := TypeDetail{Size: 4, Alignment: 4, Variant: FixedSize, TypeName: "u32"}
	have := TypeDetail{Size: 4, Alignment: 4, Variant: FixedSize, TypeName: "i32"}

	if want.compatible(have) {
		t.Fatalf("mismatched TypeNames should not be compatible")
	}
}

func TestTypeDetailCompatibleRejectsSizeOrVariantMismatch(t *testing.T) {
	base := TypeDetail{Size: 4, Alignment: 4, Variant: FixedSize}

	biggerSize := base
	biggerSize.Size = 8
	if base.compatible(biggerSize) {
		t.Fatalf("different Size should not be compatible")
	}

	differentVariant := base
	differentVariant.Variant = DynamicSlice
	if base.compatible(differentVariant) {
		t.Fatalf("different Variant should not be compatible")
	}
}

func TestStaticConfigEncodeDecodeRoundTrip(t *testing.T) {
	cfg := staticConfig{
		Name:           "test_service",
		Pattern:        RequestResponse,
		PayloadType:    TypeDetail{Size: 4, Alignment: 4, Variant: FixedSize, TypeName: "u32"},
		UserHeaderType: TypeDetail{Size: 8, Alignment: 8, Variant: DynamicSlice},
		Limits: config.Limits{
			MaxPublishers:  2,
			MaxSubscribers: 4,
			MaxNotifiers:   1,
			MaxListeners:   1,
			MaxClients:     1,
			MaxServers:     1,
		},
		SafeOverflow: true,
		Attributes: Attributes{entries: []Attribute{
			{Key: "unit", Value: "meters"},
			{Key: "tag", Value: "a"},
			{Key: "tag", Value: "b"},
		}},
	}

	decoded, err := decodeStaticConfig(cfg.encode())
	if err != nil {
		t.Fatalf("decodeStaticConfig: %v", err)
	}

	if decoded.Name != cfg.Name || decoded.Pattern != cfg.Pattern || decoded.SafeOverflow != cfg.SafeOverflow {
		t.Fatalf("decoded = %+v, want %+v", decoded, cfg)
	}
	if decoded.PayloadType != cfg.PayloadType {
		t.Fatalf("decoded.PayloadType = %+v, want %+v", decoded.PayloadType, cfg.PayloadType)
	}
	if decoded.UserHeaderType != cfg.UserHeaderType {
		t.Fatalf("decoded.UserHeaderType = %+v, want %+v", decoded.UserHeaderType, cfg.UserHeaderType)
	}
	if decoded.Attributes.Len() != cfg.Attributes.Len() {
		t.Fatalf("decoded.Attributes.Len() = %d, want %d", decoded.Attributes.Len(), cfg.Attributes.Len())
	}
	if got := decoded.Attributes.Values("tag"); len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("decoded.Attributes.Values(tag) = %v, want [a b]", got)
	}
}

func TestDecodeStaticConfigRejectsTruncatedPayload(t *testing.T) {
	cfg := staticConfig{Name: "x", Pattern: Event}
	encoded := cfg.encode()

	if _, err := decodeStaticConfig(encoded[:len(encoded)-1]); err == nil {
		t.Fatalf("decodeStaticConfig on truncated payload should fail")
	}
}
