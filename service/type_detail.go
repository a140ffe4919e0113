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

import "fmt"

// Variant distinguishes a fixed-size payload/user-header type from one
// whose size varies per sample (a dynamic slice), per spec.md §3's
// StaticConfig invariant ("payload/header type details ... variant:
// fixed / dynamic slice").
type Variant uint8

const (
	FixedSize Variant = iota
	DynamicSlice
)

func (v Variant) String() string {
	if v == DynamicSlice {
		return "dynamic_slice"
	}
	return "fixed_size"
}

// TypeDetail records everything a Builder needs to reject an open whose
// caller's type does not match the service's: size and alignment (as
// Go's unsafe.Sizeof/unsafe.Alignof would report them for the caller's
// concrete type), the Variant, and an optional human-readable type name
// used only for a clearer incompatibility message, never compared unless
// both sides supply one.
type TypeDetail struct {
	Size      int
	Alignment int
	Variant   Variant
	TypeName  string
}

// String renders a TypeDetail for diagnostics, e.g. "int32(size=4,
// align=4, fixed_size)" or "?(size=16, align=8, fixed_size)" when no
// TypeName was supplied.
func (t TypeDetail) String() string {
	name := t.TypeName
	if name == "" {
		name = "?"
	}
	return fmt.Sprintf("%s(size=%d, align=%d, %s)", name, t.Size, t.Alignment, t.Variant)
}

// compatible reports whether an opener requesting want is compatible
// with an existing service's have, per spec.md §4.5's compatibility
// check list: size, alignment and variant must match exactly; TypeName
// is only compared when both sides specify one (an opener that does not
// care to name its type does not get rejected for it).
func (want TypeDetail) compatible(have TypeDetail) bool {
	if want.Size != have.Size || want.Alignment != have.Alignment || want.Variant != have.Variant {
		return false
	}
	if want.TypeName != "" && have.TypeName != "" && want.TypeName != have.TypeName {
		return false
	}
	return true
}
