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

import "sort"

// Attribute is one user-defined key/value pair attached to a service at
// creation. A key may repeat with several values (spec.md leaves
// attributes otherwise unstructured; this module follows the original
// project's AttributeSet, which is a multimap rather than a plain map).
type Attribute struct {
	Key   string
	Value string
}

// Attributes is the immutable set of user attributes a service was
// created with; part of StaticConfig but deliberately not part of
// ServiceId (spec.md §3's ServiceId is "name + messaging pattern + type
// identity" only, so two services that differ only in attributes would
// otherwise collide on id -- they are compared for compatibility at
// open time instead, via AttributeVerifier).
type Attributes struct {
	entries []Attribute
}

// Values returns every value stored under key, in insertion order. A
// key that was never set returns nil.
func (a Attributes) Values(key string) []string {
	var values []string
	for _, e := range a.entries {
		if e.Key == key {
			values = append(values, e.Value)
		}
	}
	return values
}

// Len reports how many key/value pairs are stored, counting repeated
// keys separately.
func (a Attributes) Len() int { return len(a.entries) }

// sorted returns a's entries ordered by (key, value), used for anything
// that needs a process-independent iteration order: most importantly,
// encoding into a StaticConfig payload that a different process must
// decode byte-for-byte the same way.
func (a Attributes) sorted() []Attribute {
	out := make([]Attribute, len(a.entries))
	copy(out, a.entries)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Key != out[j].Key {
			return out[i].Key < out[j].Key
		}
		return out[i].Value < out[j].Value
	})
	return out
}

// AttributeSpecifier accumulates the attributes a Builder.Create call
// stamps into a new service's StaticConfig. The zero value is ready to
// use.
type AttributeSpecifier struct {
	attrs Attributes
}

// NewAttributeSpecifier returns an empty AttributeSpecifier.
func NewAttributeSpecifier() *AttributeSpecifier {
	return &AttributeSpecifier{}
}

// Define adds one key/value pair. Calling Define with the same key more
// than once adds another value under it rather than replacing the
// first.
func (s *AttributeSpecifier) Define(key, value string) *AttributeSpecifier {
	s.attrs.entries = append(s.attrs.entries, Attribute{Key: key, Value: value})
	return s
}

// AttributeVerifier accumulates the attribute requirements a
// Builder.Open call checks an existing service's StaticConfig against.
// The zero value is ready to use and requires nothing.
type AttributeVerifier struct {
	requireKey   []string
	requireValue []Attribute
}

// NewAttributeVerifier returns an AttributeVerifier with no
// requirements.
func NewAttributeVerifier() *AttributeVerifier {
	return &AttributeVerifier{}
}

// RequireKey demands that key be present, with any value.
func (v *AttributeVerifier) RequireKey(key string) *AttributeVerifier {
	v.requireKey = append(v.requireKey, key)
	return v
}

// Require demands that key be present with exactly value among its
// stored values.
func (v *AttributeVerifier) Require(key, value string) *AttributeVerifier {
	v.requireValue = append(v.requireValue, Attribute{Key: key, Value: value})
	return v
}

// Verify reports ErrIncompatibleAttributes if existing fails to satisfy
// any requirement v accumulated.
func (v *AttributeVerifier) Verify(existing Attributes) error {
	for _, key := range v.requireKey {
		if len(existing.Values(key)) == 0 {
			return ErrIncompatibleAttributes
		}
	}
	for _, want := range v.requireValue {
		found := false
		for _, have := range existing.Values(want.Key) {
			if have == want.Value {
				found = true
				break
			}
		}
		if !found {
			return ErrIncompatibleAttributes
		}
	}
	return nil
}
