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

// MaxNameLength bounds a Name, mirroring the original project's
// ServiceName's fixed-capacity FixedByteString backing: a Name longer
// than this cannot be hashed into a ServiceId by this module.
const MaxNameLength = 255

// Name identifies a service to a human. Together with a
// MessagingPattern and the two TypeDetails it forms a service's
// identity (see Id).
type Name string

// Validate reports whether n is usable as a service Name.
func (n Name) Validate() error {
	if len(n) == 0 {
		return ErrEmptyName
	}
	if len(n) > MaxNameLength {
		return ErrNameTooLong
	}
	return nil
}
