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

package iceoryx2

import (
	"reflect"

	"github.com/eclipse-iceoryx/iceoryx2-core-go/service"
)

// typeDetailOf reflects Payload's size, alignment and name into a
// service.TypeDetail the way PublishSubscribe and RequestResponse use to
// stamp or check a service's type identity, without the caller ever
// having to spell one out by hand. reflect.Type.Size/Align report the
// same values unsafe.Sizeof/unsafe.Alignof would for a concrete,
// non-generic T, which is what service.TypeDetail's own doc comment
// assumes.
func typeDetailOf[T any]() service.TypeDetail {
	var zero T
	t := reflect.TypeOf(&zero).Elem()
	return service.TypeDetail{
		Size:      int(t.Size()),
		Alignment: t.Align(),
		Variant:   service.FixedSize,
		TypeName:  t.String(),
	}
}
