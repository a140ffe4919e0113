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

package containers

import "unsafe"

// fixedVecElemSize returns sizeof(T) for use in relocatable layout math.
func fixedVecElemSize[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// unsafeSliceFromBytes reinterprets the first n*sizeof(T) bytes of region as
// a []T. region must already be zeroed and large enough; callers only ever
// invoke this against pages freshly obtained from a shared-memory mapping
// or a BumpAllocator view over one, so the zero-initialized T values this
// produces are well-defined.
func unsafeSliceFromBytes[T any](region []byte, n int) []T {
	if n == 0 {
		return nil
	}
	ptr := (*T)(unsafe.Pointer(unsafe.SliceData(region)))
	return unsafe.Slice(ptr, n)
}
