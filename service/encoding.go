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

import "encoding/binary"

// This file's append*/read* pair is this package's own rendering of the
// length-prefixed manual byte layout package node already uses for its
// variable-length Details record (node.writeDetails/node.ReadDetails) and
// package port uses for its fixed-width sample header
// (port.dataSegment.loan/payloadAt): a StaticConfig has to survive being
// written once into a shared-memory byte slice and read back by a
// different process, and none of the domain stack's third-party
// dependencies offer a struct layout compatible with that (they assume a
// single process's memory graph, not a relocatable byte region two
// unrelated processes independently mmap).

func appendUint64(buf []byte, v uint64) []byte {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], v)
	return append(buf, tmp[:]...)
}

func appendString(buf []byte, s string) []byte {
	buf = appendUint64(buf, uint64(len(s)))
	return append(buf, s...)
}

func readUint64(b []byte) (uint64, []byte, error) {
	if len(b) < 8 {
		return 0, nil, ErrCorruptedStaticConfig
	}
	return binary.LittleEndian.Uint64(b[:8]), b[8:], nil
}

func readString(b []byte) (string, []byte, error) {
	n, rest, err := readUint64(b)
	if err != nil {
		return "", nil, err
	}
	if uint64(len(rest)) < n {
		return "", nil, ErrCorruptedStaticConfig
	}
	return string(rest[:n]), rest[n:], nil
}

func appendTypeDetail(buf []byte, t TypeDetail) []byte {
	buf = appendUint64(buf, uint64(t.Size))
	buf = appendUint64(buf, uint64(t.Alignment))
	buf = appendUint64(buf, uint64(t.Variant))
	buf = appendString(buf, t.TypeName)
	return buf
}

func readTypeDetail(b []byte) (TypeDetail, []byte, error) {
	var t TypeDetail
	size, rest, err := readUint64(b)
	if err != nil {
		return t, nil, err
	}
	alignment, rest, err := readUint64(rest)
	if err != nil {
		return t, nil, err
	}
	variant, rest, err := readUint64(rest)
	if err != nil {
		return t, nil, err
	}
	typeName, rest, err := readString(rest)
	if err != nil {
		return t, nil, err
	}
	t = TypeDetail{Size: int(size), Alignment: int(alignment), Variant: Variant(variant), TypeName: typeName}
	return t, rest, nil
}
