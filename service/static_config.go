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

import "github.com/eclipse-iceoryx/iceoryx2-core-go/config"

// staticConfig is the immutable payload written exactly once into a
// service's config.StaticConfigStore and sealed, per spec.md §4.5.
// Everything an opener needs to run its compatibility checks lives
// here; the service's live port roster lives separately, in its
// config.DynamicConfigStore.
type staticConfig struct {
	Name           Name
	Pattern        MessagingPattern
	PayloadType    TypeDetail
	UserHeaderType TypeDetail
	Limits         config.Limits
	SafeOverflow   bool
	Attributes     Attributes
}

// encode serializes cfg into the bytes CreateStaticConfigStore writes
// as its payload. Attributes are written in Attributes.sorted() order
// so that the encoding itself is independent of the order Define calls
// happened to run in within the creating process.
func (cfg staticConfig) encode() []byte {
	var buf []byte
	buf = appendString(buf, string(cfg.Name))
	buf = appendUint64(buf, uint64(cfg.Pattern))
	buf = appendTypeDetail(buf, cfg.PayloadType)
	buf = appendTypeDetail(buf, cfg.UserHeaderType)
	buf = appendUint64(buf, uint64(cfg.Limits.MaxPublishers))
	buf = appendUint64(buf, uint64(cfg.Limits.MaxSubscribers))
	buf = appendUint64(buf, uint64(cfg.Limits.MaxNotifiers))
	buf = appendUint64(buf, uint64(cfg.Limits.MaxListeners))
	buf = appendUint64(buf, uint64(cfg.Limits.MaxClients))
	buf = appendUint64(buf, uint64(cfg.Limits.MaxServers))
	if cfg.SafeOverflow {
		buf = appendUint64(buf, 1)
	} else {
		buf = appendUint64(buf, 0)
	}
	sorted := cfg.Attributes.sorted()
	buf = appendUint64(buf, uint64(len(sorted)))
	for _, a := range sorted {
		buf = appendString(buf, a.Key)
		buf = appendString(buf, a.Value)
	}
	return buf
}

// openStaticConfig opens id's StaticConfigStore without knowing its
// payload size ahead of time (config.OpenStaticConfigStoreAnySize stats
// the backing shared-memory object instead) and decodes its payload.
// Fails with ErrDoesNotExist if no such store exists, ErrHangsInCreation
// if its creator has not sealed it within global.CreationTimeout, or
// ErrCorruptedStaticConfig if the sealed payload does not decode.
func openStaticConfig(id Id, global config.Global) (staticConfig, *config.StaticConfigStore, error) {
	static, err := config.OpenStaticConfigStoreAnySize(staticStorageName(id), global)
	if err != nil {
		if err == config.ErrDoesNotExist {
			return staticConfig{}, nil, ErrDoesNotExist
		}
		if err == config.ErrHangsInCreation {
			return staticConfig{}, nil, ErrHangsInCreation
		}
		return staticConfig{}, nil, err
	}

	cfg, err := decodeStaticConfig(static.Payload())
	if err != nil {
		_ = static.Close()
		return staticConfig{}, nil, ErrCorruptedStaticConfig
	}
	return cfg, static, nil
}

// decodeStaticConfig is encode's inverse, used by an opener after it has
// read a sealed StaticConfigStore's payload. Fails with
// ErrCorruptedStaticConfig if b does not parse as a complete record --
// spec.md §7's ServiceInCorruptedState.
func decodeStaticConfig(b []byte) (staticConfig, error) {
	var cfg staticConfig

	name, rest, err := readString(b)
	if err != nil {
		return cfg, err
	}
	pattern, rest, err := readUint64(rest)
	if err != nil {
		return cfg, err
	}
	payloadType, rest, err := readTypeDetail(rest)
	if err != nil {
		return cfg, err
	}
	userHeaderType, rest, err := readTypeDetail(rest)
	if err != nil {
		return cfg, err
	}
	maxPub, rest, err := readUint64(rest)
	if err != nil {
		return cfg, err
	}
	maxSub, rest, err := readUint64(rest)
	if err != nil {
		return cfg, err
	}
	maxNotif, rest, err := readUint64(rest)
	if err != nil {
		return cfg, err
	}
	maxListen, rest, err := readUint64(rest)
	if err != nil {
		return cfg, err
	}
	maxClients, rest, err := readUint64(rest)
	if err != nil {
		return cfg, err
	}
	maxServers, rest, err := readUint64(rest)
	if err != nil {
		return cfg, err
	}
	safeOverflow, rest, err := readUint64(rest)
	if err != nil {
		return cfg, err
	}
	attrCount, rest, err := readUint64(rest)
	if err != nil {
		return cfg, err
	}

	attrs := Attributes{}
	for i := uint64(0); i < attrCount; i++ {
		var key, value string
		key, rest, err = readString(rest)
		if err != nil {
			return cfg, err
		}
		value, rest, err = readString(rest)
		if err != nil {
			return cfg, err
		}
		attrs.entries = append(attrs.entries, Attribute{Key: key, Value: value})
	}

	cfg = staticConfig{
		Name:           Name(name),
		Pattern:        MessagingPattern(pattern),
		PayloadType:    payloadType,
		UserHeaderType: userHeaderType,
		Limits: config.Limits{
			MaxPublishers:  int(maxPub),
			MaxSubscribers: int(maxSub),
			MaxNotifiers:   int(maxNotif),
			MaxListeners:   int(maxListen),
			MaxClients:     int(maxClients),
			MaxServers:     int(maxServers),
		},
		SafeOverflow: safeOverflow != 0,
		Attributes:   attrs,
	}
	return cfg, nil
}
