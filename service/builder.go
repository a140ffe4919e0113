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
	"code.hybscloud.com/iox"
	"go.uber.org/zap"

	"github.com/eclipse-iceoryx/iceoryx2-core-go/config"
	"github.com/eclipse-iceoryx/iceoryx2-core-go/internal/logging"
)

// BuilderRetryLimit bounds the open-fails-with-DoesNotExist ->
// create-fails-with-AlreadyExists retry loop Builder.OpenOrCreate runs,
// guarding against two processes racing each other's create/open calls
// forever. Named per spec.md §4.5's "bounded retry budget against
// livelock" rather than hard-coded inline.
const BuilderRetryLimit = 32

// Builder implements the create / open / open-or-create state machine
// spec.md §4.5 diagrams. The zero value is not usable; construct one
// with NewBuilder.
type Builder struct {
	name           Name
	pattern        MessagingPattern
	payloadType    TypeDetail
	userHeaderType TypeDetail
	limits         config.Limits
	safeOverflow   bool
	global         config.Global
	nodeId         config.NodeId
}

// NewBuilder starts a Builder for the service identified by name and
// pattern. Chain the With* setters to describe the type identity and
// capacity this process requires, then call Create, Open or
// OpenOrCreate.
func NewBuilder(name Name, pattern MessagingPattern) *Builder {
	return &Builder{
		name:    name,
		pattern: pattern,
		global:  config.DefaultGlobal(),
	}
}

// WithPayloadType sets the payload TypeDetail a Create call stamps into
// the new service, or an Open call requires the existing service to
// match.
func (b *Builder) WithPayloadType(t TypeDetail) *Builder {
	b.payloadType = t
	return b
}

// WithUserHeaderType sets the user-header TypeDetail, the same way
// WithPayloadType sets the payload one.
func (b *Builder) WithUserHeaderType(t TypeDetail) *Builder {
	b.userHeaderType = t
	return b
}

// WithLimits sets the per-role port capacity a Create call stamps into
// the new service. An Open call instead treats each field as the
// minimum this process requires: spec.md §4.5's "opener may require at
// least N; existing may provide ≥ N".
func (b *Builder) WithLimits(l config.Limits) *Builder {
	b.limits = l
	return b
}

// WithSafeOverflow sets the safe-overflow flag a Create call stamps into
// the new service's static config. This package builds no connections,
// so the flag is recorded and compared only. An Open call rejects an existing
// service whose setting does not match exactly: spec.md §4.5 lists this
// as an exact-match compatibility check, unlike capacity.
func (b *Builder) WithSafeOverflow(v bool) *Builder {
	b.safeOverflow = v
	return b
}

// WithGlobal overrides the config.Global this Builder uses for its
// storage's creation timeout and path/prefix settings. Defaults to
// config.DefaultGlobal().
func (b *Builder) WithGlobal(g config.Global) *Builder {
	b.global = g
	return b
}

// WithNodeId stamps the opening process's node.Id (as a config.NodeId)
// onto every port this Builder's Service goes on to register, so a dead
// node's leftover ports can later be found and removed by
// config.DynamicConfigStore.DeregisterNode.
func (b *Builder) WithNodeId(id config.NodeId) *Builder {
	b.nodeId = id
	return b
}

func (b *Builder) id() Id {
	return newId(b.name, b.pattern, b.payloadType, b.userHeaderType)
}

// Create exclusively creates a new service under this Builder's name,
// pattern and type identity, stamping specifier's attributes into it.
// Fails with ErrAlreadyExists if a service with the same identity
// already exists. specifier may be nil, meaning no attributes.
func (b *Builder) Create(specifier *AttributeSpecifier) (*Service, error) {
	if err := b.name.Validate(); err != nil {
		return nil, err
	}

	var attrs Attributes
	if specifier != nil {
		attrs = specifier.attrs
	}

	cfg := staticConfig{
		Name:           b.name,
		Pattern:        b.pattern,
		PayloadType:    b.payloadType,
		UserHeaderType: b.userHeaderType,
		Limits:         b.limits,
		SafeOverflow:   b.safeOverflow,
		Attributes:     attrs,
	}
	id := b.id()
	payload := cfg.encode()

	static, err := config.CreateStaticConfigStore(staticStorageName(id), payload, len(payload))
	if err != nil {
		if err == config.ErrAlreadyExists {
			return nil, ErrAlreadyExists
		}
		return nil, err
	}

	dynamic, err := config.CreateDynamicConfigStore(dynamicStorageName(id), b.limits)
	if err != nil {
		_ = static.Close()
		if err == config.ErrAlreadyExists {
			return nil, ErrAlreadyExists
		}
		return nil, err
	}

	static.Seal()

	return &Service{id: id, cfg: cfg, static: static, dynamic: dynamic, nodeId: b.nodeId}, nil
}

// Open joins an existing service matching this Builder's name, pattern
// and type identity, checking verifier's requirements (if non-nil)
// against its Attributes. Fails with ErrDoesNotExist if no such service
// exists, ErrHangsInCreation if its creator has not sealed it within
// config.Global.CreationTimeout, or one of the Incompatible*/
// DoesNotSupportRequestedAmountOf* errors on a compatibility mismatch.
func (b *Builder) Open(verifier *AttributeVerifier) (*Service, error) {
	if err := b.name.Validate(); err != nil {
		return nil, err
	}

	id := b.id()
	cfg, static, err := openStaticConfig(id, b.global)
	if err != nil {
		return nil, err
	}

	if err := b.checkCompatible(cfg); err != nil {
		_ = static.Close()
		return nil, err
	}
	if verifier != nil {
		if err := verifier.Verify(cfg.Attributes); err != nil {
			_ = static.Close()
			return nil, err
		}
	}

	dynamic, err := config.OpenDynamicConfigStore(dynamicStorageName(id), cfg.Limits, b.global)
	if err != nil {
		_ = static.Close()
		if err == config.ErrDoesNotExist {
			return nil, ErrDoesNotExist
		}
		return nil, err
	}

	return &Service{id: id, cfg: cfg, static: static, dynamic: dynamic, nodeId: b.nodeId}, nil
}

// OpenOrCreate tries Open first; if that fails with ErrDoesNotExist it
// tries Create; if Create then fails with ErrAlreadyExists (another
// process won the race to create it first) it retries Open. The loop is
// bounded by BuilderRetryLimit attempts of each kind to guard against
// two processes livelocking each other, per spec.md §4.5.
func (b *Builder) OpenOrCreate(verifier *AttributeVerifier, specifier *AttributeSpecifier) (*Service, error) {
	backoff := iox.Backoff{}
	for attempt := 0; attempt < BuilderRetryLimit; attempt++ {
		svc, err := b.Open(verifier)
		if err == nil {
			return svc, nil
		}
		if err != ErrDoesNotExist {
			return nil, err
		}

		svc, err = b.Create(specifier)
		if err == nil {
			return svc, nil
		}
		if err != ErrAlreadyExists {
			return nil, err
		}

		backoff.Wait()
	}
	logging.Named("service").Warn("open_or_create retry budget exceeded",
		zap.String("name", string(b.name)), zap.String("pattern", b.pattern.String()))
	return nil, ErrOpenOrCreateRetryLimitExceeded
}

// checkCompatible runs the exact-match and minimum-capacity checks
// spec.md §4.5 lists for Open: messaging pattern, payload/user-header
// type details, overflow flag (exact match), and per-role minimum
// capacity (existing must provide at least what this Builder requires).
func (b *Builder) checkCompatible(existing staticConfig) error {
	if b.pattern != existing.Pattern {
		return ErrIncompatibleMessagingPattern
	}
	if !b.payloadType.compatible(existing.PayloadType) {
		return ErrIncompatiblePayloadType
	}
	if !b.userHeaderType.compatible(existing.UserHeaderType) {
		return ErrIncompatibleUserHeaderType
	}
	if b.safeOverflow != existing.SafeOverflow {
		return ErrIncompatibleOverflowSetting
	}
	if b.limits.MaxPublishers > existing.Limits.MaxPublishers {
		return ErrDoesNotSupportRequestedAmountOfPublishers
	}
	if b.limits.MaxSubscribers > existing.Limits.MaxSubscribers {
		return ErrDoesNotSupportRequestedAmountOfSubscribers
	}
	if b.limits.MaxNotifiers > existing.Limits.MaxNotifiers {
		return ErrDoesNotSupportRequestedAmountOfNotifiers
	}
	if b.limits.MaxListeners > existing.Limits.MaxListeners {
		return ErrDoesNotSupportRequestedAmountOfListeners
	}
	if b.limits.MaxClients > existing.Limits.MaxClients {
		return ErrDoesNotSupportRequestedAmountOfClients
	}
	if b.limits.MaxServers > existing.Limits.MaxServers {
		return ErrDoesNotSupportRequestedAmountOfServers
	}
	return nil
}
