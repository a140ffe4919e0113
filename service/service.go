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

func staticStorageName(id Id) string  { return id.String() + ".service" }
func dynamicStorageName(id Id) string { return id.String() + ".dynamic" }

// Service is a handle on an open (or freshly created) registry entry: an
// Id, the StaticConfig it was opened with, and a reference-counted
// handle on its DynamicConfig port roster. A caller derives the PortIds
// its own ports should register under from Id and hands them, along
// with Dynamic, to package port's constructors and to
// config.DynamicConfigStore.Register/Deregister.
type Service struct {
	id      Id
	cfg     staticConfig
	static  *config.StaticConfigStore
	dynamic *config.DynamicConfigStore
	nodeId  config.NodeId
}

// Id returns this service's stable fingerprint.
func (s *Service) Id() Id { return s.id }

// NodeId returns the config.NodeId this Service's Builder was
// constructed with (see Builder.WithNodeId), the value RegisterPort
// tags every port registered through this handle with.
func (s *Service) NodeId() config.NodeId { return s.nodeId }

// Name returns the name this service was created under.
func (s *Service) Name() Name { return s.cfg.Name }

// Pattern returns this service's messaging pattern.
func (s *Service) Pattern() MessagingPattern { return s.cfg.Pattern }

// PayloadType returns this service's payload TypeDetail.
func (s *Service) PayloadType() TypeDetail { return s.cfg.PayloadType }

// UserHeaderType returns this service's user-header TypeDetail.
func (s *Service) UserHeaderType() TypeDetail { return s.cfg.UserHeaderType }

// Limits returns the per-role port capacity this service was created
// with.
func (s *Service) Limits() config.Limits { return s.cfg.Limits }

// HasEnabledSafeOverflow reports the safe-overflow flag recorded in this
// service's static config.
func (s *Service) HasEnabledSafeOverflow() bool { return s.cfg.SafeOverflow }

// Attributes returns the user attributes this service was created with.
func (s *Service) Attributes() Attributes { return s.cfg.Attributes }

// Dynamic returns this service's live port roster, for registering or
// deregistering a port this process owns and for enumerating the ports
// other processes have registered.
func (s *Service) Dynamic() *config.DynamicConfigStore { return s.dynamic }

// RegisterPort adds id to role's roster, tagging it with the node.Id
// this Service's Builder was constructed with (see Builder.WithNodeId),
// so node.Cleaner can later find and remove it if that node dies without
// closing the port itself.
func (s *Service) RegisterPort(role config.PortRole, id config.PortId) error {
	return s.dynamic.Register(role, id, s.nodeId)
}

// Close detaches this handle's reference to the service's StaticConfig
// and DynamicConfig storage. If this was the last reference to either,
// that storage's backing shared memory is removed, per spec.md §3's
// "last departing participant is obligated to remove the on-disk
// artifacts".
func (s *Service) Close() error {
	dynErr := s.dynamic.Close()
	statErr := s.static.Close()
	if dynErr != nil {
		return dynErr
	}
	return statErr
}
