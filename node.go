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
	"github.com/eclipse-iceoryx/iceoryx2-core-go/config"
	"github.com/eclipse-iceoryx/iceoryx2-core-go/node"
	"github.com/eclipse-iceoryx/iceoryx2-core-go/service"
)

// Node is this process's participant handle, composing package node's
// liveness token and details record with the config.Global every
// service this Node opens or creates uses for its own storage.
type Node struct {
	inner  *node.Node
	global config.Global
}

// NodeBuilder constructs a Node. The zero value is not usable; start
// with NewNodeBuilder.
type NodeBuilder struct {
	name   string
	cfg    []byte
	global config.Global
}

// NewNodeBuilder starts a NodeBuilder with config.DefaultGlobal().
func NewNodeBuilder() *NodeBuilder {
	return &NodeBuilder{global: config.DefaultGlobal()}
}

// Name sets the human-readable name this Node's details record carries.
func (b *NodeBuilder) Name(name string) *NodeBuilder {
	b.name = name
	return b
}

// Config attaches an opaque configuration blob to this Node's details
// record; package node leaves its format entirely up to the caller.
func (b *NodeBuilder) Config(cfg []byte) *NodeBuilder {
	b.cfg = cfg
	return b
}

// Global overrides the config.Global every service this Node opens or
// creates uses.
func (b *NodeBuilder) Global(g config.Global) *NodeBuilder {
	b.global = g
	return b
}

// Create mints a new Node: a fresh node.Id, a claimed monitor token, and
// a written details record.
func (b *NodeBuilder) Create() (*Node, error) {
	n, err := node.Create(b.name, b.cfg)
	if err != nil {
		return nil, err
	}
	return &Node{inner: n, global: b.global}, nil
}

// Id returns this Node's identifier.
func (n *Node) Id() node.Id { return n.inner.Id() }

// Details returns the record this Node was created with.
func (n *Node) Details() node.Details { return n.inner.Details() }

// Close removes this Node's details record and releases its monitor
// token.
func (n *Node) Close() error { return n.inner.Close() }

// ServiceBuilder starts building (or joining) the service named name,
// using this Node's config.Global. Chain PublishSubscribe, Event or
// RequestResponse to pick the messaging pattern before calling Create,
// Open or OpenOrCreate.
func (n *Node) ServiceBuilder(name service.Name) *ServiceBuilder {
	return &ServiceBuilder{name: name, global: n.global, nodeId: config.NodeId(n.Id())}
}

// ServiceBuilder is the pattern-less first step of building or joining a
// service: it only knows the service's Name and config.Global until one
// of PublishSubscribe, Event or RequestResponse is applied.
type ServiceBuilder struct {
	name   service.Name
	global config.Global
	nodeId config.NodeId
}
