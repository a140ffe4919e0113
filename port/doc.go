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

// Package port composes packages zerocopy, shm and event into the five
// port kinds applications actually talk to: Publisher/Subscriber for
// publish-subscribe, Notifier/Listener for events, and Client/Server for
// request-response. Nothing here resolves a service name or negotiates
// compatibility -- that is package service's job, one layer up -- so
// every constructor and Connect call here takes already-minted PortIds
// directly.
//
// A Publisher owns one data segment (a shm.Segment carved up by a
// shm.PowerOfTwoAllocator) and one zerocopy.Sender per connected
// Subscriber. Sending a sample fans its offset out to every connected
// Sender; because several subscribers can hold a borrow on the very same
// offset at once, the payload slot is only actually freed once every
// subscriber that received it has released its own borrow (or had it
// evicted by an overflowing connection), tracked by a small per-offset
// refcount kept on the Publisher itself. The real project keeps this
// refcount in the chunk header inside the shared segment, because its
// allocator can in principle live in a different process from the
// producing port; this port always colocates the two, so a plain
// process-local map is enough and avoids one more atomic field needing a
// place in the relocatable layout. A Subscriber is the mirror image: one
// read-only mapping of each connected Publisher's data segment plus one
// zerocopy.Receiver per connection, and Receive drains whichever
// connection happens to have something pending first -- spec.md §5 never
// promises an order across different publishers, only FIFO within one
// pair.
//
// Client and Server compose two Publisher/Subscriber pairs pointed at
// each other: a Client's requests are a Publisher connected to the
// Server's request Subscriber, and a Server's responses are a Publisher
// connected back to the Client's response Subscriber. MaxActiveRequests
// bounds how many requests a Client may have loaned without yet having
// observed a response.
package port
