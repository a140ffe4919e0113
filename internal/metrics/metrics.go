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

// Package metrics exposes the module's Prometheus collectors: ambient
// observability a caller may scrape, never a dependency any operation
// needs to succeed. Every method on Registry is safe to call whether or
// not anything is listening on the HTTP handler Handler returns.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry wraps the Prometheus collectors this module records to.
type Registry struct {
	Ports  gaugeVec
	Queues queueGaugeVec
	Drops  counterVec
}

type gaugeVec struct {
	// ConnectedPorts reports how many ports are currently registered in
	// a service's dynamic config roster, labeled by role.
	ConnectedPorts *prometheus.GaugeVec
}

type queueGaugeVec struct {
	// BorrowedSamples reports payload slots currently loaned out and not
	// yet released, labeled by port kind; port.Subscriber is the only
	// recorder and uses the label "subscriber".
	BorrowedSamples *prometheus.GaugeVec
}

type counterVec struct {
	// DroppedExpiredConnections counts zero-copy connections evicted by
	// ExpiredConnectionBuffer because a receiver's buffer was full.
	DroppedExpiredConnections prometheus.Counter
	// WaitSetDeadlineMisses counts WaitSet deadline attachments that
	// fired because their deadline elapsed rather than being reset by a
	// notification.
	WaitSetDeadlineMisses prometheus.Counter
}

func newRegistry() *Registry {
	return &Registry{
		Ports: gaugeVec{
			ConnectedPorts: promauto.NewGaugeVec(prometheus.GaugeOpts{
				Name: "iceoryx2_connected_ports",
				Help: "Number of ports currently registered in a service's dynamic config roster.",
			}, []string{"role"}),
		},
		Queues: queueGaugeVec{
			BorrowedSamples: promauto.NewGaugeVec(prometheus.GaugeOpts{
				Name: "iceoryx2_borrowed_samples",
				Help: "Number of payload slots currently loaned out and not yet released.",
			}, []string{"kind"}),
		},
		Drops: counterVec{
			DroppedExpiredConnections: promauto.NewCounter(prometheus.CounterOpts{
				Name: "iceoryx2_dropped_expired_connections_total",
				Help: "Total zero-copy connections evicted for exceeding a receiver's buffer.",
			}),
			WaitSetDeadlineMisses: promauto.NewCounter(prometheus.CounterOpts{
				Name: "iceoryx2_waitset_deadline_misses_total",
				Help: "Total WaitSet deadline attachments that fired from an elapsed deadline rather than a notification.",
			}),
		},
	}
}

var (
	mu  sync.Mutex
	reg *Registry
)

// Default returns the module-wide metrics registry, lazily constructing
// it (and registering its collectors with the default Prometheus
// registerer) on first use.
func Default() *Registry {
	mu.Lock()
	defer mu.Unlock()
	if reg == nil {
		reg = newRegistry()
	}
	return reg
}

// SetConnectedPorts records n as the current roster size for role.
func (r *Registry) SetConnectedPorts(role string, n int) {
	r.Ports.ConnectedPorts.WithLabelValues(role).Set(float64(n))
}

// SetBorrowedSamples records n as the current number of outstanding
// loans for kind.
func (r *Registry) SetBorrowedSamples(kind string, n int) {
	r.Queues.BorrowedSamples.WithLabelValues(kind).Set(float64(n))
}

// IncBorrowedSamples records one more outstanding loan for kind.
func (r *Registry) IncBorrowedSamples(kind string) {
	r.Queues.BorrowedSamples.WithLabelValues(kind).Inc()
}

// DecBorrowedSamples records one fewer outstanding loan for kind.
func (r *Registry) DecBorrowedSamples(kind string) {
	r.Queues.BorrowedSamples.WithLabelValues(kind).Dec()
}

// IncDroppedExpiredConnections records one more eviction from a full
// delivery channel.
func (r *Registry) IncDroppedExpiredConnections() {
	r.Drops.DroppedExpiredConnections.Inc()
}

// IncWaitSetDeadlineMisses records one more deadline attachment firing
// from an elapsed deadline.
func (r *Registry) IncWaitSetDeadlineMisses() {
	r.Drops.WaitSetDeadlineMisses.Inc()
}

// Handler returns an HTTP handler exposing every registered collector in
// the default Prometheus registerer, including this Registry's.
func (r *Registry) Handler() http.Handler {
	return promhttp.Handler()
}
