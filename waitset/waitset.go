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

package waitset

import (
	"sync"
	"time"

	"code.hybscloud.com/spin"
	"golang.org/x/time/rate"

	"github.com/eclipse-iceoryx/iceoryx2-core-go/internal/lockfree"
	"github.com/eclipse-iceoryx/iceoryx2-core-go/internal/metrics"
)

// DefaultPollInterval is how often an attachment's poller goroutine
// checks its source for a pending wakeup (or its own clock, for a Tick
// or Deadline attachment) when nothing in New's options overrides it.
const DefaultPollInterval = time.Millisecond

const defaultQueueCapacity = 64

type attachment struct {
	id       uint64
	kind     Kind
	source   NotificationSource
	interval time.Duration
	nextFire time.Time
	limiter  *rate.Limiter
	stop     chan struct{}
}

// WaitSet multiplexes the attachments registered on it behind Run and
// RunOnce. The zero value is not usable; construct one with New.
type WaitSet struct {
	mu              sync.Mutex
	closed          bool
	attachments     map[uint64]*attachment
	attachedSources map[NotificationSource]struct{}
	nextId          uint64
	pollInterval    time.Duration
	queueCapacity   int
	fired           *lockfree.MPMC[AttachmentId]
	wg              sync.WaitGroup
}

// Option configures a WaitSet constructed by New.
type Option func(*WaitSet)

// WithPollInterval overrides DefaultPollInterval.
func WithPollInterval(d time.Duration) Option {
	return func(w *WaitSet) { w.pollInterval = d }
}

// WithQueueCapacity overrides how many fired-but-not-yet-dispatched
// attachments the WaitSet buffers at once. Rounded up to the next power
// of two by the underlying queue. A WaitSet with more attachments than
// this capacity that all fire within the same poll tick applies
// backpressure to their poller goroutines rather than dropping any.
func WithQueueCapacity(n int) Option {
	return func(w *WaitSet) { w.queueCapacity = n }
}

// New constructs an empty WaitSet.
func New(opts ...Option) *WaitSet {
	w := &WaitSet{
		attachments:     make(map[uint64]*attachment),
		attachedSources: make(map[NotificationSource]struct{}),
		pollInterval:    DefaultPollInterval,
		queueCapacity:   defaultQueueCapacity,
	}
	for _, opt := range opts {
		opt(w)
	}
	w.fired = lockfree.NewMPMC[AttachmentId](w.queueCapacity)
	return w
}

// Attach registers source as a plain notification attachment: it fires
// whenever source reports a pending wakeup. Fails with ErrAlreadyAttached
// if source is already attached to this WaitSet.
func (w *WaitSet) Attach(source NotificationSource) (*Guard, error) {
	return w.attach(KindNotification, source, 0)
}

// AttachWithDeadline registers source like Attach, but additionally fires
// with AttachmentId.DeadlineMissed set if no wakeup arrives within
// deadline of the last time it fired (or of attachment, for the first).
func (w *WaitSet) AttachWithDeadline(source NotificationSource, deadline time.Duration) (*Guard, error) {
	if deadline <= 0 {
		return nil, ErrInvalidInterval
	}
	return w.attach(KindDeadline, source, deadline)
}

// AttachInterval registers a plain timer with no source: it fires once
// per interval.
func (w *WaitSet) AttachInterval(interval time.Duration) (*Guard, error) {
	if interval <= 0 {
		return nil, ErrInvalidInterval
	}
	return w.attach(KindTick, nil, interval)
}

func (w *WaitSet) attach(kind Kind, source NotificationSource, interval time.Duration) (*Guard, error) {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil, ErrClosed
	}
	if source != nil {
		if _, exists := w.attachedSources[source]; exists {
			w.mu.Unlock()
			return nil, ErrAlreadyAttached
		}
		w.attachedSources[source] = struct{}{}
	}
	w.nextId++
	a := &attachment{
		id:       w.nextId,
		kind:     kind,
		source:   source,
		interval: interval,
		nextFire: time.Now().Add(interval),
		stop:     make(chan struct{}),
	}
	if kind == KindTick {
		// rate.Limiter's token bucket, refilled once per interval with a
		// burst of 1, gives exactly the "fire at most once per interval"
		// behavior a tick attachment needs without this package
		// re-deriving its own leaky-bucket bookkeeping.
		a.limiter = rate.NewLimiter(rate.Every(interval), 1)
		a.limiter.Allow() // consume the initial burst token; the first tick fires after one interval, not immediately
	}
	w.attachments[a.id] = a
	w.mu.Unlock()

	w.wg.Add(1)
	go w.runPoller(a)

	return &Guard{ws: w, id: a.id}, nil
}

func (w *WaitSet) detach(id uint64) error {
	w.mu.Lock()
	a, ok := w.attachments[id]
	if !ok {
		w.mu.Unlock()
		return ErrUnknownAttachment
	}
	delete(w.attachments, id)
	if a.source != nil {
		delete(w.attachedSources, a.source)
	}
	w.mu.Unlock()

	close(a.stop)
	return nil
}

// Close stops every attachment's poller goroutine and waits for them to
// exit. Any attachments fired but not yet dispatched are discarded. Close
// is idempotent.
func (w *WaitSet) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	for _, a := range w.attachments {
		close(a.stop)
	}
	w.attachments = nil
	w.attachedSources = nil
	w.mu.Unlock()

	w.wg.Wait()
	return nil
}

func (w *WaitSet) isClosed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.closed
}

func (w *WaitSet) runPoller(a *attachment) {
	defer w.wg.Done()

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-a.stop:
			return
		case <-ticker.C:
			w.checkFire(a, time.Now())
		}
	}
}

// checkFire runs on a's own poller goroutine. It is the one place a's
// nextFire clock is read or written, so no lock is needed to guard it:
// the only other thing that ever touches a is detach, and detach only
// ever removes a from the map and signals stop, it never reaches into
// a's fields itself.
func (w *WaitSet) checkFire(a *attachment, now time.Time) {
	switch a.kind {
	case KindNotification:
		if a.source.HasPendingNotification() {
			w.push(AttachmentId{Kind: a.kind, id: a.id})
		}
	case KindDeadline:
		if a.source.HasPendingNotification() {
			a.nextFire = now.Add(a.interval)
			w.push(AttachmentId{Kind: a.kind, id: a.id})
			return
		}
		if !now.Before(a.nextFire) {
			a.nextFire = now.Add(a.interval)
			metrics.Default().IncWaitSetDeadlineMisses()
			w.push(AttachmentId{Kind: a.kind, id: a.id, DeadlineMissed: true})
		}
	case KindTick:
		if a.limiter.AllowN(now, 1) {
			w.push(AttachmentId{Kind: a.kind, id: a.id})
		}
	}
}

// push enqueues id, retrying under the queue-full condition rather than
// dropping it: a poller that keeps firing faster than Run drains should
// apply backpressure to itself, not lose events.
func (w *WaitSet) push(id AttachmentId) {
	sw := spin.Wait{}
	for {
		if err := w.fired.Enqueue(&id); err == nil {
			return
		}
		sw.Once()
	}
}

func (w *WaitSet) waitForFirst(timeout time.Duration) (AttachmentId, error) {
	var deadline time.Time
	if timeout > 0 {
		deadline = time.Now().Add(timeout)
	}

	sw := spin.Wait{}
	for {
		if id, err := w.fired.Dequeue(); err == nil {
			return id, nil
		}
		if w.isClosed() {
			return AttachmentId{}, ErrClosed
		}
		if !deadline.IsZero() && !time.Now().Before(deadline) {
			return AttachmentId{}, ErrTimeout
		}
		sw.Once()
	}
}

// RunOnce waits for at least one attachment to fire, then invokes
// callback once for it and once more for each further fired attachment it
// dequeues, in queue order, until the queue is empty (attachments that
// fire while callbacks run are included). A zero
// timeout waits forever; a positive timeout fails with ErrTimeout if
// nothing fires in time. If callback ever returns Stop, RunOnce returns
// immediately without dispatching the rest of this batch, and its bool
// result is true -- the same signal Run uses to stop looping.
func (w *WaitSet) RunOnce(timeout time.Duration, callback func(AttachmentId) Progression) (bool, error) {
	first, err := w.waitForFirst(timeout)
	if err != nil {
		return false, err
	}
	if callback(first) == Stop {
		return true, nil
	}

	for {
		id, err := w.fired.Dequeue()
		if err != nil {
			return false, nil
		}
		if callback(id) == Stop {
			return true, nil
		}
	}
}

// Run calls RunOnce in a loop, blocking forever between batches, until
// either callback returns Stop or the WaitSet is closed out from under
// it, in which case Run returns nil.
func (w *WaitSet) Run(callback func(AttachmentId) Progression) error {
	for {
		stop, err := w.RunOnce(0, callback)
		if err != nil {
			if err == ErrClosed {
				return nil
			}
			return err
		}
		if stop {
			return nil
		}
	}
}
