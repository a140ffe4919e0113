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

package event

import (
	"math/bits"
	"unsafe"

	"code.hybscloud.com/atomix"
)

const bitsPerWord = 64

// BitsetIdTracker is the default IdTracker: one bit per TriggerId, set by
// Add and cleared by whichever of Acquire/AcquireAll observes it. Because
// it is a bitset rather than a counted queue, raising the same id twice
// before a Listener acquires it collapses into a single pending
// notification -- the tradeoff this module's open-question decision
// documents as the default rather than the only option.
type BitsetIdTracker struct {
	words []atomix.Uint64
}

func bitsetWordCount(capacity int) int {
	return (capacity + bitsPerWord - 1) / bitsPerWord
}

func bitsetIdTrackerMemorySize(capacity int) int {
	return bitsetWordCount(capacity) * 8
}

func initBitsetIdTracker(region []byte, capacity int, owner bool) (IdTracker, error) {
	n := bitsetWordCount(capacity)
	need := n * 8
	if len(region) < need {
		return nil, ErrRegionTooSmall
	}
	ptr := (*atomix.Uint64)(unsafe.Pointer(unsafe.SliceData(region)))
	words := unsafe.Slice(ptr, n)
	t := &BitsetIdTracker{words: words}
	if owner {
		for i := range t.words {
			t.words[i].StoreRelaxed(0)
		}
	}
	return t, nil
}

func (t *BitsetIdTracker) wordIndex(id TriggerId) (word int, mask uint64) {
	return int(id) / bitsPerWord, uint64(1) << (uint64(id) % bitsPerWord)
}

// Add sets id's bit. Always succeeds: a bitset never runs out of room for
// a bit that is already within its configured capacity.
func (t *BitsetIdTracker) Add(id TriggerId) error {
	word, mask := t.wordIndex(id)
	for {
		old := t.words[word].LoadRelaxed()
		if old&mask != 0 {
			return nil
		}
		if t.words[word].CompareAndSwapAcqRel(old, old|mask) {
			return nil
		}
	}
}

// Acquire clears and returns the lowest-numbered pending id, if any.
func (t *BitsetIdTracker) Acquire() (TriggerId, bool) {
	for word := range t.words {
		for {
			bitmap := t.words[word].LoadAcquire()
			if bitmap == 0 {
				break
			}
			bit := bits.TrailingZeros64(bitmap)
			mask := uint64(1) << uint(bit)
			if t.words[word].CompareAndSwapAcqRel(bitmap, bitmap&^mask) {
				return TriggerId(word*bitsPerWord + bit), true
			}
		}
	}
	return 0, false
}

// AcquireAll clears and reports every currently pending id, lowest word
// first. Ids set by a racing Notifier after AcquireAll has already
// scanned past their word are left for the next call, matching the
// "collect what is visible now" semantics the Listener's wait methods
// rely on.
func (t *BitsetIdTracker) AcquireAll(callback func(TriggerId)) {
	for word := range t.words {
		for {
			bitmap := t.words[word].LoadAcquire()
			if bitmap == 0 {
				break
			}
			if !t.words[word].CompareAndSwapAcqRel(bitmap, 0) {
				continue
			}
			for bitmap != 0 {
				bit := bits.TrailingZeros64(bitmap)
				callback(TriggerId(word*bitsPerWord + bit))
				bitmap &^= uint64(1) << uint(bit)
			}
			break
		}
	}
}
