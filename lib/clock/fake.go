// Copyright 2026 The Gestia Authors
// SPDX-License-Identifier: Apache-2.0

package clock

import (
	"sort"
	"sync"
	"time"
)

// FakeClock is a deterministic Clock for tests. Time stands still until
// Advance is called. Waiters registered through After, AfterFunc, and
// Sleep fire when the fake time passes their deadline, in deadline
// order, on the goroutine that calls Advance.
type FakeClock struct {
	mutex   sync.Mutex
	now     time.Time
	waiters []*fakeWaiter
}

type fakeWaiter struct {
	deadline time.Time
	ch       chan time.Time // nil for AfterFunc waiters
	fn       func()         // nil for After/Sleep waiters
	stopped  bool
}

// Fake returns a FakeClock starting at a fixed, arbitrary instant.
// Tests that care about the absolute value should use FakeAt.
func Fake() *FakeClock {
	return FakeAt(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))
}

// FakeAt returns a FakeClock starting at the given instant.
func FakeAt(start time.Time) *FakeClock {
	return &FakeClock{now: start}
}

// Now returns the current fake time.
func (clock *FakeClock) Now() time.Time {
	clock.mutex.Lock()
	defer clock.mutex.Unlock()
	return clock.now
}

// After returns a channel that receives the fake time once Advance
// moves past d. A non-positive d delivers immediately.
func (clock *FakeClock) After(d time.Duration) <-chan time.Time {
	clock.mutex.Lock()
	defer clock.mutex.Unlock()

	ch := make(chan time.Time, 1)
	if d <= 0 {
		ch <- clock.now
		return ch
	}
	clock.waiters = append(clock.waiters, &fakeWaiter{
		deadline: clock.now.Add(d),
		ch:       ch,
	})
	return ch
}

// AfterFunc registers f to run when Advance moves past d. A
// non-positive d runs f synchronously.
func (clock *FakeClock) AfterFunc(d time.Duration, f func()) *Timer {
	clock.mutex.Lock()
	if d <= 0 {
		clock.mutex.Unlock()
		f()
		return &Timer{stopFunc: func() bool { return false }}
	}

	waiter := &fakeWaiter{
		deadline: clock.now.Add(d),
		fn:       f,
	}
	clock.waiters = append(clock.waiters, waiter)
	clock.mutex.Unlock()

	return &Timer{stopFunc: func() bool {
		clock.mutex.Lock()
		defer clock.mutex.Unlock()
		if waiter.stopped {
			return false
		}
		waiter.stopped = true
		return true
	}}
}

// Sleep blocks until Advance moves the fake time past d. It must be
// called from a goroutine other than the one calling Advance.
func (clock *FakeClock) Sleep(d time.Duration) {
	<-clock.After(d)
}

// Advance moves the fake time forward by d and fires every waiter whose
// deadline has been reached, in deadline order. AfterFunc callbacks run
// synchronously on the calling goroutine.
func (clock *FakeClock) Advance(d time.Duration) {
	clock.mutex.Lock()
	clock.now = clock.now.Add(d)
	now := clock.now

	var due []*fakeWaiter
	var remaining []*fakeWaiter
	for _, waiter := range clock.waiters {
		if waiter.stopped {
			continue
		}
		if !waiter.deadline.After(now) {
			due = append(due, waiter)
		} else {
			remaining = append(remaining, waiter)
		}
	}
	clock.waiters = remaining
	sort.SliceStable(due, func(i, j int) bool {
		return due[i].deadline.Before(due[j].deadline)
	})
	clock.mutex.Unlock()

	for _, waiter := range due {
		if waiter.ch != nil {
			waiter.ch <- now
		}
		if waiter.fn != nil {
			waiter.fn()
		}
	}
}
