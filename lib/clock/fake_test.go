// Copyright 2026 The Gestia Authors
// SPDX-License-Identifier: Apache-2.0

package clock

import (
	"testing"
	"time"
)

func TestFakeNowAdvances(t *testing.T) {
	fake := FakeAt(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	start := fake.Now()

	fake.Advance(90 * time.Second)

	if got := fake.Now().Sub(start); got != 90*time.Second {
		t.Errorf("advanced %v, want 90s", got)
	}
}

func TestFakeAfterFiresAtDeadline(t *testing.T) {
	fake := Fake()
	ch := fake.After(5 * time.Second)

	fake.Advance(4 * time.Second)
	select {
	case <-ch:
		t.Fatal("fired before deadline")
	default:
	}

	fake.Advance(1 * time.Second)
	select {
	case <-ch:
	default:
		t.Fatal("did not fire at deadline")
	}
}

func TestFakeAfterNonPositiveFiresImmediately(t *testing.T) {
	fake := Fake()
	select {
	case <-fake.After(0):
	default:
		t.Fatal("After(0) did not deliver immediately")
	}
}

func TestFakeAfterFuncStop(t *testing.T) {
	fake := Fake()
	fired := false
	timer := fake.AfterFunc(time.Second, func() { fired = true })

	if !timer.Stop() {
		t.Fatal("Stop on pending timer returned false")
	}
	fake.Advance(2 * time.Second)
	if fired {
		t.Error("stopped AfterFunc still fired")
	}
	if timer.Stop() {
		t.Error("second Stop returned true")
	}
}

func TestFakeWaitersFireInDeadlineOrder(t *testing.T) {
	fake := Fake()
	var order []int
	fake.AfterFunc(3*time.Second, func() { order = append(order, 3) })
	fake.AfterFunc(1*time.Second, func() { order = append(order, 1) })
	fake.AfterFunc(2*time.Second, func() { order = append(order, 2) })

	fake.Advance(5 * time.Second)

	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Errorf("fire order = %v, want [1 2 3]", order)
	}
}
