// Copyright 2026 The Gestia Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock provides an injectable time abstraction for testability.
//
// Production code accepts a Clock parameter instead of calling time.Now,
// time.After, time.AfterFunc, or time.Sleep directly. In production,
// Real() provides standard library behavior. In tests, Fake() provides a
// deterministic clock that advances only when Advance is called — flash
// banner dismissal becomes an exact assertion instead of a sleep.
//
// # Wiring pattern
//
// Add a Clock field to structs that use time:
//
//	type Model struct {
//	    clock clock.Clock
//	}
//
// Default to Real() when the field is nil so that callers outside tests
// never have to think about it.
package clock
