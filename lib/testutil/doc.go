// Copyright 2026 The Gestia Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for asynchronous
// assertions. The helpers encapsulate the timeout safety valve pattern
// so individual tests never hang on a channel that nothing sends to.
package testutil
