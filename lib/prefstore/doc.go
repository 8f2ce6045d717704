// Copyright 2026 The Gestia Authors
// SPDX-License-Identifier: Apache-2.0

// Package prefstore persists process-wide console state: notifications
// and UI preferences (theme, language, page size). The web back-office
// kept this in browser localStorage; here it is a single snapshot file,
// CBOR-encoded and zstd-compressed.
//
// The store is an explicit dependency, not a hidden singleton: the UI
// takes a Store and tests inject Memory(). Every mutation persists
// synchronously. A missing or corrupt snapshot file is replaced by the
// seed defaults — corruption is logged, never fatal.
package prefstore
