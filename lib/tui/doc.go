// Copyright 2026 The Gestia Authors
// SPDX-License-Identifier: Apache-2.0

// Package tui provides shared terminal user interface components for
// the Gestia console. Built on bubbletea (Elm architecture), these
// components handle common patterns like dropdown overlays, text
// input modals, fuzzy matching, change highlighting, and ANSI-aware
// text manipulation.
//
// Resource-specific screens (tickets, quotes, invoices, planning)
// import this package for consistent look and behavior: same theme,
// same keyboard conventions, same overlay mechanics. Each screen owns
// its own data source, layout, and domain-specific rendering.
package tui
