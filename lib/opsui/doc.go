// Copyright 2026 The Gestia Authors
// SPDX-License-Identifier: Apache-2.0

// Package opsui implements the Gestia back-office console: a bubbletea
// model with one tab per resource (tickets, quotes, invoices, assets,
// providers, sites, managers, reports), a dashboard of aggregate stat
// tiles, and a read-only planning calendar.
//
// The package is purely presentational. All list state (pagination,
// search, filters, optimistic updates) lives in lib/listing
// controllers; all network access goes through lib/api and is only
// ever initiated from bubbletea commands. View() renders from the
// controllers' current snapshots and never blocks.
package opsui
