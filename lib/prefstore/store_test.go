// Copyright 2026 The Gestia Authors
// SPDX-License-Identifier: Apache-2.0

package prefstore

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(discard{}, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

func TestFileStoreSeedsDefaultsWhenMissing(t *testing.T) {
	store, err := File(filepath.Join(t.TempDir(), "console.state"), quietLogger())
	if err != nil {
		t.Fatalf("File: %v", err)
	}
	if got := store.Preferences(); got != DefaultPreferences() {
		t.Errorf("preferences = %+v, want seed defaults", got)
	}
	if store.UnreadCount() != 0 {
		t.Error("fresh store has unread notifications")
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "console.state")
	store, err := File(path, quietLogger())
	if err != nil {
		t.Fatalf("File: %v", err)
	}

	prefs := Preferences{Theme: "light", Language: "en", PageSize: 25, AvatarStyle: "initials"}
	if err := store.SetPreferences(prefs); err != nil {
		t.Fatalf("SetPreferences: %v", err)
	}
	if err := store.Add(Notification{ID: "n1", Title: "Quote approved", CreatedAt: "2026-08-30T09:00:00Z"}); err != nil {
		t.Fatalf("Add: %v", err)
	}

	// Reopen: every mutation must already be on disk.
	reopened, err := File(path, quietLogger())
	if err != nil {
		t.Fatalf("File (reopen): %v", err)
	}
	if got := reopened.Preferences(); got != prefs {
		t.Errorf("preferences = %+v, want %+v", got, prefs)
	}
	notifications := reopened.Notifications()
	if len(notifications) != 1 || notifications[0].Title != "Quote approved" {
		t.Errorf("notifications = %+v", notifications)
	}
	if reopened.UnreadCount() != 1 {
		t.Errorf("unread = %d, want 1", reopened.UnreadCount())
	}
}

func TestFileStoreReseedsOnCorruptSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "console.state")
	if err := os.WriteFile(path, []byte("not a zstd frame"), 0o600); err != nil {
		t.Fatalf("writing corrupt file: %v", err)
	}

	store, err := File(path, quietLogger())
	if err != nil {
		t.Fatalf("File must not fail on corruption: %v", err)
	}
	if got := store.Preferences(); got != DefaultPreferences() {
		t.Errorf("preferences = %+v, want seed defaults after corruption", got)
	}
}

func TestMarkReadAndMarkAllRead(t *testing.T) {
	store := Memory()
	for index := 0; index < 3; index++ {
		store.Add(Notification{ID: fmt.Sprintf("n%d", index)})
	}

	store.MarkRead("n1")
	if got := store.UnreadCount(); got != 2 {
		t.Errorf("unread = %d, want 2", got)
	}
	store.MarkRead("unknown") // no-op
	if got := store.UnreadCount(); got != 2 {
		t.Errorf("unread after unknown id = %d, want 2", got)
	}

	store.MarkAllRead()
	if got := store.UnreadCount(); got != 0 {
		t.Errorf("unread after MarkAllRead = %d, want 0", got)
	}
}

func TestNotificationHistoryBounded(t *testing.T) {
	store := Memory()
	for index := 0; index < maxNotifications+10; index++ {
		store.Add(Notification{ID: fmt.Sprintf("n%d", index)})
	}
	notifications := store.Notifications()
	if len(notifications) != maxNotifications {
		t.Fatalf("history = %d entries, want %d", len(notifications), maxNotifications)
	}
	// Newest first: the most recent Add is at index 0.
	if notifications[0].ID != fmt.Sprintf("n%d", maxNotifications+9) {
		t.Errorf("head = %s, want newest", notifications[0].ID)
	}
}
