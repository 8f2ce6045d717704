// Copyright 2026 The Gestia Authors
// SPDX-License-Identifier: Apache-2.0

package prefstore

// Preferences holds the user-tunable console settings.
type Preferences struct {
	// Theme is "dark" or "light".
	Theme string `cbor:"theme"`

	// Language is the display language code ("fr", "en").
	Language string `cbor:"language"`

	// PageSize is the list page size sent to the backend. Zero means
	// no override: the console falls back to its configured default.
	PageSize int `cbor:"page_size"`

	// AvatarStyle selects how user initials are rendered in headers.
	AvatarStyle string `cbor:"avatar_style"`
}

// Notification is one persisted console notification.
type Notification struct {
	ID        string `cbor:"id"`
	Title     string `cbor:"title"`
	Body      string `cbor:"body"`
	CreatedAt string `cbor:"created_at"` // RFC 3339
	Read      bool   `cbor:"read"`
}

// Store is the persistence boundary the console depends on. File() is
// the production implementation; Memory() backs tests.
type Store interface {
	// Preferences returns the current preferences.
	Preferences() Preferences

	// SetPreferences replaces the preferences and persists.
	SetPreferences(prefs Preferences) error

	// Notifications returns all notifications, newest first.
	Notifications() []Notification

	// Add prepends a notification and persists. The store keeps at
	// most maxNotifications entries; the oldest are dropped.
	Add(notification Notification) error

	// MarkRead marks one notification read and persists. Unknown ids
	// are a no-op.
	MarkRead(id string) error

	// MarkAllRead marks every notification read and persists.
	MarkAllRead() error

	// UnreadCount returns the number of unread notifications.
	UnreadCount() int
}

// maxNotifications bounds the persisted notification history.
const maxNotifications = 200

// DefaultPreferences is the seed used when no snapshot exists or the
// snapshot cannot be read. PageSize stays zero so a fresh store
// defers to the configured page size.
func DefaultPreferences() Preferences {
	return Preferences{
		Theme:       "dark",
		Language:    "fr",
		AvatarStyle: "initials",
	}
}

// snapshot is the at-rest shape of the whole store.
type snapshot struct {
	Preferences   Preferences    `cbor:"preferences"`
	Notifications []Notification `cbor:"notifications"`
}
