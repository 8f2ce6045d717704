// Copyright 2026 The Gestia Authors
// SPDX-License-Identifier: Apache-2.0

package prefstore

import "sync"

// MemStore is an in-memory Store for tests and ephemeral sessions.
type MemStore struct {
	mutex sync.Mutex
	state snapshot
}

// Memory returns a MemStore seeded with the default preferences.
func Memory() *MemStore {
	return &MemStore{state: snapshot{Preferences: DefaultPreferences()}}
}

// Preferences implements Store.
func (store *MemStore) Preferences() Preferences {
	store.mutex.Lock()
	defer store.mutex.Unlock()
	return store.state.Preferences
}

// SetPreferences implements Store.
func (store *MemStore) SetPreferences(prefs Preferences) error {
	store.mutex.Lock()
	defer store.mutex.Unlock()
	store.state.Preferences = prefs
	return nil
}

// Notifications implements Store.
func (store *MemStore) Notifications() []Notification {
	store.mutex.Lock()
	defer store.mutex.Unlock()
	return append([]Notification(nil), store.state.Notifications...)
}

// Add implements Store.
func (store *MemStore) Add(notification Notification) error {
	store.mutex.Lock()
	defer store.mutex.Unlock()
	store.state.Notifications = append([]Notification{notification}, store.state.Notifications...)
	if len(store.state.Notifications) > maxNotifications {
		store.state.Notifications = store.state.Notifications[:maxNotifications]
	}
	return nil
}

// MarkRead implements Store.
func (store *MemStore) MarkRead(id string) error {
	store.mutex.Lock()
	defer store.mutex.Unlock()
	for index := range store.state.Notifications {
		if store.state.Notifications[index].ID == id {
			store.state.Notifications[index].Read = true
			break
		}
	}
	return nil
}

// MarkAllRead implements Store.
func (store *MemStore) MarkAllRead() error {
	store.mutex.Lock()
	defer store.mutex.Unlock()
	for index := range store.state.Notifications {
		store.state.Notifications[index].Read = true
	}
	return nil
}

// UnreadCount implements Store.
func (store *MemStore) UnreadCount() int {
	store.mutex.Lock()
	defer store.mutex.Unlock()
	count := 0
	for _, notification := range store.state.Notifications {
		if !notification.Read {
			count++
		}
	}
	return count
}
