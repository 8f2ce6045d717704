// Copyright 2026 The Gestia Authors
// SPDX-License-Identifier: Apache-2.0

package prefstore

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/fxamacker/cbor/v2"
	"github.com/klauspost/compress/zstd"
)

// FileStore is the production Store: one snapshot file, CBOR inside
// zstd. Writes are atomic (temp file + rename) so a crash mid-persist
// never leaves a torn snapshot.
type FileStore struct {
	path   string
	logger *slog.Logger

	mutex sync.Mutex
	state snapshot
}

var (
	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder
)

func init() {
	var err error
	// Level 3 default: the payload is small structured text, exactly
	// the content class zstd does well on.
	zstdEncoder, err = zstd.NewWriter(nil)
	if err != nil {
		panic("prefstore: zstd encoder initialization failed: " + err.Error())
	}
	zstdDecoder, err = zstd.NewReader(nil)
	if err != nil {
		panic("prefstore: zstd decoder initialization failed: " + err.Error())
	}
}

// File opens (or seeds) the snapshot at path. A missing file starts
// from defaults silently; an unreadable or undecodable file starts
// from defaults with a warning — stored preferences are never worth
// failing startup over.
func File(path string, logger *slog.Logger) (*FileStore, error) {
	if logger == nil {
		logger = slog.Default()
	}
	store := &FileStore{
		path:   path,
		logger: logger,
		state:  snapshot{Preferences: DefaultPreferences()},
	}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return store, nil
	}
	if err != nil {
		logger.Warn("preference snapshot unreadable, reseeding", "path", path, "error", err)
		return store, nil
	}

	decompressed, err := zstdDecoder.DecodeAll(raw, nil)
	if err == nil {
		var loaded snapshot
		if err = cbor.Unmarshal(decompressed, &loaded); err == nil {
			if loaded.Preferences == (Preferences{}) {
				loaded.Preferences = DefaultPreferences()
			}
			store.state = loaded
			return store, nil
		}
	}
	logger.Warn("preference snapshot corrupt, reseeding", "path", path, "error", err)
	return store, nil
}

// Preferences implements Store.
func (store *FileStore) Preferences() Preferences {
	store.mutex.Lock()
	defer store.mutex.Unlock()
	return store.state.Preferences
}

// SetPreferences implements Store.
func (store *FileStore) SetPreferences(prefs Preferences) error {
	store.mutex.Lock()
	defer store.mutex.Unlock()
	store.state.Preferences = prefs
	return store.persistLocked()
}

// Notifications implements Store.
func (store *FileStore) Notifications() []Notification {
	store.mutex.Lock()
	defer store.mutex.Unlock()
	return append([]Notification(nil), store.state.Notifications...)
}

// Add implements Store.
func (store *FileStore) Add(notification Notification) error {
	store.mutex.Lock()
	defer store.mutex.Unlock()
	store.state.Notifications = append([]Notification{notification}, store.state.Notifications...)
	if len(store.state.Notifications) > maxNotifications {
		store.state.Notifications = store.state.Notifications[:maxNotifications]
	}
	return store.persistLocked()
}

// MarkRead implements Store.
func (store *FileStore) MarkRead(id string) error {
	store.mutex.Lock()
	defer store.mutex.Unlock()
	for index := range store.state.Notifications {
		if store.state.Notifications[index].ID == id {
			store.state.Notifications[index].Read = true
			return store.persistLocked()
		}
	}
	return nil
}

// MarkAllRead implements Store.
func (store *FileStore) MarkAllRead() error {
	store.mutex.Lock()
	defer store.mutex.Unlock()
	for index := range store.state.Notifications {
		store.state.Notifications[index].Read = true
	}
	return store.persistLocked()
}

// UnreadCount implements Store.
func (store *FileStore) UnreadCount() int {
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

func (store *FileStore) persistLocked() error {
	encoded, err := cbor.Marshal(store.state)
	if err != nil {
		return fmt.Errorf("prefstore: encoding snapshot: %w", err)
	}
	compressed := zstdEncoder.EncodeAll(encoded, nil)

	if err := os.MkdirAll(filepath.Dir(store.path), 0o755); err != nil {
		return fmt.Errorf("prefstore: creating state directory: %w", err)
	}
	temp := store.path + ".tmp"
	if err := os.WriteFile(temp, compressed, 0o600); err != nil {
		return fmt.Errorf("prefstore: writing snapshot: %w", err)
	}
	if err := os.Rename(temp, store.path); err != nil {
		return fmt.Errorf("prefstore: replacing snapshot: %w", err)
	}
	return nil
}
