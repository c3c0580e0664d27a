// Package theme persists the dark/light preference under its own key of
// the on-device key/value store, independent of transaction data.
package theme

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"

	"centavo/internal/kvstore"
)

// storageKey is the fixed key the theme flag lives under.
const storageKey = "expense_tracker_theme"

// Manager holds the current theme flag. The default is light (false)
// until Load has read a saved preference.
type Manager struct {
	kv kvstore.Store

	mu     sync.Mutex
	isDark bool
}

func NewManager(kv kvstore.Store) *Manager {
	return &Manager{kv: kv}
}

// Load reads the saved preference. A missing value, read failure, or
// unparsable payload all fall back to light; failures are logged only.
func (m *Manager) Load(ctx context.Context) {
	data, err := m.kv.Get(ctx, storageKey)
	if err != nil {
		if !errors.Is(err, kvstore.ErrNotFound) {
			slog.Error("reading theme preference", "error", err)
		}

		return
	}

	var isDark bool
	if err := json.Unmarshal(data, &isDark); err != nil {
		slog.Warn("ignoring malformed theme preference", "error", err)
		return
	}

	m.mu.Lock()
	m.isDark = isDark
	m.mu.Unlock()
}

func (m *Manager) IsDark() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.isDark
}

// Toggle flips the flag and persists it. On write failure the in-memory
// value keeps the new state; the divergence lasts until the next write.
func (m *Manager) Toggle(ctx context.Context) bool {
	m.mu.Lock()
	m.isDark = !m.isDark
	isDark := m.isDark
	m.mu.Unlock()

	data, _ := json.Marshal(isDark)
	if err := m.kv.Set(ctx, storageKey, data); err != nil {
		slog.Error("saving theme preference", "error", err)
	}

	return isDark
}
