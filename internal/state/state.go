package state

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/llehouerou/audible-altimeter/internal/logger"
)

const (
	appName      = "audible-altimeter"
	dbFileName   = "altimeter.db"
	saveDebounce = 500 * time.Millisecond
)

type Manager struct {
	db       *sql.DB
	debounce time.Duration

	// flushMu serializes database writes with Close.
	flushMu sync.Mutex
	closed  bool

	saveMu    sync.Mutex
	saveTimer *time.Timer
	pending   *VolumeState
}

func Open() (*Manager, error) {
	dbPath, err := getDBPath()
	if err != nil {
		return nil, err
	}
	return OpenPath(dbPath)
}

// OpenPath opens the settings database at path, creating it if needed.
func OpenPath(dbPath string) (*Manager, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Manager{db: db, debounce: saveDebounce}, nil
}

// Close flushes a pending volume save and closes the database.
// A save already being written by the debounce timer completes first.
func (m *Manager) Close() error {
	m.flushMu.Lock()
	defer m.flushMu.Unlock()

	if m.closed {
		return nil
	}
	m.closed = true

	m.saveMu.Lock()
	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	m.saveMu.Unlock()

	flushErr := m.writePendingLocked()

	if err := m.db.Close(); err != nil {
		return err
	}
	return flushErr
}

// flush writes the pending volume, if any. It does nothing after Close.
func (m *Manager) flush() {
	m.flushMu.Lock()
	defer m.flushMu.Unlock()

	if m.closed {
		return
	}
	if err := m.writePendingLocked(); err != nil {
		logger.Error("save volume: %v", err)
	}
}

// writePendingLocked takes the pending volume and writes it.
// Callers hold flushMu.
func (m *Manager) writePendingLocked() error {
	m.saveMu.Lock()
	pending := m.pending
	m.pending = nil
	m.saveMu.Unlock()

	if pending == nil {
		return nil
	}
	return saveVolume(m.db, *pending)
}

// GetVolume returns the saved volume, or nil if none was saved yet.
func (m *Manager) GetVolume() (*VolumeState, error) {
	m.flushMu.Lock()
	defer m.flushMu.Unlock()

	m.saveMu.Lock()
	pending := m.pending
	m.saveMu.Unlock()
	if pending != nil {
		v := *pending
		return &v, nil
	}
	return getVolume(m.db)
}

// SaveVolume schedules the volume to be saved. Rapid changes are coalesced
// so only the last one is written.
func (m *Manager) SaveVolume(state VolumeState) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	m.pending = &state

	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}

	m.saveTimer = time.AfterFunc(m.debounce, m.flush)
}

func getDBPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}
