// internal/state/mock.go
package state

import "sync"

// Mock is a test double for Manager.
type Mock struct {
	mu     sync.Mutex
	volume *VolumeState
	saves  []VolumeState
	getErr error
	closed bool
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) GetVolume() (*VolumeState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	if m.volume == nil {
		return nil, nil
	}
	v := *m.volume
	return &v, nil
}

func (m *Mock) SaveVolume(state VolumeState) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.volume = &state
	m.saves = append(m.saves, state)
}

func (m *Mock) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Test helpers

func (m *Mock) SetVolume(state *VolumeState) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.volume = state
}

func (m *Mock) SetGetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getErr = err
}

func (m *Mock) Saves() []VolumeState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]VolumeState(nil), m.saves...)
}

func (m *Mock) IsClosed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
