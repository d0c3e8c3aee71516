// internal/driver/mock.go
package driver

import (
	"sync"

	"github.com/llehouerou/audible-altimeter/internal/sample"
)

// Mock is a hardware-free test double for a driver.
// It accepts triggers only for registered IDs and records them in order.
type Mock struct {
	mu          sync.Mutex
	registered  map[sample.ID]bool
	busy        bool
	log         []sample.ID
	volume      int16
	volumeCalls []int16
}

// NewMock creates a mock driver with the given IDs registered.
func NewMock(ids ...sample.ID) *Mock {
	m := &Mock{registered: make(map[sample.ID]bool)}
	m.Register(ids...)
	return m
}

func (m *Mock) Trigger(id sample.ID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.busy || !m.registered[id] {
		return false
	}
	m.log = append(m.log, id)
	return true
}

func (m *Mock) SetVolume(level int16) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.volumeCalls = append(m.volumeCalls, level)
	m.volume = ClampVolume(level)
}

// Test helpers

func (m *Mock) Register(ids ...sample.ID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, id := range ids {
		m.registered[id] = true
	}
}

// SetBusy makes every trigger fail while busy is true.
func (m *Mock) SetBusy(busy bool) {
	m.mu.Lock()
	m.busy = busy
	m.mu.Unlock()
}

// Log returns a copy of the accepted triggers in call order.
func (m *Mock) Log() []sample.ID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]sample.ID(nil), m.log...)
}

// Volume returns the effective (clamped) volume.
func (m *Mock) Volume() int16 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.volume
}

// VolumeCalls returns every level passed to SetVolume, unclamped.
func (m *Mock) VolumeCalls() []int16 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]int16(nil), m.volumeCalls...)
}
