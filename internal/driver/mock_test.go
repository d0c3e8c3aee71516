package driver

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/audible-altimeter/internal/sample"
)

func TestMock_Trigger(t *testing.T) {
	m := NewMock(1, 2)

	assert.True(t, m.Trigger(1))
	assert.False(t, m.Trigger(3))
	assert.True(t, m.Trigger(2))

	assert.Equal(t, []sample.ID{1, 2}, m.Log())
}

func TestMock_Busy(t *testing.T) {
	m := NewMock(1)
	m.SetBusy(true)
	assert.False(t, m.Trigger(1))
	assert.Empty(t, m.Log())

	m.SetBusy(false)
	assert.True(t, m.Trigger(1))
}

func TestMock_Register(t *testing.T) {
	m := NewMock()
	assert.False(t, m.Trigger(5))

	m.Register(5)
	assert.True(t, m.Trigger(5))
}

func TestMock_SetVolume(t *testing.T) {
	m := NewMock()

	m.SetVolume(-10)
	m.SetVolume(math.MaxInt16)

	assert.Equal(t, MaxVolume, m.Volume())
	assert.Equal(t, []int16{-10, math.MaxInt16}, m.VolumeCalls())
}

func TestMock_LogIsCopy(t *testing.T) {
	m := NewMock(1)
	m.Trigger(1)

	log := m.Log()
	log[0] = 9
	assert.Equal(t, []sample.ID{1}, m.Log())
}

func TestClampVolume(t *testing.T) {
	tests := []struct {
		in, want int16
	}{
		{0, 0},
		{-10, -10},
		{MaxVolume, MaxVolume},
		{MaxVolume + 1, MaxVolume},
		{MinVolume, MinVolume},
		{MinVolume - 1, MinVolume},
		{math.MinInt16, MinVolume},
		{math.MaxInt16, MaxVolume},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClampVolume(tt.in), "ClampVolume(%d)", tt.in)
	}
}

func TestLevelToVolume(t *testing.T) {
	assert.InDelta(t, 0.0, levelToVolume(0), 1e-9)
	assert.InDelta(t, -1.0, levelToVolume(-6), 0.01)
	assert.InDelta(t, 2.0, levelToVolume(12), 0.01)
}
