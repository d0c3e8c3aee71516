// Package audioplayer triggers samples and sets the global volume through an
// audio driver.
package audioplayer

import (
	"github.com/llehouerou/audible-altimeter/internal/driver"
	"github.com/llehouerou/audible-altimeter/internal/sample"
)

// Player forwards playback requests to a driver it does not own.
// The caller keeps the driver alive for as long as the Player is used.
// A Player is as safe for concurrent use as its driver.
type Player struct {
	driver driver.Interface
}

// New creates a player over d.
func New(d driver.Interface) *Player {
	return &Player{driver: d}
}

// Play starts the sample with the given ID and reports whether the driver
// accepted it. Rejected requests are not retried or queued.
func (p *Player) Play(id sample.ID) bool {
	return p.driver.Trigger(id)
}

// SetVolumeOnAllSamples sets one volume, in decibels, for every sample.
// Out-of-range levels are clamped by the driver.
func (p *Player) SetVolumeOnAllSamples(level int16) {
	p.driver.SetVolume(level)
}
