// internal/driver/interface.go
package driver

import (
	"math"

	"github.com/llehouerou/audible-altimeter/internal/sample"
)

// Volume range in decibels relative to a sample's recorded level.
// Levels at or below MinVolume silence output.
const (
	MinVolume int16 = -60
	MaxVolume int16 = 12
)

// Interface is the audio output capability a player drives.
//
// Trigger starts playback of a sample and reports whether the driver accepted
// it. SetVolume applies one level to every current and future sample; drivers
// clamp it to [MinVolume, MaxVolume].
//
// Implementations document their own concurrency guarantees.
type Interface interface {
	Trigger(id sample.ID) bool
	SetVolume(level int16)
}

// ClampVolume limits a level to [MinVolume, MaxVolume].
func ClampVolume(level int16) int16 {
	return min(max(level, MinVolume), MaxVolume)
}

// levelToVolume converts decibels to beep's base-2 Volume value.
// 0 dB -> 0, about -6 dB -> -1 (half amplitude).
func levelToVolume(level int16) float64 {
	return float64(level) / (20 * math.Log10(2))
}

// Verify implementations satisfy Interface at compile time.
var (
	_ Interface = (*Speaker)(nil)
	_ Interface = (*Mock)(nil)
)
