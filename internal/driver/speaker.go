package driver

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"

	"github.com/llehouerou/audible-altimeter/internal/logger"
	"github.com/llehouerou/audible-altimeter/internal/sample"
)

// Options configures a Speaker.
type Options struct {
	OutputRate int           // device sample rate in Hz (default: 44100)
	Buffer     time.Duration // device buffer length (default: 100ms)
	MaxVoices  int           // samples allowed to sound at once (default: 8)
}

func (o Options) withDefaults() Options {
	if o.OutputRate <= 0 {
		o.OutputRate = 44100
	}
	if o.Buffer <= 0 {
		o.Buffer = 100 * time.Millisecond
	}
	if o.MaxVoices <= 0 {
		o.MaxVoices = 8
	}
	return o
}

// output is the audio device a Speaker renders into.
type output interface {
	Init(rate beep.SampleRate, bufferSize int) error
	Play(s ...beep.Streamer)
	Lock()
	Unlock()
	Close()
}

// speakerOutput renders through beep's global speaker.
type speakerOutput struct{}

func (speakerOutput) Init(rate beep.SampleRate, bufferSize int) error {
	return speaker.Init(rate, bufferSize)
}

func (speakerOutput) Play(s ...beep.Streamer) { speaker.Play(s...) }

func (speakerOutput) Lock() { speaker.Lock() }

func (speakerOutput) Unlock() { speaker.Unlock() }

func (speakerOutput) Close() {
	speaker.Clear()
	speaker.Close()
}

// Speaker plays samples from a bank on the host sound device.
//
// Triggered samples are mixed together, so several may sound at once up to
// MaxVoices. A single volume effect sits after the mixer. Speaker is safe
// for concurrent use.
type Speaker struct {
	mu   sync.Mutex
	bank *sample.Bank
	opts Options
	out  output

	open   bool
	mixer  *beep.Mixer
	volume *effects.Volume
	level  int16
}

// NewSpeaker creates a speaker driver for the given bank.
// The device is not touched until Open.
func NewSpeaker(bank *sample.Bank, opts Options) *Speaker {
	return newSpeaker(bank, opts, speakerOutput{})
}

func newSpeaker(bank *sample.Bank, opts Options, out output) *Speaker {
	return &Speaker{
		bank: bank,
		opts: opts.withDefaults(),
		out:  out,
	}
}

// Open initializes the sound device and starts the mixer.
// Calling Open on an open speaker does nothing.
func (s *Speaker) Open() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.open {
		return nil
	}

	rate := beep.SampleRate(s.opts.OutputRate)
	if err := s.out.Init(rate, rate.N(s.opts.Buffer)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	s.mixer = &beep.Mixer{}
	s.mixer.KeepAlive(true) // stream silence between triggers
	s.volume = &effects.Volume{Streamer: s.mixer, Base: 2}
	s.applyVolumeLocked()
	s.out.Play(s.volume)
	s.open = true

	logger.Info("speaker open: %d Hz, %d voices, %d samples",
		s.opts.OutputRate, s.opts.MaxVoices, s.bank.Len())
	return nil
}

// Close silences all voices and releases the sound device.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return
	}

	s.out.Lock()
	s.mixer.Clear()
	s.out.Unlock()
	s.out.Close()

	s.mixer = nil
	s.volume = nil
	s.open = false
}

// Trigger starts the sample with the given ID.
// It returns false if the speaker is closed, the ID is not in the bank,
// or MaxVoices samples are already sounding.
func (s *Speaker) Trigger(id sample.ID) bool {
	smp, ok := s.bank.Get(id)
	if !ok {
		logger.Debug("trigger %s rejected: unknown sample", id)
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		logger.Debug("trigger %s rejected: speaker closed", id)
		return false
	}

	s.out.Lock()
	defer s.out.Unlock()

	if s.mixer.Len() >= s.opts.MaxVoices {
		logger.Debug("trigger %s rejected: %d voices sounding", id, s.mixer.Len())
		return false
	}
	s.mixer.Add(s.voiceFor(smp))
	return true
}

func (s *Speaker) voiceFor(smp sample.Sample) beep.Streamer {
	var v beep.Streamer = &voice{data: smp.Data}
	bankRate := beep.SampleRate(s.bank.SampleRate())
	outRate := beep.SampleRate(s.opts.OutputRate)
	if bankRate != outRate {
		v = beep.Resample(4, bankRate, outRate, v)
	}
	return v
}

// SetVolume sets the level in decibels applied to every sample, clamped to
// [MinVolume, MaxVolume]. It may be called before Open.
func (s *Speaker) SetVolume(level int16) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.level = ClampVolume(level)
	if s.volume == nil {
		return
	}
	s.out.Lock()
	s.applyVolumeLocked()
	s.out.Unlock()
}

// applyVolumeLocked copies the level into the volume effect.
// Callers hold s.mu and, once playing, the output lock.
func (s *Speaker) applyVolumeLocked() {
	s.volume.Silent = s.level <= MinVolume
	s.volume.Volume = levelToVolume(s.level)
}

// Volume returns the effective level in decibels.
func (s *Speaker) Volume() int16 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.level
}

// Voices returns the number of samples currently sounding.
func (s *Speaker) Voices() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return 0
	}
	s.out.Lock()
	defer s.out.Unlock()
	return s.mixer.Len()
}

var _ beep.Streamer = (*voice)(nil)

// voice streams one sample's PCM data once.
type voice struct {
	data []int16
	pos  int
}

// Stream implements beep.Streamer.
func (v *voice) Stream(samples [][2]float64) (n int, ok bool) {
	if v.pos >= len(v.data) {
		return 0, false
	}
	n = min(len(samples), len(v.data)-v.pos)
	for i := range n {
		f := sample.ToFloat(v.data[v.pos+i])
		samples[i] = [2]float64{f, f}
	}
	v.pos += n
	return n, true
}

// Err implements beep.Streamer.
func (v *voice) Err() error { return nil }
