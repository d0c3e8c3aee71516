// Package sample models the PCM sound bank that the audio driver plays from.
package sample

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// Format every sample in a bank is stored in.
const (
	SampleRate     = 11025
	Channels       = 1
	BytesPerSample = 2
)

var (
	ErrEmptyName     = errors.New("sample name is empty")
	ErrDuplicateName = errors.New("duplicate sample name")
)

// ID names a sample known to a bank. IDs only support equality.
type ID uint16

// String returns a debug representation of the ID.
func (id ID) String() string {
	return "sample#" + strconv.Itoa(int(id))
}

// Sample is one unit of playable audio: mono signed 16-bit PCM.
type Sample struct {
	ID   ID
	Name string
	Data []int16
}

// Duration returns the playing time of the sample at the given rate.
func (s Sample) Duration(rate int) time.Duration {
	if rate <= 0 {
		return 0
	}
	return time.Duration(len(s.Data)) * time.Second / time.Duration(rate)
}

// Bank holds samples addressed by ID and by name.
// IDs are assigned contiguously from 0 in insertion order.
type Bank struct {
	rate    int
	samples []Sample
	byName  map[string]ID
}

// NewBank creates a bank at the given sample rate and adds samples in order.
// The IDs carried by the given samples are ignored.
func NewBank(rate int, samples ...Sample) (*Bank, error) {
	b := &Bank{
		rate:   rate,
		byName: make(map[string]ID, len(samples)),
	}
	for _, s := range samples {
		if _, err := b.Add(s.Name, s.Data); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// MustNewBank is like NewBank but panics on error. Intended for generated code.
func MustNewBank(rate int, samples ...Sample) *Bank {
	b, err := NewBank(rate, samples...)
	if err != nil {
		panic(err)
	}
	return b
}

// Add registers a sample and returns its ID.
func (b *Bank) Add(name string, data []int16) (ID, error) {
	if name == "" {
		return 0, ErrEmptyName
	}
	if _, exists := b.byName[name]; exists {
		return 0, fmt.Errorf("%w: %s", ErrDuplicateName, name)
	}
	id := ID(len(b.samples))
	b.samples = append(b.samples, Sample{ID: id, Name: name, Data: data})
	b.byName[name] = id
	return id, nil
}

// Get returns the sample with the given ID.
func (b *Bank) Get(id ID) (Sample, bool) {
	if int(id) >= len(b.samples) {
		return Sample{}, false
	}
	return b.samples[id], true
}

// Lookup returns the ID of the named sample.
func (b *Bank) Lookup(name string) (ID, bool) {
	id, ok := b.byName[name]
	return id, ok
}

// Len returns the number of samples. It is also one past the last valid ID.
func (b *Bank) Len() int {
	return len(b.samples)
}

// Samples returns a copy of the samples in ID order.
func (b *Bank) Samples() []Sample {
	result := make([]Sample, len(b.samples))
	copy(result, b.samples)
	return result
}

// TotalBytes returns the storage size of all PCM data in the bank.
func (b *Bank) TotalBytes() int {
	total := 0
	for _, s := range b.samples {
		total += len(s.Data) * BytesPerSample
	}
	return total
}

// SampleRate returns the rate all samples in the bank are stored at.
func (b *Bank) SampleRate() int {
	return b.rate
}
