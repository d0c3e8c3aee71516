package sample

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBank_AssignsContiguousIDs(t *testing.T) {
	b, err := NewBank(SampleRate)
	require.NoError(t, err)

	names := []string{"one_hundred", "two_hundred", "pull_up"}
	for i, name := range names {
		id, err := b.Add(name, []int16{int16(i)})
		require.NoError(t, err)
		assert.Equal(t, ID(i), id)
	}

	assert.Equal(t, len(names), b.Len())
	for i, name := range names {
		id, ok := b.Lookup(name)
		require.True(t, ok)
		assert.Equal(t, ID(i), id)

		s, ok := b.Get(id)
		require.True(t, ok)
		assert.Equal(t, name, s.Name)
		assert.Equal(t, id, s.ID)
	}
}

func TestBank_GetUnknown(t *testing.T) {
	b := MustNewBank(SampleRate, Sample{Name: "a", Data: []int16{1}})

	_, ok := b.Get(ID(1))
	assert.False(t, ok)

	_, ok = b.Lookup("missing")
	assert.False(t, ok)
}

func TestBank_RejectsBadNames(t *testing.T) {
	b, _ := NewBank(SampleRate)

	_, err := b.Add("", nil)
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = b.Add("beep", nil)
	require.NoError(t, err)
	_, err = b.Add("beep", nil)
	assert.ErrorIs(t, err, ErrDuplicateName)
	assert.Equal(t, 1, b.Len())
}

func TestNewBank_IgnoresIncomingIDs(t *testing.T) {
	b, err := NewBank(SampleRate,
		Sample{ID: 7, Name: "a", Data: []int16{1, 2}},
		Sample{ID: 3, Name: "b", Data: []int16{3}},
	)
	require.NoError(t, err)

	samples := b.Samples()
	require.Len(t, samples, 2)
	assert.Equal(t, ID(0), samples[0].ID)
	assert.Equal(t, ID(1), samples[1].ID)
}

func TestNewBank_Duplicate(t *testing.T) {
	_, err := NewBank(SampleRate, Sample{Name: "a"}, Sample{Name: "a"})
	assert.ErrorIs(t, err, ErrDuplicateName)

	assert.Panics(t, func() {
		MustNewBank(SampleRate, Sample{Name: "a"}, Sample{Name: "a"})
	})
}

func TestBank_SamplesReturnsCopy(t *testing.T) {
	b := MustNewBank(SampleRate, Sample{Name: "a"})
	samples := b.Samples()
	samples[0].Name = "changed"

	s, _ := b.Get(0)
	assert.Equal(t, "a", s.Name)
}

func TestBank_TotalBytes(t *testing.T) {
	b := MustNewBank(SampleRate,
		Sample{Name: "a", Data: make([]int16, 10)},
		Sample{Name: "b", Data: make([]int16, 5)},
	)
	assert.Equal(t, 30, b.TotalBytes())
	assert.Equal(t, SampleRate, b.SampleRate())
}

func TestSample_Duration(t *testing.T) {
	s := Sample{Data: make([]int16, SampleRate)}
	assert.Equal(t, time.Second, s.Duration(SampleRate))
	assert.Equal(t, time.Duration(0), s.Duration(0))

	// Odd frame counts do not divide evenly into milliseconds.
	half := Sample{Data: make([]int16, SampleRate/2)}
	assert.InDelta(t, float64(500*time.Millisecond), float64(half.Duration(SampleRate)), float64(time.Millisecond))
}

func TestID_String(t *testing.T) {
	assert.Equal(t, "sample#3", ID(3).String())
}
