package sample

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/wav"
)

const (
	extWAV  = ".wav"
	extFLAC = ".flac"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported sample format")
	ErrNotSixteenBit     = errors.New("sample is not 16-bit")
	ErrSampleRate        = fmt.Errorf("sample is not %d Hz", SampleRate)
	ErrNotMono           = errors.New("sample is not mono")
)

// Supported reports whether the file extension is a decodable sample format.
func Supported(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case extWAV, extFLAC:
		return true
	default:
		return false
	}
}

// Decode reads a sample file and returns its PCM data.
// The file must be 16-bit mono at SampleRate.
func Decode(path string) ([]int16, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !Supported(path) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var streamer beep.StreamSeekCloser
	var format beep.Format
	switch ext {
	case extWAV:
		streamer, format, err = wav.Decode(f)
	case extFLAC:
		streamer, format, err = flac.Decode(f)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	defer streamer.Close()

	if err := validateFormat(format); err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}

	data, err := readAll(streamer)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	return data, nil
}

func validateFormat(format beep.Format) error {
	if format.Precision != BytesPerSample {
		return ErrNotSixteenBit
	}
	if int(format.SampleRate) != SampleRate {
		return ErrSampleRate
	}
	if format.NumChannels != Channels {
		return ErrNotMono
	}
	return nil
}

func readAll(s beep.StreamSeekCloser) ([]int16, error) {
	data := make([]int16, 0, max(s.Len(), 0))
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for i := range n {
			data = append(data, FromFloat(buf[i][0]))
		}
		if !ok {
			break
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return data, nil
}

// FromFloat converts a [-1, 1] sample to signed 16-bit PCM, clamping overflow.
func FromFloat(v float64) int16 {
	v = math.Round(v * math.MaxInt16)
	if v > math.MaxInt16 {
		return math.MaxInt16
	}
	if v < math.MinInt16 {
		return math.MinInt16
	}
	return int16(v)
}

// ToFloat converts signed 16-bit PCM to the [-1, 1] range used for mixing.
func ToFloat(s int16) float64 {
	return float64(s) / math.MaxInt16
}

// LoadDir decodes every supported file under dir into a bank.
// Files are added in path order and named after their file stem.
func LoadDir(dir string) (*Bank, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && Supported(path) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.Sort(paths)

	bank, _ := NewBank(SampleRate)
	for _, path := range paths {
		data, err := Decode(path)
		if err != nil {
			return nil, err
		}
		if _, err := bank.Add(Name(path), data); err != nil {
			return nil, err
		}
	}
	return bank, nil
}

// Name returns the sample name for a file path: its base name without extension.
func Name(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
