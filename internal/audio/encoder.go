package audio

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/linuxmatters/templeforge/internal/config"
)

// wavFormatPCM is the WAVE format tag for uncompressed integer PCM
const wavFormatPCM = 1

// SampleFunc returns the amplitude at time t (seconds). Values outside the
// 16-bit range are clamped by the encoder.
type SampleFunc func(t float64) int

// NumSamples returns round(rate × seconds).
func NumSamples(rate int, seconds float64) int {
	return int(math.Round(float64(rate) * seconds))
}

// Clamp limits v to [-MaxAmplitude, MaxAmplitude].
func Clamp(v int) int {
	if v > config.MaxAmplitude {
		return config.MaxAmplitude
	}
	if v < -config.MaxAmplitude {
		return -config.MaxAmplitude
	}
	return v
}

// Encode streams seconds of fn, sampled at rate, as 16-bit mono PCM WAV.
// It returns the number of samples written.
func Encode(w io.WriteSeeker, rate int, seconds float64, fn SampleFunc) (int, error) {
	total := NumSamples(rate, seconds)
	enc := wav.NewEncoder(w, rate, config.BitDepth, config.Channels, wavFormatPCM)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: config.Channels,
			SampleRate:  rate,
		},
		Data:           make([]int, 0, config.ChunkSamples),
		SourceBitDepth: config.BitDepth,
	}

	// At least one Write is issued so that an empty clip still gets a header
	written := 0
	for {
		buf.Data = buf.Data[:0]
		for len(buf.Data) < config.ChunkSamples && written+len(buf.Data) < total {
			i := written + len(buf.Data)
			t := float64(i) / float64(rate)
			buf.Data = append(buf.Data, Clamp(fn(t)))
		}

		if err := enc.Write(buf); err != nil {
			return written, fmt.Errorf("failed to write PCM chunk at sample %d: %w", written, err)
		}
		written += len(buf.Data)

		if written >= total {
			break
		}
	}

	if err := enc.Close(); err != nil {
		return written, fmt.Errorf("failed to finalise WAV header: %w", err)
	}

	return written, nil
}

// WriteFile encodes fn to path, replacing any existing file, and returns the
// number of bytes on disk.
func WriteFile(path string, rate int, seconds float64, fn SampleFunc) (n int64, err error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if _, err := Encode(f, rate, seconds, fn); err != nil {
		return 0, err
	}

	size, err := f.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, err
	}
	return size, nil
}
