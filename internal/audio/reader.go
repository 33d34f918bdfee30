package audio

import (
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// PCM holds the raw contents of a decoded WAV file.
type PCM struct {
	SampleRate  int
	BitDepth    int
	NumChannels int
	AudioFormat int
	DataSize    int64 // Declared size of the data chunk in bytes
	Samples     []int
}

// ReadPCM decodes a WAV file without normalising the samples.
func ReadPCM(filename string) (*PCM, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return nil, fmt.Errorf("invalid WAV file")
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to read PCM data: %w", err)
	}

	return &PCM{
		SampleRate:  int(decoder.SampleRate),
		BitDepth:    int(decoder.BitDepth),
		NumChannels: int(decoder.NumChans),
		AudioFormat: int(decoder.WavAudioFormat),
		DataSize:    decoder.PCMLen(),
		Samples:     buf.Data,
	}, nil
}

// Normalized returns the samples scaled to [-1, 1].
func (p *PCM) Normalized() []float64 {
	samples := make([]float64, len(p.Samples))
	maxVal := float64(audio.IntMaxSignedValue(p.BitDepth))
	for i, s := range p.Samples {
		samples[i] = float64(s) / maxVal
	}
	return samples
}

// ReadWAV reads a WAV file and returns samples as float64 slice
func ReadWAV(filename string) ([]float64, error) {
	pcm, err := ReadPCM(filename)
	if err != nil {
		return nil, err
	}
	return pcm.Normalized(), nil
}
