package audio

import (
	"fmt"
	"math"

	"github.com/argusdusty/gofft"
	"github.com/linuxmatters/templeforge/internal/config"
)

// ApplyHanning applies a Hanning window to the input data
func ApplyHanning(data []float64) []float64 {
	windowed := make([]float64, len(data))
	n := len(data)
	for i := range data {
		window := 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
		windowed[i] = data[i] * window
	}
	return windowed
}

// fftSize returns the largest power of two not exceeding n, capped at MaxFFTSize
func fftSize(n int) int {
	size := 1
	for size*2 <= n && size*2 <= config.MaxFFTSize {
		size *= 2
	}
	return size
}

// DominantFrequency estimates the strongest frequency (Hz) in the opening
// window of samples. Silence yields 0.
func DominantFrequency(samples []float64, sampleRate int) (float64, error) {
	size := fftSize(len(samples))
	if size < 2 {
		return 0, fmt.Errorf("need at least 2 samples for FFT, got %d", len(samples))
	}

	coeffs := gofft.Float64ToComplex128Array(ApplyHanning(samples[:size]))
	if err := gofft.FFT(coeffs); err != nil {
		return 0, fmt.Errorf("FFT computation failed: %w", err)
	}

	bestBin := 0
	bestMag := 0.0
	for i := 1; i <= size/2; i++ {
		mag := math.Hypot(real(coeffs[i]), imag(coeffs[i]))
		if mag > bestMag {
			bestMag = mag
			bestBin = i
		}
	}

	return float64(bestBin) * float64(sampleRate) / float64(size), nil
}

// BinWidth returns the frequency resolution DominantFrequency works at for n samples.
func BinWidth(n, sampleRate int) float64 {
	return float64(sampleRate) / float64(fftSize(n))
}

// Levels returns the peak absolute value and RMS of normalised samples.
func Levels(samples []float64) (peak, rms float64) {
	if len(samples) == 0 {
		return 0, 0
	}

	var sumSquares float64
	for _, s := range samples {
		if a := math.Abs(s); a > peak {
			peak = a
		}
		sumSquares += s * s
	}

	return peak, math.Sqrt(sumSquares / float64(len(samples)))
}
