// Package synth provides the sample functions behind the game's sound
// effects and background music.
package synth

import (
	"math"
	"sort"

	"github.com/linuxmatters/templeforge/internal/audio"
	"github.com/linuxmatters/templeforge/internal/config"
)

// Voice builds a sample function from a frequency in Hz and a duration in
// seconds. Voices that have no use for one of them ignore it.
type Voice func(frequency, duration float64) audio.SampleFunc

// Registry maps manifest generator names to voices.
var Registry = map[string]Voice{
	"tone":    Tone,
	"music":   func(_, _ float64) audio.SampleFunc { return BackgroundMusic() },
	"silence": func(_, _ float64) audio.SampleFunc { return Silence },
}

// Names returns the registered voice names in sorted order.
func Names() []string {
	names := make([]string, 0, len(Registry))
	for name := range Registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Tone is a full-scale sine at frequency Hz that fades linearly to zero
// over duration seconds.
func Tone(frequency, duration float64) audio.SampleFunc {
	return func(t float64) int {
		return int(config.MaxAmplitude * math.Sin(2*math.Pi*frequency*t) * (1 - t/duration))
	}
}

// Silence is a flat zero signal.
func Silence(float64) int { return 0 }
