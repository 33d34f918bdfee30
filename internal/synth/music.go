package synth

import (
	"math"

	"github.com/linuxmatters/templeforge/internal/audio"
)

// Note frequencies in Hz, A minor
const (
	A3 = 220.00
	C4 = 261.63
	D4 = 293.66
	E4 = 329.63
	F4 = 349.23
	G4 = 392.00
	A4 = 440.00
	C5 = 523.25
)

// BeatDuration is the length of one melody note in seconds.
const BeatDuration = 0.6

// Voice levels
const (
	melodyLevel  = 8000
	bassLevel    = 6000
	bassGain     = 0.6
	padLevel     = 3000
	envelopePeak = 0.8
)

var (
	melody = [...]float64{A3, C4, E4, D4, C4, A3, G4, F4}
	// Each bass note holds for two beats
	bass = [...]float64{A3, A3, F4, F4}
)

// BackgroundMusic is the looping temple theme: an enveloped melody over a
// slower bass line, with a steady pad an octave below the melody.
func BackgroundMusic() audio.SampleFunc {
	return func(t float64) int {
		lead, low := NoteAt(t)

		phase := math.Mod(t, BeatDuration) / BeatDuration
		envelope := math.Sin(phase*math.Pi) * envelopePeak

		melodyVal := melodyLevel * math.Sin(2*math.Pi*lead*t) * envelope
		bassVal := bassLevel * math.Sin(2*math.Pi*low*t) * bassGain
		padVal := padLevel * math.Sin(2*math.Pi*lead*0.5*t)

		return int(melodyVal + bassVal + padVal)
	}
}

// NoteAt reports the melody and bass frequencies sounding at time t.
func NoteAt(t float64) (lead, low float64) {
	beat := int(t / BeatDuration)
	return melody[beat%len(melody)], bass[(beat/2)%len(bass)]
}
