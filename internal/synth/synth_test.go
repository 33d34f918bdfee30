package synth

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/linuxmatters/templeforge/internal/audio"
	"github.com/linuxmatters/templeforge/internal/config"
)

func TestToneEnvelope(t *testing.T) {
	fn := Tone(440, 0.5)

	if got := fn(0); got != 0 {
		t.Errorf("Tone at t=0 = %d, want 0", got)
	}
	if got := fn(0.5); got != 0 {
		t.Errorf("Tone at t=duration = %d, want 0", got)
	}

	// Quarter period of 440 Hz, fade barely started
	quarter := 1.0 / (4 * 440)
	got := fn(quarter)
	want := int(config.MaxAmplitude * (1 - quarter/0.5))
	if got < want-1 || got > want+1 {
		t.Errorf("Tone at quarter period = %d, want ~%d", got, want)
	}
}

func TestToneNeverExceedsFullScale(t *testing.T) {
	fn := Tone(880, 0.3)
	n := audio.NumSamples(config.SampleRate, 0.3)
	for i := 0; i < n; i++ {
		v := fn(float64(i) / config.SampleRate)
		if v > config.MaxAmplitude || v < -config.MaxAmplitude {
			t.Fatalf("sample %d = %d out of range", i, v)
		}
	}
}

func TestToneDominantFrequency(t *testing.T) {
	tests := []float64{150, 440, 880, 1200}

	for _, freq := range tests {
		path := filepath.Join(t.TempDir(), "tone.wav")
		if _, err := audio.WriteFile(path, config.SampleRate, 0.5, Tone(freq, 0.5)); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
		samples, err := audio.ReadWAV(path)
		if err != nil {
			t.Fatalf("ReadWAV: %v", err)
		}
		got, err := audio.DominantFrequency(samples, config.SampleRate)
		if err != nil {
			t.Fatalf("DominantFrequency: %v", err)
		}
		if tolerance := audio.BinWidth(8192, config.SampleRate); math.Abs(got-freq) > tolerance {
			t.Errorf("Tone(%.0f) peaks at %.1f Hz", freq, got)
		}
	}
}

func TestNoteAt(t *testing.T) {
	tests := []struct {
		t         float64
		lead, low float64
	}{
		{0, A3, A3},
		{0.59, A3, A3},
		{0.6, C4, A3},
		{1.3, E4, A3},
		{2.5, C4, F4}, // beat 4
		{3.1, A3, F4}, // beat 5
		{4.3, F4, F4}, // beat 7
		{4.9, A3, A3}, // beat 8 wraps the melody
		{9.7, A3, A3}, // beat 16 wraps the bass
	}

	for _, tt := range tests {
		lead, low := NoteAt(tt.t)
		if lead != tt.lead || low != tt.low {
			t.Errorf("NoteAt(%.2f) = (%.2f, %.2f), want (%.2f, %.2f)", tt.t, lead, low, tt.lead, tt.low)
		}
	}
}

func TestBackgroundMusicStartsSilent(t *testing.T) {
	if got := BackgroundMusic()(0); got != 0 {
		t.Errorf("BackgroundMusic at t=0 = %d, want 0", got)
	}
}

func TestBackgroundMusicHeadroom(t *testing.T) {
	// Sum of voice peaks stays well inside 16-bit range
	fn := BackgroundMusic()
	limit := melodyLevel*envelopePeak + bassLevel*bassGain + padLevel
	for i := 0; i < config.SampleRate*5; i += 7 {
		v := fn(float64(i) / config.SampleRate)
		if math.Abs(float64(v)) > limit {
			t.Fatalf("sample %d = %d exceeds %.0f", i, v, limit)
		}
	}
}

func TestRegistry(t *testing.T) {
	want := []string{"music", "silence", "tone"}
	got := Names()
	if len(got) != len(want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if v := Registry["silence"](440, 1)(0.25); v != 0 {
		t.Errorf("silence = %d, want 0", v)
	}
	if v := Registry["tone"](440, 1)(1.0 / 1760); v == 0 {
		t.Error("tone voice produced zero at a quarter period")
	}
}
