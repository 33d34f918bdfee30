package verify

import (
	"fmt"
	"math"
	"path/filepath"

	"go.uber.org/multierr"

	"github.com/linuxmatters/templeforge/internal/audio"
	"github.com/linuxmatters/templeforge/internal/config"
	"github.com/linuxmatters/templeforge/internal/manifest"
)

// Failure is one asset that did not pass.
type Failure struct {
	Path string
	Err  error
}

func (f Failure) Error() string {
	return fmt.Sprintf("%s: %v", f.Path, f.Err)
}

func (f Failure) Unwrap() error { return f.Err }

// Report collects the outcome of checking a directory.
type Report struct {
	Checked  int
	Failures []Failure
}

// OK reports whether every asset passed.
func (r Report) OK() bool { return len(r.Failures) == 0 }

// Err combines all failures, or returns nil.
func (r Report) Err() error {
	var err error
	for _, f := range r.Failures {
		err = multierr.Append(err, f)
	}
	return err
}

// Dir checks every manifest entry under dir, including that textures have
// the requested size, sounds the requested length and tones their pitch.
func Dir(dir string, entries []manifest.Entry) Report {
	var r Report
	for _, e := range entries {
		r.Checked++
		if err := Entry(filepath.Join(dir, filepath.FromSlash(e.Path)), e); err != nil {
			r.Failures = append(r.Failures, Failure{Path: e.Path, Err: err})
		}
	}
	return r
}

// Entry checks a single file against the entry that produced it.
func Entry(path string, e manifest.Entry) error {
	switch e.Kind {
	case manifest.KindTexture:
		info, err := Bitmap(path)
		if err != nil {
			return err
		}
		if info.Width != e.Params.Width || info.Height != e.Params.Height {
			return malformed("texture is %dx%d, want %dx%d", info.Width, info.Height, e.Params.Width, e.Params.Height)
		}

	case manifest.KindModel:
		info, err := Mesh(path)
		if err != nil {
			return err
		}
		if info.Vertices == 0 || info.Faces == 0 {
			return malformed("mesh has %d vertices and %d faces", info.Vertices, info.Faces)
		}

	case manifest.KindSound:
		info, err := Wave(path)
		if err != nil {
			return err
		}
		if want := audio.NumSamples(config.SampleRate, e.Params.Duration); info.Samples != want {
			return malformed("%d samples, want %d", info.Samples, want)
		}
		if e.Generator == "tone" && info.Dominant > 0 {
			tolerance := audio.BinWidth(info.Samples, config.SampleRate)
			if math.Abs(info.Dominant-e.Params.Frequency) > tolerance {
				return malformed("tone peaks at %.1f Hz, want %.1f Hz", info.Dominant, e.Params.Frequency)
			}
		}

	default:
		return fmt.Errorf("unknown asset kind %q", e.Kind)
	}
	return nil
}
