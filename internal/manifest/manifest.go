// Package manifest describes which assets to produce and drives their
// generation into an output directory.
package manifest

import (
	"errors"
	"fmt"
	"os"
	"path"
	"strings"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/linuxmatters/templeforge/internal/config"
	"github.com/linuxmatters/templeforge/internal/model"
	"github.com/linuxmatters/templeforge/internal/synth"
	"github.com/linuxmatters/templeforge/internal/texture"
)

// Kind is the asset family an entry belongs to.
type Kind string

const (
	KindTexture Kind = "texture"
	KindModel   Kind = "model"
	KindSound   Kind = "sound"
)

// Extension returns the file extension every entry of kind k must carry.
func (k Kind) Extension() string {
	switch k {
	case KindTexture:
		return ".bmp"
	case KindModel:
		return ".obj"
	case KindSound:
		return ".wav"
	}
	return ""
}

// Params are the generator arguments. Textures use Width and Height,
// sounds use Frequency and Duration, models use none.
type Params struct {
	Width     int     `yaml:"width,omitempty"`
	Height    int     `yaml:"height,omitempty"`
	Frequency float64 `yaml:"frequency,omitempty"` // Hz
	Duration  float64 `yaml:"duration,omitempty"`  // Seconds
}

// Entry is one asset: where it goes and how to make it.
type Entry struct {
	Path      string `yaml:"path"` // Relative to the output directory, slash separated
	Kind      Kind   `yaml:"kind"`
	Generator string `yaml:"generator"`
	Params    Params `yaml:"params,omitempty"`
}

func (e Entry) String() string {
	switch e.Kind {
	case KindTexture:
		return fmt.Sprintf("%s (%s %dx%d)", e.Path, e.Generator, e.Params.Width, e.Params.Height)
	case KindSound:
		if e.Generator == "tone" {
			return fmt.Sprintf("%s (%s %g Hz, %gs)", e.Path, e.Generator, e.Params.Frequency, e.Params.Duration)
		}
		return fmt.Sprintf("%s (%s %gs)", e.Path, e.Generator, e.Params.Duration)
	}
	return fmt.Sprintf("%s (%s)", e.Path, e.Generator)
}

type file struct {
	Assets []Entry `yaml:"assets"`
}

func textureEntry(p, gen string, width, height int) Entry {
	return Entry{Path: p, Kind: KindTexture, Generator: gen, Params: Params{Width: width, Height: height}}
}

func modelEntry(p, gen string) Entry {
	return Entry{Path: p, Kind: KindModel, Generator: gen}
}

func toneEntry(p string, freq, seconds float64) Entry {
	return Entry{Path: p, Kind: KindSound, Generator: "tone", Params: Params{Frequency: freq, Duration: seconds}}
}

// Default returns the built-in asset list in production order.
func Default() []Entry {
	gw, gh := config.GroundTextureW, config.GroundTextureH
	ww, wh := config.WallTextureW, config.WallTextureH

	return []Entry{
		textureEntry("sand_ground.bmp", "sand", gw, gh),
		textureEntry("snow_ground.bmp", "snow", gw, gh),
		textureEntry("sandstone_wall.bmp", "sandstone_wall", ww, wh),
		textureEntry("ice_wall.bmp", "ice_wall", ww, wh),
		// Older level files still load these names
		textureEntry("ground.bmp", "sand", gw, gh),
		textureEntry("wall.bmp", "sandstone_wall", ww, wh),

		modelEntry("player.obj", "player"),
		modelEntry("pyramid.obj", "pyramid"),
		modelEntry("cactus.obj", "cactus"),
		modelEntry("pillar.obj", "cube"),
		modelEntry("tree.obj", "tree"),
		modelEntry("rock.obj", "cube"),
		modelEntry("ground.obj", "ground"),

		toneEntry("collect.wav", 880, 0.3),
		toneEntry("chest.wav", 440, 0.5),
		toneEntry("crack.wav", 150, 0.2),
		toneEntry("fall.wav", 100, 1.0),
		toneEntry("damage.wav", 200, 0.4),
		toneEntry("jump.wav", 600, 0.2),
		toneEntry("portal.wav", 1200, 2.0),
		toneEntry("win.wav", 1000, 3.0),
		toneEntry("growl.wav", 100, 0.8),
		{Path: "background.wav", Kind: KindSound, Generator: "music", Params: Params{Duration: config.MusicDuration}},
	}
}

// Load reads a YAML manifest file.
func Load(filename string) ([]Entry, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	entries, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", filename, err)
	}
	return entries, nil
}

// Parse decodes a YAML manifest document.
func Parse(data []byte) ([]Entry, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return f.Assets, nil
}

// Marshal encodes entries as a YAML manifest document that Parse accepts.
func Marshal(entries []Entry) ([]byte, error) {
	return yaml.Marshal(file{Assets: entries})
}

// ErrInvalid marks every validation failure.
var ErrInvalid = errors.New("invalid manifest entry")

func invalid(e Entry, format string, args ...any) error {
	return fmt.Errorf("%s: %w: %s", e.Path, ErrInvalid, fmt.Sprintf(format, args...))
}

// Validate checks every entry and reports all problems at once, so a bad
// manifest is rejected before anything is written.
func Validate(entries []Entry) error {
	var errs error
	seen := make(map[string]bool, len(entries))

	for _, e := range entries {
		if e.Path == "" {
			errs = multierr.Append(errs, fmt.Errorf("%w: entry with generator %q has no path", ErrInvalid, e.Generator))
			continue
		}
		if path.IsAbs(e.Path) || path.Clean(e.Path) != e.Path || strings.HasPrefix(e.Path, "../") || e.Path == ".." {
			errs = multierr.Append(errs, invalid(e, "path must be a clean relative path inside the output directory"))
		}
		if seen[e.Path] {
			errs = multierr.Append(errs, invalid(e, "duplicate path"))
		}
		seen[e.Path] = true

		if ext := e.Kind.Extension(); ext == "" {
			errs = multierr.Append(errs, invalid(e, "unknown kind %q", e.Kind))
			continue
		} else if path.Ext(e.Path) != ext {
			errs = multierr.Append(errs, invalid(e, "%s assets must end in %s", e.Kind, ext))
		}

		errs = multierr.Append(errs, validateParams(e))
	}

	return errs
}

func validateParams(e Entry) error {
	p := e.Params

	switch e.Kind {
	case KindTexture:
		if _, ok := texture.Registry[e.Generator]; !ok {
			return invalid(e, "unknown texture generator %q (have %s)", e.Generator, strings.Join(texture.Names(), ", "))
		}
		if p.Width <= 0 || p.Height <= 0 {
			return invalid(e, "texture size %dx%d must be positive", p.Width, p.Height)
		}
	case KindModel:
		if _, ok := model.Registry[e.Generator]; !ok {
			return invalid(e, "unknown model generator %q (have %s)", e.Generator, strings.Join(model.Names(), ", "))
		}
	case KindSound:
		if _, ok := synth.Registry[e.Generator]; !ok {
			return invalid(e, "unknown sound generator %q (have %s)", e.Generator, strings.Join(synth.Names(), ", "))
		}
		if p.Duration <= 0 {
			return invalid(e, "duration %g must be positive", p.Duration)
		}
		if e.Generator == "tone" && p.Frequency <= 0 {
			return invalid(e, "tone frequency %g must be positive", p.Frequency)
		}
	}
	return nil
}

// Filter keeps the entries whose path matches any of the glob patterns,
// preserving order. No patterns keeps everything.
func Filter(entries []Entry, patterns []string) ([]Entry, error) {
	if len(patterns) == 0 {
		return entries, nil
	}

	for _, pattern := range patterns {
		if _, err := path.Match(pattern, ""); err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
		}
	}

	var kept []Entry
	for _, e := range entries {
		for _, pattern := range patterns {
			if ok, _ := path.Match(pattern, e.Path); ok {
				kept = append(kept, e)
				break
			}
		}
	}
	if len(kept) == 0 {
		return nil, fmt.Errorf("no assets match %s", strings.Join(patterns, ", "))
	}
	return kept, nil
}
