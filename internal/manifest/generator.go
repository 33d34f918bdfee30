package manifest

import (
	"fmt"
	"hash/fnv"
	"image"
	"math/rand/v2"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/linuxmatters/templeforge/internal/audio"
	"github.com/linuxmatters/templeforge/internal/config"
	"github.com/linuxmatters/templeforge/internal/mesh"
	"github.com/linuxmatters/templeforge/internal/model"
	"github.com/linuxmatters/templeforge/internal/raster"
	"github.com/linuxmatters/templeforge/internal/synth"
	"github.com/linuxmatters/templeforge/internal/texture"
)

// Stage says where an asset is in its production.
type Stage int

const (
	Started Stage = iota
	Written
)

// Event reports progress on one asset.
type Event struct {
	Stage   Stage
	Index   int // 0-based position in the run
	Total   int
	Entry   Entry
	Result  Result // Zero until Written
	Elapsed time.Duration
}

// Result describes a written asset.
type Result struct {
	Path  string // Full path on disk
	Bytes int64
	Image image.Image // Textures only
}

// Summary totals a completed run.
type Summary struct {
	Textures int
	Models   int
	Sounds   int
	Bytes    int64
	Elapsed  time.Duration
	Results  []Result
}

// Files returns the number of assets written.
func (s Summary) Files() int {
	return s.Textures + s.Models + s.Sounds
}

// Generator writes manifest entries into Dir.
type Generator struct {
	Dir        string
	Seed       uint64
	Logger     *zap.Logger // Nil discards
	OnProgress func(Event) // Optional, called synchronously
}

// New returns a Generator for dir with the default seed.
func New(dir string, log *zap.Logger) *Generator {
	return &Generator{Dir: dir, Seed: config.DefaultSeed, Logger: log}
}

func (g *Generator) log() *zap.Logger {
	if g.Logger == nil {
		return zap.NewNop()
	}
	return g.Logger
}

func (g *Generator) emit(ev Event) {
	if g.OnProgress != nil {
		g.OnProgress(ev)
	}
}

// Run validates entries, creates Dir and produces every entry in order,
// overwriting existing files. It stops at the first failure; files already
// written stay on disk.
func (g *Generator) Run(entries []Entry) (Summary, error) {
	var sum Summary

	if err := Validate(entries); err != nil {
		return sum, err
	}
	if err := os.MkdirAll(g.Dir, 0755); err != nil {
		return sum, fmt.Errorf("creating output directory: %w", err)
	}

	log := g.log()
	start := time.Now()

	for i, e := range entries {
		g.emit(Event{Stage: Started, Index: i, Total: len(entries), Entry: e})

		assetStart := time.Now()
		res, err := g.Produce(e)
		if err != nil {
			log.Error("asset failed", zap.String("path", e.Path), zap.Error(err))
			return sum, err
		}
		elapsed := time.Since(assetStart)

		log.Info("asset written",
			zap.String("path", e.Path),
			zap.String("kind", string(e.Kind)),
			zap.String("generator", e.Generator),
			zap.Int64("bytes", res.Bytes),
			zap.Duration("elapsed", elapsed),
		)

		switch e.Kind {
		case KindTexture:
			sum.Textures++
		case KindModel:
			sum.Models++
		case KindSound:
			sum.Sounds++
		}
		sum.Bytes += res.Bytes
		sum.Results = append(sum.Results, res)

		g.emit(Event{Stage: Written, Index: i, Total: len(entries), Entry: e, Result: res, Elapsed: elapsed})
	}

	sum.Elapsed = time.Since(start)
	log.Info("generation complete",
		zap.Int("files", sum.Files()),
		zap.Int64("bytes", sum.Bytes),
		zap.Duration("elapsed", sum.Elapsed),
	)
	return sum, nil
}

// Produce writes a single entry into Dir. Its random source depends only on
// Seed and the entry path, so the bytes do not depend on what else runs.
func (g *Generator) Produce(e Entry) (Result, error) {
	res := Result{Path: filepath.Join(g.Dir, filepath.FromSlash(e.Path))}

	// Entries may live in subdirectories of Dir
	if err := os.MkdirAll(filepath.Dir(res.Path), 0755); err != nil {
		return res, fmt.Errorf("generating %s: %w", e.Path, err)
	}

	var err error
	switch e.Kind {
	case KindTexture:
		fn, ok := texture.Registry[e.Generator]
		if !ok {
			return res, invalid(e, "unknown texture generator %q", e.Generator)
		}
		grid := texture.Render(fn, e.Params.Width, e.Params.Height, g.rng(e))
		res.Image = grid
		res.Bytes, err = raster.WriteFile(res.Path, grid)

	case KindModel:
		fn, ok := model.Registry[e.Generator]
		if !ok {
			return res, invalid(e, "unknown model generator %q", e.Generator)
		}
		var b *mesh.Builder
		if b, err = fn(); err == nil {
			res.Bytes, err = mesh.WriteFile(res.Path, b)
		}

	case KindSound:
		voice, ok := synth.Registry[e.Generator]
		if !ok {
			return res, invalid(e, "unknown sound generator %q", e.Generator)
		}
		fn := voice(e.Params.Frequency, e.Params.Duration)
		res.Bytes, err = audio.WriteFile(res.Path, config.SampleRate, e.Params.Duration, fn)

	default:
		return res, invalid(e, "unknown kind %q", e.Kind)
	}

	if err != nil {
		return res, fmt.Errorf("generating %s: %w", e.Path, err)
	}
	return res, nil
}

// rng returns the random source for one entry.
func (g *Generator) rng(e Entry) *rand.Rand {
	h := fnv.New64a()
	h.Write([]byte(e.Path))
	return rand.New(rand.NewPCG(g.Seed, h.Sum64()))
}
