package manifest

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/linuxmatters/templeforge/internal/raster"
)

func smallManifest() []Entry {
	return []Entry{
		{Path: "sand.bmp", Kind: KindTexture, Generator: "sand", Params: Params{Width: 16, Height: 8}},
		{Path: "ice.bmp", Kind: KindTexture, Generator: "ice_wall", Params: Params{Width: 64, Height: 64}},
		{Path: "cube.obj", Kind: KindModel, Generator: "cube"},
		{Path: "sfx/beep.wav", Kind: KindSound, Generator: "tone", Params: Params{Frequency: 440, Duration: 0.1}},
	}
}

func readFile(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return data
}

func TestRunDefaultManifest(t *testing.T) {
	if testing.Short() {
		t.Skip("writes the full asset set")
	}

	dir := filepath.Join(t.TempDir(), "nested", "assets")
	g := New(dir, nil)

	sum, err := g.Run(Default())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if sum.Textures != 6 || sum.Models != 7 || sum.Sounds != 10 {
		t.Errorf("summary = %+v", sum)
	}

	sizes := map[string]int64{
		"sand_ground.bmp": 54 + 3*512*512,
		"ice_wall.bmp":    54 + 3*256*256,
		"wall.bmp":        54 + 3*256*256,
		"collect.wav":     44 + 2*13230,
		"win.wav":         44 + 2*132300,
		"background.wav":  44 + 2*1323000,
	}
	for name, want := range sizes {
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			t.Errorf("stat %s: %v", name, err)
			continue
		}
		if info.Size() != want {
			t.Errorf("%s is %d bytes, want %d", name, info.Size(), want)
		}
	}

	var total int64
	for _, r := range sum.Results {
		total += r.Bytes
	}
	if total != sum.Bytes {
		t.Errorf("summary bytes %d, results add up to %d", sum.Bytes, total)
	}

	// ground.bmp uses the sand generator but its own random stream
	if bytes.Equal(readFile(t, filepath.Join(dir, "ground.bmp")), readFile(t, filepath.Join(dir, "sand_ground.bmp"))) {
		t.Error("ground.bmp and sand_ground.bmp should differ in grain")
	}
}

func TestRunIsDeterministic(t *testing.T) {
	a, b := t.TempDir(), t.TempDir()

	if _, err := New(a, nil).Run(smallManifest()); err != nil {
		t.Fatal(err)
	}
	if _, err := New(b, nil).Run(smallManifest()); err != nil {
		t.Fatal(err)
	}

	for _, e := range smallManifest() {
		if !bytes.Equal(readFile(t, filepath.Join(a, e.Path)), readFile(t, filepath.Join(b, e.Path))) {
			t.Errorf("%s differs between runs", e.Path)
		}
	}
}

func TestRunSubsetReproducesBytes(t *testing.T) {
	full, part := t.TempDir(), t.TempDir()

	if _, err := New(full, nil).Run(smallManifest()); err != nil {
		t.Fatal(err)
	}
	only, err := Filter(smallManifest(), []string{"ice.bmp"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := New(part, nil).Run(only); err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(readFile(t, filepath.Join(full, "ice.bmp")), readFile(t, filepath.Join(part, "ice.bmp"))) {
		t.Error("ice.bmp generated alone differs from the full run")
	}
	if _, err := os.Stat(filepath.Join(part, "sand.bmp")); !os.IsNotExist(err) {
		t.Error("filtered run wrote sand.bmp")
	}
}

func TestRunSeedChangesTextures(t *testing.T) {
	a, b := t.TempDir(), t.TempDir()
	entries := smallManifest()[:1]

	if _, err := (&Generator{Dir: a, Seed: 1}).Run(entries); err != nil {
		t.Fatal(err)
	}
	if _, err := (&Generator{Dir: b, Seed: 2}).Run(entries); err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(readFile(t, filepath.Join(a, "sand.bmp")), readFile(t, filepath.Join(b, "sand.bmp"))) {
		t.Error("different seeds produced identical sand")
	}
}

func TestRunOverwrites(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "sand.bmp")
	junk := bytes.Repeat([]byte("x"), 4096)
	if err := os.WriteFile(target, junk, 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := New(dir, nil).Run(smallManifest()[:1]); err != nil {
		t.Fatal(err)
	}

	data := readFile(t, target)
	if int64(len(data)) != 54+3*16*8 {
		t.Errorf("sand.bmp is %d bytes after overwrite", len(data))
	}
	if string(data[:2]) != "BM" {
		t.Errorf("sand.bmp starts with %q", data[:2])
	}
}

func TestRunStopsAtFirstFailure(t *testing.T) {
	dir := t.TempDir()
	entries := smallManifest()

	// A directory where cube.obj should go makes the third entry fail
	if err := os.Mkdir(filepath.Join(dir, "cube.obj"), 0755); err != nil {
		t.Fatal(err)
	}

	sum, err := New(dir, nil).Run(entries)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "cube.obj") {
		t.Errorf("error %q does not name the failing asset", err)
	}
	if sum.Files() != 2 {
		t.Errorf("summary counts %d files before the failure, want 2", sum.Files())
	}
	if _, err := os.Stat(filepath.Join(dir, "sand.bmp")); err != nil {
		t.Errorf("earlier asset missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "sfx", "beep.wav")); !os.IsNotExist(err) {
		t.Error("later asset was written after the failure")
	}
}

func TestRunRejectsInvalidManifestBeforeWriting(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	entries := append(smallManifest(), Entry{Path: "bad.bmp", Kind: KindTexture, Generator: "sand"})

	if _, err := New(dir, nil).Run(entries); err == nil {
		t.Fatal("expected validation error")
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Error("output directory created for an invalid manifest")
	}
}

func TestRunEventsAndLogging(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)

	var events []Event
	g := &Generator{
		Dir:        t.TempDir(),
		Seed:       7,
		Logger:     zap.New(core),
		OnProgress: func(ev Event) { events = append(events, ev) },
	}

	entries := smallManifest()
	if _, err := g.Run(entries); err != nil {
		t.Fatal(err)
	}

	if len(events) != 2*len(entries) {
		t.Fatalf("got %d events, want %d", len(events), 2*len(entries))
	}
	for i, ev := range events {
		wantStage := Started
		if i%2 == 1 {
			wantStage = Written
		}
		if ev.Stage != wantStage || ev.Index != i/2 || ev.Total != len(entries) {
			t.Errorf("event %d = stage %d index %d total %d", i, ev.Stage, ev.Index, ev.Total)
		}
	}

	written := events[1].Result
	if written.Image == nil {
		t.Error("texture event carries no image")
	} else if _, ok := written.Image.(*raster.Grid); !ok {
		t.Errorf("texture image is %T", written.Image)
	}
	if events[5].Result.Image != nil {
		t.Error("model event carries an image")
	}

	if n := logs.FilterMessage("asset written").Len(); n != len(entries) {
		t.Errorf("logged %d assets, want %d", n, len(entries))
	}
	if n := logs.FilterMessage("generation complete").Len(); n != 1 {
		t.Errorf("logged %d completions, want 1", n)
	}
}
