package manifest

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/multierr"
)

func TestDefault(t *testing.T) {
	entries := Default()

	if err := Validate(entries); err != nil {
		t.Fatalf("Default() does not validate: %v", err)
	}

	counts := map[Kind]int{}
	for _, e := range entries {
		counts[e.Kind]++
	}
	want := map[Kind]int{KindTexture: 6, KindModel: 7, KindSound: 10}
	for kind, n := range want {
		if counts[kind] != n {
			t.Errorf("%d %s entries, want %d", counts[kind], kind, n)
		}
	}

	if first := entries[0].Path; first != "sand_ground.bmp" {
		t.Errorf("first entry = %s, want sand_ground.bmp", first)
	}
	if last := entries[len(entries)-1]; last.Path != "background.wav" || last.Params.Duration != 30 {
		t.Errorf("last entry = %+v, want 30s background.wav", last)
	}
}

func TestMarshalParse(t *testing.T) {
	data, err := Marshal(Default())
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	got, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	want := Default()
	if len(got) != len(want) {
		t.Fatalf("got %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	filename := filepath.Join(dir, "assets.yaml")
	doc := `assets:
  - path: lava.bmp
    kind: texture
    generator: sand
    params: {width: 8, height: 4}
  - path: beep.wav
    kind: sound
    generator: tone
    params: {frequency: 440, duration: 0.1}
`
	if err := os.WriteFile(filename, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	entries, err := Load(filename)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if e := entries[0]; e.Kind != KindTexture || e.Params.Width != 8 || e.Params.Height != 4 {
		t.Errorf("texture entry = %+v", e)
	}
	if e := entries[1]; e.Params.Frequency != 440 || e.Params.Duration != 0.1 {
		t.Errorf("sound entry = %+v", e)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing manifest")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("assets: [unterminated"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestValidate(t *testing.T) {
	ok := Entry{Path: "a.bmp", Kind: KindTexture, Generator: "sand", Params: Params{Width: 4, Height: 4}}

	tests := []struct {
		name  string
		entry Entry
	}{
		{"missing path", Entry{Kind: KindModel, Generator: "cube"}},
		{"absolute path", Entry{Path: "/tmp/x.obj", Kind: KindModel, Generator: "cube"}},
		{"escaping path", Entry{Path: "../x.obj", Kind: KindModel, Generator: "cube"}},
		{"unclean path", Entry{Path: "./x.obj", Kind: KindModel, Generator: "cube"}},
		{"unknown kind", Entry{Path: "x.png", Kind: "image", Generator: "sand"}},
		{"wrong extension", Entry{Path: "x.png", Kind: KindTexture, Generator: "sand", Params: Params{Width: 1, Height: 1}}},
		{"unknown texture", Entry{Path: "x.bmp", Kind: KindTexture, Generator: "lava", Params: Params{Width: 1, Height: 1}}},
		{"zero width", Entry{Path: "x.bmp", Kind: KindTexture, Generator: "sand", Params: Params{Height: 1}}},
		{"negative height", Entry{Path: "x.bmp", Kind: KindTexture, Generator: "sand", Params: Params{Width: 1, Height: -1}}},
		{"unknown model", Entry{Path: "x.obj", Kind: KindModel, Generator: "sphinx"}},
		{"unknown sound", Entry{Path: "x.wav", Kind: KindSound, Generator: "roar", Params: Params{Duration: 1}}},
		{"zero duration", Entry{Path: "x.wav", Kind: KindSound, Generator: "silence"}},
		{"tone without frequency", Entry{Path: "x.wav", Kind: KindSound, Generator: "tone", Params: Params{Duration: 1}}},
		{"duplicate path", ok},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate([]Entry{ok, tt.entry})
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("error %v does not wrap ErrInvalid", err)
			}
		})
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	err := Validate([]Entry{
		{Path: "x.obj", Kind: KindModel, Generator: "sphinx"},
		{Path: "y.wav", Kind: KindSound, Generator: "tone"},
		{Path: "z.bmp", Kind: KindTexture, Generator: "sand", Params: Params{Width: 2, Height: 2}},
	})
	if n := len(multierr.Errors(err)); n != 2 {
		t.Errorf("got %d errors, want 2: %v", n, err)
	}
}

func TestFilter(t *testing.T) {
	entries := Default()

	tests := []struct {
		name     string
		patterns []string
		want     int
	}{
		{"no patterns", nil, len(entries)},
		{"sounds", []string{"*.wav"}, 10},
		{"ground assets", []string{"ground.*"}, 2},
		{"union", []string{"*.obj", "ice_*"}, 8},
		{"single file", []string{"snow_ground.bmp"}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Filter(entries, tt.patterns)
			if err != nil {
				t.Fatalf("Filter: %v", err)
			}
			if len(got) != tt.want {
				t.Errorf("kept %d entries, want %d", len(got), tt.want)
			}
		})
	}

	if _, err := Filter(entries, []string{"["}); err == nil {
		t.Error("expected error for malformed pattern")
	}
	if _, err := Filter(entries, []string{"*.png"}); err == nil {
		t.Error("expected error when nothing matches")
	}
}

func TestFilterKeepsOrder(t *testing.T) {
	got, err := Filter(Default(), []string{"*.wav", "*.bmp"})
	if err != nil {
		t.Fatal(err)
	}
	if got[0].Path != "sand_ground.bmp" || got[len(got)-1].Path != "background.wav" {
		t.Errorf("order not preserved: first %s, last %s", got[0].Path, got[len(got)-1].Path)
	}
}
